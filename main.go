package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"blogpress/app/repositories"
	"blogpress/app/routes"
	"blogpress/config"
	"blogpress/log"
)

func main() {
	cfg := config.Load()

	db, err := repositories.OpenStore(cfg.DBPath)
	if err != nil {
		log.Error.Fatalf("failed to open store: %v", err)
	}

	router := routes.Setup(db, cfg)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		log.Info.Printf("Server is running on port %s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error.Fatalf("listen: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Info.Println("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error.Printf("server forced to shutdown: %v", err)
	}

	if err := repositories.CloseStore(db); err != nil {
		os.Exit(1)
	}
}
