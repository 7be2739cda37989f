package routes

import (
	"github.com/dgraph-io/badger/v4"
	"github.com/gorilla/mux"

	"blogpress/app/controllers"
	"blogpress/app/images"
	"blogpress/app/middleware"
	"blogpress/app/repositories"
	"blogpress/app/services"
	"blogpress/config"
	"blogpress/docs"
)

// Setup wires the repository, service and controller layers onto a
// router with the middleware chain applied.
func Setup(db *badger.DB, cfg *config.Config) *mux.Router {
	repo := repositories.NewBadgerPostRepository(db)
	service := services.NewPostService(repo, cfg.SchemaLenient)
	processor := images.NewProcessor(cfg.ImageMaxWidth)
	controller := controllers.NewPostController(service, processor)

	router := mux.NewRouter()
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)

	router.HandleFunc("/", controller.Root).Methods("GET")
	router.HandleFunc("/posts", controller.Index).Methods("GET")
	router.HandleFunc("/posts", controller.Create).Methods("POST")
	router.HandleFunc("/posts/{postId}", controller.Update).Methods("PUT")
	router.HandleFunc("/posts/{postId}", controller.Delete).Methods("DELETE")
	router.HandleFunc("/posts/{postId}/like", controller.Like).Methods("POST")

	router.HandleFunc("/api-docs", docs.UIHandler).Methods("GET")
	router.HandleFunc("/api-docs/openapi.json", docs.SpecHandler).Methods("GET")

	return router
}
