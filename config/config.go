package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"blogpress/log"
)

// Config holds all runtime settings, resolved once at startup.
type Config struct {
	// Port the HTTP server listens on.
	Port string
	// DBPath is the on-disk location of the document store.
	// Empty selects an in-memory store (used by tests).
	DBPath string
	// SchemaLenient relaxes field requiredness on create/update.
	// The default (strict) matches the documented API contract.
	SchemaLenient bool
	// ImageMaxWidth is the resize target for uploaded images.
	// Zero disables resizing and stores originals untouched.
	ImageMaxWidth int
}

// Load reads configuration from the environment, picking up a .env
// file first if one exists.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Info.Println("No .env file found, using environment")
	}

	return &Config{
		Port:          getenv("PORT", "3000"),
		DBPath:        getenv("BLOG_DB_PATH", "data/blog"),
		SchemaLenient: getenvBool("SCHEMA_LENIENT", false),
		ImageMaxWidth: getenvInt("IMAGE_MAX_WIDTH", 800),
	}
}

func getenv(key, def string) string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	return v
}

func getenvBool(key string, def bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		log.Warn.Printf("invalid value %q for %s, using default", v, key)
		return def
	}
	return b
}

func getenvInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Warn.Printf("invalid value %q for %s, using default", v, key)
		return def
	}
	return n
}
