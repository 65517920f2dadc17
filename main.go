package main

import (
	"embed"
	"io/fs"
	"log"

	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"sheetlens/adapters/memory"
	"sheetlens/adapters/postgres"
	"sheetlens/internal/config"
	"sheetlens/internal/errors"
	"sheetlens/ports"
	"sheetlens/ui"
)

//go:embed ui/templates/*.html ui/guide.md
var embeddedFiles embed.FS

func main() {
	// Load environment variables from .env file (ignore if not found)
	if err := godotenv.Load(); err != nil {
		log.Printf("[Main] no .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("[Main] configuration error: %v", err)
	}

	store, err := buildCatalogStore(cfg)
	if err != nil {
		log.Fatalf("[Main] catalog store setup failed: %v", err)
	}

	uiFiles, err := fs.Sub(embeddedFiles, "ui")
	if err != nil {
		log.Fatalf("[Main] embedded files missing: %v", err)
	}

	server, err := ui.NewServer(cfg, store, uiFiles)
	if err != nil {
		log.Fatalf("[Main] server setup failed: %v", err)
	}

	if err := server.Run(); err != nil {
		log.Fatalf("[Main] server stopped: %v", err)
	}
}

// buildCatalogStore selects the postgres-backed catalog when DATABASE_URL is
// set and falls back to the in-memory store otherwise.
func buildCatalogStore(cfg *config.Config) (ports.CatalogStore, error) {
	if cfg.Database.URL == "" {
		log.Printf("[Main] DATABASE_URL not set, using in-memory catalog")
		return memory.NewCatalogStore(), nil
	}

	db, err := sqlx.Connect("postgres", cfg.Database.URL)
	if err != nil {
		return nil, errors.Wrap(err, "failed to connect to database")
	}
	if err := db.Ping(); err != nil {
		return nil, errors.Wrap(err, "failed to ping database")
	}

	store, err := postgres.NewCatalogStore(db)
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize catalog schema")
	}
	log.Printf("[Main] using postgres catalog")
	return store, nil
}
