package main

// Load the built-in catalog and graph into the database:
//   go run ./cmd/seed

import (
	"context"
	"log"
	"os"

	"stackpilot-backend/internal/bootstrap"
	"stackpilot-backend/internal/shared/config"
)

func main() {
	cfg := config.Load()
	if cfg.DatabaseURL == "" {
		log.Printf("DATABASE_URL is required to seed")
		os.Exit(1)
	}

	app, err := bootstrap.Build(cfg)
	if err != nil {
		log.Printf("bootstrap error: %v", err)
		os.Exit(1)
	}

	if err := app.Seed(context.Background()); err != nil {
		log.Printf("seed error: %v", err)
		os.Exit(1)
	}
	log.Printf("seed complete")
}
