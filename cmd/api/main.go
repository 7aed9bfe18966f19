package main

import (
	"context"
	"log"

	"stackpilot-backend/internal/bootstrap"
	"stackpilot-backend/internal/shared/config"
	"stackpilot-backend/internal/shared/server"
)

func main() {
	cfg := config.Load()

	app, err := bootstrap.Build(cfg)
	if err != nil {
		log.Fatalf("bootstrap error: %v", err)
	}

	if cfg.SeedOnStart {
		if err := app.Seed(context.Background()); err != nil {
			log.Fatalf("seed error: %v", err)
		}
	}

	addr := server.Addr(cfg.Port)
	log.Printf("Starting API server on %s", addr)

	if err := app.Router.Run(addr); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
