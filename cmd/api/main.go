package main

import (
	"log"

	"github.com/dermatrack/backend/config"
	"github.com/dermatrack/backend/internal/catalog"
	"github.com/dermatrack/backend/internal/database"
	"github.com/dermatrack/backend/internal/server"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Build the catalog index once; a conflicting catalog refuses to boot
	idx, err := catalog.NewIndex(catalog.DefinitionGroups())
	if err != nil {
		log.Fatalf("Failed to build catalog index: %v", err)
	}

	// Initialize database
	db, err := database.NewGorm(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := database.RunMigrations(db, cfg.MigrationsDir); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Create and start server
	srv := server.New(db, idx, cfg)
	log.Printf("Starting server on :%s", cfg.ServerPort)
	if err := srv.Start(cfg.ServerPort); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
