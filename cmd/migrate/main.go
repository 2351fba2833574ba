package main

import (
	"log"

	"bookify/internal/config"
	"bookify/internal/database"
	"bookify/internal/server"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("db connect failed: %v", err)
	}

	if err := server.Migrate(db); err != nil {
		log.Fatalf("migrate failed: %v", err)
	}

	log.Printf("migration completed dialect=%s", database.Dialect(db))
}
