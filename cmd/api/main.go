// Package main provides the entry point for the HRHub API server
package main

import (
	"context"
	"flag"
	"log"
	"os/signal"
	"syscall"

	"hrhub/internal/api/server"
	"hrhub/internal/config"
	"hrhub/internal/database"
	"hrhub/internal/janitor"
	"hrhub/internal/repository/postgres"
	"hrhub/internal/validation"

	"github.com/joho/godotenv"
)

func main() {
	envFile := flag.String("env", ".env", "Path to env file")
	flag.Parse()

	if err := godotenv.Load(*envFile); err != nil && *envFile == ".env" {
		log.Printf("Warning: %v", err)
	}

	cfg := &config.Config{}
	if err := cfg.LoadFromEnv(); err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.Connect(cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := database.RunMigrations(cfg.Database); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	validation.Initialize()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Background cleanup of expired tokens and old audit rows
	cleaner := janitor.New(cfg.Janitor, postgres.NewRefreshTokenRepository(db), postgres.NewAuditLogRepository(db))
	go func() {
		if err := cleaner.Start(ctx); err != nil {
			log.Printf("Janitor stopped: %v", err)
		}
	}()

	if err := server.New(cfg, db).Start(ctx); err != nil {
		log.Fatalf("Server error: %v", err)
	}

	log.Println("Server exiting")
}
