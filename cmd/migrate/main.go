package main

import (
	"context"
	"database/sql"
	"flag"
	"log"
	"time"

	"toala-backend/internal/config"
	"toala-backend/internal/logger"
	"toala-backend/internal/repository/postgres"

	_ "github.com/lib/pq"
)

func main() {
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	timeout := flag.Duration("timeout", 30*time.Second, "Time allowed for the migration")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Applying database schema", "host", cfg.Database.Host, "database", cfg.Database.Database)

	db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		log.Fatalf("Failed to ping database: %v", err)
	}
	if err := postgres.Migrate(ctx, db); err != nil {
		logger.Error("Migration failed", "error", err)
		log.Fatalf("Migration failed: %v", err)
	}
	logger.Info("Database schema is up to date")
}
