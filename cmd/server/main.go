package main

import (
	"context"
	"database/sql"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/redis/go-redis/v9"

	httpapi "toala-backend/internal/api/http"
	"toala-backend/internal/api/http/interceptor"
	"toala-backend/internal/config"
	"toala-backend/internal/logger"
	"toala-backend/internal/repository/postgres"
	"toala-backend/internal/security"
	"toala-backend/internal/service"

	_ "github.com/lib/pq"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting Toala API...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "address", cfg.GetServerAddress())
	logger.Info("Database configuration", "host", cfg.Database.Host, "port", cfg.Database.Port, "database", cfg.Database.Database, "user", cfg.Database.User)

	// Initialize Database
	logger.Debug("Connecting to database...", "connection_string", fmt.Sprintf("%s@%s:%d/%s", cfg.Database.User, cfg.Database.Host, cfg.Database.Port, cfg.Database.Database))
	db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)

	// Test database connection
	if err := db.Ping(); err != nil {
		logger.Error("Failed to ping database", "error", err)
		log.Fatalf("Failed to ping database: %v", err)
	}
	logger.Info("Database connection established")

	if cfg.Database.AutoMigrate {
		if err := postgres.Migrate(context.Background(), db); err != nil {
			logger.Error("Failed to apply schema", "error", err)
			log.Fatalf("Failed to apply schema: %v", err)
		}
		logger.Info("Database schema applied")
	}

	// Initialize Repositories
	store := postgres.NewStore(db)

	// Initialize Security
	tokenManager := security.NewTokenManager(cfg.JWT.Secret, cfg.AccessTokenTTL())
	hasher := security.NewBcryptHasher(0)

	// Initialize Services
	authSvc := service.NewAuthService(store.UserRepository, hasher, tokenManager)
	equipmentSvc := service.NewEquipmentService(store.EquipmentRepository, store.UserRepository)
	rentalSvc := service.NewRentalService(store.RentalRepository, store.EquipmentRepository, store.UserRepository)
	messageSvc := service.NewMessageService(
		store.MessageRepository,
		store.RentalRepository,
		store.UserRepository,
		service.MessageOptions{StrictRecipient: cfg.Messages.StrictRecipient},
	)
	if cfg.Messages.StrictRecipient {
		logger.Info("Strict message recipients enabled")
	}

	// Metrics
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		collectors.NewDBStatsCollector(db, cfg.Database.Database),
	)

	opts := httpapi.RouterOptions{
		Metrics:        interceptor.NewMetrics(registry),
		Gatherer:       registry,
		AllowedOrigins: cfg.CORS.AllowedOrigins,
	}

	// Rate limiting for the unauthenticated auth endpoints
	if cfg.Redis.Addr != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer rdb.Close()

		pingCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		if err := rdb.Ping(pingCtx).Err(); err != nil {
			logger.Warn("Redis not reachable, rate limiter will apply its fail policy", "addr", cfg.Redis.Addr, "error", err)
		}
		cancel()

		policy := interceptor.FailOpen
		if cfg.RateLimit.FailClosed {
			policy = interceptor.FailClosed
		}
		opts.Limiter = interceptor.NewRateLimiter(rdb, cfg.RateLimit.AuthRequests, cfg.AuthRateWindow(), policy,
			"auth.register", "auth.login").TrustForwardedFor(cfg.RateLimit.TrustForwardedFor)
		logger.Info("Auth rate limiting enabled", "requests", cfg.RateLimit.AuthRequests, "window", cfg.AuthRateWindow())
	} else {
		logger.Info("Redis address not configured, auth rate limiting disabled")
	}

	handler := httpapi.NewHandler(authSvc, equipmentSvc, rentalSvc, messageSvc, store)

	srv := &http.Server{
		Addr:         cfg.GetServerAddress(),
		Handler:      handler.Routes(opts),
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeoutSeconds) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeoutSeconds) * time.Second,
	}

	go func() {
		logger.Info("HTTP server listening", "address", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("HTTP server error", "error", err)
			log.Fatalf("Failed to serve: %v", err)
		}
	}()

	// Wait for shutdown signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigChan
	logger.Info("Shutting down HTTP server...", "signal", sig.String())

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeoutSeconds)*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Graceful shutdown failed", "error", err)
	}
	logger.Info("HTTP server stopped")
}
