package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jeleniasty/budget-aggregator/config"
	httpHandler "github.com/jeleniasty/budget-aggregator/internal/adapter/http/handler"
	pgStorage "github.com/jeleniasty/budget-aggregator/internal/adapter/storage/postgres"
	redisStorage "github.com/jeleniasty/budget-aggregator/internal/adapter/storage/redis"
	"github.com/jeleniasty/budget-aggregator/internal/core/ports"
	"github.com/jeleniasty/budget-aggregator/internal/jobs"
	"github.com/jeleniasty/budget-aggregator/internal/service"
	"github.com/jeleniasty/budget-aggregator/pkg/logger"
)

func main() {
	// Load configuration
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.New(cfg.Log.Level, cfg.Log.Pretty)

	log.Info().
		Str("mode", cfg.Server.Mode).
		Int("port", cfg.Server.Port).
		Msg("Starting Budget Aggregator")

	ctx := context.Background()

	// Initialize PostgreSQL pool
	pool, err := pgStorage.NewPool(ctx, cfg.Database, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()
	log.Info().Msg("PostgreSQL connected")

	// Initialize Redis client
	rdb, err := redisStorage.NewClient(ctx, cfg.Redis, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer rdb.Close()
	log.Info().Msg("Redis connected")

	// Initialize repositories
	txRepo := pgStorage.NewTransactionRepo(pool)
	jobRepo := pgStorage.NewImportJobRepo(pool)
	transactor := pgStorage.NewTransactor(pool)

	// Initialize core services
	encSvc, err := service.NewAESEncryptionService(cfg.Encryption)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize encryption service")
	}
	validator := service.NewCSVRowValidator()
	batchWriter := service.NewTransactionDataService(txRepo, encSvc, transactor, log)

	// Initialize business services. The import service, importer and worker
	// pool form a loop (service dispatches to pool, pool runs importer,
	// importer notifies service), so the dispatcher is bound last.
	importSvc := service.NewImportService(jobRepo, nil, log)
	importer := service.NewTransactionImporter(validator, batchWriter, importSvc, log)
	importPool := jobs.NewImportPool(importer, cfg.Import.Workers, cfg.Import.QueueCapacity, log)
	importSvc.SetDispatcher(importPool)
	importPool.Start()

	aggregationSvc := service.NewAggregationService(txRepo, encSvc, log)

	// Initialize rate limit store
	rateLimitStore := redisStorage.NewRateLimitStore(rdb)

	// Initialize health checkers
	pgHealth := pgStorage.NewHealthCheck(pool)
	redisHealth := redisStorage.NewHealthCheck(rdb)

	// Setup Gin router with all routes
	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		ImportSvc:      importSvc,
		AggregationSvc: aggregationSvc,
		RateLimitStore: rateLimitStore,
		HealthCheckers: []ports.HealthChecker{pgHealth, redisHealth},
		Logger:         log,
	})

	// HTTP Server with graceful shutdown
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("addr", addr).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	// Drain queued imports before letting the process exit; jobs still in
	// flight after the deadline stay PROCESSING and can be re-uploaded.
	if err := importPool.Stop(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Import pool did not drain in time")
	}

	log.Info().Msg("Server exited")
}
