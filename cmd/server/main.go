package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/rwedu/schoolverify-backend/internal/cache"
	"github.com/rwedu/schoolverify-backend/internal/config"
	"github.com/rwedu/schoolverify-backend/internal/database"
	"github.com/rwedu/schoolverify-backend/internal/handler"
	"github.com/rwedu/schoolverify-backend/internal/logger"
	"github.com/rwedu/schoolverify-backend/internal/middleware"
	"github.com/rwedu/schoolverify-backend/internal/notify"
	"github.com/rwedu/schoolverify-backend/internal/repository"
	"github.com/rwedu/schoolverify-backend/internal/router"
	"github.com/rwedu/schoolverify-backend/internal/service"
	"github.com/rwedu/schoolverify-backend/internal/validator"
	ws "github.com/rwedu/schoolverify-backend/internal/websocket"
	"github.com/rwedu/schoolverify-backend/internal/worker"
)

func main() {
	// ─── Load Configuration ────────────────────────────────────────────
	cfg := config.Load()

	// ─── Initialize Logger ─────────────────────────────────────────────
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)
	log.Info().
		Str("port", cfg.ServerPort).
		Str("mode", cfg.GinMode).
		Str("data_source", cfg.DataSource).
		Str("log_level", cfg.LogLevel).
		Msg("Starting school verification backend")

	// ─── Initialize Validator ──────────────────────────────────────────
	validator.Setup()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// ─── Catalog Source ────────────────────────────────────────────────
	var source repository.Source = repository.NewSeedSource()
	var pool *pgxpool.Pool
	switch cfg.DataSource {
	case config.DataSourceSeed:
	case config.DataSourcePostgres:
		var err error
		pool, err = database.NewPostgresPool(ctx, cfg, log)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
		}
		source = repository.NewSchoolRepository(pool)
	default:
		log.Fatal().Str("data_source", cfg.DataSource).Msg("Unknown DATA_SOURCE")
	}

	catalog, err := service.LoadCatalog(ctx, source, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load school catalog")
	}
	// The catalog is read once; the pool is not needed afterwards.
	if pool != nil {
		pool.Close()
	}

	// ─── Connect to Redis (optional) ───────────────────────────────────
	rdb, err := database.NewRedisClient(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	if rdb != nil {
		defer rdb.Close()
	}

	// ─── Notification Hub & Workers ────────────────────────────────────
	workerCtx, workerCancel := context.WithCancel(context.Background())
	var workers sync.WaitGroup

	hub := ws.NewHub(log)
	workers.Add(1)
	go func() {
		defer workers.Done()
		hub.Run(workerCtx)
	}()

	publisher := notificationPublisher(rdb, hub)
	if rdb != nil {
		relay := worker.NewNotificationRelay(rdb, hub, log)
		workers.Add(1)
		go func() {
			defer workers.Done()
			relay.Start(workerCtx)
		}()
	}

	// ─── Initialize Services ──────────────────────────────────────────
	store := cache.New(rdb, cfg.StatsCacheTTL)
	dashboardService := service.NewDashboardService(cfg, catalog, store, log)
	analyticsService := service.NewAnalyticsService(cfg, catalog, store, log)
	registryService := service.NewRegistryService(catalog)
	mapService := service.NewMapService(catalog)
	verificationService := service.NewVerificationService(catalog, publisher, log)

	// ─── Prewarm Redis Caches ─────────────────────────────────────────
	// Snapshots are keyed by catalog version, so stale entries from an
	// older dataset are never served.
	if rdb != nil {
		if err := dashboardService.Prewarm(ctx); err != nil {
			log.Warn().Err(err).Msg("Dashboard prewarm failed")
		}
		if err := analyticsService.Prewarm(ctx); err != nil {
			log.Warn().Err(err).Msg("Analytics prewarm failed")
		}
	}

	// ─── Initialize Handlers ──────────────────────────────────────────
	handlers := &router.Handlers{
		Health:       handler.NewHealthHandler(catalog, rdb),
		Geography:    handler.NewGeographyHandler(),
		Dashboard:    handler.NewDashboardHandler(dashboardService, analyticsService),
		School:       handler.NewSchoolHandler(registryService, mapService),
		Verification: handler.NewVerificationHandler(verificationService),
		Notification: handler.NewNotificationHandler(hub, log, cfg.AllowedOrigins),
	}

	var limiter *middleware.RateLimiter
	if cfg.ActionRateLimit > 0 {
		limiter = middleware.NewRateLimiter(workerCtx, cfg.ActionRateLimit, time.Minute)
	}

	// ─── Setup Router ──────────────────────────────────────────────────
	r := router.SetupRouter(cfg, handlers, limiter, log)

	// ─── Create HTTP Server ────────────────────────────────────────────
	srv := &http.Server{
		Addr:              ":" + cfg.ServerPort,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// ─── Start Server in Goroutine ─────────────────────────────────────
	go func() {
		log.Info().Str("addr", ":"+cfg.ServerPort).Msg("Server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server error")
		}
	}()

	// ─── Graceful Shutdown ─────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	log.Info().Str("signal", sig.String()).Msg("Shutting down gracefully...")

	// 1. Stop accepting new HTTP requests (5s timeout).
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("HTTP server shutdown error")
	}

	// 2. Stop the hub (closing websocket clients) and the relay.
	workerCancel()
	workers.Wait()

	log.Info().Msg("Shutdown complete")
}

// notificationPublisher fans out through Redis when it is configured so
// every instance's clients see the event; otherwise straight to the local hub.
func notificationPublisher(rdb *redis.Client, hub *ws.Hub) notify.Publisher {
	if rdb != nil {
		return notify.NewRedisPublisher(rdb)
	}
	return hub
}

// init sets zerolog global defaults before main runs.
func init() {
	zerolog.TimeFieldFormat = time.RFC3339
}
