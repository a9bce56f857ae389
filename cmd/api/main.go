package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"

	_ "github.com/ghuser/fridgekeeper/docs/swagger"
	"github.com/ghuser/fridgekeeper/pkg/app"
	"github.com/ghuser/fridgekeeper/pkg/cache"
	"github.com/ghuser/fridgekeeper/pkg/config"
	"github.com/ghuser/fridgekeeper/pkg/events"
	"github.com/ghuser/fridgekeeper/pkg/httpx"
	"github.com/ghuser/fridgekeeper/pkg/logger"
	"github.com/ghuser/fridgekeeper/pkg/telemetry"
	fridgeApi "github.com/ghuser/fridgekeeper/services/fridge/application/api"
	fridgeSvcs "github.com/ghuser/fridgekeeper/services/fridge/application/services"
	"github.com/ghuser/fridgekeeper/services/fridge/application/subscribers"
)

// @title			Fridgekeeper API
// @version		1.0
// @description	In-memory smart fridge inventory: item tracking, fill factors and restock reports.
// @license.name	MIT
// @license.url	https://opensource.org/licenses/MIT
// @host			localhost:8080
// @BasePath		/api
// @schemes		http https
func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	if err := config.ValidateForProduction(cfg); err != nil {
		slog.Error("production config validation failed", "error", err)
		os.Exit(1)
	}

	log := logger.New(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Telemetry: OTel tracing + metrics
	otelShutdown, metricsHandler, err := telemetry.Setup(ctx, cfg)
	if err != nil {
		log.Error("failed to setup otel", "error", err)
		os.Exit(1)
	}
	defer otelShutdown(context.Background()) //nolint:errcheck

	// Crash reporting: Sentry (optional, log and continue on failure)
	if err := telemetry.SetupSentry(cfg); err != nil {
		log.Warn("failed to setup sentry, continuing without crash reporting", "error", err)
	}
	defer telemetry.SentryFlush()

	fridgeMetrics, err := telemetry.NewFridgeMetrics(otel.GetMeterProvider())
	if err != nil {
		log.Error("failed to create fridge metrics", "error", err)
		os.Exit(1) //nolint:gocritic // intentional: startup failure, deferred flushes are best-effort
	}

	eventBus, err := events.NewEventBus(cfg, log)
	if err != nil {
		log.Error("failed to setup event bus", "error", err)
		os.Exit(1) //nolint:gocritic
	}
	defer eventBus.Close() //nolint:errcheck
	log.Info("event bus ready", "backend", eventBus.Backend())

	var redisClient *cache.RedisClient
	if cfg.RedisURL != "" {
		redisClient, err = cache.NewRedisClient(ctx, cfg.RedisURL)
		if err != nil {
			log.Error("failed to connect to redis", "error", err)
			os.Exit(1) //nolint:gocritic
		}
		defer redisClient.Close() //nolint:errcheck
		log.Info("redis connected, event de-duplication enabled")
	} else {
		log.Warn("REDIS_URL not set, redelivered events may be applied twice")
	}

	appConfig := &app.Application{
		Config:   cfg,
		Logger:   log,
		EventBus: eventBus,
		Redis:    redisClient,
		Metrics:  fridgeMetrics,
	}
	fridge := fridgeSvcs.New(appConfig)

	if err := registerSubscribers(ctx, appConfig, fridge); err != nil {
		log.Error("failed to register subscribers", "error", err)
		os.Exit(1) //nolint:gocritic
	}

	r := httpx.NewRouter(
		httpx.ServerConfig{
			ServiceName:        cfg.ServiceName,
			IsDevelopment:      cfg.Environment == config.EnvDevelopment,
			CORSAllowedOrigins: cfg.CORSAllowedOrigins,
		},
		httpx.Middlewares{
			Recovery: logger.Recovery(log),
			Sentry:   telemetry.SentryMiddleware(),
			Tracing:  otelhttp.NewMiddleware(cfg.ServiceName),
			Logging:  logger.Middleware(log),
		},
	)

	checks := httpx.HealthChecks{EventBus: eventBus}
	if redisClient != nil {
		checks.Redis = redisClient
	}
	r.Get("/health", httpx.HealthHandler(checks))
	r.Get("/metrics", metricsHandler.ServeHTTP)
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))
	r.Route("/api", func(r chi.Router) {
		registerRoutes(r, fridge)
	})

	srv := httpx.NewServer(cfg.HTTPAddr, r)

	go func() {
		log.Info("server listening", "addr", srv.Addr, "env", cfg.Environment)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server error", "error", err)
			stop()
		}
	}()

	<-ctx.Done()

	log.Info("shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("forced shutdown", "error", err)
	}
	// EventBus.Close() (via defer) waits up to 30s for in-flight handlers.
	log.Info("server stopped")
}

// registerRoutes mounts all service routes under /api.
func registerRoutes(r chi.Router, fridge *fridgeSvcs.Services) {
	fridgeApi.FridgeRoutes(r, fridge)
}

// registerSubscribers wires the detector topics to the same fridge the API serves.
func registerSubscribers(ctx context.Context, a *app.Application, fridge *fridgeSvcs.Services) error {
	var dedup subscribers.Deduper
	if a.Redis != nil {
		dedup = cache.NewEventDeduper(a.Redis)
	}

	if err := subscribers.NewSensorSubscriber(fridge, dedup, a.Logger).Register(ctx, a.EventBus); err != nil {
		return err
	}
	a.Logger.Info("event subscribers registered")
	return nil
}
