package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	redis "github.com/redis/go-redis/v9"

	"github.com/noah-isme/orcamento-api/internal/budget"
	"github.com/noah-isme/orcamento-api/internal/catalog"
	"github.com/noah-isme/orcamento-api/internal/config"
	"github.com/noah-isme/orcamento-api/internal/document"
	"github.com/noah-isme/orcamento-api/internal/health"
	"github.com/noah-isme/orcamento-api/internal/kvstore"
	"github.com/noah-isme/orcamento-api/internal/obs"
	"github.com/noah-isme/orcamento-api/internal/printer"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}
	logger := obs.NewLogger(cfg.LogFormat, cfg.LogLevel).With().Str("env", cfg.AppEnv).Logger()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var (
		store       kvstore.Store
		redisClient *redis.Client
	)
	if cfg.RedisURL != "" {
		opts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			logger.Fatal().Err(err).Msg("parse redis url")
		}
		redisClient = redis.NewClient(opts)
		defer func() {
			if err := redisClient.Close(); err != nil {
				logger.Error().Err(err).Msg("close redis")
			}
		}()
		if err := redisClient.Ping(ctx).Err(); err != nil {
			logger.Fatal().Err(err).Msg("ping redis")
		}
		store = kvstore.Redis{Client: redisClient}
	} else {
		logger.Info().Msg("no REDIS_URL configured, catalog persists in process memory only")
		store = kvstore.NewMemory()
	}

	catalogSvc := catalog.NewService(catalog.ServiceConfig{
		Store:  store,
		Key:    cfg.CatalogStorageKey,
		TTL:    cfg.CatalogTTL,
		Logger: logger,
	})
	catalogSvc.Load(ctx)

	budgetSvc := budget.NewService(time.Now)
	budgetHandler := &budget.Handler{Svc: budgetSvc}
	catalogHandler := &catalog.Handler{Svc: catalogSvc, Budget: budgetSvc}
	sink := printer.Dispatcher{
		Surface: printer.FileSurface{Dir: cfg.PrintOutputDir, Logger: logger},
		Delay:   cfg.PrintDelay,
		Logger:  logger,
	}
	documentHandler := &document.Handler{Svc: budgetSvc, Sink: sink, Currency: cfg.CurrencyCode}

	var httpMetrics *obs.HTTPMetrics
	if cfg.MetricsEnabled {
		httpMetrics = obs.NewHTTPMetrics(cfg.MetricsNamespace, nil)
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	if httpMetrics != nil {
		r.Use(obs.HTTPObs{Metrics: httpMetrics}.Middleware)
	}
	r.Use(obs.RequestLogger{Logger: logger}.Middleware)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins(cfg),
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	if cfg.MetricsEnabled {
		r.Handle("/metrics", promhttp.Handler())
	}
	healthHandler := health.Handler{Checker: storageChecker{redis: redisClient}}
	r.Get("/health/live", healthHandler.Live)
	r.Get("/health/ready", healthHandler.Ready)

	r.Route("/api/v1", func(v chi.Router) {
		v.Route("/budget", func(b chi.Router) {
			b.Get("/", budgetHandler.Get)
			b.Post("/reset", budgetHandler.Reset)
			b.Get("/totals", budgetHandler.Totals)
			b.Patch("/client", budgetHandler.PatchClient)
			b.Patch("/company", budgetHandler.PatchCompany)
			b.Patch("/meta", budgetHandler.PatchMeta)
			b.Post("/items", budgetHandler.AddItem)
			b.Patch("/items/{id}", budgetHandler.UpdateItem)
			b.Delete("/items/{id}", budgetHandler.DeleteItem)
			b.Post("/print", documentHandler.Print)
			b.Get("/document.pdf", documentHandler.PDF)
			b.Get("/document.html", documentHandler.HTML)
		})
		v.Route("/catalog", func(c chi.Router) {
			c.Get("/", catalogHandler.List)
			c.Post("/", catalogHandler.Add)
			c.Delete("/{id}", catalogHandler.Delete)
			c.Post("/{id}/instantiate", catalogHandler.Instantiate)
		})
	})

	server := &http.Server{
		Addr:              cfg.HTTPAddr(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info().Str("addr", server.Addr).Msg("http server listening")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("http server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("shutdown http server")
	}
	logger.Info().Msg("server stopped")
}

func allowedOrigins(cfg *config.Config) []string {
	if len(cfg.CORSAllowedOrigins) == 0 {
		return []string{"*"}
	}
	return cfg.CORSAllowedOrigins
}

type storageChecker struct {
	redis *redis.Client
}

// PingStorage probes Redis when configured; the in-memory store is
// always ready.
func (c storageChecker) PingStorage(ctx context.Context, timeout time.Duration) error {
	if c.redis == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	return c.redis.Ping(ctx).Err()
}
