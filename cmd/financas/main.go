package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joaquimoiio/financas-go/internal/config"
	"github.com/joaquimoiio/financas-go/internal/domain"
	"github.com/joaquimoiio/financas-go/internal/handler"
	"github.com/joaquimoiio/financas-go/internal/infra/cache"
	"github.com/joaquimoiio/financas-go/internal/infra/observability"
	"github.com/joaquimoiio/financas-go/internal/infra/resilience"
	"github.com/joaquimoiio/financas-go/internal/infra/supabase"
	"github.com/joaquimoiio/financas-go/internal/service"

	"go.uber.org/zap"
)

func main() {
	_ = config.LoadDotEnv(".env")
	cfg := config.Load()

	logger := observability.NewLogger(cfg.LogLevel)
	defer logger.Sync()

	shutdownTracer, err := observability.InitTracer(cfg.OTLPEndpoint, "financas-api")
	if err != nil {
		logger.Warn("tracing disabled", zap.Error(err))
		shutdownTracer = func(context.Context) error { return nil }
	}

	metrics := observability.NewMetrics()
	dashboardCache := cache.New[domain.DashboardSummary](cfg.CacheTTL)

	resCfg := resilience.Config{
		MaxRetries:     cfg.MaxRetries,
		InitialBackoff: cfg.InitialBackoff,
		MaxConcurrency: cfg.MaxConcurrency,
	}
	store := supabase.NewClient(
		&http.Client{Timeout: cfg.HTTPTimeout},
		cfg.SupabaseURL,
		cfg.SupabaseAnonKey,
		cfg.SupabaseServiceKey,
		resilience.NewCircuitBreaker("supabase"),
		resCfg,
		logger,
	)

	financeSvc := service.NewFinanceService(store, dashboardCache, metrics, logger)
	authSvc := service.NewAuthService(store, logger, cfg.JWTSecret, cfg.JWTAccessTTL, cfg.JWTRefreshTTL)

	router := handler.NewRouter(handler.Deps{
		Finance: financeSvc,
		Auth:    authSvc,
		Metrics: metrics,
		Logger:  logger,
		Store:   store,
	})

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("server starting", zap.Int("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("forced shutdown", zap.Error(err))
	}
	if err := shutdownTracer(ctx); err != nil {
		logger.Error("tracer shutdown failed", zap.Error(err))
	}
	logger.Info("server stopped")
}
