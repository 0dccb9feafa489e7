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

	"github.com/nutriquery/backend/config"
	"github.com/nutriquery/backend/internal/catalog"
	httpDelivery "github.com/nutriquery/backend/internal/delivery/http"
	"github.com/nutriquery/backend/internal/domain"
	"github.com/nutriquery/backend/internal/infrastructure/cache"
	"github.com/nutriquery/backend/internal/infrastructure/logger"
	"github.com/nutriquery/backend/internal/infrastructure/openfoodfacts"
	"github.com/nutriquery/backend/internal/usecase"
	"go.uber.org/zap"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "nutriquery: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	log, err := logger.New(cfg.Server.Environment, cfg.Log.Level)
	if err != nil {
		return err
	}
	defer log.Sync()

	log.Info("starting NutriQuery backend",
		zap.String("version", httpDelivery.Version),
		zap.String("environment", cfg.Server.Environment),
		zap.String("port", cfg.Server.Port),
		zap.String("cache_type", cfg.Cache.Type))

	foods, err := loadCatalog(cfg.Catalog.Path)
	if err != nil {
		return err
	}
	log.Info("catalog loaded", zap.Int("foods", foods.Len()), zap.String("path", cfg.Catalog.Path))

	// Initialize infrastructure dependencies
	var repo domain.CacheRepository
	if cfg.Cache.Type == "memory" {
		memoryCache := cache.NewMemoryCache()
		defer memoryCache.Close()
		repo = memoryCache
		log.Info("cache enabled", zap.Duration("ttl", cfg.Cache.TTL))
	}

	offClient := openfoodfacts.NewClient(openfoodfacts.ClientConfig{
		BaseURL:           cfg.OFF.BaseURL,
		Language:          cfg.OFF.Language,
		UserAgent:         cfg.OFF.UserAgent,
		Timeout:           cfg.OFF.Timeout,
		RequestsPerMinute: cfg.RateLimit.OFF,
	}, log)
	log.Info("Open Food Facts configured",
		zap.String("base_url", cfg.OFF.BaseURL),
		zap.String("language", offClient.Language()),
		zap.Duration("timeout", cfg.OFF.Timeout))

	// Initialize usecase layer
	analysisService := usecase.NewAnalysisService(foods, offClient, repo, log, usecase.AnalysisServiceConfig{
		Language:             cfg.OFF.Language,
		CacheTTL:             cfg.Cache.TTL,
		MaxConcurrentLookups: cfg.Resolver.MaxConcurrentLookups,
	})

	handler := httpDelivery.NewHandler(analysisService, log)
	router := httpDelivery.SetupRouter(cfg, handler)

	srv := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
		// slow upstream lookups are bounded by the OFF client timeout
		ReadTimeout:  15 * time.Second,
		WriteTimeout: cfg.OFF.Timeout + 15*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		log.Info("server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serveErr:
		return fmt.Errorf("server failed: %w", err)
	case sig := <-quit:
		log.Info("shutting down server", zap.String("signal", sig.String()))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error("server forced to shutdown", zap.Error(err))
	}

	log.Info("server exited")
	return nil
}

// loadCatalog reads the YAML catalog at path, or returns the built-in one
func loadCatalog(path string) (*catalog.Catalog, error) {
	if path == "" {
		return catalog.Default(), nil
	}
	c, err := catalog.LoadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}
	return c, nil
}
