package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/shopspring/decimal"

	"fd-calculator/config"
	httpLayer "fd-calculator/http"
	"fd-calculator/logger"
	"fd-calculator/repository"
	"fd-calculator/security"
	"fd-calculator/service"
)

func main() {
	config.LoadConfig()
	logger.InitLogger(config.Cfg.LogLevel)

	// Money goes out as JSON numbers, as the other platform services send it.
	decimal.MarshalJSONWithoutQuotes = true

	cache, closeCache := newCache()
	defer closeCache()

	calculationRepo, closeRepo, err := newCalculationRepository()
	if err != nil {
		logger.L.Error("Failed to open calculation history", "error", err)
		os.Exit(1)
	}
	defer closeRepo()

	calculatorService := service.NewFdCalculatorService(
		calculationRepo,
		cache,
		service.NewProductClient(config.Cfg.ProductServiceURL, config.Cfg.UpstreamTimeout),
		service.NewCustomerClient(config.Cfg.CustomerServiceURL, config.Cfg.UpstreamTimeout),
	)
	calculatorHandler := httpLayer.NewCalculatorHandler(calculatorService)

	rateLimiter := httpLayer.NewRateLimiter(config.Cfg.RateLimitCapacity, config.Cfg.RateLimitWindow)
	defer rateLimiter.Stop()

	var validator *security.TokenValidator
	if config.Cfg.JWTSecret != "" {
		validator = security.NewTokenValidator(config.Cfg.JWTSecret)
	} else {
		logger.L.Warn("JWT_SECRET not set, serving without authentication")
	}

	server := &http.Server{
		Addr:         ":" + config.Cfg.Port,
		Handler:      httpLayer.NewRouter(calculatorHandler, rateLimiter, validator),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.L.Info("FD calculator API listening", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		logger.L.Error("Error starting server", "error", err)
		return
	case <-quit:
		logger.L.Info("Shutting down server...")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.L.Error("Error during server shutdown", "error", err)
	}

	logger.L.Info("Server exited")
}

func newCache() (repository.CacheRepository, func()) {
	if config.Cfg.CacheBackend != config.CacheBackendRedis {
		return repository.NewMemoryCache(config.Cfg.CacheTTL), func() {}
	}

	cache := repository.NewRedisCache(config.Cfg.RedisAddr, config.Cfg.CacheTTL)
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := cache.Ping(ctx); err != nil {
		// Lookups still work without the cache; every Get becomes a miss.
		logger.L.Warn("Redis not reachable at startup", "addr", config.Cfg.RedisAddr, "error", err)
	}
	return cache, func() {
		if err := cache.Close(); err != nil {
			logger.L.Warn("Error closing redis client", "error", err)
		}
	}
}

func newCalculationRepository() (repository.CalculationRepository, func(), error) {
	if config.Cfg.DatabasePath == "" {
		return repository.NewCalculationRepositoryMemory(), func() {}, nil
	}

	repo, err := repository.NewCalculationRepositorySQLite(config.Cfg.DatabasePath)
	if err != nil {
		return nil, nil, err
	}
	return repo, func() {
		if err := repo.Close(); err != nil {
			logger.L.Warn("Error closing calculation history", "error", err)
		}
	}, nil
}
