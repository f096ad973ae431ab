package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/shopsearch/backend/config"
	httpDelivery "github.com/shopsearch/backend/internal/delivery/http"
	"github.com/shopsearch/backend/internal/domain"
	"github.com/shopsearch/backend/internal/infrastructure/cache"
	"github.com/shopsearch/backend/internal/infrastructure/catalog"
	"github.com/shopsearch/backend/internal/logger"
	"github.com/shopsearch/backend/internal/usecase"
)

const shutdownTimeout = 5 * time.Second

func main() {
	// Load .env for local development (optional)
	_ = godotenv.Load()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	zlog, err := logger.New(cfg.Server.Environment, cfg.Logging.Level)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer func() { _ = zlog.Sync() }()

	zlog.Info("starting shopsearch backend",
		zap.String("environment", cfg.Server.Environment),
		zap.String("port", cfg.Server.Port),
		zap.String("catalog", cfg.Catalog.Driver),
		zap.String("cache", cfg.Cache.Type))

	// Catalog store
	var catalogRepo domain.CatalogRepository
	switch cfg.Catalog.Driver {
	case "postgres":
		pg, err := catalog.NewPostgresCatalog(context.Background(), cfg.Catalog.PostgresURL)
		if err != nil {
			zlog.Fatal("failed to connect catalog database", zap.Error(err))
		}
		defer pg.Close()
		catalogRepo = pg
	default:
		mem := catalog.NewMemoryCatalog()
		if cfg.Catalog.SeedFile != "" {
			n, err := catalog.LoadSeedFile(context.Background(), mem, cfg.Catalog.SeedFile)
			if err != nil {
				zlog.Fatal("failed to load catalog seed", zap.Error(err))
			}
			zlog.Info("catalog seeded", zap.Int("products", n), zap.String("file", cfg.Catalog.SeedFile))
		}
		catalogRepo = mem
	}

	// Response cache
	var cacheRepo domain.CacheRepository
	switch cfg.Cache.Type {
	case "redis":
		redis, err := cache.NewRedisCache(cfg.Cache.RedisAddrs, cfg.Cache.RedisPassword)
		if err != nil {
			zlog.Fatal("failed to create redis cache", zap.Error(err))
		}
		defer redis.Close()
		if err := redis.WaitForReady(context.Background(), 10*time.Second); err != nil {
			zlog.Fatal("redis not ready", zap.Error(err))
		}
		cacheRepo = redis
	default:
		cacheRepo = cache.NewMemoryCache()
	}

	// Usecase layer
	searchService := usecase.NewSearchService(catalogRepo, cacheRepo, zlog,
		usecase.SearchServiceConfig{CacheTTL: cfg.Cache.TTL})
	engagementService := usecase.NewEngagementService(catalogRepo, zlog)

	// HTTP delivery
	handler := httpDelivery.NewHandler(searchService, engagementService, catalogRepo, zlog)
	router := httpDelivery.SetupRouter(cfg, zlog, handler)

	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Server.Port),
		Handler: router,
	}

	go func() {
		zlog.Info("server listening", zap.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zlog.Fatal("server error", zap.Error(err))
		}
	}()

	// Graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		zlog.Error("server shutdown error", zap.Error(err))
	}
	zlog.Info("server stopped")
}
