package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"edulearn_backend/catalog"
	"edulearn_backend/config"
	"edulearn_backend/db"
	"edulearn_backend/fixtures"
	"edulearn_backend/handlers"
	"edulearn_backend/middleware"
	"edulearn_backend/routes"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func main() {
	if err := config.LoadDotEnv(); err != nil {
		log.Printf("Warning: %v", err)
	}

	cfg, err := config.Load(".")
	if err != nil {
		log.Fatalf("Config load failed: %v", err)
	}

	logger, err := newLogger(cfg)
	if err != nil {
		log.Fatalf("Logger init failed: %v", err)
	}
	defer logger.Sync()

	if err := run(cfg, logger); err != nil {
		logger.Fatal("server exited", zap.Error(err))
	}
}

func newLogger(cfg *config.Config) (*zap.Logger, error) {
	if cfg.IsDevelopment() {
		return zap.NewDevelopment()
	}
	gin.SetMode(gin.ReleaseMode)
	return zap.NewProduction()
}

func run(cfg *config.Config, logger *zap.Logger) error {
	ctx := context.Background()

	cat, database, err := loadCatalog(ctx, cfg)
	if err != nil {
		return err
	}
	if database != nil {
		defer database.Close()
	}
	logger.Info("catalog loaded",
		zap.String("source", cfg.CatalogSource),
		zap.Int("courses", cat.CourseCount()),
		zap.Int("tutorials", cat.TutorialCount()),
	)

	content, err := handlers.LoadSiteContent(fixtures.Site)
	if err != nil {
		return err
	}

	opts := routes.Options{}
	if database != nil {
		opts.DB = database
	}
	if cfg.RateLimit > 0 {
		limiter, closeLimiter, err := newLimiter(ctx, cfg, logger)
		if err != nil {
			return err
		}
		defer closeLimiter()
		opts.Limiter = limiter
	}

	r := routes.NewRouter(cat, content, logger, cfg.Origins(), opts)

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case err := <-errCh:
		return fmt.Errorf("listen: %w", err)
	case <-quit:
	}
	logger.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}
	return nil
}

// loadCatalog reads the catalog once from the configured source. The returned
// *sql.DB is non-nil only for the postgres source.
func loadCatalog(ctx context.Context, cfg *config.Config) (*catalog.Catalog, *sql.DB, error) {
	switch cfg.CatalogSource {
	case config.SourceFile:
		cat, err := catalog.LoadFile(cfg.CatalogFile)
		return cat, nil, err
	case config.SourcePostgres:
		database, err := db.Initialize(cfg.Database())
		if err != nil {
			return nil, nil, err
		}
		if err := db.InitSchema(database); err != nil {
			database.Close()
			return nil, nil, err
		}
		embedded, err := catalog.LoadEmbedded()
		if err != nil {
			database.Close()
			return nil, nil, err
		}
		if _, err := db.SeedIfEmpty(ctx, database, embedded); err != nil {
			database.Close()
			return nil, nil, err
		}
		cat, err := db.LoadCatalog(ctx, database)
		if err != nil {
			database.Close()
			return nil, nil, err
		}
		return cat, database, nil
	default:
		cat, err := catalog.LoadEmbedded()
		return cat, nil, err
	}
}

func newLimiter(ctx context.Context, cfg *config.Config, logger *zap.Logger) (middleware.Limiter, func(), error) {
	if cfg.RedisAddr == "" {
		logger.Info("rate limiting in process", zap.Int("limit", cfg.RateLimit), zap.Duration("window", cfg.RateWindow))
		return middleware.NewLocalLimiter(cfg.RateLimit, cfg.RateWindow), func() {}, nil
	}

	rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
	if err := rdb.Ping(ctx).Err(); err != nil {
		rdb.Close()
		return nil, nil, fmt.Errorf("failed to connect to redis: %w", err)
	}
	logger.Info("rate limiting through redis", zap.String("addr", cfg.RedisAddr), zap.Int("limit", cfg.RateLimit))
	return middleware.NewRedisLimiter(rdb, cfg.RateLimit, cfg.RateWindow), func() { rdb.Close() }, nil
}
