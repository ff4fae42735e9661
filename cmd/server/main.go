package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	redisv9 "github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"contact_backend/internal/app/di"
	"contact_backend/internal/app/router"
	"contact_backend/internal/platform/config"
	platformdb "contact_backend/internal/platform/db"
	"contact_backend/internal/platform/logger"
	platformredis "contact_backend/internal/platform/redis"
	"contact_backend/internal/platform/validation"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	zl, err := logger.New(cfg.App.Environment, cfg.App.LogLevel)
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer func() { _ = zl.Sync() }()

	if err := run(cfg, zl); err != nil {
		zl.Fatal("server stopped", zap.Error(err))
	}
}

func run(cfg *config.Config, zl *zap.Logger) error {
	if err := validation.Register(); err != nil {
		return err
	}

	// db
	db, err := platformdb.Open(cfg.Database, zl)
	if err != nil {
		return err
	}
	if cfg.Database.RunMigrations {
		if err := platformdb.Migrate(db, di.Models()...); err != nil {
			return err
		}
	}

	// Redis
	rdb := connectRedis(cfg, zl)
	if rdb != nil {
		defer func() {
			if err := rdb.Close(); err != nil {
				zl.Error("failed to close redis client", zap.Error(err))
			}
		}()
	}

	app, err := di.NewContainer(cfg, db, rdb, zl)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go app.Reaper.Run(ctx)

	srv := &http.Server{
		Addr:    ":" + cfg.App.Port,
		Handler: router.NewRouter(app, zl),
	}

	errCh := make(chan error, 1)
	go func() {
		zl.Info("server listening", zap.String("addr", srv.Addr), zap.String("env", cfg.App.Environment))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	zl.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.App.ShutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// connectRedis returns nil when Redis is disabled or unreachable; the database
// registry is used instead.
func connectRedis(cfg *config.Config, zl *zap.Logger) *redisv9.Client {
	if !cfg.Redis.Enabled {
		return nil
	}
	rdb, err := platformredis.NewRedisClient(cfg.Redis, cfg.RedisAddress(), zl)
	if err != nil {
		zl.Warn("redis unavailable, using database revocation registry", zap.Error(err))
		return nil
	}
	return rdb
}
