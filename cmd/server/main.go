package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"

	"github.com/garrettladley/tint/internal/config"
	"github.com/garrettladley/tint/internal/migrations/postgres"
	xredis "github.com/garrettladley/tint/internal/redis"
	"github.com/garrettladley/tint/internal/server"
	"github.com/garrettladley/tint/internal/storage"
	"github.com/garrettladley/tint/internal/xslog"
)

func main() {
	_ = godotenv.Load()

	logger := xslog.NewLoggerFromEnv(os.Stdout)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, logger); err != nil {
		logger.ErrorContext(ctx, "fatal error", xslog.Error(err))
		os.Exit(1)
	}
}

func run(ctx context.Context, logger *slog.Logger) error {
	cfg, err := config.ReadServer()
	if err != nil {
		return fmt.Errorf("failed to read config: %w", err)
	}

	logger.InfoContext(ctx, "loaded config",
		slog.String("environment", string(cfg.Environment)),
		xslog.Backend(string(cfg.Backend)))

	store, err := initStore(ctx, cfg, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize %s store: %w", cfg.Backend, err)
	}
	defer func() {
		if err := store.Close(); err != nil {
			logger.ErrorContext(ctx, "failed to close store", xslog.Error(err))
		}
	}()

	h := server.NewHandler(server.Options{
		Store:            store,
		Logger:           logger,
		BatchConcurrency: cfg.BatchConcurrency,
		TrustForwardedID: cfg.Environment.IsProduction(),
	})

	return server.Run(ctx, ":"+cfg.Port, h, cfg.ShutdownTimeout, logger)
}

func initStore(ctx context.Context, cfg config.Server, logger *slog.Logger) (storage.PaletteStore, error) {
	logger.InfoContext(ctx, "initializing palette store", xslog.Backend(string(cfg.Backend)))

	switch cfg.Backend {
	case config.BackendPostgres:
		pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, fmt.Errorf("connect: %w", err)
		}
		if err := postgres.Apply(ctx, pool); err != nil {
			pool.Close()
			return nil, fmt.Errorf("migrations: %w", err)
		}
		return storage.NewPostgresStore(pool), nil
	case config.BackendRedis:
		client, err := xredis.New(ctx, xredis.Config{URL: cfg.RedisURL})
		if err != nil {
			return nil, err
		}
		return storage.NewRedisStore(storage.RedisConfig{Client: client}), nil
	default:
		return storage.NewMemoryStore(), nil
	}
}
