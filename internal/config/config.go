package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"

	xenv "github.com/garrettladley/tint/internal/env"
)

type Backend string

const (
	BackendMemory   Backend = "memory"
	BackendPostgres Backend = "postgres"
	BackendRedis    Backend = "redis"
)

var (
	ErrUnknownBackend = errors.New("unknown store backend")
	ErrMissingURL     = errors.New("missing connection url")
)

type Server struct {
	Port             string           `env:"PORT" envDefault:"8080"`
	Environment      xenv.Environment `env:"ENVIRONMENT" envDefault:"development"`
	Backend          Backend          `env:"STORE_BACKEND" envDefault:"memory"`
	DatabaseURL      string           `env:"DATABASE_URL"`
	RedisURL         string           `env:"REDIS_URL"`
	ShutdownTimeout  time.Duration    `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
	BatchConcurrency int              `env:"BATCH_CONCURRENCY" envDefault:"8"`
}

func (c Server) Validate() error {
	switch c.Backend {
	case BackendMemory:
	case BackendPostgres:
		if c.DatabaseURL == "" {
			return fmt.Errorf("%w: DATABASE_URL is required for %s", ErrMissingURL, c.Backend)
		}
	case BackendRedis:
		if c.RedisURL == "" {
			return fmt.Errorf("%w: REDIS_URL is required for %s", ErrMissingURL, c.Backend)
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownBackend, c.Backend)
	}
	if c.BatchConcurrency < 1 {
		return fmt.Errorf("BATCH_CONCURRENCY must be positive, got %d", c.BatchConcurrency)
	}
	return nil
}

func ReadServer() (Server, error) {
	cfg, err := env.ParseAs[Server]()
	if err != nil {
		return Server{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Server{}, err
	}
	return cfg, nil
}

type CLI struct {
	DBPath string `env:"TINT_DB_PATH"`
}

func ReadCLI() (CLI, error) {
	return env.ParseAs[CLI]()
}
