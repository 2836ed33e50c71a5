package config

import (
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	xenv "github.com/garrettladley/tint/internal/env"
)

func TestReadServer_Defaults(t *testing.T) {
	for _, key := range []string{"PORT", "ENVIRONMENT", "STORE_BACKEND", "DATABASE_URL", "REDIS_URL", "SHUTDOWN_TIMEOUT", "BATCH_CONCURRENCY"} {
		t.Setenv(key, "")
	}

	got, err := ReadServer()
	if err != nil {
		t.Fatalf("ReadServer() error = %v", err)
	}

	want := Server{
		Port:             "8080",
		Environment:      xenv.Development,
		Backend:          BackendMemory,
		ShutdownTimeout:  10 * time.Second,
		BatchConcurrency: 8,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ReadServer() mismatch (-want +got):\n%s", diff)
	}
}

func TestReadServer_Overrides(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("ENVIRONMENT", "production")
	t.Setenv("STORE_BACKEND", "redis")
	t.Setenv("REDIS_URL", "redis://localhost:6379/0")
	t.Setenv("SHUTDOWN_TIMEOUT", "3s")
	t.Setenv("BATCH_CONCURRENCY", "2")

	got, err := ReadServer()
	if err != nil {
		t.Fatalf("ReadServer() error = %v", err)
	}
	if got.Port != "9000" || !got.Environment.IsProduction() || got.Backend != BackendRedis {
		t.Errorf("ReadServer() = %+v", got)
	}
	if got.ShutdownTimeout != 3*time.Second || got.BatchConcurrency != 2 {
		t.Errorf("ReadServer() = %+v", got)
	}
}

func TestServer_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		cfg     Server
		wantErr error
	}{
		{name: "memory", cfg: Server{Backend: BackendMemory, BatchConcurrency: 1}},
		{name: "postgres with url", cfg: Server{Backend: BackendPostgres, DatabaseURL: "postgres://x", BatchConcurrency: 1}},
		{name: "postgres without url", cfg: Server{Backend: BackendPostgres, BatchConcurrency: 1}, wantErr: ErrMissingURL},
		{name: "redis without url", cfg: Server{Backend: BackendRedis, BatchConcurrency: 1}, wantErr: ErrMissingURL},
		{name: "unknown backend", cfg: Server{Backend: "etcd", BatchConcurrency: 1}, wantErr: ErrUnknownBackend},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := tt.cfg.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("Validate() error = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() error = %v, want %v", err, tt.wantErr)
			}
		})
	}

	if err := (Server{Backend: BackendMemory}).Validate(); err == nil {
		t.Errorf("Validate() with zero concurrency = nil, want error")
	}
}
