package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/garrettladley/tint/internal/server/handler"
	"github.com/garrettladley/tint/internal/storage"
	"github.com/garrettladley/tint/internal/xhttp/middleware"
	"github.com/garrettladley/tint/internal/xslog"
)

type Options struct {
	Store            storage.PaletteStore
	Logger           *slog.Logger
	BatchConcurrency int
	// TrustForwardedID reuses X-Request-ID from the upstream proxy.
	TrustForwardedID bool
}

// NewHandler builds the routed and middleware-wrapped API handler.
func NewHandler(opts Options) http.Handler {
	health := handler.NewHealth(opts.Store)
	scale := handler.NewScale(opts.BatchConcurrency)
	palettes := handler.NewPalettes(opts.Store)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", health.HandleHealth)

	mux.HandleFunc("GET /v1/scale", scale.HandleScale)
	mux.HandleFunc("POST /v1/scale:batch", scale.HandleBatch)

	mux.HandleFunc("GET /v1/palettes", palettes.HandleList)
	mux.HandleFunc("GET /v1/palettes/{name}", palettes.HandleGet)
	mux.HandleFunc("PUT /v1/palettes/{name}", palettes.HandlePut)
	mux.HandleFunc("DELETE /v1/palettes/{name}", palettes.HandleDelete)
	mux.HandleFunc("GET /v1/palettes/{name}/tiers", palettes.HandleTiers)

	var requestIDOpts []middleware.RequestIDOption
	if opts.TrustForwardedID {
		requestIDOpts = append(requestIDOpts, middleware.WithForwardedID())
	}

	return middleware.Chain(mux,
		middleware.Recovery,
		middleware.RequestID(requestIDOpts...),
		middleware.Logger(opts.Logger),
		middleware.Logging,
		middleware.SecurityHeaders,
	)
}

// Run serves h on addr until ctx is cancelled, then shuts down, waiting at
// most shutdownTimeout for in-flight requests.
func Run(ctx context.Context, addr string, h http.Handler, shutdownTimeout time.Duration, logger *slog.Logger) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", addr, err)
	}
	return Serve(ctx, ln, h, shutdownTimeout, logger)
}

func Serve(ctx context.Context, ln net.Listener, h http.Handler, shutdownTimeout time.Duration, logger *slog.Logger) error {
	httpServer := &http.Server{
		Handler:           h,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
		ErrorLog:          slog.NewLogLogger(logger.Handler(), slog.LevelWarn),
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.InfoContext(ctx, "starting server",
			xslog.Version(),
			xslog.Port(portOf(ln.Addr())))
		if err := httpServer.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.InfoContext(ctx, "shutting down server")

		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
		defer cancel()

		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server shutdown failed: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}

	logger.InfoContext(ctx, "server stopped")
	return nil
}

func portOf(addr net.Addr) string {
	if tcp, ok := addr.(*net.TCPAddr); ok {
		return fmt.Sprint(tcp.Port)
	}
	return addr.String()
}
