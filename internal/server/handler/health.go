package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/garrettladley/tint/internal/storage"
	"github.com/garrettladley/tint/internal/version"
	"github.com/garrettladley/tint/internal/xerrors"
	"github.com/garrettladley/tint/internal/xhttp"
	"github.com/garrettladley/tint/internal/xslog"
)

const pingTimeout = 2 * time.Second

type Health struct {
	store storage.PaletteStore
}

func NewHealth(store storage.PaletteStore) *Health {
	return &Health{store: store}
}

type healthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}

// HandleHealth handles GET /health requests.
func (h *Health) HandleHealth(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), pingTimeout)
	defer cancel()

	if err := h.store.Ping(ctx); err != nil {
		xslog.FromContext(ctx).ErrorContext(ctx, "store ping failed", xslog.Error(err))
		xerrors.WriteError(r.Context(), w, xerrors.ServiceUnavailable(
			xerrors.WithMessage("palette store unavailable"),
			xerrors.WithCause(err),
		))
		return
	}

	xhttp.WriteOK(w, healthResponse{Status: "ok", Version: version.Get()})
}
