package handler

import (
	"errors"
	"net/http"

	"github.com/garrettladley/tint/internal/palette"
	"github.com/garrettladley/tint/internal/storage"
	"github.com/garrettladley/tint/internal/xerrors"
	"github.com/garrettladley/tint/internal/xhttp"
	"github.com/garrettladley/tint/internal/xslog"
)

type Palettes struct {
	store storage.PaletteStore
}

func NewPalettes(store storage.PaletteStore) *Palettes {
	return &Palettes{store: store}
}

type paletteResponse struct {
	Name    string   `json:"name"`
	Colors  []string `json:"colors"`
	Builtin bool     `json:"builtin"`
}

type listResponse struct {
	Palettes []paletteResponse `json:"palettes"`
}

type tiersResponse struct {
	Name  string         `json:"name"`
	Tiers []palette.Tier `json:"tiers"`
}

type putRequest struct {
	Colors []string `json:"colors"`
}

func toResponse(p palette.Palette, builtin bool) paletteResponse {
	return paletteResponse{Name: p.Name, Colors: p.Colors, Builtin: builtin}
}

// HandleList handles GET /v1/palettes requests. Built-in palettes come first.
func (h *Palettes) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	stored, err := h.store.List(ctx)
	if err != nil {
		xerrors.WriteError(ctx, w, xerrors.Internal(xerrors.WithMessage("failed to list palettes"), xerrors.WithCause(err)))
		return
	}

	builtins := palette.Builtins()
	resp := listResponse{Palettes: make([]paletteResponse, 0, len(builtins)+len(stored))}
	for _, p := range builtins {
		resp.Palettes = append(resp.Palettes, toResponse(p, true))
	}
	for _, p := range stored {
		resp.Palettes = append(resp.Palettes, toResponse(p, false))
	}

	xhttp.WriteOK(w, resp)
}

// HandleGet handles GET /v1/palettes/{name} requests.
func (h *Palettes) HandleGet(w http.ResponseWriter, r *http.Request) {
	p, builtin, ok := h.lookup(w, r)
	if !ok {
		return
	}
	xhttp.WriteOK(w, toResponse(p, builtin))
}

// HandleTiers handles GET /v1/palettes/{name}/tiers requests.
// Query params: factor (repeatable, default 1.0, 0.8, 0.6)
func (h *Palettes) HandleTiers(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	raw := r.URL.Query()["factor"]
	factors := make([]float64, 0, len(raw))
	for _, s := range raw {
		f, err := parseFactor(s)
		if err != nil {
			xerrors.WriteError(ctx, w, xerrors.BadRequest(xerrors.WithMessage(err.Error())))
			return
		}
		if f < 0 {
			xerrors.WriteError(ctx, w, xerrors.BadRequest(xerrors.WithMessage("factor must be non-negative")))
			return
		}
		factors = append(factors, f)
	}

	p, _, ok := h.lookup(w, r)
	if !ok {
		return
	}

	xhttp.WriteOK(w, tiersResponse{Name: p.Name, Tiers: p.Tiers(factors...)})
}

// HandlePut handles PUT /v1/palettes/{name} requests.
func (h *Palettes) HandlePut(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	name := r.PathValue("name")

	if err := palette.ValidateName(name); err != nil {
		xerrors.WriteError(ctx, w, xerrors.BadRequest(xerrors.WithMessage(err.Error())))
		return
	}
	if palette.IsBuiltin(name) {
		xerrors.WriteError(ctx, w, xerrors.Forbidden(xerrors.WithMessage("built-in palettes are read-only")))
		return
	}

	var req putRequest
	if err := xhttp.DecodeJSON(w, r, &req); err != nil {
		xerrors.WriteError(ctx, w, xerrors.BadRequest(xerrors.WithMessage("invalid JSON body"), xerrors.WithCause(err)))
		return
	}

	p := palette.New(name, req.Colors...)
	if err := h.store.Put(ctx, p); err != nil {
		var verr *palette.ValidationError
		switch {
		case errors.As(err, &verr):
			xerrors.WriteError(ctx, w, xerrors.Validation(verr.Fields(), xerrors.WithCause(err)))
		case errors.Is(err, palette.ErrEmpty):
			xerrors.WriteError(ctx, w, xerrors.Validation(map[string]string{"colors": "must not be empty"}))
		default:
			xerrors.WriteError(ctx, w, xerrors.Internal(xerrors.WithMessage("failed to store palette"), xerrors.WithCause(err)))
		}
		return
	}

	xslog.FromContext(ctx).InfoContext(ctx, "stored palette",
		xslog.Palette(name),
		xslog.Count(len(p.Colors)),
	)

	xhttp.WriteOK(w, toResponse(p.Normalized(), false))
}

// HandleDelete handles DELETE /v1/palettes/{name} requests.
func (h *Palettes) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	name := r.PathValue("name")

	if palette.IsBuiltin(name) {
		xerrors.WriteError(ctx, w, xerrors.Forbidden(xerrors.WithMessage("built-in palettes are read-only")))
		return
	}

	err := h.store.Delete(ctx, name)
	if errors.Is(err, storage.ErrNotFound) {
		xerrors.WriteError(ctx, w, xerrors.NotFound(xerrors.WithMessage("palette not found")))
		return
	}
	if err != nil {
		xerrors.WriteError(ctx, w, xerrors.Internal(xerrors.WithMessage("failed to delete palette"), xerrors.WithCause(err)))
		return
	}

	xslog.FromContext(ctx).InfoContext(ctx, "deleted palette", xslog.Palette(name))

	xhttp.WriteNoContent(w)
}

// lookup resolves the {name} path value against the built-ins, then the store.
// It writes the error response itself and reports ok=false when it did.
func (h *Palettes) lookup(w http.ResponseWriter, r *http.Request) (palette.Palette, bool, bool) {
	ctx := r.Context()
	name := r.PathValue("name")

	if p, ok := palette.Builtin(name); ok {
		return p, true, true
	}

	p, err := h.store.Get(ctx, name)
	if errors.Is(err, storage.ErrNotFound) {
		xerrors.WriteError(ctx, w, xerrors.NotFound(xerrors.WithMessage("palette not found")))
		return palette.Palette{}, false, false
	}
	if err != nil {
		xerrors.WriteError(ctx, w, xerrors.Internal(xerrors.WithMessage("failed to get palette"), xerrors.WithCause(err)))
		return palette.Palette{}, false, false
	}
	return p, false, true
}
