package handler

import (
	"context"
	"fmt"
	"net/http"

	"golang.org/x/sync/errgroup"

	"github.com/garrettladley/tint/internal/color"
	"github.com/garrettladley/tint/internal/validator"
	"github.com/garrettladley/tint/internal/xerrors"
	"github.com/garrettladley/tint/internal/xhttp"
	"github.com/garrettladley/tint/internal/xslog"
)

const (
	// MaxBatchSize caps the number of colors in one batch request.
	MaxBatchSize = 4096

	batchChunkSize = 256
)

type Scale struct {
	batchLimit int
}

// NewScale returns the scale handlers. batchLimit bounds the goroutines
// working on a single batch request.
func NewScale(batchLimit int) *Scale {
	return &Scale{batchLimit: max(batchLimit, 1)}
}

type scaleResponse struct {
	Input  string  `json:"input"`
	Factor float64 `json:"factor"`
	Result string  `json:"result"`
}

// HandleScale handles GET /v1/scale requests.
// Query params: color, factor, strict (default false)
func (h *Scale) HandleScale(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	q := r.URL.Query()

	input := q.Get("color")
	if input == "" {
		xerrors.WriteError(ctx, w, xerrors.BadRequest(xerrors.WithMessage("missing color parameter")))
		return
	}

	factor, err := parseFactor(q.Get("factor"))
	if err != nil {
		xerrors.WriteError(ctx, w, xerrors.BadRequest(xerrors.WithMessage(err.Error())))
		return
	}

	strict, err := parseBool("strict", q.Get("strict"))
	if err != nil {
		xerrors.WriteError(ctx, w, xerrors.BadRequest(xerrors.WithMessage(err.Error())))
		return
	}

	if strict {
		if verr := validator.Validate(scaleQuery{Color: input, Factor: factor}); verr != nil {
			xerrors.WriteError(ctx, w, verr)
			return
		}
	}

	result := color.Scale(input, factor)

	xslog.FromContext(ctx).DebugContext(ctx, "scaled color",
		xslog.Color(input),
		xslog.Factor(factor),
	)

	xhttp.WriteOK(w, scaleResponse{Input: input, Factor: factor, Result: result})
}

type batchRequest struct {
	Colors []string `json:"colors"`
	Factor *float64 `json:"factor"`
	Strict bool     `json:"strict"`
}

type batchResponse struct {
	Factor  float64  `json:"factor"`
	Results []string `json:"results"`
}

// HandleBatch handles POST /v1/scale:batch requests. Results keep the order
// of the request colors.
func (h *Scale) HandleBatch(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := xslog.FromContext(ctx)

	var req batchRequest
	if err := xhttp.DecodeJSON(w, r, &req); err != nil {
		xerrors.WriteError(ctx, w, xerrors.BadRequest(xerrors.WithMessage("invalid JSON body"), xerrors.WithCause(err)))
		return
	}

	if req.Factor == nil {
		xerrors.WriteError(ctx, w, xerrors.BadRequest(xerrors.WithMessage("factor is required")))
		return
	}
	factor := *req.Factor

	switch n := len(req.Colors); {
	case n == 0:
		xerrors.WriteError(ctx, w, xerrors.BadRequest(xerrors.WithMessage("colors array cannot be empty")))
		return
	case n > MaxBatchSize:
		xerrors.WriteError(ctx, w, xerrors.RequestTooLarge(
			xerrors.WithMessage(fmt.Sprintf("at most %d colors per batch", MaxBatchSize)),
		))
		return
	}

	if req.Strict {
		if verr := validator.Validate(req); verr != nil {
			xerrors.WriteError(ctx, w, verr)
			return
		}
	}

	results, err := scaleAll(ctx, req.Colors, factor, h.batchLimit)
	if err != nil {
		xerrors.WriteError(ctx, w, xerrors.ServiceUnavailable(xerrors.WithCause(err)))
		return
	}

	logger.DebugContext(ctx, "scaled batch",
		xslog.Factor(factor),
		xslog.Count(len(results)),
	)

	xhttp.WriteOK(w, batchResponse{Factor: factor, Results: results})
}

// scaleAll scales colors in contiguous chunks, at most limit at a time.
// It stops early only when ctx is cancelled.
func scaleAll(ctx context.Context, colors []string, factor float64, limit int) ([]string, error) {
	results := make([]string, len(colors))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)

	for start := 0; start < len(colors); start += batchChunkSize {
		end := min(start+batchChunkSize, len(colors))
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			for i := start; i < end; i++ {
				results[i] = color.Scale(colors[i], factor)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

type scaleQuery struct {
	Color  string
	Factor float64
}

func (q scaleQuery) Validate() map[string]string {
	fields := make(map[string]string)
	if !color.Valid(q.Color) {
		fields["color"] = fmt.Sprintf("%q is not a 6-digit hex color", q.Color)
	}
	if !color.ValidFactor(q.Factor) {
		fields["factor"] = "must be a non-negative number"
	}
	return fields
}

// Validate expects Factor to be set.
func (r batchRequest) Validate() map[string]string {
	fields := make(map[string]string)
	for i, c := range r.Colors {
		if !color.Valid(c) {
			fields[fmt.Sprintf("colors[%d]", i)] = fmt.Sprintf("%q is not a 6-digit hex color", c)
		}
	}
	if !color.ValidFactor(*r.Factor) {
		fields["factor"] = "must be a non-negative number"
	}
	return fields
}
