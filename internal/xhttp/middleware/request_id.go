package middleware

import (
	"net/http"

	"github.com/garrettladley/tint/internal/xcontext"
	"github.com/garrettladley/tint/internal/xhttp"
	"github.com/google/uuid"
)

const maxForwardedRequestIDLen = 128

type RequestIDMiddleware struct {
	IDFunc func(*http.Request) string
}

type RequestIDOption func(*RequestIDMiddleware)

// WithIDFunc overrides how request ids are generated.
func WithIDFunc(f func(*http.Request) string) RequestIDOption {
	return func(m *RequestIDMiddleware) { m.IDFunc = f }
}

// WithForwardedID reuses a caller-supplied X-Request-ID when present.
func WithForwardedID() RequestIDOption {
	return func(m *RequestIDMiddleware) {
		generate := m.IDFunc
		m.IDFunc = func(r *http.Request) string {
			if id := r.Header.Get(xhttp.XRequestID); id != "" && len(id) <= maxForwardedRequestIDLen {
				return id
			}
			return generate(r)
		}
	}
}

func RequestID(opts ...RequestIDOption) func(http.Handler) http.Handler {
	middleware := &RequestIDMiddleware{
		IDFunc: func(_ *http.Request) string {
			return uuid.New().String()
		},
	}

	for _, opt := range opts {
		opt(middleware)
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := middleware.IDFunc(r)
			ctx := xcontext.SetRequestID(r.Context(), id)
			xhttp.SetHeaderRequestID(w, id)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
