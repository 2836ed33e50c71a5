package server

import (
	"bytes"
	"context"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	go_json "github.com/goccy/go-json"
	"github.com/google/go-cmp/cmp"

	"github.com/garrettladley/tint/internal/palette"
	"github.com/garrettladley/tint/internal/storage"
	"github.com/garrettladley/tint/internal/xhttp"
	"github.com/garrettladley/tint/internal/xslog"
)

func newTestHandler(t *testing.T) (http.Handler, *storage.MemoryStore) {
	t.Helper()

	store := storage.NewMemoryStore()
	h := NewHandler(Options{
		Store:            store,
		Logger:           xslog.NewLogger(&bytes.Buffer{}, xslog.LevelError),
		BatchConcurrency: 2,
	})
	return h, store
}

func do(t *testing.T, h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequestWithContext(t.Context(), method, target, strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var v T
	if err := go_json.Unmarshal(rec.Body.Bytes(), &v); err != nil {
		t.Fatalf("decode %q: %v", rec.Body.String(), err)
	}
	return v
}

type scaleBody struct {
	Input  string  `json:"input"`
	Factor float64 `json:"factor"`
	Result string  `json:"result"`
}

type errorBody struct {
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields"`
}

func TestHealth(t *testing.T) {
	t.Parallel()

	h, _ := newTestHandler(t)
	rec := do(t, h, http.MethodGet, "/health", "")

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	if got := decode[map[string]string](t, rec)["status"]; got != "ok" {
		t.Errorf("status field = %q, want ok", got)
	}
	if rec.Header().Get(xhttp.XRequestID) == "" {
		t.Errorf("missing %s header", xhttp.XRequestID)
	}
}

func TestScale(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		target     string
		wantStatus int
		want       scaleBody
		wantFields []string
	}{
		{
			name:       "darkens",
			target:     "/v1/scale?color=%23A6B91A&factor=0.8",
			wantStatus: http.StatusOK,
			want:       scaleBody{Input: "#A6B91A", Factor: 0.8, Result: "#849414"},
		},
		{
			name:       "clamps",
			target:     "/v1/scale?color=ffffff&factor=2",
			wantStatus: http.StatusOK,
			want:       scaleBody{Input: "ffffff", Factor: 2, Result: "#ffffff"},
		},
		{
			name:       "invalid color passes through",
			target:     "/v1/scale?color=zz1234&factor=0.5",
			wantStatus: http.StatusOK,
			want:       scaleBody{Input: "zz1234", Factor: 0.5, Result: "zz1234"},
		},
		{
			name:       "negative factor passes through",
			target:     "/v1/scale?color=%23112233&factor=-1",
			wantStatus: http.StatusOK,
			want:       scaleBody{Input: "#112233", Factor: -1, Result: "112233"},
		},
		{
			name:       "strict rejects invalid color and factor",
			target:     "/v1/scale?color=zz1234&factor=-1&strict=true",
			wantStatus: http.StatusUnprocessableEntity,
			wantFields: []string{"color", "factor"},
		},
		{
			name:       "strict accepts valid input",
			target:     "/v1/scale?color=000000&factor=3&strict=true",
			wantStatus: http.StatusOK,
			want:       scaleBody{Input: "000000", Factor: 3, Result: "#000000"},
		},
		{name: "missing factor", target: "/v1/scale?color=ffffff", wantStatus: http.StatusBadRequest},
		{name: "non-numeric factor", target: "/v1/scale?color=ffffff&factor=lots", wantStatus: http.StatusBadRequest},
		{name: "nan factor", target: "/v1/scale?color=ffffff&factor=NaN", wantStatus: http.StatusBadRequest},
		{name: "missing color", target: "/v1/scale?factor=1", wantStatus: http.StatusBadRequest},
		{name: "bad strict", target: "/v1/scale?color=ffffff&factor=1&strict=maybe", wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			h, _ := newTestHandler(t)
			rec := do(t, h, http.MethodGet, tt.target, "")

			if rec.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d (body %s)", rec.Code, tt.wantStatus, rec.Body.String())
			}
			switch {
			case tt.wantStatus == http.StatusOK:
				if diff := cmp.Diff(tt.want, decode[scaleBody](t, rec)); diff != "" {
					t.Errorf("body mismatch (-want +got):\n%s", diff)
				}
			case len(tt.wantFields) > 0:
				got := decode[errorBody](t, rec)
				for _, f := range tt.wantFields {
					if _, ok := got.Fields[f]; !ok {
						t.Errorf("fields %v missing %q", got.Fields, f)
					}
				}
			}
		})
	}
}

func TestScaleBatch(t *testing.T) {
	t.Parallel()

	type batchBody struct {
		Factor  float64  `json:"factor"`
		Results []string `json:"results"`
	}

	t.Run("keeps order across chunks", func(t *testing.T) {
		t.Parallel()

		colors := make([]string, 1000)
		want := make([]string, len(colors))
		for i := range colors {
			if i%2 == 0 {
				colors[i], want[i] = "#ffffff", "#cccccc"
			} else {
				colors[i], want[i] = "not-a-color", "not-a-color"
			}
		}
		body, err := go_json.Marshal(map[string]any{"colors": colors, "factor": 0.8})
		if err != nil {
			t.Fatal(err)
		}

		h, _ := newTestHandler(t)
		rec := do(t, h, http.MethodPost, "/v1/scale:batch", string(body))
		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
		}
		got := decode[batchBody](t, rec)
		if diff := cmp.Diff(want, got.Results); diff != "" {
			t.Errorf("results mismatch (-want +got):\n%s", diff)
		}
	})

	tests := []struct {
		name       string
		body       string
		wantStatus int
	}{
		{name: "missing factor", body: `{"colors":["#ffffff"]}`, wantStatus: http.StatusBadRequest},
		{name: "empty colors", body: `{"colors":[],"factor":1}`, wantStatus: http.StatusBadRequest},
		{name: "malformed", body: `{"colors":`, wantStatus: http.StatusBadRequest},
		{name: "strict invalid", body: `{"colors":["#ffffff","#ggg000"],"factor":1,"strict":true}`, wantStatus: http.StatusUnprocessableEntity},
		{name: "zero factor", body: `{"colors":["#abcdef"],"factor":0}`, wantStatus: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			h, _ := newTestHandler(t)
			rec := do(t, h, http.MethodPost, "/v1/scale:batch", tt.body)
			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d (body %s)", rec.Code, tt.wantStatus, rec.Body.String())
			}
		})
	}
}

func TestPalettes(t *testing.T) {
	t.Parallel()

	h, store := newTestHandler(t)

	rec := do(t, h, http.MethodPut, "/v1/palettes/brand", `{"colors":["#FF0000","00ff00"]}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("PUT status = %d, body %s", rec.Code, rec.Body.String())
	}

	stored, err := store.Get(t.Context(), "brand")
	if err != nil {
		t.Fatalf("store.Get() error = %v", err)
	}
	if diff := cmp.Diff([]string{"#ff0000", "#00ff00"}, stored.Colors); diff != "" {
		t.Errorf("stored colors mismatch (-want +got):\n%s", diff)
	}

	type item struct {
		Name    string   `json:"name"`
		Colors  []string `json:"colors"`
		Builtin bool     `json:"builtin"`
	}

	rec = do(t, h, http.MethodGet, "/v1/palettes", "")
	list := decode[struct {
		Palettes []item `json:"palettes"`
	}](t, rec)
	if got, want := len(list.Palettes), len(palette.Names())+1; got != want {
		t.Fatalf("len(palettes) = %d, want %d", got, want)
	}
	last := list.Palettes[len(list.Palettes)-1]
	if last.Name != "brand" || last.Builtin {
		t.Errorf("last palette = %+v, want stored brand", last)
	}

	rec = do(t, h, http.MethodGet, "/v1/palettes/generations", "")
	if got := decode[item](t, rec); !got.Builtin || len(got.Colors) != 6 {
		t.Errorf("GET generations = %+v", got)
	}

	rec = do(t, h, http.MethodGet, "/v1/palettes/brand/tiers?factor=0.5", "")
	tiers := decode[struct {
		Tiers []palette.Tier `json:"tiers"`
	}](t, rec)
	want := []palette.Tier{{Factor: 0.5, Colors: []string{"#7f0000", "#007f00"}}}
	if diff := cmp.Diff(want, tiers.Tiers); diff != "" {
		t.Errorf("tiers mismatch (-want +got):\n%s", diff)
	}

	rec = do(t, h, http.MethodGet, "/v1/palettes/generations/tiers", "")
	defaults := decode[struct {
		Tiers []palette.Tier `json:"tiers"`
	}](t, rec)
	if len(defaults.Tiers) != len(palette.DefaultFactors) {
		t.Errorf("default tiers = %d, want %d", len(defaults.Tiers), len(palette.DefaultFactors))
	}

	if rec = do(t, h, http.MethodDelete, "/v1/palettes/brand", ""); rec.Code != http.StatusNoContent {
		t.Errorf("DELETE status = %d, want %d", rec.Code, http.StatusNoContent)
	}
	if rec = do(t, h, http.MethodGet, "/v1/palettes/brand", ""); rec.Code != http.StatusNotFound {
		t.Errorf("GET after delete status = %d, want %d", rec.Code, http.StatusNotFound)
	}
}

func TestPalettes_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		method     string
		target     string
		body       string
		wantStatus int
		wantFields map[string]bool
	}{
		{name: "unknown palette", method: http.MethodGet, target: "/v1/palettes/nope", wantStatus: http.StatusNotFound},
		{name: "unknown tiers", method: http.MethodGet, target: "/v1/palettes/nope/tiers", wantStatus: http.StatusNotFound},
		{name: "bad tier factor", method: http.MethodGet, target: "/v1/palettes/starwars/tiers?factor=x", wantStatus: http.StatusBadRequest},
		{name: "negative tier factor", method: http.MethodGet, target: "/v1/palettes/starwars/tiers?factor=-0.5", wantStatus: http.StatusBadRequest},
		{name: "builtin is read-only", method: http.MethodPut, target: "/v1/palettes/starwars", body: `{"colors":["#000000"]}`, wantStatus: http.StatusForbidden},
		{name: "builtin cannot be deleted", method: http.MethodDelete, target: "/v1/palettes/starwars", wantStatus: http.StatusForbidden},
		{name: "delete unknown", method: http.MethodDelete, target: "/v1/palettes/nope", wantStatus: http.StatusNotFound},
		{name: "bad name", method: http.MethodPut, target: "/v1/palettes/Bad%20Name", body: `{"colors":["#000000"]}`, wantStatus: http.StatusBadRequest},
		{name: "empty colors", method: http.MethodPut, target: "/v1/palettes/x", body: `{"colors":[]}`, wantStatus: http.StatusUnprocessableEntity, wantFields: map[string]bool{"colors": true}},
		{
			name:       "invalid colors",
			method:     http.MethodPut,
			target:     "/v1/palettes/x",
			body:       `{"colors":["#000000","red","#12345"]}`,
			wantStatus: http.StatusUnprocessableEntity,
			wantFields: map[string]bool{"colors[1]": true, "colors[2]": true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			h, _ := newTestHandler(t)
			rec := do(t, h, tt.method, tt.target, tt.body)
			if rec.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d (body %s)", rec.Code, tt.wantStatus, rec.Body.String())
			}
			if tt.wantFields == nil {
				return
			}
			got := decode[errorBody](t, rec)
			gotKeys := make(map[string]bool, len(got.Fields))
			for k := range got.Fields {
				gotKeys[k] = true
			}
			if diff := cmp.Diff(tt.wantFields, gotKeys); diff != "" {
				t.Errorf("fields mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestServe_ShutsDownOnCancel(t *testing.T) {
	t.Parallel()

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}

	h, _ := newTestHandler(t)
	logger := xslog.NewLogger(&bytes.Buffer{}, xslog.LevelError)

	ctx, cancel := context.WithCancel(t.Context())
	done := make(chan error, 1)
	go func() { done <- Serve(ctx, ln, h, time.Second, logger) }()

	url := "http://" + ln.Addr().String() + "/health"
	req, err := http.NewRequestWithContext(t.Context(), http.MethodGet, url, nil)
	if err != nil {
		t.Fatal(err)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("GET /health: %v", err)
	}
	_ = resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d, want %d", resp.StatusCode, http.StatusOK)
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Serve() error = %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Serve() did not return after cancel")
	}
}
