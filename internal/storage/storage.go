package storage

import (
	"context"
	"errors"

	"github.com/garrettladley/tint/internal/palette"
)

var ErrNotFound = errors.New("palette not found")

// PaletteStore persists named palettes.
type PaletteStore interface {
	// Put validates p and stores it with normalized colors, replacing any
	// palette of the same name.
	Put(ctx context.Context, p palette.Palette) error

	// Get returns ErrNotFound if no palette has the given name.
	Get(ctx context.Context, name string) (palette.Palette, error)

	// List returns every stored palette sorted by name.
	List(ctx context.Context) ([]palette.Palette, error)

	// Delete returns ErrNotFound if no palette has the given name.
	Delete(ctx context.Context, name string) error

	Ping(ctx context.Context) error

	Close() error
}

// prepare is the validation shared by every backend's Put.
func prepare(p palette.Palette) (palette.Palette, error) {
	if err := p.Validate(); err != nil {
		return palette.Palette{}, err
	}
	return p.Normalized(), nil
}
