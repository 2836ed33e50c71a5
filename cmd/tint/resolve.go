package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/garrettladley/tint/internal/color"
	"github.com/garrettladley/tint/internal/config"
	"github.com/garrettladley/tint/internal/palette"
	"github.com/garrettladley/tint/internal/paths"
	"github.com/garrettladley/tint/internal/storage"
)

const adHocName = "custom"

var errUnknownPalette = errors.New("unknown palette")

// resolvePalette turns command arguments into a palette. A single argument is
// looked up in the palette file (when given), the built-ins and the local
// store, in that order. Anything else is taken as a list of colors.
func resolvePalette(ctx context.Context, args []string, file string) (palette.Palette, error) {
	if len(args) == 0 {
		return palette.Palette{}, errors.New("expected a palette name or colors")
	}

	if len(args) == 1 && !color.Valid(args[0]) {
		name := args[0]

		if file != "" {
			palettes, err := palette.LoadFile(file)
			if err != nil {
				return palette.Palette{}, err
			}
			if p, ok := palette.Find(palettes, name); ok {
				return p, nil
			}
		}

		if p, ok := palette.Builtin(name); ok {
			return p, nil
		}

		store, err := openStore(ctx)
		if err != nil {
			return palette.Palette{}, err
		}
		defer func() { _ = store.Close() }()

		p, err := store.Get(ctx, name)
		if errors.Is(err, storage.ErrNotFound) {
			return palette.Palette{}, fmt.Errorf("%w: %q", errUnknownPalette, name)
		}
		return p, err
	}

	return palette.New(adHocName, args...), nil
}

func openStore(ctx context.Context) (*storage.SQLiteStore, error) {
	cfg, err := config.ReadCLI()
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	dbPath, err := paths.DB(cfg.DBPath)
	if err != nil {
		return nil, err
	}

	store, err := storage.OpenSQLite(ctx, dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	return store, nil
}
