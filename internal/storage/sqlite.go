package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	go_json "github.com/goccy/go-json"
	_ "github.com/mattn/go-sqlite3"

	"github.com/garrettladley/tint/internal/migrations"
	"github.com/garrettladley/tint/internal/palette"
)

var _ PaletteStore = (*SQLiteStore)(nil)

type SQLiteStore struct {
	db *sql.DB
}

// OpenSQLite opens the database at path and applies pending migrations.
func OpenSQLite(ctx context.Context, path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", path+"?_foreign_keys=on&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}
	db.SetMaxOpenConns(1)

	if err := migrations.Apply(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to apply migrations: %w", err)
	}
	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) Put(ctx context.Context, p palette.Palette) error {
	p, err := prepare(p)
	if err != nil {
		return err
	}

	colors, err := go_json.Marshal(p.Colors)
	if err != nil {
		return fmt.Errorf("failed to marshal colors: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO palettes (name, colors, updated_at)
		VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT (name) DO UPDATE SET
			colors = excluded.colors,
			updated_at = excluded.updated_at
	`, p.Name, string(colors))
	if err != nil {
		return fmt.Errorf("failed to upsert palette: %w", err)
	}
	return nil
}

func (s *SQLiteStore) Get(ctx context.Context, name string) (palette.Palette, error) {
	var raw string
	err := s.db.QueryRowContext(ctx, "SELECT colors FROM palettes WHERE name = ?", name).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return palette.Palette{}, ErrNotFound
	}
	if err != nil {
		return palette.Palette{}, fmt.Errorf("failed to get palette: %w", err)
	}
	return decodeColors(name, raw)
}

func (s *SQLiteStore) List(ctx context.Context) ([]palette.Palette, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT name, colors FROM palettes ORDER BY name")
	if err != nil {
		return nil, fmt.Errorf("failed to list palettes: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var out []palette.Palette
	for rows.Next() {
		var name, raw string
		if err := rows.Scan(&name, &raw); err != nil {
			return nil, fmt.Errorf("failed to scan palette: %w", err)
		}
		p, err := decodeColors(name, raw)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate palettes: %w", err)
	}
	return out, nil
}

func (s *SQLiteStore) Delete(ctx context.Context, name string) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM palettes WHERE name = ?", name)
	if err != nil {
		return fmt.Errorf("failed to delete palette: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *SQLiteStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func decodeColors(name, raw string) (palette.Palette, error) {
	var colors []string
	if err := go_json.Unmarshal([]byte(raw), &colors); err != nil {
		return palette.Palette{}, fmt.Errorf("failed to unmarshal colors of %q: %w", name, err)
	}
	return palette.Palette{Name: name, Colors: colors}, nil
}
