package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/garrettladley/tint/internal/palette"
)

var _ PaletteStore = (*PostgresStore)(nil)

type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore expects the schema from migrations/postgres to be applied.
func NewPostgresStore(pool *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{pool: pool}
}

func (s *PostgresStore) Put(ctx context.Context, p palette.Palette) error {
	p, err := prepare(p)
	if err != nil {
		return err
	}

	_, err = s.pool.Exec(ctx, `
		INSERT INTO palettes (name, colors, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (name) DO UPDATE SET
			colors = EXCLUDED.colors,
			updated_at = EXCLUDED.updated_at
	`, p.Name, p.Colors)
	if err != nil {
		return fmt.Errorf("upsert palette: %w", err)
	}
	return nil
}

func (s *PostgresStore) Get(ctx context.Context, name string) (palette.Palette, error) {
	var colors []string
	err := s.pool.QueryRow(ctx, "SELECT colors FROM palettes WHERE name = $1", name).Scan(&colors)
	if errors.Is(err, pgx.ErrNoRows) {
		return palette.Palette{}, ErrNotFound
	}
	if err != nil {
		return palette.Palette{}, fmt.Errorf("get palette: %w", err)
	}
	return palette.Palette{Name: name, Colors: colors}, nil
}

func (s *PostgresStore) List(ctx context.Context) ([]palette.Palette, error) {
	rows, err := s.pool.Query(ctx, "SELECT name, colors FROM palettes ORDER BY name")
	if err != nil {
		return nil, fmt.Errorf("list palettes: %w", err)
	}
	defer rows.Close()

	var out []palette.Palette
	for rows.Next() {
		var p palette.Palette
		if err := rows.Scan(&p.Name, &p.Colors); err != nil {
			return nil, fmt.Errorf("scan palette: %w", err)
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate palettes: %w", err)
	}
	return out, nil
}

func (s *PostgresStore) Delete(ctx context.Context, name string) error {
	tag, err := s.pool.Exec(ctx, "DELETE FROM palettes WHERE name = $1", name)
	if err != nil {
		return fmt.Errorf("delete palette: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *PostgresStore) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

func (s *PostgresStore) Close() error {
	s.pool.Close()
	return nil
}
