package storage

import (
	"context"
	"slices"
	"strings"
	"sync"

	"github.com/garrettladley/tint/internal/palette"
)

var _ PaletteStore = (*MemoryStore)(nil)

type MemoryStore struct {
	mu       sync.RWMutex
	palettes map[string]palette.Palette
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{palettes: make(map[string]palette.Palette)}
}

func (m *MemoryStore) Put(_ context.Context, p palette.Palette) error {
	p, err := prepare(p)
	if err != nil {
		return err
	}

	m.mu.Lock()
	m.palettes[p.Name] = p
	m.mu.Unlock()
	return nil
}

func (m *MemoryStore) Get(_ context.Context, name string) (palette.Palette, error) {
	m.mu.RLock()
	p, ok := m.palettes[name]
	m.mu.RUnlock()

	if !ok {
		return palette.Palette{}, ErrNotFound
	}
	return clonePalette(p), nil
}

func (m *MemoryStore) List(_ context.Context) ([]palette.Palette, error) {
	m.mu.RLock()
	out := make([]palette.Palette, 0, len(m.palettes))
	for _, p := range m.palettes {
		out = append(out, clonePalette(p))
	}
	m.mu.RUnlock()

	slices.SortFunc(out, func(a, b palette.Palette) int {
		return strings.Compare(a.Name, b.Name)
	})
	return out, nil
}

func (m *MemoryStore) Delete(_ context.Context, name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.palettes[name]; !ok {
		return ErrNotFound
	}
	delete(m.palettes, name)
	return nil
}

func (m *MemoryStore) Ping(_ context.Context) error {
	return nil
}

func (m *MemoryStore) Close() error {
	return nil
}

func clonePalette(p palette.Palette) palette.Palette {
	return palette.Palette{Name: p.Name, Colors: slices.Clone(p.Colors)}
}
