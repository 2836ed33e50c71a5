package tui

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/garrettladley/tint/internal/palette"
)

func key(s string) tea.KeyPressMsg {
	r := []rune(s)
	return tea.KeyPressMsg{Code: r[0], Text: s}
}

func TestModel_FactorKeys(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		keys []string
		want float64
	}{
		{name: "starts at identity", want: 1.0},
		{name: "plus steps up", keys: []string{"+", "+"}, want: 1.1},
		{name: "minus steps down", keys: []string{"-", "-", "-", "-"}, want: 0.8},
		{name: "never negative", keys: slicesRepeat("-", 30), want: 0},
		{name: "reset", keys: []string{"+", "+", "r"}, want: 1.0},
		{name: "no drift after many steps", keys: slicesRepeat("-", 8), want: 0.6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			m := New(palette.MustBuiltin(palette.NameGenerations))
			for _, k := range tt.keys {
				m.Update(key(k))
			}
			if got := m.Factor(); got != tt.want {
				t.Errorf("Factor() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestModel_QuitKey(t *testing.T) {
	t.Parallel()

	m := New(palette.MustBuiltin(palette.NameStarWars))
	_, cmd := m.Update(key("q"))
	if cmd == nil {
		t.Fatal("Update(q) returned nil cmd")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Errorf("Update(q) cmd did not quit")
	}
}

func TestModel_Content(t *testing.T) {
	t.Parallel()

	m := New(palette.MustBuiltin(palette.NameGenerations))
	m.Update(key("-"))
	m.Update(key("-"))
	m.Update(key("-"))
	m.Update(key("-"))

	plain := ansi.Strip(m.Content())
	for _, want := range []string{"generations", "x0.80", "#2851a3", "tier x1.0", "tier x0.8", "tier x0.6"} {
		if !strings.Contains(plain, want) {
			t.Errorf("Content() missing %q in:\n%s", want, plain)
		}
	}
}

func slicesRepeat(s string, n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = s
	}
	return out
}
