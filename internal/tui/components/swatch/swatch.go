package swatch

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/garrettladley/tint/internal/color"
	"github.com/garrettladley/tint/internal/tui/theme"
)

const (
	blockWidth = 9
	invalid    = "?"
)

// Swatch renders colors as a row of filled blocks with their hex codes beneath.
type Swatch struct {
	Label  string
	Colors []string
	// ShowHex prints each color's hex code under its block.
	ShowHex bool
}

type Option func(*Swatch)

func WithLabel(label string) Option {
	return func(s *Swatch) { s.Label = label }
}

func WithoutHex() Option {
	return func(s *Swatch) { s.ShowHex = false }
}

func New(colors []string, opts ...Option) Swatch {
	s := Swatch{Colors: colors, ShowHex: true}
	for _, opt := range opts {
		opt(&s)
	}
	return s
}

func (s Swatch) Render() string {
	cells := make([]string, len(s.Colors))
	for i, c := range s.Colors {
		cells[i] = s.cell(c)
	}

	row := lipgloss.JoinHorizontal(lipgloss.Top, cells...)
	if s.Label == "" {
		return row
	}

	label := lipgloss.NewStyle().
		Foreground(theme.ColorWhite).
		Bold(true).
		Width(lipgloss.Width(row)).
		Render(s.Label)
	return lipgloss.JoinVertical(lipgloss.Left, label, row)
}

func (s Swatch) cell(hex string) string {
	rgb, err := color.Parse(hex)
	if err != nil {
		block := lipgloss.NewStyle().
			Foreground(theme.ColorDim).
			Width(blockWidth).
			Align(lipgloss.Center).
			Render(invalid)
		if !s.ShowHex {
			return block
		}
		return lipgloss.JoinVertical(lipgloss.Center, block, caption(hex))
	}

	block := lipgloss.NewStyle().
		Background(rgb).
		Width(blockWidth).
		Render(strings.Repeat(" ", blockWidth))
	if !s.ShowHex {
		return block
	}
	return lipgloss.JoinVertical(lipgloss.Center, block, caption(rgb.Hex()))
}

func caption(text string) string {
	if len(text) > blockWidth {
		text = text[:blockWidth-1] + "…"
	}
	return lipgloss.NewStyle().
		Foreground(theme.ColorDim).
		Width(blockWidth).
		Align(lipgloss.Center).
		Render(text)
}

// Line renders a compact single-line swatch, one two-cell block per color
// followed by its hex code.
func Line(colors []string) string {
	parts := make([]string, len(colors))
	for i, c := range colors {
		rgb, err := color.Parse(c)
		if err != nil {
			parts[i] = fmt.Sprintf("%s %s", invalid, c)
			continue
		}
		parts[i] = lipgloss.NewStyle().Background(rgb).Render("  ") + " " + rgb.Hex()
	}
	return strings.Join(parts, "  ")
}
