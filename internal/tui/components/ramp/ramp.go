// Package ramp plots how each channel of a color responds to scaling. The
// x axis is the factor from 0 to MaxFactor and the y axis the resulting
// channel value from 0 to 255, so truncation shows as steps and clamping as
// a flat top.
package ramp

import (
	"fmt"
	imgcolor "image/color"
	"math"

	drawille "github.com/exrook/drawille-go"

	"charm.land/lipgloss/v2"

	"github.com/garrettladley/tint/internal/color"
	"github.com/garrettladley/tint/internal/tui/theme"
)

const (
	DefaultMaxFactor = 2.0
	DefaultWidth     = 60 // chars
	DefaultHeight    = 12 // chars

	channelMax = 255
)

type Ramp struct {
	Color     color.RGB
	MaxFactor float64
	Width     int // in terminal cells
	Height    int // in terminal cells
}

type Option func(*Ramp)

func WithMaxFactor(f float64) Option {
	return func(r *Ramp) { r.MaxFactor = f }
}

func WithSize(width, height int) Option {
	return func(r *Ramp) {
		r.Width = width
		r.Height = height
	}
}

func New(c color.RGB, opts ...Option) Ramp {
	r := Ramp{
		Color:     c,
		MaxFactor: DefaultMaxFactor,
		Width:     DefaultWidth,
		Height:    DefaultHeight,
	}
	for _, opt := range opts {
		opt(&r)
	}
	r.Width = max(r.Width, 1)
	r.Height = max(r.Height, 1)
	if math.IsNaN(r.MaxFactor) || math.IsInf(r.MaxFactor, 0) || r.MaxFactor <= 0 {
		r.MaxFactor = DefaultMaxFactor
	}
	return r
}

func (r Ramp) Render() string {
	var (
		dotsW = r.Width * 2
		dotsH = r.Height * 4
	)

	channels := []struct {
		value func(color.RGB) uint8
		color imgcolor.Color
	}{
		{func(c color.RGB) uint8 { return c.R }, theme.ColorRed},
		{func(c color.RGB) uint8 { return c.G }, theme.ColorGreen},
		{func(c color.RGB) uint8 { return c.B }, theme.ColorBlue},
	}

	layers := make([]layer, 0, len(channels))
	for _, ch := range channels {
		canvas := drawille.NewCanvas()
		ys := Sample(func(f float64) uint8 { return ch.value(r.Color.Scale(f)) }, dotsW, dotsH, r.MaxFactor)
		plot(&canvas, ys)
		layers = append(layers, layer{lines: canvasLines(&canvas, dotsW, dotsH), color: ch.color})
	}

	chart := overlay(layers, r.Width, r.Height)

	axis := lipgloss.NewStyle().Foreground(theme.ColorDim)
	xLabels := lipgloss.JoinHorizontal(lipgloss.Top,
		axis.Width(r.Width/2).Render("0"),
		axis.Width(r.Width-r.Width/2).Align(lipgloss.Right).Render(fmt.Sprintf("%.1f", r.MaxFactor)),
	)

	return lipgloss.JoinVertical(lipgloss.Left, chart, xLabels, r.legend())
}

func (r Ramp) legend() string {
	entry := func(c imgcolor.Color, name string, v uint8) string {
		return lipgloss.NewStyle().Foreground(c).Render(fmt.Sprintf("%s %02x", name, v))
	}
	return fmt.Sprintf("%s  %s  %s  %s",
		r.Color.Hex(),
		entry(theme.ColorRed, "R", r.Color.R),
		entry(theme.ColorGreen, "G", r.Color.G),
		entry(theme.ColorBlue, "B", r.Color.B),
	)
}

// Sample evaluates value at width evenly spaced factors in [0, maxFactor] and
// maps each result to a dot row, 0 at the top.
func Sample(value func(float64) uint8, width, height int, maxFactor float64) []int {
	ys := make([]int, width)
	for x := range width {
		var f float64
		if width > 1 {
			f = maxFactor * float64(x) / float64(width-1)
		}
		v := float64(value(f))
		ys[x] = (height - 1) - int(math.Round(v/channelMax*float64(height-1)))
	}
	return ys
}

// plot sets one dot per column and fills the vertical gap to the previous
// column so steps stay connected.
func plot(canvas *drawille.Canvas, ys []int) {
	for x, y := range ys {
		canvas.Set(x, y)
		if x == 0 {
			continue
		}
		prev := ys[x-1]
		for yy := min(prev, y) + 1; yy < max(prev, y); yy++ {
			canvas.Set(x, yy)
		}
	}
}
