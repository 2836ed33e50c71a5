package ramp

import (
	"image/color"
	"strings"

	drawille "github.com/exrook/drawille-go"

	"charm.land/lipgloss/v2"
)

const emptyBraille rune = '⠀'

// canvasLines extracts the canvas as exactly height/4 lines of width/2 runes.
// each braille char is 2 dots wide, 4 dots tall.
func canvasLines(canvas *drawille.Canvas, width, height int) [][]rune {
	charWidth := width / 2
	charHeight := height / 4

	rows := canvas.Rows(0, 0, width, height)

	lines := make([][]rune, charHeight)
	for i := range charHeight {
		line := make([]rune, charWidth)
		for j := range line {
			line[j] = ' '
		}
		if i < len(rows) {
			copy(line, []rune(rows[i]))
		}
		lines[i] = line
	}
	return lines
}

func isBraille(r rune) bool {
	return r >= 0x2800 && r <= 0x28FF
}

func hasDots(r rune) bool {
	return isBraille(r) && r != emptyBraille
}

// combineBraille ORs the dots of two braille characters together.
func combineBraille(a, b rune) rune {
	return emptyBraille + ((a - emptyBraille) | (b - emptyBraille))
}

// layer is one plotted series and the color it is drawn in.
type layer struct {
	lines [][]rune
	color color.Color
}

// overlay merges layers cell by cell. Dots from every layer are combined and
// the cell takes the color of the last layer with dots in it.
func overlay(layers []layer, charWidth, charHeight int) string {
	out := make([]string, charHeight)
	for i := range charHeight {
		var b strings.Builder
		for j := range charWidth {
			cell := emptyBraille
			var c color.Color
			for _, l := range layers {
				r := l.lines[i][j]
				if !hasDots(r) {
					continue
				}
				cell = combineBraille(cell, r)
				c = l.color
			}
			if c == nil {
				b.WriteRune(' ')
				continue
			}
			b.WriteString(lipgloss.NewStyle().Foreground(c).Render(string(cell)))
		}
		out[i] = b.String()
	}
	return strings.Join(out, "\n")
}
