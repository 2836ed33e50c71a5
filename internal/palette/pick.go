package palette

import (
	"slices"
	"strings"

	"github.com/garrettladley/tint/internal/color"
)

const listSeparator = ", "

// Pick colors every label with the base color at slot when it equals selected,
// and with the dimmed color at slot otherwise.
func Pick(labels []string, selected string, slot int, base Palette) []string {
	return pick(labels, slot, base, func(label string) bool {
		return label == selected
	})
}

// PickAny is Pick for a selection holding several items, such as the terrains
// of a single planet.
func PickAny(labels []string, selected []string, slot int, base Palette) []string {
	return pick(labels, slot, base, func(label string) bool {
		return slices.Contains(selected, label)
	})
}

func pick(labels []string, slot int, base Palette, highlighted func(string) bool) []string {
	var (
		on  = color.Scale(base.At(slot), 1.0)
		off = color.Scale(base.At(slot), DimFactor)
		out = make([]string, len(labels))
	)
	for i, label := range labels {
		if highlighted(label) {
			out[i] = on
		} else {
			out[i] = off
		}
	}
	return out
}

// SplitList splits a ", "-separated attribute value, dropping empty items.
func SplitList(s string) []string {
	if s == "" {
		return nil
	}
	var items []string
	for item := range strings.SplitSeq(s, listSeparator) {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}
