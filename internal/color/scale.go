package color

import (
	"math"
	"strings"
)

const (
	channelMin = 0
	channelMax = 255
)

// Scale returns color with every channel multiplied by factor, as #rrggbb.
//
// Surrounding '#' characters are stripped first. When factor is negative or NaN,
// or the stripped string is not exactly six hex digits, the stripped string is
// returned unchanged instead of an error. Callers that need validation should use
// Parse and RGB.Scale.
func Scale(color string, factor float64) string {
	stripped := strings.Trim(color, "#")
	if !ValidFactor(factor) {
		return stripped
	}

	c, err := decode(stripped)
	if err != nil {
		return stripped
	}
	return c.Scale(factor).Hex()
}

// ValidFactor reports whether f is a usable scale factor.
func ValidFactor(f float64) bool {
	return !math.IsNaN(f) && f >= 0
}

// clamp maps v onto [0,255]; 0 * +Inf yields NaN, which maps to 0.
func clamp(v float64) uint8 {
	switch {
	case math.IsNaN(v), v < channelMin:
		return channelMin
	case v > channelMax:
		return channelMax
	default:
		return uint8(v)
	}
}
