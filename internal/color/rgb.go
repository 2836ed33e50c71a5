package color

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

var (
	ErrInvalidHex    = errors.New("invalid hex color")
	ErrInvalidFactor = errors.New("invalid scale factor")
)

const hexDigits = 6

// RGB is an opaque 8-bit-per-channel color.
type RGB struct {
	R, G, B uint8
}

var _ color.Color = RGB{}

// RGBA implements color.Color with a fully opaque alpha.
func (c RGB) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R)
	r |= r << 8
	g = uint32(c.G)
	g |= g << 8
	b = uint32(c.B)
	b |= b << 8
	return r, g, b, 0xffff
}

// Hex returns the lowercase #rrggbb form.
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

func (c RGB) String() string { return c.Hex() }

// Scale multiplies every channel by factor and clamps the result to [0,255],
// truncating toward zero.
func (c RGB) Scale(factor float64) RGB {
	return RGB{
		R: clamp(float64(c.R) * factor),
		G: clamp(float64(c.G) * factor),
		B: clamp(float64(c.B) * factor),
	}
}

// Parse decodes a 6-digit hex color with an optional leading '#'.
func Parse(s string) (RGB, error) {
	c, err := decode(strings.TrimPrefix(s, "#"))
	if err != nil {
		return RGB{}, fmt.Errorf("%w: %q", ErrInvalidHex, s)
	}
	return c, nil
}

// MustParse is Parse for package-level palette literals.
func MustParse(s string) RGB {
	c, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Normalize returns the #rrggbb form of s and whether s was a valid color.
func Normalize(s string) (string, bool) {
	c, err := Parse(s)
	if err != nil {
		return "", false
	}
	return c.Hex(), true
}

func Valid(s string) bool {
	_, err := Parse(s)
	return err == nil
}

func decode(s string) (RGB, error) {
	if len(s) != hexDigits {
		return RGB{}, ErrInvalidHex
	}
	for i := range len(s) {
		if !isHexDigit(s[i]) {
			return RGB{}, ErrInvalidHex
		}
	}

	var ch [3]uint8
	for i := range ch {
		v, err := strconv.ParseUint(s[i*2:i*2+2], 16, 8)
		if err != nil {
			return RGB{}, ErrInvalidHex
		}
		ch[i] = uint8(v)
	}
	return RGB{R: ch[0], G: ch[1], B: ch[2]}, nil
}

func isHexDigit(b byte) bool {
	switch {
	case b >= '0' && b <= '9':
		return true
	case b >= 'a' && b <= 'f':
		return true
	case b >= 'A' && b <= 'F':
		return true
	default:
		return false
	}
}
