package palette

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/garrettladley/tint/internal/color"
)

const (
	// DimFactor darkens the colors of non-selected items.
	DimFactor = 0.6

	maxNameLength = 64
)

// DefaultFactors are the primary, secondary and tertiary tiers.
var DefaultFactors = []float64{1.0, 0.8, 0.6}

var (
	ErrEmpty       = errors.New("palette has no colors")
	ErrInvalidName = errors.New("invalid palette name")
)

type Palette struct {
	Name   string   `json:"name" yaml:"name"`
	Colors []string `json:"colors" yaml:"colors"`
}

type Tier struct {
	Factor float64  `json:"factor"`
	Colors []string `json:"colors"`
}

func New(name string, colors ...string) Palette {
	return Palette{Name: name, Colors: colors}
}

func (p Palette) Len() int { return len(p.Colors) }

// At returns the color at i, wrapping around the palette.
func (p Palette) At(i int) string {
	n := len(p.Colors)
	if n == 0 {
		return ""
	}
	i %= n
	if i < 0 {
		i += n
	}
	return p.Colors[i]
}

func (p Palette) Scale(factor float64) Palette {
	out := Palette{Name: p.Name, Colors: make([]string, len(p.Colors))}
	for i, c := range p.Colors {
		out.Colors[i] = color.Scale(c, factor)
	}
	return out
}

// Tiers scales the palette once per factor, in order. With no factors the
// DefaultFactors are used.
func (p Palette) Tiers(factors ...float64) []Tier {
	if len(factors) == 0 {
		factors = DefaultFactors
	}
	tiers := make([]Tier, len(factors))
	for i, f := range factors {
		tiers[i] = Tier{Factor: f, Colors: p.Scale(f).Colors}
	}
	return tiers
}

func (p Palette) Dimmed() Palette {
	return p.Scale(DimFactor)
}

// Normalized returns the palette with every color in #rrggbb form.
// Invalid entries are left as Scale leaves them.
func (p Palette) Normalized() Palette {
	return p.Scale(1.0)
}

// ValidationError lists the invalid colors of a palette by index.
type ValidationError struct {
	Name    string
	Invalid map[int]string
}

func (e *ValidationError) Error() string {
	idx := slices.Sorted(maps.Keys(e.Invalid))
	parts := make([]string, len(idx))
	for i, j := range idx {
		parts[i] = fmt.Sprintf("colors[%d]=%q", j, e.Invalid[j])
	}
	return fmt.Sprintf("palette %q has invalid colors: %s", e.Name, strings.Join(parts, ", "))
}

// Fields keys each invalid color by its JSON path.
func (e *ValidationError) Fields() map[string]string {
	fields := make(map[string]string, len(e.Invalid))
	for i, v := range e.Invalid {
		fields[fmt.Sprintf("colors[%d]", i)] = fmt.Sprintf("%q is not a 6-digit hex color", v)
	}
	return fields
}

func (p Palette) Validate() error {
	if err := ValidateName(p.Name); err != nil {
		return err
	}
	if len(p.Colors) == 0 {
		return fmt.Errorf("%w: %q", ErrEmpty, p.Name)
	}

	invalid := make(map[int]string)
	for i, c := range p.Colors {
		if !color.Valid(c) {
			invalid[i] = c
		}
	}
	if len(invalid) > 0 {
		return &ValidationError{Name: p.Name, Invalid: invalid}
	}
	return nil
}

// ValidateName accepts lowercase letters, digits, '-' and '_'.
func ValidateName(name string) error {
	if name == "" || len(name) > maxNameLength {
		return fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '-', r == '_':
		default:
			return fmt.Errorf("%w: %q", ErrInvalidName, name)
		}
	}
	return nil
}
