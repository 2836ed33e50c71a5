package palette

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

type file struct {
	Palettes []Palette `yaml:"palettes"`
}

// LoadFile reads palettes from a YAML file of the form
//
//	palettes:
//	  - name: brand
//	    colors: ["#ff0000", "#00ff00"]
func LoadFile(path string) ([]Palette, error) {
	f, err := os.Open(path) //nolint:gosec // user-provided palette file
	if err != nil {
		return nil, fmt.Errorf("failed to open palette file: %w", err)
	}
	defer func() { _ = f.Close() }()

	palettes, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return palettes, nil
}

func Decode(r io.Reader) ([]Palette, error) {
	var doc file
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to decode palettes: %w", err)
	}

	seen := make(map[string]struct{}, len(doc.Palettes))
	for _, p := range doc.Palettes {
		if err := p.Validate(); err != nil {
			return nil, err
		}
		if _, dup := seen[p.Name]; dup {
			return nil, fmt.Errorf("duplicate palette %q", p.Name)
		}
		seen[p.Name] = struct{}{}
	}
	return doc.Palettes, nil
}

// Find returns the palette called name.
func Find(palettes []Palette, name string) (Palette, bool) {
	for _, p := range palettes {
		if p.Name == name {
			return p, true
		}
	}
	return Palette{}, false
}
