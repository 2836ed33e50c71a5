package palette

import (
	"maps"
	"slices"
)

const (
	NamePokemonTypes = "pokemon-types"
	NameGenerations  = "generations"
	NameStarWars     = "starwars"
)

var builtins = map[string]Palette{
	NamePokemonTypes: New(NamePokemonTypes,
		"#A6B91A", "#705746", "#6F35FC", "#F7D02C", "#D685AD", "#C22E28",
		"#EE8130", "#A98FF3", "#735797", "#7AC74C", "#E2BF65", "#96D9D6",
		"#A8A77A", "#A33EA1", "#F95587", "#B6A136", "#B7B7CE", "#6390F0",
	),
	NameGenerations: New(NameGenerations,
		"#3366cc", "#dc3912", "#ff9900", "#109618", "#990099", "#0099c6",
	),
	NameStarWars: New(NameStarWars,
		"#0066FF", "#FF0000", "#33D357", "#F7D02C", "#9966FF", "#FF9900",
	),
}

// Builtin returns a copy of the named built-in palette.
func Builtin(name string) (Palette, bool) {
	p, ok := builtins[name]
	if !ok {
		return Palette{}, false
	}
	return Palette{Name: p.Name, Colors: slices.Clone(p.Colors)}, true
}

// MustBuiltin is Builtin for names known at compile time.
func MustBuiltin(name string) Palette {
	p, ok := Builtin(name)
	if !ok {
		panic("palette: unknown built-in " + name)
	}
	return p
}

func IsBuiltin(name string) bool {
	_, ok := builtins[name]
	return ok
}

// Names returns the built-in palette names, sorted.
func Names() []string {
	return slices.Sorted(maps.Keys(builtins))
}

// Builtins returns copies of every built-in palette, sorted by name.
func Builtins() []Palette {
	names := Names()
	out := make([]Palette, len(names))
	for i, name := range names {
		out[i], _ = Builtin(name)
	}
	return out
}
