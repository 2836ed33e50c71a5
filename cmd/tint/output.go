package main

import (
	"io"

	go_json "github.com/goccy/go-json"
)

func writeJSON(w io.Writer, v any) error {
	enc := go_json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
