package palette

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDecode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		want    []Palette
		wantErr bool
	}{
		{
			name: "two palettes",
			input: `palettes:
  - name: brand
    colors: ["#ff0000", "00ff00"]
  - name: mono
    colors:
      - "#808080"
`,
			want: []Palette{
				New("brand", "#ff0000", "00ff00"),
				New("mono", "#808080"),
			},
		},
		{
			name:  "empty document",
			input: "",
			want:  nil,
		},
		{
			name: "invalid color",
			input: `palettes:
  - name: bad
    colors: ["#ff"]
`,
			wantErr: true,
		},
		{
			name: "duplicate names",
			input: `palettes:
  - name: a
    colors: ["#ffffff"]
  - name: a
    colors: ["#000000"]
`,
			wantErr: true,
		},
		{
			name:    "malformed yaml",
			input:   "palettes: [",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := Decode(strings.NewReader(tt.input))
			if (err != nil) != tt.wantErr {
				t.Fatalf("Decode() error = %v, wantErr %v", err, tt.wantErr)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Decode() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestLoadFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "palettes.yaml")
	content := "palettes:\n  - name: brand\n    colors: [\"#112233\"]\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}

	got, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}
	p, ok := Find(got, "brand")
	if !ok {
		t.Fatalf("brand palette not found in %v", got)
	}
	if diff := cmp.Diff(New("brand", "#112233"), p); diff != "" {
		t.Errorf("LoadFile() mismatch (-want +got):\n%s", diff)
	}

	_, err = LoadFile(filepath.Join(dir, "missing.yaml"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("LoadFile(missing) error = %v, want os.ErrNotExist", err)
	}
}
