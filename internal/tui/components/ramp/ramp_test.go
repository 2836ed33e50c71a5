package ramp

import (
	"strings"
	"testing"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
	"github.com/google/go-cmp/cmp"

	"github.com/garrettladley/tint/internal/color"
)

func TestSample(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		channel   uint8
		width     int
		height    int
		maxFactor float64
		want      []int
	}{
		{
			name:      "zero channel stays on the floor",
			channel:   0,
			width:     4,
			height:    8,
			maxFactor: 2,
			want:      []int{7, 7, 7, 7},
		},
		{
			name:      "full channel clamps above factor one",
			channel:   255,
			width:     3,
			height:    5,
			maxFactor: 2,
			// factors 0, 1, 2
			want: []int{4, 0, 0},
		},
		{
			name:      "mid channel reaches the top at factor two",
			channel:   0x80,
			width:     3,
			height:    5,
			maxFactor: 2,
			// values 0, 128, 255
			want: []int{4, 2, 0},
		},
		{
			name:      "single column samples factor zero",
			channel:   255,
			width:     1,
			height:    4,
			maxFactor: 2,
			want:      []int{3},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			c := color.RGB{R: tt.channel}
			got := Sample(func(f float64) uint8 { return c.Scale(f).R }, tt.width, tt.height, tt.maxFactor)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Sample() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestCombineBraille(t *testing.T) {
	t.Parallel()

	// dot 1 (0x01) and dot 8 (0x80)
	if got, want := combineBraille('⠁', '⢀'), '⢁'; got != want {
		t.Errorf("combineBraille() = %U, want %U", got, want)
	}
	if got := combineBraille(emptyBraille, '⠁'); got != '⠁' {
		t.Errorf("combineBraille(empty, x) = %U, want U+2801", got)
	}
}

func TestRamp_Render(t *testing.T) {
	t.Parallel()

	r := New(color.MustParse("#a6b91a"), WithSize(20, 5))
	out := r.Render()

	// chart rows, x axis labels, legend
	if got, want := lipgloss.Height(out), 5+2; got != want {
		t.Errorf("height = %d, want %d", got, want)
	}
	if got := lipgloss.Width(out); got < 20 {
		t.Errorf("width = %d, want at least 20", got)
	}

	plain := ansi.Strip(out)
	for _, want := range []string{"#a6b91a", "R a6", "G b9", "B 1a", "2.0"} {
		if !strings.Contains(plain, want) {
			t.Errorf("Render() missing %q in:\n%s", want, plain)
		}
	}
	if !strings.ContainsFunc(plain, hasDots) {
		t.Errorf("Render() drew no braille dots:\n%s", plain)
	}
}

func TestNew_Defaults(t *testing.T) {
	t.Parallel()

	r := New(color.RGB{}, WithMaxFactor(-1), WithSize(0, 0))
	if r.MaxFactor != DefaultMaxFactor {
		t.Errorf("MaxFactor = %v, want %v", r.MaxFactor, DefaultMaxFactor)
	}
	if r.Width != 1 || r.Height != 1 {
		t.Errorf("size = %dx%d, want 1x1", r.Width, r.Height)
	}
}
