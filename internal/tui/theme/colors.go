package theme

import (
	"charm.land/lipgloss/v2"

	"github.com/garrettladley/tint/internal/color"
)

var (
	ColorBlack = lipgloss.Color("#000000")
	ColorWhite = lipgloss.Color("#FFFFFF")
	ColorDim   = color.MustParse("#ffffff").Scale(0.4) // #666666
)

var (
	ColorBgDark  = lipgloss.Color("#101518")
	ColorBgLight = lipgloss.Color("#283339")
)

// Channel colors for the ramp plot.
var (
	ColorRed   = lipgloss.Color("#FF0026")
	ColorGreen = lipgloss.Color("#16EC06")
	ColorBlue  = lipgloss.Color("#0093E7")
)
