package tui

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/garrettladley/tint/internal/palette"
	"github.com/garrettladley/tint/internal/tui/components/footer"
	"github.com/garrettladley/tint/internal/tui/components/swatch"
	"github.com/garrettladley/tint/internal/tui/theme"
)

var _ tea.Model = (*Model)(nil)

const (
	// stepsPerUnit is the number of keypresses that move the factor by 1.0.
	stepsPerUnit = 20

	keyHints = "+/- factor  r reset  q quit"
)

// Model previews a palette scaled by an adjustable factor alongside its
// default tiers.
type Model struct {
	ready          bool
	viewportWidth  int
	viewportHeight int
	theme          theme.Theme
	palette        palette.Palette
	// steps is the factor in units of 1/stepsPerUnit, so the factor is
	// always exactly a multiple of the step.
	steps int
}

func New(p palette.Palette) Model {
	return Model{
		theme:   theme.New(),
		palette: p,
		steps:   stepsPerUnit,
	}
}

func (m *Model) Factor() float64 { return float64(m.steps) / stepsPerUnit }

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.viewportWidth = msg.Width
		m.viewportHeight = msg.Height
		m.ready = true

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "+", "=", "up", "right":
			m.steps++
		case "-", "_", "down", "left":
			m.steps = max(m.steps-1, 0)
		case "r", "0":
			m.steps = stepsPerUnit
		}
	}

	return m, nil
}

func (m *Model) View() tea.View {
	view := tea.NewView("")
	view.AltScreen = true
	view.BackgroundColor = m.theme.Background()

	if !m.ready {
		return view
	}

	content := lipgloss.Place(
		m.viewportWidth,
		max(m.viewportHeight-2, 0),
		lipgloss.Center,
		lipgloss.Center,
		m.Content(),
	)
	bar := footer.New(m.theme.Muted().Render(keyHints), m.viewportWidth).Render()

	view.SetContent(lipgloss.JoinVertical(lipgloss.Left, content, bar))
	return view
}

// Content renders the palette body without layout, for the full-screen view
// and for tests.
func (m *Model) Content() string {
	title := m.theme.Title().Render(m.palette.Name)

	current := swatch.New(
		m.palette.Scale(m.Factor()).Colors,
		swatch.WithLabel(fmt.Sprintf("x%.2f", m.Factor())),
	).Render()

	rows := []string{title, "", current, ""}
	for _, tier := range m.palette.Tiers() {
		rows = append(rows, swatch.New(
			tier.Colors,
			swatch.WithLabel(fmt.Sprintf("tier x%.1f", tier.Factor)),
			swatch.WithoutHex(),
		).Render())
	}

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}
