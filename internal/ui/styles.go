package ui

import "github.com/charmbracelet/lipgloss"

// Color palette: a single lime accent over grays.
const (
	ColorLime     = "154" // selection accent
	ColorWhite    = "255" // result titles
	ColorGray     = "245" // tooltips, secondary text
	ColorDarkGray = "238" // borders, hints
)

// Styles holds the lipgloss styles for the launcher window.
type Styles struct {
	Prompt   lipgloss.Style
	Row      lipgloss.Style
	Selected lipgloss.Style
	Icon     lipgloss.Style
	Tooltip  lipgloss.Style
	Hint     lipgloss.Style
	Frame    lipgloss.Style
}

// DefaultStyles returns the styled launcher look.
func DefaultStyles() Styles {
	return Styles{
		Prompt:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(ColorLime)),
		Row:      lipgloss.NewStyle().Foreground(lipgloss.Color(ColorWhite)),
		Selected: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(ColorLime)),
		Icon:     lipgloss.NewStyle().Foreground(lipgloss.Color(ColorGray)),
		Tooltip:  lipgloss.NewStyle().Foreground(lipgloss.Color(ColorGray)),
		Hint:     lipgloss.NewStyle().Foreground(lipgloss.Color(ColorDarkGray)),
		Frame: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(ColorDarkGray)).
			Padding(0, 1),
	}
}

// NoColorStyles returns unstyled components for plain terminals.
func NoColorStyles() Styles {
	return Styles{
		Prompt:   lipgloss.NewStyle(),
		Row:      lipgloss.NewStyle(),
		Selected: lipgloss.NewStyle().Bold(true),
		Icon:     lipgloss.NewStyle(),
		Tooltip:  lipgloss.NewStyle(),
		Hint:     lipgloss.NewStyle(),
		Frame:    lipgloss.NewStyle(),
	}
}
