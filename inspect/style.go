package inspect

import "github.com/charmbracelet/lipgloss"

// Style controls the inspector's rendering.
type Style struct {
	Consumed lipgloss.Style
	Cursor   lipgloss.Style
	Rest     lipgloss.Style

	Status lipgloss.Style
	Error  lipgloss.Style
	Help   lipgloss.Style
}

func DefaultStyle() Style {
	return Style{
		Consumed: lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Cursor:   lipgloss.NewStyle().Reverse(true),
		Rest:     lipgloss.NewStyle(),
		Status:   lipgloss.NewStyle().Foreground(lipgloss.Color("250")).Bold(true),
		Error:    lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
		Help:     lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	}
}
