package tui

import "github.com/charmbracelet/lipgloss"

// Colors used in the task list view.
var (
	ColorPrimary = lipgloss.Color("#7C3AED") // Purple
	ColorSuccess = lipgloss.Color("#10B981") // Green
	ColorError   = lipgloss.Color("#EF4444") // Red
	ColorMuted   = lipgloss.Color("#9CA3AF") // Light gray
)

// Styles holds the styles for the task list view.
type Styles struct {
	Title    lipgloss.Style
	Selected lipgloss.Style
	Normal   lipgloss.Style
	Done     lipgloss.Style
	Summary  lipgloss.Style
	Status   lipgloss.Style
	Error    lipgloss.Style
	Help     lipgloss.Style
	Input    lipgloss.Style
}

// DefaultStyles returns the default styles.
func DefaultStyles() Styles {
	return Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary).
			MarginBottom(1),
		Selected: lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary),
		Normal: lipgloss.NewStyle(),
		Done: lipgloss.NewStyle().
			Foreground(ColorSuccess),
		Summary: lipgloss.NewStyle().
			Foreground(ColorMuted).
			MarginTop(1),
		Status: lipgloss.NewStyle().
			Foreground(ColorSuccess),
		Error: lipgloss.NewStyle().
			Foreground(ColorError).
			Bold(true),
		Help: lipgloss.NewStyle().
			Foreground(ColorMuted).
			MarginTop(1),
		Input: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(ColorMuted).
			Padding(0, 1),
	}
}
