package console

import (
	"io"

	"github.com/charmbracelet/lipgloss"
)

// Colors used in the task listing.
var (
	ColorDone  = lipgloss.Color("#10B981") // Green
	ColorMuted = lipgloss.Color("#9CA3AF") // Light gray
	ColorError = lipgloss.Color("#EF4444") // Red
)

// Styles holds the styles for the line-oriented session.
// They are bound to a renderer for the session's output, so writers that
// are not terminals receive plain text.
type Styles struct {
	Header  lipgloss.Style
	Done    lipgloss.Style
	Pending lipgloss.Style
	Summary lipgloss.Style
	Error   lipgloss.Style
}

// NewStyles returns the default styles rendered for w.
func NewStyles(w io.Writer) Styles {
	r := lipgloss.NewRenderer(w)
	return Styles{
		Header:  r.NewStyle().Bold(true),
		Done:    r.NewStyle().Foreground(ColorDone),
		Pending: r.NewStyle(),
		Summary: r.NewStyle().Foreground(ColorMuted),
		Error:   r.NewStyle().Foreground(ColorError),
	}
}
