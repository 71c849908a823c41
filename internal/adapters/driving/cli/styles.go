package cli

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// Palette shared by terminal output.
var (
	colourPrimary = lipgloss.Color("#7C3AED") // Purple
	colourMuted   = lipgloss.Color("#6C7086") // Medium gray
	colourSuccess = lipgloss.Color("#A6E3A1") // Green
)

// styles contains the lipgloss styles used for progress lines.
type styles struct {
	Step  lipgloss.Style
	Count lipgloss.Style
	Muted lipgloss.Style
}

func newStyles() styles {
	return styles{
		Step:  lipgloss.NewStyle().Foreground(colourSuccess).Bold(true),
		Count: lipgloss.NewStyle().Foreground(colourPrimary).Bold(true),
		Muted: lipgloss.NewStyle().Foreground(colourMuted),
	}
}

// colourEnabled reports whether w is a terminal that accepts colour.
// NO_COLOR and TERM=dumb disable it.
func colourEnabled(w io.Writer) bool {
	if os.Getenv("NO_COLOR") != "" || os.Getenv("TERM") == "dumb" {
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
