package tui

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// Color palette.
const (
	ColorAccent   = "39"  // Matched query text
	ColorWhite    = "255" // Titles
	ColorGray     = "245" // Breadcrumbs and status
	ColorDarkGray = "238" // Placeholder
)

// Styles holds the styles of the search panel.
type Styles struct {
	Title       lipgloss.Style
	Match       lipgloss.Style
	Selected    lipgloss.Style
	Breadcrumbs lipgloss.Style
	NoResults   lipgloss.Style
	Status      lipgloss.Style
	SelectedAll lipgloss.Style
}

// DefaultStyles returns the colored styles.
func DefaultStyles() Styles {
	return Styles{
		Title:       lipgloss.NewStyle().Foreground(lipgloss.Color(ColorWhite)),
		Match:       lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(ColorAccent)),
		Selected:    lipgloss.NewStyle().Bold(true).Reverse(true),
		Breadcrumbs: lipgloss.NewStyle().Foreground(lipgloss.Color(ColorGray)),
		NoResults:   lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color(ColorDarkGray)),
		Status:      lipgloss.NewStyle().Foreground(lipgloss.Color(ColorGray)),
		SelectedAll: lipgloss.NewStyle().Reverse(true),
	}
}

// NoColorStyles returns unstyled components.
func NoColorStyles() Styles {
	return Styles{
		Title:       lipgloss.NewStyle(),
		Match:       lipgloss.NewStyle(),
		Selected:    lipgloss.NewStyle(),
		Breadcrumbs: lipgloss.NewStyle(),
		NoResults:   lipgloss.NewStyle(),
		Status:      lipgloss.NewStyle(),
		SelectedAll: lipgloss.NewStyle(),
	}
}

// IsTTY checks if a reader or writer is a terminal.
func IsTTY(v any) bool {
	f, ok := v.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// DetectNoColor checks if NO_COLOR environment variable is set.
func DetectNoColor() bool {
	_, exists := os.LookupEnv("NO_COLOR")
	return exists
}

// Interactive reports whether both ends of the terminal session are TTYs.
func Interactive(in io.Reader, out io.Writer) bool {
	return IsTTY(in) && IsTTY(out)
}
