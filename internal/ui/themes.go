package ui

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/yildizm/NanoLab/internal/app"
)

// Styles are the lipgloss styles derived from an app.Theme
type Styles struct {
	Theme app.Theme

	App       lipgloss.Style
	Title     lipgloss.Style
	Toolbar   lipgloss.Style
	Tool      lipgloss.Style
	ToolOff   lipgloss.Style
	Button    lipgloss.Style
	Selected  lipgloss.Style
	Label     lipgloss.Style
	Muted     lipgloss.Style
	Summary   lipgloss.Style
	Panel     lipgloss.Style
	Status    lipgloss.Style
	Error     lipgloss.Style
	Success   lipgloss.Style
	BarFilled lipgloss.Style
	BarEmpty  lipgloss.Style
}

// NewStyles builds the style set for theme
func NewStyles(theme app.Theme) Styles {
	fg := lipgloss.Color(theme.Foreground)
	bg := lipgloss.Color(theme.Background)
	muted := lipgloss.Color(theme.Muted)

	base := lipgloss.NewStyle().Foreground(fg).Background(bg)
	button := lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.ButtonText)).
		Background(lipgloss.Color(theme.Button)).
		Padding(0, 2).
		MarginRight(1)

	return Styles{
		Theme:   theme,
		App:     base.Padding(1, 2),
		Title:   lipgloss.NewStyle().Foreground(fg).Bold(true).MarginBottom(1),
		Toolbar: lipgloss.NewStyle().BorderStyle(lipgloss.NormalBorder()).BorderBottom(true).BorderForeground(lipgloss.Color(theme.Border)),
		Tool:    button,
		ToolOff: button.Foreground(muted),
		Button:  button,
		Selected: button.
			Foreground(lipgloss.Color(theme.HoverText)).
			Background(lipgloss.Color(theme.Hover)).
			Bold(true),
		Label:     lipgloss.NewStyle().Foreground(fg),
		Muted:     lipgloss.NewStyle().Foreground(muted),
		Summary:   lipgloss.NewStyle().Foreground(fg).Italic(true).MarginTop(1),
		Panel:     lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color(theme.Border)).Padding(0, 1),
		Status:    lipgloss.NewStyle().Foreground(muted).MarginTop(1),
		Error:     lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Error)).Bold(true).MarginTop(1),
		Success:   lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Success)).MarginTop(1),
		BarFilled: lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Hover)),
		BarEmpty:  lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Border)),
	}
}

// ColorEnabled reports whether styled output should be produced for the
// given color mode. "auto" honours NO_COLOR and dumb terminals.
func ColorEnabled(mode string) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	}
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	if term := os.Getenv("TERM"); term == "dumb" {
		return false
	}
	return true
}
