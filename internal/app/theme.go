package app

import "fmt"

// Theme is a named colour palette. Rendering turns it into styles.
type Theme struct {
	Name       string
	Background string
	Foreground string
	Button     string
	ButtonText string
	Hover      string
	HoverText  string
	Muted      string
	Border     string
	Error      string
	Success    string
}

// Available themes
var (
	LightTheme = Theme{
		Name:       "light",
		Background: "#f2f7f2",
		Foreground: "#000000",
		Button:     "#a8d5a2",
		ButtonText: "#000000",
		Hover:      "#2f4f2d",
		HoverText:  "#ffffff",
		Muted:      "#6b7280",
		Border:     "#aaaaaa",
		Error:      "#dc2626",
		Success:    "#4caf50",
	}

	DarkTheme = Theme{
		Name:       "dark",
		Background: "#2c2f2c",
		Foreground: "#ffffff",
		Button:     "#2f4f2d",
		ButtonText: "#ffffff",
		Hover:      "#a8d5a2",
		HoverText:  "#000000",
		Muted:      "#9ca3af",
		Border:     "#555555",
		Error:      "#f87171",
		Success:    "#4caf50",
	}
)

// ThemeByName returns the named theme
func ThemeByName(name string) (Theme, error) {
	switch name {
	case LightTheme.Name:
		return LightTheme, nil
	case DarkTheme.Name:
		return DarkTheme, nil
	default:
		return Theme{}, fmt.Errorf("unknown theme: %s", name)
	}
}

// Opposite returns the other theme
func (t Theme) Opposite() Theme {
	if t.Name == DarkTheme.Name {
		return LightTheme
	}
	return DarkTheme
}
