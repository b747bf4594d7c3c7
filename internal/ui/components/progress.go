package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Slider renders a bounded integer value as a horizontal bar
type Slider struct {
	Width int
	Min   int
	Max   int
	Value int
	Label string
	Unit  string

	Filled  lipgloss.Style
	Empty   lipgloss.Style
	Caption lipgloss.Style
}

// NewSlider creates a slider with unstyled parts
func NewSlider(width int) *Slider {
	return &Slider{
		Width:   width,
		Filled:  lipgloss.NewStyle(),
		Empty:   lipgloss.NewStyle(),
		Caption: lipgloss.NewStyle(),
	}
}

// SetRange updates the bounds and value
func (s *Slider) SetRange(minValue, maxValue, value int) {
	s.Min = minValue
	s.Max = maxValue
	s.Value = value
}

// Fraction returns how far along the range the value is
func (s *Slider) Fraction() float64 {
	if s.Max <= s.Min {
		return 1
	}
	f := float64(s.Value-s.Min) / float64(s.Max-s.Min)
	return max(0, min(1, f))
}

// Render renders the slider as "Label  [████░░░░] 12 s (1-60)"
func (s *Slider) Render() string {
	width := max(s.Width, 1)
	filledWidth := int(float64(width)*s.Fraction() + 0.5)
	emptyWidth := width - filledWidth

	bar := s.Filled.Render(strings.Repeat("█", filledWidth)) + s.Empty.Render(strings.Repeat("░", emptyWidth))

	value := fmt.Sprintf("%d", s.Value)
	if s.Unit != "" {
		value += " " + s.Unit
	}
	caption := s.Caption.Render(fmt.Sprintf("(%d-%d)", s.Min, s.Max))

	return fmt.Sprintf("%-18s %s %s %s", s.Label, bar, value, caption)
}
