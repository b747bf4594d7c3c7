package settings

import (
	"fmt"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// DefaultColor is the colour the LED form starts with
const DefaultColor = "#ffffff"

// NamedColor is a palette entry offered by the colour picker
type NamedColor struct {
	Name string
	Hex  string
}

// Palette lists the colours the picker offers
var Palette = []NamedColor{
	{"white", "#ffffff"},
	{"warm white", "#ffd8a8"},
	{"red", "#ff0000"},
	{"orange", "#ff8000"},
	{"yellow", "#ffff00"},
	{"green", "#00ff00"},
	{"cyan", "#00ffff"},
	{"blue", "#0000ff"},
	{"violet", "#8000ff"},
	{"magenta", "#ff00ff"},
}

// Color is the LED colour selection. An invalid update leaves the previous
// colour in place.
type Color struct {
	current colorful.Color
}

// NewColor returns a Color set to DefaultColor
func NewColor() *Color {
	c, _ := ParseColor(DefaultColor)
	return &Color{current: c}
}

// ParseColor accepts "#rgb", "#rrggbb" or a palette name
func ParseColor(s string) (colorful.Color, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, named := range Palette {
		if s == named.Name {
			s = named.Hex
			break
		}
	}
	if !strings.HasPrefix(s, "#") || (len(s) != 4 && len(s) != 7) {
		return colorful.Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	for _, r := range s[1:] {
		if !strings.ContainsRune("0123456789abcdef", r) {
			return colorful.Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
		}
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return colorful.Color{}, fmt.Errorf("%w: %v", ErrInvalidColor, err)
	}
	return c, nil
}

// SetHex replaces the colour when s parses; on error the colour is unchanged
func (c *Color) SetHex(s string) error {
	parsed, err := ParseColor(s)
	if err != nil {
		return err
	}
	c.current = parsed
	return nil
}

// Hex returns the colour as lowercase "#rrggbb"
func (c *Color) Hex() string {
	return c.current.Hex()
}

// RGB returns the colour channels
func (c *Color) RGB() (uint8, uint8, uint8) {
	return c.current.RGB255()
}

// ContrastText returns black or white, whichever reads better on the colour
func (c *Color) ContrastText() string {
	_, _, l := c.current.Hcl()
	if l > 0.6 {
		return "#000000"
	}
	return "#ffffff"
}

// NearestNamed returns the palette entry closest to the colour
func (c *Color) NearestNamed() NamedColor {
	best := Palette[0]
	bestDist := -1.0
	for _, named := range Palette {
		pc, err := colorful.Hex(named.Hex)
		if err != nil {
			continue
		}
		if d := c.current.DistanceLab(pc); bestDist < 0 || d < bestDist {
			best, bestDist = named, d
		}
	}
	return best
}
