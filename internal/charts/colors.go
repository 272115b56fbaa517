package charts

import (
	"github.com/akasprzok/litedye/internal/dye"
	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

// DarkText and LightText are the swatch foregrounds, taken from the Black and
// White dyes.
var (
	DarkText  = lipgloss.Color(dye.Black.Tint())
	LightText = lipgloss.Color(dye.White.Tint())
)

// lightnessThreshold is the CIE L* above which a tint is too bright for LightText.
const lightnessThreshold = 0.6

// TintColor returns the display color of a dye. None and unknown colors have
// no tint and render in the terminal's default color.
func TintColor(c dye.Color) lipgloss.Color {
	return lipgloss.Color(c.Tint())
}

// TintStyle returns a lipgloss style with the dye's tint as foreground.
func TintStyle(c dye.Color) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(TintColor(c))
}

// SwatchStyle paints the dye's tint as background with a readable foreground.
func SwatchStyle(c dye.Color) lipgloss.Style {
	tint := c.Tint()
	if tint == "" {
		return lipgloss.NewStyle()
	}
	return lipgloss.NewStyle().
		Background(lipgloss.Color(tint)).
		Foreground(TextColorFor(tint))
}

// TextColorFor picks DarkText or LightText for text drawn on top of hex.
func TextColorFor(hex string) lipgloss.Color {
	c, err := colorful.Hex(hex)
	if err != nil {
		return LightText
	}
	l, _, _ := c.Lab()
	if l > lightnessThreshold {
		return DarkText
	}
	return LightText
}

// ColorName renders a color's name in its tint.
func ColorName(c dye.Color) string {
	return TintStyle(c).Render(c.String())
}

// ItemName renders an item's full name with only the color prefix tinted.
func ItemName(item dye.Item) string {
	if item.Color == dye.None {
		return item.Name
	}
	return ColorName(item.Color) + " " + item.Name
}
