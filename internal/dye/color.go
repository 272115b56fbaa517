// Package dye models the sixteen dye colors and how they are crafted from
// one another.
package dye

import (
	"fmt"
	"strings"
)

// Color is one of the sixteen dye colors.
type Color int

const (
	White Color = iota
	LightGray
	Gray
	Black
	Brown
	Red
	Orange
	Yellow
	Lime
	Green
	Cyan
	LightBlue
	Blue
	Purple
	Magenta
	Pink

	None Color = -1
)

type colorInfo struct {
	name string
	tint string
}

var colorTable = [...]colorInfo{
	White:     {"White", "#F9FFFE"},
	LightGray: {"Light Gray", "#9D9D97"},
	Gray:      {"Gray", "#474F52"},
	Black:     {"Black", "#1D1D21"},
	Brown:     {"Brown", "#835432"},
	Red:       {"Red", "#B02E26"},
	Orange:    {"Orange", "#F9801D"},
	Yellow:    {"Yellow", "#FED83D"},
	Lime:      {"Lime", "#80C71F"},
	Green:     {"Green", "#5E7C16"},
	Cyan:      {"Cyan", "#169C9C"},
	LightBlue: {"Light Blue", "#3AB3DA"},
	Blue:      {"Blue", "#3C44AA"},
	Purple:    {"Purple", "#8932B8"},
	Magenta:   {"Magenta", "#C74EBD"},
	Pink:      {"Pink", "#F38BAA"},
}

var byName = func() map[string]Color {
	m := make(map[string]Color, len(colorTable))
	for i, info := range colorTable {
		m[info.name] = Color(i)
	}
	return m
}()

func (c Color) valid() bool {
	return c >= 0 && int(c) < len(colorTable)
}

func (c Color) String() string {
	switch {
	case c == None:
		return "None"
	case c.valid():
		return colorTable[c].name
	default:
		return "Unknown"
	}
}

// Tint is the hex color used when rendering c in a terminal.
func (c Color) Tint() string {
	if !c.valid() {
		return ""
	}
	return colorTable[c].tint
}

// Parse looks up a color by its display name. Matching is exact: "light gray"
// and "Light  Gray" are not colors.
func Parse(name string) (Color, bool) {
	c, ok := byName[name]
	if !ok {
		return None, false
	}
	return c, true
}

// SplitColorPrefix strips a leading color name from an item label, so
// "Lime Concrete Powder" becomes (Lime, "Concrete Powder"). Labels without a
// color prefix come back unchanged with None.
//
// Two-word colors always start with "Light". A "Light" label that does not
// have a name after the color, such as "Light Blue" on its own, is treated as
// uncolored.
func SplitColorPrefix(item string) (Color, string) {
	first, rest, ok := strings.Cut(item, " ")
	if !ok {
		return None, item
	}

	if first == "Light" {
		second, third, ok := strings.Cut(rest, " ")
		if !ok {
			return None, item
		}
		c, ok := Parse("Light " + second)
		if !ok {
			return None, item
		}
		return c, third
	}

	c, ok := Parse(first)
	if !ok {
		return None, item
	}
	return c, rest
}

// MarshalText encodes c as its display name.
func (c Color) MarshalText() ([]byte, error) {
	if !c.valid() {
		return nil, fmt.Errorf("cannot marshal color %d", int(c))
	}
	return []byte(c.String()), nil
}

// UnmarshalText decodes a display name.
func (c *Color) UnmarshalText(text []byte) error {
	parsed, ok := Parse(string(text))
	if !ok {
		return fmt.Errorf("unknown color %q", string(text))
	}
	*c = parsed
	return nil
}
