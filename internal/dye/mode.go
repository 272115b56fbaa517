package dye

import "fmt"

// Mode selects how far ComputeDyeIngredients decomposes colors.
type Mode int

const (
	// NoCalc skips decomposition; only the color demand is wanted.
	NoCalc Mode = iota
	// Primary decomposes tertiary colors.
	Primary
	// PrimaryAndQuasi decomposes tertiary, then quasi-primary colors.
	PrimaryAndQuasi
)

var modeNames = map[Mode]string{
	NoCalc:          "no-calc",
	Primary:         "primary",
	PrimaryAndQuasi: "primary-and-quasi",
}

func (m Mode) String() string {
	if name, ok := modeNames[m]; ok {
		return name
	}
	return "Unknown"
}

// ParseMode accepts the names produced by Mode.String.
func ParseMode(s string) (Mode, error) {
	for m, name := range modeNames {
		if name == s {
			return m, nil
		}
	}
	return NoCalc, fmt.Errorf("unknown dye calculation mode %q", s)
}
