package dye

import "sort"

// BlocksPerDye is how many dyeable blocks a single dye colors.
const BlocksPerDye = 8

// Dyeable lists the block families whose color comes from a dye.
var Dyeable = []string{
	"Terracotta",
	"Concrete Powder",
	"Stained Glass",
	"Stained Glass Pane",
}

// IsDyeable reports whether name, with its color prefix already removed, is
// one of the Dyeable block families.
func IsDyeable(name string) bool {
	for _, d := range Dyeable {
		if d == name {
			return true
		}
	}
	return false
}

// Item is one line of a material list after its color prefix was split off.
type Item struct {
	Name  string
	Color Color
	Count int
}

// FullName puts the color prefix back in front of the name.
func (i Item) FullName() string {
	if i.Color == None {
		return i.Name
	}
	return i.Color.String() + " " + i.Name
}

// Counts maps a color to a number of units, blocks or dyes depending on use.
type Counts map[Color]int

// Entry is a single color/count pair.
type Entry struct {
	Color Color
	Count int
}

// Sorted returns the entries by count, largest first. Ties keep color
// declaration order.
func (c Counts) Sorted() []Entry {
	entries := make([]Entry, 0, len(c))
	for color, count := range c {
		entries = append(entries, Entry{Color: color, Count: count})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Count != entries[j].Count {
			return entries[i].Count > entries[j].Count
		}
		return entries[i].Color < entries[j].Color
	})
	return entries
}

// Total sums every count.
func (c Counts) Total() int {
	total := 0
	for _, count := range c {
		total += count
	}
	return total
}

func (c Counts) clone() Counts {
	out := make(Counts, len(c))
	for color, count := range c {
		out[color] = count
	}
	return out
}

// ComputeColorDemand counts the dyes needed per color to craft every dyeable
// item in items.
func ComputeColorDemand(items []Item) Counts {
	demand := Counts{}
	for _, item := range items {
		if item.Color == None || item.Count <= 0 || !IsDyeable(item.Name) {
			continue
		}
		demand[item.Color] += ceilDiv(item.Count, BlocksPerDye)
	}
	return demand
}

// ComputeDyeIngredients breaks the demanded colors down into the dyes that
// craft them. demand is left untouched.
func ComputeDyeIngredients(demand Counts, mode Mode) Counts {
	if mode != Primary && mode != PrimaryAndQuasi {
		return Counts{}
	}

	dyes := demand.clone()
	ApplyTier(dyes, Tertiary)

	if mode == PrimaryAndQuasi {
		ApplyTier(dyes, QuasiPrimary)
	}

	return dyes
}

func ceilDiv(n, d int) int {
	return (n + d - 1) / d
}
