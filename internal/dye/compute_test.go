package dye

import (
	"reflect"
	"testing"
)

func TestComputeColorDemand(t *testing.T) {
	tests := []struct {
		name  string
		items []Item
		want  Counts
	}{
		{
			name:  "rounds up to whole dyes",
			items: []Item{{Name: "Concrete Powder", Color: Lime, Count: 100}},
			want:  Counts{Lime: 13},
		},
		{
			name:  "exact multiple",
			items: []Item{{Name: "Terracotta", Color: Red, Count: 64}},
			want:  Counts{Red: 8},
		},
		{
			name:  "non dyeable item",
			items: []Item{{Name: "Iron Ingot", Color: None, Count: 50}},
			want:  Counts{},
		},
		{
			name:  "colored but not dyeable",
			items: []Item{{Name: "Wool", Color: Red, Count: 50}},
			want:  Counts{},
		},
		{
			name:  "dyeable without color",
			items: []Item{{Name: "Terracotta", Color: None, Count: 50}},
			want:  Counts{},
		},
		{
			name:  "zero count",
			items: []Item{{Name: "Stained Glass", Color: Blue, Count: 0}},
			want:  Counts{},
		},
		{
			name: "sums per item, rounding each",
			items: []Item{
				{Name: "Stained Glass", Color: Blue, Count: 1},
				{Name: "Stained Glass Pane", Color: Blue, Count: 9},
				{Name: "Concrete Powder", Color: White, Count: 8},
			},
			want: Counts{Blue: 3, White: 1},
		},
		{
			name:  "empty",
			items: nil,
			want:  Counts{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeColorDemand(tt.items)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ComputeColorDemand() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestComputeColorDemandIsOrderIndependent(t *testing.T) {
	items := []Item{
		{Name: "Terracotta", Color: Gray, Count: 17},
		{Name: "Concrete Powder", Color: Pink, Count: 3},
		{Name: "Terracotta", Color: Gray, Count: 5},
	}
	reversed := []Item{items[2], items[1], items[0]}

	if a, b := ComputeColorDemand(items), ComputeColorDemand(reversed); !reflect.DeepEqual(a, b) {
		t.Errorf("ComputeColorDemand() depends on order: %v vs %v", a, b)
	}
}

func TestApplyTier(t *testing.T) {
	tests := []struct {
		name   string
		counts Counts
		tier   []Addition
		want   Counts
	}{
		{
			name:   "no matching results is a no-op",
			counts: Counts{Red: 4, White: 2},
			tier:   Tertiary,
			want:   Counts{Red: 4, White: 2},
		},
		{
			name:   "gray rounds up per addend",
			counts: Counts{Gray: 5},
			tier:   Tertiary,
			want:   Counts{White: 3, Black: 3},
		},
		{
			name:   "adds onto existing entries",
			counts: Counts{Purple: 4, Red: 1, Blue: 1},
			tier:   Tertiary,
			want:   Counts{Red: 3, Blue: 3},
		},
		{
			name:   "repeated addends count once per occurrence",
			counts: Counts{LightGray: 7},
			tier:   QuasiPrimary,
			want:   Counts{Black: 3, White: 6},
		},
		{
			name:   "magenta",
			counts: Counts{Magenta: 8},
			tier:   QuasiPrimary,
			want:   Counts{Blue: 2, White: 2, Red: 4},
		},
		{
			name:   "empty",
			counts: Counts{},
			tier:   QuasiPrimary,
			want:   Counts{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ApplyTier(tt.counts, tt.tier)
			if !reflect.DeepEqual(tt.counts, tt.want) {
				t.Errorf("ApplyTier() = %v, want %v", tt.counts, tt.want)
			}
		})
	}
}

func TestApplyTierNeverUnderAllocates(t *testing.T) {
	tiers := map[string][]Addition{"tertiary": Tertiary, "quasi": QuasiPrimary}
	for name, tier := range tiers {
		for _, addition := range tier {
			for count := 1; count <= 40; count++ {
				counts := Counts{addition.Result: count}
				ApplyTier(counts, tier)

				if _, ok := counts[addition.Result]; ok {
					t.Errorf("%s: %v still present after ApplyTier", name, addition.Result)
				}
				if got := counts.Total(); got < count {
					t.Errorf("%s: %d %v became %d addend units, want >= %d", name, count, addition.Result, got, count)
				}
			}
		}
	}
}

func TestTiersDoNotFeedThemselves(t *testing.T) {
	for name, tier := range map[string][]Addition{"tertiary": Tertiary, "quasi": QuasiPrimary} {
		results := map[Color]bool{}
		for _, addition := range tier {
			results[addition.Result] = true
		}
		for _, addition := range tier {
			if len(addition.Addends) == 0 {
				t.Errorf("%s: %v has no addends", name, addition.Result)
			}
			for _, addend := range addition.Addends {
				if results[addend] {
					t.Errorf("%s: %v uses %v, which the same tier produces", name, addition.Result, addend)
				}
			}
		}
	}
}

func TestComputeDyeIngredients(t *testing.T) {
	demand := Counts{Gray: 5, LightGray: 7, Lime: 13, Red: 2}

	tests := []struct {
		name string
		mode Mode
		want Counts
	}{
		{
			name: "no calc",
			mode: NoCalc,
			want: Counts{},
		},
		{
			name: "primary only decomposes tertiary colors",
			mode: Primary,
			want: Counts{White: 3, Black: 3, LightGray: 7, Lime: 13, Red: 2},
		},
		{
			name: "primary and quasi",
			mode: PrimaryAndQuasi,
			want: Counts{White: 3 + 6 + 7, Black: 3 + 3, Green: 7, Red: 2},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeDyeIngredients(demand, tt.mode)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ComputeDyeIngredients(%v) = %v, want %v", tt.mode, got, tt.want)
			}
		})
	}

	if want := (Counts{Gray: 5, LightGray: 7, Lime: 13, Red: 2}); !reflect.DeepEqual(demand, want) {
		t.Errorf("ComputeDyeIngredients() mutated its input: %v", demand)
	}
}

func TestComputeDyeIngredientsQuasiAfterTertiary(t *testing.T) {
	got := ComputeDyeIngredients(Counts{LightGray: 7}, PrimaryAndQuasi)
	want := Counts{Black: 3, White: 6}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ComputeDyeIngredients() = %v, want %v", got, want)
	}
}

func TestNoCalcIsAlwaysEmpty(t *testing.T) {
	for _, demand := range []Counts{nil, {}, {Gray: 1}, {Purple: 100, Pink: 3}} {
		if got := ComputeDyeIngredients(demand, NoCalc); len(got) != 0 {
			t.Errorf("ComputeDyeIngredients(%v, NoCalc) = %v, want empty", demand, got)
		}
	}
}

func TestCountsSorted(t *testing.T) {
	counts := Counts{Red: 2, Blue: 9, White: 2, Pink: 5}
	want := []Entry{{Blue, 9}, {Pink, 5}, {White, 2}, {Red, 2}}

	if got := counts.Sorted(); !reflect.DeepEqual(got, want) {
		t.Errorf("Counts.Sorted() = %v, want %v", got, want)
	}
}

func TestItemFullName(t *testing.T) {
	tests := []struct {
		item Item
		want string
	}{
		{Item{Name: "Stained Glass", Color: LightBlue}, "Light Blue Stained Glass"},
		{Item{Name: "Iron Ingot", Color: None}, "Iron Ingot"},
	}
	for _, tt := range tests {
		if got := tt.item.FullName(); got != tt.want {
			t.Errorf("Item.FullName() = %q, want %q", got, tt.want)
		}
	}
}

func TestParseMode(t *testing.T) {
	for _, m := range []Mode{NoCalc, Primary, PrimaryAndQuasi} {
		got, err := ParseMode(m.String())
		if err != nil {
			t.Errorf("ParseMode(%q) returned error: %v", m.String(), err)
		}
		if got != m {
			t.Errorf("ParseMode(%q) = %v, want %v", m.String(), got, m)
		}
	}

	if _, err := ParseMode("quasi"); err == nil {
		t.Error("ParseMode(\"quasi\") returned nil error")
	}
	if got := Mode(42).String(); got != "Unknown" {
		t.Errorf("Mode(42).String() = %q, want Unknown", got)
	}
}

func TestIsDyeable(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"Terracotta", true},
		{"Concrete Powder", true},
		{"Stained Glass", true},
		{"Stained Glass Pane", true},
		{"Concrete", false},
		{"Wool", false},
		{"stained glass", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsDyeable(tt.name); got != tt.want {
				t.Errorf("IsDyeable(%q) = %v, want %v", tt.name, got, tt.want)
			}
		})
	}
}
