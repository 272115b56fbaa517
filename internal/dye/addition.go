package dye

// Addition is a crafting recipe: one dye of Result is made from one of each
// entry in Addends. Repeated addends express proportions.
type Addition struct {
	Result  Color
	Addends []Color
}

// Tertiary holds the colors crafted from two non-primary dyes.
var Tertiary = []Addition{
	{Result: Gray, Addends: []Color{White, Black}},
	{Result: Purple, Addends: []Color{Red, Blue}},
	{Result: Cyan, Addends: []Color{Green, Blue}},
}

// QuasiPrimary holds the colors crafted from a primary dye plus White or Red.
var QuasiPrimary = []Addition{
	{Result: LightBlue, Addends: []Color{Blue, White}},
	{Result: LightGray, Addends: []Color{Black, White, White}},
	{Result: Lime, Addends: []Color{Green, White}},
	{Result: Magenta, Addends: []Color{Blue, White, Red, Red}},
	{Result: Orange, Addends: []Color{Red, Yellow}},
	{Result: Pink, Addends: []Color{Red, White}},
}

// ApplyTier replaces every result color of tier found in counts with the
// ingredients needed to craft it.
//
// ex: 3 Lime -> 2 Green, 2 White
//
// Rules run once each, in order. A result produced by one rule is not
// decomposed again by a later rule of the same tier.
func ApplyTier(counts Counts, tier []Addition) {
	for _, addition := range tier {
		count, ok := counts[addition.Result]
		if !ok {
			continue
		}
		delete(counts, addition.Result)

		perAddend := ceilDiv(count, len(addition.Addends))
		for _, addend := range addition.Addends {
			counts[addend] += perAddend
		}
	}
}
