package charts

import (
	"fmt"

	"github.com/NimbleMarkets/ntcharts/barchart"
	"github.com/akasprzok/litedye/internal/dye"
)

// Barchart draws one horizontal bar per entry, in the entry's dye tint.
func Barchart(entries []dye.Entry, width int) string {
	if len(entries) == 0 {
		return ""
	}

	barData := make([]barchart.BarData, 0, len(entries))
	for _, entry := range entries {
		barData = append(barData, barchart.BarData{
			Label: fmt.Sprintf("%s (%d)", entry.Color, entry.Count),
			Values: []barchart.BarValue{
				{Name: entry.Color.String(), Value: float64(entry.Count), Style: TintStyle(entry.Color)},
			},
		})
	}

	bc := barchart.New(max(width, MinChartWidth), len(barData)*BarHeight,
		barchart.WithDataSet(barData),
		barchart.WithHorizontalBars(),
	)
	bc.Draw()

	return bc.View()
}
