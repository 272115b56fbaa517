package charts

import (
	"fmt"
	"io"
	"os"

	"github.com/akasprzok/litedye/internal/dye"
	"golang.org/x/term"
)

type Charter interface {
	PrintCounts(dye.Counts)
}

type ntCharts struct {
	out io.Writer
}

func NewNtCharts(out io.Writer) Charter {
	return &ntCharts{out: out}
}

func (c *ntCharts) PrintCounts(counts dye.Counts) {
	fmt.Fprintln(c.out, Barchart(counts.Sorted(), WidthOf(c.out)-ChartWidthPadding))
}

// WidthOf returns the terminal width behind w, or DefaultTerminalWidth when w
// is not a terminal.
func WidthOf(w io.Writer) int {
	f, ok := w.(*os.File)
	if !ok {
		return DefaultTerminalWidth
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil || width <= 0 {
		return DefaultTerminalWidth
	}
	return width
}
