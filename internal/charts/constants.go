package charts

const (
	// DefaultTerminalWidth is the fallback terminal width when detection fails.
	DefaultTerminalWidth = 80

	// ChartWidthPadding is the horizontal padding subtracted from terminal width for chart rendering.
	ChartWidthPadding = 6

	// MinChartWidth is the narrowest chart drawn, whatever the terminal says.
	MinChartWidth = 20

	// BarHeight is the number of rows each bar takes, gap included.
	BarHeight = 2
)
