package tables

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/akasprzok/litedye/internal/charts"
	"github.com/akasprzok/litedye/internal/dye"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	teatable "github.com/evertras/bubble-table/table"
)

const (
	columnKeyName  = "name"
	columnKeyCount = "count"

	// minColumnWidth keeps short headers like "Dye" readable.
	minColumnWidth = 6

	// browserPageSize is the number of rows the item browser shows per page.
	browserPageSize = 15
)

// CountsTable renders entries as a two-column table, each color name on a
// swatch of its tint.
func CountsTable(nameHeader, countHeader string, entries []dye.Entry) string {
	longestName := len(nameHeader)
	maxCount := 0
	rows := make([]teatable.Row, 0, len(entries))
	for _, entry := range entries {
		longestName = max(longestName, len(entry.Color.String()))
		maxCount = max(maxCount, entry.Count)
		rows = append(rows, teatable.NewRow(teatable.RowData{
			columnKeyName:  colorCell(entry.Color),
			columnKeyCount: entry.Count,
		}))
	}

	columns := []teatable.Column{
		teatable.NewColumn(columnKeyName, nameHeader, max(longestName+1, minColumnWidth)),
		teatable.NewColumn(columnKeyCount, countHeader, max(len(strconv.Itoa(maxCount))+1, len(countHeader)+1, minColumnWidth)),
	}

	return teatable.New(columns).WithRows(rows).View()
}

func colorCell(c dye.Color) teatable.StyledCell {
	return teatable.NewStyledCell(c.String(), charts.SwatchStyle(c))
}

// printedName tints only the color prefix, for output that is read but not
// filtered.
func printedName(item dye.Item) any {
	return charts.ItemName(item)
}

// browsedName keeps the cell data plain so the filter matches across the
// color prefix, and tints the whole cell instead.
func browsedName(item dye.Item) any {
	if item.Color == dye.None {
		return item.FullName()
	}
	return teatable.NewStyledCell(item.FullName(), charts.TintStyle(item.Color))
}

func itemRows(items []dye.Item, name func(dye.Item) any) ([]teatable.Row, int, int) {
	longestName := 0
	maxCount := 0
	rows := make([]teatable.Row, 0, len(items))
	for _, item := range items {
		longestName = max(longestName, len(item.FullName()))
		maxCount = max(maxCount, item.Count)
		rows = append(rows, teatable.NewRow(teatable.RowData{
			columnKeyName:  name(item),
			columnKeyCount: item.Count,
		}))
	}
	return rows, longestName, maxCount
}

func itemColumns(longestName, maxCount int) []teatable.Column {
	return []teatable.Column{
		teatable.NewColumn(columnKeyName, "Item", max(longestName+1, minColumnWidth)).WithFiltered(true),
		teatable.NewColumn(columnKeyCount, "Quantity", max(len(strconv.Itoa(maxCount))+1, len("Quantity")+1)),
	}
}

// ItemsTable renders every item with its quantity.
func ItemsTable(items []dye.Item) string {
	rows, longestName, maxCount := itemRows(items, printedName)
	return teatable.New(itemColumns(longestName, maxCount)).WithRows(rows).View()
}

// Model is an interactive, filterable item list.
type Model struct {
	table           teatable.Model
	filterTextInput textinput.Model
	itemCount       int
	dyeableCount    int
}

// NewItemBrowser builds the interactive item list.
func NewItemBrowser(items []dye.Item) Model {
	rows, longestName, maxCount := itemRows(items, browsedName)

	dyeable := 0
	for _, item := range items {
		if item.Color != dye.None && dye.IsDyeable(item.Name) {
			dyeable++
		}
	}

	return Model{
		table: teatable.
			New(itemColumns(longestName, maxCount)).
			Filtered(true).
			Focused(true).
			WithFooterVisibility(true).
			WithPageSize(browserPageSize).
			WithRows(rows),
		filterTextInput: textinput.New(),
		itemCount:       len(items),
		dyeableCount:    dyeable,
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if keyMsg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	if m.Filtering() {
		switch keyMsg.String() {
		case "enter":
			m.filterTextInput.Blur()
		case "esc":
			m = m.clearFilter()
		default:
			m.filterTextInput, _ = m.filterTextInput.Update(keyMsg)
			m.table = m.table.WithFilterInput(m.filterTextInput)
		}
		return m, nil
	}

	switch keyMsg.String() {
	case "/":
		m.filterTextInput.Focus()
		return m, nil
	case "esc":
		return m.clearFilter(), nil
	case "q":
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(keyMsg)
	return m, cmd
}

func (m Model) clearFilter() Model {
	m.filterTextInput.Blur()
	m.filterTextInput.SetValue("")
	m.table = m.table.WithFilterInput(m.filterTextInput)
	return m
}

// Filtering reports whether keystrokes currently go to the filter.
func (m Model) Filtering() bool {
	return m.filterTextInput.Focused()
}

// FilterValue is the text items are currently filtered by.
func (m Model) FilterValue() string {
	return m.filterTextInput.Value()
}

func (m Model) statusLine() string {
	if m.Filtering() {
		return fmt.Sprintf("Filter items: %s_  (enter to keep, esc to clear)", m.FilterValue())
	}

	status := fmt.Sprintf("%d items, %d dyeable", m.itemCount, m.dyeableCount)
	if m.FilterValue() != "" {
		status += fmt.Sprintf(", filtered by %q", m.FilterValue())
	}
	return status + "  / filter by name, esc clear filter, q quit"
}

func (m Model) View() string {
	body := strings.Builder{}

	body.WriteString(m.table.View())
	body.WriteString("\n")
	body.WriteString(m.statusLine())

	return body.String()
}
