package commands

import (
	"fmt"

	"github.com/akasprzok/litedye/internal/materials"
	"github.com/akasprzok/litedye/internal/tables"
	tea "github.com/charmbracelet/bubbletea"
)

type ListCmd struct {
	File        string `arg:"" name:"file" help:"Material list exported from Litematica as CSV." type:"existingfile"`
	UseTotal    bool   `name:"use-total" help:"Use total item counts instead of missing ones." env:"LITEDYE_USE_TOTAL"`
	Interactive bool   `name:"interactive" short:"i" help:"Browse the list interactively."`
	Output      string `name:"output" short:"o" help:"Output format." default:"table" enum:"table,json,yaml"`
}

func (l *ListCmd) Run(ctx *Context) error {
	items, err := materials.Open(l.File, l.UseTotal)
	if err != nil {
		return err
	}
	ctx.Logger.Debug("read material list", "file", l.File, "items", len(items), "useTotal", l.UseTotal)

	if l.Interactive {
		_, err := tea.NewProgram(tables.NewItemBrowser(items), tea.WithAltScreen()).Run()
		return err
	}

	switch l.Output {
	case OutputJSON:
		out, err := toJSON(formatItems(items))
		if err != nil {
			return err
		}
		fmt.Fprintln(ctx.Out, string(out))
	case OutputYAML:
		out, err := toYAML(formatItems(items))
		if err != nil {
			return err
		}
		fmt.Fprint(ctx.Out, string(out))
	default:
		if len(items) == 0 {
			fmt.Fprintln(ctx.Out, "No Data")
			return nil
		}
		fmt.Fprintln(ctx.Out, tables.ItemsTable(items))
	}
	return nil
}
