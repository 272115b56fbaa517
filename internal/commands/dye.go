package commands

import (
	"fmt"

	"github.com/akasprzok/litedye/internal/charts"
	"github.com/akasprzok/litedye/internal/dye"
	"github.com/akasprzok/litedye/internal/materials"
	"github.com/akasprzok/litedye/internal/prometheus"
	"github.com/akasprzok/litedye/internal/tables"
)

type DyeCmd struct {
	File     string `arg:"" name:"file" help:"Material list exported from Litematica as CSV." type:"existingfile"`
	UseTotal bool   `name:"use-total" help:"Use total item counts instead of missing ones." env:"LITEDYE_USE_TOTAL"`
	Mode     string `name:"mode" short:"m" help:"How far to break colors down into dyes." default:"primary" enum:"no-calc,primary,primary-and-quasi" env:"LITEDYE_MODE"`
	Output   string `name:"output" short:"o" help:"Output format." default:"table" enum:"table,graph,json,yaml,prom"`
}

func (d *DyeCmd) Run(ctx *Context) error {
	mode, err := dye.ParseMode(d.Mode)
	if err != nil {
		return err
	}

	items, err := materials.Open(d.File, d.UseTotal)
	if err != nil {
		return err
	}
	ctx.Logger.Debug("read material list", "file", d.File, "items", len(items), "useTotal", d.UseTotal)

	demand := dye.ComputeColorDemand(items)
	if len(demand) == 0 {
		ctx.Logger.Warn("no dyeable blocks in material list", "file", d.File)
	}
	dyes := dye.ComputeDyeIngredients(demand, mode)
	ctx.Logger.Debug("computed dyes", "mode", mode, "colors", demand.Total(), "dyes", dyes.Total())

	return d.render(ctx, demand, dyes, mode)
}

func (d *DyeCmd) render(ctx *Context, demand, dyes dye.Counts, mode dye.Mode) error {
	switch d.Output {
	case OutputGraph:
		charter := charts.NewNtCharts(ctx.Out)
		charter.PrintCounts(demand)
		if mode != dye.NoCalc {
			charter.PrintCounts(dyes)
		}
	case OutputJSON:
		out, err := toJSON(formatCounts(demand, dyes, mode))
		if err != nil {
			return err
		}
		fmt.Fprintln(ctx.Out, string(out))
	case OutputYAML:
		out, err := toYAML(formatCounts(demand, dyes, mode))
		if err != nil {
			return err
		}
		fmt.Fprint(ctx.Out, string(out))
	case OutputProm:
		return prometheus.WriteTextfile(ctx.Out, demand, dyes, mode)
	default:
		fmt.Fprintln(ctx.Out, tables.CountsTable("Color", "Count", demand.Sorted()))
		if mode != dye.NoCalc {
			fmt.Fprintln(ctx.Out, tables.CountsTable("Dye", "Quantity", dyes.Sorted()))
		}
	}
	return nil
}
