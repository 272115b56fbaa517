package main

import (
	"os"

	"github.com/akasprzok/litedye/internal/commands"
	"github.com/alecthomas/kong"
)

func main() {
	ctx := kong.Parse(&commands.Cli,
		kong.Name("litedye"),
		kong.Description("Count the dyes needed to build a Litematica schematic."),
		kong.UsageOnError(),
	)
	err := ctx.Run(&commands.Context{
		Logger: commands.NewLogger(commands.Cli.Verbose),
		Out:    os.Stdout,
	})
	ctx.FatalIfErrorf(err)
}
