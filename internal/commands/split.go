package commands

import (
	"fmt"

	"github.com/akasprzok/litedye/internal/charts"
	"github.com/akasprzok/litedye/internal/dye"
)

type SplitCmd struct {
	Names []string `arg:"" name:"name" help:"Item names, e.g. \"Light Blue Stained Glass\"."`
}

func (s *SplitCmd) Run(ctx *Context) error {
	for _, name := range s.Names {
		fmt.Fprintln(ctx.Out, describeSplit(name))
	}
	return nil
}

func describeSplit(name string) string {
	color, rest := dye.SplitColorPrefix(name)
	if color == dye.None {
		return fmt.Sprintf("%q: no color", name)
	}

	kind := "not dyeable"
	if dye.IsDyeable(rest) {
		kind = "dyeable"
	}
	return fmt.Sprintf("%q: %s + %q (%s)", name, charts.ColorName(color), rest, kind)
}
