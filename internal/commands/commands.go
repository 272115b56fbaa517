package commands

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
)

type Context struct {
	Logger *log.Logger
	Out    io.Writer
}

var Cli struct {
	Verbose bool `help:"Log debug details to stderr." short:"v" env:"LITEDYE_VERBOSE"`

	List  ListCmd  `cmd:"" help:"List the items of a material list."`
	Dye   DyeCmd   `cmd:"" help:"Compute the dyes needed for the dyeable blocks of a material list."`
	Split SplitCmd `cmd:"" help:"Show how item names split into a color and a block."`
}

// NewLogger returns the stderr logger shared by every command.
func NewLogger(verbose bool) *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		Prefix: "litedye",
		Level:  log.InfoLevel,
	})
	if verbose {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}
