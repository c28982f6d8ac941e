package main

import (
	"flag"
	"io"

	"github.com/katalvlaran/wordpath/internal/config"
	"github.com/katalvlaran/wordpath/internal/logging"
	"github.com/katalvlaran/wordpath/report"
)

// commonOpts is the common options for all subcommands.
type commonOpts struct {
	cfg     config.Config
	stdout  io.Writer
	stderr  io.Writer
	verbose bool
}

// RegisterFlags sets the common options on the subcommands' flag set.
func (c *commonOpts) RegisterFlags(f *flag.FlagSet) {
	f.BoolVar(&c.verbose, "v", false, "Write structured logs to stderr")
}

// reporter builds the Reporter a subcommand prints through. Structured
// logs are dropped unless -v was given.
func (c *commonOpts) reporter() *report.Reporter {
	logOut := io.Discard
	if c.verbose {
		logOut = c.stderr
	}
	return report.New(c.stdout, c.stderr, logging.New(logOut, c.cfg.Logging))
}
