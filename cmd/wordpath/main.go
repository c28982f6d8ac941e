// Command wordpath finds word ladders and weighted shortest paths.
//
// Subcommands:
//
//	wordpath ladder [-dict FILE] BEGIN END
//	wordpath shortest -graph FILE [-source S] [-target T] [-max-distance D]
//	wordpath verify [-dict FILE]
//
// The WORDPATH_DICTIONARY environment variable sets the default word list.
// LOG_LEVEL, LOG_FORMAT and LOG_INCLUDE_CALLER shape the structured log
// written to stderr when -v is given.
package main

import (
	"context"
	"flag"
	"os"

	"github.com/google/subcommands"

	"github.com/katalvlaran/wordpath/internal/config"
)

func main() {
	opts := commonOpts{cfg: config.Load(), stdout: os.Stdout, stderr: os.Stderr}

	subcommands.Register(subcommands.HelpCommand(), "")
	subcommands.Register(subcommands.FlagsCommand(), "")
	subcommands.Register(subcommands.CommandsCommand(), "")
	subcommands.Register(&ladderCmd{commonOpts: opts}, "")
	subcommands.Register(&shortestCmd{commonOpts: opts}, "")
	subcommands.Register(&verifyCmd{commonOpts: opts}, "")

	flag.Parse()
	os.Exit(int(subcommands.Execute(context.Background())))
}
