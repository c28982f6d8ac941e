package main

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"github.com/google/subcommands"

	"github.com/katalvlaran/wordpath/ladder"
	"github.com/katalvlaran/wordpath/report"
)

type ladderCmd struct {
	commonOpts
	dict     string
	maxSteps int
	avoid    string
}

func (*ladderCmd) Name() string     { return "ladder" }
func (*ladderCmd) Synopsis() string { return "Find a shortest word ladder between two words." }
func (c *ladderCmd) Usage() string {
	return fmt.Sprintf("%s [-dict FILE] [-max-steps N] [-avoid W1,W2] BEGIN END: %s\n\n", c.Name(), c.Synopsis())
}

func (c *ladderCmd) SetFlags(f *flag.FlagSet) {
	c.commonOpts.RegisterFlags(f)
	f.StringVar(&c.dict, "dict", c.cfg.Dictionary, "Whitespace-separated word list")
	f.IntVar(&c.maxSteps, "max-steps", 0, "Longest ladder to accept, in edits; 0 means no limit")
	f.StringVar(&c.avoid, "avoid", "", "Comma-separated words the ladder must not use")
}

// searchOptions builds the ladder options from flags. Under -v every
// expanded word is logged at debug level and discoveries are counted.
func (c *ladderCmd) searchOptions(rep *report.Reporter, discovered *int) []ladder.Option {
	opts := []ladder.Option{ladder.WithMaxSteps(c.maxSteps)}
	if c.avoid != "" {
		opts = append(opts, ladder.WithAvoid(strings.Split(c.avoid, ",")...))
	}
	if c.verbose {
		log := rep.Logger()
		opts = append(opts,
			ladder.WithOnDiscover(func(string, int) { *discovered++ }),
			ladder.WithOnVisit(func(w string, steps int) error {
				log.Debug("expand", "word", w, "steps", steps)
				return nil
			}),
		)
	}
	return opts
}

func (c *ladderCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 2 || c.maxSteps < 0 {
		fmt.Fprint(c.stderr, c.Usage())
		return subcommands.ExitUsageError
	}
	rep := c.reporter()
	begin, end := f.Arg(0), f.Arg(1)

	if begin == end {
		rep.Error(begin, end, "Start and end words are the same")
		rep.PrintLadder(nil)
		return subcommands.ExitFailure
	}

	dict := ladder.LoadWords(c.dict, rep)
	discovered := 0
	got, err := ladder.GenerateContext(ctx, begin, end, dict, c.searchOptions(rep, &discovered)...)
	if err != nil {
		rep.Errorf("ladder %s -> %s: %v", begin, end, err)
		return subcommands.ExitFailure
	}
	rep.Logger().Info("ladder search finished", "begin", begin, "end", end, "words", len(got), "discovered", discovered)
	rep.PrintLadder(got)

	return subcommands.ExitSuccess
}
