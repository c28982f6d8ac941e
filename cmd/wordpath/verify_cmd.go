package main

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"

	"github.com/katalvlaran/wordpath/ladder"
)

// verifyCases are expected ladder lengths against a full English word list.
var verifyCases = []struct {
	begin, end string
	size       int
}{
	{"cat", "dog", 4},
	{"marty", "curls", 6},
	{"code", "data", 6},
	{"work", "play", 6},
	{"sleep", "awake", 8},
	{"car", "cheat", 4},
}

type verifyCmd struct {
	commonOpts
	dict string
}

func (*verifyCmd) Name() string { return "verify" }
func (*verifyCmd) Synopsis() string {
	return "Check known ladder lengths against a dictionary."
}
func (c *verifyCmd) Usage() string {
	return fmt.Sprintf("%s [-dict FILE]: %s\n\n", c.Name(), c.Synopsis())
}

func (c *verifyCmd) SetFlags(f *flag.FlagSet) {
	c.commonOpts.RegisterFlags(f)
	f.StringVar(&c.dict, "dict", c.cfg.Dictionary, "Whitespace-separated word list")
}

func (c *verifyCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	rep := c.reporter()
	dict := ladder.LoadWords(c.dict, rep)

	failed := 0
	for _, tc := range verifyCases {
		got, err := ladder.GenerateContext(ctx, tc.begin, tc.end, dict)
		if err != nil {
			rep.Errorf("verify %s -> %s: %v", tc.begin, tc.end, err)
			return subcommands.ExitFailure
		}

		status := "passed"
		if len(got) != tc.size || ladder.Valid(got, tc.begin, tc.end, dict) != nil {
			status = "failed"
			failed++
		}
		fmt.Fprintf(c.stdout, "ladder(%q, %q) has %d words %s\n", tc.begin, tc.end, tc.size, status)
	}
	rep.Logger().Info("verification finished", "cases", len(verifyCases), "failed", failed)

	if failed > 0 {
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
