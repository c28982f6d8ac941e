package main

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"

	"github.com/katalvlaran/wordpath/core"
	"github.com/katalvlaran/wordpath/dijkstra"
)

type shortestCmd struct {
	commonOpts
	graph       string
	source      int
	target      int
	maxDistance int64
}

func (*shortestCmd) Name() string { return "shortest" }
func (*shortestCmd) Synopsis() string {
	return "Print shortest weighted paths from a source vertex."
}
func (c *shortestCmd) Usage() string {
	return fmt.Sprintf("%s -graph FILE [-source S] [-target T] [-max-distance D]: %s\n\n", c.Name(), c.Synopsis())
}

func (c *shortestCmd) SetFlags(f *flag.FlagSet) {
	c.commonOpts.RegisterFlags(f)
	f.StringVar(&c.graph, "graph", "", "Graph file: vertex count, then 'from to weight' triples")
	f.IntVar(&c.source, "source", 0, "Source vertex id")
	f.IntVar(&c.target, "target", -1, "Target vertex id; negative prints every vertex")
	f.Int64Var(&c.maxDistance, "max-distance", 0, "Stop exploring beyond this distance; 0 means no limit")
}

func (c *shortestCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.graph == "" || c.maxDistance < 0 {
		fmt.Fprint(c.stderr, c.Usage())
		return subcommands.ExitUsageError
	}
	rep := c.reporter()

	g, err := core.LoadGraph(c.graph)
	if err != nil {
		rep.Errorf("%v", err)
		return subcommands.ExitFailure
	}

	var opts []dijkstra.Option
	if c.maxDistance > 0 {
		opts = append(opts, dijkstra.WithMaxDistance(c.maxDistance))
	}
	dist, prev, err := dijkstra.Dijkstra(g, c.source, opts...)
	if err != nil {
		rep.Errorf("%v", err)
		return subcommands.ExitFailure
	}

	targets := []int{c.target}
	if c.target < 0 {
		targets = make([]int, g.VertexCount())
		for i := range targets {
			targets[i] = i
		}
	} else if !g.HasVertex(c.target) {
		rep.Errorf("target %d: %v", c.target, core.ErrVertexNotFound)
		return subcommands.ExitFailure
	}

	for _, t := range targets {
		path := dijkstra.ExtractShortestPath(dist, prev, t)
		if path == nil {
			rep.PrintUnreachable(c.source, t)
			continue
		}
		rep.PrintPath(path, dist[t])
	}
	rep.Logger().Info("shortest paths computed", "graph", c.graph, "source", c.source, "vertices", g.VertexCount())

	return subcommands.ExitSuccess
}
