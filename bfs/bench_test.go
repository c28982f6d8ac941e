package bfs_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/wordpath/bfs"
)

// BenchmarkBFS_Chain measures BFS on a linear chain graph of size N.
func BenchmarkBFS_Chain(b *testing.B) {
	const N = 10000
	pairs := make([]string, 0, N)
	for i := 0; i < N; i++ {
		pairs = append(pairs, fmt.Sprintf("v%d-v%d", i, i+1))
	}
	g := edges(pairs...)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = bfs.BFS(g, "v0")
	}
}

// BenchmarkBFS_ImplicitTarget runs a targeted search on the implicit number line.
func BenchmarkBFS_ImplicitTarget(b *testing.B) {
	g := numberLine{limit: 1 << 16}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = bfs.BFS(g, "1", bfs.WithTarget("50000"))
	}
}
