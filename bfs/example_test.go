package bfs_test

import (
	"context"
	"fmt"
	"sort"
	"strconv"

	"github.com/katalvlaran/wordpath/bfs"
)

// numberLine is an implicit graph: from n you may step to n+1 or 2n, up to limit.
type numberLine struct{ limit int }

func (g numberLine) HasVertex(id string) bool {
	n, err := strconv.Atoi(id)
	return err == nil && n >= 1 && n <= g.limit
}

func (g numberLine) NeighborIDs(id string) ([]string, error) {
	n, err := strconv.Atoi(id)
	if err != nil {
		return nil, err
	}
	seen := map[string]bool{}
	var out []string
	for _, m := range []int{n + 1, 2 * n} {
		s := strconv.Itoa(m)
		if m <= g.limit && !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}
	sort.Strings(out)
	return out, nil
}

// ExampleBFS_implicitGraph finds the fewest “+1 / ×2” steps from 1 to 10
// without ever materializing the graph.
func ExampleBFS_implicitGraph() {
	res, err := bfs.BFS(numberLine{limit: 20}, "1", bfs.WithTarget("10"))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	path, _ := res.PathTo("10")
	fmt.Println(res.Found, path)
	// Output:
	// true [1 2 4 5 10]
}

// ExampleBFS_depthLimitOnChain shows applying WithMaxDepth to a linear chain of 10 vertices.
// With depth=2 we only visit the first three nodes.
func ExampleBFS_depthLimitOnChain() {
	var pairs []string
	for i := 0; i < 9; i++ {
		pairs = append(pairs, fmt.Sprintf("v%d-v%d", i, i+1))
	}

	res, err := bfs.BFS(edges(pairs...), "v0", bfs.WithMaxDepth(2))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Order)
	// Output:
	// [v0 v1 v2]
}

// ExampleBFS_hooksAndCancellation demonstrates OnEnqueue and OnVisit hooks
// alongside context cancellation on a 7-node chain.
func ExampleBFS_hooksAndCancellation() {
	var pairs []string
	for i := 0; i < 6; i++ {
		pairs = append(pairs, fmt.Sprintf("n%d-n%d", i, i+1))
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var enqSeq, visSeq []string

	// after depth 4, we call cancel()
	hookVisit := func(id string, d int) error {
		visSeq = append(visSeq, fmt.Sprintf("V[%s@%d]", id, d))
		if d == 4 {
			cancel()
		}
		return nil
	}

	_, err := bfs.BFS(
		edges(pairs...), "n0",
		bfs.WithContext(ctx),
		bfs.WithOnEnqueue(func(id string, d int) { enqSeq = append(enqSeq, fmt.Sprintf("E[%s@%d]", id, d)) }),
		bfs.WithOnVisit(hookVisit),
	)

	fmt.Println("error:", err)
	fmt.Println("Enqueued:", enqSeq)
	fmt.Println("Visited: ", visSeq)
	// Output:
	// error: context canceled
	// Enqueued: [E[n0@0] E[n1@1] E[n2@2] E[n3@3] E[n4@4]]
	// Visited:  [V[n0@0] V[n1@1] V[n2@2] V[n3@3] V[n4@4]]
}
