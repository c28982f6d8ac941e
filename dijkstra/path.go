package dijkstra

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/wordpath/core"
)

// ErrNoEdge is returned by PathCost when two consecutive path vertices are
// not joined by an edge.
var ErrNoEdge = errors.New("dijkstra: consecutive path vertices are not connected")

// ExtractShortestPath rebuilds the vertex sequence source…target from the
// vectors returned by Dijkstra.
//
// It walks prev backwards from target until a vertex with NoPredecessor
// (the source), then reverses the walk. The result is nil when:
//   - target is outside the vectors,
//   - dist[target] == Inf (unreachable),
//   - prev contains a cycle (more than len(prev) steps).
//
// Complexity: O(path length)
func ExtractShortestPath(dist []int64, prev []int, target int) []int {
	if target < 0 || target >= len(dist) || target >= len(prev) {
		return nil
	}
	if dist[target] == Inf {
		return nil
	}

	// build reversed path
	path := make([]int, 0, 8)
	for cur := target; cur != NoPredecessor; cur = prev[cur] {
		if cur < 0 || cur >= len(prev) || len(path) > len(prev) {
			return nil
		}
		path = append(path, cur)
	}

	// reverse to get source → target
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

// PathCost sums the weights along path in g. For each hop u→v the cheapest
// parallel edge is used. An empty or single-vertex path costs 0.
//
// Errors:
//   - ErrNilGraph: g is nil.
//   - ErrNoEdge:   some hop has no edge (wrapped with the hop).
//   - core.ErrVertexNotFound: a vertex lies outside g.
func PathCost(g *core.Graph, path []int) (int64, error) {
	if g == nil {
		return 0, ErrNilGraph
	}

	var total int64
	for i := 1; i < len(path); i++ {
		u, v := path[i-1], path[i]
		edges, err := g.Neighbors(u)
		if err != nil {
			return 0, err
		}

		best := Inf
		for _, e := range edges {
			if e.To == v && e.Weight < best {
				best = e.Weight
			}
		}
		if best == Inf {
			return 0, fmt.Errorf("%w: %d→%d", ErrNoEdge, u, v)
		}
		total += best
	}

	return total, nil
}
