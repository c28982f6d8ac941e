// File: methods.go
// Role: Edge insertion and read-only queries (HasVertex, Neighbors, Edges, counts).
// Determinism:
//   - Neighbors(id) returns edges in insertion order.
//   - Edges() returns edges grouped by source vertex ascending, then insertion order.
// Concurrency:
//   - AddEdge under mu write lock; every query under mu read lock.
//   - Queries return copies, so callers never alias internal slices.

package core

import "fmt"

// VertexCount returns the fixed number of vertices.
// Complexity: O(1)
func (g *Graph) VertexCount() int {
	return g.numVertices
}

// EdgeCount returns the number of edges added so far.
// Complexity: O(1)
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edgeCount
}

// HasVertex reports whether id lies in 0..n-1.
// Complexity: O(1)
func (g *Graph) HasVertex(id int) bool {
	return id >= 0 && id < g.numVertices
}

// AddEdge appends a directed edge from→to with the given weight to the
// outgoing list of from.
//
// Steps:
//  1. Validate both endpoints (ErrVertexNotFound, wrapped with the id).
//  2. Lock mu and append to adjacency[from].
//
// Weights are stored as given; negative weights are rejected later by the
// algorithms that cannot handle them.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to int, weight int64) error {
	// 1) Endpoint validation
	if !g.HasVertex(from) {
		return fmt.Errorf("%w: from=%d (n=%d)", ErrVertexNotFound, from, g.numVertices)
	}
	if !g.HasVertex(to) {
		return fmt.Errorf("%w: to=%d (n=%d)", ErrVertexNotFound, to, g.numVertices)
	}

	// 2) Insert under lock
	g.mu.Lock()
	defer g.mu.Unlock()

	g.adjacency[from] = append(g.adjacency[from], Edge{From: from, To: to, Weight: weight})
	g.edgeCount++

	return nil
}

// Neighbors returns a copy of the outgoing edges of id, in insertion order.
//
// Errors:
//   - ErrVertexNotFound: if id is outside 0..n-1.
//
// Complexity: O(d), where d is the out-degree of id.
func (g *Graph) Neighbors(id int) ([]Edge, error) {
	if !g.HasVertex(id) {
		return nil, fmt.Errorf("%w: %d", ErrVertexNotFound, id)
	}

	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Edge, len(g.adjacency[id]))
	copy(out, g.adjacency[id])

	return out, nil
}

// Edges returns every edge of the graph, grouped by source vertex ascending
// and in insertion order within each source.
// Complexity: O(V + E)
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Edge, 0, g.edgeCount)
	for _, list := range g.adjacency {
		out = append(out, list...)
	}

	return out
}
