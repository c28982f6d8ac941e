// Package core provides the fixed-size, integer-indexed directed graph used by
// the shortest-path engine.
//
// The Graph G = (V,E) has a vertex count fixed at construction time. Vertices
// are the integers 0..n-1 and every vertex owns an ordered slice of outgoing
// edges:
//
//   - Directed only: an Edge From→To is never mirrored.
//   - Weighted: each Edge carries an int64 weight. Non-negative weights are a
//     caller contract checked by the algorithms, not by AddEdge.
//   - Parallel edges and self-loops are accepted and kept as added.
//   - Insertion order is preserved, so Neighbors and Edges are deterministic.
//
// Core Methods:
//
//	NewGraph(n int) (*Graph, error)                    // O(n)
//	AddEdge(from, to int, weight int64) error          // O(1) amortized
//	HasVertex(id int) bool                             // O(1)
//	Neighbors(id int) ([]Edge, error)                  // O(d), copy
//	Edges() []Edge                                     // O(V+E), copy
//	VertexCount() int / EdgeCount() int                // O(1)
//
//	ReadGraph(r io.Reader) (*Graph, error)             // text format, see reader.go
//	LoadGraph(path string) (*Graph, error)
//
// Concurrency:
//
//	A single sync.RWMutex guards the edge lists. Readers (algorithms) take the
//	read lock only while copying edges out, so any number of searches may
//	share one *Graph.
//
// Errors:
//
//	ErrBadVertexCount  - vertex count outside 0..MaxVertices passed to NewGraph.
//	ErrVertexNotFound  - vertex id outside 0..n-1.
//	ErrBadGraphInput   - malformed text input in ReadGraph.
package core
