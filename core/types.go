// Package core defines the Graph and Edge types, sentinel errors, and the
// NewGraph constructor.
package core

import (
	"errors"
	"fmt"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrBadVertexCount indicates a vertex count outside 0..MaxVertices.
	ErrBadVertexCount = errors.New("core: vertex count out of range")

	// ErrVertexNotFound indicates an operation referenced a vertex outside 0..n-1.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrBadGraphInput indicates malformed textual graph input.
	ErrBadGraphInput = errors.New("core: malformed graph input")
)

// MaxVertices caps the vertex count NewGraph accepts. The adjacency slice
// is allocated up front, so the cap bounds memory before any edge is read.
const MaxVertices = 1 << 24

// Edge represents a one-way connection between two vertices.
type Edge struct {
	// From is the source vertex id.
	From int

	// To is the destination vertex id.
	To int

	// Weight is the cost of traversing the edge.
	Weight int64
}

// String renders the edge as "from→to(weight)".
func (e Edge) String() string {
	return fmt.Sprintf("%d→%d(%d)", e.From, e.To, e.Weight)
}

// Graph is a directed, weighted graph over the vertices 0..n-1.
//
// adjacency[u] holds the outgoing edges of u in insertion order.
// mu guards adjacency and edgeCount; numVertices is immutable.
type Graph struct {
	mu sync.RWMutex

	numVertices int
	edgeCount   int
	adjacency   [][]Edge
}

// NewGraph creates a Graph with n vertices and no edges.
// Returns ErrBadVertexCount if n < 0 or n > MaxVertices.
// Complexity: O(n)
func NewGraph(n int) (*Graph, error) {
	if n < 0 || n > MaxVertices {
		return nil, fmt.Errorf("%w: %d", ErrBadVertexCount, n)
	}

	return &Graph{
		numVertices: n,
		adjacency:   make([][]Edge, n),
	}, nil
}
