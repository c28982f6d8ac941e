// Package bfs provides a production-grade breadth-first search over any
// Graph (explicit or implicit), returning unweighted shortest-path
// distances, parent links, and visit order.
//
// What
//
//   - Explore vertices in non-decreasing distance (edge count) from a start vertex.
//   - Returns a BFSResult containing:
//   - Order: visit sequence
//   - Depth: map from vertex → distance (edges) from start
//   - Parent: map from vertex → its predecessor in the BFS tree
//   - Found: whether the optional Target was reached
//   - Supports functional hooks at two stages:
//   - OnEnqueue (when a vertex is discovered)
//   - OnVisit   (when visiting; may abort with an error)
//   - Allows filtering of individual neighbor edges via WithFilterNeighbor.
//   - Honors MaxDepth limit (d>0) or explicit “no limit” (d==0).
//   - Stops early with WithTarget once the target is discovered.
//
// The Graph interface
//
//	type Graph interface {
//	    HasVertex(id string) bool
//	    NeighborIDs(id string) ([]string, error)
//	}
//
//	Neighbors may be computed lazily (the word ladder computes them by
//	scanning a dictionary), so BFS never asks for a vertex list up front.
//
// Determinism
//
//	BFS enqueues neighbors in the order NeighborIDs returns them. Graphs
//	that return sorted IDs get a fully reproducible visit sequence and
//	parent tree.
//
// Visited-on-enqueue
//
//	A vertex is marked visited the moment it is enqueued. Each vertex is
//	queued at most once and keeps the parent that discovered it first, so
//	the parent tree encodes exactly the paths a “queue of whole paths”
//	search would produce, in O(V) memory.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E) plus the cost of NeighborIDs
//   - Memory: O(V)       (for queue, Depth map, Parent map, visited set)
//
// Usage
//
//	result, err := bfs.BFS(g, "start",
//	    bfs.WithContext(ctx),
//	    bfs.WithTarget("goal"),
//	)
//	if err != nil {
//	    // ErrGraphNil, ErrStartVertexNotFound, ErrOptionViolation, ErrNeighbors,
//	    // hook errors or ctx.Err()
//	}
//	if result.Found {
//	    path, _ := result.PathTo("goal")
//	}
package bfs
