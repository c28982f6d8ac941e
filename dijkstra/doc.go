// Package dijkstra provides Dijkstra's single-source shortest-path algorithm
// on a core.Graph with non-negative edge weights, plus path extraction.
//
// Overview:
//
//   - Dijkstra computes the minimum-cost path from a single source vertex to all
//     reachable vertices in O((V + E) log V) time, where V = |vertices| and E = |edges|.
//   - It relies on a min-heap (priority queue) to always expand the next-closest vertex.
//   - Results are two vectors indexed by vertex id: distances and predecessors.
//
// Key features:
//
//   - Distances use the Inf sentinel for unreachable vertices.
//   - Predecessors use NoPredecessor for the source and unreachable vertices.
//   - ExtractShortestPath walks predecessors back from a target and never returns a
//     partial path: unreachable targets yield nil.
//   - MaxDistance: stops exploration beyond a specified distance.
//   - InfEdgeThreshold: treats any edge with weight ≥ threshold as impassable.
//
// Performance and complexity:
//
//   - Time:  O((V + E) log V)
//   - Each vertex is extracted at most once from the priority queue (V extracts total).
//   - Each edge relaxation may push one new entry (up to E pushes).
//   - Space: O(V + E)
//   - O(V) for the distance, predecessor and visited vectors.
//   - O(E) worst-case entries in the heap under “lazy decrease-key” strategy.
//
// API reference:
//
//	func Dijkstra(g *core.Graph, source int, opts ...Option) (dist []int64, prev []int, err error)
//	func ExtractShortestPath(dist []int64, prev []int, target int) []int
//	func PathCost(g *core.Graph, path []int) (int64, error)
//
// Thread safety:
//
//   - The graph is only read. Concurrent Dijkstra calls on one *core.Graph are safe;
//     each call allocates its own output vectors.
//
// Example:
//
//	dist, prev, err := dijkstra.Dijkstra(g, 0)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	path := dijkstra.ExtractShortestPath(dist, prev, 4)
package dijkstra
