// Package bfs provides breadth-first search over a core.Graph and the
// connectivity queries built on it.
//
// What
//
//   - BFS(g, start, opts...) returns a Result with visit Order and hop
//     Depth. Edge weights are ignored.
//   - Components(g, opts...) partitions the vertex set into connected components.
//   - Connected(g) reports whether g has at most one component.
//
// gridhub uses Components to report how many pieces the final candidate
// graph falls into after degree correction.
//
// Determinism
//
//	NeighborIDs is sorted, so visit order and component order are
//	reproducible across runs.
//
// Options
//
//	WithContext(ctx)  cancellation, checked once per dequeue
//
// Complexity: O(V + E log d) time, O(V) memory.
package bfs
