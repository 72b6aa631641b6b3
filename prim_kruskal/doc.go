// Package prim_kruskal computes Minimum Spanning Trees (MST) and spanning
// forests on an undirected, weighted *core.Graph.
//
// Algorithms Provided
//
//   - Kruskal(g) ([]core.Edge, float64, error)
//     Sort all edges by weight, merge components with a disjoint-set (union by
//     rank, path compression). Fails with ErrDisconnected when no spanning tree exists.
//     Time O(E log E + α(V)·E), space O(V + E).
//
//   - Prim(g, root) ([]core.Edge, float64, error)
//     Grow one tree from root with a min-heap of frontier edges.
//     Time O(E log V), space O(V + E).
//
//   - SpanningForest(g) ([]core.Edge, float64, error)
//     Kruskal without the connectivity requirement: one minimum spanning tree
//     per connected component. Degree correction uses it to find the edges that
//     keep each component connected.
//
// Determinism: graph.Edges() returns edges in insertion order and all sorts are
// stable, so equal weights break ties by insertion order.
//
// Errors:
//
//	ErrInvalidGraph - nil, directed, or unweighted graph.
//	ErrEmptyRoot    - Prim called with root == "".
//	ErrDisconnected - no spanning tree covers all vertices (Kruskal, Prim).
package prim_kruskal
