// Package core provides a thread-safe in-memory Graph implementation with a
// minimal, composable API surface. It is the storage layer under every
// candidate graph gridhub builds (segment graphs and the merged output).
//
// The Graph G = (V,E) supports:
//
//   - Directed vs. undirected edges (WithDirected)
//   - Weighted vs. unweighted edges (WithWeighted); weights are float64
//   - Parallel edges / multi-graphs (WithMultiEdges)
//   - Self-loops (WithLoops)
//   - Constant-time edge operations via nested maps:
//     adjacencyList[from][to][edgeID] = struct{}{}
//   - Collision-free atomic Edge.ID generation ("e1", "e2", …)
//   - Separate sync.RWMutex for vertices (muVert) and edges+adjacency (muEdgeAdj)
//
// Core Methods:
//
//	// Vertex lifecycle
//	AddVertex(id string) error         // O(1), idempotent
//	HasVertex(id string) bool          // O(1)
//
//	// Edge lifecycle
//	AddEdge(from, to string, weight float64) (edgeID string, err error) // O(1)
//	HasEdge(from, to string) bool      // O(1)
//	GetEdge(edgeID string) (*Edge, error)
//	FilterEdges(pred func(*Edge) bool) int // bulk removal, used by degree correction
//
//	// Query
//	Neighbors(id string) ([]*Edge, error)    // O(d·log d)
//	NeighborIDs(id string) ([]string, error) // O(d·log d), unique, sorted
//	Vertices() []string                       // O(V·log V)
//	Edges() []*Edge                           // O(E·log E), insertion order
//
//	// Counts & degrees
//	Degree(id string) (in, out, undirected int, err error)
//	VertexCount() int
//	EdgeCount() int
//	Stats() *GraphStats                       // O(V+E), includes MaxDegree
//
// Errors:
//
//	ErrEmptyVertexID       – zero-length vertex ID
//	ErrVertexNotFound      – missing vertex
//	ErrEdgeNotFound        – missing edge
//	ErrBadWeight           – non-zero weight on unweighted graph, or NaN/Inf
//	ErrLoopNotAllowed      – self-loop when loops disabled
//	ErrMultiEdgeNotAllowed – parallel edge when multi-edges disabled
package core
