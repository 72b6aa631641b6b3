// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Thin, deterministic public facade exposing read-only getters.
// Policy:
//   - No algorithms or hidden state here.
//   - Concurrency model and invariants are defined in types.go/doc.go.

package core

// GraphStats is a read-only snapshot of configuration flags and catalog sizes.
type GraphStats struct {
	DirectedDefault bool
	Weighted        bool
	AllowsMulti     bool
	AllowsLoops     bool

	VertexCount int
	EdgeCount   int

	// MaxDegree is the largest undirected degree observed over all vertices.
	MaxDegree int
	// Isolated counts vertices with no incident edge.
	Isolated int
}

// Weighted reports the construction-time "weighted" capability flag.
// If false, AddEdge rejects non-zero weights with ErrBadWeight.
// Complexity: O(1).
func (g *Graph) Weighted() bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return g.weighted
}

// Directed reports the graph-wide default directedness applied to newly created edges.
// Complexity: O(1).
func (g *Graph) Directed() bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return g.directed
}

// Multigraph reports whether parallel edges between the same endpoints are permitted by policy.
// Complexity: O(1).
func (g *Graph) Multigraph() bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return g.allowMulti
}

// Stats produces a deterministic, read-only snapshot of configuration flags,
// catalog sizes and the degree profile.
//
// Implementation:
//   - Stage 1: Acquire muVert.RLock, snapshot flags and vertex count.
//   - Stage 2: Acquire muEdgeAdj.RLock, count edges and accumulate per-vertex incidence.
//
// Behavior highlights:
//   - Undirected self-loops count twice toward their vertex (classic convention, see Degree).
//
// Complexity:
//   - Time O(V+E), Space O(V).
func (g *Graph) Stats() *GraphStats {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	stats := GraphStats{
		DirectedDefault: g.directed,
		Weighted:        g.weighted,
		AllowsMulti:     g.allowMulti,
		AllowsLoops:     g.allowLoops,
		VertexCount:     len(g.vertices),
	}

	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	stats.EdgeCount = len(g.edges)

	deg := make(map[string]int, len(g.vertices))
	var e *Edge
	for _, e = range g.edges {
		deg[e.From]++
		deg[e.To]++ // a loop lands on the same vertex twice
	}
	var id string
	for id = range g.vertices {
		d := deg[id]
		if d == 0 {
			stats.Isolated++
		}
		if d > stats.MaxDegree {
			stats.MaxDegree = d
		}
	}

	return &stats
}
