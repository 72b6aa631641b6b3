// Package prim_kruskal provides an implementation of Kruskal’s Minimum Spanning Tree algorithm.
// It assumes an undirected, weighted *core.Graph and produces a slice of edges forming the MST.
package prim_kruskal

import (
	"sort"

	"github.com/katalvlaran/gridhub/core"
)

// Kruskal computes the Minimum Spanning Tree (MST) of an undirected, weighted graph.
// It uses a disjoint-set (union-find) data structure with path compression and union by rank.
//
// Error Conditions:
//   - ErrInvalidGraph  : if graph is nil, or graph.Directed() == true, or graph.Weighted() == false.
//   - ErrDisconnected  : if |V| == 0 or |V| > 1 but graph is not fully connected.
//
// Steps:
//  1. Validate: graph != nil, graph.Weighted(), !graph.Directed() and !graph.HasDirectedEdges().
//  2. If len(vertices)==0 → ErrDisconnected; if 1 → trivial MST (empty, weight=0).
//  3. Build the minimum spanning forest (see SpanningForest).
//  4. If the forest has fewer than |V|-1 edges → ErrDisconnected.
//
// Complexity: O(E log E + α(V)·E) ≈ O(E log V). Memory: O(E + V).
func Kruskal(graph *core.Graph) ([]core.Edge, float64, error) {
	if !validGraph(graph) {
		return nil, 0, ErrInvalidGraph
	}

	vertices := graph.Vertices()
	// By convention an empty graph has no spanning tree.
	if len(vertices) == 0 {
		return nil, 0, ErrDisconnected
	}
	if len(vertices) == 1 {
		return []core.Edge{}, 0, nil
	}

	mst, total := forest(graph, vertices)
	if len(mst) < len(vertices)-1 {
		return nil, 0, ErrDisconnected
	}

	return mst, total, nil
}

// SpanningForest returns a minimum spanning forest: the union of one MST per
// connected component. It never fails on disconnected or empty graphs.
//
// Error Conditions:
//   - ErrInvalidGraph : if graph is nil, directed, or unweighted.
//
// Complexity: O(E log E + α(V)·E). Memory: O(E + V).
func SpanningForest(graph *core.Graph) ([]core.Edge, float64, error) {
	if !validGraph(graph) {
		return nil, 0, ErrInvalidGraph
	}
	mst, total := forest(graph, graph.Vertices())

	return mst, total, nil
}

func validGraph(graph *core.Graph) bool {
	return graph != nil && graph.Weighted() && !graph.Directed() && !graph.HasDirectedEdges()
}

// forest runs Kruskal's main loop over vertices and returns the accepted
// edges with their total weight.
func forest(graph *core.Graph, vertices []string) ([]core.Edge, float64) {
	// Collect all edges, skipping self-loops: they cannot be part of a spanning tree.
	allEdges := graph.Edges()
	edges := make([]*core.Edge, 0, len(allEdges))
	for _, e := range allEdges {
		if e.From == e.To {
			continue
		}
		edges = append(edges, e)
	}

	// Stable sort keeps insertion order among equal weights.
	sort.SliceStable(edges, func(i, j int) bool {
		return edges[i].Weight < edges[j].Weight
	})

	ds := NewDisjointSet(vertices)
	var (
		mst         []core.Edge
		totalWeight float64
		target      = len(vertices) - 1
	)
	for _, e := range edges {
		if !ds.Union(e.From, e.To) {
			continue
		}
		mst = append(mst, *e)
		totalWeight += e.Weight
		if len(mst) == target {
			break
		}
	}

	return mst, totalWeight
}
