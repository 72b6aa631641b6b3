package prim_kruskal

import (
	"github.com/emirpasic/gods/trees/binaryheap"

	"github.com/katalvlaran/gridhub/core"
)

// Prim computes the Minimum Spanning Tree (MST) of an undirected, weighted graph
// by growing outwards from root using a binary min-heap of frontier edges.
//
// Error Conditions:
//   - ErrInvalidGraph       : if graph is nil, directed, or unweighted.
//   - ErrEmptyRoot          : if root is empty.
//   - core.ErrVertexNotFound: if root does not exist in the graph.
//   - ErrDisconnected       : if |V| == 0, or not every vertex is reachable from root.
//
// Steps:
//  1. Validate the graph and root.
//  2. Mark root visited and push its incident edges.
//  3. Pop the lightest edge; skip it when its far endpoint is already visited,
//     otherwise accept it and push the new vertex's frontier.
//  4. Fewer than |V|-1 accepted edges → ErrDisconnected.
//
// Ties between equal weights are broken by edge insertion order, so the
// result is deterministic.
//
// Complexity: O(E log E) time, O(V + E) memory.
func Prim(graph *core.Graph, root string) ([]core.Edge, float64, error) {
	if !validGraph(graph) {
		return nil, 0, ErrInvalidGraph
	}

	vertices := graph.Vertices()
	if len(vertices) == 0 {
		return nil, 0, ErrDisconnected
	}
	if root == "" {
		return nil, 0, ErrEmptyRoot
	}
	if !graph.HasVertex(root) {
		return nil, 0, core.ErrVertexNotFound
	}
	if len(vertices) == 1 {
		return []core.Edge{}, 0, nil
	}

	n := len(vertices)
	visited := make(map[string]bool, n)
	mst := make([]core.Edge, 0, n-1)
	var totalWeight float64

	// frontier items carry the vertex the edge was reached from,
	// since undirected edges may be stored in either orientation.
	pq := binaryheap.NewWith(compareFrontier)
	push := func(from string) error {
		edges, err := graph.Neighbors(from)
		if err != nil {
			return err
		}
		for _, e := range edges {
			if !visited[e.Other(from)] {
				pq.Push(frontier{edge: e, from: from})
			}
		}

		return nil
	}

	visited[root] = true
	if err := push(root); err != nil {
		return nil, 0, err
	}

	for len(mst) < n-1 {
		item, ok := pq.Pop()
		if !ok {
			break
		}
		f := item.(frontier)
		v := f.edge.Other(f.from)
		if visited[v] {
			continue
		}
		visited[v] = true
		mst = append(mst, *f.edge)
		totalWeight += f.edge.Weight

		if err := push(v); err != nil {
			return nil, 0, err
		}
	}

	if len(mst) < n-1 {
		return nil, 0, ErrDisconnected
	}

	return mst, totalWeight, nil
}

type frontier struct {
	edge *core.Edge
	from string
}

// compareFrontier orders by weight, then by edge insertion sequence.
func compareFrontier(a, b interface{}) int {
	x, y := a.(frontier).edge, b.(frontier).edge
	switch {
	case x.Weight < y.Weight:
		return -1
	case x.Weight > y.Weight:
		return 1
	}
	sx, sy := x.Seq(), y.Seq()
	switch {
	case sx < sy:
		return -1
	case sx > sy:
		return 1
	}

	return 0
}
