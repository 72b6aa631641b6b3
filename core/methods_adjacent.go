// File: methods_adjacent.go
// Role: Adjacency queries (Neighbors, NeighborIDs) and the
//       private bucket maintenance helpers used by every mutating path.
// Determinism:
//   - Neighbors() sorted by edge sequence, NeighborIDs() sorted lexicographically.
// Concurrency:
//   - Queries take muVert then muEdgeAdj read locks (same order as mutators).

package core

import "sort"

// Neighbors returns the edges incident to id, following the outgoing view:
// undirected edges are always included, directed edges only when id is their source.
//
// Errors:
//   - ErrEmptyVertexID: if id == "".
//   - ErrVertexNotFound: if the vertex does not exist.
//
// Complexity: O(d log d) where d is the number of incident edges.
func (g *Graph) Neighbors(id string) ([]*Edge, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}

	// Lock order muVert -> muEdgeAdj prevents a vertex from disappearing
	// between validation and adjacency snapshotting.
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	if _, ok := g.vertices[id]; !ok {
		return nil, ErrVertexNotFound
	}

	var out []*Edge
	var eid string
	var e *Edge
	for _, edgeSet := range g.adjacencyList[id] {
		for eid = range edgeSet {
			e = g.edges[eid]
			if e.IsNil() {
				continue
			}
			if e.Directed && e.From != id {
				continue
			}
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return edgeSeq(out[i].ID) < edgeSeq(out[j].ID) })

	return out, nil
}

// NeighborIDs returns the unique, sorted IDs of vertices adjacent to id.
// A self-loop reports id itself once.
//
// Errors:
//   - ErrEmptyVertexID, ErrVertexNotFound (see Neighbors).
//
// Complexity: O(d log d).
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	edges, err := g.Neighbors(id)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{}, len(edges))
	ids := make([]string, 0, len(edges))
	var e *Edge
	var other string
	for _, e = range edges {
		other = e.Other(id)
		if _, dup := seen[other]; dup {
			continue
		}
		seen[other] = struct{}{}
		ids = append(ids, other)
	}
	sort.Strings(ids)

	return ids, nil
}

// ensureAdjacency lazily allocates the nested bucket adjacencyList[from][to].
// Must be called ONLY under muEdgeAdj write lock.
func ensureAdjacency(g *Graph, from, to string) {
	if g.adjacencyList[from] == nil {
		g.adjacencyList[from] = make(map[string]map[string]struct{})
	}
	if g.adjacencyList[from][to] == nil {
		g.adjacencyList[from][to] = make(map[string]struct{})
	}
}

// removeAdjacency removes e.ID from the adjacency buckets of its endpoints,
// mirroring for undirected non-loop edges and pruning emptied buckets.
// Must be called ONLY under muEdgeAdj write lock.
func removeAdjacency(g *Graph, e *Edge) {
	if m := g.adjacencyList[e.From][e.To]; m != nil {
		delete(m, e.ID)
		if len(m) == 0 {
			delete(g.adjacencyList[e.From], e.To)
		}
	}
	if !e.Directed && e.From != e.To {
		if m := g.adjacencyList[e.To][e.From]; m != nil {
			delete(m, e.ID)
			if len(m) == 0 {
				delete(g.adjacencyList[e.To], e.From)
			}
		}
	}
}

// cleanupAdjacency prunes empty nested adjacency buckets after bulk removals.
// Idempotent. Must be called ONLY under muEdgeAdj write lock.
// Complexity: O(V + B) where B is the number of (from,to) buckets.
func cleanupAdjacency(g *Graph) {
	for u, toMap := range g.adjacencyList {
		for v, edgeSet := range toMap {
			if len(edgeSet) == 0 {
				delete(toMap, v)
			}
		}
		if len(toMap) == 0 {
			delete(g.adjacencyList, u)
		}
	}
}
