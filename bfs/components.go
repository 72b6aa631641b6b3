package bfs

import "github.com/katalvlaran/gridhub/core"

// Components partitions the vertices of g into connected components.
// Components are ordered by their smallest vertex ID and each one lists its
// vertices in BFS order from that vertex. Directed edges are followed only
// along their orientation, so this is meant for undirected graphs.
// opts are passed to every BFS, so WithContext cancels the whole scan.
// Complexity: O(V + E log E).
func Components(g *core.Graph, opts ...Option) ([][]string, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	seen := make(map[string]bool, g.VertexCount())
	var out [][]string
	for _, id := range g.Vertices() {
		if seen[id] {
			continue
		}
		res, err := BFS(g, id, opts...)
		if err != nil {
			return nil, err
		}
		for _, v := range res.Order {
			seen[v] = true
		}
		out = append(out, res.Order)
	}

	return out, nil
}

// Connected reports whether g has at most one connected component.
func Connected(g *core.Graph) (bool, error) {
	comps, err := Components(g)
	if err != nil {
		return false, err
	}

	return len(comps) <= 1, nil
}
