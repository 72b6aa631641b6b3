package degree

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/gridhub/bfs"
	"github.com/katalvlaran/gridhub/core"
	"github.com/katalvlaran/gridhub/prim_kruskal"
)

// SpanningFirst keeps connectivity-carrying edges before short ones.
//
// Pass 1 offers the edges of a minimum spanning forest, ranked by spread:
// the number of vertices on the smaller side when the edge is cut. Edges
// holding the most of the forest together go first, then the lighter, then
// the older. A long bridge to a whole cluster therefore wins a saturated
// endpoint over the short edges to single leaves.
// Pass 2 offers the remaining edges whose endpoints lie in different
// components of what has been kept so far. Pass 3 offers everything else.
// Each pass accepts an edge only when both endpoints are below the bound.
type SpanningFirst struct {
	method string
}

// SpanningOption configures SpanningFirst.
type SpanningOption func(*SpanningFirst)

// WithMSTMethod selects prim_kruskal.MethodKruskal (default) or
// prim_kruskal.MethodPrim. The method applies when the graph is connected;
// otherwise prim_kruskal.SpanningForest computes one tree per component.
// Panics on an unknown method.
func WithMSTMethod(method string) SpanningOption {
	if method != prim_kruskal.MethodKruskal && method != prim_kruskal.MethodPrim {
		panic(fmt.Sprintf("degree: WithMSTMethod(%q): unknown method", method))
	}

	return func(s *SpanningFirst) { s.method = method }
}

// NewSpanningFirst returns a SpanningFirst corrector.
func NewSpanningFirst(opts ...SpanningOption) *SpanningFirst {
	s := &SpanningFirst{method: prim_kruskal.MethodKruskal}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Correct implements Corrector.
// Complexity: O(E log E + V).
func (s *SpanningFirst) Correct(g *core.Graph, maxDegree int) (Result, error) {
	if err := validate(g, maxDegree); err != nil {
		return Result{}, err
	}

	forest, err := s.forest(g)
	if err != nil {
		return Result{}, fmt.Errorf("degree: spanning forest: %w", err)
	}

	vertices := g.Vertices()
	b := newBudget(maxDegree, len(vertices))
	ds := prim_kruskal.NewDisjointSet(vertices)
	inForest := make(map[string]struct{}, len(forest))

	// Pass 1.
	q := newRankedQueue(forest, spread(forest))
	for item, ok := q.Pop(); ok; item, ok = q.Pop() {
		e := item.(*core.Edge)
		inForest[e.ID] = struct{}{}
		if b.fits(e) {
			b.keep(e)
			ds.Union(e.From, e.To)
		}
	}

	rest := make([]*core.Edge, 0, g.EdgeCount())
	for _, e := range g.Edges() {
		if _, ok := inForest[e.ID]; !ok {
			rest = append(rest, e)
		}
	}

	// Pass 2.
	q = newQueue(rest)
	for item, ok := q.Pop(); ok; item, ok = q.Pop() {
		e := item.(*core.Edge)
		if !ds.Connected(e.From, e.To) && b.fits(e) {
			b.keep(e)
			ds.Union(e.From, e.To)
		}
	}

	// Pass 3.
	q = newQueue(rest)
	for item, ok := q.Pop(); ok; item, ok = q.Pop() {
		if e := item.(*core.Edge); b.fits(e) {
			b.keep(e)
		}
	}

	return b.apply(g), nil
}

// forest returns the spanning forest edges as pointers into g.
// Unweighted graphs have no meaningful MST, so pass 1 is skipped for them.
func (s *SpanningFirst) forest(g *core.Graph) ([]*core.Edge, error) {
	if !g.Weighted() || g.VertexCount() == 0 {
		return nil, nil
	}

	connected, err := bfs.Connected(g)
	if err != nil {
		return nil, err
	}
	var edges []core.Edge
	if connected {
		edges, _, err = prim_kruskal.Compute(g, prim_kruskal.MSTOptions{Method: s.method})
	} else {
		edges, _, err = prim_kruskal.SpanningForest(g)
	}
	if err != nil {
		return nil, err
	}

	out := make([]*core.Edge, 0, len(edges))
	for i := range edges {
		e, err := g.GetEdge(edges[i].ID)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}

	return out, nil
}

// spread maps each forest edge ID to the size of the smaller side left when
// that edge is cut. Trees are rooted at their smallest vertex ID.
// Complexity: O(V log V).
func spread(forest []*core.Edge) map[string]int {
	adj := make(map[string][]*core.Edge)
	for _, e := range forest {
		adj[e.From] = append(adj[e.From], e)
		adj[e.To] = append(adj[e.To], e)
	}
	roots := make([]string, 0, len(adj))
	for v := range adj {
		roots = append(roots, v)
	}
	sort.Strings(roots)

	out := make(map[string]int, len(forest))
	seen := make(map[string]bool, len(adj))
	for _, root := range roots {
		if seen[root] {
			continue
		}
		seen[root] = true
		order := []string{root}
		up := make(map[string]*core.Edge)
		for i := 0; i < len(order); i++ {
			v := order[i]
			for _, e := range adj[v] {
				if w := e.Other(v); !seen[w] {
					seen[w] = true
					up[w] = e
					order = append(order, w)
				}
			}
		}

		// children before parents
		size := make(map[string]int, len(order))
		for i := len(order) - 1; i > 0; i-- {
			v := order[i]
			size[v]++
			e := up[v]
			size[e.Other(v)] += size[v]
			out[e.ID] = min(size[v], len(order)-size[v])
		}
	}

	return out
}
