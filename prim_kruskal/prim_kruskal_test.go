package prim_kruskal_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridhub/core"
	"github.com/katalvlaran/gridhub/prim_kruskal"
)

// buildTriangle: A-B(1), B-C(2), A-C(3). MST = {A-B, B-C}, weight 3.
func buildTriangle() *core.Graph {
	g := core.NewGraph(core.WithWeighted())
	_, _ = g.AddEdge("A", "B", 1)
	_, _ = g.AddEdge("B", "C", 2)
	_, _ = g.AddEdge("A", "C", 3)

	return g
}

// buildMediumGraph chains V0..V(n-1) and sprinkles extra random edges.
// Seeded for reproducibility.
func buildMediumGraph(n, extra int) *core.Graph {
	g := core.NewGraph(core.WithWeighted())
	r := rand.New(rand.NewSource(42))
	for i := 1; i < n; i++ {
		_, _ = g.AddEdge(fmt.Sprintf("V%d", i-1), fmt.Sprintf("V%d", i), 1+r.Float64()*9)
	}
	for added := 0; added < extra; {
		u, v := r.Intn(n), r.Intn(n)
		if u == v {
			continue
		}
		if _, err := g.AddEdge(fmt.Sprintf("V%d", u), fmt.Sprintf("V%d", v), 1+r.Float64()*99); err == nil {
			added++
		}
	}

	return g
}

func TestKruskal_Triangle(t *testing.T) {
	edges, total, err := prim_kruskal.Kruskal(buildTriangle())
	require.NoError(t, err)
	assert.InDelta(t, 3.0, total, 1e-12)
	require.Len(t, edges, 2)
	assert.Equal(t, "A", edges[0].From)
	assert.Equal(t, "B", edges[0].To)
}

func TestPrim_TriangleFromEveryRoot(t *testing.T) {
	for _, root := range []string{"A", "B", "C"} {
		edges, total, err := prim_kruskal.Prim(buildTriangle(), root)
		require.NoError(t, err, root)
		assert.Len(t, edges, 2)
		assert.InDelta(t, 3.0, total, 1e-12, root)
	}
}

// TestPrim_ReverseOrientedEdges guards against following e.To blindly:
// every edge here is stored pointing at the root.
func TestPrim_ReverseOrientedEdges(t *testing.T) {
	g := core.NewGraph(core.WithWeighted())
	_, _ = g.AddEdge("B", "A", 1)
	_, _ = g.AddEdge("C", "B", 1)
	_, _ = g.AddEdge("D", "C", 1)

	edges, total, err := prim_kruskal.Prim(g, "A")
	require.NoError(t, err)
	assert.Len(t, edges, 3)
	assert.InDelta(t, 3.0, total, 1e-12)
}

func TestPrimKruskal_AgreeOnWeight(t *testing.T) {
	g := buildMediumGraph(60, 200)

	_, kw, err := prim_kruskal.Kruskal(g)
	require.NoError(t, err)
	_, pw, err := prim_kruskal.Prim(g, "V0")
	require.NoError(t, err)
	assert.InDelta(t, kw, pw, 1e-9)

	for _, m := range []string{prim_kruskal.MethodPrim, prim_kruskal.MethodKruskal} {
		edges, cw, err := prim_kruskal.Compute(g, prim_kruskal.MSTOptions{Method: m})
		require.NoError(t, err, m)
		assert.InDelta(t, kw, cw, 1e-9, m)
		assert.Len(t, edges, g.VertexCount()-1, m)
	}
}

func TestMST_Errors(t *testing.T) {
	_, _, err := prim_kruskal.Kruskal(nil)
	assert.ErrorIs(t, err, prim_kruskal.ErrInvalidGraph)

	_, _, err = prim_kruskal.Kruskal(core.NewGraph())
	assert.ErrorIs(t, err, prim_kruskal.ErrInvalidGraph, "unweighted")

	_, _, err = prim_kruskal.Kruskal(core.NewGraph(core.WithWeighted(), core.WithDirected(true)))
	assert.ErrorIs(t, err, prim_kruskal.ErrInvalidGraph, "directed")

	_, _, err = prim_kruskal.Kruskal(core.NewGraph(core.WithWeighted()))
	assert.ErrorIs(t, err, prim_kruskal.ErrDisconnected, "empty")

	_, _, err = prim_kruskal.Prim(buildTriangle(), "")
	assert.ErrorIs(t, err, prim_kruskal.ErrEmptyRoot)

	_, _, err = prim_kruskal.Prim(buildTriangle(), "Z")
	assert.ErrorIs(t, err, core.ErrVertexNotFound)

	_, _, err = prim_kruskal.Compute(buildTriangle(), prim_kruskal.MSTOptions{Method: "boruvka"})
	assert.ErrorIs(t, err, prim_kruskal.ErrInvalidGraph)
}

func TestMST_Disconnected(t *testing.T) {
	g := buildTriangle()
	_, _ = g.AddEdge("X", "Y", 7)

	_, _, err := prim_kruskal.Kruskal(g)
	assert.ErrorIs(t, err, prim_kruskal.ErrDisconnected)
	_, _, err = prim_kruskal.Prim(g, "A")
	assert.ErrorIs(t, err, prim_kruskal.ErrDisconnected)

	forest, total, err := prim_kruskal.SpanningForest(g)
	require.NoError(t, err)
	assert.Len(t, forest, 3, "two trees: 2 + 1 edges")
	assert.InDelta(t, 10.0, total, 1e-12)
}

func TestSpanningForest_EmptyAndSingleton(t *testing.T) {
	g := core.NewGraph(core.WithWeighted())
	forest, total, err := prim_kruskal.SpanningForest(g)
	require.NoError(t, err)
	assert.Empty(t, forest)
	assert.Zero(t, total)

	require.NoError(t, g.AddVertex("solo"))
	edges, _, err := prim_kruskal.Kruskal(g)
	require.NoError(t, err)
	assert.Empty(t, edges)
}

func TestDisjointSet(t *testing.T) {
	ds := prim_kruskal.NewDisjointSet([]string{"a", "b", "c"})
	assert.Equal(t, 3, ds.Sets())
	assert.True(t, ds.Union("a", "b"))
	assert.False(t, ds.Union("b", "a"))
	assert.True(t, ds.Connected("a", "b"))
	assert.False(t, ds.Connected("a", "c"))
	assert.True(t, ds.Union("c", "d"), "unknown ids join lazily")
	assert.Equal(t, 2, ds.Sets())
}
