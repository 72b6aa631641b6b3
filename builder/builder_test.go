// Package builder_test contains functional tests for the Complete, Star and
// Mesh constructors: topology, counts, weights and error sentinels.
package builder_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridhub/builder"
	"github.com/katalvlaran/gridhub/core"
)

func ids(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = fmt.Sprintf("v%d", i)
	}
	return out
}

func TestComplete_Counts(t *testing.T) {
	t.Parallel()
	for _, n := range []int{0, 1, 2, 5, 9} {
		g, err := builder.BuildGraph(nil, nil, builder.Complete(ids(n)))
		require.NoError(t, err, "n=%d", n)
		assert.Equal(t, n, g.VertexCount())
		assert.Equal(t, n*(n-1)/2, g.EdgeCount(), "K_%d edge count", n)
		for i, u := range ids(n) {
			for _, v := range ids(n)[i+1:] {
				assert.True(t, g.HasEdge(u, v), "missing %s-%s", u, v)
			}
		}
	}
}

func TestComplete_DirectedMirrors(t *testing.T) {
	g, err := builder.BuildGraph([]core.GraphOption{core.WithDirected(true)}, nil, builder.Complete(ids(4)))
	require.NoError(t, err)
	assert.Equal(t, 12, g.EdgeCount())
}

func TestComplete_WeightFn(t *testing.T) {
	calls := 0
	weight := func(u, v string) float64 {
		calls++
		return float64(len(u) + len(v))
	}
	g, err := builder.BuildGraph(
		[]core.GraphOption{core.WithWeighted()},
		[]builder.BuilderOption{builder.WithWeightFn(weight)},
		builder.Complete([]string{"a", "bb", "ccc"}),
	)
	require.NoError(t, err)
	assert.Equal(t, 3, calls)
	for _, e := range g.Edges() {
		assert.Equal(t, float64(len(e.From)+len(e.To)), e.Weight)
	}
}

func TestComplete_DefaultAndUnweighted(t *testing.T) {
	g, err := builder.BuildGraph([]core.GraphOption{core.WithWeighted()}, nil, builder.Complete(ids(3)))
	require.NoError(t, err)
	for _, e := range g.Edges() {
		assert.Equal(t, builder.DefaultEdgeWeight, e.Weight)
	}

	// Unweighted graphs ignore the weight function entirely.
	g, err = builder.BuildGraph(nil, []builder.BuilderOption{builder.WithConstantWeight(7)}, builder.Complete(ids(3)))
	require.NoError(t, err)
	for _, e := range g.Edges() {
		assert.Zero(t, e.Weight)
	}
}

func TestComplete_Errors(t *testing.T) {
	_, err := builder.BuildGraph(nil, nil, builder.Complete([]string{"a", ""}))
	require.ErrorIs(t, err, builder.ErrEmptyID)

	_, err = builder.BuildGraph(nil, nil, builder.Complete([]string{"a", "a"}))
	require.ErrorIs(t, err, builder.ErrDuplicateID)

	_, err = builder.BuildGraph(nil, nil, nil)
	require.ErrorIs(t, err, builder.ErrConstructFailed)

	require.ErrorIs(t, builder.Apply(nil, nil, builder.Complete(ids(2))), builder.ErrNilGraph)
}

func TestStar(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, builder.Apply(g, nil, builder.Star("hub", []string{"a", "b", "hub", "c"})))
	assert.Equal(t, 3, g.EdgeCount(), "hub in leaves is skipped")
	for _, leaf := range []string{"a", "b", "c"} {
		assert.True(t, g.HasEdge(leaf, "hub"))
	}

	// Lone hub
	g = core.NewGraph()
	require.NoError(t, builder.Apply(g, nil, builder.Star("hub", nil)))
	assert.True(t, g.HasVertex("hub"))
	assert.Zero(t, g.EdgeCount())

	require.ErrorIs(t, builder.Apply(g, nil, builder.Star("", []string{"a"})), builder.ErrEmptyID)
}

func TestMesh_OrderedPairsDeduplicate(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, builder.Apply(g, nil, builder.Mesh(ids(4))))
	assert.Equal(t, 6, g.EdgeCount(), "reverse insertions are no-ops on simple graphs")

	strict := core.NewGraph()
	err := builder.Apply(strict, []builder.BuilderOption{builder.WithStrictPairs()}, builder.Mesh(ids(3)))
	require.ErrorIs(t, err, core.ErrMultiEdgeNotAllowed)

	multi := core.NewGraph(core.WithMultiEdges())
	require.NoError(t, builder.Apply(multi, nil, builder.Mesh(ids(3))))
	assert.Equal(t, 6, multi.EdgeCount(), "multigraph keeps both orientations")
}

func TestApply_KeepsExistingTopology(t *testing.T) {
	g := core.NewGraph()
	_, err := g.AddEdge("v0", "v1", 0)
	require.NoError(t, err)

	require.NoError(t, builder.Apply(g, nil, builder.Complete(ids(3))))
	assert.Equal(t, 3, g.EdgeCount())
}

func TestOptions_PanicOnNil(t *testing.T) {
	assert.Panics(t, func() { builder.WithWeightFn(nil) })
}
