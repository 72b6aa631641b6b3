package heuristic_test

import (
	"context"
	"math"
	"math/rand"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/gridhub/degree"
	"github.com/katalvlaran/gridhub/geo"
	"github.com/katalvlaran/gridhub/grid"
	"github.com/katalvlaran/gridhub/heuristic"
	"github.com/katalvlaran/gridhub/observability"
	"github.com/katalvlaran/gridhub/pointgraph"
)

// cellCentres places one point in the middle of each cell of the 3×3
// lattice over [0,3]², optionally skipping the centre cell.
func cellCentres(withCentre bool) []geo.Point {
	var pts []geo.Point
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			if r == 1 && c == 1 && !withCentre {
				continue
			}
			pts = append(pts, geo.NewPoint(2.5-float64(r), 2.5-float64(c)))
		}
	}

	return pts
}

// cloud returns n pseudo-random points around Dallas.
func cloud(n int, seed int64) []geo.Point {
	r := rand.New(rand.NewSource(seed))
	pts := make([]geo.Point, n)
	for i := range pts {
		pts[i] = geo.NewPoint(32.7+r.Float64()*0.5, -97.0+r.Float64()*0.6)
	}

	return pts
}

func TestSolve_DegreeBoundAndCoverage(t *testing.T) {
	pts := cloud(300, 1)
	out, rep, err := heuristic.New().Solve(context.Background(), pts)
	require.NoError(t, err)

	assert.LessOrEqual(t, out.MaxDegree(), degree.DefaultMaxDegree)
	assert.Equal(t, len(pts), out.Len())
	for _, p := range pts {
		assert.True(t, out.Has(p))
	}
	assert.Equal(t, len(pts), rep.Points)
	assert.Equal(t, out.EdgeCount(), rep.Edges)
	assert.NotEmpty(t, rep.RunID)
	assert.Equal(t, len(pts)-len(rep.Dropped), sum(rep.SegmentSizes[:]))
}

// TestSolve_HubKeepsSpokes: spokes are the only edges between segments, so
// the hub must spend its degree on them rather than on its own neighbours.
func TestSolve_HubKeepsSpokes(t *testing.T) {
	pts := cloud(300, 1)
	out, rep, err := heuristic.New().Solve(context.Background(), pts)
	require.NoError(t, err)
	require.Equal(t, heuristic.TopologyStar, rep.Topology)
	assert.LessOrEqual(t, rep.Components, 7)

	g, _ := grid.Partition(pts, grid.DefaultPadding)
	_, err = grid.Bucket(&g, pts, grid.BoundaryDrop)
	require.NoError(t, err)
	centre := make(map[geo.Point]bool, len(g[grid.Center].Points))
	for _, p := range g[grid.Center].Points {
		centre[p] = true
	}

	hub, ok := rep.Hub.Get()
	require.True(t, ok)
	spokes := 0
	for _, e := range out.Edges() {
		switch {
		case e.A == hub && !centre[e.B], e.B == hub && !centre[e.A]:
			spokes++
		}
	}
	assert.GreaterOrEqual(t, spokes, 1)
}

func TestSolve_StarTopology(t *testing.T) {
	pts := cellCentres(true)
	out, rep, err := heuristic.New().Solve(context.Background(), pts)
	require.NoError(t, err)

	assert.Equal(t, heuristic.TopologyStar, rep.Topology)
	hub, ok := rep.Hub.Get()
	require.True(t, ok)
	assert.Equal(t, geo.NewPoint(1.5, 1.5), hub)
	assert.Equal(t, 8, rep.HubEdges)
	assert.Zero(t, rep.LocalEdges, "one point per segment")
	assert.Empty(t, rep.Dropped)

	// The hub has 8 spokes; correction trims it to 3.
	d, err := out.Degree(hub)
	require.NoError(t, err)
	assert.Equal(t, 3, d)
}

func TestSolve_EmptyCentreFallsBackToMesh(t *testing.T) {
	pts := cellCentres(false)
	_, rep, err := heuristic.New().Solve(context.Background(), pts)
	require.NoError(t, err)

	assert.Equal(t, heuristic.TopologyMesh, rep.Topology)
	assert.False(t, rep.Hub.IsSome())
	assert.Zero(t, rep.SegmentSizes[grid.Center])
	assert.Equal(t, 8*7/2, rep.HubEdges, "full mesh over eight centers")
}

func TestConnect_MeshCoversAllCenters(t *testing.T) {
	pts := cellCentres(false)
	out := pointgraph.New(pts)

	var segs heuristic.Segments
	for i, p := range pts {
		idx := i
		if i >= grid.Center {
			idx++
		}
		segs[idx] = pointgraph.New([]geo.Point{p})
	}
	segs[grid.Center] = pointgraph.New(nil)

	conn, err := heuristic.Connect(&segs, out)
	require.NoError(t, err)
	assert.Equal(t, heuristic.TopologyMesh, conn.Topology)
	assert.Equal(t, pts, conn.Centers)
	for i := range pts {
		for j := i + 1; j < len(pts); j++ {
			assert.True(t, out.Core().HasEdge(pts[i].Key(), pts[j].Key()))
		}
	}
}

func TestConnect_NoCenters(t *testing.T) {
	var segs heuristic.Segments
	conn, err := heuristic.Connect(&segs, pointgraph.New(nil))
	require.NoError(t, err)
	assert.Equal(t, heuristic.TopologyNone, conn.Topology)
	assert.Zero(t, conn.Edges)
}

func TestSolve_Deterministic(t *testing.T) {
	pts := cloud(150, 9)
	a, ra, err := heuristic.New().Solve(context.Background(), pts)
	require.NoError(t, err)
	b, rb, err := heuristic.New().Solve(context.Background(), pts)
	require.NoError(t, err)

	assert.Equal(t, ra.Topology, rb.Topology)
	assert.Equal(t, ra.Hub, rb.Hub)
	assert.Equal(t, a.Edges(), b.Edges())
	assert.NotEqual(t, ra.RunID, rb.RunID)
}

func TestSolve_ParallelMatchesSerial(t *testing.T) {
	pts := cloud(200, 4)
	serial, _, err := heuristic.New().Solve(context.Background(), pts)
	require.NoError(t, err)
	parallel, _, err := heuristic.New(heuristic.WithParallelSegments(true)).Solve(context.Background(), pts)
	require.NoError(t, err)

	assert.Equal(t, serial.Edges(), parallel.Edges())
}

func TestSolve_EmptyInput(t *testing.T) {
	out, err := heuristic.Solve(nil)
	require.NoError(t, err)
	assert.Zero(t, out.Len())

	_, rep, err := heuristic.New().Solve(context.Background(), nil)
	require.NoError(t, err)
	assert.True(t, rep.Degenerate)
	assert.True(t, rep.Bounds.Empty)
	assert.Equal(t, heuristic.TopologyNone, rep.Topology)
}

func TestSolve_DuplicatesAndSinglePoint(t *testing.T) {
	p := geo.NewPoint(10, 20)
	out, rep, err := heuristic.New().Solve(context.Background(), []geo.Point{p, p, p})
	require.NoError(t, err)
	assert.Equal(t, 1, out.Len())
	assert.Equal(t, 2, rep.Duplicates)
	assert.Equal(t, heuristic.TopologyStar, rep.Topology)
	assert.Zero(t, out.EdgeCount())
}

func TestSolve_BoundaryPolicies(t *testing.T) {
	// With zero padding the extreme points sit exactly on the outer border.
	pts := []geo.Point{geo.NewPoint(0, 0), geo.NewPoint(3, 3), geo.NewPoint(1.5, 1.5)}

	_, rep, err := heuristic.New(heuristic.WithPadding(0)).Solve(context.Background(), pts)
	require.NoError(t, err)
	assert.Len(t, rep.Dropped, 2)

	out, rep, err := heuristic.New(heuristic.WithPadding(0), heuristic.WithBoundaryPolicy(grid.BoundaryReassign)).
		Solve(context.Background(), pts)
	require.NoError(t, err)
	assert.Empty(t, rep.Dropped)
	assert.Equal(t, 2, rep.Reassigned)
	assert.Equal(t, 1, rep.Components)
	assert.Equal(t, 2, out.EdgeCount())

	_, _, err = heuristic.New(heuristic.WithPadding(0), heuristic.WithBoundaryPolicy(grid.BoundaryStrict)).
		Solve(context.Background(), pts)
	assert.ErrorIs(t, err, grid.ErrUnbucketed)
}

func TestSolve_Errors(t *testing.T) {
	_, _, err := heuristic.New().Solve(context.Background(), []geo.Point{geo.NewPoint(math.NaN(), 0)})
	assert.ErrorIs(t, err, heuristic.ErrInvalidPoint)
	_, _, err = heuristic.New().Solve(context.Background(), []geo.Point{{}, geo.NewPoint(0, math.Inf(1))})
	assert.ErrorIs(t, err, heuristic.ErrInvalidPoint)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, _, err = heuristic.New().Solve(ctx, cloud(10, 1))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSolve_OutOfRangeReported(t *testing.T) {
	far := geo.NewPoint(91, 0)
	pts := []geo.Point{far, geo.NewPoint(0, 0), geo.NewPoint(45, 10)}
	obs, logs := observer.New(zap.WarnLevel)

	out, rep, err := heuristic.New(heuristic.WithLogger(zap.New(obs))).Solve(context.Background(), pts)
	require.NoError(t, err)
	assert.Equal(t, []geo.Point{far}, rep.OutOfRange)
	assert.True(t, out.Has(far))
	assert.Equal(t, 1, logs.FilterMessage("points outside coordinate range").Len())

	_, rep, err = heuristic.New().Solve(context.Background(), cloud(20, 2))
	require.NoError(t, err)
	assert.Empty(t, rep.OutOfRange)
}

func TestSolve_CustomCorrectorAndBound(t *testing.T) {
	pts := cloud(120, 5)
	out, rep, err := heuristic.New(
		heuristic.WithCorrector(degree.ShortestFirst{}),
		heuristic.WithMaxDegree(2),
	).Solve(context.Background(), pts)
	require.NoError(t, err)
	assert.LessOrEqual(t, out.MaxDegree(), 2)
	assert.Equal(t, rep.Correction.MaxDegree, out.MaxDegree())
}

func TestSolve_LogsAndMetrics(t *testing.T) {
	obs, logs := observer.New(zap.DebugLevel)
	reg := prometheus.NewRegistry()
	metrics, err := observability.NewCollector(reg)
	require.NoError(t, err)

	_, rep, err := heuristic.New(heuristic.WithLogger(zap.New(obs)), heuristic.WithMetrics(metrics)).
		Solve(context.Background(), cellCentres(false))
	require.NoError(t, err)

	assert.Equal(t, 1, logs.FilterMessage("solve finished").Len())
	entry := logs.FilterMessage("solve finished").All()[0]
	assert.Equal(t, rep.RunID, entry.ContextMap()["run_id"])
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.Runs.WithLabelValues("mesh")))
	assert.Equal(t, float64(rep.Correction.Removed), testutil.ToFloat64(metrics.EdgesRemoved))
}

func TestOptions_Panic(t *testing.T) {
	assert.Panics(t, func() { heuristic.WithLogger(nil) })
	assert.Panics(t, func() { heuristic.WithMetrics(nil) })
	assert.Panics(t, func() { heuristic.WithTracer(nil) })
	assert.Panics(t, func() { heuristic.WithCorrector(nil) })
	assert.Panics(t, func() { heuristic.WithMaxDegree(0) })
	assert.Panics(t, func() { heuristic.WithPadding(-1) })
}

func sum(xs []int) int {
	n := 0
	for _, x := range xs {
		n += x
	}

	return n
}
