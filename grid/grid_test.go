package grid_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridhub/geo"
	"github.com/katalvlaran/gridhub/grid"
)

// cellCentres returns one point at the centre of each cell of the 3×3
// lattice over lat,lng ∈ [0,3], in row-major grid order (north-east first).
func cellCentres() []geo.Point {
	var pts []geo.Point
	for r := 0; r < grid.Size; r++ {
		for c := 0; c < grid.Size; c++ {
			pts = append(pts, geo.NewPoint(2.5-float64(r), 2.5-float64(c)))
		}
	}

	return pts
}

func TestPartition_Layout(t *testing.T) {
	g, b := grid.Partition([]geo.Point{geo.NewPoint(0, 0), geo.NewPoint(3, 3)}, grid.DefaultPadding)

	assert.False(t, b.Empty)
	assert.InDelta(t, -0.0005, b.Min.Lat, 1e-12)
	assert.InDelta(t, 3.0005, b.Max.Lng, 1e-12)

	ne := g.At(0, 0)
	assert.Equal(t, b.Max, ne.NorthEast, "row 0 / col 0 start at the maximum corner")
	sw := g.At(2, 2)
	assert.InDelta(t, b.Min.Lat, sw.SouthWest.Lat, 1e-9)
	assert.InDelta(t, b.Min.Lng, sw.SouthWest.Lng, 1e-9)

	for i := range g {
		r := g[i]
		assert.Less(t, r.SouthWest.Lat, r.NorthEast.Lat, "region %d", i)
		assert.Less(t, r.SouthWest.Lng, r.NorthEast.Lng, "region %d", i)
	}
	// Neighbouring regions share borders.
	assert.Equal(t, g.At(0, 1).NorthEast.Lng, g.At(0, 0).SouthWest.Lng)
	assert.Equal(t, g.At(1, 0).NorthEast.Lat, g.At(0, 0).SouthWest.Lat)
}

func TestPartition_EmptyAndDegenerate(t *testing.T) {
	g, b := grid.Partition(nil, grid.DefaultPadding)
	assert.True(t, b.Empty)
	assert.True(t, b.Degenerate())
	assert.Equal(t, grid.Grid{}, g)

	_, b = grid.Partition([]geo.Point{geo.NewPoint(1, 1)}, 0)
	assert.True(t, b.Degenerate(), "single point without padding")

	_, b = grid.Partition([]geo.Point{geo.NewPoint(1, 1)}, grid.DefaultPadding)
	assert.False(t, b.Degenerate())
}

func TestBucket_GridSymmetry(t *testing.T) {
	pts := cellCentres()
	g, _ := grid.Partition(pts, grid.DefaultPadding)

	res, err := grid.Bucket(&g, pts, grid.BoundaryDrop)
	require.NoError(t, err)
	assert.Empty(t, res.Dropped)
	for i := range g {
		require.Len(t, g[i].Points, 1, "region %d", i)
		assert.Equal(t, pts[i], g[i].Points[0], "region %d", i)
	}
	assert.Equal(t, geo.NewPoint(1.5, 1.5), g[grid.Center].Points[0])
}

func TestRegion_Antimeridian(t *testing.T) {
	r := grid.Region{SouthWest: geo.NewPoint(-10, 170), NorthEast: geo.NewPoint(10, -170)}

	assert.True(t, r.Contains(geo.NewPoint(0, 175)))
	assert.True(t, r.Contains(geo.NewPoint(0, -175)))
	assert.True(t, r.Contains(geo.NewPoint(0, 180)))
	assert.False(t, r.Contains(geo.NewPoint(0, 0)))
	assert.False(t, r.Contains(geo.NewPoint(0, -170)), "open border")
	assert.False(t, r.Contains(geo.NewPoint(0, 170)), "open border")

	assert.True(t, r.ContainsClosed(geo.NewPoint(0, -170)))
	assert.False(t, r.ContainsClosed(geo.NewPoint(0, 0)))
}

func TestRegion_Contains(t *testing.T) {
	r := grid.Region{SouthWest: geo.NewPoint(0, 0), NorthEast: geo.NewPoint(1, 1)}
	assert.True(t, r.Contains(geo.NewPoint(0.5, 0.5)))
	assert.False(t, r.Contains(geo.NewPoint(0, 0.5)), "on southern border")
	assert.False(t, r.Contains(geo.NewPoint(0.5, 1)), "on eastern border")
	assert.False(t, r.Contains(geo.NewPoint(2, 0.5)))

	inverted := grid.Region{SouthWest: geo.NewPoint(1, 0), NorthEast: geo.NewPoint(0, 1)}
	assert.False(t, inverted.Contains(geo.NewPoint(0.5, 0.5)), "inverted latitude holds nothing")

	flat := grid.Region{SouthWest: geo.NewPoint(0, 1), NorthEast: geo.NewPoint(1, 1)}
	assert.False(t, flat.Contains(geo.NewPoint(0.5, 1)), "zero longitude extent holds nothing")
}

func TestBucket_PartitionProperty(t *testing.T) {
	var pts []geo.Point
	for i := 0; i < 40; i++ {
		pts = append(pts, geo.NewPoint(float64(i%7)*0.37, float64(i%11)*0.21))
	}
	g, _ := grid.Partition(pts, grid.DefaultPadding)
	res, err := grid.Bucket(&g, pts, grid.BoundaryDrop)
	require.NoError(t, err)

	seen := make(map[int]int)
	for i := range g {
		for _, p := range g[i].Points {
			idx := -1
			for j, q := range pts {
				if p == q {
					idx = j
					break
				}
			}
			require.GreaterOrEqual(t, idx, 0, "owned point must come from the input")
			seen[idx]++
		}
	}
	assert.Equal(t, len(pts), g.Owned()+len(res.Dropped))
	for idx, n := range seen {
		assert.Equal(t, 1, n, "point %d owned once", idx)
	}
}

func TestBucket_BoundaryPolicies(t *testing.T) {
	base := cellCentres()
	g, _ := grid.Partition(base, grid.DefaultPadding)
	border := geo.NewPoint(g.At(0, 0).SouthWest.Lat, g.At(0, 0).Midpoint().Lng)
	outside := geo.NewPoint(-10, 1.5)
	pts := append(append([]geo.Point{}, base...), border, outside)

	t.Run("drop", func(t *testing.T) {
		res, err := grid.Bucket(&g, pts, grid.BoundaryDrop)
		require.NoError(t, err)
		assert.Equal(t, []geo.Point{border, outside}, res.Dropped)
		assert.Equal(t, len(base), g.Owned())
	})

	t.Run("reassign", func(t *testing.T) {
		res, err := grid.Bucket(&g, pts, grid.BoundaryReassign)
		require.NoError(t, err)
		assert.Empty(t, res.Dropped)
		assert.Equal(t, 2, res.Reassigned)
		assert.Contains(t, g.At(0, 0).Points, border, "first closed match in row-major order")
		assert.Contains(t, g.At(2, 1).Points, outside, "nearest midpoint")
		assert.Equal(t, len(pts), g.Owned())
	})

	t.Run("strict", func(t *testing.T) {
		_, err := grid.Bucket(&g, pts, grid.BoundaryStrict)
		assert.ErrorIs(t, err, grid.ErrUnbucketed)
	})
}

func TestBoundaryPolicy_Names(t *testing.T) {
	for _, p := range []grid.BoundaryPolicy{grid.BoundaryDrop, grid.BoundaryReassign, grid.BoundaryStrict} {
		got, err := grid.ParseBoundaryPolicy(p.String())
		require.NoError(t, err)
		assert.Equal(t, p, got)
	}
	_, err := grid.ParseBoundaryPolicy("nearest")
	assert.Error(t, err)
}

func TestIndex(t *testing.T) {
	assert.Equal(t, grid.Center, grid.Index(1, 1))
	r, c := grid.RowCol(7)
	assert.Equal(t, [2]int{2, 1}, [2]int{r, c})
	assert.Panics(t, func() { grid.Index(3, 0) })
}
