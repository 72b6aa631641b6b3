package geo_test

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridhub/geo"
)

func TestPoint_KeyIsValueIdentity(t *testing.T) {
	a := geo.NewPoint(32.9857, -96.7502)
	b := geo.Point{Lat: 32.9857, Lng: -96.7502}
	assert.Equal(t, a.Key(), b.Key())
	assert.Equal(t, "32.9857,-96.7502", a.Key())

	negZero := geo.NewPoint(math.Copysign(0, -1), 1)
	assert.Equal(t, geo.NewPoint(0, 1).Key(), negZero.Key(), "-0 folds into 0")

	back, ok := geo.ParseKey(a.Key())
	require.True(t, ok)
	assert.Equal(t, a, back)

	_, ok = geo.ParseKey("no-separator")
	assert.False(t, ok)
	_, ok = geo.ParseKey("x,1")
	assert.False(t, ok)
}

func TestPoint_Valid(t *testing.T) {
	assert.True(t, geo.NewPoint(-90, 180).Valid())
	assert.False(t, geo.NewPoint(91, 0).Valid())
	assert.False(t, geo.NewPoint(0, math.NaN()).Valid())
	assert.False(t, geo.NewPoint(math.Inf(1), 0).Valid())

	assert.True(t, geo.NewPoint(91, -200).Finite(), "out of range but finite")
	assert.False(t, geo.NewPoint(0, math.Inf(-1)).Finite())
	assert.False(t, geo.NewPoint(math.NaN(), 0).Finite())
}

func TestEdge_Unordered(t *testing.T) {
	p, q := geo.NewPoint(1, 2), geo.NewPoint(3, 4)
	assert.True(t, geo.NewEdge(p, q).Equal(geo.NewEdge(q, p)))
	assert.Equal(t, geo.NewEdge(p, q).Canonical(), geo.NewEdge(q, p).Canonical())
	assert.False(t, geo.NewEdge(p, q).IsLoop())
	assert.True(t, geo.NewEdge(p, p).IsLoop())
}

func TestOptionalPoint(t *testing.T) {
	none := geo.None()
	_, ok := none.Get()
	assert.False(t, ok)
	assert.False(t, none.IsSome())
	assert.Equal(t, "None", none.String())

	p := geo.NewPoint(1, 2)
	some := geo.Some(p)
	got, ok := some.Get()
	require.True(t, ok)
	assert.Equal(t, p, got)
	assert.Equal(t, p, some.OrElse(geo.NewPoint(0, 0)))
	assert.Equal(t, geo.NewPoint(9, 9), none.OrElse(geo.NewPoint(9, 9)))

	raw, err := json.Marshal(some)
	require.NoError(t, err)
	assert.JSONEq(t, `{"lat":1,"lng":2}`, string(raw))
	raw, err = json.Marshal(none)
	require.NoError(t, err)
	assert.Equal(t, "null", string(raw))
}

func TestDistance(t *testing.T) {
	// One degree of latitude is ~111.195 km on the mean sphere.
	d := geo.Distance(geo.NewPoint(0, 0), geo.NewPoint(1, 0))
	assert.InDelta(t, 111195.0, d, 5.0)

	// Across the antimeridian the short way round is used.
	d = geo.Distance(geo.NewPoint(0, 179.5), geo.NewPoint(0, -179.5))
	assert.InDelta(t, 111195.0, d, 5.0)

	assert.Zero(t, geo.Distance(geo.NewPoint(5, 5), geo.NewPoint(5, 5)))
	assert.Equal(t, d, geo.NewEdge(geo.NewPoint(0, 179.5), geo.NewPoint(0, -179.5)).Length())
}

func TestCentroidAndNearest(t *testing.T) {
	assert.False(t, geo.Centroid(nil).IsSome())

	pts := []geo.Point{geo.NewPoint(0, 0), geo.NewPoint(2, 0), geo.NewPoint(1, 3)}
	c, ok := geo.Centroid(pts).Get()
	require.True(t, ok)
	assert.InDelta(t, 1.0, c.Lat, 1e-12)
	assert.InDelta(t, 1.0, c.Lng, 1e-12)

	assert.Equal(t, -1, geo.Nearest(nil, c))
	assert.Equal(t, 0, geo.Nearest(pts, geo.NewPoint(0.1, 0)))

	// ties keep the first index
	tie := []geo.Point{geo.NewPoint(0, 1), geo.NewPoint(0, -1)}
	assert.Equal(t, 0, geo.Nearest(tie, geo.NewPoint(0, 0)))
}
