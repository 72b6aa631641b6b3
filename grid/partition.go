package grid

import (
	"math"

	"github.com/katalvlaran/gridhub/geo"
)

// Bounds is the padded bounding box of a point set.
type Bounds struct {
	Min   geo.Point `json:"min"`
	Max   geo.Point `json:"max"`
	Empty bool      `json:"empty,omitempty"`
}

// Degenerate reports whether either axis has zero extent, which collapses
// all regions along that axis.
func (b Bounds) Degenerate() bool {
	return b.Empty || b.Max.Lat == b.Min.Lat || b.Max.Lng == b.Min.Lng
}

// Partition computes the padded bounds of points and the 3×3 region lattice.
//
// The bounding box is expanded by padding on every side. Lattice corner
// (r, c), r,c ∈ 0..3, is (Max.Lat − r·ΔLat, Max.Lng − c·ΔLng) where ΔLat and
// ΔLng are a third of the padded extents. Region (r, c) spans corner
// (r+1, c+1) to corner (r, c). Regions own no points yet; see Bucket.
//
// Empty input yields zero-valued regions and Bounds.Empty.
// Complexity: O(n).
func Partition(points []geo.Point, padding float64) (Grid, Bounds) {
	var g Grid
	if len(points) == 0 {
		return g, Bounds{Empty: true}
	}

	minLat, minLng := math.Inf(1), math.Inf(1)
	maxLat, maxLng := math.Inf(-1), math.Inf(-1)
	for _, p := range points {
		minLat = math.Min(minLat, p.Lat)
		maxLat = math.Max(maxLat, p.Lat)
		minLng = math.Min(minLng, p.Lng)
		maxLng = math.Max(maxLng, p.Lng)
	}
	b := Bounds{
		Min: geo.NewPoint(minLat-padding, minLng-padding),
		Max: geo.NewPoint(maxLat+padding, maxLng+padding),
	}

	dLat := (b.Max.Lat - b.Min.Lat) / Size
	dLng := (b.Max.Lng - b.Min.Lng) / Size
	corner := func(r, c int) geo.Point {
		return geo.NewPoint(b.Max.Lat-float64(r)*dLat, b.Max.Lng-float64(c)*dLng)
	}

	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			g[Index(r, c)] = Region{SouthWest: corner(r+1, c+1), NorthEast: corner(r, c)}
		}
	}

	return g, b
}
