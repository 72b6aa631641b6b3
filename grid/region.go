package grid

import "github.com/katalvlaran/gridhub/geo"

// Size is the number of rows and of columns.
const Size = 3

// Cells is the number of regions in a Grid.
const Cells = Size * Size

// Center is the flat index of the centre region.
const Center = 1*Size + 1

// DefaultPadding expands the bounding box on every side, in degrees.
const DefaultPadding = 0.0005

// Region is an axis-aligned cell and the points it owns.
type Region struct {
	SouthWest geo.Point
	NorthEast geo.Point
	Points    []geo.Point
}

// Contains reports whether p lies strictly inside r.
//
// When SouthWest.Lng > NorthEast.Lng the region wraps the ±180° meridian
// and holds longitudes above SouthWest.Lng or below NorthEast.Lng. Equal
// longitudes contain nothing. A latitude range that is empty or inverted
// contains nothing.
func (r Region) Contains(p geo.Point) bool {
	sw, ne := r.SouthWest, r.NorthEast
	if !(sw.Lat < ne.Lat) || !(p.Lat > sw.Lat && p.Lat < ne.Lat) {
		return false
	}

	switch {
	case sw.Lng < ne.Lng:
		return p.Lng > sw.Lng && p.Lng < ne.Lng
	case sw.Lng > ne.Lng:
		return p.Lng > sw.Lng || p.Lng < ne.Lng
	default:
		return false
	}
}

// ContainsClosed is Contains with borders included.
func (r Region) ContainsClosed(p geo.Point) bool {
	sw, ne := r.SouthWest, r.NorthEast
	if !(sw.Lat <= ne.Lat) || !(p.Lat >= sw.Lat && p.Lat <= ne.Lat) {
		return false
	}

	if sw.Lng <= ne.Lng {
		return p.Lng >= sw.Lng && p.Lng <= ne.Lng
	}

	return p.Lng >= sw.Lng || p.Lng <= ne.Lng
}

// Midpoint returns the centre of the region's bounds.
func (r Region) Midpoint() geo.Point {
	return geo.NewPoint((r.SouthWest.Lat+r.NorthEast.Lat)/2, (r.SouthWest.Lng+r.NorthEast.Lng)/2)
}

// Grid is the 3×3 arrangement of regions in row-major order.
type Grid [Cells]Region

// Index maps (row, col) to the flat position. It panics outside 0..2.
func Index(row, col int) int {
	if row < 0 || row >= Size || col < 0 || col >= Size {
		panic("grid: index out of range")
	}

	return row*Size + col
}

// RowCol is the inverse of Index.
func RowCol(i int) (row, col int) {
	return i / Size, i % Size
}

// At returns a pointer to the region at (row, col).
func (g *Grid) At(row, col int) *Region {
	return &g[Index(row, col)]
}

// Owned returns the number of points across all regions.
func (g *Grid) Owned() int {
	n := 0
	for i := range g {
		n += len(g[i].Points)
	}

	return n
}
