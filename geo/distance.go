package geo

import (
	"github.com/golang/geo/s2"
)

// EarthRadiusMeters is the mean Earth radius (IUGG) used to scale s2 angles.
const EarthRadiusMeters = 6371008.8

// Distance returns the great-circle distance between a and b in metres.
// Complexity: O(1).
func Distance(a, b Point) float64 {
	return float64(latLng(a).Distance(latLng(b))) * EarthRadiusMeters
}

// Centroid returns the arithmetic mean of points in degree space, or None when
// points is empty. Degree-space averaging is adequate for the small regions a
// 3×3 grid cell covers; it is not antimeridian-aware.
func Centroid(points []Point) OptionalPoint {
	if len(points) == 0 {
		return None()
	}
	var sumLat, sumLng float64
	for _, p := range points {
		sumLat += p.Lat
		sumLng += p.Lng
	}
	n := float64(len(points))

	return Some(Point{Lat: sumLat / n, Lng: sumLng / n})
}

// Nearest returns the index of the point in points closest to target, keeping
// the first one on ties. It returns -1 for an empty slice.
func Nearest(points []Point, target Point) int {
	best, bestDist := -1, 0.0
	t := latLng(target)
	for i, p := range points {
		d := float64(latLng(p).Distance(t))
		if best < 0 || d < bestDist {
			best, bestDist = i, d
		}
	}

	return best
}

func latLng(p Point) s2.LatLng {
	return s2.LatLngFromDegrees(p.Lat, p.Lng)
}
