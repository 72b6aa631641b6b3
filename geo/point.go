// SPDX-License-Identifier: MIT
// Package: gridhub/geo
//
// point.go - geographic value types shared by every gridhub package.
//
// Contract:
//   - Point is an immutable (latitude, longitude) pair in degrees; equality is by value.
//   - Key() is the canonical vertex ID of a Point inside core.Graph; two points
//     with equal coordinates always share one Key (-0 is folded into 0).
//   - Edge is an unordered pair; Canonical() orders endpoints by Key.

package geo

import (
	"math"
	"strconv"
)

// keySep separates the latitude and longitude parts of a Point key.
const keySep = ','

// Point is a 2D geographic coordinate in decimal degrees.
type Point struct {
	Lat float64 `json:"lat" yaml:"lat"`
	Lng float64 `json:"lng" yaml:"lng"`
}

// NewPoint builds a Point from latitude and longitude in degrees.
func NewPoint(lat, lng float64) Point {
	return Point{Lat: lat, Lng: lng}
}

// Key renders the canonical textual identity of p.
// Shortest round-trip formatting keeps keys stable across runs.
// Complexity: O(1).
func (p Point) Key() string {
	buf := make([]byte, 0, 48)
	buf = strconv.AppendFloat(buf, foldZero(p.Lat), 'g', -1, 64)
	buf = append(buf, keySep)
	buf = strconv.AppendFloat(buf, foldZero(p.Lng), 'g', -1, 64)

	return string(buf)
}

// Finite reports whether neither coordinate is NaN or infinite.
func (p Point) Finite() bool {
	return !math.IsNaN(p.Lat) && !math.IsNaN(p.Lng) && !math.IsInf(p.Lat, 0) && !math.IsInf(p.Lng, 0)
}

// Valid reports whether both coordinates are finite and inside the
// conventional ranges lat ∈ [-90, 90], lng ∈ [-180, 180].
func (p Point) Valid() bool {
	return p.Finite() && p.Lat >= -90 && p.Lat <= 90 && p.Lng >= -180 && p.Lng <= 180
}

// String implements fmt.Stringer as "(lat, lng)".
func (p Point) String() string {
	return "(" + strconv.FormatFloat(p.Lat, 'f', -1, 64) + ", " + strconv.FormatFloat(p.Lng, 'f', -1, 64) + ")"
}

// ParseKey reverses Point.Key.
func ParseKey(key string) (Point, bool) {
	for i := 0; i < len(key); i++ {
		if key[i] != keySep {
			continue
		}
		lat, err := strconv.ParseFloat(key[:i], 64)
		if err != nil {
			return Point{}, false
		}
		lng, err := strconv.ParseFloat(key[i+1:], 64)
		if err != nil {
			return Point{}, false
		}

		return Point{Lat: lat, Lng: lng}, true
	}

	return Point{}, false
}

func foldZero(v float64) float64 {
	if v == 0 {
		return 0
	}

	return v
}

// Edge is an unordered pair of points.
type Edge struct {
	A Point `json:"a"`
	B Point `json:"b"`
}

// NewEdge builds the unordered edge {a, b}.
func NewEdge(a, b Point) Edge {
	return Edge{A: a, B: b}
}

// Canonical returns e with endpoints ordered by Key, so {a,b} and {b,a}
// have one representation.
func (e Edge) Canonical() Edge {
	if e.B.Key() < e.A.Key() {
		return Edge{A: e.B, B: e.A}
	}

	return e
}

// Equal reports whether e and o connect the same unordered pair.
func (e Edge) Equal(o Edge) bool {
	return e.Canonical() == o.Canonical()
}

// IsLoop reports whether both endpoints are the same point.
func (e Edge) IsLoop() bool {
	return e.A.Key() == e.B.Key()
}

// Length is the great-circle length of e in metres.
func (e Edge) Length() float64 {
	return Distance(e.A, e.B)
}
