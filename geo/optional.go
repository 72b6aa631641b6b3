package geo

import "encoding/json"

// OptionalPoint is either Some(point) or None.
// Graph centers are optional: an empty segment has none, and callers must
// branch on that instead of receiving a zero Point.
type OptionalPoint struct {
	p  Point
	ok bool
}

// Some wraps a present point.
func Some(p Point) OptionalPoint { return OptionalPoint{p: p, ok: true} }

// None is the absent variant.
func None() OptionalPoint { return OptionalPoint{} }

// Get returns the point and whether it is present.
func (o OptionalPoint) Get() (Point, bool) { return o.p, o.ok }

// IsSome reports whether a point is present.
func (o OptionalPoint) IsSome() bool { return o.ok }

// OrElse returns the wrapped point, or fallback when absent.
func (o OptionalPoint) OrElse(fallback Point) Point {
	if o.ok {
		return o.p
	}

	return fallback
}

// String renders "Some(lat, lng)" or "None".
func (o OptionalPoint) String() string {
	if !o.ok {
		return "None"
	}

	return "Some" + o.p.String()
}

// MarshalJSON encodes None as null and Some(p) as p.
func (o OptionalPoint) MarshalJSON() ([]byte, error) {
	if !o.ok {
		return []byte("null"), nil
	}

	return json.Marshal(o.p)
}
