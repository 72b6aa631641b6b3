package grid

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/gridhub/geo"
)

// ErrUnbucketed is returned under BoundaryStrict when a point falls in no region.
var ErrUnbucketed = errors.New("grid: point outside every region")

// BoundaryPolicy decides the fate of points no region strictly contains.
type BoundaryPolicy int

const (
	// BoundaryDrop leaves such points out of every region and reports them.
	BoundaryDrop BoundaryPolicy = iota
	// BoundaryReassign gives them to the first region whose closed bounds
	// contain them, or else to the region with the nearest midpoint.
	BoundaryReassign
	// BoundaryStrict fails the bucketing.
	BoundaryStrict
)

var policyNames = [...]string{"drop", "reassign", "strict"}

// String returns the lower-case policy name.
func (p BoundaryPolicy) String() string {
	if p < 0 || int(p) >= len(policyNames) {
		return fmt.Sprintf("BoundaryPolicy(%d)", int(p))
	}

	return policyNames[p]
}

// ParseBoundaryPolicy maps a name from String back to its policy.
func ParseBoundaryPolicy(s string) (BoundaryPolicy, error) {
	for i, name := range policyNames {
		if strings.EqualFold(s, name) {
			return BoundaryPolicy(i), nil
		}
	}

	return 0, fmt.Errorf("grid: unknown boundary policy %q", s)
}

// BucketResult reports what Bucket did besides filling regions.
type BucketResult struct {
	// Dropped lists points left out under BoundaryDrop, in input order.
	Dropped []geo.Point
	// Reassigned counts points placed by the BoundaryReassign fallback.
	Reassigned int
}

// Bucket assigns each point to the first region, in row-major order, that
// strictly contains it. Regions' Points are replaced. Input order is kept
// within each region.
//
// Errors: ErrUnbucketed (wrapped with the count) under BoundaryStrict.
// Complexity: O(9n).
func Bucket(g *Grid, points []geo.Point, policy BoundaryPolicy) (BucketResult, error) {
	for i := range g {
		g[i].Points = nil
	}

	var (
		res     BucketResult
		orphans int
	)
	for _, p := range points {
		i := firstMatch(g, p, Region.Contains)
		if i < 0 {
			switch policy {
			case BoundaryStrict:
				orphans++
				continue
			case BoundaryReassign:
				if i = firstMatch(g, p, Region.ContainsClosed); i < 0 {
					i = nearestMidpoint(g, p)
				}
				res.Reassigned++
			default:
				res.Dropped = append(res.Dropped, p)
				continue
			}
		}
		g[i].Points = append(g[i].Points, p)
	}
	if orphans > 0 {
		return res, fmt.Errorf("grid: Bucket: %d points: %w", orphans, ErrUnbucketed)
	}

	return res, nil
}

func firstMatch(g *Grid, p geo.Point, test func(Region, geo.Point) bool) int {
	for i := range g {
		if test(g[i], p) {
			return i
		}
	}

	return -1
}

func nearestMidpoint(g *Grid, p geo.Point) int {
	mids := make([]geo.Point, len(g))
	for i := range g {
		mids[i] = g[i].Midpoint()
	}

	return geo.Nearest(mids, p)
}
