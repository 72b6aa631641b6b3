package pointgraph

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/gridhub/builder"
	"github.com/katalvlaran/gridhub/core"
	"github.com/katalvlaran/gridhub/degree"
	"github.com/katalvlaran/gridhub/geo"
)

// ErrUnknownPoint is returned when an edge endpoint is not a vertex.
var ErrUnknownPoint = errors.New("pointgraph: point is not a vertex")

// Graph is a point graph. It is safe for concurrent edge insertion because
// the underlying core.Graph is; the vertex list itself is immutable.
type Graph struct {
	points     []geo.Point
	index      map[string]int
	duplicates int
	g          *core.Graph
}

// New builds an edgeless graph over points. Points with equal coordinates
// share one vertex; the first occurrence fixes its position in Points().
// Complexity: O(n).
func New(points []geo.Point) *Graph {
	pg := &Graph{
		points: make([]geo.Point, 0, len(points)),
		index:  make(map[string]int, len(points)),
		g:      core.NewGraph(core.WithWeighted()),
	}
	for _, p := range points {
		key := p.Key()
		if _, dup := pg.index[key]; dup {
			pg.duplicates++
			continue
		}
		pg.index[key] = len(pg.points)
		pg.points = append(pg.points, p)
		// AddVertex only fails on an empty ID, and Key is never empty.
		_ = pg.g.AddVertex(key)
	}

	return pg
}

// Points returns a copy of the vertex list in insertion order.
func (pg *Graph) Points() []geo.Point {
	out := make([]geo.Point, len(pg.points))
	copy(out, pg.points)

	return out
}

// Len returns the number of vertices.
func (pg *Graph) Len() int { return len(pg.points) }

// Duplicates returns how many input points collapsed into an existing vertex.
func (pg *Graph) Duplicates() int { return pg.duplicates }

// Has reports whether p is a vertex.
func (pg *Graph) Has(p geo.Point) bool {
	_, ok := pg.index[p.Key()]
	return ok
}

// AddEdge inserts e weighted by its length. Loops and pairs that already
// have an edge are ignored and reported as false.
//
// Errors: ErrUnknownPoint (wrapped with the point) if an endpoint is not a vertex.
func (pg *Graph) AddEdge(e geo.Edge) (bool, error) {
	if err := pg.known([]geo.Point{e.A, e.B}); err != nil {
		return false, fmt.Errorf("pointgraph: AddEdge: %w", err)
	}
	if e.IsLoop() {
		return false, nil
	}

	u, v := e.A.Key(), e.B.Key()
	if pg.g.HasEdge(u, v) {
		return false, nil
	}
	if _, err := pg.g.AddEdge(u, v, e.Length()); err != nil {
		if errors.Is(err, core.ErrMultiEdgeNotAllowed) {
			return false, nil
		}
		return false, fmt.Errorf("pointgraph: AddEdge %v-%v: %w", e.A, e.B, err)
	}

	return true, nil
}

// Edges returns every edge in insertion order, endpoints oriented as inserted.
// Complexity: O(E log E).
func (pg *Graph) Edges() []geo.Edge {
	edges := pg.g.Edges()
	out := make([]geo.Edge, 0, len(edges))
	for _, e := range edges {
		out = append(out, geo.NewEdge(pg.point(e.From), pg.point(e.To)))
	}

	return out
}

// EdgeCount returns the number of edges.
func (pg *Graph) EdgeCount() int { return pg.g.EdgeCount() }

// Degree returns the number of edges incident to p.
func (pg *Graph) Degree(p geo.Point) (int, error) {
	if !pg.Has(p) {
		return 0, fmt.Errorf("pointgraph: Degree %v: %w", p, ErrUnknownPoint)
	}
	_, _, d, err := pg.g.Degree(p.Key())

	return d, err
}

// MaxDegree returns the largest vertex degree, 0 for an empty graph.
func (pg *Graph) MaxDegree() int {
	return pg.g.Stats().MaxDegree
}

// Center returns the vertex nearest the arithmetic centroid of all
// vertices, the first one in insertion order on ties, or None when the
// graph has no vertices. Returning an actual vertex lets the hub edges
// attach to real points.
func (pg *Graph) Center() geo.OptionalPoint {
	c, ok := geo.Centroid(pg.points).Get()
	if !ok {
		return geo.None()
	}

	return geo.Some(pg.points[geo.Nearest(pg.points, c)])
}

// MakeComplete adds an edge between every unordered pair of distinct
// vertices that is not already connected. 0 or 1 vertices add nothing.
// Complexity: O(n²).
func (pg *Graph) MakeComplete() error {
	if _, err := pg.apply(builder.Complete(keys(pg.points))); err != nil {
		return fmt.Errorf("pointgraph: MakeComplete: %w", err)
	}

	return nil
}

// Star connects every leaf to hub and returns how many edges were added.
// A leaf equal to hub is skipped.
//
// Errors: ErrUnknownPoint if hub or a leaf is not a vertex.
func (pg *Graph) Star(hub geo.Point, leaves []geo.Point) (int, error) {
	if err := pg.known(append([]geo.Point{hub}, leaves...)); err != nil {
		return 0, fmt.Errorf("pointgraph: Star: %w", err)
	}
	n, err := pg.apply(builder.Star(hub.Key(), keys(leaves)))
	if err != nil {
		return n, fmt.Errorf("pointgraph: Star: %w", err)
	}

	return n, nil
}

// Mesh offers every ordered pair (i, j), i != j, of points in order. The
// reverse of an existing pair is not added again, so the result is the
// complete graph over points. Returns how many edges were added.
//
// Errors: ErrUnknownPoint if a point is not a vertex.
func (pg *Graph) Mesh(points []geo.Point) (int, error) {
	if err := pg.known(points); err != nil {
		return 0, fmt.Errorf("pointgraph: Mesh: %w", err)
	}
	n, err := pg.apply(builder.Mesh(keys(points)))
	if err != nil {
		return n, fmt.Errorf("pointgraph: Mesh: %w", err)
	}

	return n, nil
}

// apply runs constructors over the backing graph with distance weights and
// reports the number of edges they added.
func (pg *Graph) apply(cons ...builder.Constructor) (int, error) {
	before := pg.g.EdgeCount()
	err := builder.Apply(pg.g, []builder.BuilderOption{builder.WithWeightFn(pg.distance)}, cons...)

	return pg.g.EdgeCount() - before, err
}

func (pg *Graph) known(points []geo.Point) error {
	for _, p := range points {
		if !pg.Has(p) {
			return fmt.Errorf("%v: %w", p, ErrUnknownPoint)
		}
	}

	return nil
}

func keys(points []geo.Point) []string {
	out := make([]string, len(points))
	for i, p := range points {
		out[i] = p.Key()
	}

	return out
}

// CorrectDegree bounds every vertex degree by maxDegree using c, or
// degree.Default() when c is nil. The vertex set is unchanged.
func (pg *Graph) CorrectDegree(maxDegree int, c degree.Corrector) (degree.Result, error) {
	if c == nil {
		c = degree.Default()
	}
	res, err := c.Correct(pg.g, maxDegree)
	if err != nil {
		return res, fmt.Errorf("pointgraph: CorrectDegree(%d): %w", maxDegree, err)
	}

	return res, nil
}

// Core exposes the backing graph for read-only algorithms (bfs, MST).
func (pg *Graph) Core() *core.Graph { return pg.g }

func (pg *Graph) point(key string) geo.Point {
	return pg.points[pg.index[key]]
}

func (pg *Graph) distance(u, v string) float64 {
	return geo.Distance(pg.point(u), pg.point(v))
}
