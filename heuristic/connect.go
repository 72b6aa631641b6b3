package heuristic

import (
	"fmt"

	"github.com/katalvlaran/gridhub/geo"
	"github.com/katalvlaran/gridhub/grid"
	"github.com/katalvlaran/gridhub/pointgraph"
)

// Topology is the shape of the inter-segment hub edges.
type Topology int

const (
	// TopologyNone means no segment had a center.
	TopologyNone Topology = iota
	// TopologyStar links every segment center to the centre segment's center.
	TopologyStar
	// TopologyMesh links every pair of segment centers.
	TopologyMesh
)

// String returns "none", "star" or "mesh".
func (t Topology) String() string {
	switch t {
	case TopologyStar:
		return "star"
	case TopologyMesh:
		return "mesh"
	default:
		return "none"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (t Topology) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// Segments holds the nine segment graphs in row-major order.
type Segments [grid.Cells]*pointgraph.Graph

// Connection describes the hub edges Connect added.
type Connection struct {
	Topology Topology
	// Hub is the centre segment's center under TopologyStar, None otherwise.
	Hub geo.OptionalPoint
	// Centers lists the segment centers that were linked, row-major.
	Centers []geo.Point
	// Edges is the number of edges added to the output graph.
	Edges int
}

// Connect adds hub edges between segment centers to out.
//
// When the centre segment has a center, every other segment's center is
// joined to it (star). Otherwise all available centers are meshed in
// row-major order. A nil segment counts as empty.
//
// Errors: pointgraph.ErrUnknownPoint (wrapped) if a center is not a vertex of out.
func Connect(segments *Segments, out *pointgraph.Graph) (Connection, error) {
	var conn Connection
	hub, hasHub := centerOf(segments[grid.Center]).Get()

	for i, seg := range segments {
		if i == grid.Center && hasHub {
			continue
		}
		if c, ok := centerOf(seg).Get(); ok {
			conn.Centers = append(conn.Centers, c)
		}
	}

	var err error
	switch {
	case hasHub:
		conn.Topology, conn.Hub = TopologyStar, geo.Some(hub)
		conn.Edges, err = out.Star(hub, conn.Centers)
	case len(conn.Centers) > 0:
		conn.Topology, conn.Hub = TopologyMesh, geo.None()
		conn.Edges, err = out.Mesh(conn.Centers)
	default:
		conn.Hub = geo.None()
	}
	if err != nil {
		return conn, fmt.Errorf("heuristic: Connect %s: %w", conn.Topology, err)
	}

	return conn, nil
}

func centerOf(g *pointgraph.Graph) geo.OptionalPoint {
	if g == nil {
		return geo.None()
	}

	return g.Center()
}
