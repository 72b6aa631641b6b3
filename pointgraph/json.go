package pointgraph

import (
	"encoding/json"

	"github.com/katalvlaran/gridhub/geo"
)

type jsonEdge struct {
	A      geo.Point `json:"a"`
	B      geo.Point `json:"b"`
	Meters float64   `json:"meters"`
}

type jsonGraph struct {
	Points []geo.Point `json:"points"`
	Edges  []jsonEdge  `json:"edges"`
}

// MarshalJSON renders the graph as its point list and weighted edge list.
func (pg *Graph) MarshalJSON() ([]byte, error) {
	out := jsonGraph{Points: pg.points, Edges: make([]jsonEdge, 0, pg.g.EdgeCount())}
	for _, e := range pg.g.Edges() {
		out.Edges = append(out.Edges, jsonEdge{A: pg.point(e.From), B: pg.point(e.To), Meters: e.Weight})
	}

	return json.Marshal(out)
}
