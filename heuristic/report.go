package heuristic

import (
	"time"

	"github.com/katalvlaran/gridhub/degree"
	"github.com/katalvlaran/gridhub/geo"
	"github.com/katalvlaran/gridhub/grid"
)

// Report describes one Solve run.
type Report struct {
	RunID string `json:"run_id"`

	Points     int `json:"points"`
	Vertices   int `json:"vertices"`
	Duplicates int `json:"duplicates"`

	// OutOfRange lists finite points outside lat [-90, 90] or lng [-180, 180].
	// They are kept and treated as planar coordinates.
	OutOfRange []geo.Point `json:"out_of_range,omitempty"`

	Bounds     grid.Bounds `json:"bounds"`
	Degenerate bool        `json:"degenerate"`

	SegmentSizes [grid.Cells]int `json:"segment_sizes"`
	Dropped      []geo.Point     `json:"dropped,omitempty"`
	Reassigned   int             `json:"reassigned,omitempty"`

	Topology   Topology          `json:"topology"`
	Hub        geo.OptionalPoint `json:"hub"`
	HubEdges   int               `json:"hub_edges"`
	LocalEdges int               `json:"local_edges"`

	Correction degree.Result `json:"correction"`
	Edges      int           `json:"edges"`
	Components int           `json:"components"`

	Duration time.Duration `json:"duration_ns"`
}
