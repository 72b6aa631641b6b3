package degree

import (
	"errors"

	"github.com/katalvlaran/gridhub/core"
)

// Sentinel errors.
var (
	// ErrNilGraph is returned when Correct receives a nil graph.
	ErrNilGraph = errors.New("degree: graph is nil")

	// ErrInvalidMaxDegree is returned for a bound below 1.
	ErrInvalidMaxDegree = errors.New("degree: max degree must be >= 1")

	// ErrDirectedGraph is returned for graphs with directed edges.
	ErrDirectedGraph = errors.New("degree: directed graphs are not supported")
)

// DefaultMaxDegree is the bound used when callers do not choose one.
const DefaultMaxDegree = 3

// Result summarises one correction pass.
type Result struct {
	Kept    int `json:"kept"`
	Removed int `json:"removed"`
	// MaxDegree is the largest vertex degree after correction.
	MaxDegree int `json:"max_degree"`
}

// Corrector rewrites g so that no vertex has more than maxDegree incident
// edges. The vertex set is never changed.
type Corrector interface {
	Correct(g *core.Graph, maxDegree int) (Result, error)
}

// CorrectorFunc adapts a plain function to Corrector.
type CorrectorFunc func(g *core.Graph, maxDegree int) (Result, error)

// Correct calls f(g, maxDegree).
func (f CorrectorFunc) Correct(g *core.Graph, maxDegree int) (Result, error) {
	return f(g, maxDegree)
}

// Default returns the corrector used when none is configured.
func Default() Corrector {
	return NewSpanningFirst()
}
