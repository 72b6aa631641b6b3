package heuristic

import (
	"math"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/katalvlaran/gridhub/degree"
	"github.com/katalvlaran/gridhub/grid"
	"github.com/katalvlaran/gridhub/observability"
)

// TracerName identifies spans emitted by this package.
const TracerName = "github.com/katalvlaran/gridhub/heuristic"

// Option configures a Solver. Constructors panic on invalid arguments.
type Option func(*Solver)

// WithLogger sets the structured logger. Panics on nil.
func WithLogger(log *zap.Logger) Option {
	if log == nil {
		panic("heuristic: WithLogger(nil)")
	}

	return func(s *Solver) { s.log = log }
}

// WithMetrics records every run on c. Panics on nil.
func WithMetrics(c *observability.Collector) Option {
	if c == nil {
		panic("heuristic: WithMetrics(nil)")
	}

	return func(s *Solver) { s.metrics = c }
}

// WithTracer sets the tracer used for per-stage spans. Panics on nil.
func WithTracer(t trace.Tracer) Option {
	if t == nil {
		panic("heuristic: WithTracer(nil)")
	}

	return func(s *Solver) { s.tracer = t }
}

// WithCorrector sets the degree-correction strategy. Panics on nil.
func WithCorrector(c degree.Corrector) Option {
	if c == nil {
		panic("heuristic: WithCorrector(nil)")
	}

	return func(s *Solver) { s.corrector = c }
}

// WithMaxDegree sets the degree bound. Panics when d < 1.
func WithMaxDegree(d int) Option {
	if d < 1 {
		panic("heuristic: WithMaxDegree: bound must be >= 1")
	}

	return func(s *Solver) { s.maxDegree = d }
}

// WithPadding sets the bounding-box padding in degrees. Panics when
// negative or not finite.
func WithPadding(p float64) Option {
	if p < 0 || math.IsNaN(p) || math.IsInf(p, 0) {
		panic("heuristic: WithPadding: padding must be finite and >= 0")
	}

	return func(s *Solver) { s.padding = p }
}

// WithBoundaryPolicy chooses what happens to border points.
func WithBoundaryPolicy(p grid.BoundaryPolicy) Option {
	return func(s *Solver) { s.policy = p }
}

// WithParallelSegments promotes the nine segment graphs concurrently.
func WithParallelSegments(on bool) Option {
	return func(s *Solver) { s.parallel = on }
}

func defaults() Solver {
	return Solver{
		log:       zap.NewNop(),
		tracer:    otel.Tracer(TracerName),
		corrector: degree.Default(),
		maxDegree: degree.DefaultMaxDegree,
		padding:   grid.DefaultPadding,
		policy:    grid.BoundaryDrop,
	}
}
