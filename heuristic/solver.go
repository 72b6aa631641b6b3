package heuristic

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/gridhub/bfs"
	"github.com/katalvlaran/gridhub/degree"
	"github.com/katalvlaran/gridhub/geo"
	"github.com/katalvlaran/gridhub/grid"
	"github.com/katalvlaran/gridhub/observability"
	"github.com/katalvlaran/gridhub/pointgraph"
)

// ErrInvalidPoint is returned for a NaN or infinite coordinate. Finite points
// outside the degree ranges are accepted and listed in Report.OutOfRange.
var ErrInvalidPoint = errors.New("heuristic: invalid point")

// Solver runs the grid heuristic. A Solver is immutable after New and safe
// for concurrent Solve calls.
type Solver struct {
	log       *zap.Logger
	metrics   *observability.Collector
	tracer    trace.Tracer
	corrector degree.Corrector
	maxDegree int
	padding   float64
	policy    grid.BoundaryPolicy
	parallel  bool
}

// New returns a Solver with defaults: no-op logger, global tracer,
// SpanningFirst correction to degree 3, padding 0.0005, drop policy,
// sequential segment promotion.
func New(opts ...Option) *Solver {
	s := defaults()
	for _, opt := range opts {
		opt(&s)
	}

	return &s
}

// Solve runs the pipeline with default settings.
func Solve(points []geo.Point) (*pointgraph.Graph, error) {
	g, _, err := New().Solve(context.Background(), points)

	return g, err
}

// Solve builds the candidate graph over points.
//
// The returned graph has every distinct input point as a vertex; points
// dropped at region borders are isolated vertices and are listed in
// Report.Dropped.
//
// Errors: ErrInvalidPoint (wrapped with the index), grid.ErrUnbucketed under
// BoundaryStrict, ctx.Err() when cancelled between stages, and any
// degree-correction error.
func (s *Solver) Solve(ctx context.Context, points []geo.Point) (*pointgraph.Graph, *Report, error) {
	start := time.Now()
	rep := &Report{RunID: uuid.NewString(), Points: len(points)}
	log := s.log.With(zap.String("run_id", rep.RunID))

	ctx, span := s.tracer.Start(ctx, "gridhub.solve", trace.WithAttributes(
		attribute.String("run_id", rep.RunID),
		attribute.Int("points", len(points)),
	))
	defer span.End()

	out, err := s.run(ctx, log, points, rep)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		log.Error("solve failed", zap.Error(err))
		return nil, rep, err
	}

	rep.Duration = time.Since(start)
	span.SetAttributes(
		attribute.String("topology", rep.Topology.String()),
		attribute.Int("edges", rep.Edges),
	)
	s.metrics.ObserveRun(rep.Topology.String(), len(rep.Dropped), rep.Correction.Removed, rep.Duration, rep.SegmentSizes[:])
	log.Info("solve finished",
		zap.Int("points", rep.Points),
		zap.Int("vertices", rep.Vertices),
		zap.Stringer("topology", rep.Topology),
		zap.Int("edges", rep.Edges),
		zap.Int("components", rep.Components),
		zap.Duration("duration", rep.Duration),
	)

	return out, rep, nil
}

func (s *Solver) run(ctx context.Context, log *zap.Logger, points []geo.Point, rep *Report) (*pointgraph.Graph, error) {
	for i, p := range points {
		if !p.Finite() {
			return nil, fmt.Errorf("%w: index %d %v", ErrInvalidPoint, i, p)
		}
		if !p.Valid() {
			rep.OutOfRange = append(rep.OutOfRange, p)
		}
	}
	if len(rep.OutOfRange) > 0 {
		log.Warn("points outside coordinate range", zap.Int("out_of_range", len(rep.OutOfRange)))
	}

	var g grid.Grid
	err := s.stage(ctx, "partition", func(context.Context) error {
		g, rep.Bounds = grid.Partition(points, s.padding)
		rep.Degenerate = rep.Bounds.Degenerate()
		if rep.Degenerate {
			log.Warn("degenerate bounding box", zap.Bool("empty", rep.Bounds.Empty))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	err = s.stage(ctx, "bucket", func(context.Context) error {
		res, berr := grid.Bucket(&g, points, s.policy)
		if berr != nil {
			return berr
		}
		rep.Dropped, rep.Reassigned = res.Dropped, res.Reassigned
		for i := range g {
			rep.SegmentSizes[i] = len(g[i].Points)
		}
		if len(res.Dropped) > 0 {
			log.Warn("points dropped on region borders", zap.Int("dropped", len(res.Dropped)))
		}
		log.Debug("bucketed", zap.Ints("segment_sizes", rep.SegmentSizes[:]))
		return nil
	})
	if err != nil {
		return nil, err
	}

	var segs Segments
	err = s.stage(ctx, "segments", func(ctx context.Context) error {
		var perr error
		segs, perr = s.promote(ctx, &g)
		return perr
	})
	if err != nil {
		return nil, err
	}

	out := pointgraph.New(points)
	rep.Vertices, rep.Duplicates = out.Len(), out.Duplicates()

	err = s.stage(ctx, "connect", func(context.Context) error {
		conn, cerr := Connect(&segs, out)
		if cerr != nil {
			return cerr
		}
		rep.Topology, rep.Hub, rep.HubEdges = conn.Topology, conn.Hub, conn.Edges
		log.Debug("segments connected",
			zap.Stringer("topology", conn.Topology),
			zap.Stringer("hub", conn.Hub),
			zap.Int("hub_edges", conn.Edges),
		)
		return nil
	})
	if err != nil {
		return nil, err
	}

	err = s.stage(ctx, "merge", func(context.Context) error {
		var merr error
		rep.LocalEdges, merr = Merge(&segs, out)
		return merr
	})
	if err != nil {
		return nil, err
	}

	err = s.stage(ctx, "correct", func(ctx context.Context) error {
		res, cerr := out.CorrectDegree(s.maxDegree, s.corrector)
		if cerr != nil {
			return cerr
		}
		rep.Correction, rep.Edges = res, out.EdgeCount()
		comps, cerr := bfs.Components(out.Core(), bfs.WithContext(ctx))
		if cerr != nil {
			return cerr
		}
		rep.Components = len(comps)
		log.Debug("degree corrected",
			zap.Int("max_degree", s.maxDegree),
			zap.Int("removed", rep.Correction.Removed),
			zap.Int("components", rep.Components),
		)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}

// Merge adds every segment edge to out, segments in row-major order, and
// returns how many were new.
func Merge(segments *Segments, out *pointgraph.Graph) (int, error) {
	added := 0
	for i, seg := range segments {
		if seg == nil {
			continue
		}
		for _, e := range seg.Edges() {
			ok, err := out.AddEdge(e)
			if err != nil {
				return added, fmt.Errorf("heuristic: Merge segment %d: %w", i, err)
			}
			if ok {
				added++
			}
		}
	}

	return added, nil
}

// promote builds and completes one pointgraph per region. In parallel mode
// each worker owns exactly one segment; Wait is the barrier before Connect.
func (s *Solver) promote(ctx context.Context, g *grid.Grid) (Segments, error) {
	var segs Segments
	build := func(i int) error {
		seg := pointgraph.New(g[i].Points)
		if err := seg.MakeComplete(); err != nil {
			return fmt.Errorf("heuristic: segment %d: %w", i, err)
		}
		segs[i] = seg
		return nil
	}

	if !s.parallel {
		for i := range segs {
			if err := build(i); err != nil {
				return segs, err
			}
		}
		return segs, nil
	}

	eg, ctx := errgroup.WithContext(ctx)
	for i := range segs {
		i := i
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			return build(i)
		})
	}

	return segs, eg.Wait()
}

// stage runs fn inside a child span after checking for cancellation.
func (s *Solver) stage(ctx context.Context, name string, fn func(context.Context) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	ctx, span := s.tracer.Start(ctx, "gridhub."+name)
	defer span.End()

	if err := fn(ctx); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	return nil
}
