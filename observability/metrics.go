package observability

import (
	"fmt"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Collector bundles the Prometheus metrics of solver runs. A nil
// *Collector is valid and records nothing.
type Collector struct {
	gatherer prometheus.Gatherer

	Runs          *prometheus.CounterVec
	PointsDropped prometheus.Counter
	EdgesRemoved  prometheus.Counter
	RunDuration   prometheus.Histogram
	SegmentPoints *prometheus.GaugeVec
}

// NewCollector registers the solver metrics against reg, defaulting to the
// global registry when nil. Registering twice on one registry returns the
// already-registered metrics.
func NewCollector(reg prometheus.Registerer) (*Collector, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	gatherer := prometheus.DefaultGatherer
	if g, ok := reg.(prometheus.Gatherer); ok {
		gatherer = g
	}

	runs, err := register(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "gridhub_runs_total",
		Help: "Completed solver runs, labeled by inter-segment topology.",
	}, []string{"topology"}), "gridhub_runs_total")
	if err != nil {
		return nil, err
	}
	dropped, err := register(reg, prometheus.NewCounter(prometheus.CounterOpts{
		Name: "gridhub_points_dropped_total",
		Help: "Input points that fell on a region border and were left out.",
	}), "gridhub_points_dropped_total")
	if err != nil {
		return nil, err
	}
	removed, err := register(reg, prometheus.NewCounter(prometheus.CounterOpts{
		Name: "gridhub_edges_removed_total",
		Help: "Edges removed by degree correction.",
	}), "gridhub_edges_removed_total")
	if err != nil {
		return nil, err
	}
	duration, err := register(reg, prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "gridhub_run_duration_seconds",
		Help:    "Wall time of a solver run.",
		Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5, 10, 30},
	}), "gridhub_run_duration_seconds")
	if err != nil {
		return nil, err
	}
	segments, err := register(reg, prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "gridhub_segment_points",
		Help: "Points owned by each grid segment in the last run (row-major index).",
	}, []string{"segment"}), "gridhub_segment_points")
	if err != nil {
		return nil, err
	}

	return &Collector{
		gatherer:      gatherer,
		Runs:          runs,
		PointsDropped: dropped,
		EdgesRemoved:  removed,
		RunDuration:   duration,
		SegmentPoints: segments,
	}, nil
}

// ObserveRun records one finished run.
func (c *Collector) ObserveRun(topology string, dropped, removed int, elapsed time.Duration, segmentSizes []int) {
	if c == nil {
		return
	}
	c.Runs.WithLabelValues(topology).Inc()
	c.PointsDropped.Add(float64(dropped))
	c.EdgesRemoved.Add(float64(removed))
	c.RunDuration.Observe(elapsed.Seconds())
	for i, n := range segmentSizes {
		c.SegmentPoints.WithLabelValues(strconv.Itoa(i)).Set(float64(n))
	}
}

// Gatherer returns the registry the collector was registered on.
func (c *Collector) Gatherer() prometheus.Gatherer {
	if c == nil || c.gatherer == nil {
		return prometheus.DefaultGatherer
	}

	return c.gatherer
}

// WriteTextfile dumps the gathered metrics in the node-exporter textfile format.
func (c *Collector) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, c.Gatherer()); err != nil {
		return fmt.Errorf("observability: write metrics %s: %w", path, err)
	}

	return nil
}

func register[T prometheus.Collector](reg prometheus.Registerer, c T, name string) (T, error) {
	if err := reg.Register(c); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(T); ok {
				return existing, nil
			}
			var zero T
			return zero, fmt.Errorf("observability: collector %s already registered with incompatible type", name)
		}
		var zero T
		return zero, err
	}

	return c, nil
}
