// Command gridhub reads geographic points and writes a sparse candidate
// graph over them as JSON.
//
//	gridhub -in points.csv [-format csv|json] [-out graph.json]
//	        [-config gridhub.yaml] [-metrics-file gridhub.prom] [-report report.json]
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/katalvlaran/gridhub/config"
	"github.com/katalvlaran/gridhub/heuristic"
	"github.com/katalvlaran/gridhub/observability"
)

func main() {
	in := flag.String("in", "-", "input file with points, - for stdin")
	format := flag.String("format", "", "input format: csv or json (default: from file extension, else csv)")
	out := flag.String("out", "-", "output file for the graph JSON, - for stdout")
	cfgPath := flag.String("config", "", "optional YAML configuration file")
	metricsFile := flag.String("metrics-file", "", "write Prometheus metrics to this textfile after the run")
	reportPath := flag.String("report", "", "write the run report as JSON to this file")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, options{
		in:          *in,
		format:      *format,
		out:         *out,
		config:      *cfgPath,
		metricsFile: *metricsFile,
		report:      *reportPath,
	}); err != nil {
		fmt.Fprintf(os.Stderr, "gridhub: %v\n", err)
		os.Exit(1)
	}
}

type options struct {
	in, format, out string
	config          string
	metricsFile     string
	report          string
}

func run(ctx context.Context, o options) error {
	cfg, err := config.Load(o.config)
	if err != nil {
		return err
	}
	if o.metricsFile != "" {
		cfg.Metrics.File = o.metricsFile
	}

	log, err := cfg.Logger()
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()
	log.Debug("configuration loaded", zap.Strings("sources", cfg.LoadedFrom))

	shutdown, err := observability.InitTracing(ctx, cfg.TracingConfig(), log)
	if err != nil {
		return err
	}
	defer observability.ShutdownWithTimeout(context.Background(), shutdown, log)

	collector, err := observability.NewCollector(prometheus.NewRegistry())
	if err != nil {
		return err
	}

	solverOpts, err := cfg.SolverOptions()
	if err != nil {
		return err
	}
	solverOpts = append(solverOpts, heuristic.WithLogger(log), heuristic.WithMetrics(collector))

	points, err := loadPoints(o.in, o.format)
	if err != nil {
		return err
	}
	log.Info("points loaded", zap.String("source", o.in), zap.Int("count", len(points)))

	graph, rep, err := heuristic.New(solverOpts...).Solve(ctx, points)
	if err != nil {
		return err
	}

	if err := writeJSON(o.out, graph); err != nil {
		return fmt.Errorf("write graph: %w", err)
	}
	if o.report != "" {
		if err := writeJSON(o.report, rep); err != nil {
			return fmt.Errorf("write report: %w", err)
		}
	}
	if cfg.Metrics.File != "" {
		if err := collector.WriteTextfile(cfg.Metrics.File); err != nil {
			return err
		}
		log.Debug("metrics written", zap.String("path", cfg.Metrics.File))
	}

	return nil
}

func writeJSON(path string, v any) error {
	var w io.Writer = os.Stdout
	if path != "-" && path != "" {
		f, err := os.Create(path)
		if err != nil {
			return err
		}
		defer f.Close()
		w = f
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
