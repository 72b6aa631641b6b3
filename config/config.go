// Package config loads gridhub settings: built-in defaults, then an
// optional YAML file, then GRIDHUB_* environment variables. The merged
// result is validated before use.
package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/katalvlaran/gridhub/degree"
	"github.com/katalvlaran/gridhub/grid"
	"github.com/katalvlaran/gridhub/heuristic"
	"github.com/katalvlaran/gridhub/observability"
	"github.com/katalvlaran/gridhub/prim_kruskal"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid configuration")

// Corrector names accepted in Solver.Corrector.
const (
	CorrectorSpanning = "spanning"
	CorrectorShortest = "shortest"
)

// Config is the full gridhub configuration.
type Config struct {
	Solver  Solver  `yaml:"solver"`
	Logging Logging `yaml:"logging"`
	Tracing Tracing `yaml:"tracing"`
	Metrics Metrics `yaml:"metrics"`

	// LoadedFrom lists the sources applied, lowest priority first.
	LoadedFrom []string `yaml:"-"`
}

// Solver holds heuristic settings.
type Solver struct {
	MaxDegree int     `yaml:"max_degree" validate:"min=1,max=64"`
	Padding   float64 `yaml:"padding" validate:"gte=0,lte=1"`
	Boundary  string  `yaml:"boundary" validate:"oneof=drop reassign strict"`
	Corrector string  `yaml:"corrector" validate:"oneof=spanning shortest"`
	MST       string  `yaml:"mst" validate:"oneof=kruskal prim"`
	Parallel  bool    `yaml:"parallel"`
}

// Logging selects the zap logger.
type Logging struct {
	Level       string `yaml:"level" validate:"oneof=debug info warn error"`
	Development bool   `yaml:"development"`
}

// Tracing configures the OpenTelemetry stdout exporter.
type Tracing struct {
	Enabled     bool    `yaml:"enabled"`
	ServiceName string  `yaml:"service_name" validate:"required_if=Enabled true"`
	SampleRatio float64 `yaml:"sample_ratio" validate:"gte=0,lte=1"`
}

// Metrics configures the Prometheus textfile output.
type Metrics struct {
	// File, when set, receives the metrics after each run.
	File string `yaml:"file"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Solver: Solver{
			MaxDegree: degree.DefaultMaxDegree,
			Padding:   grid.DefaultPadding,
			Boundary:  grid.BoundaryDrop.String(),
			Corrector: CorrectorSpanning,
			MST:       prim_kruskal.MethodKruskal,
		},
		Logging: Logging{Level: "info"},
		Tracing: Tracing{ServiceName: "gridhub", SampleRatio: 1},
	}
}

var validate = validator.New()

// Validate checks field constraints and wraps ErrInvalid with a readable
// summary of every failing field.
func (c *Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return errors.Wrap(err, "config: validate")
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, formatFieldError(fe))
	}

	return errors.Wrap(ErrInvalid, strings.Join(msgs, "; "))
}

func formatFieldError(fe validator.FieldError) string {
	field := strings.ToLower(strings.TrimPrefix(fe.Namespace(), "Config."))
	switch fe.Tag() {
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, fe.Param())
	case "min", "gte":
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "max", "lte":
		return fmt.Sprintf("%s must be at most %s", field, fe.Param())
	case "required_if":
		return fmt.Sprintf("%s is required", field)
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}

// SolverOptions maps the solver section to heuristic options. Call
// Validate first; unknown names are reported as ErrInvalid.
func (c *Config) SolverOptions() ([]heuristic.Option, error) {
	policy, err := grid.ParseBoundaryPolicy(c.Solver.Boundary)
	if err != nil {
		return nil, errors.Wrap(ErrInvalid, err.Error())
	}

	var corrector degree.Corrector
	switch c.Solver.Corrector {
	case CorrectorSpanning:
		if c.Solver.MST != prim_kruskal.MethodKruskal && c.Solver.MST != prim_kruskal.MethodPrim {
			return nil, errors.Wrapf(ErrInvalid, "unknown mst method %q", c.Solver.MST)
		}
		corrector = degree.NewSpanningFirst(degree.WithMSTMethod(c.Solver.MST))
	case CorrectorShortest:
		corrector = degree.ShortestFirst{}
	default:
		return nil, errors.Wrapf(ErrInvalid, "unknown corrector %q", c.Solver.Corrector)
	}
	if c.Solver.MaxDegree < 1 || c.Solver.Padding < 0 {
		return nil, errors.Wrap(ErrInvalid, "solver bounds")
	}

	return []heuristic.Option{
		heuristic.WithMaxDegree(c.Solver.MaxDegree),
		heuristic.WithPadding(c.Solver.Padding),
		heuristic.WithBoundaryPolicy(policy),
		heuristic.WithCorrector(corrector),
		heuristic.WithParallelSegments(c.Solver.Parallel),
	}, nil
}

// Logger builds the configured zap logger.
func (c *Config) Logger() (*zap.Logger, error) {
	return observability.NewLogger(c.Logging.Level, c.Logging.Development)
}

// TracingConfig converts the tracing section.
func (c *Config) TracingConfig() observability.TracingConfig {
	return observability.TracingConfig{
		Enabled:     c.Tracing.Enabled,
		ServiceName: c.Tracing.ServiceName,
		SampleRatio: c.Tracing.SampleRatio,
	}
}
