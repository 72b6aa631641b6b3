package config

import (
	"os"
	"strconv"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "GRIDHUB_"

// Load returns the configuration built from defaults, the YAML file at path
// (skipped when path is empty) and GRIDHUB_* environment variables, in
// that order of priority. The result is validated.
func Load(path string) (*Config, error) {
	return load(path, os.Getenv)
}

func load(path string, getenv func(string) string) (*Config, error) {
	cfg := Default()
	cfg.LoadedFrom = append(cfg.LoadedFrom, "defaults")

	if path != "" {
		if err := loadFile(path, cfg); err != nil {
			return nil, err
		}
		cfg.LoadedFrom = append(cfg.LoadedFrom, path)
	}

	applied, err := applyEnv(cfg, getenv)
	if err != nil {
		return nil, err
	}
	if applied {
		cfg.LoadedFrom = append(cfg.LoadedFrom, "environment")
	}

	if err := cfg.Validate(); err != nil {
		return nil, errors.WithMessage(err, "configuration validation failed")
	}

	return cfg, nil
}

func loadFile(path string, cfg *Config) error {
	f, err := os.Open(path)
	if err != nil {
		return errors.Wrap(err, "config: open")
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		return errors.Wrapf(err, "config: parse %s", path)
	}

	return nil
}

// applyEnv overlays environment variables and reports whether any was set.
func applyEnv(cfg *Config, getenv func(string) string) (bool, error) {
	applied := false
	str := func(key string, dst *string) {
		if v := getenv(EnvPrefix + key); v != "" {
			*dst = v
			applied = true
		}
	}
	var firstErr error
	parse := func(key string, set func(string) error) {
		v := getenv(EnvPrefix + key)
		if v == "" {
			return
		}
		applied = true
		if err := set(v); err != nil && firstErr == nil {
			firstErr = errors.Wrapf(err, "config: %s%s=%q", EnvPrefix, key, v)
		}
	}
	boolean := func(dst *bool) func(string) error {
		return func(v string) error {
			b, err := strconv.ParseBool(v)
			*dst = b
			return err
		}
	}

	parse("MAX_DEGREE", func(v string) error {
		n, err := strconv.Atoi(v)
		cfg.Solver.MaxDegree = n
		return err
	})
	parse("PADDING", func(v string) error {
		f, err := strconv.ParseFloat(v, 64)
		cfg.Solver.Padding = f
		return err
	})
	str("BOUNDARY", &cfg.Solver.Boundary)
	str("CORRECTOR", &cfg.Solver.Corrector)
	str("MST", &cfg.Solver.MST)
	parse("PARALLEL", boolean(&cfg.Solver.Parallel))
	str("LOG_LEVEL", &cfg.Logging.Level)
	parse("LOG_DEVELOPMENT", boolean(&cfg.Logging.Development))
	parse("TRACING_ENABLED", boolean(&cfg.Tracing.Enabled))
	str("METRICS_FILE", &cfg.Metrics.File)

	return applied, firstErr
}
