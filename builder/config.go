// SPDX-License-Identifier: MIT
// Package: gridhub/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • weightFn   = constant DefaultEdgeWeight (used only on weighted graphs)
//   • skipExisting = true (an already-present pair is not an error on simple graphs)

package builder

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors (immutable to callers).
type builderConfig struct {
	// weightFn prices the pair (u, v); consulted only for weighted graphs.
	weightFn func(u, v string) float64
	// skipExisting makes constructors tolerate pairs that already carry an edge
	// on a simple graph instead of failing with core.ErrMultiEdgeNotAllowed.
	skipExisting bool
}

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order (later overrides earlier).
// Complexity: O(len(opts)).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		weightFn:     constWeight(DefaultEdgeWeight),
		skipExisting: true,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

func constWeight(w float64) func(string, string) float64 {
	return func(string, string) float64 { return w }
}

// pairWeight resolves the edge weight for (u, v) under the graph mode.
func (cfg builderConfig) pairWeight(weighted bool, u, v string) float64 {
	if !weighted {
		return 0
	}

	return cfg.weightFn(u, v)
}
