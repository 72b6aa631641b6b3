// SPDX-License-Identifier: MIT
// Package: gridhub/builder
//
// options.go - functional options for the builder package.
//
// Contract (strict):
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Constructors themselves MUST NOT panic.

package builder

// BuilderOption customizes constructor behavior by mutating a builderConfig
// before construction begins.
type BuilderOption func(*builderConfig)

// WithWeightFn overrides the per-pair weight function. The function must be
// pure (same pair ⇒ same weight) to preserve determinism. Panics on nil.
func WithWeightFn(fn func(u, v string) float64) BuilderOption {
	if fn == nil {
		panic("builder: WithWeightFn(nil)")
	}
	return func(c *builderConfig) {
		c.weightFn = fn
	}
}

// WithConstantWeight prices every pair at w.
func WithConstantWeight(w float64) BuilderOption {
	return func(c *builderConfig) {
		c.weightFn = constWeight(w)
	}
}

// WithStrictPairs makes constructors fail with core.ErrMultiEdgeNotAllowed
// when a pair already carries an edge on a simple graph.
func WithStrictPairs() BuilderOption {
	return func(c *builderConfig) {
		c.skipExisting = false
	}
}
