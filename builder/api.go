// SPDX-License-Identifier: MIT
// Package: gridhub/builder
//
// api.go - thin public entry-points for the builder package.
//
// Design contract (strict):
//   - BuildGraph(gopts, bopts, cons...) creates g, resolves cfg, runs cons in order.
//   - Apply(g, bopts, cons...) runs constructors against an existing graph; this is
//     how segment graphs and the merged output graph receive their topology.
//   - Functional options (BuilderOption) resolve into an immutable builderConfig.
//   - Determinism: same inputs/options and constructor order ⇒ identical graphs.
//   - Safety: never panic at runtime; return sentinel errors from constructors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/gridhub/core"
)

// Constructor applies a deterministic graph mutation using the resolved
// builderConfig. Constructors MUST:
//   - Validate parameters early and return sentinel errors (no panics).
//   - Respect core graph mode flags (directed/loops/multigraph/weighted).
//   - Preserve determinism for the same config and call order.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates a new core.Graph with graph options gopts, resolves the
// builder configuration from bopts, and applies all constructors in order.
// Any constructor error is wrapped with the context "BuildGraph: %w" and
// returned immediately; no partial cleanup is attempted.
//
// Complexity:
//   - Resolving options: O(len(bopts)).
//   - Applying K constructors: Σ cost of each constructor.
func BuildGraph(gopts []core.GraphOption, bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph(gopts...)
	if err := apply(g, newBuilderConfig(bopts...), cons); err != nil {
		return nil, fmt.Errorf("BuildGraph: %w", err)
	}

	return g, nil
}

// Apply resolves bopts and runs cons in order against an existing graph g.
// Vertices and edges already present in g are kept; constructors only add.
//
// Errors:
//   - ErrNilGraph if g is nil.
//   - ErrConstructFailed for a nil constructor.
//   - Any constructor error, wrapped with "Apply: %w".
func Apply(g *core.Graph, bopts []BuilderOption, cons ...Constructor) error {
	if g == nil {
		return fmt.Errorf("Apply: %w", ErrNilGraph)
	}
	if err := apply(g, newBuilderConfig(bopts...), cons); err != nil {
		return fmt.Errorf("Apply: %w", err)
	}

	return nil
}

func apply(g *core.Graph, cfg builderConfig, cons []Constructor) error {
	for i, fn := range cons {
		if fn == nil {
			return fmt.Errorf("nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return err
		}
	}

	return nil
}

// =============================================================================
// Topology factories (declarations) - implemented in impl_*.go
// =============================================================================
//
// Each factory receives explicit vertex IDs, emits edges in a stable documented
// order and weighs every pair through cfg.weightFn when the graph is weighted.

// Complete builds K_n over ids (every unordered pair once).
// Complexity: O(n) vertices + O(n^2) edges.
//func Complete(ids []string) Constructor

// Star connects every leaf to hub (hub ∉ leaves; duplicates skipped).
// Complexity: O(n) edges.
//func Star(hub string, leaves []string) Constructor

// Mesh inserts every ordered pair (i,j), i≠j, over ids; the reverse insertion
// is a no-op on simple undirected graphs.
// Complexity: O(n^2) insertions.
//func Mesh(ids []string) Constructor
