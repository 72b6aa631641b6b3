// SPDX-License-Identifier: MIT
// Package: gridhub/builder
//
// impl_complete.go - implementation of Complete(ids) constructor.
//
// Contract:
//   • ids must be non-empty strings and pairwise distinct (ErrEmptyID / ErrDuplicateID).
//   • Zero or one id is valid and emits no edges (K_0, K_1).
//   • Adds vertices in the given order, then emits each unordered pair {i,j}
//     with i<j exactly once; mirrors j→i only if g.Directed() is true.
//   • Weight policy: if g.Weighted() then cfg.weightFn(u,v) else 0.
//
// Complexity:
//   • Time: O(n) vertices + O(n²) edges emission.
//
// Determinism:
//   • Deterministic pair order: lexicographic by (i,j), i<j over the input order.

package builder

import (
	"github.com/katalvlaran/gridhub/core"
)

// Complete returns a Constructor that builds the complete simple graph over ids.
func Complete(ids []string) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateIDs(MethodComplete, ids, true); err != nil {
			return err
		}
		if err := addVertices(MethodComplete, g, ids); err != nil {
			return err
		}

		directed := g.Directed()
		n := len(ids)
		for i := 0; i < n; i++ {
			u := ids[i]
			for j := i + 1; j < n; j++ {
				v := ids[j]
				if _, err := addPair(MethodComplete, g, cfg, u, v); err != nil {
					return err
				}
				// Directed K_n needs both orientations.
				if directed {
					if _, err := addPair(MethodComplete, g, cfg, v, u); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}
