// SPDX-License-Identifier: MIT
// Package: gridhub/builder
//
// impl_star.go - implementation of Star(hub, leaves) constructor.
//
// Contract:
//   - hub and every leaf must be non-empty (ErrEmptyID).
//   - Leaves equal to hub are skipped (no self-loop spoke).
//   - Emits spokes in stable order leaf[i] → hub. For directed graphs,
//     also emits hub → leaf[i] to preserve spoke symmetry.
//   - Weight policy: if g.Weighted() then cfg.weightFn(leaf, hub) else 0.
//   - An empty leaf list is valid and only registers the hub.
//
// Complexity:
//   - Time: O(n) vertices + O(n) edges.

package builder

import (
	"fmt"

	"github.com/katalvlaran/gridhub/core"
)

// Star returns a Constructor connecting every leaf to hub.
func Star(hub string, leaves []string) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if hub == "" {
			return fmt.Errorf("%s: hub: %w", MethodStar, ErrEmptyID)
		}
		if err := validateIDs(MethodStar, leaves, false); err != nil {
			return err
		}
		if err := g.AddVertex(hub); err != nil {
			return fmt.Errorf("%s: AddVertex(%s): %w", MethodStar, hub, err)
		}

		directed := g.Directed()
		for _, leaf := range leaves {
			if leaf == hub {
				continue
			}
			if _, err := addPair(MethodStar, g, cfg, leaf, hub); err != nil {
				return err
			}
			if directed {
				if _, err := addPair(MethodStar, g, cfg, hub, leaf); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
