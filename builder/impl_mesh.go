// SPDX-License-Identifier: MIT
// Package: gridhub/builder
//
// impl_mesh.go - implementation of Mesh(ids) constructor.
//
// Contract:
//   - ids must be non-empty and pairwise distinct.
//   - Inserts every ORDERED pair (ids[i], ids[j]), i≠j, in nested-loop order.
//     On a simple undirected graph the second orientation of each pair finds
//     the edge already present and is skipped (see WithStrictPairs to fail instead);
//     on a directed graph both orientations are real edges; on a multigraph
//     each unordered pair is stored twice.
//
// Complexity:
//   - Time: O(n²) insertions.

package builder

import (
	"github.com/katalvlaran/gridhub/core"
)

// Mesh returns a Constructor building the full mesh over ids.
func Mesh(ids []string) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateIDs(MethodMesh, ids, true); err != nil {
			return err
		}
		if err := addVertices(MethodMesh, g, ids); err != nil {
			return err
		}

		for i := range ids {
			for j := range ids {
				if i == j {
					continue
				}
				if _, err := addPair(MethodMesh, g, cfg, ids[i], ids[j]); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
