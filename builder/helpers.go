package builder

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/gridhub/core"
)

// addPair inserts u–v with the configured weight, honoring skipExisting.
// It returns whether a new edge was created.
func addPair(method string, g *core.Graph, cfg builderConfig, u, v string) (bool, error) {
	if cfg.skipExisting && !g.Multigraph() && g.HasEdge(u, v) {
		return false, nil
	}
	w := cfg.pairWeight(g.Weighted(), u, v)
	if _, err := g.AddEdge(u, v, w); err != nil {
		if cfg.skipExisting && errors.Is(err, core.ErrMultiEdgeNotAllowed) {
			// lost a race with a concurrent writer on the same pair
			return false, nil
		}
		return false, fmt.Errorf("%s: AddEdge(%s→%s, w=%g): %w", method, u, v, w, err)
	}

	return true, nil
}

// addVertices registers ids in order; core.AddVertex is idempotent.
func addVertices(method string, g *core.Graph, ids []string) error {
	for _, id := range ids {
		if err := g.AddVertex(id); err != nil {
			return fmt.Errorf("%s: AddVertex(%s): %w", method, id, err)
		}
	}

	return nil
}
