package degree

import "github.com/katalvlaran/gridhub/core"

// ShortestFirst greedily keeps the lightest edges that fit under the bound.
type ShortestFirst struct{}

// Correct implements Corrector.
// Complexity: O(E log E).
func (ShortestFirst) Correct(g *core.Graph, maxDegree int) (Result, error) {
	if err := validate(g, maxDegree); err != nil {
		return Result{}, err
	}

	b := newBudget(maxDegree, g.VertexCount())
	q := newQueue(g.Edges())
	for {
		item, ok := q.Pop()
		if !ok {
			break
		}
		if e := item.(*core.Edge); b.fits(e) {
			b.keep(e)
		}
	}

	return b.apply(g), nil
}
