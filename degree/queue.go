package degree

import (
	"github.com/emirpasic/gods/trees/binaryheap"

	"github.com/katalvlaran/gridhub/core"
)

// compareEdges orders by weight, then by insertion sequence.
func compareEdges(a, b interface{}) int {
	x, y := a.(*core.Edge), b.(*core.Edge)
	switch {
	case x.Weight < y.Weight:
		return -1
	case x.Weight > y.Weight:
		return 1
	}
	sx, sy := x.Seq(), y.Seq()
	switch {
	case sx < sy:
		return -1
	case sx > sy:
		return 1
	}

	return 0
}

func newQueue(edges []*core.Edge) *binaryheap.Heap {
	h := binaryheap.NewWith(compareEdges)
	for _, e := range edges {
		h.Push(e)
	}

	return h
}

// newRankedQueue orders by rank, highest first, then as compareEdges.
func newRankedQueue(edges []*core.Edge, rank map[string]int) *binaryheap.Heap {
	h := binaryheap.NewWith(func(a, b interface{}) int {
		ra, rb := rank[a.(*core.Edge).ID], rank[b.(*core.Edge).ID]
		switch {
		case ra > rb:
			return -1
		case ra < rb:
			return 1
		}

		return compareEdges(a, b)
	})
	for _, e := range edges {
		h.Push(e)
	}

	return h
}

// budget tracks kept edges and per-vertex degree during one pass.
type budget struct {
	max  int
	deg  map[string]int
	kept map[string]struct{}
	peak int
}

func newBudget(max, n int) *budget {
	return &budget{max: max, deg: make(map[string]int, n), kept: make(map[string]struct{})}
}

// fits reports whether e can be kept without exceeding the bound.
// Self-loops never fit.
func (b *budget) fits(e *core.Edge) bool {
	if e.From == e.To {
		return false
	}
	if _, dup := b.kept[e.ID]; dup {
		return false
	}

	return b.deg[e.From] < b.max && b.deg[e.To] < b.max
}

func (b *budget) keep(e *core.Edge) {
	b.kept[e.ID] = struct{}{}
	b.deg[e.From]++
	b.deg[e.To]++
	for _, d := range [2]int{b.deg[e.From], b.deg[e.To]} {
		if d > b.peak {
			b.peak = d
		}
	}
}

// apply removes every edge not kept and reports the pass.
func (b *budget) apply(g *core.Graph) Result {
	removed := g.FilterEdges(func(e *core.Edge) bool {
		_, ok := b.kept[e.ID]
		return ok
	})

	return Result{Kept: len(b.kept), Removed: removed, MaxDegree: b.peak}
}

func validate(g *core.Graph, maxDegree int) error {
	if g == nil {
		return ErrNilGraph
	}
	if maxDegree < 1 {
		return ErrInvalidMaxDegree
	}
	if g.Directed() || g.HasDirectedEdges() {
		return ErrDirectedGraph
	}

	return nil
}
