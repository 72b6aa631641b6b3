package prim_kruskal

// DisjointSet is a union-find structure over string IDs with path compression
// and union by rank. Unknown IDs are added lazily as singletons.
type DisjointSet struct {
	parent map[string]string
	rank   map[string]int
	sets   int
}

// NewDisjointSet creates a DisjointSet with one singleton per id.
func NewDisjointSet(ids []string) *DisjointSet {
	ds := &DisjointSet{
		parent: make(map[string]string, len(ids)),
		rank:   make(map[string]int, len(ids)),
	}
	for _, id := range ids {
		ds.add(id)
	}

	return ds
}

func (ds *DisjointSet) add(id string) {
	if _, ok := ds.parent[id]; ok {
		return
	}
	ds.parent[id] = id
	ds.rank[id] = 0
	ds.sets++
}

// Find returns the representative of id's set.
// Iterative with path halving to avoid deep recursion.
func (ds *DisjointSet) Find(id string) string {
	ds.add(id)
	for ds.parent[id] != id {
		ds.parent[id] = ds.parent[ds.parent[id]]
		id = ds.parent[id]
	}

	return id
}

// Union merges the sets of u and v and reports whether they were distinct.
func (ds *DisjointSet) Union(u, v string) bool {
	ru, rv := ds.Find(u), ds.Find(v)
	if ru == rv {
		return false
	}
	switch {
	case ds.rank[ru] < ds.rank[rv]:
		ds.parent[ru] = rv
	case ds.rank[ru] > ds.rank[rv]:
		ds.parent[rv] = ru
	default:
		ds.parent[rv] = ru
		ds.rank[ru]++
	}
	ds.sets--

	return true
}

// Connected reports whether u and v are in the same set.
func (ds *DisjointSet) Connected(u, v string) bool {
	return ds.Find(u) == ds.Find(v)
}

// Sets returns the current number of disjoint sets.
func (ds *DisjointSet) Sets() int {
	return ds.sets
}
