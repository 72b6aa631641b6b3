// Package pointgraph is the graph collaborator of the grid heuristic: an
// undirected, weighted graph whose vertices are geographic points.
//
// The vertex set is fixed by New (input order, duplicate coordinates
// collapsed to one vertex). Edges connect known points only, carry their
// great-circle length in metres as weight, and are stored in a core.Graph
// keyed by geo.Point.Key.
//
// Operations
//
//	New(points)                 vertices, no edges
//	AddEdge(e) (bool, error)    false for loops and already-present pairs
//	Edges()                     insertion order
//	Center()                    vertex nearest the centroid, or None
//	MakeComplete()              K_n over the vertices (builder.Complete)
//	Star(hub, leaves)           spokes leaf→hub (builder.Star)
//	Mesh(points)                ordered-pair mesh (builder.Mesh)
//	CorrectDegree(max, c)       bound every degree via a degree.Corrector
package pointgraph
