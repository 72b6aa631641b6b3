// Package gridhub builds sparse candidate graphs over geographic points.
//
// The bounding box of the input is padded and cut into a 3×3 lattice of
// regions. Points are bucketed per region, each region becomes a complete
// graph, and the regions are joined either as a star around the centre
// region's hub or, when the centre is empty, as a mesh of the region
// centres. The merged graph is then thinned so that no vertex keeps more
// than three incident edges.
//
// Packages, leaf first:
//
//	geo/          - Point, Edge, OptionalPoint, great-circle distance (s2)
//	core/         - thread-safe in-memory Graph (vertices, weighted edges)
//	builder/      - complete, star and mesh constructors over core.Graph
//	prim_kruskal/ - minimum spanning forests
//	bfs/          - traversal and connected components
//	degree/       - degree correction strategies
//	grid/         - bounds, the 3×3 lattice, boundary policies and bucketing
//	pointgraph/   - point-keyed graph used for segments and the output
//	heuristic/    - the Solver pipeline and its Report
//	observability/ - zap logger, Prometheus collector, OpenTelemetry tracing
//	config/       - YAML + environment configuration
//	cmd/gridhub   - command-line front-end
//
// Quick start:
//
//	g, err := heuristic.Solve(points)
//	if err != nil { ... }
//	for _, e := range g.Edges() { ... }
package gridhub
