// Package degree bounds the maximum vertex degree of an undirected
// core.Graph by removing edges in place.
//
// Strategies implement Corrector and are interchangeable:
//
//   - SpanningFirst (default) keeps a minimum spanning forest first, then
//     edges that join still-separate components, then the shortest of the
//     rest. Forest edges are ranked by how many vertices they hold together,
//     so bridges to whole clusters beat short edges to single leaves.
//   - ShortestFirst keeps the shortest edges that fit under the bound.
//
// Both walk candidate edges through a binary heap ordered by weight, then by
// insertion sequence (after spread, for the forest pass), and accept an edge only when both endpoints are still
// below the bound. The result is deterministic for a given graph.
//
// Neither strategy guarantees connectivity: a bound of 1, or a star whose
// hub has more than maxDegree spokes, cannot stay connected.
package degree
