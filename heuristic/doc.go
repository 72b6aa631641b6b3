// Package heuristic builds a sparse, degree-bounded candidate graph over
// geographic points with a fixed 3×3 grid.
//
// Pipeline (one Solve call):
//
//  1. grid.Partition: padded bounding box and nine regions.
//  2. grid.Bucket: each point goes to the first region, in row-major order,
//     that strictly contains it.
//  3. One pointgraph per region, promoted to a complete graph.
//  4. Connect: a star from the centre segment's center to every other
//     segment center, or a full mesh over the centers when the centre
//     segment is empty.
//  5. Merge every segment edge into the output graph, which holds all
//     input points as vertices.
//  6. Degree correction down to the configured bound (3 by default).
//
// Recoverable oddities (empty input, border points, empty centre segment)
// are reported in Report rather than returned as errors.
package heuristic
