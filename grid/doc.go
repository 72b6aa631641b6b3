// Package grid splits the padded bounding box of a point set into a fixed
// 3×3 lattice of regions and assigns points to them.
//
// Layout: the lattice is built from the padded maximum corner, so row 0 is
// the northern band, column 0 the eastern band, and (1,1) is the centre.
// Regions are stored flat in row-major order; Index(row, col) = row*3+col.
//
// Containment uses open intervals: a point on a shared border belongs to no
// region. What happens to such points is chosen by a BoundaryPolicy.
package grid
