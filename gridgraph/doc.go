// Package gridgraph treats a rectangular table of risk levels as an implicit
// 4-connected weighted graph, where entering a cell costs its weight.
//
// What:
//
//   - Grid is the weight-lookup contract consumed by shortest-path solvers.
//   - Dense stores a validated, deep-copied [][]int in a row-major slice.
//   - Tiled replicates a base Grid into a larger tile pattern, computing each
//     weight on lookup instead of materializing the expanded table.
//
// Why:
//
//   - Cave and terrain maps where every step into a cell carries a risk cost.
//   - Large repeated maps (5×5 tiles of a 100×100 base is 250 000 cells) that
//     would be wasteful to allocate up front.
//
// Expansion rule:
//
//	w(r, c) = ((base(r mod H, c mod W) - 1 + r div H + c div W) mod 9) + 1
//
// Complexity:
//
//   - NewDense: O(R×C) time and memory.
//   - Expand:   O(1); each Tiled.Weight is O(1).
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrWeightRange (via *InvalidWeightError): a weight outside [1,9].
//   - ErrBadTileFactor: tile factor below 1.
package gridgraph
