package gridgraph

// Weight bounds for every cell of a Grid.
const (
	MinWeight = 1
	MaxWeight = 9
)

// Grid is a read-only rectangular table of cell weights.
//
// Implementations must return a weight in [MinWeight, MaxWeight] for every
// 0 ≤ row < Rows(), 0 ≤ col < Cols(). Behavior outside those bounds is undefined.
type Grid interface {
	Rows() int
	Cols() int
	Weight(row, col int) int
}

// Dense is a Grid backed by an in-memory row-major slice. It is immutable once built.
type Dense struct {
	rows, cols int
	cells      []int
}

// Tiled is a Grid computed on lookup from a base Grid repeated
// tileRows×tileCols times, each tile incremented by its tile-row plus
// tile-column index and wrapped back into [MinWeight, MaxWeight].
// No expanded cells are materialized.
type Tiled struct {
	base               Grid
	baseRows, baseCols int
	tileRows, tileCols int
}

// Compile-time interface checks.
var (
	_ Grid = (*Dense)(nil)
	_ Grid = (*Tiled)(nil)
)

// Neighbors4 lists orthogonal (row, col) offsets in N, W, E, S order.
var Neighbors4 = [4][2]int{{-1, 0}, {0, -1}, {0, 1}, {1, 0}}
