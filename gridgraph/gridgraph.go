package gridgraph

// NewDense constructs a Dense grid from a non-empty, rectangular 2D slice.
// It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid if values has no rows or no columns,
// ErrNonRectangular if any row length differs, and *InvalidWeightError
// for the first cell (row-major) outside [MinWeight, MaxWeight].
// Complexity: O(R×C) time and memory.
func NewDense(values [][]int) (*Dense, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	rows, cols := len(values), len(values[0])
	for _, row := range values {
		if len(row) != cols {
			return nil, ErrNonRectangular
		}
	}

	cells := make([]int, 0, rows*cols)
	for r, row := range values {
		for c, w := range row {
			if w < MinWeight || w > MaxWeight {
				return nil, &InvalidWeightError{Row: r, Col: c, Weight: w}
			}
		}
		cells = append(cells, row...)
	}

	return &Dense{rows: rows, cols: cols, cells: cells}, nil
}

// Rows returns the number of rows.
func (d *Dense) Rows() int { return d.rows }

// Cols returns the number of columns.
func (d *Dense) Cols() int { return d.cols }

// Weight returns the weight stored at (row, col).
func (d *Dense) Weight(row, col int) int {
	return d.cells[row*d.cols+col]
}

// InBounds reports whether (row, col) lies within g.
// Complexity: O(1).
func InBounds(g Grid, row, col int) bool {
	return row >= 0 && row < g.Rows() && col >= 0 && col < g.Cols()
}

// Index maps (row, col) to a row-major index: row*cols + col.
func Index(g Grid, row, col int) int {
	return row*g.Cols() + col
}

// Coordinate converts a row-major index back to (row, col).
func Coordinate(g Grid, idx int) (row, col int) {
	return idx / g.Cols(), idx % g.Cols()
}
