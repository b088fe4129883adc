package gridgraph

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyGrid indicates the input grid has no rows or no columns.
	ErrEmptyGrid = errors.New("gridgraph: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridgraph: all rows must have the same length")
	// ErrWeightRange indicates a cell weight outside [MinWeight, MaxWeight].
	ErrWeightRange = errors.New("gridgraph: cell weight out of range")
	// ErrBadTileFactor indicates a tile replication factor below 1.
	ErrBadTileFactor = errors.New("gridgraph: tile factor must be at least 1")
	// ErrGridTooLarge indicates an expansion whose row, column or cell count overflows int.
	ErrGridTooLarge = errors.New("gridgraph: expanded grid size overflows int")
)

// InvalidWeightError reports the first cell whose weight falls outside
// [MinWeight, MaxWeight]. It matches ErrWeightRange under errors.Is.
type InvalidWeightError struct {
	Row, Col int
	Weight   int
}

func (e *InvalidWeightError) Error() string {
	return fmt.Sprintf("gridgraph: weight %d at row %d, col %d outside [%d,%d]",
		e.Weight, e.Row, e.Col, MinWeight, MaxWeight)
}

// Unwrap returns ErrWeightRange.
func (e *InvalidWeightError) Unwrap() error { return ErrWeightRange }
