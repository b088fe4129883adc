package gridgraph

import (
	"fmt"
	"math"
)

// Expand returns a Tiled view of base replicated tileRows×tileCols times.
// The result has base.Rows()*tileRows rows and base.Cols()*tileCols columns;
// the weight at (r, c) is WrapWeight(base weight, r/baseRows + c/baseCols).
//
// Returns ErrEmptyGrid for a nil or empty base, ErrBadTileFactor if
// either factor is below 1, and ErrGridTooLarge if the expanded row count,
// column count or cell count does not fit in an int. Expanding a 1×1 factor yields a grid identical
// to base.
// Complexity: O(1) to build, O(1) per lookup given O(1) base lookups.
func Expand(base Grid, tileRows, tileCols int) (*Tiled, error) {
	if base == nil || base.Rows() < 1 || base.Cols() < 1 {
		return nil, ErrEmptyGrid
	}
	if tileRows < 1 || tileCols < 1 {
		return nil, ErrBadTileFactor
	}
	baseRows, baseCols := base.Rows(), base.Cols()
	if tileRows > math.MaxInt/baseRows || tileCols > math.MaxInt/baseCols {
		return nil, fmt.Errorf("%w: %dx%d tiles of a %dx%d base", ErrGridTooLarge, tileRows, tileCols, baseRows, baseCols)
	}
	if rows, cols := baseRows*tileRows, baseCols*tileCols; rows > math.MaxInt/cols {
		return nil, fmt.Errorf("%w: %dx%d cells", ErrGridTooLarge, rows, cols)
	}

	return &Tiled{
		base:     base,
		baseRows: baseRows,
		baseCols: baseCols,
		tileRows: tileRows,
		tileCols: tileCols,
	}, nil
}

// WrapWeight adds increment to weight w and wraps the sum back into
// [MinWeight, MaxWeight], so 9+1 becomes 1 and 9+9 stays 9.
func WrapWeight(w, increment int) int {
	return (w-1+increment)%MaxWeight + 1
}

// Rows returns the expanded row count.
func (t *Tiled) Rows() int { return t.baseRows * t.tileRows }

// Cols returns the expanded column count.
func (t *Tiled) Cols() int { return t.baseCols * t.tileCols }

// Tiles returns the replication factor the grid was built with.
func (t *Tiled) Tiles() (rows, cols int) { return t.tileRows, t.tileCols }

// Weight computes the weight at (row, col) from the base tile.
func (t *Tiled) Weight(row, col int) int {
	w := t.base.Weight(row%t.baseRows, col%t.baseCols)

	return WrapWeight(w, row/t.baseRows+col/t.baseCols)
}
