package dijkstra_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/riskpath/gridgraph"
)

// sampleCave is the 10×10 reference cave: 40 unexpanded, 315 at 5×5 tiles.
var sampleCave = []string{
	"1163751742",
	"1381373672",
	"2136511328",
	"3694931569",
	"7463417111",
	"1319128137",
	"1359912421",
	"3125421639",
	"1293138521",
	"2311944581",
}

// digits converts rows of ASCII digits into weights.
func digits(lines []string) [][]int {
	out := make([][]int, len(lines))
	for r, line := range lines {
		out[r] = make([]int, len(line))
		for c, ch := range line {
			out[r][c] = int(ch - '0')
		}
	}

	return out
}

// mustDense builds a Dense grid or fails the test.
func mustDense(tb testing.TB, values [][]int) *gridgraph.Dense {
	tb.Helper()
	g, err := gridgraph.NewDense(values)
	require.NoError(tb, err)

	return g
}

// funcGrid is a Grid backed by a lookup function, used to inject weights
// that the validating constructors would reject.
type funcGrid struct {
	rows, cols int
	weight     func(r, c int) int
}

func (f funcGrid) Rows() int           { return f.rows }
func (f funcGrid) Cols() int           { return f.cols }
func (f funcGrid) Weight(r, c int) int { return f.weight(r, c) }

// bruteForce enumerates every simple orthogonal path from origin to
// destination and returns the cheapest entry cost. Only for tiny grids.
func bruteForce(g gridgraph.Grid) int64 {
	return bruteForceWalls(g, math.MaxInt)
}

// bruteForceWalls is bruteForce with cells of weight ≥ wall excluded.
// It returns -1 when no path exists.
func bruteForceWalls(g gridgraph.Grid, wall int) int64 {
	rows, cols := g.Rows(), g.Cols()
	if rows == 1 && cols == 1 {
		return 0
	}
	seen := make([]bool, rows*cols)
	best := int64(-1)

	var walk func(r, c int, cost int64)
	walk = func(r, c int, cost int64) {
		if best >= 0 && cost >= best {
			return
		}
		if r == rows-1 && c == cols-1 {
			best = cost
			return
		}
		seen[r*cols+c] = true
		for _, off := range gridgraph.Neighbors4 {
			nr, nc := r+off[0], c+off[1]
			if !gridgraph.InBounds(g, nr, nc) || seen[nr*cols+nc] || g.Weight(nr, nc) >= wall {
				continue
			}
			walk(nr, nc, cost+int64(g.Weight(nr, nc)))
		}
		seen[r*cols+c] = false
	}
	walk(0, 0, 0)

	return best
}
