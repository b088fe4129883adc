// Package dijkstra_test contains unit tests for the grid solver. They cover
// input validation, the reference scenarios, brute-force cross-validation on
// small grids, and the MaxDistance, Impassable and MemoryMode options.
package dijkstra_test

import (
	"bytes"
	"math"
	"math/rand"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/riskpath/dijkstra"
	"github.com/katalvlaran/riskpath/gridgraph"
)

// ------------------------------------------------------------------------
// 1. Validation Tests: Ensure errors are returned for invalid inputs.
// ------------------------------------------------------------------------

func TestShortestPath_NilGrid(t *testing.T) {
	_, err := dijkstra.ShortestPath(nil)
	if err != dijkstra.ErrNilGraph {
		t.Fatalf("Expected ErrNilGraph, got %v", err)
	}
}

func TestShortestPath_EmptyGrid(t *testing.T) {
	for _, g := range []funcGrid{{rows: 0, cols: 3}, {rows: 2, cols: 0}} {
		g.weight = func(int, int) int { return 1 }
		_, err := dijkstra.ShortestPath(g)
		if err != dijkstra.ErrEmptyGrid {
			t.Fatalf("%dx%d: expected ErrEmptyGrid, got %v", g.rows, g.cols, err)
		}
	}
}

func TestShortestPath_CellCountOverflow(t *testing.T) {
	// A custom Grid whose rows×cols wraps around must be rejected, not indexed.
	for _, g := range []funcGrid{
		{rows: math.MaxInt, cols: 2},
		{rows: math.MaxInt / 2, cols: math.MaxInt / 2},
	} {
		g.weight = func(int, int) int { return 1 }
		_, err := dijkstra.ShortestPath(g)
		require.ErrorIsf(t, err, dijkstra.ErrGridTooLarge, "%dx%d", g.rows, g.cols)
	}
}

func TestShortestPath_OverflowingExpansionRejected(t *testing.T) {
	base := mustDense(t, [][]int{{1}})
	_, err := gridgraph.Expand(base, math.MaxInt/2, math.MaxInt/2)
	require.ErrorIs(t, err, gridgraph.ErrGridTooLarge)
}

func TestShortestPath_NonPositiveWeight(t *testing.T) {
	// A custom Grid bypasses the constructor checks; the solver must not loop or
	// return a bogus cost.
	g := funcGrid{rows: 2, cols: 2, weight: func(r, c int) int {
		if r == 1 && c == 1 {
			return 0
		}
		return 1
	}}
	_, err := dijkstra.ShortestPath(g)
	require.ErrorIs(t, err, dijkstra.ErrNonPositiveWeight)
}

func TestOptions_PanicOnBadValues(t *testing.T) {
	g := mustDense(t, [][]int{{1, 2}})
	assert.PanicsWithValue(t, dijkstra.ErrBadMaxDistance.Error(), func() {
		_, _ = dijkstra.ShortestPath(g, dijkstra.WithMaxDistance(-1))
	})
	assert.PanicsWithValue(t, dijkstra.ErrBadImpassable.Error(), func() {
		_, _ = dijkstra.ShortestPath(g, dijkstra.WithImpassable(0))
	})
}

// ------------------------------------------------------------------------
// 2. Basic Functionality: small hand-checked grids.
// ------------------------------------------------------------------------

func TestShortestPath_SingleCell(t *testing.T) {
	g := mustDense(t, [][]int{{7}})
	cost, err := dijkstra.ShortestPath(g)
	require.NoError(t, err)
	assert.Equal(t, int64(0), cost)

	// The origin is never entered, so walling it off changes nothing.
	cost, err = dijkstra.ShortestPath(g, dijkstra.WithImpassable(1))
	require.NoError(t, err)
	assert.Equal(t, int64(0), cost)
}

func TestShortestPath_TwoByTwo(t *testing.T) {
	// Right-then-down enters 2 and 4 (6); down-then-right enters 3 and 4 (7).
	g := mustDense(t, [][]int{
		{1, 2},
		{3, 4},
	})
	cost, err := dijkstra.ShortestPath(g)
	require.NoError(t, err)
	assert.Equal(t, int64(6), cost)
}

func TestShortestPath_Row(t *testing.T) {
	g := mustDense(t, [][]int{{1, 2, 3, 4, 5}})
	cost, err := dijkstra.ShortestPath(g)
	require.NoError(t, err)
	assert.Equal(t, int64(14), cost)
}

func TestShortestPath_DetourUpwards(t *testing.T) {
	// Cheapest route: down, right, up, right, down (14). Any route through a 9 costs ≥ 16.
	g := mustDense(t, [][]int{
		{1, 9, 1, 1, 1},
		{1, 9, 1, 9, 1},
		{1, 9, 1, 9, 1},
		{1, 1, 1, 9, 1},
		{9, 9, 9, 9, 1},
	})
	cost, err := dijkstra.ShortestPath(g)
	require.NoError(t, err)
	assert.Equal(t, int64(14), cost)
	assert.Equal(t, bruteForce(g), cost)
}

// ------------------------------------------------------------------------
// 3. Options: Impassable, MaxDistance, Logger.
// ------------------------------------------------------------------------

func TestShortestPath_ImpassableWallsOffDestination(t *testing.T) {
	g := mustDense(t, [][]int{
		{1, 9},
		{9, 1},
	})
	cost, err := dijkstra.ShortestPath(g)
	require.NoError(t, err)
	assert.Equal(t, int64(10), cost)

	_, err = dijkstra.ShortestPath(g, dijkstra.WithImpassable(9))
	require.ErrorIs(t, err, dijkstra.ErrUnreachable)
}

func TestShortestPath_ImpassableMatchesBruteForce(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	var reached, walled int
	for i := 0; i < 80; i++ {
		rows, cols := rng.Intn(3)+2, rng.Intn(3)+2
		values := make([][]int, rows)
		for r := range values {
			values[r] = make([]int, cols)
			for c := range values[r] {
				values[r][c] = rng.Intn(9) + 1
			}
		}
		g := mustDense(t, values)
		want := bruteForceWalls(g, 7)

		got, err := dijkstra.ShortestPath(g, dijkstra.WithImpassable(7))
		if want < 0 {
			require.ErrorIsf(t, err, dijkstra.ErrUnreachable, "grid %v", values)
			walled++
			continue
		}
		require.NoError(t, err)
		require.Equalf(t, want, got, "grid %v", values)
		reached++
	}
	// Both branches must have been exercised for the test to mean anything.
	assert.Positive(t, reached)
	assert.Positive(t, walled)
}

func TestShortestPath_MaxDistance(t *testing.T) {
	g := mustDense(t, digits(sampleCave))

	cost, err := dijkstra.ShortestPath(g, dijkstra.WithMaxDistance(40))
	require.NoError(t, err)
	assert.Equal(t, int64(40), cost)

	_, err = dijkstra.ShortestPath(g, dijkstra.WithMaxDistance(39))
	require.ErrorIs(t, err, dijkstra.ErrUnreachable)
}

func TestShortestPath_LoggerReceivesStats(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf).Level(zerolog.DebugLevel)
	g := mustDense(t, digits(sampleCave))

	_, err := dijkstra.ShortestPath(g, dijkstra.WithLogger(logger))
	require.NoError(t, err)
	out := buf.String()
	assert.Contains(t, out, `"cost":40`)
	assert.Contains(t, out, `"memory":"dense"`)
	assert.Contains(t, out, `"finalized":`)

	// Above debug nothing is written.
	buf.Reset()
	_, err = dijkstra.ShortestPath(g, dijkstra.WithLogger(logger.Level(zerolog.InfoLevel)))
	require.NoError(t, err)
	assert.Empty(t, buf.String())
}

// ------------------------------------------------------------------------
// 4. Cross-validation against exhaustive search.
// ------------------------------------------------------------------------

func TestShortestPath_MatchesBruteForce(t *testing.T) {
	rng := rand.New(rand.NewSource(15))
	for i := 0; i < 60; i++ {
		rows, cols := rng.Intn(4)+1, rng.Intn(4)+1
		values := make([][]int, rows)
		for r := range values {
			values[r] = make([]int, cols)
			for c := range values[r] {
				values[r][c] = rng.Intn(9) + 1
			}
		}
		g := mustDense(t, values)
		want := bruteForce(g)
		for _, mode := range []dijkstra.MemoryMode{dijkstra.MemoryModeDense, dijkstra.MemoryModeSparse} {
			got, err := dijkstra.ShortestPath(g, dijkstra.WithMemoryMode(mode))
			require.NoError(t, err)
			require.Equalf(t, want, got, "grid %v mode %s", values, mode)
		}
	}
}

func TestShortestPath_ExpandedMatchesBruteForce(t *testing.T) {
	base := mustDense(t, [][]int{
		{8, 1},
		{2, 9},
	})
	tiled, err := gridgraph.Expand(base, 2, 2)
	require.NoError(t, err)

	got, err := dijkstra.ShortestPath(tiled)
	require.NoError(t, err)
	assert.Equal(t, bruteForce(tiled), got)
}

// ------------------------------------------------------------------------
// 5. Reference scenarios.
// ------------------------------------------------------------------------

// SampleCaveSuite runs the 10×10 reference cave in every configuration.
type SampleCaveSuite struct {
	suite.Suite
	base *gridgraph.Dense
}

func (s *SampleCaveSuite) SetupTest() {
	s.base = mustDense(s.T(), digits(sampleCave))
}

// TestUnexpanded verifies the 10×10 answer.
func (s *SampleCaveSuite) TestUnexpanded() {
	cost, err := dijkstra.ShortestPath(s.base)
	s.Require().NoError(err)
	s.Require().Equal(int64(40), cost)
}

// TestExpanded verifies the 50×50 answer at 5×5 tiles.
func (s *SampleCaveSuite) TestExpanded() {
	tiled, err := gridgraph.Expand(s.base, 5, 5)
	s.Require().NoError(err)
	cost, err := dijkstra.ShortestPath(tiled)
	s.Require().NoError(err)
	s.Require().Equal(int64(315), cost)
}

// TestIdentityExpansion checks a 1×1 expansion solves like the base grid.
func (s *SampleCaveSuite) TestIdentityExpansion() {
	tiled, err := gridgraph.Expand(s.base, 1, 1)
	s.Require().NoError(err)
	cost, err := dijkstra.ShortestPath(tiled)
	s.Require().NoError(err)
	s.Require().Equal(int64(40), cost)
}

// TestExpansionNeverCheaper checks the expanded cost is at least the base cost.
func (s *SampleCaveSuite) TestExpansionNeverCheaper() {
	baseCost, err := dijkstra.ShortestPath(s.base)
	s.Require().NoError(err)
	for tiles := 1; tiles <= 5; tiles++ {
		tiled, err := gridgraph.Expand(s.base, tiles, tiles)
		s.Require().NoError(err)
		cost, err := dijkstra.ShortestPath(tiled)
		s.Require().NoError(err)
		s.GreaterOrEqual(cost, baseCost, "tiles=%d", tiles)
	}
}

// TestDeterministicAcrossModes repeats the expanded solve in both memory modes.
func (s *SampleCaveSuite) TestDeterministicAcrossModes() {
	tiled, err := gridgraph.Expand(s.base, 5, 5)
	s.Require().NoError(err)
	for i := 0; i < 3; i++ {
		for _, mode := range []dijkstra.MemoryMode{dijkstra.MemoryModeDense, dijkstra.MemoryModeSparse} {
			cost, err := dijkstra.ShortestPath(tiled, dijkstra.WithMemoryMode(mode))
			s.Require().NoError(err)
			s.Require().Equal(int64(315), cost, "run %d mode %s", i, mode)
		}
	}
}

func TestSampleCaveSuite(t *testing.T) {
	suite.Run(t, new(SampleCaveSuite))
}

func TestParseMemoryMode(t *testing.T) {
	cases := map[string]dijkstra.MemoryMode{
		"":       dijkstra.MemoryModeDense,
		"dense":  dijkstra.MemoryModeDense,
		"Sparse": dijkstra.MemoryModeSparse,
	}
	for in, want := range cases {
		got, err := dijkstra.ParseMemoryMode(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
		if in != "" {
			assert.Equal(t, strings.ToLower(in), got.String())
		}
	}

	_, err := dijkstra.ParseMemoryMode("compact")
	assert.ErrorIs(t, err, dijkstra.ErrBadMemoryMode)
}
