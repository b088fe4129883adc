// Package dijkstra defines core types and configuration options
// for the grid shortest-path solver.
//
// The solver computes the minimum total entry cost from the top-left cell to
// the bottom-right cell of a gridgraph.Grid, moving orthogonally. Entering a
// cell costs its weight; the origin is never charged.
//
// Complexity:
//
//	– Time:  O(N log N)   where N = rows×cols
//	   • Each cell is finalized at most once.
//	   • Each of the ≤4N relaxations may push one heap entry.
//	– Space: O(N)
//	   • O(N) for tentative distances and the finalized set.
//	   • O(4N) heap entries in the worst case (lazy decrease-key).
//
// Options:
//
//	– MemoryMode:    dense slices (default) or sparse maps for distance bookkeeping.
//	– MaxDistance:   entries costlier than this are never explored.
//	– Impassable:    cells with weight ≥ this threshold cannot be entered.
//	– Logger:        zerolog logger receiving one debug event per solve.
//
// Errors (sentinel):
//
//	– ErrNilGraph          if the provided grid is nil.
//	– ErrEmptyGrid         if the grid has no rows or no columns.
//	– ErrGridTooLarge      if rows×cols overflows int.
//	– ErrNonPositiveWeight if the grid reports a weight ≤ 0.
//	– ErrUnreachable       if the frontier empties before the destination is finalized.
//	– ErrBadMaxDistance    if MaxDistance < 0.
//	– ErrBadImpassable     if Impassable ≤ 0.
package dijkstra

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/rs/zerolog"
)

// Sentinel errors returned by the solver.
var (
	// ErrNilGraph indicates that a nil gridgraph.Grid was passed to ShortestPath.
	ErrNilGraph = errors.New("dijkstra: grid is nil")

	// ErrEmptyGrid indicates a grid with zero rows or zero columns.
	ErrEmptyGrid = errors.New("dijkstra: grid must have at least one row and one column")

	// ErrGridTooLarge indicates a grid whose rows×cols cell count overflows int.
	ErrGridTooLarge = errors.New("dijkstra: grid cell count overflows int")

	// ErrNonPositiveWeight indicates the grid returned a weight ≤ 0, which breaks
	// the non-negativity precondition of the algorithm.
	ErrNonPositiveWeight = errors.New("dijkstra: non-positive cell weight encountered")

	// ErrUnreachable indicates the frontier emptied before the destination was finalized.
	ErrUnreachable = errors.New("dijkstra: destination unreachable")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrBadImpassable indicates that the impassable threshold was zero or negative,
	// which would wall off every cell.
	ErrBadImpassable = errors.New("dijkstra: Impassable threshold must be positive")

	// ErrBadMemoryMode indicates an unrecognized memory mode name.
	ErrBadMemoryMode = errors.New("dijkstra: unknown memory mode")
)

// MemoryMode controls how tentative distances and finalized flags are stored.
//
// MemoryModeDense  – two slices of length rows×cols, allocated up front.
// MemoryModeSparse – maps keyed by cell index, grown only for cells the search touches.
type MemoryMode int

const (
	// MemoryModeDense stores bookkeeping in flat slices indexed row-major.
	MemoryModeDense MemoryMode = iota

	// MemoryModeSparse stores bookkeeping in maps; absent entries are infinite.
	MemoryModeSparse
)

// String returns the lower-case mode name.
func (m MemoryMode) String() string {
	switch m {
	case MemoryModeDense:
		return "dense"
	case MemoryModeSparse:
		return "sparse"
	default:
		return "unknown"
	}
}

// ParseMemoryMode maps "dense" or "sparse" (case-insensitive) to a MemoryMode.
// The empty string selects MemoryModeDense.
func ParseMemoryMode(s string) (MemoryMode, error) {
	switch strings.ToLower(s) {
	case "", "dense":
		return MemoryModeDense, nil
	case "sparse":
		return MemoryModeSparse, nil
	default:
		return MemoryModeDense, fmt.Errorf("%w: %q", ErrBadMemoryMode, s)
	}
}

// Options configures the behavior of the solver.
//
// MemoryMode  – bookkeeping layout. Default MemoryModeDense.
// MaxDistance – entries with cost > MaxDistance are not explored.
//
//	Must be ≥ 0. Default is math.MaxInt64 (no cap).
//
// Impassable  – cells with weight ≥ Impassable are walls.
//
//	Must be > 0. Default is math.MaxInt (no walls).
type Options struct {
	MemoryMode  MemoryMode     // Bookkeeping layout (Dense or Sparse)
	MaxDistance int64          // Maximum cost to explore
	Impassable  int            // Weight threshold at and above which cells cannot be entered
	Logger      zerolog.Logger // Receives one debug event per solve
}

// Option represents a functional option for configuring the solver.
type Option func(*Options)

// WithMemoryMode selects the bookkeeping layout.
func WithMemoryMode(mode MemoryMode) Option {
	return func(o *Options) {
		o.MemoryMode = mode
	}
}

// WithMaxDistance sets a maximum cost threshold.
// Cells whose tentative cost would exceed this value are not explored; if the
// destination lies beyond it, ShortestPath returns ErrUnreachable.
// Must pass a non-negative value; negative values panic with ErrBadMaxDistance.
func WithMaxDistance(max int64) Option {
	return func(o *Options) {
		if max < 0 {
			panic(ErrBadMaxDistance.Error())
		}
		o.MaxDistance = max
	}
}

// WithImpassable marks every cell whose weight is ≥ threshold as a wall.
// Must pass a positive value; zero or negative panic with ErrBadImpassable.
func WithImpassable(threshold int) Option {
	return func(o *Options) {
		if threshold <= 0 {
			panic(ErrBadImpassable.Error())
		}
		o.Impassable = threshold
	}
}

// WithLogger attaches a zerolog logger. The solver emits a single debug event
// with search statistics when it terminates.
func WithLogger(l zerolog.Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}

// DefaultOptions returns an Options struct initialized with defaults:
//   - MemoryMode:  MemoryModeDense.
//   - MaxDistance: math.MaxInt64 (explore everything reachable).
//   - Impassable:  math.MaxInt (no walls).
//   - Logger:      zerolog.Nop().
func DefaultOptions() Options {
	return Options{
		MemoryMode:  MemoryModeDense,
		MaxDistance: math.MaxInt64,
		Impassable:  math.MaxInt,
		Logger:      zerolog.Nop(),
	}
}
