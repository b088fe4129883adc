package dijkstra

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/katalvlaran/riskpath/gridgraph"
)

// ShortestPath returns the minimum total entry cost of a 4-directional path
// from (0,0) to (Rows()-1, Cols()-1) in g. The origin's own weight is never
// charged, so a 1×1 grid costs 0.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. g must have at least one row and one column (ErrEmptyGrid).
//  3. rows×cols must fit in an int (ErrGridTooLarge).
//
// During the search a weight ≤ 0 yields ErrNonPositiveWeight, and an exhausted
// frontier yields ErrUnreachable. There is no partial result.
//
// Complexity:
//
//   - Time:  O(N log N), N = Rows()×Cols()
//   - Space: O(N)
func ShortestPath(g gridgraph.Grid, opts ...Option) (int64, error) {
	// 1) Build Options
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate grid
	if g == nil {
		return 0, ErrNilGraph
	}
	rows, cols := g.Rows(), g.Cols()
	if rows < 1 || cols < 1 {
		return 0, ErrEmptyGrid
	}
	if rows > math.MaxInt/cols {
		return 0, fmt.Errorf("%w: %dx%d", ErrGridTooLarge, rows, cols)
	}

	// 3) Run
	r := newRunner(g, cfg)
	cost, err := r.process()
	r.logStats(cost, err)

	return cost, err
}

// runner holds the mutable state for a single solve. It is never reused.
type runner struct {
	g       gridgraph.Grid
	options Options
	rows    int
	cols    int
	// dst is the row-major index of the destination cell.
	dst   int
	store distStore
	pq    nodePQ
	stats searchStats
}

// searchStats counts heap traffic for the debug event.
type searchStats struct {
	pushes    int
	stale     int
	finalized int
}

func newRunner(g gridgraph.Grid, cfg Options) *runner {
	rows, cols := g.Rows(), g.Cols()
	r := &runner{
		g:       g,
		options: cfg,
		rows:    rows,
		cols:    cols,
		dst:     gridgraph.Index(g, rows-1, cols-1),
		store:   newDistStore(cfg.MemoryMode, rows*cols),
	}

	// Distance to the origin is zero; everything else is implicitly infinite.
	r.store.setDist(0, 0)
	heap.Init(&r.pq)
	r.push(0, 0)

	return r
}

// process is the core loop. It pops the cheapest entry, discards it if stale,
// returns its cost if it is the destination, and otherwise finalizes and relaxes it.
func (r *runner) process() (int64, error) {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(nodeItem)

		// Stale entry: the cell was already finalized at a lower cost.
		if r.store.isFinalized(item.idx) {
			r.stats.stale++
			continue
		}
		if item.idx == r.dst {
			return item.dist, nil
		}

		r.store.finalize(item.idx)
		r.stats.finalized++

		if err := r.relax(item.idx, item.dist); err != nil {
			return 0, err
		}
	}

	return 0, fmt.Errorf("%w: (%d,%d) from (0,0) after finalizing %d cells",
		ErrUnreachable, r.rows-1, r.cols-1, r.stats.finalized)
}

// relax examines the orthogonal neighbors of cell u (finalized at cost d) and
// pushes every neighbor whose tentative cost strictly improves.
func (r *runner) relax(u int, d int64) error {
	ur, uc := gridgraph.Coordinate(r.g, u)

	for _, off := range gridgraph.Neighbors4 {
		vr, vc := ur+off[0], uc+off[1]
		if !gridgraph.InBounds(r.g, vr, vc) {
			continue
		}
		v := gridgraph.Index(r.g, vr, vc)
		if r.store.isFinalized(v) {
			continue
		}

		w := r.g.Weight(vr, vc)
		if w <= 0 {
			return fmt.Errorf("%w: weight %d at (%d,%d)", ErrNonPositiveWeight, w, vr, vc)
		}
		if w >= r.options.Impassable {
			continue
		}

		alt := d + int64(w)
		if alt > r.options.MaxDistance {
			continue
		}
		// Strictly better only; equal costs would just add duplicates.
		if cur, ok := r.store.dist(v); ok && alt >= cur {
			continue
		}

		r.store.setDist(v, alt)
		r.push(v, alt)
	}

	return nil
}

func (r *runner) push(idx int, dist int64) {
	heap.Push(&r.pq, nodeItem{idx: idx, dist: dist})
	r.stats.pushes++
}

func (r *runner) logStats(cost int64, err error) {
	ev := r.options.Logger.Debug()
	if !ev.Enabled() {
		return
	}
	ev.Int("rows", r.rows).
		Int("cols", r.cols).
		Stringer("memory", r.options.MemoryMode).
		Int("finalized", r.stats.finalized).
		Int("stale", r.stats.stale).
		Int("pushes", r.stats.pushes).
		Int64("cost", cost).
		AnErr("error", err).
		Msg("dijkstra: search finished")
}

// nodeItem is a heap entry: a cell index and the cost it was pushed with.
type nodeItem struct {
	idx  int   // row-major cell index
	dist int64 // cost from origin at push time
}

// nodePQ is a min-heap of nodeItem ordered by dist ascending.
// When a shorter distance to a cell is found we push a new entry; the outdated
// one stays in the heap and is discarded on pop because its cell is finalized.
type nodePQ []nodeItem

// Len returns the number of items in the heap.
func (pq nodePQ) Len() int { return len(pq) }

// Less defines the comparison: smaller dist → higher priority.
func (pq nodePQ) Less(i, j int) bool { return pq[i].dist < pq[j].dist }

// Swap swaps two elements in the heap.
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap. x must be a nodeItem.
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(nodeItem)) }

// Pop removes and returns the last element; heap.Pop has already moved the minimum there.
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
