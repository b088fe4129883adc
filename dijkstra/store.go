package dijkstra

// distStore holds tentative distances and finalized flags for one solve.
// A cell with no recorded distance is infinitely far.
type distStore interface {
	dist(idx int) (int64, bool)
	setDist(idx int, d int64)
	isFinalized(idx int) bool
	finalize(idx int)
}

func newDistStore(mode MemoryMode, n int) distStore {
	if mode == MemoryModeSparse {
		return &sparseStore{
			costs: make(map[int]int64),
			done:  make(map[int]struct{}),
		}
	}

	return &denseStore{
		costs: make([]int64, n),
		seen:  make([]bool, n),
		done:  make([]bool, n),
	}
}

// denseStore indexes flat slices by row-major cell index.
type denseStore struct {
	costs []int64
	seen  []bool
	done  []bool
}

func (s *denseStore) dist(idx int) (int64, bool) { return s.costs[idx], s.seen[idx] }

func (s *denseStore) setDist(idx int, d int64) {
	s.costs[idx] = d
	s.seen[idx] = true
}

func (s *denseStore) isFinalized(idx int) bool { return s.done[idx] }

func (s *denseStore) finalize(idx int) { s.done[idx] = true }

// sparseStore only allocates for cells the search reaches.
type sparseStore struct {
	costs map[int]int64
	done  map[int]struct{}
}

func (s *sparseStore) dist(idx int) (int64, bool) {
	d, ok := s.costs[idx]
	return d, ok
}

func (s *sparseStore) setDist(idx int, d int64) { s.costs[idx] = d }

func (s *sparseStore) isFinalized(idx int) bool {
	_, ok := s.done[idx]
	return ok
}

func (s *sparseStore) finalize(idx int) { s.done[idx] = struct{}{} }
