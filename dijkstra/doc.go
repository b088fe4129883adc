// Package dijkstra provides a shortest-path solver for risk grids: the minimum
// total cost to walk from the top-left to the bottom-right cell of a
// gridgraph.Grid, where entering a cell costs its weight.
//
// Overview:
//
//   - Uniform-cost search (Dijkstra) over the implicit 4-connected grid graph.
//     No edges or vertices are materialized; weights are read through the
//     gridgraph.Grid interface, so expanded (tiled) grids cost no extra memory.
//   - A min-heap frontier with lazy decrease-key: improved costs are pushed as
//     new entries and stale entries are skipped when popped.
//   - The search stops as soon as the destination is finalized.
//
// When to use:
//
//   - Cave, terrain or board maps with positive per-cell costs.
//   - Large repeated maps built with gridgraph.Expand.
//
// Key features:
//
//   - Functional options allow fine-tuning behavior without changing the API signature.
//   - MemoryMode: dense slices for full searches, sparse maps when only a small
//     region around the origin is expected to be explored.
//   - MaxDistance: aborts exploration beyond a specified cost.
//   - Impassable: treats any cell with weight ≥ threshold as a wall.
//   - Logger: structured debug statistics through zerolog.
//
// Performance and complexity:
//
//   - Time:  O(N log N), N = rows×cols.
//   - Space: O(N) bookkeeping plus up to 4N heap entries.
//
// Notes on implementation choices:
//
//   - We use a “lazy” decrease-key strategy: pushing duplicates into the heap and ignoring stale entries.
//   - Distances absent from the store are treated as infinite, so only touched cells cost memory in sparse mode.
//   - We treat any cell with weight ≥ Impassable as a wall.
//   - We never push entries whose cost exceeds MaxDistance.
//   - Grids whose cell count overflows int are rejected before any allocation.
//
// Concurrency:
//
//   - Each call owns its state; concurrent calls on the same immutable grid are safe.
//   - There are no cancellation checkpoints; callers needing a deadline run the
//     call in its own goroutine.
//
// Example:
//
//	base, _ := gridgraph.NewDense(values)
//	tiled, _ := gridgraph.Expand(base, 5, 5)
//	cost, err := dijkstra.ShortestPath(tiled)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cost)
package dijkstra
