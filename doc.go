// Package riskpath finds the lowest-risk route through a cave.
//
// A cave is a rectangular map of risk levels 1–9. Walking from the top-left
// to the bottom-right corner, one orthogonal step at a time, costs the sum of
// the risk levels of every cell entered; the starting cell is free.
//
// Under the hood, everything is organized under a few subpackages:
//
//	gridgraph/ — the Grid weight-lookup contract, a validated Dense grid and
//	             the lazily computed Tiled expansion
//	dijkstra/  — uniform-cost search over a Grid with lazy decrease-key
//	riskmap/   — parsing digit-per-cell text maps with positional errors
//	cmd/riskpath — command-line driver solving the map as read and expanded
//
// Quick example:
//
//	base, _ := riskmap.LoadFile("input.txt")
//	tiled, _ := gridgraph.Expand(base, 5, 5)
//	cost, _ := dijkstra.ShortestPath(tiled)
//
//	go install github.com/katalvlaran/riskpath/cmd/riskpath@latest
package riskpath
