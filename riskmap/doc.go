// Package riskmap reads risk maps: plain-text grids where every line is a row
// and every character a single-digit risk level.
//
//	1163751742
//	1381373672
//	2136511328
//
// Parse rejects malformed text (ragged rows, non-digit characters, empty
// input) with *InvalidGridError pointing at the 1-based line and column.
// Load and LoadFile additionally build a validated gridgraph.Dense, which in
// turn rejects the digit 0 with *gridgraph.InvalidWeightError.
package riskmap
