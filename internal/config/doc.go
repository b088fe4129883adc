// Package config describes solve jobs: which risk map to read, how many
// tiles to expand it into and which bookkeeping mode the solver uses.
//
// Jobs come either from the command line (see Defaults) or from an HCL file:
//
//	job "part1" {
//	  input = "input.txt"
//	}
//
//	job "part2" {
//	  input     = "input.txt"
//	  tile_rows = 5
//	  tile_cols = 5
//	  memory    = "sparse"
//	}
//
// Relative input paths are resolved against the directory of the HCL file.
package config
