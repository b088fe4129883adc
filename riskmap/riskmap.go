package riskmap

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/multierr"

	"github.com/katalvlaran/riskpath/gridgraph"
)

// MaxLineLength is the longest row, in bytes, Parse accepts.
const MaxLineLength = 1 << 20

// Parse reads a grid of single-digit weights, one row per line.
// CRLF line endings and trailing blank lines are tolerated; a blank line
// between rows is a ragged row. A row longer than MaxLineLength bytes is
// reported as ErrLineTooLong.
//
// Digits are returned as-is, including 0; range checks belong to
// gridgraph.NewDense.
func Parse(r io.Reader) ([][]int, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	// +2 leaves room for a CRLF terminator on a maximal row.
	sc.Buffer(make([]byte, 0, 64*1024), MaxLineLength+2)
	for sc.Scan() {
		line := strings.TrimRight(sc.Text(), "\r")
		if len(line) > MaxLineLength {
			return nil, &InvalidGridError{Line: len(lines) + 1, Col: MaxLineLength + 1, Err: ErrLineTooLong}
		}
		lines = append(lines, line)
	}
	if err := sc.Err(); err != nil {
		if errors.Is(err, bufio.ErrTooLong) {
			return nil, &InvalidGridError{Line: len(lines) + 1, Col: MaxLineLength + 1, Err: ErrLineTooLong}
		}
		return nil, fmt.Errorf("riskmap: read: %w", err)
	}
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	if len(lines) == 0 {
		return nil, &InvalidGridError{Line: 1, Col: 1, Err: gridgraph.ErrEmptyGrid}
	}

	width := len(lines[0])
	grid := make([][]int, len(lines))
	for i, line := range lines {
		if len(line) != width {
			col := width + 1
			if len(line) < width {
				col = len(line) + 1
			}
			return nil, &InvalidGridError{Line: i + 1, Col: col, Err: gridgraph.ErrNonRectangular}
		}
		row := make([]int, width)
		for j := 0; j < width; j++ {
			ch := line[j]
			if ch < '0' || ch > '9' {
				return nil, &InvalidGridError{Line: i + 1, Col: j + 1, Err: ErrNotDigit}
			}
			row[j] = int(ch - '0')
		}
		grid[i] = row
	}

	return grid, nil
}

// Load parses r and builds a validated Dense grid.
func Load(r io.Reader) (*gridgraph.Dense, error) {
	values, err := Parse(r)
	if err != nil {
		return nil, err
	}

	return gridgraph.NewDense(values)
}

// LoadFile opens path and returns its Dense grid. Errors from closing the
// file are merged into the returned error.
func LoadFile(path string) (g *gridgraph.Dense, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("riskmap: %w", err)
	}
	defer func() {
		err = multierr.Append(err, f.Close())
	}()

	g, err = Load(f)
	if err != nil {
		return nil, fmt.Errorf("riskmap: %s: %w", path, err)
	}

	return g, nil
}
