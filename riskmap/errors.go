package riskmap

import (
	"errors"
	"fmt"
)

var (
	// ErrNotDigit indicates a character other than '0'–'9' in a grid line.
	ErrNotDigit = errors.New("riskmap: cell is not a decimal digit")
	// ErrLineTooLong indicates a row longer than MaxLineLength bytes.
	ErrLineTooLong = errors.New("riskmap: line exceeds maximum length")
)

// InvalidGridError reports malformed grid text. Line and Col are 1-based.
// Err is one of ErrNotDigit, ErrLineTooLong, gridgraph.ErrNonRectangular or
// gridgraph.ErrEmptyGrid.
type InvalidGridError struct {
	Line, Col int
	Err       error
}

func (e *InvalidGridError) Error() string {
	return fmt.Sprintf("riskmap: line %d, col %d: %v", e.Line, e.Col, e.Err)
}

// Unwrap returns the underlying cause.
func (e *InvalidGridError) Unwrap() error { return e.Err }
