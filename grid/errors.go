package grid

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedInput is the parent of every input-shape error. Callers
	// match it with errors.Is to distinguish bad input from search outcomes.
	ErrMalformedInput = errors.New("grid: malformed input")
	// ErrEmptyGrid indicates the input has no rows or no columns.
	ErrEmptyGrid = fmt.Errorf("%w: grid must have at least one row and one column", ErrMalformedInput)
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = fmt.Errorf("%w: all rows must have the same length", ErrMalformedInput)
	// ErrMarkerNotFound indicates a required marker cell is missing.
	ErrMarkerNotFound = fmt.Errorf("%w: marker not found", ErrMalformedInput)
	// ErrOutOfBounds is the panic value of At and Set for invalid positions.
	// It signals a broken invariant in the caller, never bad input.
	ErrOutOfBounds = errors.New("grid: position out of bounds")
)
