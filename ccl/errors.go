package ccl

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument is the base of every caller-side validation failure.
var ErrInvalidArgument = errors.New("ccl: invalid argument")

var (
	// ErrInvalidConnectivity indicates a connectivity other than 4 or 8.
	ErrInvalidConnectivity = fmt.Errorf("%w: connectivity must be 4 or 8", ErrInvalidArgument)
	// ErrEmptyImage indicates a nil image or one with zero area.
	ErrEmptyImage = fmt.Errorf("%w: image must have at least one row and one column", ErrInvalidArgument)
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = fmt.Errorf("%w: all rows must have the same length", ErrInvalidArgument)
	// ErrNilLabels indicates a nil output grid.
	ErrNilLabels = fmt.Errorf("%w: output labels must not be nil", ErrInvalidArgument)
	// ErrBadShape indicates non-positive dimensions for a new grid.
	ErrBadShape = fmt.Errorf("%w: dimensions must be > 0", ErrInvalidArgument)
	// ErrDimensionMismatch indicates a flat buffer whose length is not rows*cols.
	ErrDimensionMismatch = fmt.Errorf("%w: buffer length does not match dimensions", ErrInvalidArgument)
)

var (
	// ErrAllocation indicates the labeling storage cannot be obtained:
	// rows*cols overflows int, or the worst-case label count overflows L.
	ErrAllocation = errors.New("ccl: cannot allocate label storage")
	// ErrOutOfRange indicates a row or column outside the grid.
	ErrOutOfRange = errors.New("ccl: index out of range")
	// ErrInternal wraps a union-find failure during a scan. It signals a
	// defect, not a recoverable condition.
	ErrInternal = errors.New("ccl: internal labeling error")
)

// labelsErrorf attaches method context and coordinates to a sentinel.
func labelsErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Labels.%s(%d,%d): %w", method, row, col, err)
}
