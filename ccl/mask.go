package ccl

import (
	"golang.org/x/exp/constraints"
)

// Number is any numeric pixel type a Mask can hold.
type Number interface {
	constraints.Integer | constraints.Float
}

// Mask adapts a rectangular [][]T to Image.
// By default a pixel is foreground when its value is non-zero; see
// WithThreshold and WithInvert. The rows are referenced, not copied, and
// must not change while a labeling call is running.
type Mask[T Number] struct {
	rows, cols int
	values     [][]T
	threshold  float64
	useThresh  bool
	invert     bool
}

// MaskOption configures a Mask.
type MaskOption func(*maskConfig)

type maskConfig struct {
	threshold float64
	useThresh bool
	invert    bool
}

// WithThreshold makes a pixel foreground when float64(value) >= t.
func WithThreshold(t float64) MaskOption {
	return func(c *maskConfig) {
		c.threshold = t
		c.useThresh = true
	}
}

// WithInvert swaps foreground and background.
func WithInvert() MaskOption {
	return func(c *maskConfig) { c.invert = true }
}

// NewMask validates values and wraps them as an Image.
// Returns ErrEmptyImage if there are no rows or no columns and
// ErrNonRectangular if any row length differs from the first.
// Complexity: O(H).
func NewMask[T Number](values [][]T, opts ...MaskOption) (*Mask[T], error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyImage
	}
	w := len(values[0])
	for _, row := range values {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	var cfg maskConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Mask[T]{
		rows:      len(values),
		cols:      w,
		values:    values,
		threshold: cfg.threshold,
		useThresh: cfg.useThresh,
		invert:    cfg.invert,
	}, nil
}

// Dims returns (rows, cols).
func (m *Mask[T]) Dims() (rows, cols int) { return m.rows, m.cols }

// Foreground applies the configured predicate to values[row][col].
func (m *Mask[T]) Foreground(row, col int) bool {
	v := m.values[row][col]
	fg := v != 0
	if m.useThresh {
		fg = float64(v) >= m.threshold
	}

	return fg != m.invert
}

// Bits adapts a flat row-major []bool to Image.
type Bits struct {
	rows, cols int
	fg         []bool
}

// NewBits wraps fg, which must hold exactly rows*cols entries.
// Returns ErrEmptyImage for a zero-area shape and ErrDimensionMismatch
// for a wrong buffer length.
func NewBits(rows, cols int, fg []bool) (*Bits, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrEmptyImage
	}
	if n, ok := area(rows, cols); !ok || n != len(fg) {
		return nil, ErrDimensionMismatch
	}

	return &Bits{rows: rows, cols: cols, fg: fg}, nil
}

// Dims returns (rows, cols).
func (b *Bits) Dims() (rows, cols int) { return b.rows, b.cols }

// Foreground returns fg[row*cols+col].
func (b *Bits) Foreground(row, col int) bool { return b.fg[row*b.cols+col] }
