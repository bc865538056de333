package ccl

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/lvlabel/unionfind"
)

// ---------- error context tags ----------

const (
	ctxAt  = "At"
	ctxSet = "Set"
)

// Labels is a row-major label image: 0 is background, 1..K are components.
// The zero value is an empty 0×0 grid, ready to be filled by
// ConnectedComponents.
type Labels[L unionfind.Label] struct {
	rows, cols int
	data       []L // len == rows*cols, offset = row*cols + col
}

var (
	_ Image        = (*Labels[int32])(nil)
	_ fmt.Stringer = (*Labels[int32])(nil)
)

// NewLabels returns a zeroed rows×cols label grid.
// Returns ErrBadShape unless rows>0 and cols>0.
// Complexity: O(rows*cols).
func NewLabels[L unionfind.Label](rows, cols int) (*Labels[L], error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrBadShape
	}
	if _, ok := area(rows, cols); !ok {
		return nil, ErrAllocation
	}

	return &Labels[L]{rows: rows, cols: cols, data: make([]L, rows*cols)}, nil
}

// LabelsFrom wraps an existing row-major buffer without copying.
// Returns ErrBadShape for non-positive dimensions and ErrDimensionMismatch
// if len(data) != rows*cols.
func LabelsFrom[L unionfind.Label](rows, cols int, data []L) (*Labels[L], error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrBadShape
	}
	if n, ok := area(rows, cols); !ok || n != len(data) {
		return nil, ErrDimensionMismatch
	}

	return &Labels[L]{rows: rows, cols: cols, data: data}, nil
}

// Rows returns the number of rows.
func (m *Labels[L]) Rows() int { return m.rows }

// Cols returns the number of columns.
func (m *Labels[L]) Cols() int { return m.cols }

// Dims returns (rows, cols); with Foreground it makes Labels an Image.
func (m *Labels[L]) Dims() (rows, cols int) { return m.rows, m.cols }

// Foreground reports whether the label at (row, col) is non-background.
func (m *Labels[L]) Foreground(row, col int) bool {
	return m.data[row*m.cols+col] != unionfind.Background
}

// indexOf computes the flat offset for (row, col) or returns ErrOutOfRange.
func (m *Labels[L]) indexOf(method string, row, col int) (int, error) {
	if row < 0 || row >= m.rows || col < 0 || col >= m.cols {
		return 0, labelsErrorf(method, row, col, ErrOutOfRange)
	}

	return row*m.cols + col, nil
}

// At returns the label at (row, col).
// Complexity: O(1).
func (m *Labels[L]) At(row, col int) (L, error) {
	idx, err := m.indexOf(ctxAt, row, col)
	if err != nil {
		return 0, err
	}

	return m.data[idx], nil
}

// Set stores v at (row, col).
// Complexity: O(1).
func (m *Labels[L]) Set(row, col int, v L) error {
	idx, err := m.indexOf(ctxSet, row, col)
	if err != nil {
		return err
	}
	m.data[idx] = v

	return nil
}

// Row returns row r as a slice aliasing the grid, or nil if r is out of range.
func (m *Labels[L]) Row(r int) []L {
	if r < 0 || r >= m.rows {
		return nil
	}

	return m.data[r*m.cols : (r+1)*m.cols]
}

// Data returns the flat row-major buffer. It aliases the grid.
func (m *Labels[L]) Data() []L { return m.data }

// Reset reshapes m to rows×cols and zeroes it, reusing the buffer when it
// is large enough.
// Returns ErrBadShape for non-positive dimensions and ErrAllocation if
// rows*cols overflows int.
func (m *Labels[L]) Reset(rows, cols int) error {
	if rows <= 0 || cols <= 0 {
		return ErrBadShape
	}
	n, ok := area(rows, cols)
	if !ok {
		return ErrAllocation
	}
	if cap(m.data) >= n {
		m.data = m.data[:n]
		clear(m.data)
	} else {
		m.data = make([]L, n)
	}
	m.rows, m.cols = rows, cols

	return nil
}

// Clone returns a deep copy of m.
// Complexity: O(rows*cols).
func (m *Labels[L]) Clone() *Labels[L] {
	data := make([]L, len(m.data))
	copy(data, m.data)

	return &Labels[L]{rows: m.rows, cols: m.cols, data: data}
}

// Equal reports whether m and o have the same shape and labels.
func (m *Labels[L]) Equal(o *Labels[L]) bool {
	if m.rows != o.rows || m.cols != o.cols {
		return false
	}
	for i, v := range m.data {
		if o.data[i] != v {
			return false
		}
	}

	return true
}

// String renders one bracketed row per line, e.g. "[1, 0, 2]\n".
func (m *Labels[L]) String() string {
	var sb strings.Builder
	for r := 0; r < m.rows; r++ {
		sb.WriteString("[")
		for c := 0; c < m.cols; c++ {
			if c > 0 {
				sb.WriteString(", ")
			}
			fmt.Fprintf(&sb, "%d", m.data[r*m.cols+c])
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}

// area returns rows*cols, reporting false on int overflow.
func area(rows, cols int) (int, bool) {
	n := rows * cols
	if cols != 0 && n/cols != rows {
		return 0, false
	}

	return n, true
}
