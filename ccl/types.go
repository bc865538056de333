package ccl

// Connectivity selects which neighbors count as touching.
// The numeric value is the neighbor count, so Connectivity(4) == Conn4.
type Connectivity int

const (
	// Conn4 joins pixels sharing an edge: N, E, S, W.
	Conn4 Connectivity = 4
	// Conn8 joins pixels sharing an edge or a corner.
	Conn8 Connectivity = 8
)

// Validate returns ErrInvalidConnectivity unless c is Conn4 or Conn8.
func (c Connectivity) Validate() error {
	if c != Conn4 && c != Conn8 {
		return ErrInvalidConnectivity
	}

	return nil
}

// Image is a read-only binary raster over [0,rows)×[0,cols).
// Foreground is only called with in-range coordinates and must be
// deterministic for the duration of a labeling call.
type Image interface {
	Dims() (rows, cols int)
	Foreground(row, col int) bool
}
