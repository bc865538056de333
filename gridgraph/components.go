package gridgraph

import "github.com/katalvlaran/lvlabel/ccl"

// Labels returns the island label image (0 = water, 1..K = islands) and K.
// Labels are computed once with the two-pass scan and shared afterwards;
// callers must not modify the returned grid.
//
// Time:   O(W·H·α(W·H)) on first call, O(1) after.
// Memory: O(W·H).
func (gg *GridGraph) Labels() (*ccl.Labels[int32], int, error) {
	gg.once.Do(func() {
		gg.labels, gg.count, gg.err = ccl.Label(gg, gg.Conn.scanConn())
	})

	return gg.labels, gg.count, gg.err
}

// ConnectedComponents finds all contiguous regions (“islands”) of land cells
// (CellValues[y][x] ≥ LandThreshold), according to gg.Conn connectivity.
// Returns a slice of components; each component is a slice of cell‐indices
// (row‐major). Components are ordered by the raster position of their first
// cell, and cells within a component are in raster order.
//
// To convert an index back to (x,y), use Coordinate(idx).
//
// Time:   O(W·H·α(W·H)).
// Memory: O(W·H) for labels and output.
func (gg *GridGraph) ConnectedComponents() ([][]int, error) {
	labels, n, err := gg.Labels()
	if err != nil {
		return nil, err
	}
	comps := make([][]int, n)
	for i, l := range labels.Data() {
		if l != 0 {
			comps[l-1] = append(comps[l-1], i)
		}
	}

	return comps, nil
}

// ComponentCount returns the number of islands.
func (gg *GridGraph) ComponentCount() (int, error) {
	_, n, err := gg.Labels()

	return n, err
}

// ComponentOf returns the 0-based island index of cell (x,y), or -1 when
// the cell is water. Returns ErrOutOfBounds for coordinates off the grid.
func (gg *GridGraph) ComponentOf(x, y int) (int, error) {
	if !gg.InBounds(x, y) {
		return -1, ErrOutOfBounds
	}
	labels, _, err := gg.Labels()
	if err != nil {
		return -1, err
	}

	return int(labels.Data()[gg.index(x, y)]) - 1, nil
}
