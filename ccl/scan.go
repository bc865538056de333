package ccl

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvlabel/unionfind"
)

// maxBufferCells caps the provisional buffer plus parent table, counted at
// the widest label size (8 bytes), below the runtime's largest allocation.
const maxBufferCells = min(math.MaxInt, 1<<47) / 8

// ConnectedComponents labels the foreground of img into out and returns
// the number of components K.
//
// Behavior:
//  1. Validate conn, out and the image shape; nothing is written on failure.
//  2. First pass, row-major: a foreground pixel gathers the non-zero
//     provisional labels of its visited neighbors (left, up; plus up-left and
//     up-right under Conn8). None: mint a new label. Otherwise take the
//     smallest and union the rest into it.
//  3. Flatten the parent table into a dense remap.
//  4. Reset out to the image shape and write remap[provisional] per pixel.
//
// out receives 0 for background and 1..K for components. It is reshaped
// when its dimensions differ from img.
//
// Errors: ErrInvalidConnectivity, ErrNilLabels, ErrEmptyImage,
// ErrAllocation, ErrInternal.
// Complexity: O(W×H×α(W×H)) time, O(W×H) memory.
func ConnectedComponents[L unionfind.Label](out *Labels[L], img Image, conn Connectivity) (int, error) {
	if err := conn.Validate(); err != nil {
		return 0, err
	}
	if out == nil {
		return 0, ErrNilLabels
	}
	if img == nil {
		return 0, ErrEmptyImage
	}
	rows, cols := img.Dims()
	if rows <= 0 || cols <= 0 {
		return 0, ErrEmptyImage
	}
	n, ok := area(rows, cols)
	if !ok {
		return 0, fmt.Errorf("%d×%d image: %w", rows, cols, ErrAllocation)
	}
	capacity := provisionalCapacity(rows, cols, conn)
	if uint64(capacity-1) > uint64(unionfind.MaxLabel[L]()) {
		return 0, fmt.Errorf("%d×%d image needs up to %d labels: %w", rows, cols, capacity-1, ErrAllocation)
	}
	if uint64(n)+uint64(capacity) > maxBufferCells {
		return 0, fmt.Errorf("%d×%d image exceeds scan buffer limit: %w", rows, cols, ErrAllocation)
	}

	prov := make([]L, n)
	forest := unionfind.NewForest[L](capacity)
	if err := firstPass(prov, forest, img, rows, cols, conn); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrInternal, err)
	}

	count, err := forest.Flatten()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrInternal, err)
	}

	if out.rows != rows || out.cols != cols {
		if err = out.Reset(rows, cols); err != nil {
			return 0, err
		}
	}
	remap := forest.Parents()
	for i, p := range prov {
		out.data[i] = remap[int(p)]
	}

	return int(count), nil
}

// Label is ConnectedComponents into a fresh int32 label grid.
func Label(img Image, conn Connectivity) (*Labels[int32], int, error) {
	var out Labels[int32]
	n, err := ConnectedComponents(&out, img, conn)
	if err != nil {
		return nil, 0, err
	}

	return &out, n, nil
}

// firstPass assigns provisional labels into prov and records equivalences
// in forest. Only already-visited neighbors are consulted, so every label
// read from prov was written earlier in the same pass.
func firstPass[L unionfind.Label](prov []L, forest *unionfind.Forest[L], img Image, rows, cols int, conn Connectivity) error {
	diag := conn == Conn8
	var nb [4]L
	for r := 0; r < rows; r++ {
		cur := prov[r*cols : (r+1)*cols]
		var up []L
		if r > 0 {
			up = prov[(r-1)*cols : r*cols]
		}
		for c := 0; c < cols; c++ {
			if !img.Foreground(r, c) {
				continue
			}

			k := 0
			if c > 0 && cur[c-1] != 0 {
				nb[k] = cur[c-1]
				k++
			}
			if up != nil {
				if diag && c > 0 && up[c-1] != 0 {
					nb[k] = up[c-1]
					k++
				}
				if up[c] != 0 {
					nb[k] = up[c]
					k++
				}
				if diag && c+1 < cols && up[c+1] != 0 {
					nb[k] = up[c+1]
					k++
				}
			}

			l, err := resolve(forest, nb[:k])
			if err != nil {
				return fmt.Errorf("pixel (%d,%d): %w", r, c, err)
			}
			cur[c] = l
		}
	}

	return nil
}

// resolve picks the label for a foreground pixel from its labeled
// neighbors: a new set when there are none, else the smallest neighbor
// label, with every other distinct neighbor label unioned into it.
func resolve[L unionfind.Label](forest *unionfind.Forest[L], nb []L) (L, error) {
	if len(nb) == 0 {
		return forest.MakeSet()
	}
	lo := nb[0]
	for _, l := range nb[1:] {
		lo = min(lo, l)
	}
	for _, l := range nb {
		if l == lo {
			continue
		}
		if _, err := forest.Union(lo, l); err != nil {
			return 0, err
		}
	}

	return lo, nil
}

// provisionalCapacity bounds the parent table size (background included).
// Under Conn8 two provisional labels can never be minted in 8-adjacent
// pixels, so at most one per 2×2 block; under Conn4 at most one per
// checkerboard cell.
// Callers ensure rows*cols does not overflow int.
func provisionalCapacity(rows, cols int, conn Connectivity) int {
	if conn == Conn8 {
		return (rows/2+rows%2)*(cols/2+cols%2) + 1
	}

	n := rows * cols

	return n/2 + n%2 + 1
}
