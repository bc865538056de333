package ccl_test

import (
	"math/rand"

	"github.com/katalvlaran/lvlabel/ccl"
)

// floodLabels is an independent BFS reference labeling. Seeds are taken in
// raster order, so its numbering matches the two-pass scan exactly.
func floodLabels(img ccl.Image, conn ccl.Connectivity) ([]int32, int) {
	rows, cols := img.Dims()
	offsets := [][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
	if conn == ccl.Conn8 {
		offsets = append(offsets, [2]int{-1, -1}, [2]int{-1, 1}, [2]int{1, -1}, [2]int{1, 1})
	}
	out := make([]int32, rows*cols)
	var next int32
	queue := make([]int, 0, 64)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if !img.Foreground(r, c) || out[r*cols+c] != 0 {
				continue
			}
			next++
			out[r*cols+c] = next
			queue = append(queue[:0], r*cols+c)
			for qi := 0; qi < len(queue); qi++ {
				ur, uc := queue[qi]/cols, queue[qi]%cols
				for _, d := range offsets {
					vr, vc := ur+d[0], uc+d[1]
					if vr < 0 || vr >= rows || vc < 0 || vc >= cols {
						continue
					}
					vi := vr*cols + vc
					if out[vi] == 0 && img.Foreground(vr, vc) {
						out[vi] = next
						queue = append(queue, vi)
					}
				}
			}
		}
	}

	return out, int(next)
}

// randomBits builds a rows×cols mask where each pixel is foreground with
// probability p, from a fixed seed.
func randomBits(seed int64, rows, cols int, p float64) *ccl.Bits {
	r := rand.New(rand.NewSource(seed))
	fg := make([]bool, rows*cols)
	for i := range fg {
		fg[i] = r.Float64() < p
	}
	b, err := ccl.NewBits(rows, cols, fg)
	if err != nil {
		panic(err)
	}

	return b
}
