// Package ccl labels connected components of binary images with the
// classic two-pass raster scan over a union-find table.
//
// What:
//
//   - ConnectedComponents writes one label per pixel into a Labels grid:
//     0 for background, 1..K for the K maximal foreground regions.
//   - Conn4 joins pixels sharing an edge; Conn8 also joins diagonal pixels.
//   - Numbering is deterministic: components are numbered in the raster order
//     of their first (top-most, then left-most) pixel.
//
// How:
//
//  1. First pass: each foreground pixel looks at its already-visited
//     neighbors (left, up; plus up-left and up-right under Conn8). No
//     labeled neighbor mints a provisional label; otherwise the smallest
//     neighbor label is taken and the others are unioned with it.
//  2. unionfind.Flatten compacts the parent table into a dense remap.
//  3. Second pass: every provisional label is replaced by its final label.
//
// Inputs are anything implementing Image. Mask wraps a [][]T of numbers,
// Bits wraps a flat []bool, Raster wraps a decoded image.Image, and Labels
// itself is an Image (non-zero = foreground).
//
// Complexity:
//
//   - Time:   O(W×H×α(W×H)), two sweeps plus one O(labels) flatten.
//   - Memory: O(W×H) for the provisional buffer and parent table.
//
// Errors:
//
//   - ErrInvalidConnectivity, ErrEmptyImage, ErrNonRectangular, ErrNilLabels,
//     ErrBadShape, ErrDimensionMismatch: all wrap ErrInvalidArgument.
//   - ErrAllocation: the image is too large for int indexing or for L.
//   - ErrOutOfRange: Labels.At/Set outside the grid.
//   - ErrInternal: a union-find invariant broke mid-scan (a defect).
//
// On any error the output Labels is left untouched.
package ccl
