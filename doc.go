// Package lvlabel labels connected components of binary images: every
// maximal group of touching foreground pixels gets one dense integer label.
//
// 🚀 What is inside?
//
//	• unionfind/: disjoint-set engine: Find with path compression,
//	  smaller-root-wins Union, Flatten into a dense final-label remap
//	• ccl/:       two-pass raster labeler (Conn4 / Conn8), label grids,
//	  adapters for [][]T masks, []bool masks and decoded image.Image
//	• gridgraph/: integer "island" maps: island lists, cell→island lookup,
//	  minimal water conversions between islands
//
// ✨ Guarantees:
//
//   - Deterministic: components are numbered 1..K in raster order of their
//     first pixel, background is 0
//   - Generic labels: any integer type; overflow is reported, never wrapped
//   - No partial output: on error the destination grid is untouched
//   - Pure Go: no cgo
//
// Quick ASCII example (Conn4 vs Conn8):
//
//	1 0 1        1 0 2        1 0 1
//	0 1 0   →    0 3 0   or   0 1 0
//	1 0 1        4 0 5        1 0 1
//
//	go get github.com/katalvlaran/lvlabel
package lvlabel
