// Package gridgraph treats a 2D grid of integer cells as a map of "islands"
// and answers island queries on top of the ccl two-pass labeler.
//
// What:
//
//   - GridGraph wraps a rectangular [][]int grid with a tunable LandThreshold.
//   - Labels the connected components ("islands") of cells with value ≥ LandThreshold.
//   - Maps any land cell to its island index.
//   - Computes minimal conversions (0-1 BFS) to connect two islands.
//
// Why:
//
//   - Game maps: contiguous land detection, optimal bridging.
//   - Resource planning: connect facilities with minimal upgrades.
//   - Topology analysis: count lakes, islands, and heterogeneous regions.
//
// Complexity:
//
//   - Labels / ConnectedComponents: O(W×H×α(W×H)), computed once and cached.
//   - ComponentOf:                  O(1) after labeling.
//   - ExpandIsland:                 O(W×H×d), Memory: O(W×H)   (d = 4 or 8).
//
// Options:
//
//   - GridOptions.LandThreshold: minimum value considered "land".
//   - GridOptions.Conn: Conn4 (4-neighbors) or Conn8 (8-neighbors).
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrComponentIndex: requested component index out of range.
//   - ErrOutOfBounds: cell coordinates outside the grid.
//   - ErrNoPath: no conversion path exists between specified components.
package gridgraph
