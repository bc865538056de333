// Package unionfind is the disjoint-set engine behind two-pass
// connected-component labeling.
//
// What:
//
//   - A parent table []L over provisional label ids; P[i] is the parent of i,
//     and i is a root when P[i] == i.
//   - Index 0 is reserved for the background and is always its own root.
//   - Union attaches the larger root under the smaller one, so P[i] <= i holds
//     for every entry and label numbering is reproducible.
//   - Flatten turns the parent table into a dense remap: afterwards P[i] is
//     the final label of i (1..K), P[0] stays 0.
//
// The engine is a set of free generic functions over a caller-owned slice
// (FindRoot, Find, Union, SetRoot, Flatten) plus Forest, a small owner type
// that mints labels and tracks the number of live sets.
//
// Complexity:
//
//   - FindRoot, SetRoot: O(1).
//   - Find, Union: amortized O(log n) with full path compression.
//   - Flatten: O(n), single forward pass.
//
// Errors:
//
//   - ErrIndexOutOfRange: index negative or beyond the table.
//   - ErrNotRoot: SetRoot target is not a root.
//   - ErrCorruptTable: the P[i] <= i invariant does not hold.
//   - ErrLabelOverflow: no more labels fit in L.
//   - ErrFlattened: Forest was already compacted.
package unionfind
