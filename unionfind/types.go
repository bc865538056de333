package unionfind

import (
	"errors"
	"fmt"

	"golang.org/x/exp/constraints"
)

// Label is any integer type usable as a label id.
// The widest label actually representable is MaxLabel[L]().
type Label interface {
	constraints.Integer
}

// Background is the reserved label of non-foreground pixels.
const Background = 0

// Sentinel errors for unionfind operations.
var (
	// ErrIndexOutOfRange indicates a label id outside [0, len(P)).
	ErrIndexOutOfRange = errors.New("unionfind: index out of range")
	// ErrNotRoot indicates SetRoot was given a target that is not a root.
	ErrNotRoot = errors.New("unionfind: target is not a root")
	// ErrCorruptTable indicates the parent table violates P[i] <= i or P[0] == 0.
	ErrCorruptTable = errors.New("unionfind: corrupt parent table")
	// ErrLabelOverflow indicates the label type cannot hold another id.
	ErrLabelOverflow = errors.New("unionfind: label type exhausted")
	// ErrFlattened indicates a Forest was used as a parent table after Flatten.
	ErrFlattened = errors.New("unionfind: forest already flattened")
)

// opErrorf attaches the operation name and offending id to a sentinel.
func opErrorf[L Label](op string, i L, err error) error {
	return fmt.Errorf("%s(%d): %w", op, i, err)
}

// MaxLabel returns the largest value representable by L.
// Complexity: O(bits of L).
func MaxLabel[L Label]() L {
	var zero L
	if m := ^zero; m > 0 {
		return m // unsigned: all bits set
	}
	m := L(1)
	for m<<1 > 0 {
		m <<= 1
	}

	return m | (m - 1)
}

// slot validates i against P and returns it as an int index.
func slot[L Label](P []L, i L) (int, bool) {
	if i < 0 || uint64(i) >= uint64(len(P)) {
		return 0, false
	}

	return int(i), true
}
