package unionfind

// FindRoot returns the parent of i without compressing anything.
// It is a single pointer-chase step used to inspect the current structure;
// the result equals i only when i is a root.
//
// Returns ErrIndexOutOfRange if i is not a valid index into P.
// Complexity: O(1).
func FindRoot[L Label](P []L, i L) (L, error) {
	k, ok := slot(P, i)
	if !ok {
		return 0, opErrorf("FindRoot", i, ErrIndexOutOfRange)
	}

	return P[k], nil
}

// SetRoot sets P[i] = root directly.
// root must already be a root (P[root] == root), otherwise ErrNotRoot is
// returned and P is left unchanged.
//
// Complexity: O(1).
func SetRoot[L Label](P []L, i, root L) error {
	k, ok := slot(P, i)
	if !ok {
		return opErrorf("SetRoot", i, ErrIndexOutOfRange)
	}
	r, ok := slot(P, root)
	if !ok {
		return opErrorf("SetRoot", root, ErrIndexOutOfRange)
	}
	if P[r] != root {
		return opErrorf("SetRoot", root, ErrNotRoot)
	}
	P[k] = root

	return nil
}

// Find returns the root of the set containing i and compresses the path:
// every node visited on the way up is re-pointed straight at the root.
//
// Implementation:
//   - Stage 1: walk parents until P[r] == r, validating every hop.
//   - Stage 2: walk again from i, re-pointing each node to r.
//
// Returns ErrIndexOutOfRange for a bad i or a parent pointing outside P,
// and ErrCorruptTable if the walk does not terminate within len(P) hops.
// Complexity: amortized O(log n).
func Find[L Label](P []L, i L) (L, error) {
	k, ok := slot(P, i)
	if !ok {
		return 0, opErrorf("Find", i, ErrIndexOutOfRange)
	}

	// Stage 1: locate the root
	root := i
	for hops := 0; P[k] != root; hops++ {
		if hops >= len(P) {
			return 0, opErrorf("Find", i, ErrCorruptTable)
		}
		root = P[k]
		if k, ok = slot(P, root); !ok {
			return 0, opErrorf("Find", root, ErrIndexOutOfRange)
		}
	}

	// Stage 2: full path compression
	for i != root {
		next := P[int(i)]
		P[int(i)] = root
		i = next
	}

	return root, nil
}

// Union merges the sets containing i and j and returns the common root.
// The root with the larger id is attached under the root with the smaller
// id, so the result is always the minimum of the two roots. If i and j are
// already joined Union changes nothing.
//
// Complexity: amortized O(log n).
func Union[L Label](P []L, i, j L) (L, error) {
	ri, err := Find(P, i)
	if err != nil {
		return 0, err
	}
	rj, err := Find(P, j)
	if err != nil {
		return 0, err
	}
	if ri == rj {
		return ri, nil
	}
	if rj < ri {
		ri, rj = rj, ri
	}
	P[int(rj)] = ri

	return ri, nil
}

// Flatten compacts P in place into a dense final-label remap and returns
// the number of components K.
//
// A single forward pass over 1..len(P)-1 suffices: roots take the next label
// from 1 upward, and a non-root i takes P[P[i]], which was resolved earlier
// because P[i] < i. P[0] stays 0 (background). After Flatten, P[i] is the
// final label of provisional label i, not a parent pointer.
//
// Returns ErrCorruptTable if P[0] != 0 or some P[i] > i; P may then be
// partially rewritten.
// Complexity: O(n).
func Flatten[L Label](P []L) (L, error) {
	if len(P) == 0 {
		return 0, nil
	}
	if P[0] != Background {
		return 0, opErrorf("Flatten", 0, ErrCorruptTable)
	}

	var count L
	for i := 1; i < len(P); i++ {
		p := P[i]
		switch {
		case p < 0 || uint64(p) > uint64(i):
			return 0, opErrorf("Flatten", i, ErrCorruptTable)
		case int(p) == i:
			count++
			P[i] = count
		default:
			P[i] = P[int(p)]
		}
	}

	return count, nil
}
