package unionfind

// Forest owns a parent table for one labeling run.
// Entry 0 is the background root; MakeSet mints ids 1, 2, ... in order.
// A Forest is not safe for concurrent use.
type Forest[L Label] struct {
	parent    []L
	sets      int
	flattened bool
}

// NewForest returns a Forest holding only the background entry, with room
// for capacity entries (background included) before the table grows.
// Complexity: O(capacity) memory.
func NewForest[L Label](capacity int) *Forest[L] {
	if capacity < 1 {
		capacity = 1
	}
	parent := make([]L, 1, capacity)

	return &Forest[L]{parent: parent}
}

// MakeSet appends a new self-rooted label and returns it.
// Returns ErrLabelOverflow once L cannot represent the next id.
func (f *Forest[L]) MakeSet() (L, error) {
	if f.flattened {
		return 0, ErrFlattened
	}
	n := len(f.parent)
	if uint64(n) > uint64(MaxLabel[L]()) {
		return 0, opErrorf("MakeSet", n, ErrLabelOverflow)
	}
	l := L(n)
	f.parent = append(f.parent, l)
	f.sets++

	return l, nil
}

// Len returns the number of table entries, background included.
func (f *Forest[L]) Len() int { return len(f.parent) }

// Sets returns the number of disjoint non-background sets, or the component
// count once the forest has been flattened.
func (f *Forest[L]) Sets() int { return f.sets }

// Find returns the root of i, compressing the path.
func (f *Forest[L]) Find(i L) (L, error) {
	if f.flattened {
		return 0, ErrFlattened
	}

	return Find(f.parent, i)
}

// Union merges the sets of i and j, smaller root wins.
func (f *Forest[L]) Union(i, j L) (L, error) {
	if f.flattened {
		return 0, ErrFlattened
	}
	ri, err := Find(f.parent, i)
	if err != nil {
		return 0, err
	}
	rj, err := Find(f.parent, j)
	if err != nil {
		return 0, err
	}
	if ri == rj {
		return ri, nil
	}
	f.sets--

	return Union(f.parent, ri, rj)
}

// Connected reports whether i and j share a root.
func (f *Forest[L]) Connected(i, j L) (bool, error) {
	ri, err := f.Find(i)
	if err != nil {
		return false, err
	}
	rj, err := f.Find(j)
	if err != nil {
		return false, err
	}

	return ri == rj, nil
}

// Flatten compacts the table into a final-label remap (see Flatten) and
// returns the component count. After this call Parents() is the remap and
// Find/Union/MakeSet return ErrFlattened.
func (f *Forest[L]) Flatten() (L, error) {
	if f.flattened {
		return 0, ErrFlattened
	}
	n, err := Flatten(f.parent)
	if err != nil {
		return 0, err
	}
	f.flattened = true
	f.sets = int(n)

	return n, nil
}

// Parents exposes the backing table: parent pointers before Flatten,
// final labels after. The slice aliases Forest storage.
func (f *Forest[L]) Parents() []L { return f.parent }
