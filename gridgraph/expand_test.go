// File: gridgraph/expand_test.go
package gridgraph

import (
	"errors"
	"reflect"
	"testing"
)

// helper to convert (x,y) to index
func idx(gg *GridGraph, x, y int) int {
	return gg.index(x, y)
}

// TestExpandIsland_BasicLine tests a simple 1×3 line with a single water cell between two land cells.
// Grid: [1,0,1], Conn4
// Expected: must convert the middle cell at cost 1, path indices [0,1,2].
func TestExpandIsland_BasicLine(t *testing.T) {
	grid := [][]int{{1, 0, 1}}
	gg, err := From2D(grid, Conn4)
	if err != nil {
		t.Fatalf("From2D error: %v", err)
	}
	comps, err := gg.ConnectedComponents()
	if err != nil {
		t.Fatalf("ConnectedComponents error: %v", err)
	}
	if len(comps) != 2 {
		t.Fatalf("found %d components; want 2", len(comps))
	}

	path, cost, err := gg.ExpandIsland(0, 1)
	if err != nil {
		t.Fatalf("ExpandIsland error: %v", err)
	}

	wantCost := 1
	wantPath := []int{idx(gg, 0, 0), idx(gg, 1, 0), idx(gg, 2, 0)}

	if cost != wantCost {
		t.Errorf("cost = %d; want %d", cost, wantCost)
	}
	if !reflect.DeepEqual(path, wantPath) {
		t.Errorf("path = %v; want %v", path, wantPath)
	}
}

// TestExpandIsland_MediumRow tests a 1×5 line where two land cells at ends require converting 3 water cells.
// Grid: [1,0,0,0,1], Conn4
// Expected cost = 3, path length = 5.
func TestExpandIsland_MediumRow(t *testing.T) {
	grid := [][]int{{1, 0, 0, 0, 1}}
	gg, _ := From2D(grid, Conn4)
	path, cost, err := gg.ExpandIsland(0, 1)
	if err != nil {
		t.Fatalf("ExpandIsland error: %v", err)
	}

	if cost != 3 {
		t.Errorf("cost = %d; want 3", cost)
	}
	if len(path) != 5 {
		t.Errorf("path length = %d; want 5", len(path))
	}
}

// TestExpandIsland_Diagonal8 checks that corner-touching land is one island
// under Conn8, so expanding an island into itself costs nothing.
//
//	1 0
//	0 1
func TestExpandIsland_Diagonal8(t *testing.T) {
	grid := [][]int{
		{1, 0},
		{0, 1},
	}
	gg, _ := From2D(grid, Conn8)
	comps, err := gg.ConnectedComponents()
	if err != nil {
		t.Fatalf("ConnectedComponents error: %v", err)
	}
	if len(comps) != 1 {
		t.Fatalf("got %d components; want 1", len(comps))
	}

	path, cost, err := gg.ExpandIsland(0, 0)
	if err != nil {
		t.Fatalf("ExpandIsland error: %v", err)
	}
	if cost != 0 {
		t.Errorf("cost = %d; want 0", cost)
	}
	if len(path) != 1 || (path[0] != idx(gg, 0, 0) && path[0] != idx(gg, 1, 1)) {
		t.Errorf("path = %v; want a single land cell", path)
	}
}

// TestExpandIsland_Conn8Shortcut: under Conn8 a diagonal step through one
// water cell bridges islands that need three conversions under Conn4.
//
//	1 0 0
//	0 0 0
//	0 0 1
func TestExpandIsland_Conn8Shortcut(t *testing.T) {
	grid := [][]int{
		{1, 0, 0},
		{0, 0, 0},
		{0, 0, 1},
	}
	for _, tc := range []struct {
		conn Connectivity
		cost int
	}{{Conn4, 3}, {Conn8, 1}} {
		gg, _ := From2D(grid, tc.conn)
		path, cost, err := gg.ExpandIsland(0, 1)
		if err != nil {
			t.Fatalf("conn=%d: ExpandIsland error: %v", tc.conn, err)
		}
		if cost != tc.cost {
			t.Errorf("conn=%d: cost = %d; want %d", tc.conn, cost, tc.cost)
		}
		if path[0] != idx(gg, 0, 0) || path[len(path)-1] != idx(gg, 2, 2) {
			t.Errorf("conn=%d: path = %v; want endpoints 0 and 8", tc.conn, path)
		}
	}
}

// TestExpandIsland_InvalidIndices ensures invalid component indices yield ErrComponentIndex.
func TestExpandIsland_InvalidIndices(t *testing.T) {
	grid := [][]int{{1, 0, 1}}
	gg, _ := From2D(grid, Conn4)

	_, _, err := gg.ExpandIsland(-1, 1)
	if !errors.Is(err, ErrComponentIndex) {
		t.Errorf("src=-1: got %v; want ErrComponentIndex", err)
	}
	_, _, err = gg.ExpandIsland(0, 2)
	if !errors.Is(err, ErrComponentIndex) {
		t.Errorf("dst=2: got %v; want ErrComponentIndex", err)
	}
}
