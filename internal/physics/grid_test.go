package physics

import (
	"sort"
	"testing"
)

func collect(g *SpatialGrid, x, y float64) []int {
	var got []int
	g.QueryAround(x, y, func(i int) bool {
		got = append(got, i)
		return false
	})
	sort.Ints(got)
	return got
}

func TestSpatialGrid_FindsNeighbours(t *testing.T) {
	g := NewSpatialGrid(-500, -550, 1000, 1100, 80)
	g.Insert(0, 0, 0)
	g.Insert(70, 10, 1)
	g.Insert(400, 400, 2)

	got := collect(g, 5, 5)
	if len(got) != 2 || got[0] != 0 || got[1] != 1 {
		t.Errorf("neighbours of origin = %v, want [0 1]", got)
	}
	if got := collect(g, 400, 390); len(got) != 1 || got[0] != 2 {
		t.Errorf("neighbours of (400,390) = %v, want [2]", got)
	}
}

func TestSpatialGrid_ClampsOutsidePositions(t *testing.T) {
	g := NewSpatialGrid(-100, -100, 200, 200, 50)
	g.Insert(-5000, 0, 7)

	if got := collect(g, -120, 0); len(got) != 1 || got[0] != 7 {
		t.Errorf("item beyond the left edge should be found near it, got %v", got)
	}
}

func TestSpatialGrid_StopsEarly(t *testing.T) {
	g := NewSpatialGrid(0, 0, 100, 100, 50)
	for i := 0; i < 5; i++ {
		g.Insert(10, 10, i)
	}
	calls := 0
	g.QueryAround(10, 10, func(int) bool {
		calls++
		return true
	})
	if calls != 1 {
		t.Errorf("expected iteration to stop after first item, got %d calls", calls)
	}
}

func TestSpatialGrid_Clear(t *testing.T) {
	g := NewSpatialGrid(0, 0, 100, 100, 50)
	g.Insert(10, 10, 1)
	g.Clear()
	if got := collect(g, 10, 10); len(got) != 0 {
		t.Errorf("grid not empty after Clear: %v", got)
	}
}
