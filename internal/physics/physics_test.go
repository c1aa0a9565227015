package physics

import (
	"math"
	"sort"
	"testing"
)

func TestCirclesOverlap(t *testing.T) {
	tests := []struct {
		name       string
		x1, y1, r1 float64
		x2, y2, r2 float64
		want       bool
	}{
		{"same centre", 0, 0, 1, 0, 0, 1, true},
		{"overlapping", 0, 0, 10, 15, 0, 10, true},
		{"touching is not overlap", 0, 0, 10, 20, 0, 10, false},
		{"apart", 0, 0, 5, 100, 100, 5, false},
		{"diagonal just inside", 0, 0, 5, 3, 4, 0.1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CirclesOverlap(tt.x1, tt.y1, tt.r1, tt.x2, tt.y2, tt.r2)
			if got != tt.want {
				t.Errorf("CirclesOverlap() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNormalize(t *testing.T) {
	x, y := Normalize(1, 1)
	if l := math.Hypot(x, y); math.Abs(l-1) > 1e-9 {
		t.Fatalf("length = %f, want 1", l)
	}
	if x, y := Normalize(0, 0); x != 0 || y != 0 {
		t.Fatalf("Normalize(0,0) = (%f,%f), want (0,0)", x, y)
	}
}

func TestClamp(t *testing.T) {
	if got := Clamp(5, 0, 10); got != 5 {
		t.Errorf("Clamp(5) = %f", got)
	}
	if got := Clamp(-1, 0, 10); got != 0 {
		t.Errorf("Clamp(-1) = %f", got)
	}
	if got := Clamp(11, 0, 10); got != 10 {
		t.Errorf("Clamp(11) = %f", got)
	}
}

func TestSpatialGridQueryAround(t *testing.T) {
	g := NewSpatialGrid(800, 600, 100)
	g.Insert(50, 50, 0)
	g.Insert(150, 50, 1)
	g.Insert(700, 500, 2)
	g.Insert(400, -30, 3) // above the playfield, clamped to row 0

	var got []int
	g.QueryAround(60, 40, func(i int) bool {
		got = append(got, i)
		return false
	})
	sort.Ints(got)
	if len(got) != 2 || got[0] != 0 || got[1] != 1 {
		t.Fatalf("neighbours of (60,40) = %v, want [0 1]", got)
	}

	got = got[:0]
	g.QueryAround(410, 5, func(i int) bool {
		got = append(got, i)
		return false
	})
	if len(got) != 1 || got[0] != 3 {
		t.Fatalf("neighbours of (410,5) = %v, want [3]", got)
	}

	g.Clear()
	g.QueryAround(60, 40, func(i int) bool {
		t.Fatalf("grid not cleared, got item %d", i)
		return true
	})
}

func TestSpatialGridEarlyStop(t *testing.T) {
	g := NewSpatialGrid(100, 100, 50)
	for i := 0; i < 5; i++ {
		g.Insert(10, 10, i)
	}
	calls := 0
	g.QueryAround(10, 10, func(int) bool {
		calls++
		return true
	})
	if calls != 1 {
		t.Fatalf("calls = %d, want 1", calls)
	}
}

func TestSpatialGridFirstMatch(t *testing.T) {
	g := NewSpatialGrid(800, 600, 64)
	// Index 4 lands in an earlier cell than index 2; the lower index still wins.
	g.Insert(130, 100, 2)
	g.Insert(70, 100, 4)
	g.Insert(100, 100, 3)

	if got := g.FirstMatch(100, 100, func(int) bool { return true }); got != 2 {
		t.Errorf("FirstMatch = %d, want 2", got)
	}
	if got := g.FirstMatch(100, 100, func(i int) bool { return i != 2 }); got != 3 {
		t.Errorf("FirstMatch skipping 2 = %d, want 3", got)
	}
	if got := g.FirstMatch(700, 500, func(int) bool { return true }); got != -1 {
		t.Errorf("FirstMatch far away = %d, want -1", got)
	}
}
