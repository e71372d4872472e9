package rectpack

import "testing"

// checkNoOverlap asserts I2 by brute-force pairwise comparison.
func checkNoOverlap(t *testing.T, placed []Rect) {
	t.Helper()
	for i := 0; i < len(placed); i++ {
		for j := i + 1; j < len(placed); j++ {
			if Intersects(placed[i], placed[j]) {
				t.Errorf("I2 violated: rid=%d and rid=%d overlap", placed[i].RID, placed[j].RID)
			}
		}
	}
}

// checkContainment asserts I1: every placed rectangle lies inside the bin.
func checkContainment(t *testing.T, surface Rect, placed []Rect) {
	t.Helper()
	for _, r := range placed {
		if !Contains(surface, r) {
			t.Errorf("I1 violated: rid=%d at %s exceeds surface %s", r.RID, r, surface)
		}
	}
}

// checkFreeRegionMaximality asserts I4: no free region is contained in
// another.
func checkFreeRegionMaximality(t *testing.T, free []Rect) {
	t.Helper()
	for i := range free {
		for j := range free {
			if i == j {
				continue
			}
			if Contains(free[j], free[i]) {
				t.Errorf("I4 violated: free region %s is contained in %s", free[i], free[j])
			}
		}
	}
}

func TestMaxRectsSingleItemNoRotation(t *testing.T) {
	m := NewMaxRects(5, 4, BSSF, false)
	r, ok := m.TryPlace(3, 2, 1)
	if !ok {
		t.Fatal("expected placement to succeed")
	}
	if r.X != 0 || r.Y != 0 {
		t.Fatalf("expected placement at (0,0), got (%d,%d)", r.X, r.Y)
	}
	checkContainment(t, NewRect(0, 0, 5, 4), m.Placed())
	checkNoOverlap(t, m.Placed())
	checkFreeRegionMaximality(t, m.FreeRegions())
}

func TestMaxRectsRotationRequired(t *testing.T) {
	m := NewMaxRects(2, 4, BSSF, true)
	r, ok := m.TryPlace(4, 2, 1)
	if !ok {
		t.Fatal("expected rotated placement to succeed")
	}
	if r.Width != 2 || r.Height != 4 {
		t.Fatalf("expected item to be rotated to 2x4, got %dx%d", r.Width, r.Height)
	}
}

func TestMaxRectsBottomLeftPlacement(t *testing.T) {
	m := NewMaxRects(6, 3, BL, false)
	r1, ok := m.TryPlace(3, 3, 1)
	if !ok || r1.X != 0 || r1.Y != 0 {
		t.Fatalf("item 1: got %v ok=%v, want (0,0)", r1, ok)
	}
	r2, ok := m.TryPlace(3, 3, 2)
	if !ok || r2.X != 3 || r2.Y != 0 {
		t.Fatalf("item 2: got %v ok=%v, want (3,0)", r2, ok)
	}
}

func TestMaxRectsUnplaceableItem(t *testing.T) {
	m := NewMaxRects(5, 5, BSSF, false)
	_, ok := m.TryPlace(6, 6, 1)
	if ok {
		t.Fatal("expected oversized item to be rejected")
	}
	if len(m.Placed()) != 0 {
		t.Fatal("a failed TryPlace must not mutate placement state")
	}
}

// TestMaxRectsFreeRegionSplit reproduces spec.md scenario F: three 2x2
// items into a 4x4 bin under BSSF/no-rotation.
func TestMaxRectsFreeRegionSplit(t *testing.T) {
	m := NewMaxRects(4, 4, BSSF, false)
	surface := NewRect(0, 0, 4, 4)

	for i, rid := range []int{1, 2, 3} {
		r, ok := m.TryPlace(2, 2, rid)
		if !ok {
			t.Fatalf("item %d: expected placement to succeed", i+1)
		}
		checkContainment(t, surface, m.Placed())
		checkNoOverlap(t, m.Placed())
		checkFreeRegionMaximality(t, m.FreeRegions())
		_ = r
	}
	if len(m.Placed()) != 3 {
		t.Fatalf("expected 3 placements, got %d", len(m.Placed()))
	}
}

func TestMaxRectsFitsSurface(t *testing.T) {
	m := NewMaxRects(5, 10, BSSF, false)
	if !m.FitsSurface(5, 10) {
		t.Error("exact-size item should fit")
	}
	if m.FitsSurface(6, 10) {
		t.Error("oversized item should not fit without rotation")
	}

	mr := NewMaxRects(5, 10, BSSF, true)
	if !mr.FitsSurface(10, 5) {
		t.Error("rotated item should fit when rotation is allowed")
	}
}
