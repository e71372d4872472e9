package rectpack

import (
	"math/rand"
	"testing"
)

// randomItem returns an item with dimensions within [minSize, maxSize).
func randomItem(rid, minSize, maxSize int) Item {
	w := rand.Intn(maxSize-minSize) + minSize
	h := rand.Intn(maxSize-minSize) + minSize
	return Item{Width: w, Height: h, RID: rid}
}

// TestRandomPackingInvariants stress-tests the full orchestrator pipeline
// with many small randomly sized items against a single oversized bin,
// checking I1/I2 hold for everything that gets placed. Grounded on the
// teacher's packer_test.go TestRandom, generalized from a single-surface
// image atlas to the multi-bin cost-ordered domain.
func TestRandomPackingInvariants(t *testing.T) {
	const count = 512
	const minSize, maxSize = 8, 32

	o := NewOrchestrator(Config{PackAlgo: AlgoMaxRects, Policy: BSSF, SortAlgo: SortArea, Rotation: true})
	for i := 0; i < count; i++ {
		it := randomItem(i+1, minSize, maxSize)
		if err := o.AddItem(it.Width, it.Height, it.RID); err != nil {
			t.Fatalf("AddItem: %v", err)
		}
	}
	if err := o.AddBin(2048, 2048, 1, 1, 1); err != nil {
		t.Fatalf("AddBin: %v", err)
	}

	if err := o.Pack(); err != nil {
		t.Fatalf("Pack: %v", err)
	}
	if len(o.Unplaced()) != 0 {
		t.Fatalf("expected every item to fit a 2048x2048 bin, got %d unplaced", len(o.Unplaced()))
	}
	if err := o.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
}

// TestRandomPackingForcesMultipleBins checks that an orchestrator facing
// more item area than a single bin can hold correctly spills into
// additional bins instead of dropping items, and that every bin it used
// still satisfies I1/I2.
func TestRandomPackingForcesMultipleBins(t *testing.T) {
	const count = 64
	const minSize, maxSize = 16, 48

	o := NewOrchestrator(DefaultConfig())
	for i := 0; i < count; i++ {
		it := randomItem(i+1, minSize, maxSize)
		if err := o.AddItem(it.Width, it.Height, it.RID); err != nil {
			t.Fatalf("AddItem: %v", err)
		}
	}
	// Bins too small to hold everything in one surface, but plentiful.
	if err := o.AddBin(64, 64, 1, count, 1); err != nil {
		t.Fatalf("AddBin: %v", err)
	}

	if err := o.Pack(); err != nil {
		t.Fatalf("Pack: %v", err)
	}
	if len(o.Unplaced()) != 0 {
		t.Fatalf("expected every item to fit across enough 64x64 bins, got %d unplaced", len(o.Unplaced()))
	}
	if len(o.BinList()) < 2 {
		t.Fatalf("expected packing to span multiple bins, used %d", len(o.BinList()))
	}
	if err := o.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
}
