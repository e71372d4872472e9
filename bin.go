package rectpack

import "fmt"

// BinInstance is one concrete bin surface being packed: an Engine plus the
// identity and cost carried over from the BinFactory that produced it
// (spec.md 4.4).
type BinInstance struct {
	BID           int
	Width, Height int
	Cost          float64
	engine        Engine
}

// newBinInstance constructs a BinInstance around a freshly reset Engine.
func newBinInstance(bid, width, height int, cost float64, engine Engine) *BinInstance {
	engine.Reset(width, height)
	return &BinInstance{BID: bid, Width: width, Height: height, Cost: cost, engine: engine}
}

// FitsSurface reports whether an item could possibly fit this bin's surface,
// ignoring current placements.
func (b *BinInstance) FitsSurface(width, height int) bool {
	return b.engine.FitsSurface(width, height)
}

// TryPlace attempts to place an item onto this bin, returning the placed
// rectangle (carrying rid) and true on success.
func (b *BinInstance) TryPlace(width, height, rid int) (Rect, bool) {
	return b.engine.TryPlace(width, height, rid)
}

// Placed returns every rectangle placed in this bin so far, in placement
// order.
func (b *BinInstance) Placed() []Rect {
	return b.engine.Placed()
}

// Area returns the bin surface's total area.
func (b *BinInstance) Area() int {
	return b.Width * b.Height
}

// UsedArea returns the combined area of every rectangle placed so far.
func (b *BinInstance) UsedArea() int {
	used := 0
	for _, r := range b.Placed() {
		used += r.Area()
	}
	return used
}

// Validate checks the placed rectangles of this bin against I1 (containment)
// and I2 (non-overlap), per spec.md 8. It deliberately iterates the full
// [0,n) x (i,n) pairwise range; the Python original this spec was distilled
// from skips the last rectangle in both loops, a bug spec.md 9 calls out by
// name and that must not be reproduced here.
func (b *BinInstance) Validate() error {
	placed := b.Placed()
	surface := NewRect(0, 0, b.Width, b.Height)
	for i, r := range placed {
		if !Contains(surface, r) {
			return fmt.Errorf("%w: rect rid=%d at bin %d exceeds bin surface", ErrInvariantViolation, r.RID, b.BID)
		}
		for j := i + 1; j < len(placed); j++ {
			if Intersects(r, placed[j]) {
				return fmt.Errorf("%w: rects rid=%d and rid=%d overlap in bin %d", ErrInvariantViolation, r.RID, placed[j].RID, b.BID)
			}
		}
	}
	return nil
}
