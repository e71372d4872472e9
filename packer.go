package rectpack

// multiBinPacker packs items across many bins under the Bin-First-Fit
// policy (spec.md 4.4-4.5): try every currently open bin in the order it was
// opened, and only open a new bin from the factory pool when none of them
// fit. Grounded on original_source/C2DLMC/packer.py's PackerBFFMixin.add_rect
// and PackerMaster._new_open_bin.
type multiBinPacker struct {
	openBins   []*BinInstance
	closedBins []*BinInstance
	factories  *factoryPool
}

func newMultiBinPacker() *multiBinPacker {
	return &multiBinPacker{factories: newFactoryPool()}
}

// addBin registers a bin factory, preserving caller-specified ordering.
func (p *multiBinPacker) addBin(f *BinFactory) {
	p.factories.add(f)
}

// addItem places one item, opening a new bin from the factory pool if
// necessary. It returns the placed rectangle and the BinInstance it landed
// in, or ok=false if no open or factory-producible bin can hold it.
func (p *multiBinPacker) addItem(width, height, rid int) (Rect, *BinInstance, bool) {
	for _, b := range p.openBins {
		if rect, ok := b.TryPlace(width, height, rid); ok {
			return rect, b, true
		}
	}

	for {
		newBin := p.openNewBin(width, height)
		if newBin == nil {
			return Rect{}, nil, false
		}
		if rect, ok := newBin.TryPlace(width, height, rid); ok {
			return rect, newBin, true
		}
		// openNewBin only checked the bin's surface dimensions via
		// fitsInside; if the fresh bin still rejects the item, keep
		// opening the next one instead of giving up.
	}
}

// openNewBin finds the first factory (in insertion order) whose bins can
// hold an item of the given size, consumes one bin from it, and appends it
// to the open set. Returns nil if no factory can produce a fitting bin.
func (p *multiBinPacker) openNewBin(width, height int) *BinInstance {
	var chosen *BinInstance
	var depletedKey int
	var depleted bool

	p.factories.each(func(key int, f *BinFactory) bool {
		if !f.fitsInside(width, height) {
			return true
		}
		bin := f.newBin()
		if bin == nil {
			return true
		}
		chosen = bin
		if f.isEmpty() {
			depletedKey, depleted = key, true
		}
		return false
	})

	if chosen != nil {
		p.openBins = append(p.openBins, chosen)
		if depleted {
			p.factories.delete(depletedKey)
		}
	}
	return chosen
}

// reset discards all open and closed bins, keeping registered factories.
func (p *multiBinPacker) reset() {
	p.openBins = nil
	p.closedBins = nil
}

// allBins returns every bin opened so far, closed bins first, matching the
// Python original's __iter__ order. Bins are not filtered by whether they
// hold a placement.
func (p *multiBinPacker) allBins() []*BinInstance {
	all := make([]*BinInstance, 0, len(p.closedBins)+len(p.openBins))
	all = append(all, p.closedBins...)
	all = append(all, p.openBins...)
	return all
}
