package rectpack

import (
	"cmp"
	"fmt"
	"slices"
)

// Item is one rectangle awaiting placement (spec.md 3, PendingItem).
type Item struct {
	Width, Height, RID int
}

// PendingBin is a staged bin descriptor awaiting installation into the
// packer's factory pool (spec.md 3).
type PendingBin struct {
	Width, Height int
	Cost          float64
	Count         int
	BID           int
}

// Placement is one item's final position, as returned by RectList.
type Placement struct {
	BinIndex      int
	BID           int
	X, Y          int
	Width, Height int
	RID           int
}

// Config fixes the algorithm choices an Orchestrator packs with (spec.md
// 6.3's "Configuration enumerated" list).
type Config struct {
	PackAlgo AlgorithmKind
	Policy   FitnessPolicy
	Split    GuillotineSplit
	SortAlgo ItemSortPolicy
	Rotation bool
}

// DefaultConfig matches the heuristic entry point's defaults: MaxRects/BAF,
// descending-area item sort, rotation enabled.
func DefaultConfig() Config {
	return Config{PackAlgo: AlgoMaxRects, Policy: BAF, SortAlgo: SortArea, Rotation: true}
}

// Orchestrator is the offline, two-phase driver (spec.md 4.7): callers stage
// items and bin descriptors, then call Pack to sort and feed them to a
// multi-bin packer. Grounded on original_source/C2DLMC/packer.py's Packer
// and original_source/heuristic.py's sort_trucks_by_effectiveness.
type Orchestrator struct {
	cfg Config

	pendingItems []Item
	pendingBins  []PendingBin

	nextRID, nextBID int

	packer     *multiBinPacker
	placements []Placement
	unplaced   []Item
}

// NewOrchestrator constructs an empty Orchestrator under the given
// configuration.
func NewOrchestrator(cfg Config) *Orchestrator {
	return &Orchestrator{cfg: cfg, packer: newMultiBinPacker()}
}

// AddItem stages an item for the next Pack call. If rid is 0 ("unset" per
// spec.md 3) a synthetic id is assigned, one greater than the largest id
// seen so far among staged items.
func (o *Orchestrator) AddItem(width, height, rid int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: item %dx%d", ErrInvalidDimension, width, height)
	}
	if rid == 0 {
		o.nextRID++
		rid = o.nextRID
	} else if rid > o.nextRID {
		o.nextRID = rid
	}
	o.pendingItems = append(o.pendingItems, Item{Width: width, Height: height, RID: rid})
	return nil
}

// AddBin stages a bin descriptor for the next Pack call, good for count
// instances of a width x height bin at the given cost. If bid is 0 a
// synthetic id is assigned the same way AddItem assigns rid.
func (o *Orchestrator) AddBin(width, height int, cost float64, count, bid int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: bin %dx%d", ErrInvalidDimension, width, height)
	}
	if count <= 0 {
		count = 1
	}
	if bid == 0 {
		o.nextBID++
		bid = o.nextBID
	} else if bid > o.nextBID {
		o.nextBID = bid
	}
	o.pendingBins = append(o.pendingBins, PendingBin{Width: width, Height: height, Cost: cost, Count: count, BID: bid})
	return nil
}

// Pack resets all prior packing state, installs staged bin descriptors
// (pre-sorted by effectiveness), sorts staged items by the configured
// policy, and feeds them one by one to the multi-bin packer (spec.md 4.7).
// Zero items or zero bins is a no-op, not an error (spec.md 9).
func (o *Orchestrator) Pack() error {
	o.packer = newMultiBinPacker()
	o.placements = nil
	o.unplaced = nil

	if len(o.pendingItems) == 0 || len(o.pendingBins) == 0 {
		return nil
	}

	for _, pb := range o.sortBinsByEffectiveness() {
		factory := newBinFactory(pb.BID, pb.Width, pb.Height, pb.Cost, pb.Count, o.cfg.PackAlgo, o.cfg.Policy, o.cfg.Split, o.cfg.Rotation)
		o.packer.addBin(factory)
	}

	items := o.sortedItems()
	for _, it := range items {
		rect, bin, ok := o.packer.addItem(it.Width, it.Height, it.RID)
		if !ok {
			o.unplaced = append(o.unplaced, it)
			continue
		}
		o.placements = append(o.placements, Placement{
			BinIndex: o.binIndex(bin),
			BID:      bin.BID,
			X:        rect.X, Y: rect.Y, Width: rect.Width, Height: rect.Height, RID: rect.RID,
		})
	}
	return nil
}

func (o *Orchestrator) binIndex(target *BinInstance) int {
	for i, b := range o.packer.allBins() {
		if b == target {
			return i
		}
	}
	return -1
}

// sortedItems returns the staged items ordered per the configured
// ItemSortPolicy, without mutating the staging buffer.
func (o *Orchestrator) sortedItems() []Item {
	items := slices.Clone(o.pendingItems)
	if o.cfg.SortAlgo == SortArea {
		sortByArea(items)
	}
	return items
}

// sortBinsByEffectiveness implements spec.md 4.7's bin effectiveness
// ordering: fit_ratio * cost_effectiveness, descending.
func (o *Orchestrator) sortBinsByEffectiveness() []PendingBin {
	totalItemArea := 0
	for _, it := range o.pendingItems {
		totalItemArea += it.Width * it.Height
	}

	bins := slices.Clone(o.pendingBins)
	effectiveness := make(map[int]float64, len(bins))
	for _, b := range bins {
		area := float64(b.Width * b.Height)
		fitRatio := min(float64(totalItemArea), area) / area
		costEffectiveness := area / b.Cost
		effectiveness[b.BID] = fitRatio * costEffectiveness
	}

	slices.SortStableFunc(bins, func(a, b PendingBin) int {
		return cmp.Compare(effectiveness[b.BID], effectiveness[a.BID])
	})
	return bins
}

// RectList returns every successful placement made by the last Pack call,
// as (bin_index, x, y, w, h, rid) tuples (spec.md 6.3).
func (o *Orchestrator) RectList() []Placement {
	return o.placements
}

// Unplaced returns the items from the last Pack call that could not be
// placed in any bin (spec.md 7's "Unplaceable item").
func (o *Orchestrator) Unplaced() []Item {
	return o.unplaced
}

// BinInfo describes one bin that received at least one placement.
type BinInfo struct {
	Width, Height, BID int
}

// BinList returns the dimensions and id of every bin containing at least
// one item (spec.md 6.3).
func (o *Orchestrator) BinList() []BinInfo {
	var infos []BinInfo
	for _, b := range o.packer.allBins() {
		if len(b.Placed()) > 0 {
			infos = append(infos, BinInfo{Width: b.Width, Height: b.Height, BID: b.BID})
		}
	}
	return infos
}

// Bin returns the BinInstance at the given position among every bin opened
// by the last Pack call, mirroring the Python original's __getitem__.
// A negative index counts from the end. Out of range indices are an
// Out-of-range index error (spec.md 7).
func (o *Orchestrator) Bin(index int) (*BinInstance, error) {
	bins := o.packer.allBins()
	size := len(bins)
	if index < 0 {
		index += size
	}
	if index < 0 || index >= size {
		return nil, fmt.Errorf("%w: index %d, have %d bins", ErrOutOfRange, index, size)
	}
	return bins[index], nil
}

// TotalCost sums the cost of every bin containing at least one item.
func (o *Orchestrator) TotalCost() float64 {
	total := 0.0
	for _, b := range o.packer.allBins() {
		if len(b.Placed()) > 0 {
			total += b.Cost
		}
	}
	return total
}

// Validate re-checks I1 and I2 across every bin touched by the last Pack
// call (spec.md 6.3).
func (o *Orchestrator) Validate() error {
	for _, b := range o.packer.allBins() {
		if err := b.Validate(); err != nil {
			return err
		}
	}
	return nil
}
