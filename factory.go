package rectpack

// BinFactory is a template for producing identical BinInstance values on
// demand: a bin's dimensions, cost and algorithm configuration, plus a
// remaining count of how many such bins are still available (spec.md 4.4,
// grounded on original_source/C2DLMC/packer.py's BinFactory).
type BinFactory struct {
	bid           int
	width, height int
	cost          float64
	remaining     int
	kind          AlgorithmKind
	policy        FitnessPolicy
	split         GuillotineSplit
	rotation      bool

	refBin Engine // lazily built, used only to answer fitness/fit queries
}

func newBinFactory(bid, width, height int, cost float64, count int, kind AlgorithmKind, policy FitnessPolicy, split GuillotineSplit, rotation bool) *BinFactory {
	return &BinFactory{
		bid: bid, width: width, height: height, cost: cost, remaining: count,
		kind: kind, policy: policy, split: split, rotation: rotation,
	}
}

// isEmpty reports whether the factory has no bins left to hand out.
func (f *BinFactory) isEmpty() bool {
	return f.remaining < 1
}

func (f *BinFactory) referenceEngine() Engine {
	if f.refBin == nil {
		// newEngine cannot fail here: kind/policy/split were already
		// validated when the factory was registered.
		f.refBin, _ = newEngine(f.kind, f.width, f.height, f.policy, f.split, f.rotation)
	}
	return f.refBin
}

// fitsInside reports whether an item of the given size could fit an empty
// bin produced by this factory, without consuming one.
func (f *BinFactory) fitsInside(width, height int) bool {
	return f.referenceEngine().FitsSurface(width, height)
}

// newBin consumes one unit of the factory's remaining count and returns a
// freshly constructed BinInstance, or nil if the factory is depleted.
func (f *BinFactory) newBin() *BinInstance {
	if f.remaining < 1 {
		return nil
	}
	f.remaining--
	engine, err := newEngine(f.kind, f.width, f.height, f.policy, f.split, f.rotation)
	if err != nil {
		return nil
	}
	return newBinInstance(f.bid, f.width, f.height, f.cost, engine)
}

// less orders factories by ascending (cost, area): the cheaper factory
// first, and among equal costs the one with the smaller bin area.
func (f *BinFactory) less(other *BinFactory) bool {
	if f.cost != other.cost {
		return f.cost < other.cost
	}
	return f.width*f.height < other.width*other.height
}

// factoryPool is an insertion-ordered collection of BinFactory values keyed
// by a monotonic id. Keyed lookup is O(1); keyed deletion is O(n), since
// the key must also be spliced out of the order slice (see delete). It
// generalizes the Python original's collections.OrderedDict(int -> BinFactory).
type factoryPool struct {
	next    int
	entries map[int]*BinFactory
	order   []int
}

func newFactoryPool() *factoryPool {
	return &factoryPool{entries: make(map[int]*BinFactory)}
}

// add registers a factory and returns its pool key.
func (p *factoryPool) add(f *BinFactory) int {
	key := p.next
	p.next++
	p.entries[key] = f
	p.order = append(p.order, key)
	return key
}

// delete removes a factory by key, preserving the relative order of the
// remaining entries. The map delete is O(1); the order slice still needs an
// O(n) scan to splice the key out, same complexity trade the Python
// original accepts by using an OrderedDict.
func (p *factoryPool) delete(key int) {
	delete(p.entries, key)
	for i, k := range p.order {
		if k == key {
			p.order = append(p.order[:i], p.order[i+1:]...)
			break
		}
	}
}

// each iterates live factories in insertion order, stopping early if fn
// returns false.
func (p *factoryPool) each(fn func(key int, f *BinFactory) bool) {
	for _, key := range p.order {
		f, ok := p.entries[key]
		if !ok {
			continue
		}
		if !fn(key, f) {
			return
		}
	}
}

func (p *factoryPool) len() int {
	return len(p.order)
}
