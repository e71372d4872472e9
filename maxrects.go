package rectpack

// MaxRects is the maximal-free-rectangle placement engine described in
// spec.md 4.2. It maintains a set of free regions for a single bin surface
// and places one item at a time, splitting and deduplicating the free set
// on every successful placement.
type MaxRects struct {
	width, height int
	policy        FitnessPolicy
	rotation      bool
	freeRegions   []Rect
	placed        []Rect
}

// NewMaxRects constructs a MaxRects engine for a surface of the given size.
func NewMaxRects(width, height int, policy FitnessPolicy, rotationAllowed bool) *MaxRects {
	m := &MaxRects{policy: policy, rotation: rotationAllowed}
	m.Reset(width, height)
	return m
}

// Reset returns the engine to its initial state for a (possibly new) surface
// size, discarding all placements and free regions.
func (m *MaxRects) Reset(width, height int) {
	m.width, m.height = width, height
	m.freeRegions = []Rect{NewRect(0, 0, width, height)}
	m.placed = m.placed[:0]
}

// Placed returns the rectangles placed so far, in placement order. The
// backing slice is owned by the engine.
func (m *MaxRects) Placed() []Rect {
	return m.placed
}

// FreeRegions returns the current maximal free rectangles. The backing
// slice is owned by the engine; callers that mutate it must copy first.
func (m *MaxRects) FreeRegions() []Rect {
	return m.freeRegions
}

// FitsSurface reports whether an item of size width x height could possibly
// fit the surface, ignoring current placements (spec.md 4.2.3).
func (m *MaxRects) FitsSurface(width, height int) bool {
	if width <= m.width && height <= m.height {
		return true
	}
	if m.rotation && height <= m.width && width <= m.height {
		return true
	}
	return false
}

// Fitness returns the best score achievable for an item of the given size
// without committing to a placement, or ok=false if no free region admits
// it in any allowed orientation.
func (m *MaxRects) Fitness(width, height int) (score int, ok bool) {
	_, p, _, ok := m.bestCandidate(width, height)
	if !ok {
		return 0, false
	}
	return p, true
}

// candidate is one (free region, oriented size) pairing under evaluation.
type candidate struct {
	region Rect
	w, h   int
}

// bestCandidate scans every free region for the best-scoring placement of
// an item sized width x height, trying the rotated orientation too when
// rotation is allowed. Ties are broken by the policy's secondary key, and
// failing that by the order free regions were discovered (spec.md 4.2 and
// 4.3).
func (m *MaxRects) bestCandidate(width, height int) (best candidate, bestP, bestS int, ok bool) {
	for _, fr := range m.freeRegions {
		if width <= fr.Width && height <= fr.Height {
			p, s := m.policy.score(fr, width, height)
			if !ok || lessScore(p, s, bestP, bestS) {
				best, bestP, bestS, ok = candidate{fr, width, height}, p, s, true
			}
		}
		if m.rotation && height <= fr.Width && width <= fr.Height {
			p, s := m.policy.score(fr, height, width)
			if !ok || lessScore(p, s, bestP, bestS) {
				best, bestP, bestS, ok = candidate{fr, height, width}, p, s, true
			}
		}
	}
	return
}

// TryPlace attempts to place an item of size width x height, returning the
// placed rectangle (carrying rid) and true on success. On failure, no state
// is changed and the zero Rect is returned with false (spec.md 4.2 step 3).
func (m *MaxRects) TryPlace(width, height, rid int) (Rect, bool) {
	if width <= 0 || height <= 0 {
		return Rect{}, false
	}

	best, _, _, ok := m.bestCandidate(width, height)
	if !ok {
		return Rect{}, false
	}

	placed := Rect{X: best.region.X, Y: best.region.Y, Width: best.w, Height: best.h, RID: rid}
	m.placed = append(m.placed, placed)
	m.split(placed)
	m.dedup()
	return placed, true
}

// split removes every free region that strictly intersects r and replaces
// it with up to four maximal splinter strips (spec.md 4.2.1).
func (m *MaxRects) split(r Rect) {
	kept := make([]Rect, 0, len(m.freeRegions))
	for _, f := range m.freeRegions {
		if !Intersects(f, r) {
			kept = append(kept, f)
			continue
		}
		if r.Left() > f.Left() {
			kept = append(kept, NewRect(f.Left(), f.Bottom(), r.Left()-f.Left(), f.Height))
		}
		if r.Right() < f.Right() {
			kept = append(kept, NewRect(r.Right(), f.Bottom(), f.Right()-r.Right(), f.Height))
		}
		if r.Top() < f.Top() {
			kept = append(kept, NewRect(f.Left(), r.Top(), f.Width, f.Top()-r.Top()))
		}
		if r.Bottom() > f.Bottom() {
			kept = append(kept, NewRect(f.Left(), f.Bottom(), f.Width, r.Bottom()-f.Bottom()))
		}
	}
	m.freeRegions = kept
}

// dedup eliminates every free region contained by another, restoring I4.
// This is the O(n^2) sweep spec.md 4.2.2 explicitly permits: for every
// unordered pair (p, q), drop q if p contains it, else drop p if q contains
// it. Transitivity of containment means the single break-on-drop pass below
// still reaches full coverage without revisiting dropped rows.
func (m *MaxRects) dedup() {
	regions := m.freeRegions
	dropped := make([]bool, len(regions))
	for i := 0; i < len(regions); i++ {
		if dropped[i] {
			continue
		}
		for j := i + 1; j < len(regions); j++ {
			if dropped[j] {
				continue
			}
			switch {
			case Contains(regions[i], regions[j]):
				dropped[j] = true
			case Contains(regions[j], regions[i]):
				dropped[i] = true
			}
			if dropped[i] {
				break
			}
		}
	}

	kept := make([]Rect, 0, len(regions))
	for i, r := range regions {
		if !dropped[i] {
			kept = append(kept, r)
		}
	}
	m.freeRegions = kept
}
