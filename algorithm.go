package rectpack

import "fmt"

// Engine is implemented by every placement-engine variant: the mandated
// MaxRects engine (spec.md 4.2) plus the optional Guillotine and Skyline
// engines from SPEC_FULL.md 4.8. BinInstance drives whichever Engine its
// BinFactory was configured with.
type Engine interface {
	// Reset discards all placements and free-space bookkeeping, sizing the
	// surface to width x height.
	Reset(width, height int)
	// TryPlace attempts to place an item, returning the placed rectangle
	// and true on success, or the zero Rect and false, leaving all engine
	// state unchanged, on failure.
	TryPlace(width, height, rid int) (Rect, bool)
	// FitsSurface reports whether an item could possibly fit the surface
	// dimensions, ignoring current placements.
	FitsSurface(width, height int) bool
	// Placed returns every rectangle placed so far, in placement order.
	Placed() []Rect
}

// AlgorithmKind selects which Engine implementation a BinFactory produces.
type AlgorithmKind int

const (
	// AlgoMaxRects selects the MaxRects engine (spec.md 4.2); the default
	// and the only engine the core invariants are specified against.
	AlgoMaxRects AlgorithmKind = iota
	// AlgoGuillotine selects the Guillotine engine (SPEC_FULL.md 4.8).
	AlgoGuillotine
	// AlgoSkyline selects the Skyline engine (SPEC_FULL.md 4.8).
	AlgoSkyline
)

// String returns the canonical short name of the algorithm kind.
func (k AlgorithmKind) String() string {
	switch k {
	case AlgoMaxRects:
		return "MAXRECTS"
	case AlgoGuillotine:
		return "GUILLOTINE"
	case AlgoSkyline:
		return "SKYLINE"
	default:
		return fmt.Sprintf("AlgorithmKind(%d)", int(k))
	}
}

// ParseAlgorithmKind maps a pack_algo name to its AlgorithmKind (SPEC_FULL.md
// 4.8). Unrecognized names are an Unknown policy error (spec.md 7).
func ParseAlgorithmKind(name string) (AlgorithmKind, error) {
	switch name {
	case "MAXRECTS", "maxrects":
		return AlgoMaxRects, nil
	case "GUILLOTINE", "guillotine":
		return AlgoGuillotine, nil
	case "SKYLINE", "skyline":
		return AlgoSkyline, nil
	default:
		return 0, fmt.Errorf("%w: algorithm %q", ErrUnknownPolicy, name)
	}
}

// newEngine constructs the Engine for the given algorithm kind, policy and
// split heuristic (the latter only meaningful for Guillotine).
func newEngine(kind AlgorithmKind, width, height int, policy FitnessPolicy, split GuillotineSplit, rotation bool) (Engine, error) {
	switch kind {
	case AlgoMaxRects:
		return NewMaxRects(width, height, policy, rotation), nil
	case AlgoGuillotine:
		return NewGuillotine(width, height, policy, split, rotation), nil
	case AlgoSkyline:
		return NewSkyline(width, height, policy, rotation), nil
	default:
		return nil, ErrUnknownPolicy
	}
}
