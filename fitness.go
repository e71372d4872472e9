package rectpack

import "fmt"

// FitnessPolicy scores a candidate placement of an item oriented to
// width x height inside a free region. Smaller is better; ties are broken
// by secondary, and failing that by the stable order in which candidates
// were discovered (spec.md 4.3).
type FitnessPolicy int

const (
	// BSSF (Best Short-Side Fit) minimizes the smaller leftover dimension.
	BSSF FitnessPolicy = iota
	// BLSF (Best Long-Side Fit) minimizes the larger leftover dimension.
	BLSF
	// BAF (Best Area Fit) prefers the free region closest in area to the item.
	BAF
	// BL (Bottom-Left) prefers the lowest, then left-most, placement.
	BL
)

// String returns the canonical short name of the policy.
func (f FitnessPolicy) String() string {
	switch f {
	case BSSF:
		return "BSSF"
	case BLSF:
		return "BLSF"
	case BAF:
		return "BAF"
	case BL:
		return "BL"
	default:
		return fmt.Sprintf("FitnessPolicy(%d)", int(f))
	}
}

// ParseFitnessPolicy maps a case-sensitive policy name to its value. An
// unrecognized name is an Unknown policy error (spec.md 7).
func ParseFitnessPolicy(name string) (FitnessPolicy, error) {
	switch name {
	case "BSSF", "bssf":
		return BSSF, nil
	case "BLSF", "blsf":
		return BLSF, nil
	case "BAF", "baf":
		return BAF, nil
	case "BL", "bl":
		return BL, nil
	default:
		return 0, fmt.Errorf("%w: pack_algo %q", ErrUnknownPolicy, name)
	}
}

// score computes the (primary, secondary) score tuple for placing an item
// of size width x height into free region m, under the receiver's policy.
// The caller is responsible for having already checked that the item fits.
func (f FitnessPolicy) score(m Rect, width, height int) (primary, secondary int) {
	leftoverX := m.Width - width
	leftoverY := m.Height - height

	switch f {
	case BLSF:
		return max(leftoverX, leftoverY), 0
	case BAF:
		return m.Width*m.Height - width*height, 0
	case BL:
		return m.Y + height, m.X
	default: // BSSF
		return min(leftoverX, leftoverY), 0
	}
}

// lessScore reports whether score (p1, s1) ranks strictly better than (p2, s2).
func lessScore(p1, s1, p2, s2 int) bool {
	return p1 < p2 || (p1 == p2 && s1 < s2)
}
