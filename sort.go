package rectpack

import (
	"cmp"
	"fmt"
	"slices"
)

// ItemSortPolicy selects how the orchestrator orders staged items before
// packing (spec.md 4.7).
type ItemSortPolicy int

const (
	// SortArea orders items by descending area, largest first.
	SortArea ItemSortPolicy = iota
	// SortNone preserves the caller's staging order.
	SortNone
)

// ParseItemSortPolicy parses a sort_algo value, as given by the CLI's
// --sort flag or a preset's sort_algo field.
func ParseItemSortPolicy(name string) (ItemSortPolicy, error) {
	switch name {
	case "SORT_AREA", "AREA":
		return SortArea, nil
	case "SORT_NONE", "NONE":
		return SortNone, nil
	default:
		return 0, fmt.Errorf("%w: sort_algo %q", ErrUnknownPolicy, name)
	}
}

func (p ItemSortPolicy) String() string {
	switch p {
	case SortArea:
		return "SORT_AREA"
	case SortNone:
		return "SORT_NONE"
	default:
		return "SORT_UNKNOWN"
	}
}

// sortByArea sorts items in descending order of width*height, the
// teacher's SortArea comparator generalized to the staged Item type.
func sortByArea(items []Item) {
	slices.SortStableFunc(items, func(a, b Item) int {
		return cmp.Compare(b.Width*b.Height, a.Width*a.Height)
	})
}
