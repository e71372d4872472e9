package rectpack

import "math"

// skylineNode is one horizontal segment of the skyline profile.
type skylineNode struct {
	X, Y, Width int
}

// Skyline is the skyline placement engine (SPEC_FULL.md 4.8), grounded on
// the teacher's skyline.go. It tracks the profile of placed items as a
// sequence of horizontal segments instead of a maximal free-rectangle set,
// trading some packing density for a much smaller amount of bookkeeping.
type Skyline struct {
	width, height int
	rotation      bool
	minWaste      bool
	skyline       []skylineNode
	wasteMap      *Guillotine
	placed        []Rect
}

// NewSkyline constructs a Skyline engine. Only BL (bottom-left level
// selection) and BAF (read here as "minimize wasted area", the skyline
// engine's own min-waste heuristic) carry meaning for Skyline; any other
// policy falls back to BL.
func NewSkyline(width, height int, policy FitnessPolicy, rotationAllowed bool) *Skyline {
	s := &Skyline{rotation: rotationAllowed, minWaste: policy == BAF}
	s.Reset(width, height)
	return s
}

// Reset discards all placements and resets the skyline profile.
func (s *Skyline) Reset(width, height int) {
	s.width, s.height = width, height
	s.skyline = []skylineNode{{X: 0, Y: 0, Width: width}}
	s.placed = s.placed[:0]
	if s.minWaste {
		s.wasteMap = NewGuillotine(width, height, BAF, SplitMinimizeArea, s.rotation)
		s.wasteMap.freeRects = s.wasteMap.freeRects[:0]
	} else {
		s.wasteMap = nil
	}
}

// Placed returns the rectangles placed so far, in placement order.
func (s *Skyline) Placed() []Rect {
	return s.placed
}

// FitsSurface reports whether an item could possibly fit the surface.
func (s *Skyline) FitsSurface(width, height int) bool {
	if width <= s.width && height <= s.height {
		return true
	}
	if s.rotation && height <= s.width && width <= s.height {
		return true
	}
	return false
}

func (s *Skyline) testFit(index, width, height int) (y int, ok bool) {
	x := s.skyline[index].X
	if x+width > s.width {
		return 0, false
	}
	widthLeft := width
	i := index
	y = s.skyline[index].Y
	for widthLeft > 0 {
		if i >= len(s.skyline) {
			return 0, false
		}
		y = max(y, s.skyline[i].Y)
		if y+height > s.height {
			return 0, false
		}
		widthLeft -= s.skyline[i].Width
		i++
	}
	return y, true
}

func (s *Skyline) wastedArea(index, width, y int) int {
	waste := 0
	left := s.skyline[index].X
	right := left + width
	for i := index; i < len(s.skyline) && s.skyline[i].X < right; i++ {
		segLeft := s.skyline[i].X
		segRight := min(right, segLeft+s.skyline[i].Width)
		waste += (segRight - segLeft) * (y - s.skyline[i].Y)
	}
	return waste
}

// TryPlace attempts to place an item of size width x height onto the
// lowest, then narrowest (BL) or least-wasteful (min-waste) skyline
// position.
func (s *Skyline) TryPlace(width, height, rid int) (Rect, bool) {
	if width <= 0 || height <= 0 {
		return Rect{}, false
	}

	bestIndex := -1
	bestPrimary := math.MaxInt
	bestSecondary := math.MaxInt
	bestW, bestH, bestY := 0, 0, 0

	consider := func(index, w, h int) {
		y, ok := s.testFit(index, w, h)
		if !ok {
			return
		}
		var primary, secondary int
		if s.minWaste {
			primary = s.wastedArea(index, w, y)
			secondary = y + h
		} else {
			primary = y + h
			secondary = s.skyline[index].Width
		}
		if primary < bestPrimary || (primary == bestPrimary && secondary < bestSecondary) {
			bestIndex, bestPrimary, bestSecondary = index, primary, secondary
			bestW, bestH, bestY = w, h, y
		}
	}

	for i := range s.skyline {
		consider(i, width, height)
		if s.rotation {
			consider(i, height, width)
		}
	}
	if bestIndex == -1 {
		return Rect{}, false
	}

	placed := Rect{X: s.skyline[bestIndex].X, Y: bestY, Width: bestW, Height: bestH, RID: rid}
	s.addLevel(bestIndex, placed)
	s.placed = append(s.placed, placed)
	return placed, true
}

func (s *Skyline) addLevel(index int, rect Rect) {
	if s.wasteMap != nil {
		s.addWaste(index, rect)
	}

	node := skylineNode{X: rect.X, Y: rect.Y + rect.Height, Width: rect.Width}
	s.skyline = append(s.skyline, skylineNode{})
	copy(s.skyline[index+1:], s.skyline[index:])
	s.skyline[index] = node

	for i := index + 1; i < len(s.skyline); i++ {
		if s.skyline[i].X < s.skyline[i-1].X+s.skyline[i-1].Width {
			shrink := s.skyline[i-1].X + s.skyline[i-1].Width - s.skyline[i].X
			s.skyline[i].X += shrink
			s.skyline[i].Width -= shrink
			if s.skyline[i].Width <= 0 {
				s.skyline = append(s.skyline[:i], s.skyline[i+1:]...)
				i--
			} else {
				break
			}
		} else {
			break
		}
	}
	s.mergeSkyline()
}

func (s *Skyline) addWaste(index int, rect Rect) {
	right := s.skyline[index].X + rect.Width
	for i := index; i < len(s.skyline) && s.skyline[i].X < right; i++ {
		segLeft := s.skyline[i].X
		segRight := min(right, segLeft+s.skyline[i].Width)
		waste := Rect{X: segLeft, Y: s.skyline[i].Y, Width: segRight - segLeft, Height: rect.Y - s.skyline[i].Y}
		if waste.Width > 0 && waste.Height > 0 {
			s.wasteMap.freeRects = append(s.wasteMap.freeRects, waste)
		}
	}
}

func (s *Skyline) mergeSkyline() {
	for i := 0; i < len(s.skyline)-1; i++ {
		if s.skyline[i].Y == s.skyline[i+1].Y {
			s.skyline[i].Width += s.skyline[i+1].Width
			s.skyline = append(s.skyline[:i+1], s.skyline[i+2:]...)
			i--
		}
	}
}
