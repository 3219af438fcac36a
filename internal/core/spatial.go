package core

import "math"

// HitTest returns the element whose hit box contains the world-space
// point, or nil. Elements are scanned in table order and the last match
// wins, so when icons overlap the later one takes the hit. Boxes are
// half-open: a point exactly on the left or top inset edge is inside, one
// exactly on the right or bottom inset edge is not.
func HitTest(world Vec, elements []*Element) *Element {
	var hit *Element
	for _, el := range elements {
		a, b := el.HitBox()
		if world.Within(a, b) {
			hit = el
		}
	}
	return hit
}

// NearestIndex returns the index of the element whose corner is closest to
// ref by Euclidean distance. The first minimum wins ties. Returns -1 for
// an empty slice.
func NearestIndex(ref Vec, elements []*Element) int {
	best := -1
	bestDist := math.Inf(1)
	for i, el := range elements {
		if d := el.Pos.Dist(ref); d < bestDist {
			best = i
			bestDist = d
		}
	}
	return best
}

// Advance moves a table index by a signed offset, wrapping cyclically.
// The result is never negative. count must be positive.
func Advance(index, offset, count int) int {
	return ((index+offset)%count + count) % count
}
