package geometry

import "sort"

// Intersection records where along a ray a shape was struck
type Intersection struct {
	T      float64
	Object ShapeID
}

// NewIntersection creates a new intersection
func NewIntersection(t float64, object ShapeID) Intersection {
	return Intersection{T: t, Object: object}
}

// Intersections is a list of intersections, usually in ascending t order
type Intersections []Intersection

// Sort orders the intersections by ascending t
func (xs Intersections) Sort() {
	sort.SliceStable(xs, func(i, j int) bool {
		return xs[i].T < xs[j].T
	})
}

// Hit returns the intersection with the smallest non-negative t. NaN values never hit.
// The list does not need to be sorted.
func (xs Intersections) Hit() (Intersection, bool) {
	best := -1
	for i, x := range xs {
		// Negated so NaN is skipped too
		if !(x.T >= 0) {
			continue
		}
		if best < 0 || x.T < xs[best].T {
			best = i
		}
	}
	if best < 0 {
		return Intersection{}, false
	}
	return xs[best], true
}
