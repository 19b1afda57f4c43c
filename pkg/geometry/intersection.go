package geometry

import (
	"math"
	"sort"
)

// Intersection records where along a ray a shape was hit
type Intersection struct {
	T      float64
	Object Shape
}

// NewIntersection creates a new intersection
func NewIntersection(t float64, object Shape) Intersection {
	return Intersection{T: t, Object: object}
}

// NoHit is returned by Hit when no intersection has a positive t
var NoHit = Intersection{T: math.NaN()}

// IsHit reports whether the intersection is a real hit rather than NoHit
func (i Intersection) IsHit() bool {
	return !math.IsNaN(i.T)
}

// Intersections is a list of intersections, kept sorted by t by its producers
type Intersections []Intersection

// NewIntersections sorts the given intersections by t and returns them
func NewIntersections(xs ...Intersection) Intersections {
	result := Intersections(xs)
	result.Sort()
	return result
}

// Sort orders the intersections by ascending t
func (xs Intersections) Sort() {
	sort.SliceStable(xs, func(i, j int) bool {
		return xs[i].T < xs[j].T
	})
}

// Hit returns the first intersection with t > 0, or NoHit.
// The list must already be sorted.
func (xs Intersections) Hit() Intersection {
	for _, x := range xs {
		if x.T > 0 {
			return x
		}
	}
	return NoHit
}
