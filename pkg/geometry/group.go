package geometry

import "github.com/df07/go-whitted-raytracer/pkg/core"

// Group is a shape made of other shapes. Its transform applies to every child.
type Group struct {
	Base
	children []Shape
}

// NewGroup creates an empty group
func NewGroup() *Group {
	return &Group{Base: NewBase()}
}

// AddChild appends s to the group and makes the group its parent.
// A shape belongs to at most one group.
func (g *Group) AddChild(s Shape) {
	g.children = append(g.children, s)
	s.setParent(g)
}

// Children returns the group's members in insertion order
func (g *Group) Children() []Shape {
	return g.children
}

// Len returns the number of children
func (g *Group) Len() int {
	return len(g.children)
}

// LocalIntersect intersects every child with the group-space ray and sorts the result
func (g *Group) LocalIntersect(ray core.Ray) Intersections {
	var xs Intersections
	for _, child := range g.children {
		xs = append(xs, Intersect(child, ray)...)
	}
	xs.Sort()
	return xs
}

// LocalNormalAt panics: normals are always computed on the primitive that was hit
func (g *Group) LocalNormalAt(point core.Tuple) core.Tuple {
	panic("geometry: LocalNormalAt called on a group")
}

// LocalBounds returns the union of every child's bounds in group space
func (g *Group) LocalBounds() core.Bounds {
	box := core.EmptyBounds()
	for _, child := range g.children {
		box = box.Merge(ParentSpaceBounds(child))
	}
	return box
}
