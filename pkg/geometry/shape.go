package geometry

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// Shape is a primitive or group that can be placed in a world.
//
// The Local* methods work in the shape's object space. Everything else is
// supplied by embedding Base.
type Shape interface {
	// LocalIntersect intersects a ray already transformed into object space
	LocalIntersect(ray core.Ray) Intersections
	// LocalNormalAt returns the object-space normal at an object-space point
	LocalNormalAt(point core.Tuple) core.Tuple
	// LocalBounds returns the object-space bounding box
	LocalBounds() core.Bounds

	Transform() core.Matrix
	InverseTransform() core.Matrix
	SetTransform(m core.Matrix)
	Material() *material.Material
	SetMaterial(m *material.Material)
	Parent() *Group
	WorldToObject(point core.Tuple) core.Tuple
	NormalToWorld(normal core.Tuple) core.Tuple

	setParent(g *Group)
}

// Base carries the state every shape shares: the object-to-parent
// transform, the material and the enclosing group.
type Base struct {
	transform        core.Matrix
	inverse          core.Matrix
	inverseTranspose core.Matrix
	material         *material.Material
	parent           *Group // non-owning, only used for space conversion
}

// NewBase returns a Base with the identity transform and a default material
func NewBase() Base {
	return Base{
		transform:        core.Identity(),
		inverse:          core.Identity(),
		inverseTranspose: core.Identity(),
		material:         material.NewMaterial(),
	}
}

// Transform returns the object-to-parent transform
func (b *Base) Transform() core.Matrix { return b.transform }

// InverseTransform returns the cached inverse of Transform
func (b *Base) InverseTransform() core.Matrix { return b.inverse }

// SetTransform replaces the transform and refreshes the cached inverses.
// It panics if m is singular.
func (b *Base) SetTransform(m core.Matrix) {
	b.transform = m
	b.inverse = m.MustInverse()
	b.inverseTranspose = b.inverse.Transpose()
}

// Material returns the shape's material handle
func (b *Base) Material() *material.Material { return b.material }

// SetMaterial replaces the material handle. The material may be shared.
func (b *Base) SetMaterial(m *material.Material) { b.material = m }

// Parent returns the enclosing group, or nil for a top-level shape
func (b *Base) Parent() *Group { return b.parent }

func (b *Base) setParent(g *Group) { b.parent = g }

// WorldToObject converts a world-space point into this shape's object space,
// passing through every enclosing group from the outermost in
func (b *Base) WorldToObject(point core.Tuple) core.Tuple {
	if b.parent != nil {
		point = b.parent.WorldToObject(point)
	}
	return b.inverse.MulTuple(point)
}

// NormalToWorld converts an object-space normal into world space,
// passing through every enclosing group from the innermost out
func (b *Base) NormalToWorld(normal core.Tuple) core.Tuple {
	normal = b.inverseTranspose.MulTuple(normal)
	normal.W = 0

	if b.parent != nil {
		return b.parent.NormalToWorld(normal)
	}
	return normal.Normalize()
}

// Intersect transforms the ray into the shape's object space and intersects it
func Intersect(s Shape, ray core.Ray) Intersections {
	return s.LocalIntersect(ray.Transform(s.InverseTransform()))
}

// NormalAt returns the world-space unit normal at a world-space point on s
func NormalAt(s Shape, worldPoint core.Tuple) core.Tuple {
	localPoint := s.WorldToObject(worldPoint)
	localNormal := s.LocalNormalAt(localPoint)
	return s.NormalToWorld(localNormal)
}

// ParentSpaceBounds returns the shape's bounding box expressed in its parent's space
func ParentSpaceBounds(s Shape) core.Bounds {
	return s.LocalBounds().Transform(s.Transform())
}
