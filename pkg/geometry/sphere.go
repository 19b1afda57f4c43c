package geometry

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// Sphere is a unit sphere centered at the object-space origin
type Sphere struct {
	Base
}

// NewSphere creates a unit sphere with the identity transform and a default material
func NewSphere() *Sphere {
	return &Sphere{Base: NewBase()}
}

// NewGlassSphere creates a unit sphere with a fully transparent glass material
func NewGlassSphere() *Sphere {
	s := NewSphere()
	s.SetMaterial(material.NewGlass())
	return s
}

// LocalIntersect solves |O + tD|^2 = 1 for t
func (s *Sphere) LocalIntersect(ray core.Ray) Intersections {
	// vector from the sphere's center to the ray origin
	sphereToRay := ray.Origin.Subtract(core.Point(0, 0, 0))

	a := ray.Direction.Dot(ray.Direction)
	b := 2 * ray.Direction.Dot(sphereToRay)
	c := sphereToRay.Dot(sphereToRay) - 1

	discriminant := b*b - 4*a*c
	if discriminant < 0 {
		return nil
	}

	sqrtD := math.Sqrt(discriminant)
	t1 := (-b - sqrtD) / (2 * a)
	t2 := (-b + sqrtD) / (2 * a)
	return Intersections{NewIntersection(t1, s), NewIntersection(t2, s)}
}

// LocalNormalAt returns the vector from the center to the point
func (s *Sphere) LocalNormalAt(point core.Tuple) core.Tuple {
	return point.Subtract(core.Point(0, 0, 0))
}

// LocalBounds implements the Shape interface
func (s *Sphere) LocalBounds() core.Bounds {
	return core.NewBounds(core.Point(-1, -1, -1), core.Point(1, 1, 1))
}
