package scene

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// World holds the shapes and the light a render traces against.
// It is read-only while a render is running.
type World struct {
	Shapes []geometry.Shape   // top-level shapes, order is not significant
	Light  *lights.PointLight // nil leaves every surface unlit
}

// NewWorld creates an empty world with no light
func NewWorld() *World {
	return &World{}
}

// DefaultWorld creates the two-sphere world used throughout the tests:
// a unit sphere with a green-ish material and a half-size sphere inside it,
// lit by a white light at (-10, 10, -10)
func DefaultWorld() *World {
	w := NewWorld()
	w.Light = lights.NewPointLight(core.Point(-10, 10, -10), core.White)

	s1 := geometry.NewSphere()
	m := material.NewMaterial()
	m.Color = core.NewColor(0.8, 1.0, 0.6)
	m.Diffuse = 0.7
	m.Specular = 0.2
	s1.SetMaterial(m)

	s2 := geometry.NewSphere()
	s2.SetTransform(core.Scaling(0.5, 0.5, 0.5))

	w.AddShape(s1, s2)
	return w
}

// AddShape appends top-level shapes to the world
func (w *World) AddShape(shapes ...geometry.Shape) {
	w.Shapes = append(w.Shapes, shapes...)
}

// Contains reports whether s is one of the world's top-level shapes
func (w *World) Contains(s geometry.Shape) bool {
	for _, shape := range w.Shapes {
		if shape == s {
			return true
		}
	}
	return false
}

// Intersect intersects the ray with every top-level shape and returns all
// hits sorted by t
func (w *World) Intersect(ray core.Ray) geometry.Intersections {
	var xs geometry.Intersections
	for _, shape := range w.Shapes {
		xs = append(xs, geometry.Intersect(shape, ray)...)
	}
	xs.Sort()
	return xs
}

// IsShadowed reports whether something lies between point and the light.
// Objects beyond the light do not count.
func (w *World) IsShadowed(point core.Tuple) bool {
	if w.Light == nil {
		return false
	}

	direction, distance := w.Light.DirectionFrom(point)
	xs := w.Intersect(core.NewRay(point, direction))

	hit := xs.Hit()
	return hit.IsHit() && hit.T < distance
}
