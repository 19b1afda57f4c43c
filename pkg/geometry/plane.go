package geometry

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Plane is the infinite xz plane (y = 0) in object space
type Plane struct {
	Base
}

// NewPlane creates a plane with the identity transform and a default material
func NewPlane() *Plane {
	return &Plane{Base: NewBase()}
}

// LocalIntersect implements the Shape interface. Rays parallel to the plane,
// coplanar ones included, miss.
func (p *Plane) LocalIntersect(ray core.Ray) Intersections {
	if core.NearZero(ray.Direction.Y) {
		return nil
	}
	t := -ray.Origin.Y / ray.Direction.Y
	return Intersections{NewIntersection(t, p)}
}

// LocalNormalAt returns +y everywhere
func (p *Plane) LocalNormalAt(point core.Tuple) core.Tuple {
	return core.Vector(0, 1, 0)
}

// LocalBounds implements the Shape interface
func (p *Plane) LocalBounds() core.Bounds {
	inf := math.Inf(1)
	return core.NewBounds(core.Point(-inf, 0, -inf), core.Point(inf, 0, inf))
}
