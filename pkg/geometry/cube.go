package geometry

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Cube is the axis-aligned cube spanning [-1, 1] on every axis
type Cube struct {
	Base
}

// NewCube creates a cube with the identity transform and a default material
func NewCube() *Cube {
	return &Cube{Base: NewBase()}
}

// LocalIntersect uses the slab method. A hit always yields two intersections.
func (c *Cube) LocalIntersect(ray core.Ray) Intersections {
	xtmin, xtmax := core.CheckAxis(ray.Origin.X, ray.Direction.X, -1, 1)
	ytmin, ytmax := core.CheckAxis(ray.Origin.Y, ray.Direction.Y, -1, 1)
	ztmin, ztmax := core.CheckAxis(ray.Origin.Z, ray.Direction.Z, -1, 1)

	tmin := math.Max(xtmin, math.Max(ytmin, ztmin))
	tmax := math.Min(xtmax, math.Min(ytmax, ztmax))
	if tmin > tmax {
		return nil
	}
	return Intersections{NewIntersection(tmin, c), NewIntersection(tmax, c)}
}

// LocalNormalAt picks the face by the component with the largest magnitude
func (c *Cube) LocalNormalAt(point core.Tuple) core.Tuple {
	absX, absY, absZ := math.Abs(point.X), math.Abs(point.Y), math.Abs(point.Z)
	maxc := math.Max(absX, math.Max(absY, absZ))

	switch maxc {
	case absX:
		return core.Vector(point.X, 0, 0)
	case absY:
		return core.Vector(0, point.Y, 0)
	default:
		return core.Vector(0, 0, point.Z)
	}
}

// LocalBounds implements the Shape interface
func (c *Cube) LocalBounds() core.Bounds {
	return core.NewBounds(core.Point(-1, -1, -1), core.Point(1, 1, 1))
}
