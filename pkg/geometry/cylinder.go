package geometry

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Cylinder is a unit-radius cylinder around the y axis, truncated to
// (Minimum, Maximum) and optionally capped
type Cylinder struct {
	Base
	Minimum float64 // default -Inf
	Maximum float64 // default +Inf
	Closed  bool    // whether the ends are capped
}

// NewCylinder creates an infinite, open cylinder
func NewCylinder() *Cylinder {
	return &Cylinder{
		Base:    NewBase(),
		Minimum: math.Inf(-1),
		Maximum: math.Inf(1),
	}
}

// LocalIntersect implements the Shape interface
func (c *Cylinder) LocalIntersect(ray core.Ray) Intersections {
	var xs Intersections

	a := ray.Direction.X*ray.Direction.X + ray.Direction.Z*ray.Direction.Z

	// a ray parallel to the y axis can only hit the caps
	if !core.NearZero(a) {
		b := 2*ray.Origin.X*ray.Direction.X + 2*ray.Origin.Z*ray.Direction.Z
		cc := ray.Origin.X*ray.Origin.X + ray.Origin.Z*ray.Origin.Z - 1

		disc := b*b - 4*a*cc
		if disc < 0 {
			return nil
		}

		sqrtD := math.Sqrt(disc)
		t0 := (-b - sqrtD) / (2 * a)
		t1 := (-b + sqrtD) / (2 * a)
		if t0 > t1 {
			t0, t1 = t1, t0
		}

		xs = c.appendSide(xs, ray, t0)
		xs = c.appendSide(xs, ray, t1)
	}

	return c.intersectCaps(ray, xs)
}

// appendSide keeps a side hit only if it lies strictly between the caps
func (c *Cylinder) appendSide(xs Intersections, ray core.Ray, t float64) Intersections {
	y := ray.Origin.Y + t*ray.Direction.Y
	if c.Minimum < y && y < c.Maximum {
		xs = append(xs, NewIntersection(t, c))
	}
	return xs
}

func (c *Cylinder) intersectCaps(ray core.Ray, xs Intersections) Intersections {
	if !c.Closed || core.NearZero(ray.Direction.Y) {
		return xs
	}

	// lower cap
	t := (c.Minimum - ray.Origin.Y) / ray.Direction.Y
	if checkCap(ray, t, 1) {
		xs = append(xs, NewIntersection(t, c))
	}

	// upper cap
	t = (c.Maximum - ray.Origin.Y) / ray.Direction.Y
	if checkCap(ray, t, 1) {
		xs = append(xs, NewIntersection(t, c))
	}
	return xs
}

// checkCap reports whether the ray at t lies within radius of the y axis
func checkCap(ray core.Ray, t, radius float64) bool {
	x := ray.Origin.X + t*ray.Direction.X
	z := ray.Origin.Z + t*ray.Direction.Z
	return x*x+z*z <= radius*radius
}

// LocalNormalAt returns a cap normal near the ends and the radial vector elsewhere
func (c *Cylinder) LocalNormalAt(point core.Tuple) core.Tuple {
	dist := point.X*point.X + point.Z*point.Z

	if dist < 1 && point.Y >= c.Maximum-core.Epsilon {
		return core.Vector(0, 1, 0)
	}
	if dist < 1 && point.Y <= c.Minimum+core.Epsilon {
		return core.Vector(0, -1, 0)
	}
	return core.Vector(point.X, 0, point.Z)
}

// LocalBounds implements the Shape interface
func (c *Cylinder) LocalBounds() core.Bounds {
	return core.NewBounds(core.Point(-1, c.Minimum, -1), core.Point(1, c.Maximum, 1))
}
