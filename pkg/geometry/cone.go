package geometry

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Cone is a double-napped cone x^2 + z^2 = y^2 around the y axis,
// truncated to (Minimum, Maximum) and optionally capped
type Cone struct {
	Base
	Minimum float64 // default -Inf
	Maximum float64 // default +Inf
	Closed  bool    // whether the ends are capped
}

// NewCone creates an infinite, open cone
func NewCone() *Cone {
	return &Cone{
		Base:    NewBase(),
		Minimum: math.Inf(-1),
		Maximum: math.Inf(1),
	}
}

// LocalIntersect implements the Shape interface
func (c *Cone) LocalIntersect(ray core.Ray) Intersections {
	var xs Intersections
	o, d := ray.Origin, ray.Direction

	a := d.X*d.X - d.Y*d.Y + d.Z*d.Z
	b := 2*o.X*d.X - 2*o.Y*d.Y + 2*o.Z*d.Z
	cc := o.X*o.X - o.Y*o.Y + o.Z*o.Z

	if core.NearZero(a) {
		// ray parallel to one nappe: at most one hit on the other
		if !core.NearZero(b) {
			xs = c.appendSide(xs, ray, -cc/(2*b))
		}
	} else {
		disc := b*b - 4*a*cc
		if disc >= 0 {
			sqrtD := math.Sqrt(disc)
			t0 := (-b - sqrtD) / (2 * a)
			t1 := (-b + sqrtD) / (2 * a)
			if t0 > t1 {
				t0, t1 = t1, t0
			}
			xs = c.appendSide(xs, ray, t0)
			xs = c.appendSide(xs, ray, t1)
		}
	}

	return c.intersectCaps(ray, xs)
}

func (c *Cone) appendSide(xs Intersections, ray core.Ray, t float64) Intersections {
	y := ray.Origin.Y + t*ray.Direction.Y
	if c.Minimum < y && y < c.Maximum {
		xs = append(xs, NewIntersection(t, c))
	}
	return xs
}

// intersectCaps tests each cap against a circle whose radius is |y| at that cap
func (c *Cone) intersectCaps(ray core.Ray, xs Intersections) Intersections {
	if !c.Closed || core.NearZero(ray.Direction.Y) {
		return xs
	}

	t := (c.Minimum - ray.Origin.Y) / ray.Direction.Y
	if checkCap(ray, t, math.Abs(c.Minimum)) {
		xs = append(xs, NewIntersection(t, c))
	}

	t = (c.Maximum - ray.Origin.Y) / ray.Direction.Y
	if checkCap(ray, t, math.Abs(c.Maximum)) {
		xs = append(xs, NewIntersection(t, c))
	}
	return xs
}

// LocalNormalAt implements the Shape interface
func (c *Cone) LocalNormalAt(point core.Tuple) core.Tuple {
	dist := point.X*point.X + point.Z*point.Z

	if dist < point.Y*point.Y && point.Y >= c.Maximum-core.Epsilon {
		return core.Vector(0, 1, 0)
	}
	if dist < point.Y*point.Y && point.Y <= c.Minimum+core.Epsilon {
		return core.Vector(0, -1, 0)
	}

	y := math.Sqrt(dist)
	if point.Y > 0 {
		y = -y
	}
	return core.Vector(point.X, y, point.Z)
}

// LocalBounds implements the Shape interface
func (c *Cone) LocalBounds() core.Bounds {
	limit := math.Max(math.Abs(c.Minimum), math.Abs(c.Maximum))
	return core.NewBounds(core.Point(-limit, c.Minimum, -limit), core.Point(limit, c.Maximum, limit))
}
