package core

import "math"

// Tuple is a homogeneous 4-component value. W is 1 for points and 0 for vectors.
type Tuple struct {
	X, Y, Z, W float64
}

// NewTuple creates a tuple from raw components
func NewTuple(x, y, z, w float64) Tuple {
	return Tuple{X: x, Y: y, Z: z, W: w}
}

// Point creates a tuple tagged as a point
func Point(x, y, z float64) Tuple {
	return Tuple{X: x, Y: y, Z: z, W: 1}
}

// Vector creates a tuple tagged as a vector
func Vector(x, y, z float64) Tuple {
	return Tuple{X: x, Y: y, Z: z, W: 0}
}

// IsPoint reports whether the tuple is a point
func (t Tuple) IsPoint() bool {
	return Equal(t.W, 1)
}

// IsVector reports whether the tuple is a vector
func (t Tuple) IsVector() bool {
	return Equal(t.W, 0)
}

// Add returns the component-wise sum
func (t Tuple) Add(o Tuple) Tuple {
	return Tuple{t.X + o.X, t.Y + o.Y, t.Z + o.Z, t.W + o.W}
}

// Subtract returns the component-wise difference
func (t Tuple) Subtract(o Tuple) Tuple {
	return Tuple{t.X - o.X, t.Y - o.Y, t.Z - o.Z, t.W - o.W}
}

// Negate flips every component
func (t Tuple) Negate() Tuple {
	return Tuple{-t.X, -t.Y, -t.Z, -t.W}
}

// Multiply scales every component
func (t Tuple) Multiply(scalar float64) Tuple {
	return Tuple{t.X * scalar, t.Y * scalar, t.Z * scalar, t.W * scalar}
}

// Divide divides every component by a scalar
func (t Tuple) Divide(scalar float64) Tuple {
	return Tuple{t.X / scalar, t.Y / scalar, t.Z / scalar, t.W / scalar}
}

// Magnitude returns the length of the tuple
func (t Tuple) Magnitude() float64 {
	return math.Sqrt(t.X*t.X + t.Y*t.Y + t.Z*t.Z + t.W*t.W)
}

// Normalize returns a unit-length copy
func (t Tuple) Normalize() Tuple {
	m := t.Magnitude()
	if m == 0 {
		return t
	}
	return t.Divide(m)
}

// Dot returns the 4-component dot product
func (t Tuple) Dot(o Tuple) float64 {
	return t.X*o.X + t.Y*o.Y + t.Z*o.Z + t.W*o.W
}

// Cross returns the cross product of two vectors
func (t Tuple) Cross(o Tuple) Tuple {
	return Vector(
		t.Y*o.Z-t.Z*o.Y,
		t.Z*o.X-t.X*o.Z,
		t.X*o.Y-t.Y*o.X,
	)
}

// Reflect reflects the vector around a normal
func (t Tuple) Reflect(normal Tuple) Tuple {
	return t.Subtract(normal.Multiply(2 * t.Dot(normal)))
}

// Equals compares two tuples component-wise within Epsilon
func (t Tuple) Equals(o Tuple) bool {
	return Equal(t.X, o.X) && Equal(t.Y, o.Y) && Equal(t.Z, o.Z) && Equal(t.W, o.W)
}

// Component returns the component for axis 0 (x), 1 (y) or 2 (z)
func (t Tuple) Component(axis int) float64 {
	switch axis {
	case 0:
		return t.X
	case 1:
		return t.Y
	default:
		return t.Z
	}
}
