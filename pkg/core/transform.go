package core

import "math"

// Translation moves points by (x, y, z). Vectors are unaffected.
func Translation(x, y, z float64) Matrix {
	m := Identity()
	m[0][3] = x
	m[1][3] = y
	m[2][3] = z
	return m
}

// Scaling scales along each axis
func Scaling(x, y, z float64) Matrix {
	m := Identity()
	m[0][0] = x
	m[1][1] = y
	m[2][2] = z
	return m
}

// RotationX rotates around the x axis by r radians
func RotationX(r float64) Matrix {
	c, s := math.Cos(r), math.Sin(r)
	m := Identity()
	m[1][1] = c
	m[1][2] = -s
	m[2][1] = s
	m[2][2] = c
	return m
}

// RotationY rotates around the y axis by r radians
func RotationY(r float64) Matrix {
	c, s := math.Cos(r), math.Sin(r)
	m := Identity()
	m[0][0] = c
	m[0][2] = s
	m[2][0] = -s
	m[2][2] = c
	return m
}

// RotationZ rotates around the z axis by r radians
func RotationZ(r float64) Matrix {
	c, s := math.Cos(r), math.Sin(r)
	m := Identity()
	m[0][0] = c
	m[0][1] = -s
	m[1][0] = s
	m[1][1] = c
	return m
}

// Shearing moves each component in proportion to the other two
func Shearing(xy, xz, yx, yz, zx, zy float64) Matrix {
	m := Identity()
	m[0][1] = xy
	m[0][2] = xz
	m[1][0] = yx
	m[1][2] = yz
	m[2][0] = zx
	m[2][1] = zy
	return m
}

// ViewTransform orients the world relative to an eye at from looking at to
func ViewTransform(from, to, up Tuple) Matrix {
	forward := to.Subtract(from).Normalize()
	left := forward.Cross(up.Normalize())
	trueUp := left.Cross(forward)

	orientation := Matrix{
		{left.X, left.Y, left.Z, 0},
		{trueUp.X, trueUp.Y, trueUp.Z, 0},
		{-forward.X, -forward.Y, -forward.Z, 0},
		{0, 0, 0, 1},
	}
	return orientation.Mul(Translation(-from.X, -from.Y, -from.Z))
}

// Chain composes transforms in the order they should be applied:
// Chain(a, b, c) == c * b * a.
func Chain(transforms ...Matrix) Matrix {
	m := Identity()
	for _, t := range transforms {
		m = t.Mul(m)
	}
	return m
}
