package core

import "math"

// Bounds is an axis-aligned bounding box in some shape's local space
type Bounds struct {
	Min Tuple // lower corner
	Max Tuple // upper corner
}

// EmptyBounds returns a box that contains nothing. Adding any point makes it valid.
func EmptyBounds() Bounds {
	inf := math.Inf(1)
	return Bounds{
		Min: Point(inf, inf, inf),
		Max: Point(-inf, -inf, -inf),
	}
}

// NewBounds creates a box from its two corners
func NewBounds(min, max Tuple) Bounds {
	return Bounds{Min: min, Max: max}
}

// Add returns the box grown to include p
func (b Bounds) Add(p Tuple) Bounds {
	return Bounds{
		Min: Point(math.Min(b.Min.X, p.X), math.Min(b.Min.Y, p.Y), math.Min(b.Min.Z, p.Z)),
		Max: Point(math.Max(b.Max.X, p.X), math.Max(b.Max.Y, p.Y), math.Max(b.Max.Z, p.Z)),
	}
}

// Merge returns a box that bounds both b and other
func (b Bounds) Merge(other Bounds) Bounds {
	if other.IsEmpty() {
		return b
	}
	return b.Add(other.Min).Add(other.Max)
}

// IsEmpty reports whether the box has never had a point added
func (b Bounds) IsEmpty() bool {
	return b.Min.X > b.Max.X || b.Min.Y > b.Max.Y || b.Min.Z > b.Max.Z
}

// ContainsPoint reports whether p lies inside or on the box
func (b Bounds) ContainsPoint(p Tuple) bool {
	return b.Min.X <= p.X && p.X <= b.Max.X &&
		b.Min.Y <= p.Y && p.Y <= b.Max.Y &&
		b.Min.Z <= p.Z && p.Z <= b.Max.Z
}

// ContainsBox reports whether other lies entirely inside b
func (b Bounds) ContainsBox(other Bounds) bool {
	return b.ContainsPoint(other.Min) && b.ContainsPoint(other.Max)
}

// Corners returns the eight corners of the box
func (b Bounds) Corners() [8]Tuple {
	return [8]Tuple{
		Point(b.Min.X, b.Min.Y, b.Min.Z),
		Point(b.Min.X, b.Min.Y, b.Max.Z),
		Point(b.Min.X, b.Max.Y, b.Min.Z),
		Point(b.Min.X, b.Max.Y, b.Max.Z),
		Point(b.Max.X, b.Min.Y, b.Min.Z),
		Point(b.Max.X, b.Min.Y, b.Max.Z),
		Point(b.Max.X, b.Max.Y, b.Min.Z),
		Point(b.Max.X, b.Max.Y, b.Max.Z),
	}
}

// Transform returns the box that bounds all eight corners of b after applying m
func (b Bounds) Transform(m Matrix) Bounds {
	if b.IsEmpty() {
		return b
	}
	result := EmptyBounds()
	for _, corner := range b.Corners() {
		result = result.Add(transformCorner(m, corner))
	}
	// opposing infinities along a rotated axis leave NaN; widen to unbounded
	if math.IsNaN(result.Min.X) || math.IsNaN(result.Max.X) {
		result.Min.X, result.Max.X = math.Inf(-1), math.Inf(1)
	}
	if math.IsNaN(result.Min.Y) || math.IsNaN(result.Max.Y) {
		result.Min.Y, result.Max.Y = math.Inf(-1), math.Inf(1)
	}
	if math.IsNaN(result.Min.Z) || math.IsNaN(result.Max.Z) {
		result.Min.Z, result.Max.Z = math.Inf(-1), math.Inf(1)
	}
	return result
}

// transformCorner multiplies like MulTuple but skips zero coefficients,
// so an infinite extent stays infinite instead of becoming NaN (0 * Inf).
func transformCorner(m Matrix, p Tuple) Tuple {
	in := [4]float64{p.X, p.Y, p.Z, p.W}
	var out [4]float64
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			if m[row][col] == 0 || in[col] == 0 {
				continue
			}
			out[row] += m[row][col] * in[col]
		}
	}
	return Tuple{out[0], out[1], out[2], out[3]}
}

// Intersects tests the ray against the box using the slab method
func (b Bounds) Intersects(r Ray) bool {
	xmin, xmax := CheckAxis(r.Origin.X, r.Direction.X, b.Min.X, b.Max.X)
	ymin, ymax := CheckAxis(r.Origin.Y, r.Direction.Y, b.Min.Y, b.Max.Y)
	zmin, zmax := CheckAxis(r.Origin.Z, r.Direction.Z, b.Min.Z, b.Max.Z)

	tmin := math.Max(xmin, math.Max(ymin, zmin))
	tmax := math.Min(xmax, math.Min(ymax, zmax))
	return tmin <= tmax
}

// CheckAxis returns the entry and exit parameters of a ray against the slab
// [min, max] on one axis. A direction below Epsilon maps to +/-Inf rather than NaN.
func CheckAxis(origin, direction, min, max float64) (float64, float64) {
	tminNumerator := min - origin
	tmaxNumerator := max - origin

	var tmin, tmax float64
	if math.Abs(direction) >= Epsilon {
		tmin = tminNumerator / direction
		tmax = tmaxNumerator / direction
	} else {
		tmin = tminNumerator * math.Inf(1)
		tmax = tmaxNumerator * math.Inf(1)
	}

	if tmin > tmax {
		tmin, tmax = tmax, tmin
	}
	return tmin, tmax
}

// LongestAxis returns the axis (0=X, 1=Y, 2=Z) with the greatest extent.
// Ties go to the earlier axis.
func (b Bounds) LongestAxis() int {
	dx := b.Max.X - b.Min.X
	dy := b.Max.Y - b.Min.Y
	dz := b.Max.Z - b.Min.Z
	if dx >= dy && dx >= dz {
		return 0
	}
	if dy >= dz {
		return 1
	}
	return 2
}

// Split cuts the box in half along its longest axis
func (b Bounds) Split() (Bounds, Bounds) {
	x0, y0, z0 := b.Min.X, b.Min.Y, b.Min.Z
	x1, y1, z1 := b.Max.X, b.Max.Y, b.Max.Z

	switch b.LongestAxis() {
	case 0:
		x0 = x0 + (x1-x0)/2
		x1 = x0
	case 1:
		y0 = y0 + (y1-y0)/2
		y1 = y0
	default:
		z0 = z0 + (z1-z0)/2
		z1 = z0
	}

	left := Bounds{Min: b.Min, Max: Point(x1, y1, z1)}
	right := Bounds{Min: Point(x0, y0, z0), Max: b.Max}
	return left, right
}
