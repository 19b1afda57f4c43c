package core

import "math"

// Epsilon is the tolerance shared by equality checks, parallel-ray tests
// and the over/under point offsets.
const Epsilon = 0.00001

// Equal compares two floats within Epsilon. Infinities only equal themselves.
func Equal(a, b float64) bool {
	if math.IsInf(a, 0) || math.IsInf(b, 0) {
		return a == b
	}
	return math.Abs(a-b) < Epsilon
}

// NearZero reports whether |x| is below Epsilon
func NearZero(x float64) bool {
	return math.Abs(x) < Epsilon
}
