package material

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Object is the part of a shape that patterns and lighting need: a way to
// bring a world-space point into the shape's local space.
type Object interface {
	WorldToObject(point core.Tuple) core.Tuple
}

// Pattern produces a color from a point in pattern space
type Pattern interface {
	// LocalPatternAt evaluates the pattern at a point already in pattern space
	LocalPatternAt(point core.Tuple) core.Color
	Transform() core.Matrix
	InverseTransform() core.Matrix
	SetTransform(m core.Matrix)
}

// PatternAtShape converts a world point into object space and then into
// pattern space before evaluating the pattern
func PatternAtShape(p Pattern, object Object, worldPoint core.Tuple) core.Color {
	objectPoint := object.WorldToObject(worldPoint)
	patternPoint := p.InverseTransform().MulTuple(objectPoint)
	return p.LocalPatternAt(patternPoint)
}

// patternTransform stores a pattern's transform with its cached inverse
type patternTransform struct {
	transform core.Matrix
	inverse   core.Matrix
}

func identityTransform() patternTransform {
	return patternTransform{transform: core.Identity(), inverse: core.Identity()}
}

// Transform returns the pattern's object-to-pattern transform
func (p *patternTransform) Transform() core.Matrix { return p.transform }

// InverseTransform returns the cached inverse of Transform
func (p *patternTransform) InverseTransform() core.Matrix { return p.inverse }

// SetTransform replaces the transform. It panics if m is singular.
func (p *patternTransform) SetTransform(m core.Matrix) {
	p.transform = m
	p.inverse = m.MustInverse()
}

// StripePattern alternates A and B along x in unit-wide bands
type StripePattern struct {
	patternTransform
	A, B core.Color
}

// NewStripePattern creates a new stripe pattern
func NewStripePattern(a, b core.Color) *StripePattern {
	return &StripePattern{patternTransform: identityTransform(), A: a, B: b}
}

// LocalPatternAt implements the Pattern interface
func (s *StripePattern) LocalPatternAt(p core.Tuple) core.Color {
	if floorMod2(p.X) == 0 {
		return s.A
	}
	return s.B
}

// GradientPattern blends linearly from A to B across each unit of x
type GradientPattern struct {
	patternTransform
	A, B core.Color
}

// NewGradientPattern creates a new gradient pattern
func NewGradientPattern(a, b core.Color) *GradientPattern {
	return &GradientPattern{patternTransform: identityTransform(), A: a, B: b}
}

// LocalPatternAt implements the Pattern interface
func (g *GradientPattern) LocalPatternAt(p core.Tuple) core.Color {
	fraction := p.X - math.Floor(p.X)
	return g.A.Add(g.B.Subtract(g.A).Multiply(fraction))
}

// RingPattern alternates A and B in concentric rings around the y axis
type RingPattern struct {
	patternTransform
	A, B core.Color
}

// NewRingPattern creates a new ring pattern
func NewRingPattern(a, b core.Color) *RingPattern {
	return &RingPattern{patternTransform: identityTransform(), A: a, B: b}
}

// LocalPatternAt implements the Pattern interface
func (r *RingPattern) LocalPatternAt(p core.Tuple) core.Color {
	if floorMod2(math.Sqrt(p.X*p.X+p.Z*p.Z)) == 0 {
		return r.A
	}
	return r.B
}

// CheckersPattern alternates A and B in unit cubes
type CheckersPattern struct {
	patternTransform
	A, B core.Color
}

// NewCheckersPattern creates a new 3D checkerboard pattern
func NewCheckersPattern(a, b core.Color) *CheckersPattern {
	return &CheckersPattern{patternTransform: identityTransform(), A: a, B: b}
}

// LocalPatternAt implements the Pattern interface
func (c *CheckersPattern) LocalPatternAt(p core.Tuple) core.Color {
	sum := math.Floor(p.X) + math.Floor(p.Y) + math.Floor(p.Z)
	if floorMod2(sum) == 0 {
		return c.A
	}
	return c.B
}

// TestPattern returns the pattern-space point itself as a color.
// Useful for checking which space a pattern is evaluated in.
type TestPattern struct {
	patternTransform
}

// NewTestPattern creates a new test pattern
func NewTestPattern() *TestPattern {
	return &TestPattern{patternTransform: identityTransform()}
}

// LocalPatternAt implements the Pattern interface
func (t *TestPattern) LocalPatternAt(p core.Tuple) core.Color {
	return core.NewColor(p.X, p.Y, p.Z)
}

// floorMod2 returns floor(x) mod 2 as 0 or 1, including for negative x
func floorMod2(x float64) int {
	n := int64(math.Floor(x)) % 2
	if n < 0 {
		n += 2
	}
	return int(n)
}
