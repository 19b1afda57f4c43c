package core

// Color is a linear RGB triple. Components are unbounded until an encoder clamps them.
type Color struct {
	R, G, B float64
}

var (
	Black = Color{0, 0, 0}
	White = Color{1, 1, 1}
)

// NewColor creates a new Color
func NewColor(r, g, b float64) Color {
	return Color{R: r, G: g, B: b}
}

// Add returns the sum of two colors
func (c Color) Add(o Color) Color {
	return Color{c.R + o.R, c.G + o.G, c.B + o.B}
}

// Subtract returns the difference of two colors
func (c Color) Subtract(o Color) Color {
	return Color{c.R - o.R, c.G - o.G, c.B - o.B}
}

// Multiply scales the color
func (c Color) Multiply(scalar float64) Color {
	return Color{c.R * scalar, c.G * scalar, c.B * scalar}
}

// Blend returns the Hadamard product of two colors
func (c Color) Blend(o Color) Color {
	return Color{c.R * o.R, c.G * o.G, c.B * o.B}
}

// Clamp limits every component to [min, max]
func (c Color) Clamp(minVal, maxVal float64) Color {
	return Color{
		R: max(minVal, min(maxVal, c.R)),
		G: max(minVal, min(maxVal, c.G)),
		B: max(minVal, min(maxVal, c.B)),
	}
}

// Equals compares colors within Epsilon
func (c Color) Equals(o Color) bool {
	return Equal(c.R, o.R) && Equal(c.G, o.G) && Equal(c.B, o.B)
}
