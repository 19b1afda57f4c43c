package canvas

import (
	"image"
	"image/color"
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Canvas is a fixed-size grid of linear colors, row-major from the top-left
type Canvas struct {
	Width  int
	Height int
	pixels []core.Color
}

// New creates a canvas with every pixel black
func New(width, height int) *Canvas {
	return &Canvas{
		Width:  width,
		Height: height,
		pixels: make([]core.Color, width*height),
	}
}

func (c *Canvas) inBounds(x, y int) bool {
	return x >= 0 && x < c.Width && y >= 0 && y < c.Height
}

// WritePixel sets the color at (x, y). Writes outside the canvas are ignored.
// Distinct pixels may be written from different goroutines.
func (c *Canvas) WritePixel(x, y int, col core.Color) {
	if !c.inBounds(x, y) {
		return
	}
	c.pixels[y*c.Width+x] = col
}

// PixelAt returns the color at (x, y), or black outside the canvas
func (c *Canvas) PixelAt(x, y int) core.Color {
	if !c.inBounds(x, y) {
		return core.Black
	}
	return c.pixels[y*c.Width+x]
}

// scaleComponent maps a linear component to 0..255, clamping out-of-range values
func scaleComponent(v float64) uint8 {
	return uint8(math.Round(math.Max(0, math.Min(1, v)) * 255))
}

// ToRGBA converts a canvas color to an 8-bit RGBA value
func ToRGBA(col core.Color) color.RGBA {
	return color.RGBA{
		R: scaleComponent(col.R),
		G: scaleComponent(col.G),
		B: scaleComponent(col.B),
		A: 255,
	}
}

// ToImage converts the canvas to an RGBA image
func (c *Canvas) ToImage() *image.RGBA {
	return c.SubImage(image.Rect(0, 0, c.Width, c.Height))
}

// SubImage converts the pixels inside bounds to an RGBA image whose origin
// is bounds.Min, clipped to the canvas
func (c *Canvas) SubImage(bounds image.Rectangle) *image.RGBA {
	bounds = bounds.Intersect(image.Rect(0, 0, c.Width, c.Height))
	img := image.NewRGBA(bounds)
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			img.SetRGBA(x, y, ToRGBA(c.pixels[y*c.Width+x]))
		}
	}
	return img
}
