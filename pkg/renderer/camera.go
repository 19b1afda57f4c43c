package renderer

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// Camera is a pinhole camera that maps pixels to world-space rays.
// The canvas sits one unit in front of the eye, which looks down -z.
type Camera struct {
	HSize       int     // horizontal size in pixels
	VSize       int     // vertical size in pixels
	FieldOfView float64 // radians, spans the narrower dimension

	transform  core.Matrix
	inverse    core.Matrix
	pixelSize  float64
	halfWidth  float64
	halfHeight float64
}

// NewCamera creates a camera with the identity view transform
func NewCamera(hsize, vsize int, fieldOfView float64) *Camera {
	c := &Camera{
		HSize:       hsize,
		VSize:       vsize,
		FieldOfView: fieldOfView,
		transform:   core.Identity(),
		inverse:     core.Identity(),
	}

	halfView := math.Tan(fieldOfView / 2)
	aspect := float64(hsize) / float64(vsize)
	if aspect >= 1 {
		c.halfWidth = halfView
		c.halfHeight = halfView / aspect
	} else {
		c.halfWidth = halfView * aspect
		c.halfHeight = halfView
	}
	c.pixelSize = c.halfWidth * 2 / float64(hsize)
	return c
}

// NewCameraFromConfig creates a camera sized and placed as config describes
func NewCameraFromConfig(config scene.CameraConfig) *Camera {
	c := NewCamera(config.Width, config.Height, config.FieldOfView)
	c.SetTransform(config.ViewTransform())
	return c
}

// Transform returns the world-to-camera view transform
func (c *Camera) Transform() core.Matrix { return c.transform }

// SetTransform replaces the view transform. It panics if m is singular.
func (c *Camera) SetTransform(m core.Matrix) {
	c.transform = m
	c.inverse = m.MustInverse()
}

// PixelSize returns the world-space width of one pixel on the canvas
func (c *Camera) PixelSize() float64 { return c.pixelSize }

// RayForPixel returns the ray from the eye through the center of pixel (px, py)
func (c *Camera) RayForPixel(px, py int) core.Ray {
	xOffset := (float64(px) + 0.5) * c.pixelSize
	yOffset := (float64(py) + 0.5) * c.pixelSize

	// +x in camera space points left when looking down -z
	worldX := c.halfWidth - xOffset
	worldY := c.halfHeight - yOffset

	pixel := c.inverse.MulTuple(core.Point(worldX, worldY, -1))
	origin := c.inverse.MulTuple(core.Point(0, 0, 0))
	direction := pixel.Subtract(origin).Normalize()

	return core.NewRay(origin, direction)
}
