package scene

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Scene bundles a world with the camera settings it is meant to be viewed from
type Scene struct {
	Name         string
	World        *World
	CameraConfig CameraConfig
}

// CameraConfig describes a pinhole camera placement
type CameraConfig struct {
	Width       int        // horizontal size in pixels
	Height      int        // vertical size in pixels
	FieldOfView float64    // radians
	From        core.Tuple // eye position
	To          core.Tuple // look-at point
	Up          core.Tuple // approximate up vector
}

// DefaultCameraConfig returns a 400x200 camera at (0, 1.5, -5) looking at (0, 1, 0)
func DefaultCameraConfig() CameraConfig {
	return CameraConfig{
		Width:       400,
		Height:      200,
		FieldOfView: math.Pi / 3,
		From:        core.Point(0, 1.5, -5),
		To:          core.Point(0, 1, 0),
		Up:          core.Vector(0, 1, 0),
	}
}

// ViewTransform returns the world-to-camera transform for this placement
func (c CameraConfig) ViewTransform() core.Matrix {
	return core.ViewTransform(c.From, c.To, c.Up)
}

// WithSize returns a copy with the image size replaced. Non-positive values keep the original.
func (c CameraConfig) WithSize(width, height int) CameraConfig {
	if width > 0 {
		c.Width = width
	}
	if height > 0 {
		c.Height = height
	}
	return c
}
