package lights

import "github.com/df07/go-whitted-raytracer/pkg/core"

// PointLight is a light source with no size, emitting from a single position
type PointLight struct {
	Position  core.Tuple // world-space point
	Intensity core.Color // brightness and color
}

// NewPointLight creates a new point light
func NewPointLight(position core.Tuple, intensity core.Color) *PointLight {
	return &PointLight{Position: position, Intensity: intensity}
}

// DirectionFrom returns the unit vector from point toward the light and the
// distance between them
func (l *PointLight) DirectionFrom(point core.Tuple) (core.Tuple, float64) {
	v := l.Position.Subtract(point)
	distance := v.Magnitude()
	return v.Normalize(), distance
}
