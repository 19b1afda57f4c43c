package integrator

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// Integrator defines the interface for light transport algorithms
type Integrator interface {
	// RayColor computes the color seen along a camera ray
	RayColor(ray core.Ray, world *scene.World) core.Color
}

// Config controls how far secondary rays are followed
type Config struct {
	MaxDepth int // reflection/refraction bounces allowed per camera ray
}

// DefaultConfig returns a config allowing five bounces
func DefaultConfig() Config {
	return Config{MaxDepth: 5}
}
