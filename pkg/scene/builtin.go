package scene

import (
	"errors"
	"fmt"
	"sort"
)

// ErrUnknownScene is returned when a built-in scene name is not registered
var ErrUnknownScene = errors.New("unknown scene")

// Builder constructs a scene, optionally overriding its camera
type Builder func(cameraOverrides ...CameraConfig) *Scene

type builtinScene struct {
	builder     Builder
	displayName string
	description string
}

var builtins = map[string]builtinScene{
	"default": {
		builder:     NewDefaultScene,
		displayName: "Default Scene",
		description: "Three spheres with patterns on a checkered floor",
	},
	"glass-sphere": {
		builder:     NewGlassSphereScene,
		displayName: "Glass Sphere",
		description: "Hollow glass sphere in front of a checkered wall",
	},
	"cylinders": {
		builder:     NewCylinderScene,
		displayName: "Cylinders",
		description: "Open, capped, reflective and glass cylinders",
	},
	"hexagon": {
		builder:     NewHexagonScene,
		displayName: "Hexagon",
		description: "Nested groups sharing one material",
	},
}

// NewBuiltinScene returns the built-in scene registered under name
func NewBuiltinScene(name string, cameraOverrides ...CameraConfig) (*Scene, error) {
	b, ok := builtins[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownScene, name)
	}
	return b.builder(cameraOverrides...), nil
}

// BuiltinNames returns the registered scene names in sorted order
func BuiltinNames() []string {
	names := make([]string, 0, len(builtins))
	for name := range builtins {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
