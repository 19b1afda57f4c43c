package lights

import (
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

func TestNewPointLight(t *testing.T) {
	position := core.Point(0, 0, 0)
	intensity := core.NewColor(1, 1, 1)
	light := NewPointLight(position, intensity)

	if !light.Position.Equals(position) {
		t.Errorf("Expected position %v, got %v", position, light.Position)
	}
	if !light.Intensity.Equals(intensity) {
		t.Errorf("Expected intensity %v, got %v", intensity, light.Intensity)
	}
}

func TestPointLight_DirectionFrom(t *testing.T) {
	light := NewPointLight(core.Point(0, 10, 0), core.White)

	dir, dist := light.DirectionFrom(core.Point(0, 0, 0))
	if !dir.Equals(core.Vector(0, 1, 0)) {
		t.Errorf("Expected direction (0, 1, 0), got %v", dir)
	}
	if !core.Equal(dist, 10) {
		t.Errorf("Expected distance 10, got %f", dist)
	}
}
