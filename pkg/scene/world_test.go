package scene

import (
	"errors"
	"math"
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
)

func TestNewWorldIsEmpty(t *testing.T) {
	w := NewWorld()
	if len(w.Shapes) != 0 {
		t.Errorf("Expected no shapes, got %d", len(w.Shapes))
	}
	if w.Light != nil {
		t.Error("Expected no light")
	}
}

func TestDefaultWorld(t *testing.T) {
	w := DefaultWorld()

	if w.Light == nil {
		t.Fatal("Expected default world to have a light")
	}
	if !w.Light.Position.Equals(core.Point(-10, 10, -10)) {
		t.Errorf("Light position = %v, want (-10, 10, -10)", w.Light.Position)
	}
	if !w.Light.Intensity.Equals(core.White) {
		t.Errorf("Light intensity = %v, want white", w.Light.Intensity)
	}
	if len(w.Shapes) != 2 {
		t.Fatalf("Expected 2 shapes, got %d", len(w.Shapes))
	}

	outer := w.Shapes[0].Material()
	if !outer.Color.Equals(core.NewColor(0.8, 1.0, 0.6)) {
		t.Errorf("Outer sphere color = %v", outer.Color)
	}
	if outer.Diffuse != 0.7 || outer.Specular != 0.2 {
		t.Errorf("Outer sphere diffuse/specular = %v/%v, want 0.7/0.2", outer.Diffuse, outer.Specular)
	}
	if !w.Shapes[1].Transform().Equals(core.Scaling(0.5, 0.5, 0.5)) {
		t.Error("Inner sphere should be scaled by 0.5")
	}
}

func TestWorldContains(t *testing.T) {
	w := DefaultWorld()
	if !w.Contains(w.Shapes[0]) {
		t.Error("Expected world to contain its first shape")
	}
	if w.Contains(geometry.NewSphere()) {
		t.Error("Expected world not to contain a fresh sphere")
	}
}

func TestWorldIntersect(t *testing.T) {
	w := DefaultWorld()
	r := core.NewRay(core.Point(0, 0, -5), core.Vector(0, 0, 1))

	xs := w.Intersect(r)
	expected := []float64{4, 4.5, 5.5, 6}
	if len(xs) != len(expected) {
		t.Fatalf("Expected %d intersections, got %d", len(expected), len(xs))
	}
	for i, want := range expected {
		if math.Abs(xs[i].T-want) > 1e-9 {
			t.Errorf("xs[%d].T = %v, want %v", i, xs[i].T, want)
		}
	}
}

func TestWorldIntersectEmpty(t *testing.T) {
	w := NewWorld()
	xs := w.Intersect(core.NewRay(core.Point(0, 0, -5), core.Vector(0, 0, 1)))
	if len(xs) != 0 {
		t.Errorf("Expected no intersections, got %d", len(xs))
	}
}

func TestIsShadowed(t *testing.T) {
	tests := []struct {
		name  string
		point core.Tuple
		want  bool
	}{
		{"nothing collinear with point and light", core.Point(0, 10, 0), false},
		{"object between point and light", core.Point(10, -10, 10), true},
		{"object behind the light", core.Point(-20, 20, -20), false},
		{"object behind the point", core.Point(-2, 2, -2), false},
	}

	w := DefaultWorld()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := w.IsShadowed(tt.point); got != tt.want {
				t.Errorf("IsShadowed(%v) = %v, want %v", tt.point, got, tt.want)
			}
		})
	}
}

func TestIsShadowedWithoutLight(t *testing.T) {
	w := DefaultWorld()
	w.Light = nil
	if w.IsShadowed(core.Point(10, -10, 10)) {
		t.Error("Expected no shadow when the world has no light")
	}
}

func TestBuiltinScenes(t *testing.T) {
	for _, name := range BuiltinNames() {
		t.Run(name, func(t *testing.T) {
			s, err := NewBuiltinScene(name)
			if err != nil {
				t.Fatalf("NewBuiltinScene(%q) error: %v", name, err)
			}
			if s.World == nil || len(s.World.Shapes) == 0 {
				t.Error("Expected scene to have shapes")
			}
			if s.World.Light == nil {
				t.Error("Expected scene to have a light")
			}
			if s.CameraConfig.Width <= 0 || s.CameraConfig.Height <= 0 {
				t.Errorf("Invalid camera size %dx%d", s.CameraConfig.Width, s.CameraConfig.Height)
			}
		})
	}
}

func TestBuiltinSceneCameraOverride(t *testing.T) {
	override := DefaultCameraConfig()
	override.Width = 64
	override.Height = 32

	s, err := NewBuiltinScene("default", override)
	if err != nil {
		t.Fatalf("NewBuiltinScene error: %v", err)
	}
	if s.CameraConfig.Width != 64 || s.CameraConfig.Height != 32 {
		t.Errorf("Camera size = %dx%d, want 64x32", s.CameraConfig.Width, s.CameraConfig.Height)
	}
}

func TestUnknownBuiltinScene(t *testing.T) {
	_, err := NewBuiltinScene("no-such-scene")
	if !errors.Is(err, ErrUnknownScene) {
		t.Errorf("Expected ErrUnknownScene, got %v", err)
	}
}

func TestHexagonSharesParent(t *testing.T) {
	hex := Hexagon(nil)
	if hex.Len() != 6 {
		t.Fatalf("Expected 6 sides, got %d", hex.Len())
	}
	for _, side := range hex.Children() {
		if side.Parent() != hex {
			t.Error("Expected each side's parent to be the hexagon")
		}
	}
}
