package scene

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

const sampleScene = `# Scene: Sample
- add: camera
  width: 80
  height: 40
  field-of-view: 1.0
  from: [0, 1, -5]
  to: [0, 1, 0]
  up: [0, 1, 0]

- add: light
  at: [-10, 10, -10]
  intensity: [1, 1, 1]

- define: glass
  value:
    transparency: 1
    refractive-index: 1.5

- add: plane
  material:
    pattern:
      type: stripes
      colors:
        - [1, 1, 1]
        - [0, 0, 0]

- add: group
  transform:
    - [translate, 0, 1, 0]
  children:
    - add: sphere
      material: glass
    - add: cylinder
      min: 0
      max: 2
      closed: true
`

func TestNewYAMLScene(t *testing.T) {
	path := writeSceneFile(t, t.TempDir(), "sample.yml", sampleScene)

	s, err := NewYAMLScene(path)
	if err != nil {
		t.Fatalf("NewYAMLScene() error: %v", err)
	}
	if s.Name != "sample" {
		t.Errorf("Name = %q, want sample", s.Name)
	}
	if s.CameraConfig.Width != 80 || s.CameraConfig.Height != 40 || s.CameraConfig.FieldOfView != 1.0 {
		t.Errorf("CameraConfig = %+v", s.CameraConfig)
	}
	if s.World.Light == nil {
		t.Fatal("Expected a light")
	}
	if len(s.World.Shapes) != 2 {
		t.Fatalf("Expected 2 top-level shapes, got %d", len(s.World.Shapes))
	}

	plane, ok := s.World.Shapes[0].(*geometry.Plane)
	if !ok {
		t.Fatalf("First shape is %T, want *geometry.Plane", s.World.Shapes[0])
	}
	if _, ok := plane.Material().Pattern.(*material.StripePattern); !ok {
		t.Errorf("Plane pattern is %T, want stripes", plane.Material().Pattern)
	}

	group, ok := s.World.Shapes[1].(*geometry.Group)
	if !ok || group.Len() != 2 {
		t.Fatalf("Second shape = %T, want a group of 2", s.World.Shapes[1])
	}
	if !group.Transform().Equals(core.Translation(0, 1, 0)) {
		t.Errorf("Group transform = %v", group.Transform())
	}

	sphere := group.Children()[0]
	if sphere.Parent() != group {
		t.Error("Expected the sphere's parent to be the group")
	}
	if m := sphere.Material(); m.Transparency != 1 || m.RefractiveIndex != 1.5 || m.Diffuse != 0.9 {
		t.Errorf("Sphere material = %+v, want glass over defaults", m)
	}

	cyl, ok := group.Children()[1].(*geometry.Cylinder)
	if !ok {
		t.Fatalf("Second child is %T, want *geometry.Cylinder", group.Children()[1])
	}
	if cyl.Minimum != 0 || cyl.Maximum != 2 || !cyl.Closed {
		t.Errorf("Cylinder = min %v max %v closed %v", cyl.Minimum, cyl.Maximum, cyl.Closed)
	}
}

func TestNewYAMLSceneCameraOverride(t *testing.T) {
	path := writeSceneFile(t, t.TempDir(), "sample.yml", sampleScene)

	override := DefaultCameraConfig().WithSize(16, 8)
	s, err := NewYAMLScene(path, override)
	if err != nil {
		t.Fatalf("NewYAMLScene() error: %v", err)
	}
	if s.CameraConfig != override {
		t.Errorf("CameraConfig = %+v, want override", s.CameraConfig)
	}
}

func TestNewYAMLSceneDefaultsCamera(t *testing.T) {
	path := writeSceneFile(t, t.TempDir(), "bare.yaml", "- add: sphere\n")

	s, err := NewYAMLScene(path)
	if err != nil {
		t.Fatalf("NewYAMLScene() error: %v", err)
	}
	if s.CameraConfig != DefaultCameraConfig() {
		t.Errorf("CameraConfig = %+v, want default", s.CameraConfig)
	}
	if s.World.Light != nil {
		t.Error("Expected no light")
	}
}

func TestLoadScene(t *testing.T) {
	dir := t.TempDir()
	writeSceneFile(t, dir, "sample.yml", sampleScene)

	tests := []struct {
		id      string
		wantErr error
		name    string
	}{
		{"default", nil, ""},
		{"yaml:sample", nil, "sample"},
		{filepath.Join(dir, "sample.yml"), nil, "sample"},
		{"yaml:missing", ErrUnknownScene, ""},
		{"yaml:../sample", ErrUnknownScene, ""},
		{"nonexistent", ErrUnknownScene, ""},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			s, err := LoadScene(tt.id, dir)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("LoadScene(%q) error = %v, want %v", tt.id, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("LoadScene(%q) error: %v", tt.id, err)
			}
			if tt.name != "" && s.Name != tt.name {
				t.Errorf("Name = %q, want %q", s.Name, tt.name)
			}
		})
	}
}

func TestLoadSceneDegenerateCamera(t *testing.T) {
	dir := t.TempDir()
	writeSceneFile(t, dir, "blind.yml", "- add: camera\n  width: 10\n  height: 10\n  from: [0, 0, 0]\n  to: [0, 0, 0]\n  up: [0, 1, 0]\n- add: sphere\n")

	s, err := LoadScene("yaml:blind", dir)
	if err == nil {
		t.Fatalf("LoadScene() = %+v, want an error for a camera with no view direction", s.CameraConfig)
	}
	if errors.Is(err, ErrUnknownScene) {
		t.Errorf("LoadScene() error = %v, want a parse error", err)
	}
}

func TestBundledYAMLScenes(t *testing.T) {
	dir := filepath.Join("..", "..", "scenes")
	scenes, err := ListYAMLScenes(dir, nil)
	if err != nil {
		t.Fatalf("ListYAMLScenes() error: %v", err)
	}
	if len(scenes) == 0 {
		t.Skip("no bundled scene files found")
	}

	for _, info := range scenes {
		t.Run(info.ID, func(t *testing.T) {
			s, err := LoadScene(info.ID, dir)
			if err != nil {
				t.Fatalf("LoadScene() error: %v", err)
			}
			if len(s.World.Shapes) == 0 || s.World.Light == nil {
				t.Error("Expected shapes and a light")
			}
		})
	}
}
