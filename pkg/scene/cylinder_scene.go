package scene

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// NewCylinderScene creates nested open cylinders, a glass cylinder and a fan
// of thin capped cylinders on a checkered floor
func NewCylinderScene(cameraOverrides ...CameraConfig) *Scene {
	cameraConfig := CameraConfig{
		Width:       640,
		Height:      480,
		FieldOfView: 0.314,
		From:        core.Point(8, 3.5, -9),
		To:          core.Point(0, 0.3, 0),
		Up:          core.Vector(0, 1, 0),
	}
	if len(cameraOverrides) > 0 {
		cameraConfig = cameraOverrides[0]
	}

	w := NewWorld()
	w.Light = lights.NewPointLight(core.Point(1, 6.9, -4.9), core.White)

	floor := geometry.NewPlane()
	floorMat := material.NewMaterial()
	checkers := material.NewCheckersPattern(core.NewColor(0.5, 0.5, 0.5), core.NewColor(0.75, 0.75, 0.75))
	checkers.SetTransform(core.RotationY(0.3).Mul(core.Scaling(0.25, 0.25, 0.25)))
	floorMat.Pattern = checkers
	floorMat.Ambient = 0.2
	floorMat.Specular = 0
	floor.SetMaterial(floorMat)
	w.AddShape(floor)

	// reflective blue drum
	drum := newCylinder(0, 0.75, true)
	drum.SetTransform(core.Translation(-1, 0, 1).Mul(core.Scaling(0.5, 1, 0.5)))
	drumMat := material.NewMaterial()
	drumMat.Color = core.NewColor(0, 0, 0.6)
	drumMat.Diffuse = 0.1
	drumMat.Shininess = 300
	drumMat.Reflective = 0.9
	drum.SetMaterial(drumMat)
	w.AddShape(drum)

	// concentric rings, each narrower and taller than the last
	rings := []struct {
		radius, height float64
		color          core.Color
		closed         bool
	}{
		{0.8, 0.2, core.NewColor(1, 1, 0.3), false},
		{0.6, 0.3, core.NewColor(1, 0.9, 0.4), false},
		{0.4, 0.4, core.NewColor(1, 0.8, 0.5), false},
		{0.2, 0.5, core.NewColor(1, 0.7, 0.6), true},
	}
	for _, r := range rings {
		c := newCylinder(0, r.height, r.closed)
		c.SetTransform(core.Translation(1, 0, 0).Mul(core.Scaling(r.radius, 1, r.radius)))
		m := material.NewMaterial()
		m.Color = r.color
		m.Diffuse = 0.8
		m.Shininess = 300
		c.SetMaterial(m)
		w.AddShape(c)
	}

	// fan of thin posts
	posts := []struct {
		angle float64
		color core.Color
	}{
		{0, core.NewColor(1, 0, 0)},
		{-0.15, core.NewColor(1, 1, 0)},
		{-0.3, core.NewColor(0, 1, 0)},
		{-0.45, core.NewColor(0, 1, 1)},
		{-0.6, core.NewColor(0, 0, 1)},
		{-0.75, core.NewColor(1, 0, 1)},
	}
	for _, p := range posts {
		c := newCylinder(0, 0.3, true)
		c.SetTransform(core.Chain(
			core.Scaling(0.05, 1, 0.05),
			core.Translation(0, 0, 1.5),
			core.RotationY(p.angle),
			core.Translation(0, 0, -2.25),
		))
		m := material.NewMaterial()
		m.Color = p.color
		m.Shininess = 300
		c.SetMaterial(m)
		w.AddShape(c)
	}

	glass := newCylinder(0.0001, 0.5, true)
	glass.SetTransform(core.Translation(0, 0, -1.5).Mul(core.Scaling(0.33, 1, 0.33)))
	glassMat := material.NewMaterial()
	glassMat.Color = core.NewColor(0.25, 0, 0)
	glassMat.Diffuse = 0.1
	glassMat.Shininess = 300
	glassMat.Reflective = 0.9
	glassMat.Transparency = 0.9
	glassMat.RefractiveIndex = 1.5
	glass.SetMaterial(glassMat)
	w.AddShape(glass)

	return &Scene{Name: "cylinders", World: w, CameraConfig: cameraConfig}
}

func newCylinder(minimum, maximum float64, closed bool) *geometry.Cylinder {
	c := geometry.NewCylinder()
	c.Minimum = minimum
	c.Maximum = maximum
	c.Closed = closed
	return c
}
