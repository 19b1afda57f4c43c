package scene

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// NewGlassSphereScene creates a hollow glass sphere in front of a checkered wall
func NewGlassSphereScene(cameraOverrides ...CameraConfig) *Scene {
	cameraConfig := CameraConfig{
		Width:       300,
		Height:      300,
		FieldOfView: 0.45,
		From:        core.Point(0, 0, -5),
		To:          core.Point(0, 0, 0),
		Up:          core.Vector(0, 1, 0),
	}
	if len(cameraOverrides) > 0 {
		cameraConfig = cameraOverrides[0]
	}

	w := NewWorld()
	w.Light = lights.NewPointLight(core.Point(2, 10, -5), core.NewColor(0.9, 0.9, 0.9))

	wall := geometry.NewPlane()
	wall.SetTransform(core.Translation(0, 0, 10).Mul(core.RotationX(1.5708)))
	wallMat := material.NewMaterial()
	wallMat.Pattern = material.NewCheckersPattern(core.NewColor(0.15, 0.15, 0.15), core.NewColor(0.85, 0.85, 0.85))
	wallMat.Ambient = 0.8
	wallMat.Diffuse = 0.2
	wallMat.Specular = 0
	wall.SetMaterial(wallMat)

	glass := geometry.NewSphere()
	glass.SetMaterial(clearGlass(1.5))

	// air bubble in the middle of the glass
	hollow := geometry.NewSphere()
	hollow.SetTransform(core.Scaling(0.5, 0.5, 0.5))
	hollow.SetMaterial(clearGlass(1.0000034))

	w.AddShape(wall, glass, hollow)

	return &Scene{Name: "glass-sphere", World: w, CameraConfig: cameraConfig}
}

// clearGlass returns a colorless, highly reflective and transparent material
func clearGlass(refractiveIndex float64) *material.Material {
	m := material.NewMaterial()
	m.Ambient = 0
	m.Diffuse = 0
	m.Specular = 0.9
	m.Shininess = 300
	m.Reflective = 0.9
	m.Transparency = 0.9
	m.RefractiveIndex = refractiveIndex
	return m
}
