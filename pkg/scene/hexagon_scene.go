package scene

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// NewHexagonScene builds a hexagon out of nested groups: six sides, each a
// group of a corner sphere and an edge cylinder, sharing one material
func NewHexagonScene(cameraOverrides ...CameraConfig) *Scene {
	cameraConfig := CameraConfig{
		Width:       400,
		Height:      300,
		FieldOfView: math.Pi / 3,
		From:        core.Point(0, 2.5, -3),
		To:          core.Point(0, 0, 0),
		Up:          core.Vector(0, 1, 0),
	}
	if len(cameraOverrides) > 0 {
		cameraConfig = cameraOverrides[0]
	}

	w := NewWorld()
	w.Light = lights.NewPointLight(core.Point(-4, 6, -6), core.White)

	floor := geometry.NewPlane()
	floor.SetTransform(core.Translation(0, -0.5, 0))
	floorMat := material.NewMaterial()
	floorMat.Pattern = material.NewRingPattern(core.NewColor(0.9, 0.9, 0.9), core.NewColor(0.6, 0.6, 0.7))
	floorMat.Pattern.SetTransform(core.Scaling(0.3, 0.3, 0.3))
	floorMat.Specular = 0
	floor.SetMaterial(floorMat)

	shared := material.NewMaterial()
	shared.Color = core.NewColor(0.9, 0.4, 0.1)
	shared.Reflective = 0.2

	hex := Hexagon(shared)
	hex.SetTransform(core.RotationX(-math.Pi / 6))

	w.AddShape(floor, hex)

	return &Scene{Name: "hexagon", World: w, CameraConfig: cameraConfig}
}

// Hexagon returns a group of six sides arranged around the y axis
func Hexagon(m *material.Material) *geometry.Group {
	hex := geometry.NewGroup()
	for n := 0; n < 6; n++ {
		side := hexagonSide(m)
		side.SetTransform(core.RotationY(float64(n) * math.Pi / 3))
		hex.AddChild(side)
	}
	return hex
}

func hexagonSide(m *material.Material) *geometry.Group {
	corner := geometry.NewSphere()
	corner.SetTransform(core.Translation(0, 0, -1).Mul(core.Scaling(0.25, 0.25, 0.25)))
	corner.SetMaterial(m)

	edge := newCylinder(0, 1, false)
	edge.SetTransform(core.Chain(
		core.Scaling(0.25, 1, 0.25),
		core.RotationZ(-math.Pi/2),
		core.RotationY(-math.Pi/6),
		core.Translation(0, 0, -1),
	))
	edge.SetMaterial(m)

	side := geometry.NewGroup()
	side.AddChild(corner)
	side.AddChild(edge)
	return side
}
