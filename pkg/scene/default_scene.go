package scene

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// NewDefaultScene creates three spheres on a checkered floor in front of a
// striped wall, lit from the upper left
func NewDefaultScene(cameraOverrides ...CameraConfig) *Scene {
	cameraConfig := DefaultCameraConfig()
	if len(cameraOverrides) > 0 {
		cameraConfig = cameraOverrides[0]
	}

	w := NewWorld()
	w.Light = lights.NewPointLight(core.Point(-10, 10, -10), core.White)

	floor := geometry.NewPlane()
	floorMat := material.NewMaterial()
	floorMat.Pattern = material.NewCheckersPattern(core.NewColor(1, 0.9, 0.9), core.NewColor(0.75, 0.65, 0.65))
	floorMat.Specular = 0
	floorMat.Reflective = 0.1
	floor.SetMaterial(floorMat)

	wall := geometry.NewPlane()
	wall.SetTransform(core.Translation(0, 0, 10).Mul(core.RotationX(math.Pi / 2)))
	wallMat := material.NewMaterial()
	stripes := material.NewStripePattern(core.NewColor(0.9, 0.9, 0.9), core.NewColor(0.7, 0.7, 0.8))
	stripes.SetTransform(core.RotationY(math.Pi / 4).Mul(core.Scaling(0.5, 0.5, 0.5)))
	wallMat.Pattern = stripes
	wallMat.Specular = 0
	wall.SetMaterial(wallMat)

	middle := geometry.NewSphere()
	middle.SetTransform(core.Translation(-0.5, 1, 0.5))
	middleMat := material.NewMaterial()
	middleMat.Color = core.NewColor(0.1, 1, 0.5)
	middleMat.Diffuse = 0.7
	middleMat.Specular = 0.3
	middle.SetMaterial(middleMat)

	right := geometry.NewSphere()
	right.SetTransform(core.Translation(1.5, 0.5, -0.5).Mul(core.Scaling(0.5, 0.5, 0.5)))
	rightMat := material.NewMaterial()
	rightMat.Pattern = material.NewGradientPattern(core.NewColor(0.5, 1, 0.1), core.NewColor(1, 0.2, 0.1))
	rightMat.Pattern.SetTransform(core.Translation(-1, 0, 0).Mul(core.Scaling(2, 1, 1)))
	rightMat.Diffuse = 0.7
	rightMat.Specular = 0.3
	right.SetMaterial(rightMat)

	left := geometry.NewSphere()
	left.SetTransform(core.Translation(-1.5, 0.33, -0.75).Mul(core.Scaling(0.33, 0.33, 0.33)))
	leftMat := material.NewMaterial()
	leftMat.Color = core.NewColor(1, 0.8, 0.1)
	leftMat.Diffuse = 0.7
	leftMat.Specular = 0.3
	leftMat.Reflective = 0.3
	left.SetMaterial(leftMat)

	w.AddShape(floor, wall, middle, right, left)

	return &Scene{Name: "default", World: w, CameraConfig: cameraConfig}
}
