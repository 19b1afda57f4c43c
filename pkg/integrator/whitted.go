package integrator

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/material"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// WhittedIntegrator implements recursive Whitted-style ray tracing: Phong
// shading from a single point light plus mirror reflection and refraction,
// bounded by a bounce budget.
type WhittedIntegrator struct {
	config Config
}

// NewWhittedIntegrator creates a new Whitted integrator
func NewWhittedIntegrator(config Config) *WhittedIntegrator {
	return &WhittedIntegrator{config: config}
}

// MaxDepth returns the bounce budget given to each camera ray
func (wi *WhittedIntegrator) MaxDepth() int {
	return wi.config.MaxDepth
}

// RayColor implements the Integrator interface using the configured budget
func (wi *WhittedIntegrator) RayColor(ray core.Ray, world *scene.World) core.Color {
	return wi.ColorAt(ray, world, wi.config.MaxDepth)
}

// ColorAt returns the color seen along ray, allowing remaining further bounces
func (wi *WhittedIntegrator) ColorAt(ray core.Ray, world *scene.World, remaining int) core.Color {
	xs := world.Intersect(ray)
	hit := xs.Hit()
	if !hit.IsHit() {
		return core.Black
	}

	comps := geometry.PrepareComputations(hit, ray, xs)
	return wi.ShadeHit(comps, world, remaining)
}

// ShadeHit combines direct lighting at the hit with its reflected and
// refracted contributions
func (wi *WhittedIntegrator) ShadeHit(comps geometry.Computations, world *scene.World, remaining int) core.Color {
	m := comps.Object.Material()

	surface := core.Black
	if world.Light != nil {
		shadowed := world.IsShadowed(comps.OverPoint)
		surface = material.Lighting(m, comps.Object, world.Light, comps.OverPoint, comps.EyeV, comps.NormalV, shadowed)
	}

	reflected := wi.ReflectedColor(comps, world, remaining)
	refracted := wi.RefractedColor(comps, world, remaining)

	if m.Reflective > 0 && m.Transparency > 0 {
		reflectance := geometry.Schlick(comps)
		return surface.
			Add(reflected.Multiply(reflectance)).
			Add(refracted.Multiply(1 - reflectance))
	}
	return surface.Add(reflected).Add(refracted)
}

// ReflectedColor follows the mirror direction from the hit. It returns black
// without tracing when the budget is spent or the surface is not reflective.
func (wi *WhittedIntegrator) ReflectedColor(comps geometry.Computations, world *scene.World, remaining int) core.Color {
	reflective := comps.Object.Material().Reflective
	if remaining <= 0 || reflective == 0 {
		return core.Black
	}

	reflectRay := core.NewRay(comps.OverPoint, comps.ReflectV)
	return wi.ColorAt(reflectRay, world, remaining-1).Multiply(reflective)
}

// RefractedColor follows the Snell's law direction through the hit. It returns
// black without tracing when the budget is spent, the surface is opaque, or
// the ray is totally internally reflected.
func (wi *WhittedIntegrator) RefractedColor(comps geometry.Computations, world *scene.World, remaining int) core.Color {
	transparency := comps.Object.Material().Transparency
	if remaining <= 0 || transparency == 0 {
		return core.Black
	}

	nRatio := comps.N1 / comps.N2
	cosI := comps.EyeV.Dot(comps.NormalV)
	sin2T := nRatio * nRatio * (1 - cosI*cosI)
	if sin2T > 1 {
		return core.Black
	}

	cosT := math.Sqrt(1 - sin2T)
	direction := comps.NormalV.Multiply(nRatio*cosI - cosT).Subtract(comps.EyeV.Multiply(nRatio))

	refractRay := core.NewRay(comps.UnderPoint, direction)
	return wi.ColorAt(refractRay, world, remaining-1).Multiply(transparency)
}
