package geometry

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Computations holds the values shading needs at one intersection
type Computations struct {
	T          float64
	Object     Shape
	Point      core.Tuple
	OverPoint  core.Tuple // nudged along the normal, origin for shadow and reflection rays
	UnderPoint core.Tuple // nudged against the normal, origin for refraction rays
	EyeV       core.Tuple
	NormalV    core.Tuple
	ReflectV   core.Tuple
	Inside     bool
	N1         float64 // refractive index of the medium being left
	N2         float64 // refractive index of the medium being entered
}

// PrepareComputations derives shading data for hit. xs is the full sorted
// list the hit came from; it is walked to find the refractive indices on
// either side of the surface.
func PrepareComputations(hit Intersection, ray core.Ray, xs Intersections) Computations {
	comps := Computations{
		T:      hit.T,
		Object: hit.Object,
	}

	comps.Point = ray.Position(comps.T)
	comps.EyeV = ray.Direction.Negate()
	comps.NormalV = NormalAt(comps.Object, comps.Point)

	if comps.NormalV.Dot(comps.EyeV) < 0 {
		comps.Inside = true
		comps.NormalV = comps.NormalV.Negate()
	}

	comps.ReflectV = ray.Direction.Reflect(comps.NormalV)
	offset := comps.NormalV.Multiply(core.Epsilon)
	comps.OverPoint = comps.Point.Add(offset)
	comps.UnderPoint = comps.Point.Subtract(offset)

	comps.N1, comps.N2 = refractiveIndices(hit, xs)
	return comps
}

// refractiveIndices walks xs tracking which shapes the ray is inside of
func refractiveIndices(hit Intersection, xs Intersections) (n1, n2 float64) {
	n1, n2 = 1.0, 1.0
	var containers []Shape

	for _, x := range xs {
		isHit := x.T == hit.T && x.Object == hit.Object

		if isHit {
			if len(containers) > 0 {
				n1 = containers[len(containers)-1].Material().RefractiveIndex
			}
		}

		// toggle membership: leaving if present, entering otherwise
		if idx := indexOf(containers, x.Object); idx >= 0 {
			containers = append(containers[:idx], containers[idx+1:]...)
		} else {
			containers = append(containers, x.Object)
		}

		if isHit {
			if len(containers) > 0 {
				n2 = containers[len(containers)-1].Material().RefractiveIndex
			}
			return n1, n2
		}
	}
	return n1, n2
}

func indexOf(shapes []Shape, s Shape) int {
	for i, candidate := range shapes {
		if candidate == s {
			return i
		}
	}
	return -1
}

// Schlick approximates the Fresnel reflectance at the hit
func Schlick(comps Computations) float64 {
	cos := comps.EyeV.Dot(comps.NormalV)

	// total internal reflection is only possible going into a thinner medium
	if comps.N1 > comps.N2 {
		n := comps.N1 / comps.N2
		sin2t := n * n * (1.0 - cos*cos)
		if sin2t > 1.0 {
			return 1.0
		}
		cos = math.Sqrt(1.0 - sin2t)
	}

	r0 := (comps.N1 - comps.N2) / (comps.N1 + comps.N2)
	r0 = r0 * r0
	return r0 + (1-r0)*math.Pow(1-cos, 5)
}
