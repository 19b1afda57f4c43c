package material

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
)

// Lighting evaluates the Phong reflection model at a point on object.
// A point in shadow only receives the ambient term.
func Lighting(m *Material, object Object, light *lights.PointLight, point, eye, normal core.Tuple, inShadow bool) core.Color {
	effective := m.ColorAt(object, point).Blend(light.Intensity)
	ambient := effective.Multiply(m.Ambient)
	if inShadow {
		return ambient
	}

	lightv, _ := light.DirectionFrom(point)
	lightDotNormal := lightv.Dot(normal)
	if lightDotNormal < 0 {
		// light is on the other side of the surface
		return ambient
	}

	diffuse := effective.Multiply(m.Diffuse * lightDotNormal)

	specular := core.Black
	reflectv := lightv.Negate().Reflect(normal)
	reflectDotEye := reflectv.Dot(eye)
	if reflectDotEye > 0 {
		factor := math.Pow(reflectDotEye, m.Shininess)
		specular = light.Intensity.Multiply(m.Specular * factor)
	}

	return ambient.Add(diffuse).Add(specular)
}
