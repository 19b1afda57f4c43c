package material

import "github.com/df07/go-whitted-raytracer/pkg/core"

// Material holds the Phong surface parameters plus reflection and refraction
// coefficients. Shapes hold a *Material, so several shapes may share one.
type Material struct {
	Color           core.Color
	Pattern         Pattern // overrides Color when set
	Ambient         float64
	Diffuse         float64
	Specular        float64
	Shininess       float64
	Reflective      float64 // 0 = matte, 1 = mirror
	Transparency    float64 // 0 = opaque
	RefractiveIndex float64 // 1.0 = vacuum
}

// Common refractive indices
const (
	IndexVacuum  = 1.0
	IndexAir     = 1.00029
	IndexWater   = 1.333
	IndexGlass   = 1.5
	IndexDiamond = 2.417
)

// NewMaterial returns a material with the default white Phong parameters
func NewMaterial() *Material {
	return &Material{
		Color:           core.White,
		Ambient:         0.1,
		Diffuse:         0.9,
		Specular:        0.9,
		Shininess:       200.0,
		Reflective:      0.0,
		Transparency:    0.0,
		RefractiveIndex: IndexVacuum,
	}
}

// NewGlass returns a fully transparent material with the refractive index of glass
func NewGlass() *Material {
	m := NewMaterial()
	m.Transparency = 1.0
	m.RefractiveIndex = IndexGlass
	return m
}

// Clone returns a shallow copy. The pattern is shared.
func (m *Material) Clone() *Material {
	c := *m
	return &c
}

// ColorAt returns the surface color at a world-space point on object
func (m *Material) ColorAt(object Object, worldPoint core.Tuple) core.Color {
	if m.Pattern != nil {
		return PatternAtShape(m.Pattern, object, worldPoint)
	}
	return m.Color
}
