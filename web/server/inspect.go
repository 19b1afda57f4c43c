package server

import (
	"fmt"
	"math"
	"net/http"
	"strconv"

	"github.com/df07/go-whitted-raytracer/pkg/canvas"
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/material"
	"github.com/df07/go-whitted-raytracer/pkg/renderer"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// InspectResponse represents the JSON response for object inspection
type InspectResponse struct {
	Hit          bool                   `json:"hit"`
	GeometryType string                 `json:"geometryType"`
	Point        [3]float64             `json:"point"`
	Normal       [3]float64             `json:"normal"`
	Distance     float64                `json:"distance"`
	Inside       bool                   `json:"inside"`
	N1           float64                `json:"n1"`
	N2           float64                `json:"n2"`
	Depth        int                    `json:"depth"` // number of enclosing groups
	Properties   map[string]interface{} `json:"properties"`
}

// InspectResult holds the shading data for the first object hit by an inspection ray
type InspectResult struct {
	Hit   bool
	Comps geometry.Computations
}

// inspectPixel casts the camera ray through a pixel and prepares the hit, if any
func inspectPixel(sceneObj *scene.Scene, pixelX, pixelY int) InspectResult {
	camera := renderer.NewCameraFromConfig(sceneObj.CameraConfig)
	ray := camera.RayForPixel(pixelX, pixelY)

	xs := sceneObj.World.Intersect(ray)
	hit := xs.Hit()
	if !hit.IsHit() {
		return InspectResult{Hit: false}
	}
	return InspectResult{
		Hit:   true,
		Comps: geometry.PrepareComputations(hit, ray, xs),
	}
}

// extractMaterialInfo describes the material of a shape
func extractMaterialInfo(mat *material.Material) map[string]interface{} {
	properties := map[string]interface{}{
		"color":           colorHex(mat.Color),
		"ambient":         mat.Ambient,
		"diffuse":         mat.Diffuse,
		"specular":        mat.Specular,
		"shininess":       mat.Shininess,
		"reflective":      mat.Reflective,
		"transparency":    mat.Transparency,
		"refractiveIndex": mat.RefractiveIndex,
	}

	switch mat.Pattern.(type) {
	case nil:
	case *material.StripePattern:
		properties["pattern"] = "stripes"
	case *material.GradientPattern:
		properties["pattern"] = "gradient"
	case *material.RingPattern:
		properties["pattern"] = "rings"
	case *material.CheckersPattern:
		properties["pattern"] = "checkers"
	case *material.TestPattern:
		properties["pattern"] = "test"
	default:
		properties["pattern"] = "custom"
	}
	return properties
}

// extractGeometryInfo extracts detailed geometry information
func extractGeometryInfo(shape geometry.Shape) (string, map[string]interface{}) {
	properties := make(map[string]interface{})

	// Planes are unbounded and JSON has no infinity
	bounds := geometry.ParentSpaceBounds(shape)
	if finite(bounds.Min) && finite(bounds.Max) {
		properties["bounds"] = map[string]interface{}{
			"min": [3]float64{bounds.Min.X, bounds.Min.Y, bounds.Min.Z},
			"max": [3]float64{bounds.Max.X, bounds.Max.Y, bounds.Max.Z},
		}
	}

	switch geom := shape.(type) {
	case *geometry.Sphere:
		return "sphere", properties

	case *geometry.Plane:
		return "plane", properties

	case *geometry.Cube:
		return "cube", properties

	case *geometry.Cylinder:
		setLimits(properties, geom.Minimum, geom.Maximum)
		properties["closed"] = geom.Closed
		return "cylinder", properties

	case *geometry.Cone:
		setLimits(properties, geom.Minimum, geom.Maximum)
		properties["closed"] = geom.Closed
		return "cone", properties

	default:
		return "unknown", properties
	}
}

// handleInspect handles ray casting inspection requests
func (s *Server) handleInspect(w http.ResponseWriter, r *http.Request) {
	req, err := s.parseRenderRequest(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid scene parameters: " + err.Error()})
		return
	}

	// Parse pixel coordinates
	pixelX, err := strconv.Atoi(r.URL.Query().Get("x"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid x coordinate"})
		return
	}
	pixelY, err := strconv.Atoi(r.URL.Query().Get("y"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid y coordinate"})
		return
	}

	sceneObj, err := s.loadScene(req)
	if err != nil {
		writeJSON(w, sceneErrorStatus(err), map[string]string{"error": err.Error()})
		return
	}

	cam := sceneObj.CameraConfig
	if pixelX < 0 || pixelX >= cam.Width || pixelY < 0 || pixelY >= cam.Height {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Pixel coordinates out of bounds"})
		return
	}

	result := inspectPixel(sceneObj, pixelX, pixelY)
	if !result.Hit {
		writeJSON(w, http.StatusOK, InspectResponse{Hit: false})
		return
	}

	comps := result.Comps
	geometryType, geometryProps := extractGeometryInfo(comps.Object)

	depth := 0
	for g := comps.Object.Parent(); g != nil; g = g.Parent() {
		depth++
	}

	writeJSON(w, http.StatusOK, InspectResponse{
		Hit:          true,
		GeometryType: geometryType,
		Point:        [3]float64{comps.Point.X, comps.Point.Y, comps.Point.Z},
		Normal:       [3]float64{comps.NormalV.X, comps.NormalV.Y, comps.NormalV.Z},
		Distance:     comps.T,
		Inside:       comps.Inside,
		N1:           comps.N1,
		N2:           comps.N2,
		Depth:        depth,
		Properties: map[string]interface{}{
			"material": extractMaterialInfo(comps.Object.Material()),
			"geometry": geometryProps,
		},
	})
}

// setLimits records the finite y limits of a cylinder or cone
func setLimits(properties map[string]interface{}, minimum, maximum float64) {
	if !math.IsInf(minimum, 0) {
		properties["minimum"] = minimum
	}
	if !math.IsInf(maximum, 0) {
		properties["maximum"] = maximum
	}
}

func finite(t core.Tuple) bool {
	return !math.IsInf(t.X, 0) && !math.IsInf(t.Y, 0) && !math.IsInf(t.Z, 0)
}

// colorHex formats a color the way it is written to an 8-bit image
func colorHex(c core.Color) string {
	rgba := canvas.ToRGBA(c)
	return fmt.Sprintf("#%02x%02x%02x", rgba.R, rgba.G, rgba.B)
}
