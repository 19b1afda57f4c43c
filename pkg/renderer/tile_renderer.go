package renderer

import (
	"image"

	"github.com/df07/go-whitted-raytracer/pkg/canvas"
	"github.com/df07/go-whitted-raytracer/pkg/integrator"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// TileRenderer renders rectangular regions of an image into a shared canvas
type TileRenderer struct {
	camera     *Camera
	world      *scene.World
	integrator integrator.Integrator
	canvas     *canvas.Canvas
}

// NewTileRenderer creates a tile renderer writing into target
func NewTileRenderer(camera *Camera, world *scene.World, integratorInst integrator.Integrator, target *canvas.Canvas) *TileRenderer {
	return &TileRenderer{
		camera:     camera,
		world:      world,
		integrator: integratorInst,
		canvas:     target,
	}
}

// RenderTileBounds traces one ray per pixel inside bounds. Tiles with
// disjoint bounds may be rendered concurrently.
func (tr *TileRenderer) RenderTileBounds(bounds image.Rectangle) RenderStats {
	stats := RenderStats{Tiles: 1}
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			ray := tr.camera.RayForPixel(x, y)
			tr.canvas.WritePixel(x, y, tr.integrator.RayColor(ray, tr.world))
			stats.PrimaryRays++
			stats.TotalPixels++
		}
	}
	return stats
}

// NewTileGrid splits a width x height image into tiles of at most tileSize
// pixels per side, in row-major order
func NewTileGrid(width, height, tileSize int) []image.Rectangle {
	if tileSize <= 0 {
		tileSize = max(width, height, 1)
	}

	var tiles []image.Rectangle
	for y := 0; y < height; y += tileSize {
		for x := 0; x < width; x += tileSize {
			tiles = append(tiles, image.Rect(x, y, min(x+tileSize, width), min(y+tileSize, height)))
		}
	}
	return tiles
}
