package renderer

import (
	"context"
	"time"

	"github.com/df07/go-whitted-raytracer/pkg/canvas"
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/integrator"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// Config contains rendering configuration
type Config struct {
	TileSize   int // Size of each square tile in pixels
	MaxDepth   int // Reflection/refraction bounces per camera ray
	NumWorkers int // Number of parallel workers (0 = use CPU count)
}

// DefaultConfig returns 32 pixel tiles, five bounces and one worker per CPU
func DefaultConfig() Config {
	return Config{
		TileSize:   32,
		MaxDepth:   5,
		NumWorkers: 0,
	}
}

// TileCallback is invoked on the goroutine that called RenderTiles each time
// a tile finishes. The pixels inside result.Bounds are final when it runs.
// Returning an error stops the render.
type TileCallback func(result TileResult, target *canvas.Canvas) error

// Raytracer turns a camera and a world into a canvas
type Raytracer struct {
	config     Config
	integrator *integrator.WhittedIntegrator
	logger     core.Logger
}

// NewRaytracer creates a raytracer. A nil logger discards progress messages.
func NewRaytracer(config Config, logger core.Logger) *Raytracer {
	if logger == nil {
		logger = discardLogger{}
	}
	return &Raytracer{
		config:     config,
		integrator: integrator.NewWhittedIntegrator(integrator.Config{MaxDepth: config.MaxDepth}),
		logger:     logger,
	}
}

// Render traces every pixel and returns the finished canvas
func Render(camera *Camera, world *scene.World) *canvas.Canvas {
	c, _, _ := NewRaytracer(DefaultConfig(), nil).RenderTiles(context.Background(), camera, world, nil)
	return c
}

// Render traces every pixel and returns the finished canvas with its statistics
func (rt *Raytracer) Render(camera *Camera, world *scene.World) (*canvas.Canvas, RenderStats) {
	c, stats, _ := rt.RenderTiles(context.Background(), camera, world, nil)
	return c, stats
}

// RenderTiles renders the image tile by tile on the worker pool, calling
// onTile as each tile completes. ctx is checked before each tile starts;
// once it ends, or onTile fails, the remaining tiles are skipped and the
// partial canvas is returned with the error.
func (rt *Raytracer) RenderTiles(ctx context.Context, camera *Camera, world *scene.World, onTile TileCallback) (*canvas.Canvas, RenderStats, error) {
	start := time.Now()
	target := canvas.New(camera.HSize, camera.VSize)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	tiles := NewTileGrid(camera.HSize, camera.VSize, rt.config.TileSize)
	pool := NewWorkerPool(NewTileRenderer(camera, world, rt.integrator, target), len(tiles), rt.config.NumWorkers)

	rt.logger.Printf("Rendering %dx%d, %d tiles on %d workers, max depth %d\n",
		camera.HSize, camera.VSize, len(tiles), pool.GetNumWorkers(), rt.integrator.MaxDepth())

	pool.Start(ctx)
	for i, bounds := range tiles {
		pool.SubmitTask(TileTask{Bounds: bounds, TaskID: i})
	}

	var stats RenderStats
	var firstErr error
	for range tiles {
		result, _ := pool.GetResult()
		if firstErr != nil {
			continue // draining
		}
		if result.Error != nil {
			firstErr = result.Error
			continue
		}

		stats.Add(result.Stats)
		if onTile != nil {
			if err := onTile(result, target); err != nil {
				firstErr = err
				cancel()
			}
		}
	}
	pool.Stop()

	stats.Elapsed = time.Since(start)
	if firstErr != nil {
		rt.logger.Printf("Render stopped after %d of %d tiles: %v\n", stats.Tiles, len(tiles), firstErr)
		return target, stats, firstErr
	}

	rt.logger.Printf("Render complete: %d pixels, %d primary rays in %v\n",
		stats.TotalPixels, stats.PrimaryRays, stats.Elapsed.Round(time.Millisecond))
	return target, stats, nil
}
