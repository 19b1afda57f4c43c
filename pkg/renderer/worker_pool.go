package renderer

import (
	"context"
	"image"
	"runtime"
	"sync"
)

// TileTask represents a tile rendering task for the worker pool
type TileTask struct {
	Bounds image.Rectangle
	TaskID int // index into the tile grid
}

// TileResult contains the result from rendering a tile
type TileResult struct {
	TaskID int
	Bounds image.Rectangle
	Stats  RenderStats
	Error  error // set when the task was skipped because the context ended
}

// WorkerPool manages parallel tile rendering
type WorkerPool struct {
	taskQueue   chan TileTask
	resultQueue chan TileResult
	workers     []*Worker
	numWorkers  int
	wg          sync.WaitGroup
}

// Worker handles individual tile rendering tasks
type Worker struct {
	ID          int
	tiles       *TileRenderer
	taskQueue   chan TileTask
	resultQueue chan TileResult
}

// NewWorkerPool creates a worker pool sized for maxTiles queued tasks.
// numWorkers <= 0 uses one worker per CPU.
func NewWorkerPool(tiles *TileRenderer, maxTiles, numWorkers int) *WorkerPool {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}

	wp := &WorkerPool{
		taskQueue:   make(chan TileTask, maxTiles),   // Buffer for all tiles
		resultQueue: make(chan TileResult, maxTiles), // Buffer for all results
		numWorkers:  numWorkers,
	}

	for i := 0; i < numWorkers; i++ {
		wp.workers = append(wp.workers, &Worker{
			ID:          i,
			tiles:       tiles,
			taskQueue:   wp.taskQueue,
			resultQueue: wp.resultQueue,
		})
	}

	return wp
}

// Start begins all workers. Tasks seen after ctx ends are skipped and
// reported with ctx's error.
func (wp *WorkerPool) Start(ctx context.Context) {
	for _, worker := range wp.workers {
		wp.wg.Add(1)
		go worker.run(ctx, &wp.wg)
	}
}

// Stop gracefully shuts down all workers
func (wp *WorkerPool) Stop() {
	close(wp.taskQueue) // No more tasks
	wp.wg.Wait()        // Wait for workers to finish
	close(wp.resultQueue)
}

// SubmitTask submits a tile task to the worker pool
func (wp *WorkerPool) SubmitTask(task TileTask) {
	wp.taskQueue <- task
}

// GetResult retrieves a completed tile result
func (wp *WorkerPool) GetResult() (TileResult, bool) {
	result, ok := <-wp.resultQueue
	return result, ok
}

// GetNumWorkers returns the number of workers in the pool
func (wp *WorkerPool) GetNumWorkers() int {
	return wp.numWorkers
}

// run is the main worker loop
func (w *Worker) run(ctx context.Context, wg *sync.WaitGroup) {
	defer wg.Done()

	for task := range w.taskQueue {
		result := TileResult{TaskID: task.TaskID, Bounds: task.Bounds}
		if err := ctx.Err(); err != nil {
			result.Error = err
		} else {
			// Each tile has non-overlapping bounds, so writing the shared canvas is safe
			result.Stats = w.tiles.RenderTileBounds(task.Bounds)
		}
		w.resultQueue <- result
	}
}
