package renderer

import "time"

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	TotalPixels int           // Pixels written to the canvas
	PrimaryRays int           // Camera rays traced, one per pixel
	Tiles       int           // Tiles completed
	Elapsed     time.Duration // Wall-clock time for the whole render
}

// Add accumulates the counters of another set of stats. Elapsed is left alone
// since tiles overlap in time.
func (s *RenderStats) Add(other RenderStats) {
	s.TotalPixels += other.TotalPixels
	s.PrimaryRays += other.PrimaryRays
	s.Tiles += other.Tiles
}

// RaysPerSecond returns the primary ray throughput, or 0 before any time has passed
func (s RenderStats) RaysPerSecond() float64 {
	if s.Elapsed <= 0 {
		return 0
	}
	return float64(s.PrimaryRays) / s.Elapsed.Seconds()
}
