package renderer

import "time"

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	TotalPixels      int           // Total number of pixels rendered
	BackgroundPixels int           // Pixels whose primary ray hit nothing
	TotalTiles       int           // Number of tiles rendered
	NumWorkers       int           // Number of parallel workers used
	Duration         time.Duration // Wall-clock time for the whole render
}

// Merge accumulates the per-tile counters of other into s
func (s *RenderStats) Merge(other RenderStats) {
	s.TotalPixels += other.TotalPixels
	s.BackgroundPixels += other.BackgroundPixels
	s.TotalTiles += other.TotalTiles
}

// Coverage returns the fraction of pixels that hit a shape
func (s RenderStats) Coverage() float64 {
	if s.TotalPixels == 0 {
		return 0
	}
	return float64(s.TotalPixels-s.BackgroundPixels) / float64(s.TotalPixels)
}
