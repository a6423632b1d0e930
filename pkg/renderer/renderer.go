package renderer

import (
	"fmt"
	"time"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// DefaultLogger implements core.Logger by writing to stdout
type DefaultLogger struct{}

func (dl *DefaultLogger) Printf(format string, args ...interface{}) {
	fmt.Printf(format, args...)
}

// NewDefaultLogger creates a new default logger
func NewDefaultLogger() core.Logger {
	return &DefaultLogger{}
}

// nopLogger discards everything
type nopLogger struct{}

func (nopLogger) Printf(string, ...interface{}) {}

// RenderConfig contains configuration for parallel rendering
type RenderConfig struct {
	TileSize   int // Size of each square tile in pixels
	NumWorkers int // Number of parallel workers (0 = use CPU count)
}

// DefaultRenderConfig returns sensible default values
func DefaultRenderConfig() RenderConfig {
	return RenderConfig{
		TileSize:   32,
		NumWorkers: 0, // Auto-detect CPU count
	}
}

// Renderer renders a world through a camera using a pool of tile workers
type Renderer struct {
	camera *Camera
	world  *scene.World
	config RenderConfig
	logger core.Logger
}

// NewRenderer creates a renderer. A nil logger discards output.
func NewRenderer(camera *Camera, world *scene.World, config RenderConfig, logger core.Logger) *Renderer {
	if config.TileSize <= 0 {
		config.TileSize = DefaultRenderConfig().TileSize
	}
	if logger == nil {
		logger = nopLogger{}
	}
	return &Renderer{
		camera: camera,
		world:  world,
		config: config,
		logger: logger,
	}
}

// Render renders every pixel of the camera's image. The world must not be
// modified until Render returns. The first tile error aborts the render.
func (r *Renderer) Render() (*Canvas, RenderStats, error) {
	start := time.Now()
	width, height := r.camera.HSize(), r.camera.VSize()
	canvas := NewCanvas(width, height)
	tiles := NewTileGrid(width, height, r.config.TileSize)

	pool := NewWorkerPool(NewTileRenderer(r.camera, r.world), len(tiles), r.config.NumWorkers)
	r.logger.Printf("Rendering %dx%d in %d tiles (using %d workers)...\n",
		width, height, len(tiles), pool.GetNumWorkers())

	pool.Start()
	for i, tile := range tiles {
		pool.SubmitTask(TileTask{Tile: tile, TaskID: i, Canvas: canvas})
	}
	pool.Stop()

	stats := RenderStats{NumWorkers: pool.GetNumWorkers()}
	var firstErr error
	for {
		result, ok := pool.GetResult()
		if !ok {
			break
		}
		if result.Error != nil && firstErr == nil {
			firstErr = fmt.Errorf("tile %d: %w", result.TaskID, result.Error)
		}
		stats.Merge(result.Stats)
	}
	stats.Duration = time.Since(start)

	if firstErr != nil {
		return nil, stats, firstErr
	}
	if stats.TotalTiles != len(tiles) {
		return nil, stats, fmt.Errorf("rendered %d of %d tiles", stats.TotalTiles, len(tiles))
	}

	r.logger.Printf("Render completed in %v (%.1f%% coverage)\n", stats.Duration, stats.Coverage()*100)
	return canvas, stats, nil
}
