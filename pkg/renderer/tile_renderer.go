package renderer

import (
	"fmt"
	"image"

	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// TileRenderer renders rectangular regions of a camera's image
type TileRenderer struct {
	camera *Camera
	world  *scene.World
}

// NewTileRenderer creates a tile renderer for the given camera and world
func NewTileRenderer(camera *Camera, world *scene.World) *TileRenderer {
	return &TileRenderer{
		camera: camera,
		world:  world,
	}
}

// RenderTileBounds renders every pixel within bounds into the canvas.
// Only pixels inside bounds are written. On error the stats count only the
// pixels written before it.
func (tr *TileRenderer) RenderTileBounds(bounds image.Rectangle, canvas *Canvas) (RenderStats, error) {
	stats := RenderStats{TotalTiles: 1}

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			ray, err := tr.camera.RayForPixel(x, y)
			if err != nil {
				return stats, err
			}

			color, hit, err := tr.world.Trace(ray)
			if err != nil {
				return stats, fmt.Errorf("pixel (%d, %d): %w", x, y, err)
			}
			if !hit {
				stats.BackgroundPixels++
			}
			canvas.WritePixel(x, y, color)
			stats.TotalPixels++
		}
	}

	return stats, nil
}
