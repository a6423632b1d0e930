package main

import (
	"flag"
	"fmt"
	"image/png"
	"log"
	"math"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/df07/go-whitted-raytracer/pkg/renderer"
)

// Config holds the command line options
type Config struct {
	SceneType  string
	Width      int     // 0 keeps the scene's width
	Height     int     // 0 keeps the scene's height
	FOV        float64 // Degrees; 0 keeps the scene's field of view
	NumWorkers int
	TileSize   int
	Format     string
	OutputRoot string
}

func main() {
	config := parseFlags()

	// Tag every line of this run so concurrent runs can be told apart
	renderID := uuid.New().String()
	logger := log.New(os.Stdout, fmt.Sprintf("[render %s] ", renderID[:8]), log.LstdFlags)

	if err := run(config, logger); err != nil {
		logger.Printf("Error: %v", err)
		os.Exit(1)
	}
}

func parseFlags() Config {
	config := Config{}
	flag.StringVar(&config.SceneType, "scene", "spheres", "Scene type: 'spheres', 'stripes' or 'default-world'")
	flag.IntVar(&config.Width, "width", 0, "Image width in pixels (0 = scene default)")
	flag.IntVar(&config.Height, "height", 0, "Image height in pixels (0 = scene default)")
	flag.Float64Var(&config.FOV, "fov", 0, "Field of view in degrees (0 = scene default)")
	flag.IntVar(&config.NumWorkers, "workers", 0, "Number of parallel workers (0 = auto-detect CPU count)")
	flag.IntVar(&config.TileSize, "tile", renderer.DefaultRenderConfig().TileSize, "Tile size in pixels")
	flag.StringVar(&config.Format, "format", "png", "Output format: 'png' or 'ppm'")
	flag.StringVar(&config.OutputRoot, "output", "output", "Root directory for rendered images")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	if *help {
		showHelp()
		os.Exit(0)
	}
	return config
}

func showHelp() {
	fmt.Println("Whitted Raytracer")
	fmt.Println("Usage: raytracer [options]")
	fmt.Println()
	fmt.Println("Options:")
	flag.PrintDefaults()
	fmt.Println()
	fmt.Println("Available scenes:")
	fmt.Println("  spheres       - Three patterned spheres on a checkered floor")
	fmt.Println("  stripes       - Striped planes and a ball with nested stripes")
	fmt.Println("  default-world - Two concentric spheres under a single light")
	fmt.Println()
	fmt.Println("Output will be saved to <output>/<scene>/render_<timestamp>.<format>")
}

func run(config Config, logger *log.Logger) error {
	if config.Format != "png" && config.Format != "ppm" {
		return fmt.Errorf("unknown output format %q", config.Format)
	}

	logger.Printf("Using %s scene...", config.SceneType)
	selected, err := createScene(config.SceneType)
	if err != nil {
		return err
	}

	camera, err := renderer.NewCameraFromConfig(applyOverrides(selected.CameraConfig, config))
	if err != nil {
		return fmt.Errorf("creating camera: %w", err)
	}

	renderConfig := renderer.RenderConfig{
		TileSize:   config.TileSize,
		NumWorkers: config.NumWorkers,
	}
	canvas, stats, err := renderer.NewRenderer(camera, selected.World, renderConfig, logger).Render()
	if err != nil {
		return fmt.Errorf("rendering: %w", err)
	}
	logger.Printf("Rendered %d pixels in %d tiles with %d workers",
		stats.TotalPixels, stats.TotalTiles, stats.NumWorkers)

	outputDir := createOutputDir(config.OutputRoot, config.SceneType)
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	timestamp := time.Now().Format("20060102_150405")
	filename := filepath.Join(outputDir, fmt.Sprintf("render_%s.%s", timestamp, config.Format))
	if err := saveCanvas(filename, config.Format, canvas); err != nil {
		return err
	}

	logger.Printf("Render saved as %s", filename)
	return nil
}

// applyOverrides replaces scene camera settings with any non-zero command line values
func applyOverrides(camera renderer.CameraConfig, config Config) renderer.CameraConfig {
	if config.Width > 0 {
		camera.Width = config.Width
	}
	if config.Height > 0 {
		camera.Height = config.Height
	}
	if config.FOV > 0 {
		camera.FieldOfView = config.FOV * math.Pi / 180
	}
	return camera
}

// createOutputDir returns the directory renders of a scene are written to
func createOutputDir(root, sceneType string) string {
	return filepath.Join(root, sceneType)
}

func saveCanvas(filename, format string, canvas *renderer.Canvas) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("creating file: %w", err)
	}
	defer file.Close()

	switch format {
	case "ppm":
		err = renderer.WritePPM(file, canvas)
	default:
		err = png.Encode(file, canvas.ToRGBA())
	}
	if err != nil {
		return fmt.Errorf("saving %s: %w", format, err)
	}
	return file.Close()
}
