package renderer

import (
	"errors"
	"fmt"
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// ErrInvalidCamera is returned for cameras with no pixels or an unusable field of view
var ErrInvalidCamera = errors.New("invalid camera")

// CameraConfig describes a camera by image size, field of view and placement
type CameraConfig struct {
	Width       int        // Horizontal size in pixels
	Height      int        // Vertical size in pixels
	FieldOfView float64    // Field of view in radians, across the longer image side
	From        core.Tuple // Eye position
	To          core.Tuple // Point the camera looks at
	Up          core.Tuple // Approximate up direction
}

// DefaultCameraConfig returns a 100x100 camera at the origin looking down -z
func DefaultCameraConfig() CameraConfig {
	return CameraConfig{
		Width:       100,
		Height:      100,
		FieldOfView: math.Pi / 3,
		From:        core.Point(0, 0, 0),
		To:          core.Point(0, 0, -1),
		Up:          core.Vector(0, 1, 0),
	}
}

// Camera maps pixels of a canvas to rays in the world.
// The canvas sits one unit in front of the eye.
type Camera struct {
	hsize, vsize int
	fieldOfView  float64
	transform    core.Matrix // World to camera
	inverse      core.Matrix
	halfWidth    float64
	halfHeight   float64
	pixelSize    float64
}

// NewCamera creates a camera from its image size, field of view and view transform
func NewCamera(hsize, vsize int, fieldOfView float64, view core.Matrix) (*Camera, error) {
	if hsize <= 0 || vsize <= 0 {
		return nil, fmt.Errorf("size %dx%d: %w", hsize, vsize, ErrInvalidCamera)
	}
	if fieldOfView <= 0 || fieldOfView >= math.Pi {
		return nil, fmt.Errorf("field of view %g outside (0, pi): %w", fieldOfView, ErrInvalidCamera)
	}
	inverse, err := view.Inverse()
	if err != nil {
		return nil, fmt.Errorf("view transform: %w", err)
	}

	halfView := math.Tan(fieldOfView / 2)
	aspect := float64(hsize) / float64(vsize)

	// The field of view spans the longer side of the image
	halfWidth, halfHeight := halfView, halfView/aspect
	if aspect < 1 {
		halfWidth, halfHeight = halfView*aspect, halfView
	}

	return &Camera{
		hsize:       hsize,
		vsize:       vsize,
		fieldOfView: fieldOfView,
		transform:   view,
		inverse:     inverse,
		halfWidth:   halfWidth,
		halfHeight:  halfHeight,
		pixelSize:   halfWidth * 2 / float64(hsize),
	}, nil
}

// NewCameraFromConfig creates a camera whose view transform is built from From, To and Up
func NewCameraFromConfig(config CameraConfig) (*Camera, error) {
	view, err := core.ViewTransform(config.From, config.To, config.Up)
	if err != nil {
		return nil, fmt.Errorf("camera placement: %w", err)
	}
	return NewCamera(config.Width, config.Height, config.FieldOfView, view)
}

// HSize returns the horizontal size in pixels
func (c *Camera) HSize() int {
	return c.hsize
}

// VSize returns the vertical size in pixels
func (c *Camera) VSize() int {
	return c.vsize
}

// FieldOfView returns the field of view in radians
func (c *Camera) FieldOfView() float64 {
	return c.fieldOfView
}

// Transform returns the world-to-camera view transform
func (c *Camera) Transform() core.Matrix {
	return c.transform
}

// PixelSize returns the world-space size of one pixel on the canvas plane
func (c *Camera) PixelSize() float64 {
	return c.pixelSize
}

// RayForPixel returns the ray from the eye through the center of pixel (px, py)
func (c *Camera) RayForPixel(px, py int) (core.Ray, error) {
	// Offset from the canvas edge to the pixel center
	xOffset := (float64(px) + 0.5) * c.pixelSize
	yOffset := (float64(py) + 0.5) * c.pixelSize

	// The camera looks toward -z, so +x is to the left
	worldX := c.halfWidth - xOffset
	worldY := c.halfHeight - yOffset

	pixel := c.inverse.MultiplyTuple(core.Point(worldX, worldY, -1))
	origin := c.inverse.MultiplyTuple(core.Point(0, 0, 0))
	direction, err := pixel.Subtract(origin).Normalize()
	if err != nil {
		return core.Ray{}, fmt.Errorf("pixel (%d, %d): %w", px, py, err)
	}
	return core.NewRay(origin, direction), nil
}

// Render renders the world with the default render configuration
func (c *Camera) Render(world *scene.World) (*Canvas, error) {
	canvas, _, err := NewRenderer(c, world, DefaultRenderConfig(), nil).Render()
	return canvas, err
}
