package renderer

import (
	"errors"
	"math"
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

func TestNewCamera(t *testing.T) {
	c, err := NewCamera(160, 120, math.Pi/2, core.Identity())
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if c.HSize() != 160 || c.VSize() != 120 {
		t.Errorf("Expected 160x120, got %dx%d", c.HSize(), c.VSize())
	}
	if c.FieldOfView() != math.Pi/2 {
		t.Errorf("Expected field of view pi/2, got %f", c.FieldOfView())
	}
	if !c.Transform().ApproxEqual(core.Identity()) {
		t.Errorf("Expected identity transform, got\n%v", c.Transform())
	}
}

func TestCamera_PixelSize(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
	}{
		{"horizontal canvas", 200, 125},
		{"vertical canvas", 125, 200},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := NewCamera(tt.width, tt.height, math.Pi/2, core.Identity())
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if !core.ApproxEqual(c.PixelSize(), 0.01) {
				t.Errorf("Expected pixel size 0.01, got %f", c.PixelSize())
			}
		})
	}
}

func TestCamera_RayForPixel(t *testing.T) {
	half := math.Sqrt2 / 2
	tests := []struct {
		name      string
		transform core.Matrix
		px, py    int
		origin    core.Tuple
		direction core.Tuple
	}{
		{
			name:      "center of canvas",
			transform: core.Identity(),
			px:        100,
			py:        50,
			origin:    core.Point(0, 0, 0),
			direction: core.Vector(0, 0, -1),
		},
		{
			name:      "corner of canvas",
			transform: core.Identity(),
			px:        0,
			py:        0,
			origin:    core.Point(0, 0, 0),
			direction: core.Vector(0.66519, 0.33259, -0.66851),
		},
		{
			name:      "transformed camera",
			transform: core.RotationY(math.Pi / 4).Multiply(core.Translation(0, -2, 5)),
			px:        100,
			py:        50,
			origin:    core.Point(0, 2, -5),
			direction: core.Vector(half, 0, -half),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := NewCamera(201, 101, math.Pi/2, tt.transform)
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			ray, err := c.RayForPixel(tt.px, tt.py)
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if !ray.Origin.ApproxEqual(tt.origin) {
				t.Errorf("Expected origin %v, got %v", tt.origin, ray.Origin)
			}
			if !ray.Direction.ApproxEqual(tt.direction) {
				t.Errorf("Expected direction %v, got %v", tt.direction, ray.Direction)
			}
		})
	}
}

func TestNewCamera_Invalid(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
		fov           float64
		view          core.Matrix
		target        error
	}{
		{"zero width", 0, 10, math.Pi / 2, core.Identity(), ErrInvalidCamera},
		{"negative height", 10, -1, math.Pi / 2, core.Identity(), ErrInvalidCamera},
		{"zero field of view", 10, 10, 0, core.Identity(), ErrInvalidCamera},
		{"field of view of pi", 10, 10, math.Pi, core.Identity(), ErrInvalidCamera},
		{"singular view", 10, 10, math.Pi / 2, core.Scaling(1, 1, 0), core.ErrNotInvertible},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewCamera(tt.width, tt.height, tt.fov, tt.view)
			if !errors.Is(err, tt.target) {
				t.Errorf("Expected %v, got %v", tt.target, err)
			}
		})
	}
}

func TestNewCameraFromConfig(t *testing.T) {
	c, err := NewCameraFromConfig(DefaultCameraConfig())
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if c.HSize() != 100 || c.VSize() != 100 {
		t.Errorf("Expected 100x100, got %dx%d", c.HSize(), c.VSize())
	}
	if !core.ApproxEqual(c.FieldOfView(), math.Pi/3) {
		t.Errorf("Expected field of view pi/3, got %f", c.FieldOfView())
	}
	if !c.Transform().ApproxEqual(core.Identity()) {
		t.Errorf("Default placement should give the identity view, got\n%v", c.Transform())
	}

	config := DefaultCameraConfig()
	config.To = config.From
	if _, err := NewCameraFromConfig(config); !errors.Is(err, core.ErrZeroVector) {
		t.Errorf("Expected ErrZeroVector for coincident from/to, got %v", err)
	}
}

func TestCamera_Render(t *testing.T) {
	config := CameraConfig{
		Width:       11,
		Height:      11,
		FieldOfView: math.Pi / 2,
		From:        core.Point(0, 0, -5),
		To:          core.Point(0, 0, 0),
		Up:          core.Vector(0, 1, 0),
	}
	c, err := NewCameraFromConfig(config)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	canvas, err := c.Render(scene.DefaultWorld())
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	got := canvas.PixelAt(5, 5)
	expected := core.NewColor(0.38066, 0.47583, 0.2855)
	if math.Abs(got.R-expected.R) > 1e-4 ||
		math.Abs(got.G-expected.G) > 1e-4 ||
		math.Abs(got.B-expected.B) > 1e-4 {
		t.Errorf("Expected %v at the center, got %v", expected, got)
	}
}
