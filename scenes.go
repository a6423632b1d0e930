package main

import (
	"fmt"
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
	"github.com/df07/go-whitted-raytracer/pkg/material"
	"github.com/df07/go-whitted-raytracer/pkg/renderer"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// exampleScene pairs a world with the camera placement it was designed for
type exampleScene struct {
	World        *scene.World
	CameraConfig renderer.CameraConfig
}

// sceneNames lists the built-in scenes in help order
var sceneNames = []string{"spheres", "stripes", "default-world"}

// createScene builds one of the built-in scenes by name
func createScene(sceneType string) (*exampleScene, error) {
	switch sceneType {
	case "spheres":
		return newSpheresScene()
	case "stripes":
		return newStripesScene()
	case "default-world":
		return newDefaultWorldScene(), nil
	default:
		return nil, fmt.Errorf("unknown scene type %q", sceneType)
	}
}

// addShape configures a shape and adds it to the world
func addShape(w *scene.World, shape *geometry.Shape, transform core.Matrix, m material.Material) error {
	if err := shape.SetTransform(transform); err != nil {
		return err
	}
	if err := shape.SetMaterial(m); err != nil {
		return err
	}
	w.AddShape(shape)
	return nil
}

// newSpheresScene creates three spheres on a checkered floor in front of a striped wall
func newSpheresScene() (*exampleScene, error) {
	w := scene.NewWorld()
	w.AddLight(lights.NewPointLight(core.Point(-10, 10, -10), core.White))

	floor := material.DefaultMaterial()
	floor.Pattern = material.NewCheckerPattern(core.NewColor(1, 0.9, 0.9), core.NewColor(0.35, 0.3, 0.3))
	floor.Specular = 0
	if err := addShape(w, geometry.NewPlane(), core.Identity(), floor); err != nil {
		return nil, fmt.Errorf("floor: %w", err)
	}

	wallStripes := material.NewStripePattern(core.NewColor(0.9, 0.9, 1), core.NewColor(0.6, 0.6, 0.75))
	if err := wallStripes.SetTransform(core.Chain(core.RotationY(math.Pi/2), core.Scaling(0.5, 0.5, 0.5))); err != nil {
		return nil, fmt.Errorf("wall pattern: %w", err)
	}
	wall := material.DefaultMaterial()
	wall.Pattern = wallStripes
	wall.Specular = 0
	if err := addShape(w, geometry.NewPlane(), core.Chain(core.RotationX(math.Pi/2), core.Translation(0, 0, 5)), wall); err != nil {
		return nil, fmt.Errorf("wall: %w", err)
	}

	gradient := material.NewGradientPattern(core.NewColor(0.1, 1, 0.5), core.NewColor(0.1, 0.4, 1))
	if err := gradient.SetTransform(core.Chain(core.Scaling(2, 1, 1), core.Translation(-1, 0, 0))); err != nil {
		return nil, fmt.Errorf("middle pattern: %w", err)
	}
	middle := material.DefaultMaterial()
	middle.Pattern = gradient
	middle.Diffuse = 0.7
	middle.Specular = 0.3
	if err := addShape(w, geometry.NewSphere(), core.Translation(-0.5, 1, 0.5), middle); err != nil {
		return nil, fmt.Errorf("middle sphere: %w", err)
	}

	right := material.DefaultMaterial()
	right.Color = core.NewColor(0.5, 1, 0.1)
	right.Diffuse = 0.7
	right.Specular = 0.3
	if err := addShape(w, geometry.NewSphere(),
		core.Chain(core.Scaling(0.5, 0.5, 0.5), core.Translation(1.5, 0.5, -0.5)), right); err != nil {
		return nil, fmt.Errorf("right sphere: %w", err)
	}

	rings := material.NewRingPattern(core.NewColor(1, 0.7, 0.1), core.NewColor(0.8, 0.3, 0.1))
	if err := rings.SetTransform(core.Chain(core.Scaling(0.2, 0.2, 0.2), core.RotationX(math.Pi/4))); err != nil {
		return nil, fmt.Errorf("left pattern: %w", err)
	}
	left := material.DefaultMaterial()
	left.Pattern = rings
	left.Diffuse = 0.7
	left.Specular = 0.3
	if err := addShape(w, geometry.NewSphere(),
		core.Chain(core.Scaling(0.33, 0.33, 0.33), core.Translation(-1.5, 0.33, -0.75)), left); err != nil {
		return nil, fmt.Errorf("left sphere: %w", err)
	}

	return &exampleScene{
		World: w,
		CameraConfig: renderer.CameraConfig{
			Width:       400,
			Height:      200,
			FieldOfView: math.Pi / 3,
			From:        core.Point(0, 1.5, -5),
			To:          core.Point(0, 1, 0),
			Up:          core.Vector(0, 1, 0),
		},
	}, nil
}

// newStripesScene creates a striped floor and wall with a ball wearing nested stripes
func newStripesScene() (*exampleScene, error) {
	w := scene.NewWorld()
	w.AddLight(lights.NewPointLight(core.Point(-5, 10, 5), core.White))

	green, blue := core.NewColor(0.1, 0.8, 0.3), core.NewColor(0.1, 0.3, 0.8)

	floor := material.DefaultMaterial()
	floor.Pattern = material.NewStripePattern(green, blue)
	if err := addShape(w, geometry.NewPlane(), core.Identity(), floor); err != nil {
		return nil, fmt.Errorf("floor: %w", err)
	}

	wall := material.DefaultMaterial()
	wall.Pattern = material.NewStripePattern(green, blue)
	if err := addShape(w, geometry.NewPlane(), core.RotationX(math.Pi/2), wall); err != nil {
		return nil, fmt.Errorf("wall: %w", err)
	}

	// Stripes of stripes: the second band is itself striped across the first
	across := material.NewStripePattern(core.NewColor(0.7, 0.4, 0.1), core.NewColor(0.95, 0.85, 0.6))
	if err := across.SetTransform(core.Chain(core.Scaling(0.5, 0.5, 0.5), core.RotationY(math.Pi/2))); err != nil {
		return nil, fmt.Errorf("ball inner pattern: %w", err)
	}
	ballPattern, err := material.NewCompositePattern(material.PatternStripe,
		material.NewSolidPattern(core.NewColor(0.8, 0.3, 0.1)), across)
	if err != nil {
		return nil, fmt.Errorf("ball pattern: %w", err)
	}
	if err := ballPattern.SetTransform(core.Chain(core.Scaling(0.1, 0.1, 0.1), core.RotationY(math.Pi/4))); err != nil {
		return nil, fmt.Errorf("ball pattern: %w", err)
	}
	ball := material.DefaultMaterial()
	ball.Pattern = ballPattern
	if err := addShape(w, geometry.NewSphere(),
		core.Chain(core.Scaling(0.75, 0.75, 0.75), core.Translation(0, 2, 2)), ball); err != nil {
		return nil, fmt.Errorf("ball: %w", err)
	}

	return &exampleScene{
		World: w,
		CameraConfig: renderer.CameraConfig{
			Width:       400,
			Height:      225,
			FieldOfView: math.Pi / 3,
			From:        core.Point(0, 5, 10),
			To:          core.Point(0, 2, 0),
			Up:          core.Vector(0, 1, 0),
		},
	}, nil
}

// newDefaultWorldScene frames the two-sphere test world
func newDefaultWorldScene() *exampleScene {
	return &exampleScene{
		World: scene.DefaultWorld(),
		CameraConfig: renderer.CameraConfig{
			Width:       200,
			Height:      200,
			FieldOfView: math.Pi / 2,
			From:        core.Point(0, 0, -5),
			To:          core.Point(0, 0, 0),
			Up:          core.Vector(0, 1, 0),
		},
	}
}
