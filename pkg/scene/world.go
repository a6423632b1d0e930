package scene

import (
	"errors"
	"fmt"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// ErrUnknownShape is returned when a ShapeID does not belong to the world
var ErrUnknownShape = errors.New("unknown shape")

// World owns every shape and light in a scene.
// It must not be modified while a render is in progress.
type World struct {
	shapes     []*geometry.Shape
	lights     []lights.PointLight
	Background core.Color // Returned for rays that hit nothing
}

// NewWorld creates an empty world with a black background
func NewWorld() *World {
	return &World{Background: core.Black}
}

// AddShape adds a shape to the world and returns its id
func (w *World) AddShape(shape *geometry.Shape) geometry.ShapeID {
	w.shapes = append(w.shapes, shape)
	return geometry.ShapeID(len(w.shapes) - 1)
}

// AddLight adds a point light to the world
func (w *World) AddLight(light lights.PointLight) {
	w.lights = append(w.lights, light)
}

// Shape returns the shape with the given id, or nil if there is none
func (w *World) Shape(id geometry.ShapeID) *geometry.Shape {
	if id < 0 || int(id) >= len(w.shapes) {
		return nil
	}
	return w.shapes[id]
}

// Shapes returns the shapes in id order
func (w *World) Shapes() []*geometry.Shape {
	return w.shapes
}

// Lights returns the lights in insertion order
func (w *World) Lights() []lights.PointLight {
	return w.lights
}

// Intersect returns every intersection of the ray with the world, sorted by t
func (w *World) Intersect(ray core.Ray) geometry.Intersections {
	var xs geometry.Intersections
	for i, shape := range w.shapes {
		xs = append(xs, shape.Intersect(ray, geometry.ShapeID(i))...)
	}
	xs.Sort()
	return xs
}

// IsShadowed reports whether anything lies between point and the light
func (w *World) IsShadowed(point core.Tuple, light lights.PointLight) (bool, error) {
	toLight := light.Position.Subtract(point)
	distance := toLight.Magnitude()
	direction, err := toLight.Normalize()
	if err != nil {
		return false, fmt.Errorf("shadow ray: %w", err)
	}

	for _, x := range w.Intersect(core.NewRay(point, direction)) {
		if x.T > 0 && x.T < distance {
			return true, nil
		}
	}
	return false, nil
}

// ShadeHit returns the color at a prepared hit, summed over every light
func (w *World) ShadeHit(comps geometry.Computations) (core.Color, error) {
	shape := w.Shape(comps.Object)
	if shape == nil {
		return core.Black, fmt.Errorf("shape %d: %w", comps.Object, ErrUnknownShape)
	}

	result := core.Black
	for _, light := range w.lights {
		// Shadow and lighting both use the over point to avoid self-shadowing acne
		shadowed, err := w.IsShadowed(comps.OverPoint, light)
		if err != nil {
			return core.Black, err
		}
		color, err := material.Lighting(shape.Material(), shape, light,
			comps.OverPoint, comps.Eye, comps.Normal, shadowed)
		if err != nil {
			return core.Black, err
		}
		result = result.Add(color)
	}
	return result, nil
}

// ColorAt traces a ray into the world. A miss returns the background color.
func (w *World) ColorAt(ray core.Ray) (core.Color, error) {
	color, _, err := w.Trace(ray)
	return color, err
}

// Trace is ColorAt that also reports whether the ray hit a shape
func (w *World) Trace(ray core.Ray) (core.Color, bool, error) {
	hit, ok := w.Intersect(ray).Hit()
	if !ok {
		return w.Background, false, nil
	}

	shape := w.Shape(hit.Object)
	if shape == nil {
		return core.Black, true, fmt.Errorf("shape %d: %w", hit.Object, ErrUnknownShape)
	}
	comps, err := geometry.PrepareComputations(hit, ray, shape)
	if err != nil {
		return core.Black, true, err
	}
	color, err := w.ShadeHit(comps)
	return color, true, err
}
