package lights

import "github.com/df07/go-whitted-raytracer/pkg/core"

// PointLight is a light source with no size, emitting equally in all directions
type PointLight struct {
	Position  core.Tuple
	Intensity core.Color
}

// NewPointLight creates a new point light
func NewPointLight(position core.Tuple, intensity core.Color) PointLight {
	return PointLight{Position: position, Intensity: intensity}
}
