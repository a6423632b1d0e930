package scene

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
)

// DefaultWorld creates the standard two-sphere world: a unit sphere with a
// green-tinted matte material around a half-size sphere, lit from the upper left.
func DefaultWorld() *World {
	w := NewWorld()
	w.AddLight(lights.NewPointLight(core.Point(-10, 10, -10), core.White))

	outer := geometry.NewSphere()
	m := outer.Material()
	m.Color = core.NewColor(0.8, 1.0, 0.6)
	m.Diffuse = 0.7
	m.Specular = 0.2
	// Fixture values are always valid
	_ = outer.SetMaterial(m)

	inner := geometry.NewSphere()
	_ = inner.SetTransform(core.Scaling(0.5, 0.5, 0.5))

	w.AddShape(outer)
	w.AddShape(inner)
	return w
}
