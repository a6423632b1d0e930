package material

import "github.com/df07/go-whitted-raytracer/pkg/core"

// Object is anything with its own local coordinate frame that a pattern can be attached to
type Object interface {
	// WorldToObject converts a world-space point into the object's local space
	WorldToObject(point core.Tuple) core.Tuple
}
