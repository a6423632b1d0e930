package geometry

import (
	"fmt"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Computations holds the precomputed state needed to shade a hit
type Computations struct {
	T         float64
	Object    ShapeID
	Point     core.Tuple // Point of intersection
	OverPoint core.Tuple // Point nudged along the normal to escape the surface
	Eye       core.Tuple // Unit vector back toward the ray origin
	Normal    core.Tuple // Unit normal facing the eye
	Inside    bool       // Whether the ray hit the surface from inside
}

// PrepareComputations computes the shading state for a hit on shape
func PrepareComputations(hit Intersection, ray core.Ray, shape *Shape) (Computations, error) {
	point := ray.Position(hit.T)

	eye, err := ray.Direction.Negate().Normalize()
	if err != nil {
		return Computations{}, fmt.Errorf("eye vector: %w", err)
	}

	normal, err := shape.NormalAt(point)
	if err != nil {
		return Computations{}, err
	}

	// Flip the normal when it faces away from the eye
	inside := normal.Dot(eye) < 0
	if inside {
		normal = normal.Negate()
	}

	return Computations{
		T:         hit.T,
		Object:    hit.Object,
		Point:     point,
		OverPoint: point.Add(normal.Multiply(core.Epsilon)),
		Eye:       eye,
		Normal:    normal,
		Inside:    inside,
	}, nil
}
