package geometry

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// intersectPlane solves the ray against the xz plane. Rays parallel to the
// plane never hit it, including rays lying in it.
func intersectPlane(ray core.Ray, ts *[2]float64) int {
	if math.Abs(ray.Direction.Y) < core.Epsilon {
		return 0
	}
	ts[0] = -ray.Origin.Y / ray.Direction.Y
	return 1
}

// planeNormal is constant across the plane
func planeNormal(core.Tuple) core.Tuple {
	return core.Vector(0, 1, 0)
}
