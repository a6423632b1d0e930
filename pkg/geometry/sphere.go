package geometry

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// intersectSphere solves the ray against the unit sphere at the origin.
// A tangent ray reports the same t twice.
func intersectSphere(ray core.Ray, ts *[2]float64) int {
	// Vector from sphere center to ray origin
	sphereToRay := ray.Origin.Subtract(core.Point(0, 0, 0))

	// Quadratic equation coefficients: at² + bt + c = 0
	a := ray.Direction.Dot(ray.Direction)
	b := 2 * ray.Direction.Dot(sphereToRay)
	c := sphereToRay.Dot(sphereToRay) - 1

	// A zero-length direction has no quadratic to solve
	if ray.Direction.Magnitude() < core.Epsilon {
		return 0
	}

	discriminant := b*b - 4*a*c
	if discriminant < 0 {
		return 0
	}

	sqrtD := math.Sqrt(discriminant)
	t1 := (-b - sqrtD) / (2 * a)
	t2 := (-b + sqrtD) / (2 * a)
	if t1 > t2 {
		t1, t2 = t2, t1
	}
	ts[0], ts[1] = t1, t2
	return 2
}

// sphereNormal is the vector from the center to the local point
func sphereNormal(localPoint core.Tuple) core.Tuple {
	return localPoint.Subtract(core.Point(0, 0, 0))
}
