package core

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Tuple is a homogeneous coordinate. W is 1 for points and 0 for vectors.
type Tuple struct {
	X, Y, Z, W float64
}

// Point creates a tuple representing a position
func Point(x, y, z float64) Tuple {
	return Tuple{X: x, Y: y, Z: z, W: 1}
}

// Vector creates a tuple representing a direction
func Vector(x, y, z float64) Tuple {
	return Tuple{X: x, Y: y, Z: z, W: 0}
}

// IsPoint reports whether the tuple is a point
func (t Tuple) IsPoint() bool {
	return ApproxEqual(t.W, 1)
}

// IsVector reports whether the tuple is a vector
func (t Tuple) IsVector() bool {
	return NearZero(t.W)
}

// Add returns the component-wise sum. Adding a vector to a point yields a point;
// adding two points is meaningless and yields W=2.
func (t Tuple) Add(other Tuple) Tuple {
	return Tuple{t.X + other.X, t.Y + other.Y, t.Z + other.Z, t.W + other.W}
}

// Subtract returns the component-wise difference
func (t Tuple) Subtract(other Tuple) Tuple {
	return Tuple{t.X - other.X, t.Y - other.Y, t.Z - other.Z, t.W - other.W}
}

// Negate returns the tuple with every component negated
func (t Tuple) Negate() Tuple {
	return Tuple{-t.X, -t.Y, -t.Z, -t.W}
}

// Multiply returns the tuple scaled by a scalar
func (t Tuple) Multiply(scalar float64) Tuple {
	return Tuple{t.X * scalar, t.Y * scalar, t.Z * scalar, t.W * scalar}
}

// Divide returns the tuple divided by a scalar
func (t Tuple) Divide(scalar float64) Tuple {
	return Tuple{t.X / scalar, t.Y / scalar, t.Z / scalar, t.W / scalar}
}

// Magnitude returns the length of the vector part
func (t Tuple) Magnitude() float64 {
	return r3.Norm(t.r3())
}

// Normalize returns a unit vector in the same direction.
// Vectors shorter than Epsilon, or with a NaN or infinite length, cannot be
// normalized and return ErrZeroVector.
func (t Tuple) Normalize() (Tuple, error) {
	length := t.Magnitude()
	if math.IsNaN(length) || math.IsInf(length, 0) {
		return Tuple{}, fmt.Errorf("normalize %v: length is not finite: %w", t, ErrZeroVector)
	}
	if length < Epsilon {
		return Tuple{}, fmt.Errorf("normalize %v: %w", t, ErrZeroVector)
	}
	return Vector(t.X/length, t.Y/length, t.Z/length), nil
}

// Dot returns the dot product of two tuples
func (t Tuple) Dot(other Tuple) float64 {
	return t.X*other.X + t.Y*other.Y + t.Z*other.Z + t.W*other.W
}

// Cross returns the cross product of two vectors. W is ignored.
func (t Tuple) Cross(other Tuple) Tuple {
	c := r3.Cross(t.r3(), other.r3())
	return Vector(c.X, c.Y, c.Z)
}

// Reflect reflects the vector around the given normal
func (t Tuple) Reflect(normal Tuple) Tuple {
	return t.Subtract(normal.Multiply(2 * t.Dot(normal)))
}

// ApproxEqual reports whether every component is within Epsilon
func (t Tuple) ApproxEqual(other Tuple) bool {
	return ApproxEqual(t.X, other.X) &&
		ApproxEqual(t.Y, other.Y) &&
		ApproxEqual(t.Z, other.Z) &&
		ApproxEqual(t.W, other.W)
}

// String formats the tuple for test output and logs
func (t Tuple) String() string {
	kind := "tuple"
	switch {
	case t.IsPoint():
		kind = "point"
	case t.IsVector():
		kind = "vector"
	}
	return fmt.Sprintf("%s(%g, %g, %g)", kind, t.X, t.Y, t.Z)
}

func (t Tuple) r3() r3.Vec {
	return r3.Vec{X: t.X, Y: t.Y, Z: t.Z}
}
