package core

import (
	"fmt"
	"math"
)

// Translation returns a matrix that moves points by (x, y, z). Vectors are unaffected.
func Translation(x, y, z float64) Matrix {
	m := Identity()
	m[0][3] = x
	m[1][3] = y
	m[2][3] = z
	return m
}

// Scaling returns a matrix that scales along each axis
func Scaling(x, y, z float64) Matrix {
	m := Identity()
	m[0][0] = x
	m[1][1] = y
	m[2][2] = z
	return m
}

// RotationX returns a right-handed rotation of r radians around the X axis
func RotationX(r float64) Matrix {
	sin, cos := math.Sincos(r)
	m := Identity()
	m[1][1] = cos
	m[1][2] = -sin
	m[2][1] = sin
	m[2][2] = cos
	return m
}

// RotationY returns a right-handed rotation of r radians around the Y axis
func RotationY(r float64) Matrix {
	sin, cos := math.Sincos(r)
	m := Identity()
	m[0][0] = cos
	m[0][2] = sin
	m[2][0] = -sin
	m[2][2] = cos
	return m
}

// RotationZ returns a right-handed rotation of r radians around the Z axis
func RotationZ(r float64) Matrix {
	sin, cos := math.Sincos(r)
	m := Identity()
	m[0][0] = cos
	m[0][1] = -sin
	m[1][0] = sin
	m[1][1] = cos
	return m
}

// Shearing returns a shear matrix. Each argument moves the first axis in
// proportion to the second, e.g. xy moves x in proportion to y.
func Shearing(xy, xz, yx, yz, zx, zy float64) Matrix {
	m := Identity()
	m[0][1] = xy
	m[0][2] = xz
	m[1][0] = yx
	m[1][2] = yz
	m[2][0] = zx
	m[2][1] = zy
	return m
}

// Chain composes transforms in the order they are applied:
// Chain(a, b, c) equals c * b * a.
func Chain(transforms ...Matrix) Matrix {
	result := Identity()
	for _, t := range transforms {
		result = t.Multiply(result)
	}
	return result
}

// ViewTransform returns the world-to-camera matrix for an eye at from looking
// at to, with up approximately pointing up.
func ViewTransform(from, to, up Tuple) (Matrix, error) {
	forward, err := to.Subtract(from).Normalize()
	if err != nil {
		return Matrix{}, fmt.Errorf("view direction: %w", err)
	}
	upn, err := up.Normalize()
	if err != nil {
		return Matrix{}, fmt.Errorf("up vector: %w", err)
	}
	left := forward.Cross(upn)
	if left.Magnitude() < Epsilon {
		return Matrix{}, fmt.Errorf("up vector parallel to view direction: %w", ErrZeroVector)
	}
	trueUp := left.Cross(forward)

	orientation := Matrix{
		{left.X, left.Y, left.Z, 0},
		{trueUp.X, trueUp.Y, trueUp.Z, 0},
		{-forward.X, -forward.Y, -forward.Z, 0},
		{0, 0, 0, 1},
	}
	return orientation.Multiply(Translation(-from.X, -from.Y, -from.Z)), nil
}
