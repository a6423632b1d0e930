package geometry

import (
	"fmt"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// ShapeKind selects the local intersection and normal rules of a Shape
type ShapeKind int

const (
	KindSphere ShapeKind = iota
	KindPlane
)

func (k ShapeKind) String() string {
	switch k {
	case KindSphere:
		return "sphere"
	case KindPlane:
		return "plane"
	default:
		return fmt.Sprintf("ShapeKind(%d)", int(k))
	}
}

// ShapeID identifies a shape by its index in the world that owns it
type ShapeID int

// Shape is a primitive placed in the world by a transform.
// The inverse and inverse-transpose are cached whenever the transform changes.
type Shape struct {
	kind             ShapeKind
	transform        core.Matrix
	inverse          core.Matrix
	inverseTranspose core.Matrix
	material         material.Material
}

// NewSphere creates a unit sphere centered at the origin
func NewSphere() *Shape {
	return newShape(KindSphere)
}

// NewPlane creates an infinite plane in xz with normal +y
func NewPlane() *Shape {
	return newShape(KindPlane)
}

func newShape(kind ShapeKind) *Shape {
	return &Shape{
		kind:             kind,
		transform:        core.Identity(),
		inverse:          core.Identity(),
		inverseTranspose: core.Identity(),
		material:         material.DefaultMaterial(),
	}
}

// Kind returns the primitive type of the shape
func (s *Shape) Kind() ShapeKind {
	return s.kind
}

// Transform returns the object-to-world transform
func (s *Shape) Transform() core.Matrix {
	return s.transform
}

// SetTransform sets the object-to-world transform. Singular matrices are
// rejected and leave the shape unchanged. The determinant must be at least
// core.Epsilon in magnitude, so a uniform scale below about 0.0215 is rejected;
// build very small shapes by scaling the rest of the scene up instead.
func (s *Shape) SetTransform(m core.Matrix) error {
	inverse, err := m.Inverse()
	if err != nil {
		return fmt.Errorf("%v transform: %w", s.kind, err)
	}
	s.transform = m
	s.inverse = inverse
	s.inverseTranspose = inverse.Transpose()
	return nil
}

// Material returns the surface material
func (s *Shape) Material() material.Material {
	return s.material
}

// SetMaterial sets the surface material after validating it
func (s *Shape) SetMaterial(m material.Material) error {
	if err := m.Validate(); err != nil {
		return fmt.Errorf("%v material: %w", s.kind, err)
	}
	s.material = m
	return nil
}

// WorldToObject converts a world-space point into the shape's local space
func (s *Shape) WorldToObject(point core.Tuple) core.Tuple {
	return s.inverse.MultiplyTuple(point)
}

// Intersect returns every intersection of the ray with the shape in
// ascending t order, tagged with id.
func (s *Shape) Intersect(ray core.Ray, id ShapeID) Intersections {
	local := ray.Transform(s.inverse)

	var ts [2]float64
	var n int
	switch s.kind {
	case KindSphere:
		n = intersectSphere(local, &ts)
	case KindPlane:
		n = intersectPlane(local, &ts)
	}

	xs := make(Intersections, n)
	for i := 0; i < n; i++ {
		xs[i] = Intersection{T: ts[i], Object: id}
	}
	return xs
}

// NormalAt returns the unit surface normal at a world-space point on the shape
func (s *Shape) NormalAt(worldPoint core.Tuple) (core.Tuple, error) {
	localPoint := s.WorldToObject(worldPoint)

	var localNormal core.Tuple
	switch s.kind {
	case KindSphere:
		localNormal = sphereNormal(localPoint)
	case KindPlane:
		localNormal = planeNormal(localPoint)
	}

	// Normals follow the inverse-transpose; translation leaks into W and is dropped
	worldNormal := s.inverseTranspose.MultiplyTuple(localNormal)
	worldNormal.W = 0

	normal, err := worldNormal.Normalize()
	if err != nil {
		return core.Tuple{}, fmt.Errorf("%v normal at %v: %w", s.kind, worldPoint, err)
	}
	return normal, nil
}
