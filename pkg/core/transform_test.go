package core

import (
	"errors"
	"math"
	"testing"
)

func TestTransform_Points(t *testing.T) {
	invTranslation, err := Translation(5, -3, 2).Inverse()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	invScaling, err := Scaling(2, 3, 4).Inverse()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	half := math.Sqrt2 / 2

	tests := []struct {
		name      string
		transform Matrix
		input     Tuple
		expected  Tuple
	}{
		{"translate point", Translation(5, -3, 2), Point(-3, 4, 5), Point(2, 1, 7)},
		{"inverse translate point", invTranslation, Point(-3, 4, 5), Point(-8, 7, 3)},
		{"translate vector is no-op", Translation(5, -3, 2), Vector(-3, 4, 5), Vector(-3, 4, 5)},
		{"scale point", Scaling(2, 3, 4), Point(-4, 6, 8), Point(-8, 18, 32)},
		{"scale vector", Scaling(2, 3, 4), Vector(-4, 6, 8), Vector(-8, 18, 32)},
		{"inverse scale vector", invScaling, Vector(-4, 6, 8), Vector(-2, 2, 2)},
		{"reflection", Scaling(-1, 1, 1), Point(2, 3, 4), Point(-2, 3, 4)},
		{"rotate x eighth", RotationX(math.Pi / 4), Point(0, 1, 0), Point(0, half, half)},
		{"rotate x quarter", RotationX(math.Pi / 2), Point(0, 1, 0), Point(0, 0, 1)},
		{"rotate y eighth", RotationY(math.Pi / 4), Point(0, 0, 1), Point(half, 0, half)},
		{"rotate y quarter", RotationY(math.Pi / 2), Point(0, 0, 1), Point(1, 0, 0)},
		{"rotate z eighth", RotationZ(math.Pi / 4), Point(0, 1, 0), Point(-half, half, 0)},
		{"rotate z quarter", RotationZ(math.Pi / 2), Point(0, 1, 0), Point(-1, 0, 0)},
		{"shear x by y", Shearing(1, 0, 0, 0, 0, 0), Point(2, 3, 4), Point(5, 3, 4)},
		{"shear x by z", Shearing(0, 1, 0, 0, 0, 0), Point(2, 3, 4), Point(6, 3, 4)},
		{"shear y by x", Shearing(0, 0, 1, 0, 0, 0), Point(2, 3, 4), Point(2, 5, 4)},
		{"shear y by z", Shearing(0, 0, 0, 1, 0, 0), Point(2, 3, 4), Point(2, 7, 4)},
		{"shear z by x", Shearing(0, 0, 0, 0, 1, 0), Point(2, 3, 4), Point(2, 3, 6)},
		{"shear z by y", Shearing(0, 0, 0, 0, 0, 1), Point(2, 3, 4), Point(2, 3, 7)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.transform.MultiplyTuple(tt.input); !got.ApproxEqual(tt.expected) {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestTransform_Chaining(t *testing.T) {
	p := Point(1, 0, 1)
	a := RotationX(math.Pi / 2)
	b := Scaling(5, 5, 5)
	c := Translation(10, 5, 7)

	// Applied one at a time
	p2 := a.MultiplyTuple(p)
	p3 := b.MultiplyTuple(p2)
	p4 := c.MultiplyTuple(p3)
	if !p4.ApproxEqual(Point(15, 0, 7)) {
		t.Errorf("Expected (15, 0, 7), got %v", p4)
	}

	// Chained matrices are applied in reverse order
	product := c.Multiply(b).Multiply(a)
	if got := product.MultiplyTuple(p); !got.ApproxEqual(Point(15, 0, 7)) {
		t.Errorf("Expected (15, 0, 7), got %v", got)
	}

	if chained := Chain(a, b, c); !chained.ApproxEqual(product) {
		t.Errorf("Chain(a, b, c) should equal c*b*a:\n%v\nvs\n%v", chained, product)
	}
}

func TestTransform_ViewTransform(t *testing.T) {
	tests := []struct {
		name     string
		from     Tuple
		to       Tuple
		up       Tuple
		expected Matrix
	}{
		{"default orientation", Point(0, 0, 0), Point(0, 0, -1), Vector(0, 1, 0), Identity()},
		{"looking in positive z", Point(0, 0, 0), Point(0, 0, 1), Vector(0, 1, 0), Scaling(-1, 1, -1)},
		{"moves the world", Point(0, 0, 8), Point(0, 0, 0), Vector(0, 1, 0), Translation(0, 0, -8)},
		{
			"arbitrary",
			Point(1, 3, 2), Point(4, -2, 8), Vector(1, 1, 0),
			Matrix{
				{-0.50709, 0.50709, 0.67612, -2.36643},
				{0.76772, 0.60609, 0.12122, -2.82843},
				{-0.35857, 0.59761, -0.71714, 0},
				{0, 0, 0, 1},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ViewTransform(tt.from, tt.to, tt.up)
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			for row := 0; row < 4; row++ {
				for col := 0; col < 4; col++ {
					if math.Abs(got[row][col]-tt.expected[row][col]) > 1e-4 {
						t.Fatalf("Expected\n%v\ngot\n%v", tt.expected, got)
					}
				}
			}
		})
	}
}

func TestTransform_ViewTransformDegenerate(t *testing.T) {
	tests := []struct {
		name string
		from Tuple
		to   Tuple
		up   Tuple
	}{
		{"from equals to", Point(1, 1, 1), Point(1, 1, 1), Vector(0, 1, 0)},
		{"zero up", Point(0, 0, 0), Point(0, 0, -1), Vector(0, 0, 0)},
		{"up parallel to view", Point(0, 0, 0), Point(0, 1, 0), Vector(0, 1, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ViewTransform(tt.from, tt.to, tt.up); !errors.Is(err, ErrZeroVector) {
				t.Errorf("Expected ErrZeroVector, got %v", err)
			}
		})
	}
}
