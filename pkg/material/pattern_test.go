package material

import (
	"errors"
	"math"
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// scaledObject is an Object whose local space is a scaled or translated copy of world space
type scaledObject struct {
	inverse core.Matrix
}

func newTestObject(t *testing.T, transform core.Matrix) scaledObject {
	t.Helper()
	inverse, err := transform.Inverse()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	return scaledObject{inverse: inverse}
}

func (o scaledObject) WorldToObject(p core.Tuple) core.Tuple {
	return o.inverse.MultiplyTuple(p)
}

type patternCase struct {
	point    core.Tuple
	expected core.Color
}

func checkPattern(t *testing.T, p *Pattern, cases []patternCase) {
	t.Helper()
	for _, c := range cases {
		if got := p.ColorAt(c.point); !got.ApproxEqual(c.expected) {
			t.Errorf("%v pattern at %v: expected %v, got %v", p.Kind(), c.point, c.expected, got)
		}
	}
}

func TestPattern_Solid(t *testing.T) {
	c := core.NewColor(0.5, 0.5, 0.5)
	checkPattern(t, NewSolidPattern(c), []patternCase{
		{core.Point(0, 0, 0), c},
		{core.Point(0, 1, 0), c},
		{core.Point(-2, 3.5, 5.2), c},
	})
}

func TestPattern_Stripe(t *testing.T) {
	p := NewStripePattern(core.White, core.Black)

	t.Run("constant in y", func(t *testing.T) {
		checkPattern(t, p, []patternCase{
			{core.Point(0, 0, 0), core.White},
			{core.Point(0, 1, 0), core.White},
			{core.Point(0, 2, 0), core.White},
		})
	})
	t.Run("constant in z", func(t *testing.T) {
		checkPattern(t, p, []patternCase{
			{core.Point(0, 0, 0), core.White},
			{core.Point(0, 0, 1), core.White},
			{core.Point(0, 0, 2), core.White},
		})
	})
	t.Run("alternates in x", func(t *testing.T) {
		checkPattern(t, p, []patternCase{
			{core.Point(0, 0, 0), core.White},
			{core.Point(0.9, 0, 0), core.White},
			{core.Point(1, 0, 0), core.Black},
			{core.Point(-0.1, 0, 0), core.Black},
			{core.Point(-1, 0, 0), core.Black},
			{core.Point(-1.1, 0, 0), core.White},
		})
	})
}

func TestPattern_Gradient(t *testing.T) {
	checkPattern(t, NewGradientPattern(core.White, core.Black), []patternCase{
		{core.Point(0, 0, 0), core.White},
		{core.Point(0.25, 0, 0), core.NewColor(0.75, 0.75, 0.75)},
		{core.Point(0.5, 0, 0), core.NewColor(0.5, 0.5, 0.5)},
		{core.Point(0.75, 0, 0), core.NewColor(0.25, 0.25, 0.25)},
	})
}

func TestPattern_Ring(t *testing.T) {
	checkPattern(t, NewRingPattern(core.White, core.Black), []patternCase{
		{core.Point(0, 0, 0), core.White},
		{core.Point(1, 0, 0), core.Black},
		{core.Point(0, 0, 1), core.Black},
		{core.Point(0.708, 0, 0.708), core.Black},
	})
}

func TestPattern_Checker(t *testing.T) {
	p := NewCheckerPattern(core.White, core.Black)

	tests := []struct {
		name  string
		cases []patternCase
	}{
		{"repeats in x", []patternCase{
			{core.Point(0, 0, 0), core.White},
			{core.Point(0.99, 0, 0), core.White},
			{core.Point(1.01, 0, 0), core.Black},
		}},
		{"repeats in y", []patternCase{
			{core.Point(0, 0, 0), core.White},
			{core.Point(0, 0.99, 0), core.White},
			{core.Point(0, 1.01, 0), core.Black},
		}},
		{"repeats in z", []patternCase{
			{core.Point(0, 0, 0), core.White},
			{core.Point(0, 0, 0.99), core.White},
			{core.Point(0, 0, 1.01), core.Black},
		}},
		{"negative cells", []patternCase{
			{core.Point(-0.5, 0, 0), core.Black},
			{core.Point(-0.5, -0.5, 0), core.White},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			checkPattern(t, p, tt.cases)
		})
	}

	if p.ColorAt(core.Point(0.99, 0, 0)).ApproxEqual(p.ColorAt(core.Point(1.01, 0, 0))) {
		t.Error("Expected checker to change color across x = 1")
	}
}

func TestPattern_Transforms(t *testing.T) {
	tests := []struct {
		name             string
		objectTransform  core.Matrix
		patternTransform core.Matrix
		point            core.Tuple
	}{
		{"object transform", core.Scaling(2, 2, 2), core.Identity(), core.Point(1.5, 0, 0)},
		{"pattern transform", core.Identity(), core.Scaling(2, 2, 2), core.Point(1.5, 0, 0)},
		{"object and pattern transform", core.Scaling(2, 2, 2), core.Translation(0.5, 0, 0), core.Point(2.5, 0, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewStripePattern(core.White, core.Black)
			if err := p.SetTransform(tt.patternTransform); err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			obj := newTestObject(t, tt.objectTransform)
			if got := p.ColorAtObject(obj, tt.point); !got.ApproxEqual(core.White) {
				t.Errorf("Expected white, got %v", got)
			}
		})
	}
}

func TestPattern_SetTransformRejectsSingular(t *testing.T) {
	p := NewStripePattern(core.White, core.Black)
	err := p.SetTransform(core.Scaling(0, 1, 1))
	if !errors.Is(err, core.ErrNotInvertible) {
		t.Errorf("Expected ErrNotInvertible, got %v", err)
	}
	if !p.Transform().ApproxEqual(core.Identity()) {
		t.Errorf("Transform should be unchanged after rejected set, got\n%v", p.Transform())
	}
}

func TestPattern_Composite(t *testing.T) {
	red := core.NewColor(1, 0, 0)
	blue := core.NewColor(0, 0, 1)

	// A vertical stripe whose second operand is itself a stripe along z
	inner := NewStripePattern(red, blue)
	if err := inner.SetTransform(core.RotationY(-math.Pi / 2)); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	outer, err := NewCompositePattern(PatternStripe, NewSolidPattern(core.White), inner)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	checkPattern(t, outer, []patternCase{
		{core.Point(0.5, 0, 0.5), core.White},
		{core.Point(1.5, 0, 0.5), red},
		{core.Point(1.5, 0, 1.5), blue},
	})
}

func TestPattern_CompositeValidation(t *testing.T) {
	if _, err := NewCompositePattern(PatternSolid, NewSolidPattern(core.White), NewSolidPattern(core.Black)); !errors.Is(err, ErrInvalidPattern) {
		t.Errorf("Expected ErrInvalidPattern for solid kind, got %v", err)
	}
	if _, err := NewCompositePattern(PatternChecker, nil, NewSolidPattern(core.Black)); !errors.Is(err, ErrInvalidPattern) {
		t.Errorf("Expected ErrInvalidPattern for missing operand, got %v", err)
	}
}
