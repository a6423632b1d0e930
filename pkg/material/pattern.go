package material

import (
	"errors"
	"fmt"
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// PatternKind selects the color rule of a Pattern
type PatternKind int

const (
	PatternSolid PatternKind = iota
	PatternStripe
	PatternGradient
	PatternRing
	PatternChecker
)

func (k PatternKind) String() string {
	switch k {
	case PatternSolid:
		return "solid"
	case PatternStripe:
		return "stripe"
	case PatternGradient:
		return "gradient"
	case PatternRing:
		return "ring"
	case PatternChecker:
		return "checker"
	default:
		return fmt.Sprintf("PatternKind(%d)", int(k))
	}
}

// ErrInvalidPattern is returned when a composite pattern is built without two operands
var ErrInvalidPattern = errors.New("invalid pattern")

// Pattern is a spatial color rule evaluated in its own coordinate space.
// Composite kinds pick between two operand patterns, which are evaluated
// in their own space relative to this one.
type Pattern struct {
	kind      PatternKind
	color     core.Color // Solid only
	a, b      *Pattern   // Operands for composite kinds
	transform core.Matrix
	inverse   core.Matrix
}

// NewSolidPattern creates a pattern that is the same color everywhere
func NewSolidPattern(color core.Color) *Pattern {
	return &Pattern{
		kind:      PatternSolid,
		color:     color,
		transform: core.Identity(),
		inverse:   core.Identity(),
	}
}

// NewStripePattern alternates between a and b on each unit of x
func NewStripePattern(a, b core.Color) *Pattern {
	return newColorPattern(PatternStripe, a, b)
}

// NewGradientPattern blends linearly from a to b across each unit of x
func NewGradientPattern(a, b core.Color) *Pattern {
	return newColorPattern(PatternGradient, a, b)
}

// NewRingPattern alternates between a and b on concentric rings in the xz plane
func NewRingPattern(a, b core.Color) *Pattern {
	return newColorPattern(PatternRing, a, b)
}

// NewCheckerPattern alternates between a and b in unit cubes
func NewCheckerPattern(a, b core.Color) *Pattern {
	return newColorPattern(PatternChecker, a, b)
}

func newColorPattern(kind PatternKind, a, b core.Color) *Pattern {
	p, _ := NewCompositePattern(kind, NewSolidPattern(a), NewSolidPattern(b))
	return p
}

// NewCompositePattern creates a pattern of the given kind whose operands are
// themselves patterns, e.g. a stripe of two differently rotated stripes.
func NewCompositePattern(kind PatternKind, a, b *Pattern) (*Pattern, error) {
	if kind <= PatternSolid || kind > PatternChecker {
		return nil, fmt.Errorf("%v is not a composite kind: %w", kind, ErrInvalidPattern)
	}
	if a == nil || b == nil {
		return nil, fmt.Errorf("%v pattern needs two operands: %w", kind, ErrInvalidPattern)
	}
	return &Pattern{
		kind:      kind,
		a:         a,
		b:         b,
		transform: core.Identity(),
		inverse:   core.Identity(),
	}, nil
}

// Kind returns the color rule of the pattern
func (p *Pattern) Kind() PatternKind {
	return p.kind
}

// Transform returns the pattern's object-to-pattern space transform
func (p *Pattern) Transform() core.Matrix {
	return p.transform
}

// SetTransform sets the pattern transform, rejecting matrices that cannot be inverted
func (p *Pattern) SetTransform(m core.Matrix) error {
	inverse, err := m.Inverse()
	if err != nil {
		return fmt.Errorf("pattern transform: %w", err)
	}
	p.transform = m
	p.inverse = inverse
	return nil
}

// ColorAtObject returns the pattern color at a world-space point on obj.
// A nil obj treats the point as already in object space.
func (p *Pattern) ColorAtObject(obj Object, worldPoint core.Tuple) core.Color {
	objectPoint := worldPoint
	if obj != nil {
		objectPoint = obj.WorldToObject(worldPoint)
	}
	return p.ColorAt(p.inverse.MultiplyTuple(objectPoint))
}

// ColorAt evaluates the color rule at a point already in pattern space
func (p *Pattern) ColorAt(point core.Tuple) core.Color {
	switch p.kind {
	case PatternStripe:
		if isEven(math.Floor(point.X)) {
			return p.a.colorFromParent(point)
		}
		return p.b.colorFromParent(point)

	case PatternGradient:
		from := p.a.colorFromParent(point)
		to := p.b.colorFromParent(point)
		fraction := point.X - math.Floor(point.X)
		return from.Add(to.Subtract(from).Multiply(fraction))

	case PatternRing:
		if isEven(math.Floor(math.Hypot(point.X, point.Z))) {
			return p.a.colorFromParent(point)
		}
		return p.b.colorFromParent(point)

	case PatternChecker:
		if isEven(math.Floor(point.X) + math.Floor(point.Y) + math.Floor(point.Z)) {
			return p.a.colorFromParent(point)
		}
		return p.b.colorFromParent(point)

	default:
		return p.color
	}
}

// colorFromParent evaluates an operand given a point in its parent's space
func (p *Pattern) colorFromParent(parentPoint core.Tuple) core.Color {
	return p.ColorAt(p.inverse.MultiplyTuple(parentPoint))
}

func isEven(floored float64) bool {
	return int64(floored)%2 == 0
}
