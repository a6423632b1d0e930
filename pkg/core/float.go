package core

import "gonum.org/v1/gonum/floats/scalar"

// Epsilon is the tolerance used for every floating point comparison in the tracer.
const Epsilon = 1e-5

// ApproxEqual reports whether a and b differ by less than Epsilon
func ApproxEqual(a, b float64) bool {
	return scalar.EqualWithinAbs(a, b, Epsilon)
}

// NearZero reports whether v is within Epsilon of zero
func NearZero(v float64) bool {
	return scalar.EqualWithinAbs(v, 0, Epsilon)
}
