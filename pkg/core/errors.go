package core

import "errors"

var (
	// ErrNotInvertible is returned when a matrix determinant is within Epsilon of zero
	ErrNotInvertible = errors.New("matrix is not invertible")

	// ErrZeroVector is returned when normalizing a vector whose magnitude is within Epsilon of zero
	ErrZeroVector = errors.New("cannot normalize zero-length vector")
)
