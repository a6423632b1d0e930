package core

import (
	"fmt"
	"strings"
)

// Matrix is a 4x4 row-major transformation matrix
type Matrix [4][4]float64

// matrix3 is the 3x3 submatrix used during cofactor expansion
type matrix3 [3][3]float64

// Identity returns the 4x4 identity matrix
func Identity() Matrix {
	return Matrix{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}
}

// Multiply returns the matrix product m * other
func (m Matrix) Multiply(other Matrix) Matrix {
	var result Matrix
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			result[row][col] = m[row][0]*other[0][col] +
				m[row][1]*other[1][col] +
				m[row][2]*other[2][col] +
				m[row][3]*other[3][col]
		}
	}
	return result
}

// MultiplyTuple transforms a tuple by the matrix
func (m Matrix) MultiplyTuple(t Tuple) Tuple {
	return Tuple{
		X: m[0][0]*t.X + m[0][1]*t.Y + m[0][2]*t.Z + m[0][3]*t.W,
		Y: m[1][0]*t.X + m[1][1]*t.Y + m[1][2]*t.Z + m[1][3]*t.W,
		Z: m[2][0]*t.X + m[2][1]*t.Y + m[2][2]*t.Z + m[2][3]*t.W,
		W: m[3][0]*t.X + m[3][1]*t.Y + m[3][2]*t.Z + m[3][3]*t.W,
	}
}

// Transpose returns the matrix with rows and columns swapped
func (m Matrix) Transpose() Matrix {
	var result Matrix
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			result[col][row] = m[row][col]
		}
	}
	return result
}

// submatrix returns m with the given row and column removed
func (m Matrix) submatrix(row, col int) matrix3 {
	var result matrix3
	r := 0
	for i := 0; i < 4; i++ {
		if i == row {
			continue
		}
		c := 0
		for j := 0; j < 4; j++ {
			if j == col {
				continue
			}
			result[r][c] = m[i][j]
			c++
		}
		r++
	}
	return result
}

func (m matrix3) determinant() float64 {
	return m[0][0]*(m[1][1]*m[2][2]-m[1][2]*m[2][1]) -
		m[0][1]*(m[1][0]*m[2][2]-m[1][2]*m[2][0]) +
		m[0][2]*(m[1][0]*m[2][1]-m[1][1]*m[2][0])
}

// Minor returns the determinant of the submatrix at (row, col)
func (m Matrix) Minor(row, col int) float64 {
	return m.submatrix(row, col).determinant()
}

// Cofactor returns the signed minor at (row, col)
func (m Matrix) Cofactor(row, col int) float64 {
	minor := m.Minor(row, col)
	if (row+col)%2 == 1 {
		return -minor
	}
	return minor
}

// Determinant computes the determinant by cofactor expansion along the first row
func (m Matrix) Determinant() float64 {
	det := 0.0
	for col := 0; col < 4; col++ {
		det += m[0][col] * m.Cofactor(0, col)
	}
	return det
}

// IsInvertible reports whether the determinant is outside Epsilon of zero
func (m Matrix) IsInvertible() bool {
	return !NearZero(m.Determinant())
}

// Inverse returns the inverse matrix using the adjugate method.
// Matrices whose determinant is within Epsilon of zero return ErrNotInvertible.
func (m Matrix) Inverse() (Matrix, error) {
	var cofactors Matrix
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			cofactors[row][col] = m.Cofactor(row, col)
		}
	}

	det := 0.0
	for col := 0; col < 4; col++ {
		det += m[0][col] * cofactors[0][col]
	}
	if NearZero(det) {
		return Matrix{}, fmt.Errorf("determinant %g: %w", det, ErrNotInvertible)
	}

	// Adjugate is the transposed cofactor matrix
	var inverse Matrix
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			inverse[col][row] = cofactors[row][col] / det
		}
	}
	return inverse, nil
}

// ApproxEqual reports whether every element is within Epsilon
func (m Matrix) ApproxEqual(other Matrix) bool {
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			if !ApproxEqual(m[row][col], other[row][col]) {
				return false
			}
		}
	}
	return true
}

func (m Matrix) String() string {
	var sb strings.Builder
	for row := 0; row < 4; row++ {
		fmt.Fprintf(&sb, "| %g %g %g %g |", m[row][0], m[row][1], m[row][2], m[row][3])
		if row < 3 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}
