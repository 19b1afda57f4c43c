package core

import (
	"errors"
	"fmt"
)

// ErrSingularMatrix is returned when inverting a matrix whose determinant is zero
var ErrSingularMatrix = errors.New("matrix is not invertible")

// Matrix is a row-major 4x4 matrix
type Matrix [4][4]float64

// Identity returns the 4x4 identity matrix
func Identity() Matrix {
	return Matrix{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}
}

// Mul returns m * o
func (m Matrix) Mul(o Matrix) Matrix {
	var r Matrix
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			r[row][col] = m[row][0]*o[0][col] +
				m[row][1]*o[1][col] +
				m[row][2]*o[2][col] +
				m[row][3]*o[3][col]
		}
	}
	return r
}

// MulTuple returns m * t
func (m Matrix) MulTuple(t Tuple) Tuple {
	return Tuple{
		X: m[0][0]*t.X + m[0][1]*t.Y + m[0][2]*t.Z + m[0][3]*t.W,
		Y: m[1][0]*t.X + m[1][1]*t.Y + m[1][2]*t.Z + m[1][3]*t.W,
		Z: m[2][0]*t.X + m[2][1]*t.Y + m[2][2]*t.Z + m[2][3]*t.W,
		W: m[3][0]*t.X + m[3][1]*t.Y + m[3][2]*t.Z + m[3][3]*t.W,
	}
}

// Transpose swaps rows and columns
func (m Matrix) Transpose() Matrix {
	var r Matrix
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			r[col][row] = m[row][col]
		}
	}
	return r
}

// submatrix3 removes one row and column from a 4x4 matrix
func (m Matrix) submatrix3(row, col int) [3][3]float64 {
	var r [3][3]float64
	ri := 0
	for i := 0; i < 4; i++ {
		if i == row {
			continue
		}
		ci := 0
		for j := 0; j < 4; j++ {
			if j == col {
				continue
			}
			r[ri][ci] = m[i][j]
			ci++
		}
		ri++
	}
	return r
}

func det3(a [3][3]float64) float64 {
	return a[0][0]*(a[1][1]*a[2][2]-a[1][2]*a[2][1]) -
		a[0][1]*(a[1][0]*a[2][2]-a[1][2]*a[2][0]) +
		a[0][2]*(a[1][0]*a[2][1]-a[1][1]*a[2][0])
}

// Minor returns the determinant of the submatrix at (row, col)
func (m Matrix) Minor(row, col int) float64 {
	return det3(m.submatrix3(row, col))
}

// Cofactor returns the signed minor at (row, col)
func (m Matrix) Cofactor(row, col int) float64 {
	minor := m.Minor(row, col)
	if (row+col)%2 == 1 {
		return -minor
	}
	return minor
}

// Determinant expands along the first row
func (m Matrix) Determinant() float64 {
	det := 0.0
	for col := 0; col < 4; col++ {
		det += m[0][col] * m.Cofactor(0, col)
	}
	return det
}

// Invertible reports whether the matrix has a non-zero determinant
func (m Matrix) Invertible() bool {
	return m.Determinant() != 0
}

// Inverse computes the inverse by cofactor expansion
func (m Matrix) Inverse() (Matrix, error) {
	det := m.Determinant()
	if det == 0 {
		return Matrix{}, ErrSingularMatrix
	}

	var r Matrix
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			// transposed on write
			r[col][row] = m.Cofactor(row, col) / det
		}
	}
	return r, nil
}

// MustInverse is like Inverse but panics on a singular matrix.
// Shape, pattern and camera transforms go through here.
func (m Matrix) MustInverse() Matrix {
	inv, err := m.Inverse()
	if err != nil {
		panic(fmt.Sprintf("core: %v: %v", err, m))
	}
	return inv
}

// Equals compares matrices element-wise within Epsilon
func (m Matrix) Equals(o Matrix) bool {
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			if !Equal(m[row][col], o[row][col]) {
				return false
			}
		}
	}
	return true
}
