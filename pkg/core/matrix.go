package core

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/davelpz/rray/pkg/rrerr"
)

// Matrix4 is a row-major 4x4 matrix backed by gonum's dense matrix type, so
// multiplication, transpose, determinant, and inverse all go through
// gonum's LU-based numerical routines rather than a hand-rolled cofactor
// expansion.
type Matrix4 struct {
	d *mat.Dense
}

// Identity4 returns the 4x4 identity matrix.
func Identity4() Matrix4 {
	return NewMatrix4([16]float64{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	})
}

// NewMatrix4 builds a matrix from 16 row-major values.
func NewMatrix4(values [16]float64) Matrix4 {
	return Matrix4{d: mat.NewDense(4, 4, values[:])}
}

// At returns the value at (row, col), both zero-indexed.
func (m Matrix4) At(row, col int) float64 {
	return m.d.At(row, col)
}

// Mul returns m * other.
func (m Matrix4) Mul(other Matrix4) Matrix4 {
	var result mat.Dense
	result.Mul(m.d, other.d)
	return Matrix4{d: &result}
}

// MulTuple returns m * t, treating t as a column vector.
func (m Matrix4) MulTuple(t Tuple) Tuple {
	v := mat.NewVecDense(4, []float64{t.X, t.Y, t.Z, t.W})
	var result mat.VecDense
	result.MulVec(m.d, v)
	return Tuple{X: result.AtVec(0), Y: result.AtVec(1), Z: result.AtVec(2), W: result.AtVec(3)}
}

// Transpose returns the transpose of m.
func (m Matrix4) Transpose() Matrix4 {
	var result mat.Dense
	result.CloneFrom(m.d.T())
	return Matrix4{d: &result}
}

// Determinant returns the determinant of m.
func (m Matrix4) Determinant() float64 {
	return mat.Det(m.d)
}

// Inverse returns the inverse of m. Returns a GeometryError-shaped error if
// the matrix is singular (non-invertible).
func (m Matrix4) Inverse() (Matrix4, error) {
	var result mat.Dense
	if err := result.Inverse(m.d); err != nil {
		return Matrix4{}, rrerr.Geometry(fmt.Errorf("singular transform matrix: %w", err))
	}
	return Matrix4{d: &result}, nil
}

// Equals compares two matrices with the system-wide absolute tolerance.
func (m Matrix4) Equals(other Matrix4) bool {
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			if !FloatEqual(m.At(r, c), other.At(r, c)) {
				return false
			}
		}
	}
	return true
}
