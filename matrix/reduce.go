// SPDX-License-Identifier: MIT

// Package matrix: reductions and extractors.
//
// Purpose:
//   - Frobenius norms, trace, diagonal/row/column extraction — the read-only
//     quantities the factor package consumes on every decomposition step.
//
// Determinism & Performance:
//   - Fixed traversal orders; extractors allocate exactly one slice.
//   - Package-level Norm/NormSqr accept any Matrix with a *Dense fast path.

package matrix

import (
	"fmt"
	"math"
)

const opNorm = "Norm"

// NormSqr returns the squared Frobenius norm Σ m[i,j]².
// Errors: ErrNilMatrix. Complexity: O(r*c).
func NormSqr(m Matrix) (float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return 0, matrixErrorf(opNorm, err)
	}

	// Fast-path: flat accumulation over the backing slice.
	if d, ok := m.(*Dense); ok {
		var acc float64
		for i := range d.data {
			acc += d.data[i] * d.data[i]
		}

		return acc, nil
	}

	// Fallback: interface path with fixed i→j order.
	rows, cols := m.Rows(), m.Cols()
	var i, j int
	var v, acc float64
	var err error
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return 0, matrixErrorf(opNorm, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			acc += v * v
		}
	}

	return acc, nil
}

// Norm returns the Frobenius norm √(Σ m[i,j]²).
// Errors: ErrNilMatrix. Complexity: O(r*c).
func Norm(m Matrix) (float64, error) {
	sq, err := NormSqr(m)
	if err != nil {
		return 0, err
	}

	return math.Sqrt(sq), nil
}

// NormSqr is the method form of the package-level reduction. Complexity: O(r*c).
func (m *Dense) NormSqr() float64 {
	var acc float64
	for i := range m.data {
		acc += m.data[i] * m.data[i]
	}

	return acc
}

// Norm returns the Frobenius norm of the receiver. Complexity: O(r*c).
func (m *Dense) Norm() float64 { return math.Sqrt(m.NormSqr()) }

// Trace returns the sum of diagonal entries. Defined for any shape; the
// diagonal runs to min(rows, cols). Complexity: O(min(r,c)).
func (m *Dense) Trace() float64 {
	n := m.r
	if m.c < n {
		n = m.c
	}
	var acc float64
	for i := 0; i < n; i++ {
		acc += m.data[i*m.c+i]
	}

	return acc
}

// Diag returns a fresh copy of the main diagonal, length min(rows, cols).
// Complexity: O(min(r,c)).
func (m *Dense) Diag() []float64 {
	n := m.r
	if m.c < n {
		n = m.c
	}
	d := make([]float64, n)
	for i := 0; i < n; i++ {
		d[i] = m.data[i*m.c+i]
	}

	return d
}

// Row returns a fresh copy of row i or ErrOutOfRange.
// Complexity: O(c).
func (m *Dense) Row(i int) ([]float64, error) {
	if i < 0 || i >= m.r {
		return nil, fmt.Errorf("Dense.Row(%d): %w", i, ErrOutOfRange)
	}
	out := make([]float64, m.c)
	copy(out, m.data[i*m.c:(i+1)*m.c])

	return out, nil
}

// Col returns a fresh copy of column j or ErrOutOfRange.
// Complexity: O(r).
func (m *Dense) Col(j int) ([]float64, error) {
	if j < 0 || j >= m.c {
		return nil, fmt.Errorf("Dense.Col(%d): %w", j, ErrOutOfRange)
	}
	out := make([]float64, m.r)
	for i := 0; i < m.r; i++ {
		out[i] = m.data[i*m.c+j]
	}

	return out, nil
}
