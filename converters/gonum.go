// SPDX-License-Identifier: MIT

// Package converters: Dense ⇄ gonum mat.Dense value conversions.

package converters

import (
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lvlalg/matrix"
)

// ToGonum copies m into a fresh gonum mat.Dense.
// Errors: matrix.ErrNilMatrix.
// Complexity: O(r*c).
func ToGonum(m *matrix.Dense) (*mat.Dense, error) {
	if m == nil {
		return nil, matrix.ErrNilMatrix
	}

	rows, cols := m.Rows(), m.Cols()
	data := make([]float64, rows*cols)

	var i, j int
	var v float64
	var err error
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, err
			}
			data[i*cols+j] = v
		}
	}

	return mat.NewDense(rows, cols, data), nil
}

// FromGonum copies any gonum mat.Matrix into a fresh untagged Dense.
// Errors: matrix.ErrNilMatrix, matrix.ErrNaNInf (non-finite entries).
// Complexity: O(r*c).
func FromGonum(g mat.Matrix) (*matrix.Dense, error) {
	if g == nil {
		return nil, matrix.ErrNilMatrix
	}

	rows, cols := g.Dims()
	d, err := matrix.NewDense(rows, cols)
	if err != nil {
		return nil, err
	}

	var i, j int
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if err = d.Set(i, j, g.At(i, j)); err != nil {
				return nil, err
			}
		}
	}

	return d, nil
}
