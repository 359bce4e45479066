// SPDX-License-Identifier: MIT
// Package factor_test contains shared fixtures for the engine tests.
//
// All fixtures are deterministic; randomized matrices use fixed seeds so
// failures reproduce exactly.

package factor_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvlalg/matrix"
)

// MustFromRows builds a Dense from literal rows or fails the test.
func MustFromRows(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.FromRows(rows)
	if err != nil {
		t.Fatalf("FromRows: %v", err)
	}

	return m
}

// MustAt reads (i,j) or fails the test.
func MustAt(t *testing.T, m matrix.Matrix, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	if err != nil {
		t.Fatalf("At(%d,%d): %v", i, j, err)
	}

	return v
}

// RandomDense builds a reproducible rows×cols matrix with entries in (-1, 1).
func RandomDense(t *testing.T, rows, cols int, seed int64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(rows, cols)
	if err != nil {
		t.Fatalf("NewDense(%d,%d): %v", rows, cols, err)
	}
	rng := rand.New(rand.NewSource(seed))
	var i, j int
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if err = m.Set(i, j, 2*rng.Float64()-1); err != nil {
				t.Fatalf("Set(%d,%d): %v", i, j, err)
			}
		}
	}

	return m
}

// RequireMatrixInDelta compares two matrices entry by entry.
func RequireMatrixInDelta(t *testing.T, want, got matrix.Matrix, delta float64) {
	t.Helper()
	if want.Rows() != got.Rows() || want.Cols() != got.Cols() {
		t.Fatalf("shape mismatch: want %dx%d, got %dx%d",
			want.Rows(), want.Cols(), got.Rows(), got.Cols())
	}
	var i, j int
	var w, g float64
	for i = 0; i < want.Rows(); i++ {
		for j = 0; j < want.Cols(); j++ {
			w = MustAt(t, want, i, j)
			g = MustAt(t, got, i, j)
			if diff := w - g; diff > delta || diff < -delta {
				t.Fatalf("entry [%d,%d]: want %g, got %g (delta %g)", i, j, w, g, delta)
			}
		}
	}
}

// RequireOrthogonal checks mᵗ·m ≈ I.
func RequireOrthogonal(t *testing.T, m *matrix.Dense, delta float64) {
	t.Helper()
	mt, err := matrix.Transpose(m)
	if err != nil {
		t.Fatalf("Transpose: %v", err)
	}
	prod, err := matrix.Mul(mt, m)
	if err != nil {
		t.Fatalf("Mul: %v", err)
	}
	id, err := matrix.NewIdentity(m.Cols())
	if err != nil {
		t.Fatalf("NewIdentity: %v", err)
	}
	RequireMatrixInDelta(t, id, prod, delta)
}

// Reconstruct computes u·e·vᵗ.
func Reconstruct(t *testing.T, u, e, v *matrix.Dense) matrix.Matrix {
	t.Helper()
	vt, err := matrix.Transpose(v)
	if err != nil {
		t.Fatalf("Transpose: %v", err)
	}
	res, err := matrix.MulChain(u, e, vt)
	if err != nil {
		t.Fatalf("MulChain: %v", err)
	}

	return res
}
