// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers.
//
// Purpose:
//   - Provide small, deterministic fixtures and utilities for kernels.
//   - Keep all data finite and well-formed to avoid numeric-policy interference.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvlalg/matrix"
)

// hide WRAPS any Matrix to hide its concrete type from type assertions.
// Use hide{X} in tests to force non-*Dense (fallback) paths in kernels.
type hide struct{ matrix.Matrix }

// MustDense allocates an r×c *Dense or fails the test.
func MustDense(t *testing.T, rows, cols int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(rows, cols)
	if err != nil {
		t.Fatalf("NewDense(%d,%d): %v", rows, cols, err)
	}

	return m
}

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

// MustSet writes (i,j) or fails the test.
func MustSet(t *testing.T, m matrix.Matrix, i, j int, v float64) {
	t.Helper()
	if err := m.Set(i, j, v); err != nil {
		t.Fatalf("Set(%d,%d,%g): %v", i, j, v, err)
	}
}

// RandomFill populates m with reproducible pseudo-random values in (-1, 1).
func RandomFill(t *testing.T, m *matrix.Dense, seed int64) {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	var i, j int
	for i = 0; i < m.Rows(); i++ {
		for j = 0; j < m.Cols(); j++ {
			MustSet(t, m, i, j, 2*rng.Float64()-1)
		}
	}
}

// CompareInDelta checks m against a literal reference entry by entry.
func CompareInDelta(t *testing.T, want [][]float64, got matrix.Matrix, delta float64) {
	t.Helper()
	if len(want) != got.Rows() || len(want[0]) != got.Cols() {
		t.Fatalf("shape mismatch: want %dx%d, got %dx%d", len(want), len(want[0]), got.Rows(), got.Cols())
	}
	var i, j int
	var v float64
	for i = 0; i < got.Rows(); i++ {
		for j = 0; j < got.Cols(); j++ {
			v = MustAt(t, got, i, j)
			if diff := v - want[i][j]; diff > delta || diff < -delta {
				t.Fatalf("mismatch at [%d,%d]: want %g, got %g", i, j, want[i][j], v)
			}
		}
	}
}
