// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for Dense storage and accessors.
package matrix_test

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlalg/matrix"
)

func TestNewDenseDefaultZero(t *testing.T) {
	for _, tc := range []struct{ rows, cols int }{
		{3, 3},
		{6, 4},
	} {
		name := fmt.Sprintf("%dx%d", tc.rows, tc.cols)
		t.Run(name, func(t *testing.T) {
			m := MustDense(t, tc.rows, tc.cols)
			// Immediately after creation all elements should be 0.
			var i, j int
			for i = 0; i < tc.rows; i++ {
				for j = 0; j < tc.cols; j++ {
					if v := MustAt(t, m, i, j); v != 0.0 {
						t.Fatalf("element [%d,%d] of a new Dense(%dx%d) must be 0", i, j, tc.rows, tc.cols)
					}
				}
			}
		})
	}
}

func TestNewDenseRejectsBadShape(t *testing.T) {
	t.Parallel()

	_, err := matrix.NewDense(0, 3)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
	_, err = matrix.NewDense(3, -1)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

func TestAtSetBounds(t *testing.T) {
	t.Parallel()

	m := MustDense(t, 2, 2)
	_, err := m.At(2, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = m.At(0, -1)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	require.ErrorIs(t, m.Set(-1, 0, 1), matrix.ErrOutOfRange)
	require.ErrorIs(t, m.Set(0, 2, 1), matrix.ErrOutOfRange)
}

func TestSetRejectsNaNInf(t *testing.T) {
	t.Parallel()

	m := MustDense(t, 2, 2)
	require.ErrorIs(t, m.Set(0, 0, math.NaN()), matrix.ErrNaNInf)
	require.ErrorIs(t, m.Set(1, 1, math.Inf(-1)), matrix.ErrNaNInf)
	// The failed writes must not dirty storage.
	require.Equal(t, 0.0, MustAt(t, m, 0, 0))
}

func TestCloneIndependence(t *testing.T) {
	t.Parallel()

	m := MustFromRows(t, [][]float64{{1, 2}, {3, 4}})
	c := m.Clone()
	MustSet(t, c, 0, 0, 99)
	require.Equal(t, 1.0, MustAt(t, m, 0, 0), "clone mutation must not reach the original")
	require.Equal(t, 99.0, MustAt(t, c, 0, 0))
}

func TestClonePreservesStructuralMask(t *testing.T) {
	t.Parallel()

	i3, err := matrix.NewIdentity(3)
	require.NoError(t, err)
	c := i3.CloneDense()
	// The clone's content is identical, so the promises carry over.
	require.True(t, c.Known()&matrix.StructIdentity != 0)
}

func TestSetClearsStructuralMask(t *testing.T) {
	t.Parallel()

	i3, err := matrix.NewIdentity(3)
	require.NoError(t, err)
	require.NotZero(t, i3.Known())
	MustSet(t, i3, 0, 1, 5)
	require.Zero(t, i3.Known(), "mutation must void every structural promise")
}

func TestViewWriteThrough(t *testing.T) {
	t.Parallel()

	m := MustFromRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}})
	v, err := m.View(1, 1, 2, 2)
	require.NoError(t, err)
	require.Equal(t, 2, v.Rows())
	require.Equal(t, 5.0, MustAt(t, v, 0, 0))

	require.NoError(t, v.Set(0, 0, -5))
	require.Equal(t, -5.0, MustAt(t, m, 1, 1), "view writes reflect in the base")

	_, err = m.View(2, 2, 2, 2)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

func TestInduced(t *testing.T) {
	t.Parallel()

	m := MustFromRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}})
	sub, err := m.Induced([]int{1, 0}, []int{2, 0})
	require.NoError(t, err)
	CompareInDelta(t, [][]float64{{6, 4}, {3, 1}}, sub, 0)

	_, err = m.Induced([]int{5}, []int{0})
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

func TestApply(t *testing.T) {
	t.Parallel()

	m := MustFromRows(t, [][]float64{{1, 2}, {3, 4}})
	require.NoError(t, m.Apply(func(i, j int, v float64) float64 { return 2 * v }))
	CompareInDelta(t, [][]float64{{2, 4}, {6, 8}}, m, 0)

	err := m.Apply(func(i, j int, v float64) float64 { return math.NaN() })
	require.ErrorIs(t, err, matrix.ErrNaNInf)
}

func TestDoEarlyStop(t *testing.T) {
	t.Parallel()

	m := MustFromRows(t, [][]float64{{1, 2}, {3, 4}})
	visited := 0
	m.Do(func(i, j int, v float64) bool {
		visited++
		return visited < 3
	})
	require.Equal(t, 3, visited)
}

func TestFromRowsRagged(t *testing.T) {
	t.Parallel()

	_, err := matrix.FromRows([][]float64{{1, 2}, {3}})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.FromRows(nil)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}
