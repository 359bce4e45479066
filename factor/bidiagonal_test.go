// SPDX-License-Identifier: MIT
// Householder bidiagonalization tests.
package factor_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlalg/factor"
	"github.com/katalvlaran/lvlalg/matrix"
)

func TestBidiagonalReconstruction(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		name       string
		rows, cols int
		seed       int64
	}{
		{"square_4x4", 4, 4, 1},
		{"tall_5x3", 5, 3, 2},
		{"tall_6x2", 6, 2, 3},
	} {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			m := RandomDense(t, tc.rows, tc.cols, tc.seed)
			bd := factor.NewBidiagonal(m)

			b, err := bd.B()
			require.NoError(t, err)
			u, err := bd.U()
			require.NoError(t, err)
			v, err := bd.V()
			require.NoError(t, err)

			require.True(t, b.Is(matrix.StructUpperBidiagonal, 0))
			RequireOrthogonal(t, u, 1e-10)
			RequireOrthogonal(t, v, 1e-10)
			RequireMatrixInDelta(t, m, Reconstruct(t, u, b, v), 1e-10)
		})
	}
}

func TestBidiagonalSkipsWhenAlreadyBanded(t *testing.T) {
	t.Parallel()

	m := MustFromRows(t, [][]float64{
		{3, 1, 0},
		{0, 2, -1},
		{0, 0, 5},
	})
	bd := factor.NewBidiagonal(m)

	u, err := bd.U()
	require.NoError(t, err)
	v, err := bd.V()
	require.NoError(t, err)
	require.True(t, u.Is(matrix.StructIdentity, 0), "no reflections on banded input")
	require.True(t, v.Is(matrix.StructIdentity, 0))

	det, err := bd.Determinant()
	require.NoError(t, err)
	require.InDelta(t, 30.0, det, 1e-12, "sign factor stays +1, det is the diagonal product")
}

func TestBidiagonalDeterminant(t *testing.T) {
	t.Parallel()

	m := RandomDense(t, 4, 4, 9)
	bd := factor.NewBidiagonal(m)

	det, err := bd.Determinant()
	require.NoError(t, err)
	want, err := matrix.Det(m)
	require.NoError(t, err)
	require.InDelta(t, want, det, 1e-10, "must agree with the LU determinant")

	ok, err := bd.Invertible()
	require.NoError(t, err)
	require.True(t, ok)
}

func TestBidiagonalDeterminantRequiresSquare(t *testing.T) {
	t.Parallel()

	bd := factor.NewBidiagonal(RandomDense(t, 4, 2, 5))
	_, err := bd.Determinant()
	require.ErrorIs(t, err, factor.ErrNotSquare)
	_, err = bd.Invertible()
	require.ErrorIs(t, err, factor.ErrNotSquare)
}

func TestBidiagonalLifecycle(t *testing.T) {
	t.Parallel()

	bd := factor.NewBidiagonal(RandomDense(t, 3, 3, 7))
	require.True(t, bd.NeedsUpdate())

	_, err := bd.B()
	require.NoError(t, err)
	require.False(t, bd.NeedsUpdate())

	bd.RequestUpdate()
	require.True(t, bd.NeedsUpdate())

	// Recomputation after invalidation must succeed identically.
	_, err = bd.B()
	require.NoError(t, err)
	require.False(t, bd.NeedsUpdate())
}

func TestBidiagonalNilInput(t *testing.T) {
	t.Parallel()

	bd := factor.NewBidiagonal(nil)
	_, err := bd.B()
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestBidiagonalDoesNotMutateInput(t *testing.T) {
	t.Parallel()

	m := RandomDense(t, 3, 3, 13)
	snapshot := m.CloneDense()

	bd := factor.NewBidiagonal(m)
	_, err := bd.B()
	require.NoError(t, err)
	RequireMatrixInDelta(t, snapshot, m, 0)
}
