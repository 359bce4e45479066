// SPDX-License-Identifier: MIT
// Jacobi eigendecomposition tests.
package matrix_test

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlalg/matrix"
)

func TestEigenKnownSpectrum(t *testing.T) {
	t.Parallel()

	// Eigenvalues of [[2,1],[1,2]] are 1 and 3.
	m := MustFromRows(t, [][]float64{{2, 1}, {1, 2}})
	vals, q, err := matrix.Eigen(m, 1e-12, 100)
	require.NoError(t, err)
	require.Len(t, vals, 2)
	require.NotZero(t, q.Known()&matrix.StructOrthogonal)

	sorted := append([]float64(nil), vals...)
	sort.Float64s(sorted)
	require.InDelta(t, 1.0, sorted[0], 1e-10)
	require.InDelta(t, 3.0, sorted[1], 1e-10)
}

func TestEigenReconstruction(t *testing.T) {
	t.Parallel()

	// Symmetrize a random matrix, then check A·q_i = λ_i·q_i column-wise.
	n := 4
	raw := MustDense(t, n, n)
	RandomFill(t, raw, 3)
	rawT, err := matrix.Transpose(raw)
	require.NoError(t, err)
	sym, err := matrix.Add(raw, rawT)
	require.NoError(t, err)
	a, err := matrix.ToDense(sym)
	require.NoError(t, err)
	a.Assert(matrix.StructSymmetric)

	vals, q, err := matrix.Eigen(a, 1e-12, 500)
	require.NoError(t, err)

	var i, k int
	for k = 0; k < n; k++ {
		qc, cErr := q.Col(k)
		require.NoError(t, cErr)
		aq, mErr := matrix.MatVec(a, qc)
		require.NoError(t, mErr)
		for i = 0; i < n; i++ {
			require.InDelta(t, vals[k]*qc[i], aq[i], 1e-9, "column %d must satisfy A·q = λ·q", k)
		}
	}
}

func TestEigenDiagonalShortcut(t *testing.T) {
	t.Parallel()

	d, err := matrix.NewDiagonal([]float64{5, -2, 7})
	require.NoError(t, err)
	vals, q, err := matrix.Eigen(d, 1e-14, 10)
	require.NoError(t, err)
	require.Equal(t, []float64{5, -2, 7}, vals)
	require.True(t, q.Is(matrix.StructIdentity, 0))
}

func TestEigenRejectsAsymmetric(t *testing.T) {
	t.Parallel()

	m := MustFromRows(t, [][]float64{{1, 2}, {3, 4}})
	_, _, err := matrix.Eigen(m, 1e-12, 100)
	require.ErrorIs(t, err, matrix.ErrAsymmetry)

	_, _, err = matrix.Eigen(MustDense(t, 2, 3), 1e-12, 100)
	require.ErrorIs(t, err, matrix.ErrNonSquare)
}

func TestEigenIterationCap(t *testing.T) {
	t.Parallel()

	m := MustFromRows(t, [][]float64{{2, 1}, {1, 2}})
	_, _, err := matrix.Eigen(m, 1e-300, 0)
	require.ErrorIs(t, err, matrix.ErrEigenFailed)
}

func TestEigenOrthonormalColumns(t *testing.T) {
	t.Parallel()

	m := MustFromRows(t, [][]float64{{4, 1, 0}, {1, 3, -1}, {0, -1, 2}})
	_, q, err := matrix.Eigen(m, 1e-12, 500)
	require.NoError(t, err)

	qt, err := matrix.Transpose(q)
	require.NoError(t, err)
	qq, err := matrix.Mul(qt, q)
	require.NoError(t, err)
	var i, j int
	for i = 0; i < 3; i++ {
		for j = 0; j < 3; j++ {
			want := 0.0
			if i == j {
				want = 1.0
			}
			require.InDelta(t, want, MustAt(t, qq, i, j), 1e-10)
		}
	}
}
