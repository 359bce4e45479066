// SPDX-License-Identifier: MIT
// Structural predicate tests: mask promises, scans, and the Set invalidation rule.
package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlalg/matrix"
)

func TestIsSquareIsTall(t *testing.T) {
	t.Parallel()

	require.True(t, MustDense(t, 3, 3).IsSquare())
	require.False(t, MustDense(t, 3, 2).IsSquare())
	require.True(t, MustDense(t, 4, 2).IsTall())
	require.True(t, MustDense(t, 3, 3).IsTall(), "square counts as tall")
	require.False(t, MustDense(t, 2, 4).IsTall())
}

func TestIsConsultsMaskFirst(t *testing.T) {
	t.Parallel()

	// A matrix that is plainly NOT orthogonal, with a trusted promise attached.
	m := MustFromRows(t, [][]float64{{2, 0}, {0, 2}})
	m.Assert(matrix.StructOrthogonal)
	require.True(t, m.Is(matrix.StructOrthogonal, 0), "Assert is trusted without scanning")
}

func TestScanDiagonalFamily(t *testing.T) {
	t.Parallel()

	d := MustFromRows(t, [][]float64{{3, 0, 0}, {0, -1, 0}, {0, 0, 2}})
	require.Zero(t, d.Known(), "FromRows makes no promises")
	require.True(t, d.Is(matrix.StructDiagonal, 0))
	require.True(t, d.Is(matrix.StructUpperBidiagonal, 0), "a diagonal matrix is also bidiagonal")
	require.True(t, d.Is(matrix.StructUpperTriangular, 0))
	require.Zero(t, d.Known(), "scan results must never be cached as promises")

	b := MustFromRows(t, [][]float64{{3, 1, 0}, {0, -1, 2}, {0, 0, 2}})
	require.False(t, b.Is(matrix.StructDiagonal, 0))
	require.True(t, b.Is(matrix.StructUpperBidiagonal, 0))

	u := MustFromRows(t, [][]float64{{3, 1, 7}, {0, -1, 2}, {0, 0, 2}})
	require.False(t, u.Is(matrix.StructUpperBidiagonal, 0))
	require.True(t, u.Is(matrix.StructUpperTriangular, 0))
}

func TestScanIdentity(t *testing.T) {
	t.Parallel()

	i, err := matrix.NewIdentity(4)
	require.NoError(t, err)
	require.True(t, i.Is(matrix.StructIdentity, 0))

	almost := MustFromRows(t, [][]float64{{1, 0}, {0, 1 + 1e-13}})
	require.False(t, almost.Is(matrix.StructIdentity, 0), "exact mode rejects the perturbation")
	require.True(t, almost.Is(matrix.StructIdentity, 1000), "a generous budget absorbs it")
}

func TestScanSymmetric(t *testing.T) {
	t.Parallel()

	s := MustFromRows(t, [][]float64{{4, 1, -2}, {1, 5, 3}, {-2, 3, 6}})
	require.True(t, s.Is(matrix.StructSymmetric, 0))

	a := MustFromRows(t, [][]float64{{4, 1}, {2, 5}})
	require.False(t, a.Is(matrix.StructSymmetric, 8))

	rect := MustDense(t, 2, 3)
	require.False(t, rect.Is(matrix.StructSymmetric, 8), "non-square is never symmetric")
}

func TestScanOrthogonal(t *testing.T) {
	t.Parallel()

	// A plane rotation is orthogonal by construction; scan it without the mask.
	c, s := 0.6, 0.8
	q := MustFromRows(t, [][]float64{{c, -s}, {s, c}})
	require.True(t, q.Is(matrix.StructOrthogonal, 64))

	scaled := MustFromRows(t, [][]float64{{2 * c, -2 * s}, {2 * s, 2 * c}})
	require.False(t, scaled.Is(matrix.StructOrthogonal, 64))
}

func TestSetRevokesPromise(t *testing.T) {
	t.Parallel()

	i, err := matrix.NewIdentity(3)
	require.NoError(t, err)
	require.True(t, i.Is(matrix.StructIdentity, 0))
	MustSet(t, i, 2, 0, 0.5)
	require.Zero(t, i.Known())
	require.False(t, i.Is(matrix.StructIdentity, 0))
	// Still upper-triangular? No: we wrote below the diagonal.
	require.False(t, i.Is(matrix.StructUpperTriangular, 0))
}

func TestViewWriteRevokesBasePromise(t *testing.T) {
	t.Parallel()

	i, err := matrix.NewIdentity(3)
	require.NoError(t, err)
	v, err := i.View(0, 0, 2, 2)
	require.NoError(t, err)
	require.NoError(t, v.Set(1, 0, 2))
	require.Zero(t, i.Known(), "a write through a view must revoke the base mask")
}
