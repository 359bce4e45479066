// SPDX-License-Identifier: MIT
// Orthogonal builder tests: reflection and rotation properties that the
// bidiagonalization and diagonalization kernels rely on.
package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlalg/matrix"
)

func TestHouseholderMapsOntoAxis(t *testing.T) {
	t.Parallel()

	v := []float64{3, 4, 12}
	norm := 13.0

	for k := 0; k < len(v); k++ {
		h, err := matrix.Householder(v, k)
		require.NoError(t, err)
		require.NotZero(t, h.Known()&matrix.StructOrthogonal)
		require.NotZero(t, h.Known()&matrix.StructSymmetric)

		hv, err := matrix.MatVec(h, v)
		require.NoError(t, err)
		for i, x := range hv {
			if i == k {
				require.InDelta(t, norm, math.Abs(x), 1e-12, "|H·v|[k] must be ‖v‖")
			} else {
				require.InDelta(t, 0, x, 1e-12, "H·v must vanish off axis %d", k)
			}
		}
	}
}

func TestHouseholderIsInvolution(t *testing.T) {
	t.Parallel()

	h, err := matrix.Householder([]float64{1, -2, 2}, 0)
	require.NoError(t, err)
	hh, err := matrix.Mul(h, h)
	require.NoError(t, err)
	id, err := matrix.NewIdentity(3)
	require.NoError(t, err)
	var i, j int
	for i = 0; i < 3; i++ {
		for j = 0; j < 3; j++ {
			require.InDelta(t, MustAt(t, id, i, j), MustAt(t, hh, i, j), 1e-14)
		}
	}
}

func TestHouseholderZeroVector(t *testing.T) {
	t.Parallel()

	h, err := matrix.Householder([]float64{0, 0, 0}, 1)
	require.NoError(t, err)
	require.True(t, h.Is(matrix.StructIdentity, 0))
}

func TestHouseholderErrors(t *testing.T) {
	t.Parallel()

	_, err := matrix.Householder(nil, 0)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
	_, err = matrix.Householder([]float64{1, 2}, 2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

func TestRightGivensZerosTarget(t *testing.T) {
	t.Parallel()

	m := MustFromRows(t, [][]float64{
		{3, 4, 1},
		{0, 2, 5},
		{0, 0, 7},
	})
	g, err := matrix.RightGivens(m, 0, 1)
	require.NoError(t, err)
	require.NotZero(t, g.Known()&matrix.StructOrthogonal)

	mg, err := matrix.Mul(m, g)
	require.NoError(t, err)
	require.InDelta(t, 0, MustAt(t, mg, 0, 1), 1e-14, "target entry must be annihilated")
	require.InDelta(t, 5, MustAt(t, mg, 0, 0), 1e-14, "pivot absorbs the rotated mass")
}

func TestLeftGivensZerosTarget(t *testing.T) {
	t.Parallel()

	m := MustFromRows(t, [][]float64{
		{3, 1, 0},
		{4, 2, 5},
		{0, 0, 7},
	})
	g, err := matrix.LeftGivens(m, 1, 0)
	require.NoError(t, err)

	gm, err := matrix.Mul(g, m)
	require.NoError(t, err)
	require.InDelta(t, 0, MustAt(t, gm, 1, 0), 1e-14, "target entry must be annihilated")
	require.InDelta(t, 5, MustAt(t, gm, 0, 0), 1e-14, "pivot absorbs the rotated mass")
}

func TestGivensPreservesNorm(t *testing.T) {
	t.Parallel()

	m := MustDense(t, 4, 4)
	RandomFill(t, m, 11)
	before := m.Norm()

	g, err := matrix.RightGivens(m, 1, 2)
	require.NoError(t, err)
	mg, err := matrix.Mul(m, g)
	require.NoError(t, err)
	after, err := matrix.Norm(mg)
	require.NoError(t, err)
	require.InDelta(t, before, after, 1e-12, "rotations are isometries")
}

func TestGivensDegenerate(t *testing.T) {
	t.Parallel()

	m := MustDense(t, 3, 3) // all zeros: nothing to rotate
	g, err := matrix.RightGivens(m, 0, 1)
	require.NoError(t, err)
	require.True(t, g.Is(matrix.StructIdentity, 0))
}

func TestGivensErrors(t *testing.T) {
	t.Parallel()

	m := MustDense(t, 3, 3)
	_, err := matrix.RightGivens(nil, 0, 1)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
	_, err = matrix.RightGivens(m, 0, 3)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = matrix.LeftGivens(m, 1, 1)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}
