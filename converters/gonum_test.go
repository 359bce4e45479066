// SPDX-License-Identifier: MIT
// Conversion round-trips and a cross-check of the SVD engine against gonum.
package converters_test

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lvlalg/converters"
	"github.com/katalvlaran/lvlalg/factor"
	"github.com/katalvlaran/lvlalg/matrix"
)

func randomDense(t *testing.T, rows, cols int, seed int64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(rows, cols)
	require.NoError(t, err)
	rng := rand.New(rand.NewSource(seed))
	var i, j int
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			require.NoError(t, m.Set(i, j, 2*rng.Float64()-1))
		}
	}

	return m
}

func TestGonumRoundTrip(t *testing.T) {
	t.Parallel()

	src := randomDense(t, 4, 3, 5)
	g, err := converters.ToGonum(src)
	require.NoError(t, err)
	back, err := converters.FromGonum(g)
	require.NoError(t, err)

	var i, j int
	for i = 0; i < 4; i++ {
		for j = 0; j < 3; j++ {
			want, aErr := src.At(i, j)
			require.NoError(t, aErr)
			got, bErr := back.At(i, j)
			require.NoError(t, bErr)
			require.Equal(t, want, got)
		}
	}
}

func TestGonumConversionIsACopy(t *testing.T) {
	t.Parallel()

	src := randomDense(t, 2, 2, 7)
	g, err := converters.ToGonum(src)
	require.NoError(t, err)
	g.Set(0, 0, 99)

	v, err := src.At(0, 0)
	require.NoError(t, err)
	require.NotEqual(t, 99.0, v, "mutating the conversion must not reach the source")
}

func TestGonumNilInputs(t *testing.T) {
	t.Parallel()

	_, err := converters.ToGonum(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
	_, err = converters.FromGonum(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// The singular values of the factor engine must agree with gonum's SVD on
// the same input, which exercises the conversions and cross-validates the
// Demmel–Kahan sweep against an independent implementation.
func TestSingularValuesMatchGonum(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		name       string
		rows, cols int
		seed       int64
	}{
		{"square_4x4", 4, 4, 11},
		{"tall_6x3", 6, 3, 13},
		{"wide_3x6", 3, 6, 17},
	} {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			m := randomDense(t, tc.rows, tc.cols, tc.seed)
			s := factor.NewSVD(m)
			got, err := s.SingularValues()
			require.NoError(t, err)

			g, err := converters.ToGonum(m)
			require.NoError(t, err)
			var svd mat.SVD
			require.True(t, svd.Factorize(g, mat.SVDNone))
			want := svd.Values(nil)

			// Both spectra are non-increasing; compare in order.
			require.True(t, sort.SliceIsSorted(got, func(a, b int) bool { return got[a] > got[b] }))
			require.InDeltaSlice(t, want, got, 1e-9)
		})
	}
}

func TestPseudoinverseMatchesGonumSolve(t *testing.T) {
	t.Parallel()

	// For a full-rank square system the pseudoinverse is the inverse;
	// compare against gonum's dense inversion.
	m := randomDense(t, 4, 4, 19)
	s := factor.NewSVD(m)
	pinv, err := s.Pseudoinverse()
	require.NoError(t, err)

	g, err := converters.ToGonum(m)
	require.NoError(t, err)
	var gi mat.Dense
	require.NoError(t, gi.Inverse(g))
	want, err := converters.FromGonum(&gi)
	require.NoError(t, err)

	var i, j int
	for i = 0; i < 4; i++ {
		for j = 0; j < 4; j++ {
			w, aErr := want.At(i, j)
			require.NoError(t, aErr)
			p, bErr := pinv.At(i, j)
			require.NoError(t, bErr)
			require.InDelta(t, w, p, 1e-8)
		}
	}
}
