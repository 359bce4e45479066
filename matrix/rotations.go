// SPDX-License-Identifier: MIT

// Package matrix: orthogonal transformation builders.
//
// Purpose:
//   - Householder reflections: zero a whole vector tail in one reflection,
//     the workhorse of bidiagonalization.
//   - Givens rotations: zero a single off-diagonal entry via a 2D rotation,
//     the workhorse of the diagonalization sweep.
//
// Both builders return fresh square Dense matrices asserted Orthogonal
// (reflections additionally Symmetric) — properties they satisfy by
// construction, which is exactly what the Assert escape hatch is for.
//
// Determinism:
//   - Fixed loop orders; the reflection sign convention (add sign(v[k])·‖v‖)
//     is chosen once to avoid cancellation and never varies.

package matrix

import (
	"fmt"
	"math"
)

const (
	opHouseholder = "Householder"
	opGivens      = "Givens"
)

// Householder builds the reflection H = I − 2·u·uᵗ/(uᵗu) that maps v onto
// the span of the k-th basis vector: H·v = ±‖v‖·e_k. The caller supplies v
// with the entries it wants preserved already zeroed (a column below row k,
// or a row beyond column k).
//
// Implementation:
//   - Stage 1: validate len(v) > 0 and 0 ≤ k < len(v).
//   - Stage 2: u = v; u[k] += sign(v[k])·‖v‖ (cancellation-free convention).
//   - Stage 3: if uᵗu == 0 the reflection is the identity; otherwise fill
//     H[i][j] = δij − 2·u[i]·u[j]/(uᵗu).
//
// A proper reflection has determinant −1; the degenerate identity case has
// determinant +1, which is why the bidiagonalizer tests ‖v‖ before building.
//
// Errors: ErrNilMatrix (empty v), ErrOutOfRange (bad k).
// Complexity: Time O(n²), Space O(n²).
func Householder(v []float64, k int) (*Dense, error) {
	n := len(v)
	if n == 0 {
		return nil, matrixErrorf(opHouseholder, ErrNilMatrix)
	}
	if k < 0 || k >= n {
		return nil, fmt.Errorf("%s(k=%d): %w", opHouseholder, k, ErrOutOfRange)
	}

	// u = v + sign(v[k])·‖v‖·e_k.
	u := make([]float64, n)
	copy(u, v)
	var normSq float64
	for i := 0; i < n; i++ {
		normSq += v[i] * v[i]
	}
	norm := math.Sqrt(normSq)
	if v[k] < 0 {
		u[k] -= norm
	} else {
		u[k] += norm
	}

	var uu float64
	for i := 0; i < n; i++ {
		uu += u[i] * u[i]
	}

	h, err := NewIdentity(n)
	if err != nil {
		return nil, matrixErrorf(opHouseholder, err)
	}
	if uu == 0 {
		// v was the zero vector; reflecting is a no-op.
		return h, nil
	}

	scale := 2.0 / uu
	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			h.data[i*n+j] -= scale * u[i] * u[j]
		}
	}
	h.known = StructOrthogonal | StructSymmetric // proven by construction

	return h, nil
}

// RightGivens builds the rotation G such that (M·G)[i,j] == 0, combining
// columns i and j of M. The rotation plane is (i,j) with the pivot at
// M[i,i]; the sweep calls it with j = i+1 to chase the superdiagonal.
//
// Implementation:
//   - Stage 1: validate indices and i != j.
//   - Stage 2: a = M[i,i], b = M[i,j], r = hypot(a,b); degenerate r == 0
//     yields the identity. Else cos = a/r, sin = b/r and
//     G[i,i]=G[j,j]=cos, G[i,j]=−sin, G[j,i]=sin.
//
// Errors: ErrNilMatrix, ErrOutOfRange.
// Complexity: Time O(n²) for the allocation, O(1) beyond it.
func RightGivens(m *Dense, i, j int) (*Dense, error) {
	return givens(m, i, j, i, i, opGivens+"/right")
}

// LeftGivens builds the rotation G such that (G·M)[i,j] == 0, combining
// rows j and i of M. The rotation plane is (j,i) with the pivot at M[j,j];
// the sweep calls it with i = j+1 to chase the subdiagonal.
//
// Errors and complexity as RightGivens.
func LeftGivens(m *Dense, i, j int) (*Dense, error) {
	return givensLeft(m, i, j)
}

// givens is the shared right-rotation builder: zero target (ti,tj) with
// pivot (pi,pj), plane (pivot col, target col).
func givens(m *Dense, ti, tj, pi, pj int, tag string) (*Dense, error) {
	if m == nil {
		return nil, matrixErrorf(tag, ErrNilMatrix)
	}
	n := m.c
	if ti < 0 || ti >= m.r || tj < 0 || tj >= n || pi < 0 || pi >= m.r || pj < 0 || pj >= n || pj == tj {
		return nil, fmt.Errorf("%s(%d,%d): %w", tag, ti, tj, ErrOutOfRange)
	}

	a := m.data[pi*m.c+pj] // pivot value
	b := m.data[ti*m.c+tj] // value to annihilate

	return planeRotation(n, pj, tj, a, b, tag)
}

// givensLeft builds the left-rotation: zero target (i,j) with pivot (j,j),
// acting on rows j and i. The matrix has m.r rows, so the rotation is r×r.
func givensLeft(m *Dense, i, j int) (*Dense, error) {
	tag := opGivens + "/left"
	if m == nil {
		return nil, matrixErrorf(tag, ErrNilMatrix)
	}
	n := m.r
	if i < 0 || i >= n || j < 0 || j >= m.c || j >= n || i == j {
		return nil, fmt.Errorf("%s(%d,%d): %w", tag, i, j, ErrOutOfRange)
	}

	a := m.data[j*m.c+j] // pivot value on the diagonal
	b := m.data[i*m.c+j] // value to annihilate

	// Plane (j, i): row j keeps the pivot, row i is zeroed at column j.
	// A left rotation is the transpose of the right form, obtained here by
	// negating the annihilated component.
	return planeRotation(n, j, i, a, -b, tag)
}

// planeRotation assembles the n×n rotation on plane (p,q) with
// cos = a/r, sin = b/r. Degenerate r == 0 yields the identity.
func planeRotation(n, p, q int, a, b float64, tag string) (*Dense, error) {
	g, err := NewIdentity(n)
	if err != nil {
		return nil, matrixErrorf(tag, err)
	}

	r := math.Hypot(a, b)
	if r == 0 {
		// Nothing to rotate; the identity is the only orthogonal choice.
		return g, nil
	}
	cos := a / r
	sin := b / r

	g.data[p*n+p] = cos
	g.data[q*n+q] = cos
	g.data[p*n+q] = -sin
	g.data[q*n+p] = sin
	g.known = StructOrthogonal // proven by construction

	return g, nil
}
