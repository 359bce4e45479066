// SPDX-License-Identifier: MIT

// Package factor: Cholesky factorization M = Uᵗ·U for symmetric
// positive-definite systems.
//
// The elimination is a Gauss variant that reads only the upper triangle,
// cutting the work roughly in half. A diagonal input short-circuits to
// element-wise square roots. Positive definiteness is not a precondition
// the caller must prove; it is detected during elimination and surfaced as
// ErrNotPositiveDefinite before any result escapes.

package factor

import (
	"math"

	"github.com/katalvlaran/lvlalg/matrix"
	"github.com/katalvlaran/lvlalg/ulp"
)

// Cholesky solves exact linear systems for symmetric positive-definite
// coefficient matrices through M = Uᵗ·U and two-pass triangular
// substitution. Decomposition is lazy: Unfactored until the first derived
// access, back to Unfactored on RequestUpdate.
type Cholesky struct {
	mat  matrix.Matrix // caller's coefficient matrix, read-only
	opts Options

	c   *matrix.Dense // eliminated working copy, exclusively owned
	u   *matrix.Dense // upper-triangular factor, built on demand
	inv *matrix.Dense // cached inverse
	det float64       // product of elimination pivots
}

// NewCholesky prepares a lazy factorization of m. The input must be
// symmetric (or diagonal) within tolerance; violations surface on the
// first derived access.
func NewCholesky(m matrix.Matrix, opts ...Option) *Cholesky {
	return &Cholesky{mat: m, opts: gatherOptions(opts...)}
}

// NeedsUpdate reports whether the next derived access will decompose.
func (ch *Cholesky) NeedsUpdate() bool { return ch.c == nil }

// RequestUpdate drops all cached results; the next access recomputes.
func (ch *Cholesky) RequestUpdate() {
	ch.c, ch.u, ch.inv = nil, nil, nil
}

// decompose factors the input once.
//
// Implementation:
//   - Stage 1: copy the input and validate it is square.
//   - Stage 2: diagonal inputs take the fast path — determinant is the
//     product of the pre-root diagonal, the factor its square roots.
//   - Stage 3: symmetric inputs run the full elimination; anything else is
//     rejected with ErrNotSymmetric before touching a single pivot.
//
// Errors: ErrNotSquare, ErrNotSymmetric, ErrNotPositiveDefinite.
func (ch *Cholesky) decompose() error {
	if !ch.NeedsUpdate() {
		return nil
	}

	src, err := matrix.ToDense(ch.mat)
	if err != nil {
		return factorErrorf(opCholesky, err)
	}
	if !src.IsSquare() {
		return factorErrorf(opCholesky, ErrNotSquare)
	}

	switch {
	case src.Is(matrix.StructDiagonal, ch.opts.Ulps):
		return ch.factorDiagonal(src)
	case src.Is(matrix.StructSymmetric, ch.opts.Ulps):
		return ch.factorSymmetric(src)
	default:
		return factorErrorf(opCholesky, ErrNotSymmetric)
	}
}

// factorDiagonal is the fast path: U = sqrt(diag), det = ∏ diag.
func (ch *Cholesky) factorDiagonal(src *matrix.Dense) error {
	n := src.Rows()

	det := 1.0
	var i int
	var d float64
	var err error
	for i = 0; i < n; i++ {
		if d, err = src.At(i, i); err != nil {
			return factorErrorf(opCholesky, err)
		}
		if d < 0 || ulp.IsZero(d, ch.opts.Ulps) {
			return factorErrorf(opCholesky, ErrNotPositiveDefinite)
		}
		det *= d
		if err = src.Set(i, i, math.Sqrt(d)); err != nil {
			return factorErrorf(opCholesky, err)
		}
	}

	src.Assert(matrix.StructDiagonal)
	ch.c, ch.det = src, det

	return nil
}

// factorSymmetric runs the full elimination on the upper triangle.
//
// Per pivot k: reject a negative or numerically zero pivot, eliminate the
// rows below it, then normalize row k by the square root of the pivot. The
// determinant accumulates the pre-normalization pivots, which equals
// det(M) because M = Uᵗ·U.
func (ch *Cholesky) factorSymmetric(src *matrix.Dense) error {
	n := src.Rows()

	det := 1.0
	var k, i, j int
	var piv, ratio, kj, ij, ki float64
	var err error
	for k = 0; k < n; k++ {
		if piv, err = src.At(k, k); err != nil {
			return factorErrorf(opCholesky, err)
		}
		if piv < 0 || ulp.IsZero(piv, ch.opts.Ulps) {
			return factorErrorf(opCholesky, ErrNotPositiveDefinite)
		}
		det *= piv

		// Eliminate the column below the pivot within the upper triangle.
		for i = k + 1; i < n; i++ {
			if ki, err = src.At(k, i); err != nil {
				return factorErrorf(opCholesky, err)
			}
			ratio = ki / piv
			for j = i; j < n; j++ {
				if kj, err = src.At(k, j); err != nil {
					return factorErrorf(opCholesky, err)
				}
				if ij, err = src.At(i, j); err != nil {
					return factorErrorf(opCholesky, err)
				}
				if err = src.Set(i, j, ij-kj*ratio); err != nil {
					return factorErrorf(opCholesky, err)
				}
			}
		}

		// Normalize row k by the root of the pivot.
		root := math.Sqrt(piv)
		for i = k; i < n; i++ {
			if ki, err = src.At(k, i); err != nil {
				return factorErrorf(opCholesky, err)
			}
			if err = src.Set(k, i, ki/root); err != nil {
				return factorErrorf(opCholesky, err)
			}
		}
	}

	ch.c, ch.det = src, det

	return nil
}

// U returns the upper-triangular factor satisfying Uᵗ·U = M, as a fresh
// copy asserted UpperTriangular.
func (ch *Cholesky) U() (*matrix.Dense, error) {
	if err := ch.decompose(); err != nil {
		return nil, err
	}

	if ch.u == nil {
		n := ch.c.Rows()
		u, err := matrix.NewDense(n, n)
		if err != nil {
			return nil, factorErrorf(opCholesky, err)
		}
		var i, j int
		var v float64
		for i = 0; i < n; i++ {
			for j = i; j < n; j++ {
				if v, err = ch.c.At(i, j); err != nil {
					return nil, factorErrorf(opCholesky, err)
				}
				if err = u.Set(i, j, v); err != nil {
					return nil, factorErrorf(opCholesky, err)
				}
			}
		}
		u.Assert(matrix.StructUpperTriangular)
		ch.u = u
	}

	return ch.u.CloneDense(), nil
}

// Determinant returns det(M) as the product of elimination pivots,
// decomposing lazily. Errors: the structural/numerical failures of
// decompose.
func (ch *Cholesky) Determinant() (float64, error) {
	if err := ch.decompose(); err != nil {
		return 0, err
	}

	return ch.det, nil
}

// Invertible reports whether the determinant is distinguishable from zero.
// Successful decomposition implies positive pivots, so this is true for
// every input the factorization accepts.
func (ch *Cholesky) Invertible() (bool, error) {
	if err := ch.decompose(); err != nil {
		return false, err
	}

	return !ulp.IsZero(ch.det, ch.opts.Ulps), nil
}

// CanSolve reports whether b is a compatible right-hand side. A positive-
// definite system is always exactly solvable, so only the row count can
// disqualify b.
func (ch *Cholesky) CanSolve(b matrix.Matrix) (bool, error) {
	if b == nil {
		return false, factorErrorf(opCholesky, matrix.ErrNilMatrix)
	}
	if err := ch.decompose(); err != nil {
		return false, err
	}

	return b.Rows() == ch.c.Rows(), nil
}

// Solve computes the exact solution of M·x = b via two triangular passes:
// Uᵗ·y = b forward, then U·x = y backward. Returns (x, true, nil) on
// success; a mismatched right-hand side is an ErrDimensionMismatch error,
// consistent with the solver contract that ok == false means "provably no
// solution", which cannot happen here.
func (ch *Cholesky) Solve(b matrix.Matrix) (*matrix.Dense, bool, error) {
	if b == nil {
		return nil, false, factorErrorf(opCholesky, matrix.ErrNilMatrix)
	}
	if err := ch.decompose(); err != nil {
		return nil, false, err
	}
	if b.Rows() != ch.c.Rows() {
		return nil, false, factorErrorf(opCholesky, ErrDimensionMismatch)
	}

	u, err := ch.U()
	if err != nil {
		return nil, false, err
	}
	lt, err := matrix.Transpose(u)
	if err != nil {
		return nil, false, factorErrorf(opCholesky, err)
	}

	y, err := SolveLower(lt.(*matrix.Dense), b, ch.opts.Ulps)
	if err != nil {
		return nil, false, err
	}
	x, err := SolveUpper(u, y, ch.opts.Ulps)
	if err != nil {
		return nil, false, err
	}

	return x, true, nil
}

// Inverse returns M⁻¹ = Solve(I), asserted Symmetric and cached.
func (ch *Cholesky) Inverse() (*matrix.Dense, error) {
	if err := ch.decompose(); err != nil {
		return nil, err
	}

	if ch.inv == nil {
		id, err := matrix.NewIdentity(ch.c.Rows())
		if err != nil {
			return nil, factorErrorf(opCholesky, err)
		}
		inv, _, err := ch.Solve(id)
		if err != nil {
			return nil, err
		}
		inv.Assert(matrix.StructSymmetric)
		ch.inv = inv
	}

	return ch.inv.CloneDense(), nil
}
