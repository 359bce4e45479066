// SPDX-License-Identifier: MIT

// Package factor: triangular substitution kernels.
//
// SolveUpper and SolveLower are the shared back-ends of the Cholesky solver
// and useful standalone when a caller already holds a triangular factor.
// Both accept a multi-column right-hand side, solving each column
// independently in one pass.

package factor

import (
	"github.com/katalvlaran/lvlalg/matrix"
	"github.com/katalvlaran/lvlalg/ulp"
)

// SolveUpper solves u·x = b by backward substitution, where u is square
// upper-triangular. Entries of u below the diagonal are ignored.
//
// Implementation:
//   - Stage 1: validate u square, b non-nil with matching row count.
//   - Stage 2: per right-hand column, walk rows bottom-up subtracting the
//     already-solved tail, dividing by the diagonal entry.
//
// Errors: ErrNotSquare, ErrDimensionMismatch, ErrSingular (diagonal entry
// zero within ulps).
// Determinism: fixed col↑, row↓ order. Complexity: Time O(n²·q), Space O(n·q).
func SolveUpper(u *matrix.Dense, b matrix.Matrix, ulps int) (*matrix.Dense, error) {
	return solveTriangular(u, b, ulps, false, opSolveUpper)
}

// SolveLower solves l·x = b by forward substitution, where l is square
// lower-triangular. Entries of l above the diagonal are ignored.
//
// Errors and complexity as SolveUpper; rows are walked top-down.
func SolveLower(l *matrix.Dense, b matrix.Matrix, ulps int) (*matrix.Dense, error) {
	return solveTriangular(l, b, ulps, true, opSolveLower)
}

// solveTriangular is the shared substitution kernel; forward selects the
// lower-triangular (top-down) direction.
func solveTriangular(t *matrix.Dense, b matrix.Matrix, ulps int, forward bool, tag string) (*matrix.Dense, error) {
	if t == nil || b == nil {
		return nil, factorErrorf(tag, matrix.ErrNilMatrix)
	}
	if !t.IsSquare() {
		return nil, factorErrorf(tag, ErrNotSquare)
	}
	n := t.Rows()
	if b.Rows() != n {
		return nil, factorErrorf(tag, ErrDimensionMismatch)
	}

	rhs, err := matrix.ToDense(b)
	if err != nil {
		return nil, factorErrorf(tag, err)
	}
	q := rhs.Cols()
	x, err := matrix.NewDense(n, q)
	if err != nil {
		return nil, factorErrorf(tag, err)
	}

	// Reject a numerically singular system before any substitution.
	var i, j, col int
	var piv, sum, tv, xv float64
	for i = 0; i < n; i++ {
		piv, _ = t.At(i, i)
		if ulp.IsZero(piv, ulps) {
			return nil, factorErrorf(tag, ErrSingular)
		}
	}

	for col = 0; col < q; col++ {
		if forward {
			// Forward: rows top-down, accumulate the solved head.
			for i = 0; i < n; i++ {
				sum = matrix.ZeroSum
				for j = 0; j < i; j++ {
					tv, _ = t.At(i, j)
					xv, _ = x.At(j, col)
					sum += tv * xv
				}
				if err = substituteInto(x, rhs, t, i, col, sum); err != nil {
					return nil, factorErrorf(tag, err)
				}
			}
		} else {
			// Backward: rows bottom-up, accumulate the solved tail.
			for i = n - 1; i >= 0; i-- {
				sum = matrix.ZeroSum
				for j = i + 1; j < n; j++ {
					tv, _ = t.At(i, j)
					xv, _ = x.At(j, col)
					sum += tv * xv
				}
				if err = substituteInto(x, rhs, t, i, col, sum); err != nil {
					return nil, factorErrorf(tag, err)
				}
			}
		}
	}

	return x, nil
}

// substituteInto writes x[i,col] = (b[i,col] − sum) / t[i,i].
func substituteInto(x, b, t *matrix.Dense, i, col int, sum float64) error {
	bv, err := b.At(i, col)
	if err != nil {
		return err
	}
	piv, err := t.At(i, i)
	if err != nil {
		return err
	}

	return x.Set(i, col, (bv-sum)/piv)
}
