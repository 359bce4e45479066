// SPDX-License-Identifier: MIT

// Package matrix: Doolittle LU factorization, inversion and determinant.
//
// Purpose:
//   - A = L·U with unit diagonal on L, no pivoting.
//   - Inverse solves L·y = e_col then U·x = y per canonical basis column.
//   - Det is the product of U's diagonal, the classical cross-check for the
//     sign-tracking determinant the factor package accumulates.
//
// Notes:
//   - No partial pivoting: stable determinism and reproducibility over
//     numerical robustness. Upstream callers should avoid ill-conditioned
//     inputs or precondition first.

package matrix

import "math"

const opDet = "Det"

// LU computes the Doolittle factorization A = L·U with unit diagonal on L.
//
// Implementation:
//   - Stage 1: validate non-nil square input; allocate L (identity) and U (zero).
//   - Stage 2: for each pivot row k: fill U[k,j] for j ≥ k, then L[i,k] for
//     i > k, failing with ErrSingular on a zero pivot U[k,k].
//
// Errors: ErrNilMatrix, ErrNonSquare, ErrSingular.
// Determinism: fixed k→j→i traversal. Complexity: Time O(n³), Space O(n²).
func LU(m Matrix) (*Dense, *Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, nil, matrixErrorf(opLU, err)
	}
	if err := ValidateSquare(m); err != nil {
		return nil, nil, matrixErrorf(opLU, err)
	}

	a, err := ToDense(m)
	if err != nil {
		return nil, nil, matrixErrorf(opLU, err)
	}
	n := a.r
	l, err := NewIdentity(n)
	if err != nil {
		return nil, nil, matrixErrorf(opLU, err)
	}
	l.known = 0 // identity only until elimination fills it
	u, err := NewDense(n, n)
	if err != nil {
		return nil, nil, matrixErrorf(opLU, err)
	}

	var k, i, j, t int
	var sum float64
	for k = 0; k < n; k++ {
		// U row k: U[k,j] = A[k,j] − Σ_{t<k} L[k,t]·U[t,j].
		for j = k; j < n; j++ {
			sum = ZeroSum
			for t = 0; t < k; t++ {
				sum += l.data[k*n+t] * u.data[t*n+j]
			}
			u.data[k*n+j] = a.data[k*n+j] - sum
		}
		if u.data[k*n+k] == ZeroPivot {
			return nil, nil, matrixErrorf(opLU, ErrSingular)
		}
		// L column k: L[i,k] = (A[i,k] − Σ_{t<k} L[i,t]·U[t,k]) / U[k,k].
		for i = k + 1; i < n; i++ {
			sum = ZeroSum
			for t = 0; t < k; t++ {
				sum += l.data[i*n+t] * u.data[t*n+k]
			}
			l.data[i*n+k] = (a.data[i*n+k] - sum) / u.data[k*n+k]
		}
	}
	u.known = StructUpperTriangular

	return l, u, nil
}

// Inverse computes A⁻¹ through the LU factors, solving the two triangular
// systems per canonical basis column.
//
// Implementation:
//   - Stage 1: LU(m) → L (unit lower), U (upper, nonzero diagonal).
//   - Stage 2: per column e_col: forward solve L·y = e_col (top-down), then
//     backward solve U·x = y (bottom-up), writing x into the result column.
//
// Errors: ErrNilMatrix, ErrNonSquare, ErrSingular.
// Determinism: fixed col↑, forward i↑, backward i↓ orders.
// Complexity: Time O(n³), Space O(n²).
func Inverse(m Matrix) (*Dense, error) {
	l, u, err := LU(m)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	n := l.r
	inv, err := NewDense(n, n)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	var (
		col, i, k int
		sum       float64
		y         = make([]float64, n) // forward substitution workspace
		x         = make([]float64, n) // backward substitution workspace
	)
	for col = 0; col < n; col++ {
		// Forward: L·y = e_col.
		for i = 0; i < n; i++ {
			sum = ZeroSum
			for k = 0; k < i; k++ {
				sum += l.data[i*n+k] * y[k]
			}
			if i == col {
				y[i] = 1 - sum
			} else {
				y[i] = -sum
			}
		}
		// Backward: U·x = y.
		for i = n - 1; i >= 0; i-- {
			sum = ZeroSum
			for k = i + 1; k < n; k++ {
				sum += u.data[i*n+k] * x[k]
			}
			x[i] = (y[i] - sum) / u.data[i*n+i]
		}
		for i = 0; i < n; i++ {
			inv.data[i*n+col] = x[i]
		}
	}

	return inv, nil
}

// Det returns the determinant as the product of U's diagonal from the
// Doolittle factorization. A zero pivot surfaces as ErrSingular rather than
// det == 0 — acceptable for its role as a cross-check on invertible inputs.
// Errors: ErrNilMatrix, ErrNonSquare, ErrSingular.
// Complexity: Time O(n³).
func Det(m Matrix) (float64, error) {
	_, u, err := LU(m)
	if err != nil {
		return 0, matrixErrorf(opDet, err)
	}

	det := 1.0
	n := u.r
	for i := 0; i < n; i++ {
		det *= u.data[i*n+i]
	}
	if math.IsNaN(det) || math.IsInf(det, 0) {
		return 0, matrixErrorf(opDet, ErrNaNInf)
	}

	return det, nil
}
