// SPDX-License-Identifier: MIT

// Package factor: capability interfaces implemented by the engines.
//
// The contracts are deliberately small and independent: an engine composes
// exactly the set it supports. SVD implements all of them; Bidiagonal only
// Factorizer and Determinant; Cholesky the exact-solver set (Factorizer,
// Determinant, LinearSolver).

package factor

import "github.com/katalvlaran/lvlalg/matrix"

// Factorizer is the shared lazy lifecycle: decomposition runs on the first
// derived access and all caches invalidate as a group.
type Factorizer interface {
	// NeedsUpdate reports whether the next derived access will decompose.
	NeedsUpdate() bool
	// RequestUpdate drops every cached result, forcing recomputation.
	RequestUpdate()
}

// Determinant is implemented by engines that can price a square system.
type Determinant interface {
	// Determinant returns det(M); ErrNotSquare for rectangular input.
	Determinant() (float64, error)
	// Invertible reports whether M has full rank within tolerance.
	Invertible() (bool, error)
}

// LeastSquares is implemented by engines that can minimize ‖M·x − b‖.
type LeastSquares interface {
	// Approx returns the least-squares solution x = M⁺·b.
	Approx(b matrix.Matrix) (*matrix.Dense, error)
	// Pseudoinverse returns the Moore–Penrose inverse M⁺, cached.
	Pseudoinverse() (*matrix.Dense, error)
}

// LinearSolver is implemented by engines that can decide exact solvability.
// "No exact solution" is a result (ok == false), not an error.
type LinearSolver interface {
	// CanSolve reports whether M·x = b admits an exact solution.
	CanSolve(b matrix.Matrix) (bool, error)
	// Solve returns (x, true, nil) for an exact solution and
	// (nil, false, nil) when none exists.
	Solve(b matrix.Matrix) (*matrix.Dense, bool, error)
}

// RankReveal is implemented by engines that expose the numerical spectrum.
type RankReveal interface {
	// Rank returns the count of singular values distinguishable from zero.
	Rank() (int, error)
	// Condition returns σmax/σmin; +Inf for rank-deficient input.
	Condition() (float64, error)
}

// LinearSpace is implemented by engines that expose the four fundamental
// subspaces. Results are memoized; the returned matrices are fresh copies
// owned by the caller. A trivial space (zero vectors only) is reported as
// a nil matrix with a nil error.
type LinearSpace interface {
	ColumnSpace() (*matrix.Dense, error)
	RowSpace() (*matrix.Dense, error)
	NullSpace() (*matrix.Dense, error)
	NullTranspose() (*matrix.Dense, error)
}

// Compile-time capability checks.
var (
	_ Factorizer  = (*Bidiagonal)(nil)
	_ Determinant = (*Bidiagonal)(nil)

	_ Factorizer   = (*SVD)(nil)
	_ Determinant  = (*SVD)(nil)
	_ LeastSquares = (*SVD)(nil)
	_ LinearSolver = (*SVD)(nil)
	_ RankReveal   = (*SVD)(nil)
	_ LinearSpace  = (*SVD)(nil)

	_ Factorizer   = (*Cholesky)(nil)
	_ Determinant  = (*Cholesky)(nil)
	_ LinearSolver = (*Cholesky)(nil)
)
