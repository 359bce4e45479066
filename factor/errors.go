// SPDX-License-Identifier: MIT

// Package factor: sentinel errors and the shared wrapping helper.
//
// Taxonomy:
//   - ErrDimensionMismatch — operand shapes are incompatible (e.g. a
//     right-hand side with the wrong row count).
//   - ErrNotSquare, ErrNotSymmetric — structural preconditions an input
//     lacks; detected before any numeric work.
//   - ErrNotPositiveDefinite — numerical failure surfaced mid-elimination.
//   - ErrSingular — a triangular system with a numerically zero diagonal.
//
// "There is provably no exact solution" is NOT an error: Solve reports it
// through its ok result instead.

package factor

import (
	"errors"
	"fmt"
)

var (
	// ErrDimensionMismatch indicates incompatible row/column counts between operands.
	ErrDimensionMismatch = errors.New("factor: operands have incompatible dimensions")

	// ErrNotSquare indicates an operation that requires a square matrix.
	ErrNotSquare = errors.New("factor: operation requires a square matrix")

	// ErrNotSymmetric indicates an operation that requires a symmetric matrix.
	ErrNotSymmetric = errors.New("factor: operation requires a symmetric matrix")

	// ErrNotPositiveDefinite indicates a pivot failure during Cholesky elimination.
	ErrNotPositiveDefinite = errors.New("factor: matrix is not positive definite")

	// ErrSingular indicates a numerically zero diagonal in a triangular system.
	ErrSingular = errors.New("factor: matrix is numerically singular")
)

// Operation name constants for unified error wrapping.
const (
	opBidiagonal = "Bidiagonal"
	opSVD        = "SVD"
	opCholesky   = "Cholesky"
	opSolveUpper = "SolveUpper"
	opSolveLower = "SolveLower"
)

// factorErrorf wraps err with an operation tag, preserving the original
// error for errors.Is/errors.As checks.
func factorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
