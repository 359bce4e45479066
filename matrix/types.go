// SPDX-License-Identifier: MIT

// Package matrix: public domain types.
// This file intentionally contains ONLY the public Matrix interface and the
// Structure tag type. Errors and numeric-policy defaults live in dedicated
// files (errors.go, options.go) per the global conventions.
package matrix

// Matrix represents a two-dimensional mutable array of float64 values.
// Each method enforces bounds checking and returns clear errors on misuse.
// Users can implement this interface to provide custom storage layouts;
// kernels fall back to At/Set when the concrete type is not *Dense.
//
// Complexity notes: all methods are expected O(1) except Clone (O(r*c)).
type Matrix interface {
	// Rows returns the number of rows in the matrix.
	// Complexity: O(1).
	Rows() int

	// Cols returns the number of columns in the matrix.
	// Complexity: O(1).
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	// Complexity: O(1).
	At(i, j int) (float64, error)

	// Set assigns the value v at position (i, j).
	// Returns ErrOutOfRange if indices are invalid.
	// Complexity: O(1).
	Set(i, j int, v float64) error

	// Clone returns a deep copy of the matrix.
	// The returned Matrix is independent of the original.
	// Complexity: O(rows*cols).
	Clone() Matrix
}

// Structure is a bitmask of structural properties a matrix is known to
// satisfy. Membership is advisory: a set bit is a promise made by a
// constructor or factorization that produced the matrix, and is consulted
// by Is as a cache before any O(n²) scan. Mutating writes clear the mask.
//
// The properties form a natural lattice (Identity ⊂ Orthogonal ∩ Diagonal,
// Diagonal ⊂ Symmetric ∩ UpperTriangular ∩ UpperBidiagonal) but the mask
// does not model it: producers assert every bit they can prove, consumers
// test exactly the bit they need.
type Structure uint8

const (
	// StructIdentity marks the identity matrix.
	StructIdentity Structure = 1 << iota

	// StructDiagonal marks matrices with nonzero entries only on the
	// main diagonal.
	StructDiagonal

	// StructUpperBidiagonal marks matrices with nonzero entries only on the
	// main diagonal and the first superdiagonal.
	StructUpperBidiagonal

	// StructUpperTriangular marks matrices with zero entries below the
	// main diagonal.
	StructUpperTriangular

	// StructOrthogonal marks square matrices whose transpose is their
	// inverse (MᵗM = I).
	StructOrthogonal

	// StructSymmetric marks square matrices equal to their own transpose.
	StructSymmetric
)
