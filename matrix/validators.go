// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide a single, canonical source of truth for common validation checks.
//   - Keep kernels/facades minimal by delegating shape/nil/symmetry checks here.
//   - Return plain sentinel errors (wrapped only with the validator tag) so
//     call sites can wrap uniformly with their op tag.
//
// Determinism & Performance:
//   - All checks are pure, deterministic and allocate nothing.
//   - Symmetry check runs O(n²) on the upper triangle only.
//
// Note:
//   - Each composite validator follows a fixed sequence (NotNil → Shape → ...).

package matrix

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvlalg/ulp"
)

// validatorErrorf wraps an underlying error with the given validator tag.
// Used internally to maintain consistent labeling of sentinel violations.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
// Returns ErrNilMatrix if m == nil. Complexity: O(1).
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSameShape ensures matrices a and b have equal dimensions.
// Assumes a and b are not nil (caller must ensure). Complexity: O(1).
func ValidateSameShape(a, b Matrix) error {
	if a.Rows() != b.Rows() {
		return validatorErrorf("ValidateSameShape: Rows", ErrDimensionMismatch)
	}
	if a.Cols() != b.Cols() {
		return validatorErrorf("ValidateSameShape: Columns", ErrDimensionMismatch)
	}

	return nil
}

// ValidateBinarySameShape is the canonical guard for elementwise kernels:
// NotNil(a) → NotNil(b) → SameShape(a,b). Complexity: O(1).
func ValidateBinarySameShape(a, b Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return err
	}
	if err := ValidateNotNil(b); err != nil {
		return err
	}

	return ValidateSameShape(a, b)
}

// ValidateMulCompatible guards matrix multiplication:
// NotNil(a) → NotNil(b) → a.Cols == b.Rows. Complexity: O(1).
func ValidateMulCompatible(a, b Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return err
	}
	if err := ValidateNotNil(b); err != nil {
		return err
	}
	if a.Cols() != b.Rows() {
		return validatorErrorf("ValidateMulCompatible", ErrDimensionMismatch)
	}

	return nil
}

// ValidateSquare checks that m is square (Rows == Cols).
// Assumes m is not nil. Complexity: O(1).
func ValidateSquare(m Matrix) error {
	if m.Rows() != m.Cols() {
		return validatorErrorf("ValidateSquare", ErrNonSquare)
	}

	return nil
}

// ValidateVecLen ensures the vector is non-nil and has exactly n entries.
// Complexity: O(1).
func ValidateVecLen(x []float64, n int) error {
	if x == nil {
		return validatorErrorf("ValidateVecLen", ErrNilMatrix)
	}
	if len(x) != n {
		return validatorErrorf("ValidateVecLen", ErrDimensionMismatch)
	}

	return nil
}

// ValidateSymmetric ensures m is non-nil, square, and symmetric within the
// given ULP budget (mirrored entries compared relative to their magnitude).
// Errors: ErrNilMatrix, ErrNonSquare, ErrAsymmetry.
// Complexity: O(n²) over the upper triangle.
func ValidateSymmetric(m Matrix, ulps int) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}
	if err := ValidateSquare(m); err != nil {
		return err
	}
	// Fast path: a Dense scan avoids At error plumbing.
	if d, ok := m.(*Dense); ok {
		if d.Is(StructSymmetric, ulps) {
			return nil
		}

		return validatorErrorf("ValidateSymmetric", ErrAsymmetry)
	}

	// Fallback: interface path with fixed i→j order over the upper triangle.
	n := m.Rows()
	var i, j int
	var a, b, scale float64
	var err error
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			if a, err = m.At(i, j); err != nil {
				return validatorErrorf("ValidateSymmetric", err)
			}
			if b, err = m.At(j, i); err != nil {
				return validatorErrorf("ValidateSymmetric", err)
			}
			scale = math.Max(1, math.Max(math.Abs(a), math.Abs(b)))
			if !ulp.IsZero((a-b)/scale, ulps) {
				return validatorErrorf("ValidateSymmetric", ErrAsymmetry)
			}
		}
	}

	return nil
}
