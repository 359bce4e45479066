// SPDX-License-Identifier: MIT

// Package matrix: structural-type cache & predicates.
//
// Purpose:
//   - Let factorizations record what they proved (Assert) and let consumers
//     test what they need (Is) without re-deriving known structure.
//   - Fall back to a tolerance-aware O(n²) scan (O(n³) for orthogonality)
//     whenever a matrix is untagged, so Is is always truthful.
//
// Policy:
//   - Assert is a trusted escape hatch: it records a property WITHOUT
//     verification. Only constructors that can prove the property, and
//     callers who hold such a proof, may use it. A wrong assertion makes
//     downstream fast-path decisions undefined.
//   - Scans never mutate the mask: a scan result reflects this call's
//     tolerance and must not be replayed under another budget.
//   - Mutating writes (Set, Apply, view writes) clear the mask (dense.go),
//     so a stale tag can never outlive the content it described.
//
// Tolerances:
//   - Entry-level zero tests are relative to the largest absolute entry of
//     the matrix: v is "zero" iff ulp.IsZero(v/amax, ulps). An all-zero
//     matrix is trivially diagonal/triangular/bidiagonal.
//   - Symmetry compares mirrored entries relative to their own magnitude.
//   - Orthogonality forms MᵗM and compares against I at unit scale.

package matrix

import (
	"math"

	"github.com/katalvlaran/lvlalg/ulp"
)

// IsSquare reports whether the matrix has as many rows as columns.
// Shape predicates are pure and never cached. Complexity: O(1).
func (m *Dense) IsSquare() bool { return m.r == m.c }

// IsTall reports whether the matrix has at least as many rows as columns.
// The factor package bidiagonalizes tall matrices directly and transposes
// wide ones first. Complexity: O(1).
func (m *Dense) IsTall() bool { return m.r >= m.c }

// Known returns the current structural mask. The zero value means "nothing
// promised", not "nothing true". Complexity: O(1).
func (m *Dense) Known() Structure { return m.known }

// Assert records that the matrix satisfies every property in s, without
// verification. This is the performance escape hatch the factor package
// uses after producing matrices whose structure it proved by construction.
// Asserting a property the content does not satisfy is a programmer error
// with undefined downstream behavior. Complexity: O(1).
func (m *Dense) Assert(s Structure) { m.known |= s }

// Is reports whether the matrix satisfies every property in s, consulting
// the cached mask first and falling back to a structural scan with the
// given ULP budget for any bit not yet promised.
//
// Implementation:
//   - Stage 1: mask lookup; bits present are trusted (see Assert contract).
//   - Stage 2: scan each missing bit; result is the conjunction.
//
// Scans do not mutate the mask. Complexity: O(1) when fully cached;
// O(r*c) per banded/symmetry bit, O(n³) for the orthogonality bit.
func (m *Dense) Is(s Structure, ulps int) bool {
	rest := s &^ m.known // bits without a promise
	if rest == 0 {
		return true
	}

	amax := m.maxAbs()
	for bit := Structure(1); bit != 0 && rest != 0; bit <<= 1 {
		if rest&bit == 0 {
			continue
		}
		rest &^= bit
		if !m.scan(bit, ulps, amax) {
			return false
		}
	}

	return true
}

// maxAbs returns the largest absolute entry, the reference magnitude for
// entry-level zero tests. Complexity: O(r*c).
func (m *Dense) maxAbs() float64 {
	var amax, a float64
	for i := range m.data {
		a = math.Abs(m.data[i])
		if a > amax {
			amax = a
		}
	}

	return amax
}

// zeroAt reports whether v is negligible relative to the reference
// magnitude amax. An all-zero matrix (amax == 0) treats every entry as
// zero. Complexity: O(1).
func zeroAt(v, amax float64, ulps int) bool {
	if amax == 0 {
		return true
	}

	return ulp.IsZero(v/amax, ulps)
}

// scan dispatches a single structural bit to its predicate.
func (m *Dense) scan(bit Structure, ulps int, amax float64) bool {
	switch bit {
	case StructIdentity:
		return m.scanIdentity(ulps)
	case StructDiagonal:
		return m.scanBanded(0, ulps, amax)
	case StructUpperBidiagonal:
		return m.scanBanded(1, ulps, amax)
	case StructUpperTriangular:
		return m.scanBanded(m.c, ulps, amax)
	case StructSymmetric:
		return m.scanSymmetric(ulps)
	case StructOrthogonal:
		return m.scanOrthogonal(ulps)
	default:
		return false
	}
}

// scanIdentity checks diag ≈ 1 and off-diag ≈ 0 at unit scale.
// Complexity: O(r*c).
func (m *Dense) scanIdentity(ulps int) bool {
	if m.r != m.c {
		return false
	}
	var i, j, base int
	for i = 0; i < m.r; i++ {
		base = i * m.c
		for j = 0; j < m.c; j++ {
			if i == j {
				if !ulp.IsZero(m.data[base+j]-1, ulps) {
					return false
				}
				continue
			}
			if !ulp.IsZero(m.data[base+j], ulps) {
				return false
			}
		}
	}

	return true
}

// scanBanded checks that every entry outside the band [diag, diag+super]
// is negligible. super=0 is Diagonal, super=1 is UpperBidiagonal and
// super=m.c covers the whole upper triangle (UpperTriangular).
// Complexity: O(r*c).
func (m *Dense) scanBanded(super int, ulps int, amax float64) bool {
	var i, j, base int
	for i = 0; i < m.r; i++ {
		base = i * m.c
		for j = 0; j < m.c; j++ {
			if j >= i && j-i <= super {
				continue // inside the permitted band
			}
			if !zeroAt(m.data[base+j], amax, ulps) {
				return false
			}
		}
	}

	return true
}

// scanSymmetric compares mirrored entries relative to their own magnitude.
// Complexity: O(n²) over the upper triangle.
func (m *Dense) scanSymmetric(ulps int) bool {
	if m.r != m.c {
		return false
	}
	var i, j int
	var a, b, scale float64
	for i = 0; i < m.r; i++ {
		for j = i + 1; j < m.c; j++ {
			a = m.data[i*m.c+j]
			b = m.data[j*m.c+i]
			scale = math.Max(1, math.Max(math.Abs(a), math.Abs(b)))
			if !ulp.IsZero((a-b)/scale, ulps) {
				return false
			}
		}
	}

	return true
}

// scanOrthogonal forms MᵗM column-dot-products and compares against the
// identity at unit scale. Entries of MᵗM are O(1) for any plausible
// orthogonal candidate, so the comparison is absolute.
// Complexity: O(n³) — use Assert when orthogonality is known by construction.
func (m *Dense) scanOrthogonal(ulps int) bool {
	if m.r != m.c {
		return false
	}
	n := m.r
	var i, j, k int
	var dot, want float64
	for i = 0; i < n; i++ {
		for j = i; j < n; j++ {
			dot = 0
			for k = 0; k < n; k++ { // column i · column j
				dot += m.data[k*n+i] * m.data[k*n+j]
			}
			want = 0
			if i == j {
				want = 1
			}
			if !ulp.IsZero(dot-want, ulps) {
				return false
			}
		}
	}

	return true
}
