// SPDX-License-Identifier: MIT

// Package ulp: tolerance kernel shared by matrix and factor.
//
// Purpose:
//   - Single source of truth for "close enough to zero" decisions.
//   - Keep numeric policy out of algorithm files; they pass a ULP budget.
//
// Determinism & Performance:
//   - Pure float64 arithmetic, no state, no allocations.

package ulp

import "math"

// Eps is the machine epsilon for float64: the step from 1.0 to the next
// representable value, 2⁻⁵². One "ULP at unit magnitude".
const Eps = 0x1p-52

// IsZero reports whether v is zero within ulps representable steps at unit
// magnitude, i.e. |v| ≤ ulps·Eps.
//
// Callers comparing against a non-unit reference divide by that reference
// first; the SVD sweep does exactly that with its running error estimate.
// NaN is never zero. A non-positive ulps budget accepts only exact zero.
// Complexity: O(1).
func IsZero(v float64, ulps int) bool {
	if math.IsNaN(v) {
		return false
	}
	if ulps <= 0 {
		return v == 0
	}

	return math.Abs(v) <= float64(ulps)*Eps
}

// StepAt returns the representable step at magnitude |x|: the distance from
// |x| to the next float64 toward +Inf. This is the classical ulp(x).
//
// StepAt(0) returns the smallest positive subnormal; StepAt(±Inf) and
// StepAt(NaN) return NaN so that downstream tolerances poison loudly
// instead of silently accepting garbage.
// Complexity: O(1).
func StepAt(x float64) float64 {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return math.NaN()
	}
	a := math.Abs(x)

	return math.Nextafter(a, math.Inf(1)) - a
}

// Round snaps v to exactly 0 when IsZero(v, ulps) holds and returns v
// unchanged otherwise. Convenience for structural scans that want clean
// zeros in reconstructed matrices.
// Complexity: O(1).
func Round(v float64, ulps int) float64 {
	if IsZero(v, ulps) {
		return 0
	}

	return v
}
