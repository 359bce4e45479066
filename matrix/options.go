// SPDX-License-Identifier: MIT

// Package matrix: numeric policy defaults.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each constant impacts behavior and is covered by tests.
//   - Single source of truth: structural scans and Set validation read their
//     defaults from here, never from inline literals.
//
// Notes:
//   - Tolerances in this package are expressed in ULPs (units in the last
//     place) and resolved through the ulp package. Structural predicates take
//     an explicit ulps argument; DefaultUlps is the value to pass when a
//     caller has no opinion.
//   - validateNaNInf is a per-Dense flag seeded from DefaultValidateNaNInf;
//     builders that must ingest ±Inf can construct with newDenseWithPolicy.

package matrix

// Numeric policy.
const (
	// DefaultUlps is the tolerance, in representable steps at unit magnitude,
	// used by structural scans when the caller supplies no explicit budget.
	DefaultUlps = 3

	// DefaultValidateNaNInf toggles strict finite-value validation on Set.
	DefaultValidateNaNInf = true
)
