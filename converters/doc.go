// SPDX-License-Identifier: MIT

// Package converters bridges the lvlalg matrix model and gonum's mat types.
//
// The conversions are value copies in both directions: mutating a result
// never reaches the source. They exist for interoperability — handing an
// lvlalg factorization result to a gonum consumer, or pulling a gonum
// matrix into the tagged model — and for cross-validating the factor
// engines against an independent implementation in tests.
package converters
