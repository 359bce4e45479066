// Package ulp provides floating-point tolerance primitives based on units
// in the last place (ULPs).
//
// The package answers one question for the rest of lvlalg: "is this value
// zero, within N representable steps of the reference magnitude?" Callers
// normalize by their own reference first (divide by a running error
// estimate, a norm, a pivot), then ask IsZero with a small ULP budget.
//
//   - Eps is the distance between 1.0 and the next float64 (2⁻⁵²).
//   - IsZero(v, n) holds when |v| ≤ n·Eps.
//   - StepAt(x) is the representable step at magnitude |x|, the quantity
//     classically written as ulp(x).
//
// All functions are pure, allocation free, and deterministic.
package ulp
