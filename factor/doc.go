// SPDX-License-Identifier: MIT

// Package factor provides dense-matrix factorization engines and the
// rank/least-squares machinery built on top of them.
//
// What's inside:
//   - 🪞 Bidiagonal — Householder reduction M = U·B·Vᵗ with B upper-bidiagonal,
//     the preparation stage of the singular value pipeline.
//   - 🌀 SVD — Demmel–Kahan zero-shift Givens diagonalization producing
//     M = U·Σ·Vᵗ, plus numerical rank, condition number, pseudoinverse,
//     least-squares solving and the four fundamental subspaces.
//   - 🔺 Cholesky — exact solver for symmetric positive-definite systems
//     via M = Uᵗ·U and two-pass triangular substitution.
//   - 📐 SolveUpper / SolveLower — standalone triangular substitution kernels.
//
// Every engine follows the same lifecycle: construct with a coefficient
// matrix and optional tuning (WithUlps, WithMaxSweeps), decompose lazily on
// the first derived access, memoize every derived quantity, and reset the
// whole group with RequestUpdate. The caller's matrix is read once and never
// mutated; every cache is owned exclusively by the engine instance.
//
// Instances are not safe for concurrent use: the lazy caches follow a plain
// check-then-fill pattern. Confine each instance to one goroutine or guard
// cache-populating calls externally.
//
// Capability contracts (Determinant, LeastSquares, LinearSolver, RankReveal,
// LinearSpace) are declared as small independent interfaces so each engine
// only advertises what it honestly supports.
package factor
