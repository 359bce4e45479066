// Package lvlalg is your in-memory toolbox for dense numerical linear
// algebra — from a tagged matrix model to SVD-based least squares and
// Cholesky exact solvers.
//
// 🚀 What is lvlalg?
//
//	A deterministic, pure-Go library that brings together:
//		• Tagged matrices: row-major Dense storage with a structural-type
//		  cache (Identity, Diagonal, UpperBidiagonal, Orthogonal, ...)
//		• Kernels: Add, Sub, Mul, Transpose, Scale, MatVec, norms & traces
//		• Rotations: Householder reflections and Givens rotations
//		• Factorizations: Householder bidiagonalization, Demmel–Kahan SVD,
//		  Cholesky, Doolittle LU, Jacobi eigendecomposition
//		• Solvers: least squares, pseudoinverse, rank & linear spaces,
//		  symmetric positive-definite exact systems
//
// ✨ Why choose lvlalg?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Rock-solid guarantees – ULP-based tolerance policy, in-code docs
//   - Pure Go – no cgo, deterministic loop orders everywhere
//   - Honest capabilities – small solver interfaces, each implemented
//     only where the algorithm can actually deliver it
//
// Under the hood, everything is organized under focused subpackages:
//
//	ulp/        — floating-point tolerance primitives (ULP steps, IsZero)
//	matrix/     — Dense matrices, structural tags, linear-algebra kernels
//	factor/     — Bidiagonal, SVD, Cholesky solvers with lazy caching
//	converters/ — adapters to and from gonum.org/v1/gonum/mat
//
// Quick example — least squares through SVD:
//
//	m, _ := matrix.FromRows([][]float64{{1, 0}, {1, 1}, {1, 2}})
//	s := factor.NewSVD(m)
//	x, _ := s.Approx(b) // minimizes ‖m·x − b‖
//
// Dive into the examples/ directory for full scenarios, and cmd/spectra
// for a ready-made singular-value spectrum plotting tool.
//
//	go get github.com/katalvlaran/lvlalg
package lvlalg
