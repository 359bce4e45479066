// Package matrix provides the tagged dense matrix model underpinning lvlalg.
//
// The matrix package provides:
//
//   - Dense, a row-major float64 matrix with bounds-checked accessors,
//     no-copy views and copy-based submatrix extraction.
//   - A structural-type cache (Structure): matrices produced by constructors
//     and factorizations carry advisory tags — Identity, Diagonal,
//     UpperTriangular, UpperBidiagonal, Orthogonal, Symmetric — that let
//     consumers skip O(n²)/O(n³) work when the structure is already known.
//   - Linear-algebra kernels: Add, Sub, Mul, Transpose, Scale, MatVec,
//     Frobenius norms, trace and diagonal extraction.
//   - Rotation builders: Householder reflections and Givens rotations, the
//     raw material of the factor package.
//   - Jacobi eigendecomposition and Doolittle LU/Inverse for symmetric
//     spectra and independent cross-checks.
//
// Tags are advisory metadata only: they never change numeric content, are
// cleared by mutating writes, and are verified by Is via a tolerance-aware
// structural scan whenever a matrix is untagged.
//
// Matrices are best for dense, small-to-medium problems where O(n²) memory
// and deterministic O(n³) kernels are acceptable.
//
// See the examples in this package and factor for usage patterns.
package matrix
