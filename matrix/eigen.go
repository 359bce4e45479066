// SPDX-License-Identifier: MIT

// Package matrix: Jacobi eigendecomposition for symmetric matrices.
//
// Purpose:
//   - Spectral factorization A = Q·Λ·Qᵗ for symmetric inputs, used by tests
//     as an independent cross-check of the SVD engine (singular values of a
//     symmetric positive-definite matrix equal its eigenvalues).
//
// Determinism:
//   - Fixed i→j pivot search (largest |A[p,q]| wins, first occurrence on
//     ties) and fixed update order produce stable results across runs.

package matrix

import "math"

// Eigen computes eigenvalues and eigenvectors of a symmetric matrix via
// classical Jacobi rotations.
//
// Implementation:
//   - Stage 1: validate symmetric square input (DefaultUlps budget).
//   - Stage 2: repeatedly pick (p,q) maximizing |A[p,q]| and rotate it to
//     zero, accumulating the rotation into Q; stop when the largest
//     off-diagonal magnitude drops below tol or maxIter is exhausted.
//
// Returns the eigenvalues (diagonal of the rotated matrix, unsorted) and Q
// whose columns are the matching eigenvectors, asserted Orthogonal.
//
// Errors: ErrNilMatrix, ErrNonSquare, ErrAsymmetry, ErrEigenFailed (cap hit
// with off-diagonal mass ≥ tol).
// Complexity: Time O(maxIter·n²) per sweep step, Space O(n²).
func Eigen(m Matrix, tol float64, maxIter int) ([]float64, *Dense, error) {
	if err := ValidateSymmetric(m, DefaultUlps); err != nil {
		return nil, nil, matrixErrorf(opEigen, err)
	}

	// Working copy A and orthogonal accumulator Q.
	a, err := ToDense(m)
	if err != nil {
		return nil, nil, matrixErrorf(opEigen, err)
	}
	n := a.r
	q, err := NewIdentity(n)
	if err != nil {
		return nil, nil, matrixErrorf(opEigen, err)
	}

	var (
		iter, i, j, p, r     int
		maxOff, off          float64
		app, aqq, apq        float64
		aip, aiq, qip, qiq   float64
		newIP, newIQ         float64
		theta, t, cos, sin   float64
	)
	for iter = 0; iter < maxIter; iter++ {
		// Pivot search: largest |A[p,r]| above the diagonal.
		maxOff = 0
		for i = 0; i < n; i++ {
			for j = i + 1; j < n; j++ {
				off = math.Abs(a.data[i*n+j])
				if off > maxOff {
					maxOff, p, r = off, i, j
				}
			}
		}
		if maxOff < tol {
			break // converged
		}

		app = a.data[p*n+p]
		aqq = a.data[r*n+r]
		apq = a.data[p*n+r]

		// θ = (aqq−app)/(2·apq); t = sign(θ)/(|θ|+√(θ²+1)).
		theta = (aqq - app) / (2 * apq)
		t = math.Copysign(1.0/(math.Abs(theta)+math.Hypot(theta, 1)), theta)
		cos = 1.0 / math.Sqrt(t*t+1)
		sin = t * cos

		// Apply the rotation to A symmetrically.
		for i = 0; i < n; i++ {
			if i == p || i == r {
				continue
			}
			aip = a.data[i*n+p]
			aiq = a.data[i*n+r]
			newIP = cos*aip - sin*aiq
			newIQ = sin*aip + cos*aiq
			a.data[i*n+p], a.data[p*n+i] = newIP, newIP
			a.data[i*n+r], a.data[r*n+i] = newIQ, newIQ
		}
		a.data[p*n+p] = cos*cos*app - 2*cos*sin*apq + sin*sin*aqq
		a.data[r*n+r] = sin*sin*app + 2*cos*sin*apq + cos*cos*aqq
		a.data[p*n+r], a.data[r*n+p] = 0, 0

		// Accumulate the rotation into Q.
		for i = 0; i < n; i++ {
			qip = q.data[i*n+p]
			qiq = q.data[i*n+r]
			q.data[i*n+p] = cos*qip - sin*qiq
			q.data[i*n+r] = sin*qip + cos*qiq
		}
	}

	// Final convergence check.
	maxOff = 0
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			off = math.Abs(a.data[i*n+j])
			if off > maxOff {
				maxOff = off
			}
		}
	}
	if maxOff >= tol {
		return nil, nil, matrixErrorf(opEigen, ErrEigenFailed)
	}

	// Extract eigenvalues from the diagonal of the rotated matrix.
	eigs := make([]float64, n)
	for i = 0; i < n; i++ {
		eigs[i] = a.data[i*n+i]
	}
	q.known = StructOrthogonal // product of plane rotations

	return eigs, q, nil
}
