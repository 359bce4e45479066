// SPDX-License-Identifier: MIT

// Package factor: Householder bidiagonalization (Golub–Kahan).
//
// The engine reduces M to upper-bidiagonal form B = Uᵗ·M·V by alternating
// column and row reflections, accumulating the orthogonal factors and the
// determinant sign as it goes. It is the preparation stage the SVD engine
// builds on, and a legitimate factorization in its own right.

package factor

import (
	"github.com/katalvlaran/lvlalg/matrix"
	"github.com/katalvlaran/lvlalg/ulp"
)

// Bidiagonal reduces a coefficient matrix to upper-bidiagonal form lazily,
// on the first access to B, U, V or Determinant.
//
// Factorization shape, for an r×c input M:
//
//	M = U·B·Vᵗ   with U (r×r) and V (c×c) orthogonal, B (r×c) bidiagonal.
//
// An input that is already upper-bidiagonal within tolerance skips the
// reflection stage entirely: B is a copy of M and U, V are identities.
type Bidiagonal struct {
	mat  matrix.Matrix // caller's coefficient matrix, read-only
	opts Options

	c    *matrix.Dense // working matrix, exclusively owned
	b    *matrix.Dense // banded copy of c, built on demand
	u, v *matrix.Dense
	det  float64
}

// NewBidiagonal prepares a lazy bidiagonalization of m. Nothing is computed
// until a derived accessor is called; nil input surfaces there.
func NewBidiagonal(m matrix.Matrix, opts ...Option) *Bidiagonal {
	return &Bidiagonal{mat: m, opts: gatherOptions(opts...)}
}

// NeedsUpdate reports whether the next derived access will decompose.
func (bd *Bidiagonal) NeedsUpdate() bool { return bd.c == nil }

// RequestUpdate drops all cached results; the next access recomputes.
func (bd *Bidiagonal) RequestUpdate() {
	bd.b, bd.c, bd.u, bd.v = nil, nil, nil, nil
}

// decompose runs the reduction once, populating c, u, v and the determinant.
//
// Implementation:
//   - Stage 1: copy the input; if it is already upper-bidiagonal within the
//     ulps budget, keep the copy and set U = V = I with sign factor +1.
//   - Stage 2: otherwise, for k in 0..min(r,c)−1: reflect column k below
//     row k to zeros (left multiply, accumulate into U, flip the sign) and
//     reflect row k beyond column k+1 to zeros (right multiply, accumulate
//     into V, flip the sign). Reflections whose normal has a near-zero
//     squared norm are skipped without a sign flip.
//   - Stage 3: square inputs multiply the accumulated sign by the product
//     of the final diagonal, yielding det(M).
//
// Each applied reflection has determinant −1, so the sign factor equals
// (−1)^reflections exactly.
func (bd *Bidiagonal) decompose() error {
	if !bd.NeedsUpdate() {
		return nil
	}

	src, err := matrix.ToDense(bd.mat)
	if err != nil {
		return factorErrorf(opBidiagonal, err)
	}
	rows, cols := src.Rows(), src.Cols()

	if src.Is(matrix.StructUpperBidiagonal, bd.opts.Ulps) {
		// Already in target form: no reflections, no sign flips.
		bd.c = src
		bd.c.Assert(matrix.StructUpperBidiagonal)
		if bd.u, err = matrix.NewIdentity(rows); err != nil {
			return factorErrorf(opBidiagonal, err)
		}
		if bd.v, err = matrix.NewIdentity(cols); err != nil {
			return factorErrorf(opBidiagonal, err)
		}
		bd.det = 1
	} else if err = bd.householder(src); err != nil {
		return err
	}

	// Square inputs pick up the diagonal product on top of the sign factor.
	if rows == cols {
		for _, d := range bd.c.Diag() {
			bd.det *= d
		}
	}

	return nil
}

// householder performs the full reflection stage on a working copy.
func (bd *Bidiagonal) householder(src *matrix.Dense) error {
	rows, cols := src.Rows(), src.Cols()

	var err error
	bd.c = src
	if bd.u, err = matrix.NewIdentity(rows); err != nil {
		return factorErrorf(opBidiagonal, err)
	}
	if bd.v, err = matrix.NewIdentity(cols); err != nil {
		return factorErrorf(opBidiagonal, err)
	}

	bd.det = 1
	size := rows
	if cols < size {
		size = cols
	}

	var k, i int
	var normal []float64
	var h *matrix.Dense
	for k = 0; k < size; k++ {
		// Column reflection: zero column k below row k.
		if k < rows-1 {
			if normal, err = bd.c.Col(k); err != nil {
				return factorErrorf(opBidiagonal, err)
			}
			for i = 0; i < k; i++ {
				normal[i] = 0
			}
			if !ulp.IsZero(sqrNorm(normal), bd.opts.Ulps) {
				if h, err = matrix.Householder(normal, k); err != nil {
					return factorErrorf(opBidiagonal, err)
				}
				if bd.c, err = mulDense(h, bd.c); err != nil {
					return err
				}
				if bd.u, err = mulDense(bd.u, h); err != nil {
					return err
				}
				bd.det = -bd.det
			}
		}

		// Row reflection: zero row k beyond the superdiagonal.
		if k < cols-2 {
			if normal, err = bd.c.Row(k); err != nil {
				return factorErrorf(opBidiagonal, err)
			}
			for i = 0; i <= k; i++ {
				normal[i] = 0
			}
			if !ulp.IsZero(sqrNorm(normal), bd.opts.Ulps) {
				if h, err = matrix.Householder(normal, k+1); err != nil {
					return factorErrorf(opBidiagonal, err)
				}
				if bd.c, err = mulDense(bd.c, h); err != nil {
					return err
				}
				if bd.v, err = mulDense(bd.v, h); err != nil {
					return err
				}
				bd.det = -bd.det
			}
		}
	}

	return nil
}

// B returns the reduced bidiagonal matrix, a fresh copy restricted to the
// diagonal and superdiagonal band, asserted UpperBidiagonal.
func (bd *Bidiagonal) B() (*matrix.Dense, error) {
	if err := bd.decompose(); err != nil {
		return nil, err
	}

	if bd.b == nil {
		band, err := bandedCopy(bd.c)
		if err != nil {
			return nil, factorErrorf(opBidiagonal, err)
		}
		bd.b = band
	}

	return bd.b.CloneDense(), nil
}

// U returns the left orthogonal accumulator, asserted Orthogonal.
func (bd *Bidiagonal) U() (*matrix.Dense, error) {
	if err := bd.decompose(); err != nil {
		return nil, err
	}
	bd.u.Assert(matrix.StructOrthogonal)

	return bd.u.CloneDense(), nil
}

// V returns the right orthogonal accumulator, asserted Orthogonal.
func (bd *Bidiagonal) V() (*matrix.Dense, error) {
	if err := bd.decompose(); err != nil {
		return nil, err
	}
	bd.v.Assert(matrix.StructOrthogonal)

	return bd.v.CloneDense(), nil
}

// Determinant returns det(M) for square input: the reflection sign factor
// times the diagonal product of B. Non-invertible input yields exactly 0.
// Errors: ErrNotSquare.
func (bd *Bidiagonal) Determinant() (float64, error) {
	ok, err := bd.Invertible()
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, nil
	}

	return bd.det, nil
}

// Invertible reports whether the determinant is distinguishable from zero
// within the configured ulps budget. Errors: ErrNotSquare.
func (bd *Bidiagonal) Invertible() (bool, error) {
	if err := bd.decompose(); err != nil {
		return false, err
	}
	if !bd.c.IsSquare() {
		return false, factorErrorf(opBidiagonal, ErrNotSquare)
	}

	return !ulp.IsZero(bd.det, bd.opts.Ulps), nil
}

// sqrNorm returns the squared Euclidean norm of v.
func sqrNorm(v []float64) float64 {
	var s float64
	for _, x := range v {
		s += x * x
	}

	return s
}

// mulDense multiplies two Dense matrices, keeping the concrete type.
func mulDense(a, b *matrix.Dense, tags ...string) (*matrix.Dense, error) {
	tag := opBidiagonal
	if len(tags) > 0 {
		tag = tags[0]
	}
	res, err := matrix.Mul(a, b)
	if err != nil {
		return nil, factorErrorf(tag, err)
	}
	d, ok := res.(*matrix.Dense)
	if !ok {
		return matrix.ToDense(res)
	}

	return d, nil
}

// bandedCopy extracts the diagonal and superdiagonal band of m into a fresh
// matrix asserted UpperBidiagonal. Values outside the band are dropped,
// which also cleans sub-tolerance residue the reflections leave behind.
func bandedCopy(m *matrix.Dense) (*matrix.Dense, error) {
	rows, cols := m.Rows(), m.Cols()
	band, err := matrix.NewDense(rows, cols)
	if err != nil {
		return nil, err
	}

	var i, j, jMax int
	var v float64
	for i = 0; i < rows; i++ {
		jMax = i + 2
		if cols < jMax {
			jMax = cols
		}
		for j = i; j < jMax; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, err
			}
			if err = band.Set(i, j, v); err != nil {
				return nil, err
			}
		}
	}
	band.Assert(matrix.StructUpperBidiagonal)

	return band, nil
}
