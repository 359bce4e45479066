// SPDX-License-Identifier: MIT

// Package factor: singular value decomposition.
//
// The engine follows the Demmel & Kahan zero-shift downward sweep: reduce
// to bidiagonal form with Householder reflections, then chase the
// off-diagonal mass away with paired Givens rotations, top to bottom,
// right rotation before left rotation per column. The sweep order is part
// of the algorithm's identity: changing it changes convergence behavior.
//
// Reference: James Demmel & William Kahan, "Accurate singular values of
// bidiagonal matrices", SIAM J. Sci. Stat. Comput. 11 (1990).

package factor

import (
	"math"
	"sort"

	"github.com/katalvlaran/lvlalg/matrix"
	"github.com/katalvlaran/lvlalg/ulp"
)

// SVD factorizes a coefficient matrix as M = U·Σ·Vᵗ with U, V orthogonal
// and Σ diagonal, non-negative and non-increasing. One engine serves both
// plain least-squares use and the rank-revealing queries; every derived
// quantity is computed lazily and memoized.
//
// Inputs that are wider than tall are decomposed through their transpose;
// the U and V accessors swap roles transparently so the factorization
// always corresponds to the original orientation.
type SVD struct {
	mat  matrix.Matrix // caller's coefficient matrix, read-only
	opts Options

	rows, cols int
	tall       bool

	c    *matrix.Dense // bidiagonal working matrix, mutated into diagonal
	u, v *matrix.Dense // orthogonal accumulators in working orientation
	sv   []float64     // singular values, non-negative, non-increasing

	e         *matrix.Dense // Σ in the original orientation, on demand
	det       float64       // square inputs only, from the bidiagonal stage
	converged bool

	rank    int
	hasRank bool

	inv *matrix.Dense // cached pseudoinverse

	colSpace  spaceCache
	rowSpace  spaceCache
	nullSpace spaceCache
	nullTrans spaceCache
}

// spaceCache memoizes one fundamental subspace; done distinguishes a
// computed trivial (nil) space from a not-yet-computed one.
type spaceCache struct {
	m    *matrix.Dense
	done bool
}

// NewSVD prepares a lazy decomposition of m. Nothing is computed until a
// derived accessor is called; nil input surfaces there.
func NewSVD(m matrix.Matrix, opts ...Option) *SVD {
	return &SVD{mat: m, opts: gatherOptions(opts...)}
}

// NeedsUpdate reports whether the next derived access will decompose.
func (s *SVD) NeedsUpdate() bool { return s.c == nil }

// RequestUpdate drops every cached result, forcing recomputation.
func (s *SVD) RequestUpdate() {
	s.c, s.u, s.v, s.e, s.inv = nil, nil, nil, nil, nil
	s.sv = nil
	s.hasRank = false
	s.colSpace = spaceCache{}
	s.rowSpace = spaceCache{}
	s.nullSpace = spaceCache{}
	s.nullTrans = spaceCache{}
}

// decompose runs the full pipeline once: bidiagonalize (transposing wide
// input first), sweep to diagonal form, normalize signs, sort the spectrum.
func (s *SVD) decompose() error {
	if !s.NeedsUpdate() {
		return nil
	}

	src, err := matrix.ToDense(s.mat)
	if err != nil {
		return factorErrorf(opSVD, err)
	}
	s.rows, s.cols = src.Rows(), src.Cols()
	s.tall = src.IsTall()

	work := src
	if !s.tall {
		// Wide input: bidiagonalize the transpose, swap U/V on access.
		tr, tErr := matrix.Transpose(src)
		if tErr != nil {
			return factorErrorf(opSVD, tErr)
		}
		if work, err = matrix.ToDense(tr); err != nil {
			return factorErrorf(opSVD, err)
		}
	}

	bd := NewBidiagonal(work, WithUlps(s.opts.Ulps))
	if s.c, err = bd.B(); err != nil {
		return err
	}
	if s.u, err = bd.U(); err != nil {
		return err
	}
	if s.v, err = bd.V(); err != nil {
		return err
	}
	if s.rows == s.cols {
		// The bidiagonal stage already priced the determinant.
		if s.det, err = bd.Determinant(); err != nil {
			return err
		}
	}

	if err = s.sweep(); err != nil {
		return err
	}
	if err = s.normalizeSigns(); err != nil {
		return err
	}
	if err = s.sortSpectrum(); err != nil {
		return err
	}

	s.u.Assert(matrix.StructOrthogonal)
	s.v.Assert(matrix.StructOrthogonal)

	return nil
}

// sweep drives c to diagonal form, accumulating rotations into u and v.
//
// Each pass scans column i from 0 to size−2, first eliminating the
// superdiagonal entry (right rotation into c and v), then the subdiagonal
// entry (left rotation into c and u). Running relative-error estimates
// rErr/lErr decide when an entry may be snapped to exact zero instead of
// rotated away. The loop stops when c is diagonal within tolerance or the
// sweep cap is reached; the cap leaves a best-effort result and clears the
// converged flag rather than failing.
func (s *SVD) sweep() error {
	size := s.c.Cols()
	s.converged = true

	var sweeps int
	var err error
	var rErr, lErr float64
	for !s.c.Is(matrix.StructDiagonal, s.opts.Ulps) {
		if sweeps >= s.opts.MaxSweeps {
			s.converged = false
			break
		}

		rErr, lErr = 0, 0
		for i := 0; i < size-1; i++ {
			if rErr, err = s.eliminateRight(i, rErr); err != nil {
				return err
			}
			if lErr, err = s.eliminateLeft(i, lErr); err != nil {
				return err
			}
		}
		sweeps++
	}

	return nil
}

// eliminateRight handles the superdiagonal entry c[i,i+1]: snap to zero
// when it is negligible relative to the running estimate, otherwise rotate
// it away with a right Givens rotation applied to c and v.
func (s *SVD) eliminateRight(i int, rErr float64) (float64, error) {
	val, err := s.c.At(i, i+1)
	if err != nil {
		return 0, factorErrorf(opSVD, err)
	}
	diag, err := s.c.At(i, i)
	if err != nil {
		return 0, factorErrorf(opSVD, err)
	}

	if i == 0 {
		rErr = math.Abs(diag)
	} else {
		rErr = math.Abs(diag) * rErr / (rErr + val)
	}

	if ulp.IsZero(val/rErr, s.opts.Ulps) {
		return rErr, s.c.Set(i, i+1, 0)
	}

	g, err := matrix.RightGivens(s.c, i, i+1)
	if err != nil {
		return 0, factorErrorf(opSVD, err)
	}
	if s.c, err = mulDense(s.c, g, opSVD); err != nil {
		return 0, err
	}
	if s.v, err = mulDense(s.v, g, opSVD); err != nil {
		return 0, err
	}

	return rErr, nil
}

// eliminateLeft handles the subdiagonal entry c[i+1,i], the mirror of
// eliminateRight: the rotation applies from the left and accumulates its
// transpose into u.
func (s *SVD) eliminateLeft(i int, lErr float64) (float64, error) {
	val, err := s.c.At(i+1, i)
	if err != nil {
		return 0, factorErrorf(opSVD, err)
	}
	diag, err := s.c.At(i, i)
	if err != nil {
		return 0, factorErrorf(opSVD, err)
	}

	if i == 0 {
		lErr = math.Abs(diag)
	} else {
		lErr = math.Abs(diag) * lErr / (lErr + val)
	}

	if ulp.IsZero(val/lErr, s.opts.Ulps) {
		return lErr, s.c.Set(i+1, i, 0)
	}

	g, err := matrix.LeftGivens(s.c, i+1, i)
	if err != nil {
		return 0, factorErrorf(opSVD, err)
	}
	if s.c, err = mulDense(g, s.c, opSVD); err != nil {
		return 0, err
	}
	gt, err := matrix.Transpose(g)
	if err != nil {
		return 0, factorErrorf(opSVD, err)
	}
	if s.u, err = mulDense(s.u, gt.(*matrix.Dense), opSVD); err != nil {
		return 0, err
	}

	return lErr, nil
}

// normalizeSigns makes every singular value non-negative, flipping the
// matching column of v whenever a diagonal entry is negative, and captures
// the spectrum into sv.
func (s *SVD) normalizeSigns() error {
	size := s.c.Cols()
	s.sv = make([]float64, size)

	var i, r int
	var d, val float64
	var err error
	for i = 0; i < size; i++ {
		if d, err = s.c.At(i, i); err != nil {
			return factorErrorf(opSVD, err)
		}
		if d < 0 {
			if err = s.c.Set(i, i, -d); err != nil {
				return factorErrorf(opSVD, err)
			}
			for r = 0; r < s.v.Rows(); r++ {
				if val, err = s.v.At(r, i); err != nil {
					return factorErrorf(opSVD, err)
				}
				if err = s.v.Set(r, i, -val); err != nil {
					return factorErrorf(opSVD, err)
				}
			}
			d = -d
		}
		s.sv[i] = d
	}

	return nil
}

// sortSpectrum orders the singular values non-increasingly, permuting the
// leading columns of u and v consistently so the factorization is
// preserved. Sorting makes rank's early stop and the leading/trailing
// subspace extraction sound.
func (s *SVD) sortSpectrum() error {
	size := len(s.sv)
	perm := make([]int, size)
	for i := range perm {
		perm[i] = i
	}
	sort.SliceStable(perm, func(a, b int) bool { return s.sv[perm[a]] > s.sv[perm[b]] })

	sorted := make([]float64, size)
	for p, q := range perm {
		sorted[p] = s.sv[q]
	}

	var err error
	if s.u, err = permuteColumns(s.u, perm); err != nil {
		return factorErrorf(opSVD, err)
	}
	if s.v, err = permuteColumns(s.v, perm); err != nil {
		return factorErrorf(opSVD, err)
	}
	s.sv = sorted

	return nil
}

// permuteColumns returns a copy of m with column perm[p] moved to position
// p for p < len(perm); trailing columns stay in place.
func permuteColumns(m *matrix.Dense, perm []int) (*matrix.Dense, error) {
	out := m.CloneDense()

	var p, q, r int
	var v float64
	var err error
	for p, q = range perm {
		if p == q {
			continue
		}
		for r = 0; r < m.Rows(); r++ {
			if v, err = m.At(r, q); err != nil {
				return nil, err
			}
			if err = out.Set(r, p, v); err != nil {
				return nil, err
			}
		}
	}

	return out, nil
}

// uInternal returns the left factor in the original orientation without
// copying; callers must not mutate the result.
func (s *SVD) uInternal() *matrix.Dense {
	if !s.tall {
		return s.v
	}

	return s.u
}

// vInternal is the right-factor mirror of uInternal.
func (s *SVD) vInternal() *matrix.Dense {
	if !s.tall {
		return s.u
	}

	return s.v
}

// U returns the left orthogonal factor of M = U·Σ·Vᵗ as a fresh copy.
func (s *SVD) U() (*matrix.Dense, error) {
	if err := s.decompose(); err != nil {
		return nil, err
	}

	return s.uInternal().CloneDense(), nil
}

// V returns the right orthogonal factor as a fresh copy.
func (s *SVD) V() (*matrix.Dense, error) {
	if err := s.decompose(); err != nil {
		return nil, err
	}

	return s.vInternal().CloneDense(), nil
}

// E returns Σ: a matrix in the original orientation carrying the singular
// values on its diagonal and zeros elsewhere. Square results are asserted
// Diagonal.
func (s *SVD) E() (*matrix.Dense, error) {
	if err := s.decompose(); err != nil {
		return nil, err
	}

	if s.e == nil {
		e, err := matrix.NewDense(s.rows, s.cols)
		if err != nil {
			return nil, factorErrorf(opSVD, err)
		}
		for i, v := range s.sv {
			if err = e.Set(i, i, v); err != nil {
				return nil, factorErrorf(opSVD, err)
			}
		}
		if e.IsSquare() {
			e.Assert(matrix.StructDiagonal)
		}
		s.e = e
	}

	return s.e.CloneDense(), nil
}

// SingularValues returns the spectrum as a fresh slice: non-negative and
// sorted non-increasingly, with U/V columns permuted to match.
func (s *SVD) SingularValues() ([]float64, error) {
	if err := s.decompose(); err != nil {
		return nil, err
	}

	return append([]float64(nil), s.sv...), nil
}

// Converged reports whether the sweep reached diagonal form within the
// configured cap. A false result means every derived quantity is
// best-effort; it is a diagnostic, never an error.
func (s *SVD) Converged() (bool, error) {
	if err := s.decompose(); err != nil {
		return false, err
	}

	return s.converged, nil
}

// NearestOrthogonal returns U·Vᵗ, the orthogonal matrix closest to M in
// the Frobenius sense.
func (s *SVD) NearestOrthogonal() (*matrix.Dense, error) {
	if err := s.decompose(); err != nil {
		return nil, err
	}

	vt, err := matrix.Transpose(s.vInternal())
	if err != nil {
		return nil, factorErrorf(opSVD, err)
	}
	o, err := mulDense(s.uInternal(), vt.(*matrix.Dense), opSVD)
	if err != nil {
		return nil, err
	}
	if o.IsSquare() {
		o.Assert(matrix.StructOrthogonal)
	}

	return o, nil
}

// Determinant returns det(M), priced during the bidiagonal stage. Inputs
// that are not full rank yield exactly 0. Errors: ErrNotSquare.
func (s *SVD) Determinant() (float64, error) {
	ok, err := s.Invertible()
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, nil
	}

	return s.det, nil
}

// Invertible reports whether M is square with full numerical rank.
// Errors: ErrNotSquare.
func (s *SVD) Invertible() (bool, error) {
	if err := s.decompose(); err != nil {
		return false, err
	}
	if s.rows != s.cols {
		return false, factorErrorf(opSVD, ErrNotSquare)
	}
	r, err := s.Rank()
	if err != nil {
		return false, err
	}

	return r == s.cols, nil
}

// Inverse returns the true inverse when M is invertible: (M⁻¹, true, nil).
// Singular input yields (nil, false, nil). Errors: ErrNotSquare.
func (s *SVD) Inverse() (*matrix.Dense, bool, error) {
	ok, err := s.Invertible()
	if err != nil {
		return nil, false, err
	}
	if !ok {
		return nil, false, nil
	}
	inv, err := s.Pseudoinverse()
	if err != nil {
		return nil, false, err
	}

	return inv, true, nil
}
