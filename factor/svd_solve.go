// SPDX-License-Identifier: MIT

// Package factor: the rank and least-squares layer of the SVD engine.
//
// Everything here derives from the sorted spectrum: rank via a
// condition-scaled tolerance, pseudoinverse and least-squares solutions via
// substitution through U, Σ and V, solvability via orthogonality against
// the transposed null space, and the four fundamental subspaces as column
// selections from U and V.

package factor

import (
	"math"

	"github.com/katalvlaran/lvlalg/matrix"
	"github.com/katalvlaran/lvlalg/ulp"
)

// rankBudgetCap bounds the derived ulps budget so that a degenerate
// condition number cannot overflow the int conversion.
const rankBudgetCap = math.MaxInt32

// Rank returns the numerical rank: the count of leading singular values
// distinguishable from zero under a tolerance of
// max(rows, cols) · StepAt(Condition()) ulps. The spectrum is sorted, so
// the count stops at the first sub-tolerance value.
func (s *SVD) Rank() (int, error) {
	if err := s.decompose(); err != nil {
		return 0, err
	}
	if s.hasRank {
		return s.rank, nil
	}

	cond, err := s.Condition()
	if err != nil {
		return 0, err
	}

	// A finite, well-behaved condition number keeps the budget at 0 and the
	// comparison exact; the budget only opens up when the spectrum spans so
	// many magnitudes that trailing values drown in representation noise.
	budget := 0
	if !math.IsInf(cond, 0) && !math.IsNaN(cond) {
		scaled := float64(maxInt(s.rows, s.cols)) * ulp.StepAt(cond)
		if scaled > rankBudgetCap {
			scaled = rankBudgetCap
		}
		budget = int(scaled)
	}

	s.rank = 0
	for _, sigma := range s.sv {
		if ulp.IsZero(sigma, budget) {
			break
		}
		s.rank++
	}
	s.hasRank = true

	return s.rank, nil
}

// Condition returns σmax/σmin over the full spectrum. Rank-deficient input
// yields +Inf; so does the zero matrix.
func (s *SVD) Condition() (float64, error) {
	if err := s.decompose(); err != nil {
		return 0, err
	}

	smax := s.sv[0]
	smin := s.sv[len(s.sv)-1]
	if smin == 0 {
		return math.Inf(1), nil
	}

	return smax / smin, nil
}

// Approx returns the least-squares solution x = V·Σ⁺·Uᵗ·b minimizing
// ‖M·x − b‖. The right-hand side may have any column count; its row count
// must match M's.
//
// Σ⁺ inverts only the leading Rank() singular values and keeps the rest at
// zero, which realizes the Moore–Penrose pseudoinverse for rank-deficient
// systems instead of dividing by spectrum noise.
//
// Errors: ErrDimensionMismatch, propagated matrix failures.
func (s *SVD) Approx(b matrix.Matrix) (*matrix.Dense, error) {
	if b == nil {
		return nil, factorErrorf(opSVD, matrix.ErrNilMatrix)
	}
	if err := s.decompose(); err != nil {
		return nil, err
	}
	if b.Rows() != s.rows {
		return nil, factorErrorf(opSVD, ErrDimensionMismatch)
	}
	r, err := s.Rank()
	if err != nil {
		return nil, err
	}

	// Σ⁺ has the transposed shape of Σ so the substitution chain
	// (cols×rows)·(rows×rows)·(rows×q) lines up for any input shape.
	sigPlus, err := matrix.NewDense(s.cols, s.rows)
	if err != nil {
		return nil, factorErrorf(opSVD, err)
	}
	for i := 0; i < r; i++ {
		if err = sigPlus.Set(i, i, 1/s.sv[i]); err != nil {
			return nil, factorErrorf(opSVD, err)
		}
	}

	ut, err := matrix.Transpose(s.uInternal())
	if err != nil {
		return nil, factorErrorf(opSVD, err)
	}
	x, err := matrix.MulChain(s.vInternal(), sigPlus, ut, b)
	if err != nil {
		return nil, factorErrorf(opSVD, err)
	}

	return matrix.ToDense(x)
}

// Pseudoinverse returns the Moore–Penrose inverse M⁺ = Approx(I), cached.
func (s *SVD) Pseudoinverse() (*matrix.Dense, error) {
	if err := s.decompose(); err != nil {
		return nil, err
	}

	if s.inv == nil {
		id, err := matrix.NewIdentity(s.rows)
		if err != nil {
			return nil, factorErrorf(opSVD, err)
		}
		if s.inv, err = s.Approx(id); err != nil {
			return nil, err
		}
	}

	return s.inv.CloneDense(), nil
}

// CanSolve reports whether M·x = b admits an exact solution: b must be
// orthogonal, within a dimension-scaled tolerance, to the null space of Mᵗ.
// A trivial transposed null space (full row rank) solves everything.
// Errors: ErrDimensionMismatch.
func (s *SVD) CanSolve(b matrix.Matrix) (bool, error) {
	if b == nil {
		return false, factorErrorf(opSVD, matrix.ErrNilMatrix)
	}
	if err := s.decompose(); err != nil {
		return false, err
	}
	if b.Rows() != s.rows {
		return false, factorErrorf(opSVD, ErrDimensionMismatch)
	}

	nt, err := s.NullTranspose()
	if err != nil {
		return false, err
	}
	if nt == nil {
		return true, nil
	}

	bt, err := matrix.Transpose(b)
	if err != nil {
		return false, factorErrorf(opSVD, err)
	}
	prod, err := matrix.Mul(bt, nt)
	if err != nil {
		return false, factorErrorf(opSVD, err)
	}
	norm, err := matrix.Norm(prod)
	if err != nil {
		return false, factorErrorf(opSVD, err)
	}

	// The tolerance scales with both operand sizes and the error margin.
	eTol := maxInt(b.Rows(), b.Cols()) * maxInt(nt.Rows(), nt.Cols()) * s.opts.Ulps

	return ulp.IsZero(norm, eTol), nil
}

// Solve returns (x, true, nil) when an exact solution exists and
// (nil, false, nil) when it provably does not; the least-squares
// approximation stays available through Approx either way.
func (s *SVD) Solve(b matrix.Matrix) (*matrix.Dense, bool, error) {
	ok, err := s.CanSolve(b)
	if err != nil {
		return nil, false, err
	}
	if !ok {
		return nil, false, nil
	}
	x, err := s.Approx(b)
	if err != nil {
		return nil, false, err
	}

	return x, true, nil
}

// ColumnSpace returns an orthonormal basis of range(M): the leading Rank()
// columns of U. Nil for the zero matrix (trivial range).
func (s *SVD) ColumnSpace() (*matrix.Dense, error) {
	return s.space(&s.colSpace, func(r int) (*matrix.Dense, int, int) {
		return s.uInternal(), 0, r
	})
}

// RowSpace returns an orthonormal basis of range(Mᵗ): the leading Rank()
// columns of V. Nil for the zero matrix.
func (s *SVD) RowSpace() (*matrix.Dense, error) {
	return s.space(&s.rowSpace, func(r int) (*matrix.Dense, int, int) {
		return s.vInternal(), 0, r
	})
}

// NullSpace returns an orthonormal basis of ker(M): the trailing columns
// of V past the rank. Nil when M has full column rank.
func (s *SVD) NullSpace() (*matrix.Dense, error) {
	return s.space(&s.nullSpace, func(r int) (*matrix.Dense, int, int) {
		return s.vInternal(), r, s.vInternal().Cols()
	})
}

// NullTranspose returns an orthonormal basis of ker(Mᵗ): the trailing
// columns of U past the rank. Nil when M has full row rank.
func (s *SVD) NullTranspose() (*matrix.Dense, error) {
	return s.space(&s.nullTrans, func(r int) (*matrix.Dense, int, int) {
		return s.uInternal(), r, s.uInternal().Cols()
	})
}

// space memoizes one subspace: pick resolves (source, from, to) from the
// rank, and the selected column range is copied into a fresh matrix.
func (s *SVD) space(cache *spaceCache, pick func(rank int) (*matrix.Dense, int, int)) (*matrix.Dense, error) {
	if err := s.decompose(); err != nil {
		return nil, err
	}
	if cache.done {
		if cache.m == nil {
			return nil, nil
		}

		return cache.m.CloneDense(), nil
	}

	r, err := s.Rank()
	if err != nil {
		return nil, err
	}
	src, from, to := pick(r)
	sel, err := takeColumns(src, from, to)
	if err != nil {
		return nil, factorErrorf(opSVD, err)
	}
	cache.m, cache.done = sel, true

	if cache.m == nil {
		return nil, nil
	}

	return cache.m.CloneDense(), nil
}

// takeColumns copies columns [from, to) of m into a fresh matrix; an empty
// range yields nil.
func takeColumns(m *matrix.Dense, from, to int) (*matrix.Dense, error) {
	if from >= to {
		return nil, nil
	}

	out, err := matrix.NewDense(m.Rows(), to-from)
	if err != nil {
		return nil, err
	}
	var r, c int
	var v float64
	for r = 0; r < m.Rows(); r++ {
		for c = from; c < to; c++ {
			if v, err = m.At(r, c); err != nil {
				return nil, err
			}
			if err = out.Set(r, c-from, v); err != nil {
				return nil, err
			}
		}
	}

	return out, nil
}

// maxInt returns the larger of a and b.
func maxInt(a, b int) int {
	if a > b {
		return a
	}

	return b
}
