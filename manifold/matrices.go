// Package manifold: the Matrices total space.
package manifold

import (
	"github.com/katalvlaran/graphspace/matrix"
)

// Matrices is the flat manifold of rows×cols real matrices.
// It is immutable after construction and safe for concurrent use.
type Matrices struct {
	rows, cols int
}

// NewMatrices constructs the manifold of rows×cols real matrices.
// Stage 1 (Validate): positive dimensions.
// Complexity: O(1).
func NewMatrices(rows, cols int) (*Matrices, error) {
	if rows <= 0 || cols <= 0 {
		return nil, matrix.ErrInvalidDimensions
	}

	return &Matrices{rows: rows, cols: cols}, nil
}

// Shape returns the (rows, cols) the manifold was built with.
// Complexity: O(1).
func (s *Matrices) Shape() (int, int) { return s.rows, s.cols }

// Belongs reports whether x is a point of the manifold: exact shape
// match and finite (real) entries. Symmetry is NOT required: directed
// adjacency matrices belong just as undirected ones do. atol is part of
// the membership contract for structured total spaces; the flat
// manifold has no structural constraint to relax, so it is unused here.
//
// Complexity: O(rows*cols).
func (s *Matrices) Belongs(x *matrix.Dense, atol float64) bool {
	_ = atol // flat manifold: no tolerance-dependent structure
	if x == nil {
		return false
	}
	if x.Rows() != s.rows || x.Cols() != s.cols {
		return false
	}

	// Realness: every entry must be a finite float.
	return matrix.ValidateFinite(x) == nil
}

// RandomPoint samples nSamples matrices with entries i.i.d. uniform in
// [-bound, bound].
// Stage 1 (Validate): nSamples ≥ 1.
// Stage 2 (Execute): one derived RNG stream per sample (decorrelated via
// deriveSeed) filled in fixed i→j order.
//
// Determinism: identical (nSamples, bound, seed) ⇒ identical batch;
// seed==0 selects the fixed default seed.
// Complexity: O(nSamples * rows * cols).
func (s *Matrices) RandomPoint(nSamples int, bound float64, seed int64) ([]*matrix.Dense, error) {
	if nSamples < 1 {
		return nil, ErrSampleCount
	}
	if bound < 0 {
		bound = -bound // magnitude bound; sign carries no meaning
	}

	base := seed
	if base == 0 {
		base = defaultRNGSeed
	}

	out := make([]*matrix.Dense, nSamples)
	var (
		k, i, j int // sample and entry iterators
		err     error
	)
	for k = 0; k < nSamples; k++ {
		// Independent stream per sample keeps batches stable under
		// nSamples changes for the shared prefix.
		rng := rngFromSeed(deriveSeed(base, uint64(k)))
		out[k], err = matrix.NewDense(s.rows, s.cols)
		if err != nil {
			return nil, err
		}
		for i = 0; i < s.rows; i++ {
			for j = 0; j < s.cols; j++ {
				// Float64 ∈ [0,1) mapped affinely onto [-bound, bound).
				_ = out[k].Set(i, j, (2*rng.Float64()-1)*bound)
			}
		}
	}

	return out, nil
}

// Mul3 computes the associative triple product a·b·c, the operation the
// permutation action uses for conjugation. Delegates to the kernel.
// Complexity: O(n^3) for square operands.
func (s *Matrices) Mul3(a, b, c *matrix.Dense) (*matrix.Dense, error) {
	return matrix.Mul3(a, b, c)
}
