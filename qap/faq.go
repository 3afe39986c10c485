package qap

import (
	"fmt"

	"github.com/katalvlaran/graphspace/matrix"
)

// Solve computes an approximate solution to the graph-matching QAP
//
//	extremize  trace(Aᵀ · P · B · Pᵀ)  over permutation matrices P,
//
// and returns the permutation p with p[i] = node of b matched to node
// i of a. The sense (maximize or minimize) comes from opts.Maximize.
//
// Stage 1 (Validate): both matrices must be non-nil, square, of the
// same order and entirely finite; opts must pass Options.validate.
// Stage 2 (Execute): Frank–Wolfe on the doubly-stochastic relaxation,
// barycenter start, LAP direction finding, exact quadratic line
// search, then a final LAP projection onto permutations.
//
// The run is deterministic and stops at opts.MaxIter or once the
// scaled step norm falls under opts.Tol, whichever comes first.
//
// Complexity: O(MaxIter · n³).
func Solve(a, b *matrix.Dense, opts Options) ([]int, error) {
	if err := validateInputs(a, b); err != nil {
		return nil, err
	}
	if err := opts.validate(); err != nil {
		return nil, err
	}
	n := a.Rows()

	// Order 1 has a single permutation; skip the machinery.
	if n == 1 {
		return []int{0}, nil
	}

	at, err := matrix.Transpose(a)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opSolve, err)
	}
	bt, err := matrix.Transpose(b)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opSolve, err)
	}

	// Barycenter start: the flat doubly-stochastic matrix J/n.
	p, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opSolve, err)
	}
	inv := 1.0 / float64(n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			_ = p.Set(i, j, inv)
		}
	}

	cost := make([]float64, n*n)
	for iter := 0; iter < opts.MaxIter; iter++ {
		// ∇f(P) = A·P·Bᵀ + Aᵀ·P·B.
		g1, gErr := matrix.Mul3(a, p, bt)
		if gErr != nil {
			return nil, fmt.Errorf("%s: %w", opSolve, gErr)
		}
		g2, gErr := matrix.Mul3(at, p, b)
		if gErr != nil {
			return nil, fmt.Errorf("%s: %w", opSolve, gErr)
		}
		grad, gErr := matrix.Add(g1, g2)
		if gErr != nil {
			return nil, fmt.Errorf("%s: %w", opSolve, gErr)
		}

		// Frank–Wolfe direction: the permutation extremizing the
		// linearized objective, found by a linear assignment on the
		// gradient (negated when maximizing, LAP minimizes).
		flat := grad.Flatten()
		if opts.Maximize {
			for k := range flat {
				cost[k] = -flat[k]
			}
		} else {
			copy(cost, flat)
		}
		q := permutationMatrix(solveLAP(cost, n), n)

		d, dErr := matrix.Sub(q, p)
		if dErr != nil {
			return nil, fmt.Errorf("%s: %w", opSolve, dErr)
		}

		// Exact line search. With f(P+αD) quadratic in α:
		//   f(P+αD) = f(P) + α·b1 + α²·a2,
		//   a2 = ⟨A, D·B·Dᵀ⟩,  b1 = ⟨A, D·B·Pᵀ⟩ + ⟨A, P·B·Dᵀ⟩.
		a2, qErr := quadForm(a, b, d, d)
		if qErr != nil {
			return nil, qErr
		}
		b1a, qErr := quadForm(a, b, d, p)
		if qErr != nil {
			return nil, qErr
		}
		b1b, qErr := quadForm(a, b, p, d)
		if qErr != nil {
			return nil, qErr
		}
		b1 := b1a + b1b
		alpha := stepSize(a2, b1, opts.Maximize)

		if alpha == 0 {
			break
		}
		step, sErr := matrix.Scale(d, alpha)
		if sErr != nil {
			return nil, fmt.Errorf("%s: %w", opSolve, sErr)
		}
		p, sErr = matrix.Add(p, step)
		if sErr != nil {
			return nil, fmt.Errorf("%s: %w", opSolve, sErr)
		}

		norm, nErr := matrix.FrobeniusNorm(step)
		if nErr != nil {
			return nil, fmt.Errorf("%s: %w", opSolve, nErr)
		}
		if norm < opts.Tol {
			break
		}
	}

	// Project the relaxed solution back onto permutations: maximize
	// ⟨P_perm, P⟩, i.e. LAP-minimize the negated entries.
	flat := p.Flatten()
	for k := range flat {
		flat[k] = -flat[k]
	}
	return solveLAP(flat, n), nil
}

// validateInputs enforces the Solve input contract.
func validateInputs(a, b *matrix.Dense) error {
	if err := matrix.ValidateNotNil(a); err != nil {
		return fmt.Errorf("%s: %w", opSolve, err)
	}
	if err := matrix.ValidateNotNil(b); err != nil {
		return fmt.Errorf("%s: %w", opSolve, err)
	}
	if a.Rows() != a.Cols() {
		return fmt.Errorf("%s: got %d×%d: %w", opSolve, a.Rows(), a.Cols(), ErrNonSquare)
	}
	if b.Rows() != b.Cols() {
		return fmt.Errorf("%s: got %d×%d: %w", opSolve, b.Rows(), b.Cols(), ErrNonSquare)
	}
	if a.Rows() != b.Rows() {
		return fmt.Errorf("%s: orders %d and %d: %w", opSolve, a.Rows(), b.Rows(), ErrDimensionMismatch)
	}
	if err := matrix.ValidateFinite(a); err != nil {
		return fmt.Errorf("%s: %w", opSolve, ErrNaNInf)
	}
	if err := matrix.ValidateFinite(b); err != nil {
		return fmt.Errorf("%s: %w", opSolve, ErrNaNInf)
	}
	return nil
}

// quadForm evaluates ⟨A, X·B·Yᵀ⟩, the bilinear form the line search
// is built from.
func quadForm(a, b, x, y *matrix.Dense) (float64, error) {
	yt, err := matrix.Transpose(y)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", opSolve, err)
	}
	m, err := matrix.Mul3(x, b, yt)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", opSolve, err)
	}
	v, err := matrix.Dot(a, m)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", opSolve, err)
	}
	return v, nil
}

// stepSize picks α ∈ [0, 1] extremizing a2·α² + b1·α in the requested
// sense.
func stepSize(a2, b1 float64, maximize bool) float64 {
	if maximize {
		if a2 < 0 {
			return clamp01(-b1 / (2 * a2))
		}
		// Convex along the segment: an endpoint wins.
		if a2+b1 > 0 {
			return 1
		}
		return 0
	}
	if a2 > 0 {
		return clamp01(-b1 / (2 * a2))
	}
	if a2+b1 < 0 {
		return 1
	}
	return 0
}

func clamp01(x float64) float64 {
	switch {
	case x < 0:
		return 0
	case x > 1:
		return 1
	default:
		return x
	}
}

// permutationMatrix builds the n×n 0/1 matrix with a one at
// (i, perm[i]) per row.
func permutationMatrix(perm []int, n int) *matrix.Dense {
	m, _ := matrix.NewDense(n, n)
	for i, j := range perm {
		_ = m.Set(i, j, 1)
	}
	return m
}
