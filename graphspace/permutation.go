package graphspace

import (
	"fmt"

	"github.com/katalvlaran/graphspace/matrix"
)

// Permutation is a node relabelling on {0..n-1}: position i holds the
// node that takes place i after the action, matching the convention of
// Space.Permute (out[i][j] = in[p[i]][p[j]]) and of the matchers.
type Permutation []int

// IdentityPermutation returns [0, 1, …, n-1].
func IdentityPermutation(n int) Permutation {
	p := make(Permutation, n)
	for i := range p {
		p[i] = i
	}
	return p
}

// IsIdentity reports whether p maps every node to itself.
func (p Permutation) IsIdentity() bool {
	for i, v := range p {
		if v != i {
			return false
		}
	}
	return true
}

// Validate checks that p is a bijection on {0..n-1}.
func (p Permutation) Validate(n int) error {
	if len(p) != n {
		return fmt.Errorf("length %d for %d nodes: %w", len(p), n, ErrBadPermutation)
	}
	seen := make([]bool, n)
	for i, v := range p {
		if v < 0 || v >= n {
			return fmt.Errorf("entry p[%d]=%d out of range: %w", i, v, ErrBadPermutation)
		}
		if seen[v] {
			return fmt.Errorf("entry %d repeated: %w", v, ErrBadPermutation)
		}
		seen[v] = true
	}
	return nil
}

// Compose returns the single permutation equivalent to acting with p
// first and then with q: Permute(Permute(G, p), q) == Permute(G,
// p.Compose(q)).
func (p Permutation) Compose(q Permutation) Permutation {
	out := make(Permutation, len(q))
	for i, v := range q {
		out[i] = p[v]
	}
	return out
}

// Matrix returns the 0/1 permutation matrix with a one at (i, p[i]),
// so that Matrix·A·Matrixᵀ realizes the Space.Permute action.
func (p Permutation) Matrix() *matrix.Dense {
	n := len(p)
	m, _ := matrix.NewDense(n, n)
	for i, v := range p {
		_ = m.Set(i, v, 1)
	}
	return m
}
