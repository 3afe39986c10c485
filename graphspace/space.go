package graphspace

import (
	"fmt"

	"github.com/katalvlaran/graphspace/core"
	"github.com/katalvlaran/graphspace/manifold"
	"github.com/katalvlaran/graphspace/matrix"
)

// Space is the set of graphs on a fixed number of nodes, quotiented by
// node relabelling. It owns the permutation action and delegates the
// ambient-space questions (membership, sampling, the triple product)
// to its TotalSpace.
//
// Immutable after construction and safe for concurrent use.
type Space struct {
	nodes int
	total TotalSpace
	seed  int64
}

// NewSpace builds the graph space over nodes nodes.
//
// Stage 1 (Validate): nodes must be ≥ 1.
// Stage 2 (Configure): apply options; absent WithTotalSpace the
// ambient space is manifold.NewMatrices(nodes, nodes).
func NewSpace(nodes int, opts ...SpaceOption) (*Space, error) {
	if nodes < 1 {
		return nil, fmt.Errorf("graphspace.NewSpace: got %d: %w", nodes, ErrBadNodeCount)
	}
	s := &Space{nodes: nodes}
	for _, opt := range opts {
		opt(s)
	}
	if s.total == nil {
		ts, err := manifold.NewMatrices(nodes, nodes)
		if err != nil {
			return nil, fmt.Errorf("graphspace.NewSpace: %w", err)
		}
		s.total = ts
	}
	return s, nil
}

// Nodes returns the number of nodes per graph.
func (s *Space) Nodes() int { return s.nodes }

// Belongs reports, per input graph, whether it lies in the total space
// up to atol. Membership of a representative is membership of its
// orbit, so no alignment is needed.
//
// Complexity: O(k·n²) for k inputs.
func (s *Space) Belongs(p Points, atol float64) ([]bool, error) {
	if p.Len() == 0 {
		return nil, fmt.Errorf("%s: %w", opBelongs, ErrEmptyPoints)
	}
	out := make([]bool, p.Len())
	for i := 0; i < p.Len(); i++ {
		out[i] = s.total.Belongs(p.At(i), atol)
	}
	return out, nil
}

// RandomPoint draws nSamples graphs from the total space with entries
// in [-bound, bound). One sample yields a single Points value, more
// yield a batch. Sampling is deterministic for a fixed space seed.
func (s *Space) RandomPoint(nSamples int, bound float64) (Points, error) {
	mats, err := s.total.RandomPoint(nSamples, bound, s.seed)
	if err != nil {
		return Points{}, fmt.Errorf("%s: %w", opRandom, err)
	}
	if nSamples == 1 {
		return FromMatrix(mats[0]), nil
	}
	return FromMatrices(mats), nil
}

// SetToArray returns the canonical batch of adjacency matrices behind
// a Points value, in input order.
func (s *Space) SetToArray(p Points) ([]*matrix.Dense, error) {
	if p.Len() == 0 {
		return nil, fmt.Errorf("%s: %w", opToArray, ErrEmptyPoints)
	}
	return p.All(), nil
}

// ToGraphs exports every input as a directed weighted core.Graph, in
// input order.
func (s *Space) ToGraphs(p Points) ([]*core.Graph, error) {
	if p.Len() == 0 {
		return nil, fmt.Errorf("%s: %w", opToGraphs, ErrEmptyPoints)
	}
	out := make([]*core.Graph, p.Len())
	for i := 0; i < p.Len(); i++ {
		g, err := (&Graph{Adj: p.At(i)}).ToCore()
		if err != nil {
			return nil, fmt.Errorf("%s: %w", opToGraphs, err)
		}
		out[i] = g
	}
	return out, nil
}

// Permute applies node relabellings to graphs: for each pair the
// result is P·A·Pᵀ, i.e. out[i][j] = in[p[i]][p[j]].
//
// Rank rules: a single graph takes exactly one permutation; a batch
// takes one permutation per graph (ErrBatchLen otherwise). Output rank
// and order mirror the input. Identity permutations return the input
// matrix itself, bit-for-bit.
//
// Stage 1 (Validate): non-empty input, matching batch lengths, every
// permutation a bijection on the node set.
// Stage 2 (Execute): conjugation through the total space's Mul3.
//
// Complexity: O(k·n³), identity pairs O(n).
func (s *Space) Permute(p Points, perms []Permutation) (Points, error) {
	if p.Len() == 0 {
		return Points{}, fmt.Errorf("%s: %w", opPermute, ErrEmptyPoints)
	}
	if len(perms) != p.Len() {
		return Points{}, fmt.Errorf("%s: %d graphs vs %d permutations: %w",
			opPermute, p.Len(), len(perms), ErrBatchLen)
	}
	for _, perm := range perms {
		if err := perm.Validate(s.nodes); err != nil {
			return Points{}, fmt.Errorf("%s: %w", opPermute, err)
		}
	}

	out := make([]*matrix.Dense, p.Len())
	for i := 0; i < p.Len(); i++ {
		if perms[i].IsIdentity() {
			out[i] = p.At(i)
			continue
		}
		pm := perms[i].Matrix()
		pmt, err := matrix.Transpose(pm)
		if err != nil {
			return Points{}, fmt.Errorf("%s: %w", opPermute, err)
		}
		conj, err := s.total.Mul3(pm, p.At(i), pmt)
		if err != nil {
			return Points{}, fmt.Errorf("%s: %w", opPermute, err)
		}
		out[i] = conj
	}
	if p.Single() {
		return FromMatrix(out[0]), nil
	}
	return FromMatrices(out), nil
}
