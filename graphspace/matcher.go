package graphspace

import (
	"fmt"

	"github.com/katalvlaran/graphspace/matrix"
	"github.com/katalvlaran/graphspace/qap"
)

// Registered matcher names for NewMatcher and the ByName helpers.
const (
	// MatcherID selects the identity matcher.
	MatcherID = "ID"

	// MatcherFAQ selects the FAQ graph-matching solver.
	MatcherFAQ = "FAQ"
)

// Matcher aligns target graphs to base graphs, returning one
// permutation per pair such that Permute(target, perm) best matches
// the base.
//
// Rank rules shared by all implementations:
//   - single base, single target: one permutation;
//   - single base, batch target: the base broadcasts, one permutation
//     per target;
//   - batch base, batch target: positional pairs, equal lengths
//     required (ErrBatchLen);
//   - batch base, single target: ErrBatchedBase; pass the single
//     graph as the base instead.
type Matcher interface {
	Match(base, target Points) ([]Permutation, error)
}

// NewMatcher resolves a matcher by registered name. Unknown names fail
// with ErrUnknownMatcher before any numeric work.
func NewMatcher(name string) (Matcher, error) {
	switch name {
	case MatcherID:
		return IdentityMatcher{}, nil
	case MatcherFAQ:
		return FAQMatcher{Options: qap.DefaultOptions()}, nil
	default:
		return nil, fmt.Errorf("%s: %q: %w", opMatch, name, ErrUnknownMatcher)
	}
}

// IdentityMatcher matches by node order: every pair aligns with the
// identity permutation. Exact for graphs stored in the same labelling,
// and the cheapest baseline to compare FAQ against.
type IdentityMatcher struct{}

// Match returns the identity permutation for each pair.
//
// Complexity: O(k·n).
func (IdentityMatcher) Match(base, target Points) ([]Permutation, error) {
	return matchPairs(base, target, func(_, t *matrix.Dense) (Permutation, error) {
		return IdentityPermutation(t.Rows()), nil
	})
}

// FAQMatcher aligns each pair with the FAQ quadratic-assignment
// solver, maximizing adjacency overlap. Solver errors surface
// verbatim; no retries.
type FAQMatcher struct {
	// Options is handed to qap.Solve per pair. NewMatcher fills in
	// qap.DefaultOptions().
	Options qap.Options
}

// Match runs qap.Solve per pair.
//
// Complexity: O(k·MaxIter·n³).
func (m FAQMatcher) Match(base, target Points) ([]Permutation, error) {
	return matchPairs(base, target, func(b, t *matrix.Dense) (Permutation, error) {
		perm, err := qap.Solve(b, t, m.Options)
		if err != nil {
			return nil, err
		}
		return Permutation(perm), nil
	})
}

// matchPairs implements the shared rank dispatch: it validates the
// base/target rank combination, then calls match once per pair in
// target order (base order when both are batched).
func matchPairs(base, target Points, match func(b, t *matrix.Dense) (Permutation, error)) ([]Permutation, error) {
	if base.Len() == 0 || target.Len() == 0 {
		return nil, fmt.Errorf("%s: %w", opMatch, ErrEmptyPoints)
	}
	if !base.Single() && target.Single() {
		return nil, fmt.Errorf("%s: %w", opMatch, ErrBatchedBase)
	}
	if !base.Single() && !target.Single() && base.Len() != target.Len() {
		return nil, fmt.Errorf("%s: %d base vs %d target: %w",
			opMatch, base.Len(), target.Len(), ErrBatchLen)
	}

	out := make([]Permutation, target.Len())
	for i := range out {
		perm, err := match(base.broadcastAt(i), target.At(i))
		if err != nil {
			return nil, fmt.Errorf("%s: %w", opMatch, err)
		}
		out[i] = perm
	}
	return out, nil
}
