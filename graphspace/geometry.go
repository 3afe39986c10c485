package graphspace

import (
	"fmt"

	"github.com/katalvlaran/graphspace/manifold"
)

// Geometry is the quotient metric on a Space: align with a Matcher,
// then measure with the ambient Metric. Stateless per call, no caching
// of matchings; safe for concurrent use.
type Geometry struct {
	space  *Space
	metric Metric
}

// NewGeometry builds the quotient geometry over space. Absent
// WithMetric the ambient metric is the Frobenius
// manifold.NewMatricesMetric(nodes, nodes).
func NewGeometry(space *Space, opts ...GeometryOption) (*Geometry, error) {
	if space == nil {
		return nil, fmt.Errorf("graphspace.NewGeometry: %w", ErrNilSpace)
	}
	g := &Geometry{space: space}
	for _, opt := range opts {
		opt(g)
	}
	if g.metric == nil {
		m, err := manifold.NewMatricesMetric(space.Nodes(), space.Nodes())
		if err != nil {
			return nil, fmt.Errorf("graphspace.NewGeometry: %w", err)
		}
		g.metric = m
	}
	return g, nil
}

// Space returns the underlying quotient space.
func (g *Geometry) Space() *Space { return g.space }

// Dist computes quotient distances between a and b: the lower-rank
// argument becomes the matching base (first argument on equal rank),
// the other side is aligned to it pair by pair, and the ambient metric
// measures each aligned pair.
//
// A single graph against a batch of k yields k values in batch order.
// The result is exactly symmetric for the identity matcher; for FAQ it
// is symmetric up to the solver's approximation.
//
// Complexity: matcher cost plus O(k·n³) for alignment and measurement.
func (g *Geometry) Dist(a, b Points, matcher Matcher) (Values, error) {
	base, other := orderByRank(a, b)

	aligned, err := g.align(base, other, matcher, opDist)
	if err != nil {
		return Values{}, err
	}

	vals := make([]float64, aligned.Len())
	for i := range vals {
		d, dErr := g.metric.Dist(base.broadcastAt(i), aligned.At(i))
		if dErr != nil {
			return Values{}, fmt.Errorf("%s: %w", opDist, dErr)
		}
		vals[i] = d
	}
	return Values{vals: vals, single: a.Single() && b.Single()}, nil
}

// Geodesic computes quotient geodesics from base to end: end is
// aligned to base pair by pair, then the ambient metric provides the
// constant-speed curve per pair. Unlike Dist the argument roles are
// fixed, so a batched base with a single end fails with
// ErrBatchedBase.
func (g *Geometry) Geodesic(base, end Points, matcher Matcher) (Curves, error) {
	aligned, err := g.align(base, end, matcher, opGeodesic)
	if err != nil {
		return Curves{}, err
	}

	curves := make([]manifold.Curve, aligned.Len())
	for i := range curves {
		c, cErr := g.metric.Geodesic(base.broadcastAt(i), aligned.At(i))
		if cErr != nil {
			return Curves{}, fmt.Errorf("%s: %w", opGeodesic, cErr)
		}
		curves[i] = c
	}
	return Curves{curves: curves, single: base.Single() && end.Single()}, nil
}

// DistByName is Dist with the matcher resolved by registered name
// first, so configuration errors precede numeric work.
func (g *Geometry) DistByName(a, b Points, name string) (Values, error) {
	m, err := NewMatcher(name)
	if err != nil {
		return Values{}, err
	}
	return g.Dist(a, b, m)
}

// GeodesicByName is Geodesic with the matcher resolved by registered
// name first.
func (g *Geometry) GeodesicByName(base, end Points, name string) (Curves, error) {
	m, err := NewMatcher(name)
	if err != nil {
		return Curves{}, err
	}
	return g.Geodesic(base, end, m)
}

// align matches other against base and applies the resulting
// permutations through the space's action.
func (g *Geometry) align(base, other Points, matcher Matcher, opTag string) (Points, error) {
	perms, err := matcher.Match(base, other)
	if err != nil {
		return Points{}, fmt.Errorf("%s: %w", opTag, err)
	}
	aligned, err := g.space.Permute(other, perms)
	if err != nil {
		return Points{}, fmt.Errorf("%s: %w", opTag, err)
	}
	return aligned, nil
}

// orderByRank picks the matching base for Dist: the single argument
// when ranks differ, the first argument otherwise.
func orderByRank(a, b Points) (base, other Points) {
	if !a.Single() && b.Single() {
		return b, a
	}
	return a, b
}
