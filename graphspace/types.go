// Package graphspace - shared contracts, sentinel errors and options.
package graphspace

import (
	"errors"

	"github.com/katalvlaran/graphspace/manifold"
	"github.com/katalvlaran/graphspace/matrix"
)

// Sentinel errors. Compare with errors.Is.
var (
	// ErrBadNodeCount: a space was requested over fewer than one node.
	ErrBadNodeCount = errors.New("graphspace: node count must be >= 1")

	// ErrEmptyPoints: an operation received a Points value holding no
	// graphs (typically the zero value).
	ErrEmptyPoints = errors.New("graphspace: empty points")

	// ErrBatchLen: two batched arguments have different lengths.
	ErrBatchLen = errors.New("graphspace: batch lengths must match")

	// ErrBadPermutation: a permutation is not a bijection on the node
	// set, or has the wrong length.
	ErrBadPermutation = errors.New("graphspace: invalid permutation")

	// ErrBatchedBase: a batched base was matched against a single
	// target. Pass the single graph as the base instead.
	ErrBatchedBase = errors.New("graphspace: batched base with single target; pass the single graph as the base")

	// ErrUnknownMatcher: the matcher name is not one of the registered
	// identifiers.
	ErrUnknownMatcher = errors.New("graphspace: unknown matcher")

	// ErrNilSpace: a Geometry was constructed over a nil Space.
	ErrNilSpace = errors.New("graphspace: nil space")
)

// op tags used in wrapped errors.
const (
	opPermute  = "graphspace.Space.Permute"
	opBelongs  = "graphspace.Space.Belongs"
	opRandom   = "graphspace.Space.RandomPoint"
	opToGraphs = "graphspace.Space.ToGraphs"
	opToArray  = "graphspace.Space.SetToArray"
	opMatch    = "graphspace.Match"
	opDist     = "graphspace.Geometry.Dist"
	opGeodesic = "graphspace.Geometry.Geodesic"
	opToCore   = "graphspace.Graph.ToCore"
)

// TotalSpace is the ambient-space contract a Space computes through.
// *manifold.Matrices is the default implementation.
type TotalSpace interface {
	// Belongs reports membership of x up to atol.
	Belongs(x *matrix.Dense, atol float64) bool

	// RandomPoint draws nSamples points with entries in [-bound, bound).
	RandomPoint(nSamples int, bound float64, seed int64) ([]*matrix.Dense, error)

	// Mul3 computes a·b·c, the kernel of the permutation action.
	Mul3(a, b, c *matrix.Dense) (*matrix.Dense, error)
}

// Metric is the ambient-metric contract a Geometry measures with.
// *manifold.MatricesMetric is the default implementation.
type Metric interface {
	// Dist returns the distance between two ambient points.
	Dist(p, q *matrix.Dense) (float64, error)

	// Geodesic returns the constant-speed curve from p to q on [0, 1].
	Geodesic(p, q *matrix.Dense) (manifold.Curve, error)
}

// SpaceOption configures NewSpace.
type SpaceOption func(*Space)

// WithTotalSpace overrides the ambient space the quotient is built
// over. The default is manifold.NewMatrices(nodes, nodes).
func WithTotalSpace(ts TotalSpace) SpaceOption {
	return func(s *Space) { s.total = ts }
}

// WithSeed fixes the sampling seed for RandomPoint. Zero selects the
// package-wide default seed, so runs stay reproducible either way.
func WithSeed(seed int64) SpaceOption {
	return func(s *Space) { s.seed = seed }
}

// GeometryOption configures NewGeometry.
type GeometryOption func(*Geometry)

// WithMetric overrides the ambient metric. The default is
// manifold.NewMatricesMetric(nodes, nodes).
func WithMetric(m Metric) GeometryOption {
	return func(g *Geometry) { g.metric = m }
}
