package graphspace

import (
	"github.com/katalvlaran/graphspace/manifold"
	"github.com/katalvlaran/graphspace/matrix"
)

// Points is a normalized graph argument: either one adjacency matrix
// or an ordered batch of them. The four constructors are the closed
// set of accepted input shapes; normalization to the internal batch
// happens exactly once there, and every operation works on the batch,
// squeezing results back when the input was single.
//
// The zero value holds no graphs and is rejected by operations with
// ErrEmptyPoints.
type Points struct {
	mats   []*matrix.Dense
	single bool
}

// FromMatrix wraps one adjacency matrix as a single point.
func FromMatrix(m *matrix.Dense) Points {
	return Points{mats: []*matrix.Dense{m}, single: true}
}

// FromMatrices wraps an ordered batch of adjacency matrices. The slice
// header is copied; the matrices are shared.
func FromMatrices(ms []*matrix.Dense) Points {
	return Points{mats: append([]*matrix.Dense(nil), ms...)}
}

// FromGraph wraps one Graph observation as a single point. Labels do
// not participate in the geometry; only the adjacency is carried.
func FromGraph(g *Graph) Points {
	return Points{mats: []*matrix.Dense{g.Adj}, single: true}
}

// FromGraphs wraps an ordered batch of Graph observations.
func FromGraphs(gs []*Graph) Points {
	mats := make([]*matrix.Dense, len(gs))
	for i, g := range gs {
		mats[i] = g.Adj
	}
	return Points{mats: mats}
}

// Len returns the number of graphs held.
func (p Points) Len() int { return len(p.mats) }

// Single reports whether the value was constructed from a single
// graph, i.e. whether results should squeeze.
func (p Points) Single() bool { return p.single }

// At returns the i-th matrix of the batch.
func (p Points) At(i int) *matrix.Dense { return p.mats[i] }

// One returns the sole matrix of a single-point value. For batches it
// returns the first item; prefer At in that case.
func (p Points) One() *matrix.Dense { return p.mats[0] }

// All returns the batch as a slice. The header is fresh; the matrices
// are shared.
func (p Points) All() []*matrix.Dense {
	return append([]*matrix.Dense(nil), p.mats...)
}

// broadcastAt returns the i-th item, repeating a single point across
// any index. Batch helpers use it to pair singles against batches.
func (p Points) broadcastAt(i int) *matrix.Dense {
	if p.single {
		return p.mats[0]
	}
	return p.mats[i]
}

// Values is a batch of scalar results mirroring the Points squeeze
// convention.
type Values struct {
	vals   []float64
	single bool
}

// Len returns the number of values held.
func (v Values) Len() int { return len(v.vals) }

// Single reports whether the originating inputs were all single.
func (v Values) Single() bool { return v.single }

// At returns the i-th value.
func (v Values) At(i int) float64 { return v.vals[i] }

// One returns the sole value of a single result.
func (v Values) One() float64 { return v.vals[0] }

// All returns the values as a fresh slice.
func (v Values) All() []float64 {
	return append([]float64(nil), v.vals...)
}

// Curves is a batch of geodesics mirroring the Points squeeze
// convention.
type Curves struct {
	curves []manifold.Curve
	single bool
}

// Len returns the number of curves held.
func (c Curves) Len() int { return len(c.curves) }

// Single reports whether the originating inputs were all single.
func (c Curves) Single() bool { return c.single }

// At returns the i-th curve.
func (c Curves) At(i int) manifold.Curve { return c.curves[i] }

// One returns the sole curve of a single result.
func (c Curves) One() manifold.Curve { return c.curves[0] }

// All returns the curves as a fresh slice.
func (c Curves) All() []manifold.Curve {
	return append([]manifold.Curve(nil), c.curves...)
}
