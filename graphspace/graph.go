package graphspace

import (
	"encoding/binary"
	"fmt"
	"hash/fnv"
	"math"
	"strconv"

	"github.com/katalvlaran/graphspace/core"
	"github.com/katalvlaran/graphspace/matrix"
)

// Graph is a single graph-space observation: an adjacency matrix plus
// an optional per-node label vector (len(Label) == nodes, or nil for
// unlabelled graphs).
//
// Construction performs no validation; shape and finiteness are
// enforced where they matter, by Space.Belongs and the operations
// themselves.
type Graph struct {
	Adj   *matrix.Dense
	Label []float64
}

// NewGraph wraps an adjacency matrix, optionally with one label per
// node. No labels means an unlabelled graph (Label stays nil).
func NewGraph(adj *matrix.Dense, label ...float64) *Graph {
	g := &Graph{Adj: adj}
	if len(label) > 0 {
		g.Label = append([]float64(nil), label...)
	}
	return g
}

// Equal reports structural equality: identical adjacency entries
// (bit-for-bit) and identical labels. A nil label block only equals
// another nil label block.
func (g *Graph) Equal(o *Graph) bool {
	if g == nil || o == nil {
		return g == o
	}
	if !g.Adj.Equal(o.Adj) {
		return false
	}
	if len(g.Label) != len(o.Label) {
		return false
	}
	for i, v := range g.Label {
		if math.Float64bits(v) != math.Float64bits(o.Label[i]) {
			return false
		}
	}
	return true
}

// Hash returns an FNV-1a digest of the graph's canonical byte image:
// shape, adjacency entries in row-major order, then the label block.
// Equal graphs hash identically; the converse is not guaranteed.
func (g *Graph) Hash() uint64 {
	h := fnv.New64a()
	var buf [8]byte

	writeU64 := func(v uint64) {
		binary.BigEndian.PutUint64(buf[:], v)
		_, _ = h.Write(buf[:])
	}

	writeU64(uint64(g.Adj.Rows()))
	writeU64(uint64(g.Adj.Cols()))
	for _, v := range g.Adj.Flatten() {
		writeU64(math.Float64bits(v))
	}
	// Label length doubles as the nil/present discriminator.
	writeU64(uint64(len(g.Label)))
	for _, v := range g.Label {
		writeU64(math.Float64bits(v))
	}
	return h.Sum64()
}

// ToArray flattens the graph into a single vector: the adjacency in
// row-major order, followed by the labels. Unlabelled graphs omit the
// label block entirely, so the result has length n² or n²+n.
func (g *Graph) ToArray() []float64 {
	flat := g.Adj.Flatten()
	if g.Label == nil {
		return flat
	}
	return append(flat, g.Label...)
}

// ToCore exports the graph as a directed weighted core.Graph with
// loops enabled: one vertex per node (IDs "0".."n-1", Attr from the
// label or 0), one edge per nonzero adjacency entry.
//
// Complexity: O(n²).
func (g *Graph) ToCore() (*core.Graph, error) {
	if err := matrix.ValidateNotNil(g.Adj); err != nil {
		return nil, fmt.Errorf("%s: %w", opToCore, err)
	}
	if err := matrix.ValidateSquare(g.Adj); err != nil {
		return nil, fmt.Errorf("%s: %w", opToCore, err)
	}
	n := g.Adj.Rows()

	out := core.NewGraph(core.WithDirected(true), core.WithWeighted(), core.WithLoops())
	for i := 0; i < n; i++ {
		var attr float64
		if g.Label != nil && i < len(g.Label) {
			attr = g.Label[i]
		}
		if err := out.AddVertex(strconv.Itoa(i), attr); err != nil {
			return nil, fmt.Errorf("%s: %w", opToCore, err)
		}
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			w, err := g.Adj.At(i, j)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", opToCore, err)
			}
			if w == 0 {
				continue
			}
			if err := out.AddEdge(strconv.Itoa(i), strconv.Itoa(j), w); err != nil {
				return nil, fmt.Errorf("%s: %w", opToCore, err)
			}
		}
	}
	return out, nil
}
