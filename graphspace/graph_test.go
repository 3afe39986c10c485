package graphspace_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphspace/graphspace"
	"github.com/katalvlaran/graphspace/matrix"
)

func mustDense(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFromRows(rows)
	require.NoError(t, err)
	return m
}

func TestGraph_Equal(t *testing.T) {
	adj := [][]float64{{0, 1}, {1, 0}}
	a := graphspace.NewGraph(mustDense(t, adj), 1, 2)
	b := graphspace.NewGraph(mustDense(t, adj), 1, 2)
	c := graphspace.NewGraph(mustDense(t, adj)) // unlabelled

	require.True(t, a.Equal(b))  // same entries, same labels
	require.False(t, a.Equal(c)) // labelled vs unlabelled differ
	require.False(t, c.Equal(a))

	d := graphspace.NewGraph(mustDense(t, [][]float64{{0, 2}, {1, 0}}), 1, 2)
	require.False(t, a.Equal(d)) // one adjacency entry differs
}

func TestGraph_HashConsistentWithEqual(t *testing.T) {
	adj := [][]float64{{0, 3, 0}, {3, 0, 1}, {0, 1, 0}}
	a := graphspace.NewGraph(mustDense(t, adj), 5, 6, 7)
	b := graphspace.NewGraph(mustDense(t, adj), 5, 6, 7)
	require.Equal(t, a.Hash(), b.Hash()) // Equal implies same Hash

	c := graphspace.NewGraph(mustDense(t, adj))
	require.NotEqual(t, a.Hash(), c.Hash()) // label block participates
}

func TestGraph_ToArray(t *testing.T) {
	adj := mustDense(t, [][]float64{{0, 1}, {2, 0}})

	unlabelled := graphspace.NewGraph(adj)
	require.Equal(t, []float64{0, 1, 2, 0}, unlabelled.ToArray()) // n² entries, no label block

	labelled := graphspace.NewGraph(adj, 9, 8)
	require.Equal(t, []float64{0, 1, 2, 0, 9, 8}, labelled.ToArray()) // n²+n entries
}

func TestGraph_ToCore(t *testing.T) {
	g := graphspace.NewGraph(mustDense(t, [][]float64{
		{0, 2, 0},
		{0, 0, 3},
		{0, 0, 1},
	}), 10, 20, 30)

	cg, err := g.ToCore()
	require.NoError(t, err)
	require.True(t, cg.Directed())
	require.True(t, cg.Weighted())
	require.Equal(t, 3, cg.VertexCount())
	require.Equal(t, 3, cg.EdgeCount()) // one edge per nonzero entry, loop included

	vs := cg.Vertices()
	require.Equal(t, "0", vs[0].ID)
	require.Equal(t, 10.0, vs[0].Attr) // label carried as vertex attribute

	es := cg.Edges()
	require.Equal(t, "0", es[0].From)
	require.Equal(t, "1", es[0].To)
	require.Equal(t, 2.0, es[0].Weight)
}

func TestGraph_ToCore_NonSquare(t *testing.T) {
	g := graphspace.NewGraph(mustDense(t, [][]float64{{0, 1, 2}, {3, 4, 5}}))
	_, err := g.ToCore()
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}
