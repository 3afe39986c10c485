package graphspace_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphspace/graphspace"
	"github.com/katalvlaran/graphspace/matrix"
)

func TestPoints_Constructors(t *testing.T) {
	a := mustDense(t, [][]float64{{0, 1}, {1, 0}})
	b := mustDense(t, [][]float64{{0, 2}, {2, 0}})

	single := graphspace.FromMatrix(a)
	require.True(t, single.Single())
	require.Equal(t, 1, single.Len())
	require.Same(t, a, single.One()) // the matrix itself, no copy

	batch := graphspace.FromMatrices([]*matrix.Dense{a, b})
	require.False(t, batch.Single())
	require.Equal(t, 2, batch.Len())
	require.Same(t, b, batch.At(1))

	// A batch of one is still a batch: rank comes from the
	// constructor, not the length.
	one := graphspace.FromMatrices([]*matrix.Dense{a})
	require.False(t, one.Single())
	require.Equal(t, 1, one.Len())
}

func TestPoints_FromGraphs(t *testing.T) {
	a := mustDense(t, [][]float64{{0, 1}, {1, 0}})
	b := mustDense(t, [][]float64{{0, 3}, {3, 0}})
	ga := graphspace.NewGraph(a, 7, 8) // labels do not enter the geometry
	gb := graphspace.NewGraph(b)

	single := graphspace.FromGraph(ga)
	require.True(t, single.Single())
	require.Same(t, a, single.One()) // only the adjacency is carried

	batch := graphspace.FromGraphs([]*graphspace.Graph{ga, gb})
	require.False(t, batch.Single())
	require.Same(t, b, batch.At(1))
}

func TestPoints_AllIsDetached(t *testing.T) {
	a := mustDense(t, [][]float64{{0, 1}, {1, 0}})
	b := mustDense(t, [][]float64{{0, 2}, {2, 0}})
	pts := graphspace.FromMatrices([]*matrix.Dense{a, b})

	got := pts.All()
	got[0] = nil // caller may scribble on the returned slice
	require.Same(t, a, pts.At(0))
}

func TestPoints_ZeroValueRejected(t *testing.T) {
	space, err := graphspace.NewSpace(2)
	require.NoError(t, err)

	var empty graphspace.Points
	require.Equal(t, 0, empty.Len())
	_, err = space.SetToArray(empty)
	require.ErrorIs(t, err, graphspace.ErrEmptyPoints)
}
