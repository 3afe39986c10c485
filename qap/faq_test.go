package qap_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphspace/matrix"
	"github.com/katalvlaran/graphspace/qap"
)

func mustDense(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFromRows(rows)
	require.NoError(t, err)
	return m
}

// permuted returns P·A·Pᵀ for the permutation p, i.e. A with node i
// relabelled to p[i].
func permuted(t *testing.T, a *matrix.Dense, p []int) *matrix.Dense {
	t.Helper()
	n := a.Rows()
	out, err := matrix.NewDense(n, n)
	require.NoError(t, err)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			v, aErr := a.At(i, j)
			require.NoError(t, aErr)
			require.NoError(t, out.Set(p[i], p[j], v))
		}
	}
	return out
}

// overlap evaluates trace(Aᵀ P B Pᵀ) for a permutation given as a slice.
func overlap(t *testing.T, a, b *matrix.Dense, p []int) float64 {
	t.Helper()
	n := a.Rows()
	var total float64
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			av, err := a.At(i, j)
			require.NoError(t, err)
			bv, err := b.At(p[i], p[j])
			require.NoError(t, err)
			total += av * bv
		}
	}
	return total
}

func TestSolve_IdenticalGraphs(t *testing.T) {
	// Matching a graph against itself must score as well as identity.
	a := mustDense(t, [][]float64{
		{0, 1, 0, 2},
		{1, 0, 3, 0},
		{0, 3, 0, 1},
		{2, 0, 1, 0},
	})
	p, err := qap.Solve(a, a, qap.DefaultOptions())
	require.NoError(t, err)
	require.Len(t, p, 4)

	id := []int{0, 1, 2, 3}
	require.GreaterOrEqual(t, overlap(t, a, a, p), overlap(t, a, a, id))
}

func TestSolve_RecoversPlantedPermutation(t *testing.T) {
	// b is a relabelling of a; FAQ must find an alignment scoring as
	// the planted one (up to graph automorphisms).
	a := mustDense(t, [][]float64{
		{0, 5, 0, 1},
		{5, 0, 2, 0},
		{0, 2, 0, 7},
		{1, 0, 7, 0},
	})
	planted := []int{2, 0, 3, 1}
	b := permuted(t, a, planted)

	p, err := qap.Solve(a, b, qap.DefaultOptions())
	require.NoError(t, err)
	require.Equal(t, overlap(t, a, b, planted), overlap(t, a, b, p)) // perfect recovery
}

func TestSolve_MinimizeSense(t *testing.T) {
	// With Maximize=false the solver avoids, rather than seeks, overlap.
	a := mustDense(t, [][]float64{
		{0, 1, 0},
		{1, 0, 0},
		{0, 0, 0},
	})
	b := mustDense(t, [][]float64{
		{0, 0, 0},
		{0, 0, 1},
		{0, 1, 0},
	})
	opts := qap.DefaultOptions()
	opts.Maximize = false
	p, err := qap.Solve(a, b, opts)
	require.NoError(t, err)
	// Zero overlap is attainable: map a's edge {0,1} off b's edge {1,2}.
	require.Equal(t, 0.0, overlap(t, a, b, p))
}

func TestSolve_OrderOne(t *testing.T) {
	a := mustDense(t, [][]float64{{0}})
	p, err := qap.Solve(a, a, qap.DefaultOptions())
	require.NoError(t, err)
	require.Equal(t, []int{0}, p)
}

func TestSolve_Deterministic(t *testing.T) {
	a := mustDense(t, [][]float64{
		{0, 2, 1},
		{2, 0, 4},
		{1, 4, 0},
	})
	b := permuted(t, a, []int{1, 2, 0})

	first, err := qap.Solve(a, b, qap.DefaultOptions())
	require.NoError(t, err)
	for k := 0; k < 5; k++ {
		again, aErr := qap.Solve(a, b, qap.DefaultOptions())
		require.NoError(t, aErr)
		require.Equal(t, first, again) // same inputs, same permutation
	}
}

func TestSolve_ValidationErrors(t *testing.T) {
	square := mustDense(t, [][]float64{{0, 1}, {1, 0}})
	rect := mustDense(t, [][]float64{{0, 1, 2}, {3, 4, 5}})
	bigger := mustDense(t, [][]float64{{0, 1, 0}, {1, 0, 1}, {0, 1, 0}})
	sick := mustDense(t, [][]float64{{0, math.NaN()}, {1, 0}})

	_, err := qap.Solve(nil, square, qap.DefaultOptions())
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	_, err = qap.Solve(rect, rect, qap.DefaultOptions())
	require.ErrorIs(t, err, qap.ErrNonSquare)

	_, err = qap.Solve(square, bigger, qap.DefaultOptions())
	require.ErrorIs(t, err, qap.ErrDimensionMismatch)

	_, err = qap.Solve(square, sick, qap.DefaultOptions())
	require.ErrorIs(t, err, qap.ErrNaNInf)

	bad := qap.DefaultOptions()
	bad.MaxIter = 0
	_, err = qap.Solve(square, square, bad)
	require.ErrorIs(t, err, qap.ErrBadOptions)

	bad = qap.DefaultOptions()
	bad.Tol = -1
	_, err = qap.Solve(square, square, bad)
	require.ErrorIs(t, err, qap.ErrBadOptions)
}

func BenchmarkSolve16(b *testing.B) {
	// A ring of 16 nodes matched against a rotation of itself.
	n := 16
	a, _ := matrix.NewDense(n, n)
	for i := 0; i < n; i++ {
		_ = a.Set(i, (i+1)%n, 1)
		_ = a.Set((i+1)%n, i, 1)
	}
	perm := make([]int, n)
	for i := range perm {
		perm[i] = (i + 3) % n
	}
	bm, _ := matrix.NewDense(n, n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			v, _ := a.At(i, j)
			_ = bm.Set(perm[i], perm[j], v)
		}
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := qap.Solve(a, bm, qap.DefaultOptions()); err != nil {
			b.Fatal(err)
		}
	}
}
