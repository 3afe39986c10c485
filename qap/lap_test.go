package qap

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// lapCost sums the assigned entries of a flat cost matrix.
func lapCost(cost []float64, n int, assign []int) float64 {
	var total float64
	for i, j := range assign {
		total += cost[i*n+j]
	}
	return total
}

func TestSolveLAP_DiagonalOptimum(t *testing.T) {
	// The diagonal is strictly cheapest in every row.
	cost := []float64{
		1, 5, 5,
		5, 1, 5,
		5, 5, 1,
	}
	assign := solveLAP(cost, 3)
	require.Equal(t, []int{0, 1, 2}, assign) // identity is optimal
	require.Equal(t, 3.0, lapCost(cost, 3, assign))
}

func TestSolveLAP_ForcedCrossing(t *testing.T) {
	// Greedy row-by-row picks (0,0) and gets stuck with 9; the
	// optimum crosses.
	cost := []float64{
		1, 2,
		2, 9,
	}
	assign := solveLAP(cost, 2)
	require.Equal(t, []int{1, 0}, assign) // 2+2 beats 1+9
	require.Equal(t, 4.0, lapCost(cost, 2, assign))
}

func TestSolveLAP_BruteForceAgreement(t *testing.T) {
	// Compare against exhaustive search on a fixed 4×4 instance.
	cost := []float64{
		7, 3, 6, 9,
		2, 8, 4, 5,
		9, 4, 7, 2,
		3, 6, 5, 8,
	}
	n := 4
	assign := solveLAP(cost, n)

	// Validity: a bijection over columns.
	seen := make([]bool, n)
	for _, j := range assign {
		require.False(t, seen[j], "column assigned twice")
		seen[j] = true
	}

	best := bruteForceLAP(cost, n)
	require.Equal(t, best, lapCost(cost, n, assign)) // matches the true optimum
}

func TestSolveLAP_NegativeCosts(t *testing.T) {
	// Potentials must cope with negative entries.
	cost := []float64{
		-4, 0,
		0, -4,
	}
	assign := solveLAP(cost, 2)
	require.Equal(t, []int{0, 1}, assign)
	require.Equal(t, -8.0, lapCost(cost, 2, assign))
}

// bruteForceLAP returns the optimal assignment cost by enumerating all
// permutations. Only for tiny n.
func bruteForceLAP(cost []float64, n int) float64 {
	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}
	best := lapCost(cost, n, perm)
	var recurse func(k int)
	recurse = func(k int) {
		if k == n {
			if c := lapCost(cost, n, perm); c < best {
				best = c
			}
			return
		}
		for i := k; i < n; i++ {
			perm[k], perm[i] = perm[i], perm[k]
			recurse(k + 1)
			perm[k], perm[i] = perm[i], perm[k]
		}
	}
	recurse(0)
	return best
}
