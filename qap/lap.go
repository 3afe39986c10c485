package qap

import "math"

// solveLAP solves the dense linear assignment problem on an n×n cost
// matrix stored row-major in cost (cost[i*n+j] is the price of giving
// row i column j) and returns assign with assign[i] = column of row i.
//
// Implementation: the Hungarian algorithm in its potentials (dual)
// formulation. Rows are inserted one at a time; each insertion grows a
// shortest augmenting path over columns, updating the dual potentials
// u, v so reduced costs stay non-negative.
//
// Deterministic: ties break on the lowest column index.
// Complexity: O(n³) time, O(n) extra space.
func solveLAP(cost []float64, n int) []int {
	// 1-based internally; index 0 is the virtual unmatched slot.
	// u, v are the row and column potentials, p[j] is the row matched
	// to column j, way[j] the predecessor column on the path.
	u := make([]float64, n+1)
	v := make([]float64, n+1)
	p := make([]int, n+1)
	way := make([]int, n+1)
	minv := make([]float64, n+1)
	used := make([]bool, n+1)

	for i := 1; i <= n; i++ {
		p[0] = i
		j0 := 0
		for j := 0; j <= n; j++ {
			minv[j] = math.Inf(1)
			used[j] = false
		}
		// Grow the path until it ends in a free column.
		for {
			used[j0] = true
			i0 := p[j0]
			delta := math.Inf(1)
			j1 := 0
			for j := 1; j <= n; j++ {
				if used[j] {
					continue
				}
				cur := cost[(i0-1)*n+(j-1)] - u[i0] - v[j]
				if cur < minv[j] {
					minv[j] = cur
					way[j] = j0
				}
				if minv[j] < delta {
					delta = minv[j]
					j1 = j
				}
			}
			for j := 0; j <= n; j++ {
				if used[j] {
					u[p[j]] += delta
					v[j] -= delta
				} else {
					minv[j] -= delta
				}
			}
			j0 = j1
			if p[j0] == 0 {
				break
			}
		}
		// Flip matches back along the path.
		for j0 != 0 {
			j1 := way[j0]
			p[j0] = p[j1]
			j0 = j1
		}
	}

	assign := make([]int, n)
	for j := 1; j <= n; j++ {
		assign[p[j]-1] = j - 1
	}
	return assign
}
