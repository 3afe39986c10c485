// Package manifold implements the total space of the graph-space
// quotient: the flat manifold of rows×cols real matrices, together with
// its Frobenius metric.
//
// Matrices answers membership (shape plus finite entries; symmetry is
// deliberately NOT required, so directed-graph adjacencies are valid
// points), samples random points with a deterministic seed policy, and
// exposes the associative triple product used to conjugate a matrix by
// a permutation matrix.
//
// MatricesMetric provides the flat distance ‖p−q‖_F and the straight-line
// geodesic t ↦ (1−t)·p + t·q as a Curve closure.
//
// Determinism:
//   - RandomPoint(n, bound, seed) is reproducible: the same seed yields
//     the same sample batch; seed==0 selects a fixed default seed.
//
// The quotient structure itself (permutation action, alignment, quotient
// distance) lives in package graphspace; this package knows nothing
// about graphs.
package manifold
