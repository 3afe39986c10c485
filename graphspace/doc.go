// Package graphspace implements statistical geometry on the space of
// node-labelled weighted graphs quotiented by node relabelling.
//
// A graph on n nodes is an n×n adjacency matrix (plus an optional
// per-node label vector); two graphs are the same point of graph space
// when one is a node permutation of the other. Distances and geodesics
// on the quotient are computed by first aligning one input to the
// other with a Matcher and then measuring in the ambient matrix space:
//
//	d([A], [B]) = min over permutations P of ‖A − P·B·Pᵀ‖_F.
//
// The package is organised around five small types:
//
//	Graph       - one observation: adjacency plus optional labels.
//	Points      - one graph or an ordered batch, normalized once at
//	              construction; every operation consumes this form.
//	Permutation - a node relabelling, with Compose, Matrix and
//	              validation helpers.
//	Space       - the quotient set: membership, sampling, the permute
//	              action, export to core.Graph.
//	Geometry    - the quotient metric: Dist and Geodesic through a
//	              pluggable Matcher (identity or FAQ) and Metric.
//
// Minimal workflow:
//
//	space, _ := graphspace.NewSpace(3)
//	geom, _ := graphspace.NewGeometry(space)
//	d, _ := geom.DistByName(a, b, graphspace.MatcherFAQ)
//	fmt.Println(d.One())
//
// All types are immutable after construction and safe for concurrent
// use. Batch operations preserve input order, and every computation is
// deterministic for fixed inputs and seed.
package graphspace
