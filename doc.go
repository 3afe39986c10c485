// Package graphspace is a statistical-geometry toolkit for graph
// space — the set of node-labelled weighted graphs considered up to
// node relabelling.
//
// 🚀 What is graphspace?
//
//	A deterministic, thread-safe library that brings together:
//		• Matrix kernel: dense float64 matrices, products, norms, validators
//		• Ambient geometry: the matrix manifold with its Frobenius metric
//		• Graph matching: identity and FAQ (Frank–Wolfe QAP) node alignment
//		• Quotient geometry: distances and geodesics between graph orbits
//		• Export: adjacency matrices as attributed, lock-guarded graphs
//
// ✨ Why choose graphspace?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Rock-solid guarantees – validation-first, sentinel errors, fixed seeds
//   - Pure Go – no cgo, no hidden deps
//   - Pluggable – swap the total space, metric or matcher per call site
//
// Under the hood, everything is organized under five subpackages:
//
//	core/       — attributed Graph, Vertex, Edge types & thread-safe primitives
//	graphspace/ — the quotient: Space, Geometry, Points, matchers
//	manifold/   — the ambient matrix space and its Frobenius metric
//	matrix/     — dense kernel: products, transpose, norms, validators
//	qap/        — FAQ quadratic-assignment solver with its LAP core
//
// Quick ASCII example:
//
//	    0───1        2───0
//	    │       vs       │
//	    2                1
//
//	two records of the same path graph under different node numbering;
//	their quotient distance is zero.
//
// Dive into examples/ for runnable end-to-end demos.
//
//	go get github.com/katalvlaran/graphspace
package graphspace
