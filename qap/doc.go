// Package qap provides an approximate solver for the Quadratic
// Assignment Problem restricted to graph matching: given two n×n
// matrices A and B, find a permutation p extremizing
//
//	trace(Aᵀ · P · B · Pᵀ),  P[i, p[i]] = 1,
//
// i.e. the node relabelling of B that best overlaps A.
//
// The solver is FAQ (Fast Approximate QAP, Vogelstein et al. 2015):
// Frank–Wolfe iterations on the doubly-stochastic relaxation of the
// permutation polytope, started at the barycenter J/n, with a
// closed-form line search on the quadratic objective and a final
// linear-assignment projection back onto permutations.
//
// Guarantees and limits:
//   - QAP is NP-hard; FAQ is a heuristic. No optimality bound is
//     asserted, and reaching MaxIter is a normal stop, not an error.
//   - Fully deterministic: fixed initialization and loop orders; the
//     same inputs always return the same permutation.
//
// Complexity per iteration is O(n³) (two triple products plus one
// linear assignment); typical instances converge in well under the
// default 30 iterations.
//
// Use this package when you need a good alignment fast (e.g. quotient
// distances on graph space), not when you need a certified optimum.
package qap
