// Package matrix provides the dense linear-algebra kernel used by the
// graphspace geometry: a row-major float64 Dense type plus the small set
// of deterministic operations the permutation action and the Frobenius
// metric need (multiplication, triple products, transpose, subtraction,
// scaling, norms and tolerant comparison).
//
// Design principles:
//   - Deterministic: fixed loop orders everywhere; identical inputs
//     always produce bit-identical outputs.
//   - Strict sentinels: validation failures return plain sentinel errors
//     (ErrNilMatrix, ErrDimensionMismatch, ...) wrapped with an operation
//     tag; no panics on user input.
//   - Allocation discipline: each kernel allocates exactly one result;
//     operands are never mutated.
//
// The package is intentionally small. Graph adjacency matrices are the
// only workload: square, real-valued, typically n ≲ 100. Use Mul3 for
// the conjugation P·A·Pᵗ instead of chaining Mul twice when only the
// final product is needed.
package matrix
