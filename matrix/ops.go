// Package matrix: deterministic linear-algebra kernels on Dense.
//
// Every kernel validates first, allocates exactly one result, and walks
// the flat backing slices in a fixed order. Operands are never mutated.
package matrix

import "math"

// Mul performs standard matrix multiplication C = A × B.
// Stage 1 (Validate): non-nil operands, inner dimensions (A.Cols == B.Rows).
// Stage 2 (Execute): i→k→j loops over row-major strides, skipping zero A[i,k].
// Complexity: Time O(r*n*c), Space O(r*c).
func Mul(a, b *Dense) (*Dense, error) {
	// Validate inputs via canonical validator
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	// Allocate result Dense
	res, err := NewDense(a.r, b.c)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	// Row-major multiplication into res.data.
	// a.data layout: i*a.c + k; b.data layout: k*b.c + j.
	var (
		i, j, k                            int     // loop iterators
		av                                 float64 // current a(i,k)
		rowOffsetA, rowOffsetB, rowOffsetR int     // flat base offsets
	)
	for i = 0; i < a.r; i++ {
		rowOffsetA = i * a.c
		rowOffsetR = i * b.c
		for k = 0; k < a.c; k++ {
			av = a.data[rowOffsetA+k]
			if av == 0 {
				continue // skip zero for performance
			}
			rowOffsetB = k * b.c
			for j = 0; j < b.c; j++ {
				res.data[rowOffsetR+j] += av * b.data[rowOffsetB+j]
			}
		}
	}

	return res, nil
}

// Mul3 computes the associative triple product A·B·C, evaluated
// left-to-right. This is the kernel behind the permutation action
// P·A·Pᵗ; using it avoids exposing the intermediate product.
// Stage 1 (Validate): chain compatibility A.Cols==B.Rows, B.Cols==C.Rows.
// Stage 2 (Execute): two Mul passes; one intermediate allocation.
// Complexity: Time O(n^3) for square operands, Space O(n^2).
func Mul3(a, b, c *Dense) (*Dense, error) {
	// Validate the full chain up front so a bad third operand fails
	// before any multiplication work is done.
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul3, err)
	}
	if err := ValidateMulCompatible(b, c); err != nil {
		return nil, matrixErrorf(opMul3, err)
	}

	ab, err := Mul(a, b)
	if err != nil {
		return nil, matrixErrorf(opMul3, err)
	}
	res, err := Mul(ab, c)
	if err != nil {
		return nil, matrixErrorf(opMul3, err)
	}

	return res, nil
}

// Transpose returns a new matrix with rows and columns swapped (mᵀ).
// Complexity: Time O(r*c), Space O(r*c).
func Transpose(m *Dense) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	// Allocate result with flipped dimensions
	res, err := NewDense(m.c, m.r)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	// data[i*c + j] → res.data[j*r + i]
	var i, j, baseSrc int
	for i = 0; i < m.r; i++ {
		baseSrc = i * m.c
		for j = 0; j < m.c; j++ {
			res.data[j*m.r+i] = m.data[baseSrc+j]
		}
	}

	return res, nil
}

// addSub computes elementwise out = a + sign*b for sign ∈ {+1, -1}.
// Shared validation/allocation for Add and Sub.
// Complexity: Time O(r*c), Space O(r*c).
func addSub(a, b *Dense, sign float64, opTag string) (*Dense, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	res, err := NewDense(a.r, a.c)
	if err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	for idx := range a.data { // deterministic flat 0..n-1
		res.data[idx] = a.data[idx] + sign*b.data[idx]
	}

	return res, nil
}

// Add computes the element-wise sum C = A + B.
// Complexity: Time O(r*c), Space O(r*c).
func Add(a, b *Dense) (*Dense, error) { return addSub(a, b, +1, opAdd) }

// Sub computes the element-wise difference C = A − B.
// Complexity: Time O(r*c), Space O(r*c).
func Sub(a, b *Dense) (*Dense, error) { return addSub(a, b, -1, opSub) }

// Scale returns a new matrix whose elements are alpha * m[i,j].
// NaN/Inf alpha propagates (no validation by design).
// Complexity: Time O(r*c), Space O(r*c).
func Scale(m *Dense, alpha float64) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}

	res, err := NewDense(m.r, m.c)
	if err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	for idx := range m.data {
		res.data[idx] = m.data[idx] * alpha
	}

	return res, nil
}

// Dot returns the Frobenius inner product Σ a[i,j]*b[i,j].
// Complexity: Time O(r*c), Space O(1).
func Dot(a, b *Dense) (float64, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return 0, matrixErrorf(opDot, err)
	}

	var acc float64 // running sum; fixed order keeps accumulation stable
	for idx := range a.data {
		acc += a.data[idx] * b.data[idx]
	}

	return acc, nil
}

// FrobeniusNorm returns sqrt(Σ m[i,j]^2), the flat L2 norm of the entries.
// Complexity: Time O(r*c), Space O(1).
func FrobeniusNorm(m *Dense) (float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return 0, matrixErrorf(opFrobenius, err)
	}

	var acc float64 // running sum of squares
	for _, v := range m.data {
		acc += v * v
	}

	return math.Sqrt(acc), nil
}

// AllClose reports whether |a[i,j] − b[i,j]| ≤ atol for all entries.
// A negative atol is flipped to its absolute value.
// Complexity: Time O(r*c), Space O(1).
func AllClose(a, b *Dense, atol float64) (bool, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	if atol < 0 {
		atol = -atol
	}

	var diff float64
	for idx := range a.data { // fixed order ensures reproducible short-circuit
		diff = a.data[idx] - b.data[idx]
		if diff < 0 {
			diff = -diff
		}
		if diff > atol {
			return false, nil
		}
	}

	return true, nil
}
