// Package matrix: sentinel errors and shared constants.
//
// All validation failures in this package reduce to the sentinels below.
// Kernels wrap them with an operation tag via matrixErrorf so callers can
// both errors.Is-match the sentinel and read which operation rejected the
// input.
package matrix

import (
	"errors"
	"fmt"
)

// Sentinel errors for matrix construction and kernels.
var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrIndexOutOfBounds indicates that a row or column index is outside valid range.
	ErrIndexOutOfBounds = errors.New("matrix: index out of bounds")

	// ErrNilMatrix indicates a nil *Dense was passed where a matrix is required.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrDimensionMismatch indicates operand shapes are incompatible for the operation.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNaNInf indicates a NaN or ±Inf entry where only finite values are allowed.
	ErrNaNInf = errors.New("matrix: non-finite entry")
)

// Operation tags used for uniform error wrapping (no magic strings inline).
const (
	opAdd       = "Add"
	opMul       = "Mul"
	opMul3      = "Mul3"
	opTranspose = "Transpose"
	opSub       = "Sub"
	opScale     = "Scale"
	opDot       = "Dot"
	opFrobenius = "FrobeniusNorm"
	opAllClose  = "AllClose"
)

// matrixErrorf wraps err with an operation tag, preserving the sentinel via %w.
// Call only with err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
