// Package manifold: sentinel errors and shared constants.
package manifold

import "errors"

// Sentinel errors for manifold operations.
var (
	// ErrShape indicates a point does not have the manifold's rows×cols shape.
	ErrShape = errors.New("manifold: point shape does not match manifold shape")

	// ErrSampleCount indicates a non-positive number of requested samples.
	ErrSampleCount = errors.New("manifold: n_samples must be >= 1")

	// ErrCurveParam indicates a geodesic parameter outside [0, 1].
	ErrCurveParam = errors.New("manifold: curve parameter must lie in [0, 1]")
)

// DefaultAtol is the tolerance used by membership checks when callers
// have no better choice. It matches the kernel-wide 1e-9 policy.
const DefaultAtol = 1e-9
