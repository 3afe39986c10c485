// Package qap - shared types, sentinel errors and tunables.
package qap

import (
	"errors"
	"fmt"
)

// Default tunables. Chosen so a vanilla Solve(a, b, DefaultOptions())
// behaves well on small and medium instances without tweaking.
const (
	// DefaultMaxIter caps the Frank–Wolfe loop. FAQ usually converges
	// in a handful of steps; 30 leaves generous headroom.
	DefaultMaxIter = 30

	// DefaultTol is the stopping threshold on the scaled step norm
	// α·‖Q−P‖_F. Below it the relaxed iterate has effectively stopped
	// moving.
	DefaultTol = 1e-8
)

// Sentinel errors returned by Solve. Compare with errors.Is.
var (
	// ErrNonSquare: an input matrix is not n×n.
	ErrNonSquare = errors.New("qap: matrix must be square")

	// ErrDimensionMismatch: the two inputs have different orders.
	ErrDimensionMismatch = errors.New("qap: matrices must share the same order")

	// ErrNaNInf: an input entry is NaN or ±Inf.
	ErrNaNInf = errors.New("qap: matrix entries must be finite")

	// ErrBadOptions: MaxIter < 1 or Tol < 0.
	ErrBadOptions = errors.New("qap: invalid options")
)

// op tags used in wrapped errors; keep messages grep-friendly.
const (
	opSolve = "qap.Solve"
)

// Options configures a Solve call.
//
// The zero value is NOT valid; start from DefaultOptions and override
// fields as needed.
type Options struct {
	// MaxIter bounds the number of Frank–Wolfe iterations. Must be ≥ 1.
	// Hitting the bound is a normal termination, not an error.
	MaxIter int

	// Tol stops the loop once α·‖Q−P‖_F drops below it. Must be ≥ 0.
	Tol float64

	// Maximize selects the objective sense. true maximizes
	// trace(Aᵀ P B Pᵀ) (graph-overlap alignment); false minimizes it
	// (classic QAP cost).
	Maximize bool
}

// DefaultOptions returns the recommended configuration:
// MaxIter = 30, Tol = 1e-8, Maximize = true.
func DefaultOptions() Options {
	return Options{
		MaxIter:  DefaultMaxIter,
		Tol:      DefaultTol,
		Maximize: true,
	}
}

// validate rejects option combinations Solve cannot honor.
func (o Options) validate() error {
	if o.MaxIter < 1 {
		return fmt.Errorf("%s: MaxIter must be ≥ 1, got %d: %w", opSolve, o.MaxIter, ErrBadOptions)
	}
	if o.Tol < 0 {
		return fmt.Errorf("%s: Tol must be ≥ 0, got %g: %w", opSolve, o.Tol, ErrBadOptions)
	}
	return nil
}
