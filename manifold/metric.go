// Package manifold: the Frobenius metric on the Matrices total space.
package manifold

import (
	"github.com/katalvlaran/graphspace/matrix"
)

// Curve is a parameterized path on the manifold. The parameter must lie
// in [0, 1]; 0 yields the start point and 1 the end point.
type Curve func(t float64) (*matrix.Dense, error)

// MatricesMetric is the flat (Frobenius) metric on rows×cols matrices.
// It is immutable after construction and safe for concurrent use.
type MatricesMetric struct {
	rows, cols int
}

// NewMatricesMetric constructs the Frobenius metric for rows×cols matrices.
// Complexity: O(1).
func NewMatricesMetric(rows, cols int) (*MatricesMetric, error) {
	if rows <= 0 || cols <= 0 {
		return nil, matrix.ErrInvalidDimensions
	}

	return &MatricesMetric{rows: rows, cols: cols}, nil
}

// Dist returns the Frobenius distance ‖p − q‖_F.
// Stage 1 (Validate): both points carry the metric's shape.
// Stage 2 (Execute): subtract, then take the flat L2 norm.
// Complexity: O(rows*cols).
func (m *MatricesMetric) Dist(p, q *matrix.Dense) (float64, error) {
	if err := m.validatePoint(p); err != nil {
		return 0, err
	}
	if err := m.validatePoint(q); err != nil {
		return 0, err
	}

	diff, err := matrix.Sub(p, q)
	if err != nil {
		return 0, err
	}

	return matrix.FrobeniusNorm(diff)
}

// Geodesic returns the straight-line curve t ↦ (1−t)·p + t·q, the
// geodesic of the flat metric. The endpoints are captured by value
// (cloned), so later mutation of p or q does not bend the curve.
// Complexity: O(rows*cols) per curve evaluation.
func (m *MatricesMetric) Geodesic(p, q *matrix.Dense) (Curve, error) {
	if err := m.validatePoint(p); err != nil {
		return nil, err
	}
	if err := m.validatePoint(q); err != nil {
		return nil, err
	}

	start, end := p.Clone(), q.Clone()

	return func(t float64) (*matrix.Dense, error) {
		if t < 0 || t > 1 {
			return nil, ErrCurveParam
		}
		a, err := matrix.Scale(start, 1-t)
		if err != nil {
			return nil, err
		}
		b, err := matrix.Scale(end, t)
		if err != nil {
			return nil, err
		}

		return matrix.Add(a, b)
	}, nil
}

// validatePoint enforces the metric's shape on a single point.
// Complexity: O(1).
func (m *MatricesMetric) validatePoint(p *matrix.Dense) error {
	if err := matrix.ValidateNotNil(p); err != nil {
		return err
	}
	if p.Rows() != m.rows || p.Cols() != m.cols {
		return ErrShape
	}

	return nil
}
