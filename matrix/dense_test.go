package matrix_test

import (
	"testing"

	"github.com/katalvlaran/graphspace/matrix"
	"github.com/stretchr/testify/require"
)

// TestNewDense_Shape verifies dimensions and zero initialization.
func TestNewDense_Shape(t *testing.T) {
	m, err := matrix.NewDense(2, 3)
	require.NoError(t, err)
	require.Equal(t, 2, m.Rows())
	require.Equal(t, 3, m.Cols())

	// All entries start at zero.
	v, err := m.At(1, 2)
	require.NoError(t, err)
	require.Equal(t, 0.0, v)
}

// TestNewDense_InvalidDims rejects non-positive dimensions.
func TestNewDense_InvalidDims(t *testing.T) {
	_, err := matrix.NewDense(0, 3)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.NewDense(3, -1)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

// TestNewDenseFromRows_RoundTrip checks row ingestion and At access.
func TestNewDenseFromRows_RoundTrip(t *testing.T) {
	m, err := matrix.NewDenseFromRows([][]float64{
		{1, 2},
		{3, 4},
	})
	require.NoError(t, err)

	v, err := m.At(1, 0)
	require.NoError(t, err)
	require.Equal(t, 3.0, v)

	// Flatten returns row-major order.
	require.Equal(t, []float64{1, 2, 3, 4}, m.Flatten())
}

// TestNewDenseFromRows_Ragged rejects rows of differing lengths.
func TestNewDenseFromRows_Ragged(t *testing.T) {
	_, err := matrix.NewDenseFromRows([][]float64{
		{1, 2},
		{3},
	})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

// TestDense_Bounds verifies At/Set bounds checks.
func TestDense_Bounds(t *testing.T) {
	m, err := matrix.NewDense(2, 2)
	require.NoError(t, err)

	_, err = m.At(2, 0)
	require.ErrorIs(t, err, matrix.ErrIndexOutOfBounds)

	err = m.Set(0, -1, 1.0)
	require.ErrorIs(t, err, matrix.ErrIndexOutOfBounds)
}

// TestDense_CloneIndependence ensures Clone detaches storage.
func TestDense_CloneIndependence(t *testing.T) {
	m, err := matrix.NewDenseFromRows([][]float64{{1, 2}, {3, 4}})
	require.NoError(t, err)

	c := m.Clone()
	require.True(t, m.Equal(c))

	// Mutating the clone must not leak into the original.
	require.NoError(t, c.Set(0, 0, 9))
	require.False(t, m.Equal(c))

	v, err := m.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 1.0, v)
}

// TestIdentity builds the canonical identity matrix.
func TestIdentity(t *testing.T) {
	id, err := matrix.Identity(3)
	require.NoError(t, err)
	want, err := matrix.NewDenseFromRows([][]float64{
		{1, 0, 0},
		{0, 1, 0},
		{0, 0, 1},
	})
	require.NoError(t, err)
	require.True(t, id.Equal(want))
}
