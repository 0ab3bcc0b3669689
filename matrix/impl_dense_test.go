// Package matrix_test contains unit tests for Matrix storage and accessors.
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/densemat/matrix"
	"github.com/stretchr/testify/require"
)

// TestAtOutOfRange ensures At() returns ErrOutOfRange on invalid access.
func TestAtOutOfRange(t *testing.T) {
	m := MustRows(t, [][]float64{{1, 2}, {3, 4}}) // create a 2x2 matrix

	_, err := m.At(-1, 0)                         // negative row index
	require.ErrorIs(t, err, matrix.ErrOutOfRange) // expect ErrOutOfRange

	_, err = m.At(0, 2) // column index out of range
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	require.EqualError(t, err, "Matrix.At(0,2): matrix: index out of range")

	v, err := m.At(1, 0) // valid read
	require.NoError(t, err)
	require.Equal(t, 3.0, v)
}

// TestAtVector verifies that a vector is addressed as row 0.
func TestAtVector(t *testing.T) {
	m := MustVector(t, []float64{5, 6, 7})

	v, err := m.At(0, 2)
	require.NoError(t, err)
	require.Equal(t, 7.0, v)

	_, err = m.At(1, 0) // vectors have exactly one row
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

// TestRowCol validates Row/Col copies and their bounds.
func TestRowCol(t *testing.T) {
	m := MustRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}})

	row, err := m.Row(1)
	require.NoError(t, err)
	require.Equal(t, []float64{4, 5, 6}, row)

	col, err := m.Col(2)
	require.NoError(t, err)
	require.Equal(t, []float64{3, 6}, col)

	_, err = m.Row(2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = m.Col(-1)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	// mutate the copies; the matrix must not change
	row[0], col[0] = 100, 100
	RequireData(t, [][]float64{{1, 2, 3}, {4, 5, 6}}, m)
}

// TestFlatDataAreCopies ensures accessors never expose the backing buffer.
func TestFlatDataAreCopies(t *testing.T) {
	m := MustRows(t, [][]float64{{1, 2}, {3, 4}})

	flat := m.Flat()
	require.Equal(t, []float64{1, 2, 3, 4}, flat)
	flat[0] = -1

	data := m.Data()
	data[1][1] = -1

	RequireData(t, [][]float64{{1, 2}, {3, 4}}, m)
}

// TestStringOutput checks both grid and vector renderings.
func TestStringOutput(t *testing.T) {
	grid := MustRows(t, [][]float64{{1, 2}, {3, 4}})
	require.Equal(t, "[1, 2]\n[3, 4]\n", grid.String())

	vec := MustVector(t, []float64{1, 2.5, -3})
	require.Equal(t, "[1, 2.5, -3]", vec.String())

	row := MustRows(t, [][]float64{{1, 2, 3}}) // 1xN grid keeps grid rendering
	require.Equal(t, "[1, 2, 3]\n", row.String())

	var zero matrix.Matrix
	require.Equal(t, "[]", zero.String())
}
