// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for the matrix validators.
package matrix_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/densemat/matrix"
	"github.com/stretchr/testify/require"
)

// TestValidateBinarySameShape covers nil inputs, matching and mismatched dimensions.
func TestValidateBinarySameShape(t *testing.T) {
	t.Parallel()

	zeros := func(r, c int) *matrix.Matrix {
		m, err := matrix.Zeros(r, c)
		require.NoError(t, err)
		return m
	}

	tests := []struct {
		name    string
		a, b    *matrix.Matrix
		wantErr error
	}{
		{"both nil", nil, nil, matrix.ErrNilMatrix},
		{"first nil", nil, zeros(2, 2), matrix.ErrNilMatrix},
		{"second zero value", zeros(2, 2), &matrix.Matrix{}, matrix.ErrNilMatrix},
		{"equal 2x3", zeros(2, 3), zeros(2, 3), nil},
		{"row mismatch", zeros(2, 3), zeros(3, 3), matrix.ErrShapeMismatch},
		{"col mismatch", zeros(2, 3), zeros(2, 4), matrix.ErrShapeMismatch},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			err := matrix.ValidateBinarySameShape(tc.a, tc.b)
			if tc.wantErr == nil {
				require.NoError(t, err)
			} else {
				require.Error(t, err)
				require.Truef(t, errors.Is(err, tc.wantErr),
					"expected errors.Is(%v, %v)", err, tc.wantErr)
			}
		})
	}
}

// TestValidateVector covers vector, 1xN grid and multi-row inputs.
func TestValidateVector(t *testing.T) {
	t.Parallel()

	require.NoError(t, matrix.ValidateVector(MustVector(t, []float64{1, 2})))
	require.NoError(t, matrix.ValidateVector(MustRows(t, [][]float64{{1, 2}})))
	require.ErrorIs(t, matrix.ValidateVector(MustRows(t, [][]float64{{1}, {2}})), matrix.ErrNotVector)
	require.ErrorIs(t, matrix.ValidateVector(nil), matrix.ErrNilMatrix)
}

// TestValidateMulCompatible covers conformant and non-conformant pairs.
func TestValidateMulCompatible(t *testing.T) {
	t.Parallel()

	a := MustRows(t, [][]float64{{1, 2, 3}})
	b := MustRows(t, [][]float64{{1}, {2}, {3}})

	require.NoError(t, matrix.ValidateMulCompatible(a, b))
	require.NoError(t, matrix.ValidateMulCompatible(b, a))
	require.ErrorIs(t, matrix.ValidateMulCompatible(a, a), matrix.ErrDimensionMismatch)
	require.ErrorIs(t, matrix.ValidateMulCompatible(nil, a), matrix.ErrNilMatrix)
}

// TestValidateReshape covers the exact-count rule.
func TestValidateReshape(t *testing.T) {
	t.Parallel()

	m := MustVector(t, []float64{1, 2, 3, 4, 5, 6})

	require.NoError(t, matrix.ValidateReshape(m, 2, 3))
	require.NoError(t, matrix.ValidateReshape(m, 6, 1))
	require.ErrorIs(t, matrix.ValidateReshape(m, 2, 2), matrix.ErrReshapeSize)
	require.ErrorIs(t, matrix.ValidateReshape(m, 4, 2), matrix.ErrReshapeSize)
	require.ErrorIs(t, matrix.ValidateReshape(m, 0, 6), matrix.ErrInvalidDimensions)
}
