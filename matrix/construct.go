// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Turn raw nested caller data into a validated, immutable *Matrix.
//   - Decide the layout (vector vs grid) exactly once, from the input type.
//
// Validation order (mirrors the flatten-then-shape normalization):
//   1. nil / empty top level         -> ErrInvalidDimensions
//   2. non-sequence top level        -> ErrShape
//   3. non-numeric leaf              -> ErrType
//   4. NaN/Inf leaf (policy enabled) -> ErrNaNInf
//   5. ragged / mixed / too deep     -> ErrShape
//   6. empty rows                    -> ErrInvalidDimensions

package matrix

import (
	"fmt"
	"math"
	"reflect"
)

const (
	opNew        = "New"
	opFromVector = "FromVector"
	opFromRows   = "FromRows"
)

// New builds a Matrix from a slice of scalars (vector) or a slice of
// equal-length slices of scalars (grid). Any Go numeric kind is accepted as a
// leaf, including values boxed in interfaces, so []any{1, 2.5} is a vector
// and [][]int{{1, 2}, {3, 4}} is a 2×2 grid.
// MAIN DESCRIPTION:
//   - Single validating entry point for dynamically shaped input.
//
// Implementation:
//   - Stage 1: resolve options; reject nil/empty or non-sequence input.
//   - Stage 2: Flatten (type check every leaf), then apply the numeric policy.
//   - Stage 3: infer layout and shape from the top-level structure.
//
// Returns:
//   - *Matrix owning a copy of the data; the caller's slices are never retained.
//
// Errors:
//   - ErrInvalidDimensions, ErrShape, ErrType, ErrNaNInf (see file header for order).
//
// Complexity:
//   - Time O(total elements), Space O(total elements).
func New(data any, opts ...Option) (*Matrix, error) {
	o := gatherOptions(opts...)

	top := unwrap(reflect.ValueOf(data))
	if !top.IsValid() {
		return nil, matrixErrorf(opNew, ErrInvalidDimensions)
	}
	if !isSequence(top) {
		return nil, matrixErrorf(opNew, fmt.Errorf("top-level %s is not a sequence: %w", top.Type(), ErrShape))
	}
	if top.Len() == 0 {
		return nil, matrixErrorf(opNew, ErrInvalidDimensions)
	}

	flat, err := Flatten(data)
	if err != nil {
		return nil, matrixErrorf(opNew, err)
	}
	if o.validateNaNInf {
		if err = validateFinite(flat); err != nil {
			return nil, matrixErrorf(opNew, err)
		}
	}

	layout, rows, cols, err := inferShape(top)
	if err != nil {
		return nil, matrixErrorf(opNew, err)
	}

	return &Matrix{r: rows, c: cols, data: flat, layout: layout}, nil
}

// FromVector builds a vector (shape (1, N)) from a typed slice.
// The input is copied and converted to float64.
//
// Errors: ErrInvalidDimensions on empty input; ErrNaNInf under WithValidateNaNInf.
func FromVector[T Number](v []T, opts ...Option) (*Matrix, error) {
	if len(v) == 0 {
		return nil, matrixErrorf(opFromVector, ErrInvalidDimensions)
	}
	data := make([]float64, len(v))
	for i, x := range v {
		data[i] = float64(x)
	}
	if gatherOptions(opts...).validateNaNInf {
		if err := validateFinite(data); err != nil {
			return nil, matrixErrorf(opFromVector, err)
		}
	}

	return &Matrix{r: 1, c: len(v), data: data, layout: LayoutVector}, nil
}

// FromRows builds a grid from typed rows of equal length.
// The input is copied and converted to float64.
//
// Errors: ErrInvalidDimensions on no rows or empty rows; ErrShape on ragged
// rows; ErrNaNInf under WithValidateNaNInf.
func FromRows[T Number](rows [][]T, opts ...Option) (*Matrix, error) {
	if len(rows) == 0 {
		return nil, matrixErrorf(opFromRows, ErrInvalidDimensions)
	}
	cols := len(rows[0])
	for i, row := range rows {
		if len(row) != cols {
			return nil, matrixErrorf(opFromRows, fmt.Errorf("row %d has %d elements, want %d: %w", i, len(row), cols, ErrShape))
		}
	}
	if cols == 0 {
		return nil, matrixErrorf(opFromRows, ErrInvalidDimensions)
	}

	data := make([]float64, 0, len(rows)*cols)
	for _, row := range rows {
		for _, x := range row {
			data = append(data, float64(x))
		}
	}
	if gatherOptions(opts...).validateNaNInf {
		if err := validateFinite(data); err != nil {
			return nil, matrixErrorf(opFromRows, err)
		}
	}

	return &Matrix{r: len(rows), c: cols, data: data, layout: LayoutGrid}, nil
}

// inferShape classifies a non-empty top-level sequence.
// If the first element is a sequence, every element must be a sequence of the
// same length whose own elements are scalars (grid); otherwise every element
// must be a scalar (vector).
func inferShape(top reflect.Value) (Layout, int, int, error) {
	n := top.Len()

	if !isSequence(unwrap(top.Index(0))) {
		for i := 1; i < n; i++ {
			if isSequence(unwrap(top.Index(i))) {
				return 0, 0, 0, fmt.Errorf("element [%d] is a sequence in a vector: %w", i, ErrShape)
			}
		}
		return LayoutVector, 1, n, nil
	}

	cols := unwrap(top.Index(0)).Len()
	for i := 0; i < n; i++ {
		row := unwrap(top.Index(i))
		if !isSequence(row) {
			return 0, 0, 0, fmt.Errorf("element [%d] is a scalar in a grid: %w", i, ErrShape)
		}
		if row.Len() != cols {
			return 0, 0, 0, fmt.Errorf("row %d has %d elements, want %d: %w", i, row.Len(), cols, ErrShape)
		}
		for j := 0; j < cols; j++ {
			if isSequence(unwrap(row.Index(j))) {
				return 0, 0, 0, fmt.Errorf("element [%d][%d] nests deeper than two levels: %w", i, j, ErrShape)
			}
		}
	}
	if cols == 0 {
		return 0, 0, 0, ErrInvalidDimensions
	}

	return LayoutGrid, n, cols, nil
}

// validateFinite rejects the first NaN or ±Inf in data.
func validateFinite(data []float64) error {
	for i, v := range data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("flat index %d: %w", i, ErrNaNInf)
		}
	}

	return nil
}

// fromFlat wraps an owned row-major buffer without copying.
// Callers guarantee len(data) == rows*cols and that data is not shared.
// A vector layout is only kept for a single row; any other shape is a grid.
func fromFlat(data []float64, rows, cols int, layout Layout) *Matrix {
	if layout == LayoutVector && rows != 1 {
		layout = LayoutGrid
	}

	return &Matrix{r: rows, c: cols, data: data, layout: layout}
}
