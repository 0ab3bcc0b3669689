// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Shape transforms (Reshape, Transpose) and shape-driven constructors
//     (Zeros, Ones, Full, Identity, ZerosLike, OnesLike).
//   - Every result is a fresh Matrix; inputs are never mutated or aliased.
//
// Determinism:
//   - Fixed row-major loops (i→j); no data-dependent branches.

package matrix

import "fmt"

const (
	opReshape   = "Reshape"
	opTranspose = "Transpose"
	opZeros     = "Zeros"
	opOnes      = "Ones"
	opFull      = "Full"
	opIdentity  = "Identity"
)

// Reshape re-partitions m's row-major elements into a rows×cols grid:
// flat element i*cols+j lands at (i, j).
// MAIN DESCRIPTION:
//   - Flatten then regroup; the result layout is always a grid, even for rows == 1.
//
// Implementation:
//   - Stage 1: ValidateReshape (count must match exactly; no silent truncation).
//   - Stage 2: copy the flat buffer into a new Matrix with the target shape.
//
// Errors:
//   - ErrNilMatrix, ErrInvalidDimensions, ErrReshapeSize.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Reshape(m *Matrix, rows, cols int) (*Matrix, error) {
	if err := ValidateReshape(m, rows, cols); err != nil {
		return nil, matrixErrorf(opReshape, err)
	}

	return fromFlat(m.Flat(), rows, cols, LayoutGrid), nil
}

// reshapeLike repackages an owned flat result into like's shape and layout.
// Shared by the elementwise kernels; len(flat) == like.Len() by construction.
func reshapeLike(flat []float64, like *Matrix) *Matrix {
	return fromFlat(flat, like.r, like.c, like.layout)
}

// Transpose returns mᵀ with shape (cols, rows).
// MAIN DESCRIPTION:
//   - Output (i, j) reads the source's row-major buffer at j*cols + i,
//     i.e. strides are reinterpreted to swap axes.
//
// Behavior highlights:
//   - A (1, N) vector becomes an (N, 1) grid; an (N, 1) grid becomes a (1, N) grid.
//
// Errors:
//   - ErrNilMatrix.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Transpose(m *Matrix) (*Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	rows, cols := m.c, m.r // swapped shape
	out := make([]float64, len(m.data))
	var i, j int
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			out[i*cols+j] = m.data[rows*j+i]
		}
	}

	return fromFlat(out, rows, cols, LayoutGrid), nil
}

// Zeros returns a rows×cols grid filled with 0.
// It builds a flat vector and reshapes it, so the shape rules match Reshape.
//
// Errors: ErrInvalidDimensions.
// Complexity: O(r*c).
func Zeros(rows, cols int) (*Matrix, error) {
	m, err := filled(rows, cols, 0)
	if err != nil {
		return nil, matrixErrorf(opZeros, err)
	}

	return m, nil
}

// Ones returns a rows×cols grid filled with 1.
// Combine with MultiplyScalar (or use Full) for any other constant.
//
// Errors: ErrInvalidDimensions.
// Complexity: O(r*c).
func Ones(rows, cols int) (*Matrix, error) {
	m, err := filled(rows, cols, 1)
	if err != nil {
		return nil, matrixErrorf(opOnes, err)
	}

	return m, nil
}

// Full returns a rows×cols grid where every element is v (Ones scaled by v).
//
// Errors: ErrInvalidDimensions.
// Complexity: O(r*c).
func Full(rows, cols int, v float64) (*Matrix, error) {
	ones, err := Ones(rows, cols)
	if err != nil {
		return nil, matrixErrorf(opFull, err)
	}

	return MultiplyScalar(ones, v)
}

// filled builds a flat vector of rows*cols copies of v and reshapes it.
func filled(rows, cols int, v float64) (*Matrix, error) {
	n, err := elementCount(rows, cols)
	if err != nil {
		return nil, fmt.Errorf("%dx%d: %w", rows, cols, err)
	}
	flat, err := newDense(1, n, LayoutVector)
	if err != nil {
		return nil, err
	}
	if v != 0 {
		for k := range flat.data {
			flat.data[k] = v
		}
	}

	return Reshape(flat, rows, cols)
}

// Identity returns the n×n identity (ones on the diagonal, zeros elsewhere).
//
// Errors: ErrInvalidDimensions.
// Complexity: O(n²).
func Identity(n int) (*Matrix, error) {
	id, err := newDense(n, n, LayoutGrid)
	if err != nil {
		return nil, matrixErrorf(opIdentity, err)
	}
	for i := 0; i < n; i++ {
		id.data[i*n+i] = 1
	}

	return id, nil
}

// ZerosLike returns a zero matrix with m's shape and layout.
func ZerosLike(m *Matrix) (*Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opZeros, err)
	}

	return newDense(m.r, m.c, m.layout)
}

// OnesLike returns a matrix of ones with m's shape and layout.
func OnesLike(m *Matrix) (*Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opOnes, err)
	}
	out, err := newDense(m.r, m.c, m.layout)
	if err != nil {
		return nil, matrixErrorf(opOnes, err)
	}
	for k := range out.data {
		out.data[k] = 1
	}

	return out, nil
}
