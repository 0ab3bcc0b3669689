// SPDX-License-Identifier: MIT
// Package matrix provides operations on validated matrices: scalar
// scaling, vector dot product and the matrix product. All functions perform
// strict fail-fast validation and return clear errors on shape problems.
//
// Notes:
//   - Kernels use the central validators and wrap sentinels via matrixErrorf.
//   - No blocking, SIMD or parallelism: plain deterministic loops.

package matrix

import "fmt"

// ZeroSum is the initial value of every dot-product accumulator.
const ZeroSum = 0.0

// Operation name constants for unified error wrapping.
const (
	opMultiplyScalar   = "MultiplyScalar"
	opVectorDotProduct = "VectorDotProduct"
	opMultiply         = "Multiply"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// The wrapper keeps a stable "Op: underlying" shape for uniform reporting.
// Use only when err != nil.
//
// Complexity:
//   - Time O(1), Space O(1).
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// MultiplyScalar returns a new matrix whose elements are alpha * m[i,j].
// The result keeps m's shape and layout. alpha = 0 yields an explicit zero matrix.
//
// Errors: ErrNilMatrix.
// Complexity: O(r*c).
func MultiplyScalar(m *Matrix, alpha float64) (*Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMultiplyScalar, err)
	}

	out := make([]float64, len(m.data))
	for k, v := range m.data {
		out[k] = v * alpha
	}

	return reshapeLike(out, m), nil
}

// VectorDotProduct returns Σ a[k]*b[k] for two row vectors.
// MAIN DESCRIPTION:
//   - Elementwise product followed by a sum over all scalars.
//
// Implementation:
//   - Stage 1: both operands must have exactly one row (ErrNotVector).
//   - Stage 2: shapes must then be equal (ErrShapeMismatch).
//   - Stage 3: accumulate in index order.
//
// Behavior highlights:
//   - A 1×N grid is accepted like a vector of length N.
//
// Errors:
//   - ErrNilMatrix, ErrNotVector, ErrShapeMismatch.
//
// Complexity:
//   - Time O(N), Space O(1).
func VectorDotProduct(a, b *Matrix) (float64, error) {
	if err := ValidateVector(a); err != nil {
		return 0, matrixErrorf(opVectorDotProduct, err)
	}
	if err := ValidateVector(b); err != nil {
		return 0, matrixErrorf(opVectorDotProduct, err)
	}
	if err := ValidateSameShape(a, b); err != nil {
		return 0, matrixErrorf(opVectorDotProduct, err)
	}

	return dot(a.data, b.data), nil
}

// dot sums x[k]*y[k] in index order; len(x) == len(y) by contract.
func dot(x, y []float64) float64 {
	sum := ZeroSum
	for k := range x {
		sum += x[k] * y[k]
	}

	return sum
}

// Multiply returns the matrix product a·b with shape (rows(a), cols(b)).
// MAIN DESCRIPTION:
//   - Canonical triple loop: cell (i, j) is the dot product of row i of a and
//     column j of b.
//
// Implementation:
//   - Stage 1: ValidateMulCompatible (a.Cols() must equal b.Rows()).
//   - Stage 2: pre-size the result via Zeros.
//   - Stage 3: for each (i, j): take row i of a (the whole vector when a has
//     a single row), gather column j of b by indexing every row at j, store
//     their dot product.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
//
// Determinism:
//   - Fixed i→j→k order.
//
// Complexity:
//   - Time O(rows(a)*cols(b)*cols(a)), Space O(rows(a)*cols(b) + rows(b)).
func Multiply(a, b *Matrix) (*Matrix, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMultiply, err)
	}

	rows, inner, cols := a.r, a.c, b.c
	res, err := Zeros(rows, cols)
	if err != nil {
		return nil, matrixErrorf(opMultiply, err)
	}

	row := make([]float64, inner)    // row i of a
	column := make([]float64, inner) // column j of b (len == b.r == inner)
	var i, j int
	for i = 0; i < rows; i++ {
		a.rowView(i, row)
		for j = 0; j < cols; j++ {
			b.colGather(j, column)
			res.data[i*cols+j] = dot(row, column)
		}
	}

	return res, nil
}
