// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Elementwise binary operations (Add, Subtract, MultiplyElementwise) and
//     comparisons (Equal, AllClose) over equally shaped matrices.
//   - Share one private kernel (ewBinary) so validation, flatten and
//     repackaging are written once.
//
// Design:
//   - Operands are flattened, combined position by position, and the flat
//     result is reshaped back to the common shape.
//   - The result keeps the first operand's layout: vector + vector stays a vector.
//
// Determinism & Performance:
//   - Single flat loop 0..n-1; exactly one allocation for the result.

package matrix

import "math"

const (
	opAdd                 = "Add"
	opSubtract            = "Subtract"
	opMultiplyElementwise = "MultiplyElementwise"
	opAllClose            = "AllClose"
)

// ewBinary computes out[k] = f(a[k], b[k]) for equally shaped a and b.
// Time: O(r*c). Space: O(r*c). Inputs are not mutated.
func ewBinary(a, b *Matrix, f func(x, y float64) float64, opTag string) (*Matrix, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	n := len(a.data)
	out := make([]float64, n)
	for k := 0; k < n; k++ {
		out[k] = f(a.data[k], b.data[k])
	}

	return reshapeLike(out, a), nil
}

// Add returns a + b elementwise.
//
// Errors: ErrNilMatrix, ErrShapeMismatch (shapes must match in both dimensions).
// Complexity: O(r*c).
func Add(a, b *Matrix) (*Matrix, error) {
	return ewBinary(a, b, func(x, y float64) float64 { return x + y }, opAdd)
}

// Subtract returns a − b elementwise.
//
// Errors: ErrNilMatrix, ErrShapeMismatch.
// Complexity: O(r*c).
func Subtract(a, b *Matrix) (*Matrix, error) {
	return ewBinary(a, b, func(x, y float64) float64 { return x - y }, opSubtract)
}

// MultiplyElementwise returns the Hadamard product a ⊙ b.
//
// Errors: ErrNilMatrix, ErrShapeMismatch.
// Complexity: O(r*c).
func MultiplyElementwise(a, b *Matrix) (*Matrix, error) {
	return ewBinary(a, b, func(x, y float64) float64 { return x * y }, opMultiplyElementwise)
}

// Equal reports whether a and b have the same shape and identical values.
// Layout is ignored: a vector equals a 1×N grid with the same values.
// NaN never equals NaN. Nil or zero-value operands are never equal.
func Equal(a, b *Matrix) bool {
	if !a.valid() || !b.valid() || a.r != b.r || a.c != b.c {
		return false
	}
	for k := range a.data {
		if a.data[k] != b.data[k] {
			return false
		}
	}

	return true
}

// AllClose checks |a-b| ≤ eps elementwise for identical shapes, with eps from
// WithEpsilon (DefaultEpsilon otherwise).
// Returns (true,nil) if all elements satisfy the relation; (false,nil) otherwise.
//
// Errors: ErrNilMatrix, ErrShapeMismatch.
// Time: O(r*c). Space: O(1).
func AllClose(a, b *Matrix, opts ...Option) (bool, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	eps := gatherOptions(opts...).eps

	for k := range a.data {
		if !(math.Abs(a.data[k]-b.data[k]) <= eps) { // NaN fails the check
			return false, nil // early-exit on first violation
		}
	}

	return true, nil
}
