// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All operations MUST return these sentinels (optionally wrapped with
// an operation tag) and tests MUST check them via errors.Is. No operation
// panics on user-triggered error conditions.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and grepping.
// Operations wrap these sentinels with matrixErrorf(op, err), so callers see
// "Multiply: matrix: dimension mismatch" and still match with errors.Is.
//
// ERROR PRIORITY (construction, enforced in tests):
// nil/empty input -> non-numeric leaf -> NaN/Inf policy -> ragged shape.

var (
	// ErrType is returned when a leaf element of constructor input is not numeric.
	ErrType = errors.New("matrix: non-numeric element")

	// ErrShape is returned when constructor input is ragged: rows of unequal
	// length, scalars mixed with sequences, or nesting deeper than two levels.
	ErrShape = errors.New("matrix: inconsistent shape")

	// ErrShapeMismatch indicates that two operands of an elementwise operation
	// (Add, Subtract, MultiplyElementwise, VectorDotProduct) differ in shape.
	ErrShapeMismatch = errors.New("matrix: shape mismatch")

	// ErrNotVector indicates that VectorDotProduct received an operand with
	// more than one row.
	ErrNotVector = errors.New("matrix: operand is not a row vector")

	// ErrDimensionMismatch indicates incompatible inner dimensions for
	// Multiply, i.e. a.Cols() != b.Rows().
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrReshapeSize indicates that a target shape does not hold exactly the
	// same number of elements as the source matrix.
	ErrReshapeSize = errors.New("matrix: reshape size mismatch")

	// ErrInvalidDimensions indicates empty input or non-positive requested dimensions.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	// Public indexers (At/Row/Col) return this, never panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrNilMatrix indicates that a nil or zero-value *Matrix was passed.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrNaNInf signals a NaN or ±Inf value rejected by the numeric policy
	// (see WithValidateNaNInf).
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")
)
