// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for cross-operand checks.
//  - Keep kernels minimal by delegating nil/shape checks here.
//  - Return sentinel errors tagged with the validator name so call sites can
//    wrap uniformly with matrixErrorf.
//
// Determinism & Performance:
//  - All checks are pure, deterministic, O(1) and allocate nothing on success.
//
// Note:
//  - Composite validators follow a fixed sequence (NotNil → Shape).
//  - Per-matrix well-formedness is established once by the constructors and
//    is not re-checked here beyond the nil/zero-value guard.

package matrix

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures m is a constructed matrix (non-nil, not the zero value).
//
// Returns ErrNilMatrix otherwise.
// Complexity: O(1).
func ValidateNotNil(m *Matrix) error {
	if !m.valid() {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSameShape ensures a and b have equal rows and equal columns.
// Assumes both are non-nil (caller must ensure).
//
// Return: nil or wrapped ErrShapeMismatch.
// Complexity: O(1).
func ValidateSameShape(a, b *Matrix) error {
	if a.r != b.r {
		return validatorErrorf(fmt.Sprintf("ValidateSameShape: rows %d != %d", a.r, b.r), ErrShapeMismatch)
	}
	if a.c != b.c {
		return validatorErrorf(fmt.Sprintf("ValidateSameShape: cols %d != %d", a.c, b.c), ErrShapeMismatch)
	}

	return nil
}

// ValidateBinarySameShape is the composite NotNil(a) → NotNil(b) → SameShape.
//
// Errors: ErrNilMatrix, ErrShapeMismatch.
// Complexity: O(1).
func ValidateBinarySameShape(a, b *Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}
	if err := ValidateSameShape(a, b); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}

	return nil
}

// ValidateVector ensures m is non-nil and has exactly one row.
//
// Errors: ErrNilMatrix, ErrNotVector.
// Complexity: O(1).
func ValidateVector(m *Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return validatorErrorf("ValidateVector", err)
	}
	if m.r != 1 {
		return validatorErrorf(fmt.Sprintf("ValidateVector: %d rows", m.r), ErrNotVector)
	}

	return nil
}

// ValidateMulCompatible ensures a.Cols() == b.Rows() for a·b.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(1).
func ValidateMulCompatible(a, b *Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if a.c != b.r {
		return validatorErrorf(fmt.Sprintf("ValidateMulCompatible: %dx%d · %dx%d", a.r, a.c, b.r, b.c), ErrDimensionMismatch)
	}

	return nil
}

// ValidateReshape ensures rows×cols is positive, fits in an int and holds
// exactly m.Len() elements.
//
// Errors: ErrNilMatrix, ErrInvalidDimensions, ErrReshapeSize.
// Complexity: O(1).
func ValidateReshape(m *Matrix, rows, cols int) error {
	if err := ValidateNotNil(m); err != nil {
		return validatorErrorf("ValidateReshape", err)
	}
	n, err := elementCount(rows, cols)
	if err != nil {
		return validatorErrorf("ValidateReshape", err)
	}
	if n != len(m.data) {
		return validatorErrorf(fmt.Sprintf("ValidateReshape: %dx%d from %d elements", rows, cols, len(m.data)), ErrReshapeSize)
	}

	return nil
}
