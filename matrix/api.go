// SPDX-License-Identifier: MIT
// Package matrix: public API facades.
//
// Purpose:
//   - Provide short, conventional names for the canonical operations.
//   - Avoid any logic duplication; each facade delegates to the canonical implementation.
//
// Determinism & Policy:
//   - Facades never change validation or loop order of the underlying kernels.

package matrix

// Sub is an alias for Subtract: element-wise a − b.
// Complexity: O(rc).
func Sub(a, b *Matrix) (*Matrix, error) { return Subtract(a, b) }

// Hadamard is an alias for MultiplyElementwise: element-wise a ⊙ b.
// Complexity: O(rc).
func Hadamard(a, b *Matrix) (*Matrix, error) { return MultiplyElementwise(a, b) }

// Scale is an alias for MultiplyScalar: α*m.
// Complexity: O(rc).
func Scale(m *Matrix, alpha float64) (*Matrix, error) { return MultiplyScalar(m, alpha) }

// Mul is an alias for Multiply: matrix product a × b.
// Complexity: O(r*n*c).
func Mul(a, b *Matrix) (*Matrix, error) { return Multiply(a, b) }

// Dot is an alias for VectorDotProduct.
// Complexity: O(n).
func Dot(a, b *Matrix) (float64, error) { return VectorDotProduct(a, b) }

// T is an alias for Transpose: returns mᵀ.
// Complexity: O(rc).
func T(m *Matrix) (*Matrix, error) { return Transpose(m) }
