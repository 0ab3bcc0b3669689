// Package densemat is a small, dependency-light dense-matrix toolkit for
// code that needs basic numeric-array semantics without a heavyweight
// numeric library.
//
// 🚀 What is in densemat?
//
//	One package, matrix, with:
//		• Validated construction: vectors and rectangular grids from nested Go data
//		• Shape transforms: Flatten, Reshape, Transpose, Zeros, Ones, Full, Identity
//		• Arithmetic: Add, Subtract, MultiplyElementwise, MultiplyScalar
//		• Linear algebra: VectorDotProduct, Multiply
//
// ✨ Guarantees
//
//   - Immutable values – every operation returns a fresh Matrix
//   - Fail fast – ragged input, non-numeric leaves and shape mismatches are
//     sentinel errors, never panics
//   - Exact reshapes – a target shape must hold exactly the same element count
//
// Quick example:
//
//	a, _ := matrix.New([][]int{{1, 2}, {3, 4}})
//	b, _ := matrix.New([][]int{{5, 6}, {7, 8}})
//	p, _ := matrix.Multiply(a, b)
//	fmt.Print(p)
//	// [19, 22]
//	// [43, 50]
//
// See examples/ for a runnable walkthrough.
//
//	go get github.com/katalvlaran/densemat/matrix
package densemat
