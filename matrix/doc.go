// Package matrix is a minimal dense-matrix library for 1D row vectors and 2D
// rectangular grids of float64 values.
//
// The matrix package provides:
//
//   - Validated construction from nested Go data (New, FromVector, FromRows):
//     ragged rows, mixed scalar/sequence siblings and non-numeric leaves are
//     rejected once, up front.
//   - Shape transforms: Flatten, Reshape, Transpose, and the constructors
//     Zeros, Ones, Full, Identity.
//   - Arithmetic: Add, Subtract, MultiplyElementwise, MultiplyScalar,
//     VectorDotProduct and the matrix product Multiply.
//
// Every Matrix is an immutable value that owns its storage. Operations never
// mutate their inputs and always return a fresh Matrix, so values can be
// shared read-only across goroutines without locking.
//
// Errors are package sentinels (ErrShape, ErrType, ErrShapeMismatch,
// ErrNotVector, ErrDimensionMismatch, ErrReshapeSize, ...) wrapped with the
// operation name; match them with errors.Is.
//
// N-D tensors, broadcasting, sparse storage and decompositions are out of scope.
package matrix
