// SPDX-License-Identifier: MIT

// Package matrix defines the immutable Matrix value.
//
// What & Why:
//
//	A Matrix is either a 1D row vector or a 2D rectangular grid of float64
//	values. Validation happens once, in the constructors, so every
//	operation can assume a well-formed rectangular shape and only checks
//	the cross-operand conditions it needs (equal shapes, conformant inner
//	dimensions).
//
// Complexity:
//
//	Rows, Cols, Shape and Len run in O(1).
//	Accessors that hand out data (Row, Col, Flat, Data) copy in O(size).
package matrix

import (
	"fmt"
	"math"
)

// Matrix is an immutable row-major container of float64 values.
//   - r,c hold dimensions; a vector has r == 1.
//   - data is a flat buffer of length r*c (offset = i*c + j).
//   - layout tags the input form the matrix was built from.
//
// The zero value is not a valid Matrix; operations reject it with ErrNilMatrix.
type Matrix struct {
	r, c   int       // row and column counts (both > 0 for a valid matrix)
	data   []float64 // exclusively owned; never aliased with another Matrix
	layout Layout    // LayoutVector or LayoutGrid
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Matrix)(nil)

// Rows returns the row count (1 for a vector).
// Complexity: O(1).
func (m *Matrix) Rows() int { return m.r }

// Cols returns the column count.
// Complexity: O(1).
func (m *Matrix) Cols() int { return m.c }

// Shape returns (1, N) for a vector of length N and (R, C) for a grid.
// A single-column grid reports (R, 1).
// Complexity: O(1).
func (m *Matrix) Shape() (rows, cols int) { return m.r, m.c }

// Len returns the total number of scalar elements (rows*cols).
// Complexity: O(1).
func (m *Matrix) Len() int { return len(m.data) }

// Layout reports whether m was built as a vector or a grid.
func (m *Matrix) Layout() Layout { return m.layout }

// IsVector reports whether m has exactly one row, regardless of layout.
// Such a matrix is a valid VectorDotProduct operand.
func (m *Matrix) IsVector() bool { return m.r == 1 }

// valid reports whether m can be operated on.
func (m *Matrix) valid() bool {
	return m != nil && m.r > 0 && m.c > 0 && m.r <= math.MaxInt/m.c && len(m.data) == m.r*m.c
}
