// SPDX-License-Identifier: MIT

// Package matrix - row-major storage & safe accessors.
//
// Purpose:
//   - Keep a flat row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Row/Col return errors instead of panicking.
//   - Keep algorithmic determinism (fixed loop orders, no map iteration).
//   - Never hand out the backing buffer: every accessor returns a copy.
//
// Complexity quicksheet:
//   - newDense: O(r*c) zero-init; At: O(1); Row: O(c); Col: O(r); Flat/Data: O(r*c).

package matrix

import (
	"fmt"
	"math"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt  = "At"  // method tag used in error wrappers
	ctxRow = "Row" // method tag used in error wrappers
	ctxCol = "Col" // method tag used in error wrappers
)

// ---------- Formatting literals  ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]"
	_fmtSep      = ", "
	_fmtNewline  = "\n"
)

// denseErrorf wraps an error with a uniform Matrix context and callsite indices.
// Complexity: O(1).
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Matrix.%s(%d,%d): %w", method, row, col, err)
}

// elementCount returns rows*cols for a positive shape.
// Non-positive dimensions, or a product that does not fit in an int, yield
// ErrInvalidDimensions.
// Complexity: O(1).
func elementCount(rows, cols int) (int, error) {
	if rows <= 0 || cols <= 0 {
		return 0, ErrInvalidDimensions
	}
	if rows > math.MaxInt/cols {
		return 0, fmt.Errorf("%dx%d overflows int: %w", rows, cols, ErrInvalidDimensions)
	}

	return rows * cols, nil
}

// newDense allocates an r×c zero matrix with the given layout.
// MAIN DESCRIPTION:
//   - Internal constructor shared by New, Zeros and every operation result.
//
// Implementation:
//   - Stage 1: elementCount (rows>0, cols>0, no int overflow); else ErrInvalidDimensions.
//   - Stage 2: allocate zero-filled buffer and hand it to fromFlat.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func newDense(rows, cols int, layout Layout) (*Matrix, error) {
	n, err := elementCount(rows, cols)
	if err != nil {
		return nil, err
	}

	return fromFlat(make([]float64, n), rows, cols, layout), nil // make() zero-fills deterministically
}

// indexOf computes the row-major offset or returns ErrOutOfRange.
// Complexity: O(1).
func (m *Matrix) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	// Row-major offset: i*c + j.
	return row*m.c + col, nil
}

// At returns the value at (row, col) or ErrOutOfRange.
// For a vector, row must be 0.
// Complexity: O(1).
func (m *Matrix) At(row, col int) (float64, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, denseErrorf(ctxAt, row, col, err)
	}

	return m.data[off], nil
}

// Row returns a copy of row i.
// For a vector, Row(0) is the whole vector.
// Complexity: O(c).
func (m *Matrix) Row(i int) ([]float64, error) {
	if i < 0 || i >= m.r {
		return nil, denseErrorf(ctxRow, i, 0, ErrOutOfRange)
	}

	return m.rowView(i, make([]float64, m.c)), nil
}

// Col returns a copy of column j, gathered by indexing every row at j.
// Complexity: O(r).
func (m *Matrix) Col(j int) ([]float64, error) {
	if j < 0 || j >= m.c {
		return nil, denseErrorf(ctxCol, 0, j, ErrOutOfRange)
	}

	return m.colGather(j, make([]float64, m.r)), nil
}

// rowView copies row i into dst (len(dst) == m.c) and returns dst.
func (m *Matrix) rowView(i int, dst []float64) []float64 {
	copy(dst, m.data[i*m.c:(i+1)*m.c])

	return dst
}

// colGather copies column j into dst (len(dst) == m.r) and returns dst.
func (m *Matrix) colGather(j int, dst []float64) []float64 {
	for i := 0; i < m.r; i++ {
		dst[i] = m.data[i*m.c+j]
	}

	return dst
}

// Flat returns the elements in row-major order as a fresh slice.
// This is the no-failure flatten for already validated matrices.
// Complexity: O(r*c).
func (m *Matrix) Flat() []float64 {
	out := make([]float64, len(m.data))
	copy(out, m.data)

	return out
}

// Data returns a fresh [][]float64 with one slice per row.
// A vector yields a single row.
// Complexity: O(r*c).
func (m *Matrix) Data() [][]float64 {
	out := make([][]float64, m.r)
	for i := 0; i < m.r; i++ {
		out[i] = m.rowView(i, make([]float64, m.c))
	}

	return out
}

// String renders the matrix for diagnostics.
// MAIN DESCRIPTION:
//   - Grid: one "[a, b]" line per row, each terminated by "\n".
//   - Vector: a single "[a, b, c]" with no trailing newline.
//
// Implementation:
//   - Stage 1: iterate rows/cols deterministically.
//   - Stage 2: write values with %g into a strings.Builder.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func (m *Matrix) String() string {
	if !m.valid() {
		return _fmtRowOpen + _fmtRowClose
	}

	return m.render(func(v float64) string { return fmt.Sprintf("%g", v) })
}

// render lays out rows with the shared delimiters, formatting values with f.
func (m *Matrix) render(f func(float64) string) string {
	var b strings.Builder
	var i, j, base int
	for i = 0; i < m.r; i++ { // iterate rows deterministically
		b.WriteString(_fmtRowOpen)
		base = i * m.c
		for j = 0; j < m.c; j++ {
			b.WriteString(f(m.data[base+j]))
			if j+1 < m.c {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
		if m.layout != LayoutVector {
			b.WriteString(_fmtNewline)
		}
	}

	return b.String()
}
