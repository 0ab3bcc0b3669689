// SPDX-License-Identifier: MIT

// Package matrix: domain types shared by constructors and operations.
// Errors and options live in dedicated files (errors.go, options.go).
package matrix

// Number is the set of Go scalar types accepted by the typed constructors.
// All values are converted to float64 on ingestion (single scalar type).
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Layout records how a Matrix was shaped at construction.
// It is decided once from the input type and never re-derived.
type Layout uint8

const (
	// LayoutVector is a flat sequence of scalars; Shape() reports (1, N).
	LayoutVector Layout = iota + 1
	// LayoutGrid is a sequence of equal-length rows; Shape() reports (R, C).
	LayoutGrid
)

// String returns a stable name for diagnostics.
func (l Layout) String() string {
	switch l {
	case LayoutVector:
		return "vector"
	case LayoutGrid:
		return "grid"
	default:
		return "invalid"
	}
}
