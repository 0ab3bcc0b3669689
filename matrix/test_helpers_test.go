// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic test fixtures and utilities.
//   • Keep all data finite and well-formed unless a test says otherwise.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/densemat/matrix"
	"github.com/stretchr/testify/require"
)

// MustNew BUILDS a Matrix from raw nested data or fails the test.
func MustNew(t testing.TB, data any, opts ...matrix.Option) *matrix.Matrix {
	t.Helper()
	m, err := matrix.New(data, opts...)
	if err != nil {
		t.Fatalf("New(%v): %v", data, err)
	}

	return m
}

// MustRows BUILDS a grid from typed rows or fails the test.
func MustRows(t testing.TB, rows [][]float64) *matrix.Matrix {
	t.Helper()
	m, err := matrix.FromRows(rows)
	if err != nil {
		t.Fatalf("FromRows(%v): %v", rows, err)
	}

	return m
}

// MustVector BUILDS a vector from a typed slice or fails the test.
func MustVector(t testing.TB, v []float64) *matrix.Matrix {
	t.Helper()
	m, err := matrix.FromVector(v)
	if err != nil {
		t.Fatalf("FromVector(%v): %v", v, err)
	}

	return m
}

// RequireShape ASSERTS m has the given shape.
func RequireShape(t testing.TB, m *matrix.Matrix, rows, cols int) {
	t.Helper()
	r, c := m.Shape()
	require.Equal(t, [2]int{rows, cols}, [2]int{r, c}, "shape")
}

// RequireData ASSERTS m holds exactly want (row by row).
func RequireData(t testing.TB, want [][]float64, m *matrix.Matrix) {
	t.Helper()
	require.Equal(t, want, m.Data())
}

// RandRows RETURNS an r×c slice of deterministic U(-1,1) values by seed.
// Values are finite so numeric-policy checks never interfere.
func RandRows(r, c int, seed int64) [][]float64 {
	rng := rand.New(rand.NewSource(seed))
	out := make([][]float64, r)
	var i, j int
	for i = 0; i < r; i++ {
		out[i] = make([]float64, c)
		for j = 0; j < c; j++ {
			out[i][j] = rng.Float64()*2 - 1 // 0*2-1=-1 || 1*2-1=1
		}
	}

	return out
}

// RandIntRows RETURNS an r×c slice of deterministic small integers in [-9, 9].
// Integer-valued float64 products stay exact, so properties can use Equal.
func RandIntRows(r, c int, seed int64) [][]float64 {
	rng := rand.New(rand.NewSource(seed))
	out := make([][]float64, r)
	for i := range out {
		out[i] = make([]float64, c)
		for j := range out[i] {
			out[i][j] = float64(rng.Intn(19) - 9)
		}
	}

	return out
}
