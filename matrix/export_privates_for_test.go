// SPDX-License-Identifier: MIT

package matrix

// Test-Bridge (White-Box) for private helpers.
//
// Purpose:
//   - Expose UNEXPORTED kernels and panic messages to matrix_test ONLY.
//   - The _test.go suffix keeps this surface out of production builds.

// Panic message exports to avoid "magic strings" in tests.
const PanicEpsilonInvalid_TestOnly = panicEpsilonInvalid

// Dot_TestOnly forwards to the private dot kernel shared by VectorDotProduct and Multiply.
func Dot_TestOnly(x, y []float64) float64 { return dot(x, y) }

// SharesStorage_TestOnly reports whether a and b use the same backing array.
func SharesStorage_TestOnly(a, b *Matrix) bool {
	return len(a.data) > 0 && len(b.data) > 0 && &a.data[0] == &b.data[0]
}
