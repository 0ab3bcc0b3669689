// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

// Flatten descends recursively into nested slices/arrays of any depth and
// returns every scalar leaf in left-to-right, top-to-bottom order.
// MAIN DESCRIPTION:
//   - Normalization step behind New; also usable on raw caller data.
//
// Implementation:
//   - Stage 1: fast paths for []float64 and [][]float64 (no reflection).
//   - Stage 2: generic reflective walk; interface values are unwrapped.
//
// Behavior highlights:
//   - Depth is unlimited here; New separately rejects nesting beyond two levels.
//   - Strings are leaves, not sequences, and therefore fail the numeric check.
//   - A nil or empty input yields an empty, non-nil slice.
//
// Errors:
//   - ErrType wrapped with the index path of the first non-numeric leaf.
//
// Complexity:
//   - Time O(total elements), Space O(total elements).
func Flatten(data any) ([]float64, error) {
	switch d := data.(type) {
	case []float64:
		out := make([]float64, len(d))
		copy(out, d)
		return out, nil
	case [][]float64:
		n := 0
		for _, row := range d {
			n += len(row)
		}
		out := make([]float64, 0, n)
		for _, row := range d {
			out = append(out, row...)
		}
		return out, nil
	}

	out := make([]float64, 0)
	if data == nil {
		return out, nil
	}

	return flattenInto(out, reflect.ValueOf(data), nil)
}

// flattenInto appends the leaves of v to out; path tracks indices for errors.
func flattenInto(out []float64, v reflect.Value, path []int) ([]float64, error) {
	v = unwrap(v)
	if isSequence(v) {
		n := v.Len()
		var err error
		for i := 0; i < n; i++ {
			out, err = flattenInto(out, v.Index(i), append(path, i))
			if err != nil {
				return nil, err
			}
		}
		return out, nil
	}

	f, ok := scalarOf(v)
	if !ok {
		return nil, leafError(v, path)
	}

	return append(out, f), nil
}

// unwrap strips interface and pointer indirections.
func unwrap(v reflect.Value) reflect.Value {
	for v.IsValid() && (v.Kind() == reflect.Interface || v.Kind() == reflect.Pointer) {
		if v.IsNil() {
			return reflect.Value{}
		}
		v = v.Elem()
	}

	return v
}

// isSequence reports whether v is a slice or array (strings are leaves).
func isSequence(v reflect.Value) bool {
	if !v.IsValid() {
		return false
	}
	k := v.Kind()

	return k == reflect.Slice || k == reflect.Array
}

// scalarOf converts a numeric leaf to float64.
func scalarOf(v reflect.Value) (float64, bool) {
	if !v.IsValid() {
		return 0, false
	}
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(v.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return float64(v.Uint()), true
	case reflect.Float32, reflect.Float64:
		return v.Float(), true
	default:
		return 0, false
	}
}

// leafError reports a non-numeric leaf with its index path, e.g. "element [0][1] (string)".
func leafError(v reflect.Value, path []int) error {
	typ := "nil"
	if v.IsValid() {
		typ = v.Type().String()
	}

	return fmt.Errorf("element %s (%s): %w", formatPath(path), typ, ErrType)
}

// formatPath renders an index path as "[i][j]".
func formatPath(path []int) string {
	var b strings.Builder
	for _, p := range path {
		b.WriteString("[")
		b.WriteString(strconv.Itoa(p))
		b.WriteString("]")
	}

	return b.String()
}
