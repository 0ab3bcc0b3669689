// SPDX-License-Identifier: MIT

package matrix_test

import (
	"testing"

	"github.com/katalvlaran/densemat/matrix"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func TestLocalized(t *testing.T) {
	t.Parallel()

	vec := MustVector(t, []float64{1234.5, 2})
	require.Equal(t, "[1,234.5, 2]", vec.Localized(language.English))
	require.Equal(t, "[1.234,5, 2]", vec.Localized(language.German))

	grid := MustRows(t, [][]float64{{1000, 1}, {2, 3}})
	require.Equal(t, "[1,000, 1]\n[2, 3]\n", grid.Localized(language.English))

	var zero matrix.Matrix
	require.Equal(t, "[]", zero.Localized(language.English))
}
