// SPDX-License-Identifier: MIT

package matrix

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Localized renders m like String but formats every value with the decimal
// conventions of tag (grouping and decimal separators, at most three
// fraction digits per CLDR's default decimal pattern).
//
//	m.Localized(language.German) // "[1.234,5, 2]" for the vector [1234.5, 2]
//
// Complexity: O(r*c).
func (m *Matrix) Localized(tag language.Tag) string {
	if !m.valid() {
		return _fmtRowOpen + _fmtRowClose
	}
	p := message.NewPrinter(tag)

	return m.render(func(v float64) string { return p.Sprintf("%v", number.Decimal(v)) })
}
