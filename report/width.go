// Copyright 2020-2024 Buf Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package report

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/rivo/uniseg"
)

const (
	// tabstopWidth is the column width tabs render as in a source window.
	tabstopWidth = 4
	// maxMessageWidth bounds a diagnostic headline before it wraps.
	maxMessageWidth = 80
)

// nonPrint reports whether r should be escaped as <U+NNNN> rather than
// printed literally inside a marked source line.
func nonPrint(r rune) bool {
	return !strings.ContainsRune(" \r\t\n", r) && !unicode.IsPrint(r)
}

// stringWidth returns the rendered column width of text starting at column,
// expanding tabs to the next tabstop and escaping unprintable runes as
// <U+NNNN> (or <XX> for an invalid byte), using uniseg for grapheme-aware
// width on the printable remainder.
func stringWidth(column int, text string) int {
	for i, part := range strings.Split(text, "\t") {
		if i > 0 {
			// a tab separated this part from the previous one
			column += tabstopWidth - (column % tabstopWidth)
		}
		column += escapedWidth(part)
	}
	return column
}

func escapedWidth(s string) int {
	width := 0
	for len(s) > 0 {
		r, size := utf8.DecodeRuneInString(s)
		if r == utf8.RuneError && size == 1 {
			width += len(fmt.Sprintf("<%02X>", s[0]))
			s = s[1:]
			continue
		}
		if nonPrint(r) {
			width += len(fmt.Sprintf("<U+%04X>", r))
			s = s[size:]
			continue
		}
		width += uniseg.StringWidth(s[:size])
		s = s[size:]
	}
	return width
}

// escapeUnprintable renders text the way a marked source line displays it:
// unprintable runes replaced with their <U+NNNN> escape, everything else
// passed through untouched.
func escapeUnprintable(text string) string {
	var b strings.Builder
	for _, r := range text {
		if nonPrint(r) {
			fmt.Fprintf(&b, "<U+%04X>", r)
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
