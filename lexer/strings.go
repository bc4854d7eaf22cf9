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

package lexer

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/nazm-lang/nazmc/internal/charclass"
	"github.com/nazm-lang/nazmc/internal/intern"
	"github.com/nazm-lang/nazmc/span"
	"github.com/nazm-lang/nazmc/token"
)

// lexQuoted scans a string or char literal starting at the opening quote
// (already the current rune).
func (l *lexer) lexQuoted(interner *intern.Table, quote rune, isChar bool) token.Token {
	startCol := l.pos.Col

	var sb strings.Builder

	for {
		r, ok, err := l.nextValidChar(quote)
		if err != nil {
			if err.Kind == UnclosedStr {
				if isChar {
					err.Kind = UnclosedChar
				}
				l.errs = append(l.errs, *err)
				if isChar {
					return token.Token{Kind: token.Literal, Literal: token.LiteralValue{Kind: token.LitChar}}
				}
				return token.Token{Kind: token.Literal, Literal: token.LiteralValue{Kind: token.LitStr, Str: interner.Intern("")}}
			}
			l.errs = append(l.errs, *err)
			if !ok {
				continue
			}
		}
		if !ok {
			break
		}
		sb.WriteRune(r)
	}

	decoded := sb.String()

	if !isChar {
		return token.Token{Kind: token.Literal, Literal: token.LiteralValue{Kind: token.LitStr, Str: interner.Intern(decoded)}}
	}

	runes := []rune(decoded)
	switch len(runes) {
	case 0:
		l.pushErrorAt(startCol, ZeroChars, 1)
		return token.Token{Kind: token.Literal, Literal: token.LiteralValue{Kind: token.LitChar}}
	case 1:
		return token.Token{Kind: token.Literal, Literal: token.LiteralValue{Kind: token.LitChar, Char: runes[0]}}
	default:
		l.pushErrorAt(startCol, ManyChars, 1)
		return token.Token{Kind: token.Literal, Literal: token.LiteralValue{Kind: token.LitChar}}
	}
}

func (l *lexer) widthSpan(col, width int) span.Span {
	start := span.Position{Line: l.pos.Line, Col: col}
	end := span.Position{Line: l.pos.Line, Col: col + width}
	return span.Span{Start: start, End: end}
}

func (l *lexer) pushErrorAt(col int, kind ErrorKind, width int) {
	l.errs = append(l.errs, Error{
		TokenIndex: l.tokenIdx,
		Kind:       kind,
		Span:       l.widthSpan(col, width),
	})
}

// nextValidChar decodes the next logical character of a string/char body.
// It returns (rune, true, nil) for a regular character, (0, false, nil)
// when the closing quote was consumed, or an error when the body is
// malformed or the literal runs off the end of the line unclosed.
func (l *lexer) nextValidChar(quote rune) (rune, bool, *Error) {
	r, ok := l.advanceNonEOL()
	if !ok {
		return 0, false, l.newError(UnclosedStr, 1)
	}
	if r == quote {
		l.advance()
		return 0, false, nil
	}
	if r != '\\' {
		if charclass.Is(r) {
			return r, true, l.newError(KufrOrInvalidChar, 1)
		}
		return r, true, nil
	}

	r2, ok2 := l.advanceNonEOL()
	if !ok2 {
		return 0, false, l.newError(UnclosedStr, 1)
	}

	if r2 != 'ي' {
		if esc, found := escapeFor(r2); found {
			return esc, true, nil
		}
		return 0, true, l.newError(UnknownEscapeSequence, 1)
	}

	startCol := l.pos.Col + 1 // mark after ي
	var hex [4]rune
	for i := 0; i < 4; i++ {
		r3, ok3 := l.advanceNonEOL()
		if !ok3 {
			return 0, false, l.newError(UnclosedStr, 1)
		}
		hex[i] = r3
	}
	for _, h := range hex {
		if !isHexDigit(h) {
			return 0, true, &Error{TokenIndex: l.tokenIdx, Kind: UnicodeCodePointHexDigitOnly, Span: l.widthSpan(startCol, 4)}
		}
	}

	cp, err := strconv.ParseUint(string(hex[:]), 16, 32)
	if err != nil || !utf8.ValidRune(rune(cp)) {
		return 0, true, &Error{TokenIndex: l.tokenIdx, Kind: InvalidUnicodeCodePoint, Span: l.widthSpan(startCol, 4)}
	}
	ch := rune(cp)
	if charclass.Is(ch) {
		return ch, true, &Error{TokenIndex: l.tokenIdx, Kind: KufrOrInvalidChar, Span: l.widthSpan(startCol, 4)}
	}
	return ch, true, nil
}

func isHexDigit(r rune) bool {
	return (r >= '0' && r <= '9') || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
}

// escapeFor maps the Arabic-letter escape mnemonics (and the four ordinary
// backslash escapes) to the character they stand for.
func escapeFor(c rune) (rune, bool) {
	switch c {
	case 'خ':
		return '\b', true
	case 'ر':
		return '\v', true
	case 'ص':
		return '\f', true
	case 'ف':
		return '\t', true
	case 'س':
		return '\n', true
	case 'ج':
		return '\r', true
	case '\\':
		return '\\', true
	case '\'':
		return '\'', true
	case '"':
		return '"', true
	case '0':
		return 0, true
	default:
		return 0, false
	}
}
