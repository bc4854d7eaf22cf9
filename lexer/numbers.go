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
	"unicode"

	"github.com/nazm-lang/nazmc/token"
)

// lexNumber scans a numeric literal: the four base-prefixed forms
// (2#/8#/10#/16#) with their suffix-driven sized-integer parsing, plus a
// no-prefix decimal path that additionally recognizes a fractional part
// and an exponent — the decimal/float grammar resolved as an open question
// recorded in DESIGN.md.
func (l *lexer) lexNumber() token.Token {
	rest := string(l.runes[l.i:])

	switch {
	case strings.HasPrefix(rest, "2#"):
		l.advance()
		l.advance()
		return l.lexBasePrefixed(2, isBinDigit)
	case strings.HasPrefix(rest, "8#"):
		l.advance()
		l.advance()
		return l.lexBasePrefixed(8, isOctDigit)
	case strings.HasPrefix(rest, "10#"):
		l.advance()
		l.advance()
		l.advance()
		return l.lexBasePrefixed(10, isDecDigit)
	case strings.HasPrefix(rest, "16#"):
		l.advance()
		l.advance()
		l.advance()
		return l.lexHexPrefixed()
	}

	return l.lexDecimalNumber()
}

func isBinDigit(r rune) bool { return r == '0' || r == '1' }
func isOctDigit(r rune) bool { return r >= '0' && r <= '7' }
func isDecDigit(r rune) bool { return r >= '0' && r <= '9' }
func isHexDigitOrSep(r rune) bool {
	return isHexDigit(r)
}

// digitsArray consumes a run of digits satisfying isDigit, skipping ASCII
// commas used as digit-group separators, and returns the digits collected
// (without the separators).
func (l *lexer) digitsArray(isDigit func(rune) bool) string {
	if l.atEOF() || !isDigit(l.current()) {
		return ""
	}
	var sb strings.Builder
	sb.WriteRune(l.current())
	for {
		r, ok := l.advanceNonEOL()
		if !ok {
			break
		}
		if isDigit(r) {
			sb.WriteRune(r)
		} else if r != ',' {
			break
		}
	}
	return sb.String()
}

func (l *lexer) lexBasePrefixed(base int, isDigit func(rune) bool) token.Token {
	prefixEndCol := l.pos.Col
	digits := l.digitsArray(isDigit)
	suffix, suffixErr := l.validNumSuffix()

	if digits == "" {
		l.pushErrorAt(prefixEndCol, MissingDigitsAfterBasePrefix, 0)
		return token.Token{Kind: token.Literal, Literal: token.LiteralValue{Kind: token.LitNum}}
	}
	if suffixErr != nil {
		suffixErr.Kind = InvalidIntSuffixForBase
		suffixErr.Base = base
		l.errs = append(l.errs, *suffixErr)
		return token.Token{Kind: token.Literal, Literal: token.LiteralValue{Kind: token.LitNum}}
	}

	return l.intToken(digits, suffix, base, prefixEndCol)
}

func (l *lexer) lexHexPrefixed() token.Token {
	prefixEndCol := l.pos.Col
	if l.atEOF() || !isHexDigit(l.current()) {
		_, _ = l.validNumSuffix()
		l.pushErrorAt(prefixEndCol, MissingDigitsAfterBasePrefix, 0)
		return token.Token{Kind: token.Literal, Literal: token.LiteralValue{Kind: token.LitNum}}
	}
	digits := l.digitsArray(isHexDigitOrSep)
	suffix, suffixErr := l.validNumSuffix()
	if suffixErr != nil {
		suffixErr.Kind = InvalidIntSuffixForBase
		suffixErr.Base = 16
		l.errs = append(l.errs, *suffixErr)
		return token.Token{Kind: token.Literal, Literal: token.LiteralValue{Kind: token.LitNum}}
	}
	return l.intToken(digits, suffix, 16, prefixEndCol)
}

func (l *lexer) lexDecimalNumber() token.Token {
	startCol := l.pos.Col
	digits := l.digitsArray(isDecDigit)

	isFloat := false
	var frac string
	if !l.atEOF() && l.current() == '.' {
		// Lookahead: only consume '.' as a fraction separator if a digit follows.
		save := *l
		if _, ok := l.advanceNonEOL(); ok && isDecDigit(l.current()) {
			isFloat = true
			frac = l.digitsArray(isDecDigit)
		} else {
			*l = save
		}
	}

	var exp string
	expNeg := false
	if !l.atEOF() && (l.current() == 'e' || l.current() == 'E') {
		save := *l
		if r, ok := l.advanceNonEOL(); ok && (isDecDigit(r) || r == '+' || r == '-') {
			isFloat = true
			if r == '+' || r == '-' {
				expNeg = r == '-'
				l.advanceNonEOL()
			}
			exp = l.digitsArray(isDecDigit)
		} else {
			*l = save
		}
	}

	suffix, suffixErr := l.validNumSuffix()
	if suffixErr != nil {
		suffixErr.Kind = InvalidNumSuffix
		l.errs = append(l.errs, *suffixErr)
		return token.Token{Kind: token.Literal, Literal: token.LiteralValue{Kind: token.LitNum}}
	}

	if isFloat || suffix == "ع4" || suffix == "ع8" {
		return l.floatToken(digits, frac, exp, expNeg, suffix, startCol)
	}

	return l.intToken(digits, suffix, 10, startCol)
}

// validNumSuffix scans an optional trailing identifier and validates it
// against the twelve exact suffix spellings, ported from
// next_valid_num_suffix.
func (l *lexer) validNumSuffix() (string, *Error) {
	if l.atEOF() || !unicode.IsLetter(l.current()) {
		return "", nil
	}
	startCol := l.pos.Col
	start := l.i
	for {
		r, ok := l.advanceNonEOL()
		if !ok || !(unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_') {
			break
		}
	}
	end := l.i
	id := string(l.runes[start:end])

	switch id {
	case "ص1", "ص2", "ص4", "ص8", "ص",
		"م1", "م2", "م4", "م8", "م",
		"ع4", "ع8":
		return id, nil
	default:
		return "", &Error{
			TokenIndex: l.tokenIdx,
			Kind:       InvalidNumSuffix,
			Span:       l.widthSpan(startCol, l.pos.Col-startCol),
		}
	}
}

func (l *lexer) intToken(digits, suffix string, base, prefixEndCol int) token.Token {
	kind := token.UnspecifiedInt
	bitSize := 64
	unsigned := false

	switch suffix {
	case "":
	case "ص":
		kind, bitSize = token.INative, 64
	case "ص1":
		kind, bitSize = token.I1, 8
	case "ص2":
		kind, bitSize = token.I2, 16
	case "ص4":
		kind, bitSize = token.I4, 32
	case "ص8":
		kind, bitSize = token.I8, 64
	case "م":
		kind, bitSize, unsigned = token.UNative, 64, true
	case "م1":
		kind, bitSize, unsigned = token.U1, 8, true
	case "م2":
		kind, bitSize, unsigned = token.U2, 16, true
	case "م4":
		kind, bitSize, unsigned = token.U4, 32, true
	case "م8":
		kind, bitSize, unsigned = token.U8, 64, true
	default:
		l.pushErrorAt(prefixEndCol+len(digits), InvalidIntSuffixForBase, len(suffix))
		return token.Token{Kind: token.Literal, Literal: token.LiteralValue{Kind: token.LitNum}}
	}

	if suffix == "" {
		v, err := strconv.ParseUint(digits, base, 64)
		if err != nil {
			l.pushErrorAt(prefixEndCol, NumIsOutOfRange, len(digits))
			return token.Token{Kind: token.Literal, Literal: token.LiteralValue{Kind: token.LitNum, Num: token.NumValue{Kind: token.UnspecifiedInt}}}
		}
		return token.Token{Kind: token.Literal, Literal: token.LiteralValue{Kind: token.LitNum, Num: token.NumValue{Kind: kind, Int: v}}}
	}

	if unsigned {
		v, err := strconv.ParseUint(digits, base, bitSize)
		if err != nil {
			l.pushErrorAt(prefixEndCol, NumIsOutOfRange, len(digits))
			return token.Token{Kind: token.Literal, Literal: token.LiteralValue{Kind: token.LitNum, Num: token.NumValue{Kind: kind}}}
		}
		return token.Token{Kind: token.Literal, Literal: token.LiteralValue{Kind: token.LitNum, Num: token.NumValue{Kind: kind, Int: v}}}
	}

	v, err := strconv.ParseInt(digits, base, bitSize)
	if err != nil {
		l.pushErrorAt(prefixEndCol, NumIsOutOfRange, len(digits))
		return token.Token{Kind: token.Literal, Literal: token.LiteralValue{Kind: token.LitNum, Num: token.NumValue{Kind: kind}}}
	}
	return token.Token{Kind: token.Literal, Literal: token.LiteralValue{Kind: token.LitNum, Num: token.NumValue{Kind: kind, Int: uint64(v)}}}
}

func (l *lexer) floatToken(digits, frac, exp string, expNeg bool, suffix string, startCol int) token.Token {
	text := digits
	if frac != "" {
		text += "." + frac
	}
	if exp != "" {
		text += "e"
		if expNeg {
			text += "-"
		}
		text += exp
	}
	if text == "" {
		text = "0"
	}

	bitSize := 64
	kind := token.UnspecifiedFloat
	switch suffix {
	case "ع4":
		kind, bitSize = token.F4, 32
	case "ع8":
		kind, bitSize = token.F8, 64
	case "":
	default:
		l.pushErrorAt(startCol, InvalidFloatSuffix, len(suffix))
		return token.Token{Kind: token.Literal, Literal: token.LiteralValue{Kind: token.LitNum}}
	}

	v, err := strconv.ParseFloat(text, bitSize)
	if err != nil {
		l.pushErrorAt(startCol, NumIsOutOfRange, len(text))
		return token.Token{Kind: token.Literal, Literal: token.LiteralValue{Kind: token.LitNum, Num: token.NumValue{Kind: kind}}}
	}
	return token.Token{Kind: token.Literal, Literal: token.LiteralValue{Kind: token.LitNum, Num: token.NumValue{Kind: kind, Float: v}}}
}
