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

// Package lexer scans nazmc source text into a flat token stream, the
// file's lines (for diagnostic rendering), and any lexical errors
// encountered along the way. It never stops at the first error: every
// construct that can recover locally (an unknown character, an out-of-range
// numeric literal, a malformed escape) produces a best-effort token plus a
// recorded [Error] and keeps going.
package lexer

import (
	"github.com/nazm-lang/nazmc/internal/charclass"
	"github.com/nazm-lang/nazmc/internal/intern"
	"github.com/nazm-lang/nazmc/span"
	"github.com/nazm-lang/nazmc/token"
)

var singleCharSymbols = map[rune]token.SymbolKind{
	'،': token.Comma, '؛': token.Semicolon, '؟': token.QuestionMark,
	'(': token.OpenParen, ')': token.CloseParen,
	'{': token.OpenCurly, '}': token.CloseCurly,
	'[': token.OpenSquare, ']': token.CloseSquare,
	'.': token.Dot,
	'<': token.OpenAngle, '>': token.CloseAngle,
	'*': token.Star, '+': token.Plus, '-': token.Minus,
	'|': token.Pipe, '&': token.Amp, '%': token.Percent,
	'~': token.Tilde, '^': token.Caret, '!': token.Bang,
	':': token.Colon, '=': token.Equal, '#': token.Hash,
}

// Lex scans the whole of content and returns its tokens, its lines split
// for diagnostic display, and any lexical errors. interner receives every
// identifier and string literal it scans.
func Lex(content string, interner *intern.Table) ([]token.Token, []string, []Error) {
	l := newLexer(content)
	var tokens []token.Token

	for {
		start := l.pos
		tok, ok := l.nextToken(interner)
		if !ok {
			break
		}
		tok.Span = span.Span{Start: start, End: l.pos}
		tokens = append(tokens, tok)
		l.tokenIdx++
	}

	if len(l.lines) == 0 {
		l.lines = append(l.lines, "")
	}
	return tokens, l.lines, l.errs
}

func (l *lexer) nextToken(interner *intern.Table) (token.Token, bool) {
	if l.atEOF() {
		return token.Token{}, false
	}

	c := l.current()

	switch {
	case c == '/':
		return l.lexSlash(), true
	case c == '\n':
		l.advance()
		return token.Token{Kind: token.EOL}, true
	case c >= '0' && c <= '9':
		return l.lexNumber(), true
	case c == '\'':
		return l.lexQuoted(interner, '\'', true), true
	case c == '"':
		return l.lexQuoted(interner, '"', false), true
	case isInlineSpace(c):
		return l.lexSpace(), true
	}

	if sym, ok := singleCharSymbols[c]; ok {
		l.advance()
		return token.Token{Kind: token.Symbol, Symbol: sym}, true
	}

	return l.lexIdentOrKeyword(interner), true
}

func isInlineSpace(r rune) bool {
	return r == '\t' || r == '\v' || r == '\f' || r == '\r' || r == ' '
}

func (l *lexer) lexSpace() token.Token {
	for {
		r, ok := l.advance()
		if !ok || r == '\n' || !isInlineSpace(r) {
			break
		}
	}
	return token.Token{Kind: token.Space}
}

func (l *lexer) lexSlash() token.Token {
	r, ok := l.advance()

	switch {
	case ok && r == '/':
		for {
			r2, ok2 := l.advanceNonEOL()
			if !ok2 {
				break
			}
			if charclass.Is(r2) {
				l.pushError(KufrOrInvalidChar, 1)
			}
		}
		return token.Token{Kind: token.LineComment}

	case ok && r == '*':
		depth := 1
		for {
			r2, ok2 := l.advance()
			if !ok2 {
				break
			}
			if depth == 0 {
				break
			}
			switch r2 {
			case '/':
				if r3, ok3 := l.advance(); ok3 && r3 == '*' {
					depth++
				}
			case '*':
				if r3, ok3 := l.advance(); ok3 && r3 == '/' {
					depth--
				}
			}
			if charclass.Is(r2) {
				l.pushError(KufrOrInvalidChar, 1)
			}
		}
		if depth != 0 {
			l.pushError(UnclosedDelimitedComment, 1)
		}
		return token.Token{Kind: token.DelimitedComment}

	default:
		return token.Token{Kind: token.Symbol, Symbol: token.Slash}
	}
}
