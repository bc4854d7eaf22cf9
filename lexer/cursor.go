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

import "github.com/nazm-lang/nazmc/span"

// lexer walks a source file one Unicode scalar at a time, tracking
// line/column position directly rather than byte offsets, because the
// diagnostic reporter's markers are column-based.
//
// Working over a []rune buffer instead of re-slicing the source string by
// byte index sidesteps UTF-8 boundary bookkeeping entirely; the tradeoff is
// an up-front O(n) decode of the whole file, which is fine for a
// single-file compiler front end.
type lexer struct {
	runes     []rune
	i         int // index of the rune the cursor is stopped at
	pos       span.Position
	lineStart int
	lines     []string
	errs      []Error
	tokenIdx  int
}

func newLexer(content string) *lexer {
	return &lexer{runes: []rune(content)}
}

// atEOF reports whether the cursor has run past the end of the buffer.
func (l *lexer) atEOF() bool {
	return l.i >= len(l.runes)
}

// current returns the rune the cursor is stopped at. It must not be called
// when atEOF is true.
func (l *lexer) current() rune {
	return l.runes[l.i]
}

// advance moves the cursor one rune forward, updating line/column and
// collecting completed lines, and returns the rune now stopped at and
// whether one exists.
func (l *lexer) advance() (rune, bool) {
	if l.atEOF() {
		return 0, false
	}

	wasEOL := l.runes[l.i] == '\n'
	if wasEOL {
		l.lines = append(l.lines, string(l.runes[l.lineStart:l.i]))
		l.lineStart = l.i + 1
		l.pos.Line++
		l.pos.Col = 0
	} else {
		l.pos.Col++
	}
	l.i++

	if l.atEOF() {
		if wasEOL {
			l.lines = append(l.lines, "")
		} else if l.lineStart < len(l.runes) {
			l.lines = append(l.lines, string(l.runes[l.lineStart:l.i]))
			l.lineStart = l.i
		}
		return 0, false
	}
	return l.runes[l.i], true
}

// advanceNonEOL is advance, except it reports false (without consuming
// further) if the new cursor position is a newline. Callers use this to
// stop scanning a single-line construct (comment, string, char literal) at
// an unescaped line end.
func (l *lexer) advanceNonEOL() (rune, bool) {
	r, ok := l.advance()
	if ok && r == '\n' {
		return 0, false
	}
	return r, ok
}

func (l *lexer) newError(kind ErrorKind, width int) *Error {
	end := l.pos
	end.Col += width
	return &Error{
		TokenIndex: l.tokenIdx,
		Span:       span.Span{Start: l.pos, End: end},
		Kind:       kind,
	}
}

func (l *lexer) pushError(kind ErrorKind, width int) {
	l.errs = append(l.errs, *l.newError(kind, width))
}
