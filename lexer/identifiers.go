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
	"unicode"

	"github.com/nazm-lang/nazmc/internal/intern"
	"github.com/nazm-lang/nazmc/token"
)

func (l *lexer) lexIdentOrKeyword(interner *intern.Table) token.Token {
	if !unicode.IsLetter(l.current()) {
		c := l.current()
		l.advance()
		l.pushError(UnknownToken, 1)
		return token.Token{Kind: token.Id, Literal: token.LiteralValue{Str: interner.Intern(string(c))}}
	}

	start := l.i
	for {
		r, ok := l.advanceNonEOL()
		if !ok || !(unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_') {
			break
		}
	}
	end := l.i
	if l.atEOF() {
		end = len(l.runes)
	}

	text := string(l.runes[start:end])

	switch text {
	case "صحيح":
		return token.Token{Kind: token.Literal, Literal: token.LiteralValue{Kind: token.LitBool, Bool: true}}
	case "فاسد":
		return token.Token{Kind: token.Literal, Literal: token.LiteralValue{Kind: token.LitBool, Bool: false}}
	}

	if kw, ok := token.LookupKeyword(text); ok {
		return token.Token{Kind: token.Keyword, Keyword: kw}
	}

	return token.Token{Kind: token.Id, Literal: token.LiteralValue{Str: interner.Intern(text)}}
}
