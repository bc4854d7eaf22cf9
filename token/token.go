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

package token

import (
	"github.com/nazm-lang/nazmc/span"
)

// Token is a single lexeme: its raw source text, the span it occupies, and
// a kind-specific payload.
//
// The Text field is always the verbatim source slice, even for kinds that
// also carry a decoded payload (e.g. a string literal's Text includes the
// surrounding quotes and escape sequences; Literal.Str holds the decoded,
// interned value).
type Token struct {
	Text    string
	Span    span.Span
	Kind    Kind
	Symbol  SymbolKind  // valid when Kind == Symbol
	Keyword KeywordKind // valid when Kind == Keyword
	Literal LiteralValue
}

// IsSkippable reports whether t should be skipped over by the parser.
func (t Token) IsSkippable() bool {
	return t.Kind.IsSkippable()
}

// EOFToken returns the sentinel end-of-file token at pos.
func EOFToken(pos span.Position) Token {
	return Token{Span: span.Span{Start: pos, End: pos}, Kind: EOF}
}
