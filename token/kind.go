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

// Package token defines the lexical token vocabulary produced by the
// lexer and consumed by the parser.
package token

import (
	"fmt"

	"github.com/nazm-lang/nazmc/internal/intern"
)

// Kind identifies the broad category of a [Token].
type Kind byte

const (
	EOF Kind = iota
	EOL
	Space
	LineComment
	DelimitedComment
	Literal
	Id
	Symbol
	Keyword
)

func (k Kind) String() string {
	switch k {
	case EOF:
		return "EOF"
	case EOL:
		return "EOL"
	case Space:
		return "Space"
	case LineComment:
		return "LineComment"
	case DelimitedComment:
		return "DelimitedComment"
	case Literal:
		return "Literal"
	case Id:
		return "Id"
	case Symbol:
		return "Symbol"
	case Keyword:
		return "Keyword"
	default:
		return fmt.Sprintf("token.Kind(%d)", int(k))
	}
}

// IsSkippable reports whether syntactic analysis should skip over tokens of
// this kind rather than treating them as grammar terminals.
func (k Kind) IsSkippable() bool {
	switch k {
	case Space, EOL, LineComment, DelimitedComment:
		return true
	default:
		return false
	}
}

// LiteralKind distinguishes the four literal shapes the lexer can produce.
type LiteralKind byte

const (
	LitStr LiteralKind = iota
	LitChar
	LitBool
	LitNum
)

// NumKind enumerates every sized numeric literal shape, plus the two
// "unspecified" shapes produced when no suffix is present.
type NumKind byte

const (
	I1 NumKind = iota
	I2
	I4
	I8
	INative
	U1
	U2
	U4
	U8
	UNative
	F4
	F8
	UnspecifiedInt
	UnspecifiedFloat
)

func (n NumKind) String() string {
	names := map[NumKind]string{
		I1: "ص1", I2: "ص2", I4: "ص4", I8: "ص8", INative: "ص",
		U1: "م1", U2: "م2", U4: "م4", U8: "م8", UNative: "م",
		F4: "ع4", F8: "ع8",
		UnspecifiedInt: "<int>", UnspecifiedFloat: "<float>",
	}
	if s, ok := names[n]; ok {
		return s
	}
	return fmt.Sprintf("token.NumKind(%d)", int(n))
}

// IsFloat reports whether n is a floating-point shape: F4, F8 or
// UnspecifiedFloat.
func (n NumKind) IsFloat() bool {
	return n == F4 || n == F8 || n == UnspecifiedFloat
}

// SymbolKind enumerates single-character symbols. Multi-character operators
// are composed from these at parse time (spec.md §6), not lexed directly.
type SymbolKind byte

const (
	Comma SymbolKind = iota
	Semicolon
	QuestionMark
	OpenParen
	CloseParen
	OpenCurly
	CloseCurly
	OpenSquare
	CloseSquare
	Dot
	OpenAngle
	CloseAngle
	Star
	Plus
	Minus
	Pipe
	Amp
	Percent
	Tilde
	Caret
	Bang
	Colon
	Equal
	Hash
	Slash
)

var symbolText = map[SymbolKind]string{
	Comma: "،", Semicolon: "؛", QuestionMark: "؟",
	OpenParen: "(", CloseParen: ")",
	OpenCurly: "{", CloseCurly: "}",
	OpenSquare: "[", CloseSquare: "]",
	Dot: ".", OpenAngle: "<", CloseAngle: ">",
	Star: "*", Plus: "+", Minus: "-",
	Pipe: "|", Amp: "&", Percent: "%",
	Tilde: "~", Caret: "^", Bang: "!",
	Colon: ":", Equal: "=", Hash: "#", Slash: "/",
}

func (s SymbolKind) String() string { return symbolText[s] }

// KeywordKind enumerates the reserved-word vocabulary, per spec.md §6.
type KeywordKind byte

const (
	Fn KeywordKind = iota
	Let
	Mut
	Const
	Static
	Struct
	Enum
	Public
	Private
	On
	If
	Else
	When
	While
	Do
	Break
	Continue
	Return
	Import
)

var keywordText = map[KeywordKind]string{
	Fn: "دالة", Let: "احجز", Mut: "متغير", Const: "ثابت", Static: "مشترك",
	Struct: "هيكل", Enum: "تصنيف", Public: "تصدير", Private: "تخصيص", On: "على",
	If: "لو", Else: "وإلا", When: "عندما", While: "طالما", Do: "افعل",
	Break: "قطع", Continue: "وصل", Return: "أرجع", Import: "استيراد",
}

var textToKeyword = func() map[string]KeywordKind {
	m := make(map[string]KeywordKind, len(keywordText))
	for k, v := range keywordText {
		m[v] = k
	}
	return m
}()

func (k KeywordKind) String() string { return keywordText[k] }

// LookupKeyword returns the keyword matching text, if any.
func LookupKeyword(text string) (KeywordKind, bool) {
	k, ok := textToKeyword[text]
	return k, ok
}

// LiteralValue is the decoded payload of a Literal-kind token.
type LiteralValue struct {
	Kind LiteralKind
	Str  intern.ID  // valid when Kind == LitStr
	Char rune       // valid when Kind == LitChar
	Bool bool       // valid when Kind == LitBool
	Num  NumValue   // valid when Kind == LitNum
}

// NumValue is the decoded payload of a numeric literal.
type NumValue struct {
	Kind  NumKind
	Int   uint64  // valid for signed/unsigned integer kinds (bit-cast for signed)
	Float float64 // valid for float kinds
}
