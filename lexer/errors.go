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
	"fmt"

	"github.com/nazm-lang/nazmc/span"
	"github.com/nazm-lang/nazmc/token"
)

// ErrorKind enumerates every lexical error shape the lexer can produce.
type ErrorKind byte

const (
	UnclosedChar ErrorKind = iota
	UnclosedStr
	ManyChars
	ZeroChars
	UnclosedDelimitedComment
	UnknownToken
	UnicodeCodePointHexDigitOnly
	InvalidUnicodeCodePoint
	UnknownEscapeSequence
	KufrOrInvalidChar
	MissingDigitsAfterBasePrefix
	InvalidDigitForBase
	InvalidIntSuffixForBase
	InvalidFloatSuffix
	InvalidNumSuffix
	NumIsOutOfRange
)

func (k ErrorKind) String() string {
	switch k {
	case UnclosedChar:
		return "UnclosedChar"
	case UnclosedStr:
		return "UnclosedStr"
	case ManyChars:
		return "ManyChars"
	case ZeroChars:
		return "ZeroChars"
	case UnclosedDelimitedComment:
		return "UnclosedDelimitedComment"
	case UnknownToken:
		return "UnknownToken"
	case UnicodeCodePointHexDigitOnly:
		return "UnicodeCodePointHexDigitOnly"
	case InvalidUnicodeCodePoint:
		return "InvalidUnicodeCodePoint"
	case UnknownEscapeSequence:
		return "UnknownEscapeSequence"
	case KufrOrInvalidChar:
		return "KufrOrInvalidChar"
	case MissingDigitsAfterBasePrefix:
		return "MissingDigitsAfterBasePrefix"
	case InvalidDigitForBase:
		return "InvalidDigitForBase"
	case InvalidIntSuffixForBase:
		return "InvalidIntSuffixForBase"
	case InvalidFloatSuffix:
		return "InvalidFloatSuffix"
	case InvalidNumSuffix:
		return "InvalidNumSuffix"
	case NumIsOutOfRange:
		return "NumIsOutOfRange"
	default:
		return fmt.Sprintf("lexer.ErrorKind(%d)", int(k))
	}
}

// Error is a single lexical diagnostic, anchored to the token that produced
// it and a span within the source.
type Error struct {
	TokenIndex int
	Span       span.Span
	Kind       ErrorKind
	Base       int         // valid for base-prefixed integer errors
	NumKind    token.NumKind // valid for NumIsOutOfRange
}

func (e Error) Error() string {
	return fmt.Sprintf("%s at %s", e.Kind, e.Span.Start)
}
