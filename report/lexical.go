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

	"github.com/nazm-lang/nazmc/span"
	"github.com/nazm-lang/nazmc/token"
)

// lexErrorMessages carries the Arabic wording for each lexer.ErrorKind's
// String() form. Kept here, not in package lexer, since lexer only records
// what went wrong (kind, base, span) and leaves rendering to this package.
var lexErrorMessages = map[string]string{
	"UnclosedChar":                 "حرف غير مغلق",
	"UnclosedStr":                  "نص غير مغلق",
	"ManyChars":                    "أكثر من حرف واحد داخل فاصلتي الحرف",
	"ZeroChars":                    "لا يوجد حرف داخل فاصلتي الحرف",
	"UnclosedDelimitedComment":     "تعليق متعدد الأسطر غير مغلق",
	"UnknownToken":                 "رمز غير معروف",
	"UnicodeCodePointHexDigitOnly": "نقطة الترميز يجب أن تكون أرقاماً سداسية عشرية فقط",
	"InvalidUnicodeCodePoint":      "نقطة ترميز يونيكود غير صالحة",
	"UnknownEscapeSequence":        "تتابع هروب غير معروف",
	"KufrOrInvalidChar":            "رمز غير مسموح به في الشيفرة المصدرية",
	"MissingDigitsAfterBasePrefix": "أرقام مفقودة بعد بادئة الأساس",
	"InvalidDigitForBase":          "رقم غير صالح لهذا الأساس",
	"InvalidIntSuffixForBase":      "لاحقة عدد صحيح غير صالحة لهذا الأساس",
	"InvalidFloatSuffix":           "لاحقة عدد عشري غير صالحة",
	"InvalidNumSuffix":             "لاحقة عدد غير صالحة",
	"NumIsOutOfRange":              "قيمة العدد خارج النطاق المسموح به للاحقته",
}

// NewLexDiagnostic renders a single lexical error into a Diagnostic. kind
// is the ErrorKind's String() form (e.g. "NumIsOutOfRange"); base is the
// numeric base for base-prefixed digit errors (0 when irrelevant); numKind
// is only meaningful when kind is "NumIsOutOfRange".
func NewLexDiagnostic(fileName, source string, sp span.Span, kind string, base int, numKind token.NumKind) Diagnostic {
	msg, ok := lexErrorMessages[kind]
	if !ok {
		msg = fmt.Sprintf("خطأ لفظي: %s", kind)
	}
	if (kind == "InvalidDigitForBase" || kind == "InvalidIntSuffixForBase") && base != 0 {
		msg = fmt.Sprintf("%s (الأساس %d)", msg, base)
	}
	win := Mark(fileName, source, sp, msg, SeverityError)
	d := NewDiagnostic(SeverityError, msg).WithWindow(win)
	if kind == "NumIsOutOfRange" {
		d = d.WithNote(OutOfRangeNote(numKind))
	}
	return d
}

// NewSyntaxDiagnostic renders a recoverable-parse failure (cst.SyntaxError's
// What tag) into a Diagnostic. what is a short Arabic noun phrase naming the
// missing piece, e.g. "نوع" or "؛" — see cst.CollectSyntaxErrors.
func NewSyntaxDiagnostic(fileName, source string, sp span.Span, what string) Diagnostic {
	msg := fmt.Sprintf("كان من المتوقع %s في هذا الموضع", what)
	win := Mark(fileName, source, sp, "هنا", SeverityError)
	return NewDiagnostic(SeverityError, msg).WithWindow(win)
}
