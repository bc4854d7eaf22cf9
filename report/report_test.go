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
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nazm-lang/nazmc/span"
	"github.com/nazm-lang/nazmc/token"
)

func TestRenderSingleLineLabel(t *testing.T) {
	source := "هيكل نقطة؛\n"
	sp := span.Span{Start: span.Position{Line: 0, Col: 0}, End: span.Position{Line: 0, Col: 4}}
	win := Mark("main.نظم", source, sp, "هنا", SeverityError)
	d := NewDiagnostic(SeverityError, "خطأ تجريبي").WithWindow(win)

	out := Render(d, false, false)
	assert.Contains(t, out, "خطأ تجريبي")
	assert.Contains(t, out, "main.نظم")
	assert.Contains(t, out, "هنا")
}

func TestRenderWarningAsErrorColoring(t *testing.T) {
	d := NewDiagnostic(SeverityWarning, "تحذير تجريبي")
	withColor := Render(d, true, true)
	assert.Contains(t, withColor, "\033[")
}

func TestRenderMultiWindowNote(t *testing.T) {
	source := "أ\nب\n"
	sp := span.Span{Start: span.Position{Line: 0, Col: 0}, End: span.Position{Line: 0, Col: 1}}
	d := NewDiagnostic(SeverityError, "رسالة").
		WithWindow(Mark("a.نظم", source, sp, "أول", SeverityError)).
		WithWindow(Mark("b.نظم", source, sp, "ثاني", SeveritySecondary)).
		WithNote("ملاحظة ختامية")

	out := Render(d, false, false)
	assert.Contains(t, out, "أول")
	assert.Contains(t, out, "ثاني")
	assert.Contains(t, out, "ملاحظة ختامية")
}

func TestOutOfRangeNoteBoundsBySuffix(t *testing.T) {
	note := OutOfRangeNote(token.I1)
	assert.Contains(t, note, "127")

	note = OutOfRangeNote(token.U1)
	assert.Contains(t, note, "255")
}

func TestNewLexDiagnosticChainsOutOfRangeNote(t *testing.T) {
	sp := span.Span{Start: span.Position{Line: 0, Col: 0}, End: span.Position{Line: 0, Col: 3}}
	d := NewLexDiagnostic("main.نظم", "١٢٨ص1\n", sp, "NumIsOutOfRange", 0, token.I1)
	require.Len(t, d.Notes, 1)
	assert.Contains(t, d.Notes[0], "127")
}

func TestNewSyntaxDiagnosticNamesMissingPiece(t *testing.T) {
	sp := span.Span{Start: span.Position{Line: 0, Col: 0}, End: span.Position{Line: 0, Col: 1}}
	d := NewSyntaxDiagnostic("main.نظم", "س\n", sp, "؛")
	assert.Contains(t, d.Message, "؛")
}

func TestPainterPaintAndReverse(t *testing.T) {
	p := newPainter(" ")
	p.moveToZero()
	p.paint("a")
	p.moveRight()
	p.paint("b")
	p.moveRight()
	p.paint("c")
	assert.Equal(t, "abc", p.String())

	rows := p.reversedRows()
	require.Len(t, rows, 1)
	assert.Equal(t, "cba", strings.Join(rows[0], ""))
}

func TestPainterGrowsOnDemand(t *testing.T) {
	p := newPainter("-")
	p.moveTo(2, 5)
	p.paint("x")
	row, col := p.currentBrushPos()
	assert.Equal(t, 2, row)
	assert.Equal(t, 5, col)
}

func TestCodeReporterMarkSplitsMultilineSpan(t *testing.T) {
	source := "أ\nب\nج\n"
	cr := newCodeReporter(source)
	sp := span.Span{Start: span.Position{Line: 0, Col: 0}, End: span.Position{Line: 2, Col: 1}}
	cr.mark(Label{Span: sp, Text: "عبر عدة أسطر", Sev: SeverityError})

	assert.NotEmpty(t, cr.line(0).multiStart)
	assert.NotEmpty(t, cr.line(1).through)
	assert.NotEmpty(t, cr.line(2).multiEnd)
}
