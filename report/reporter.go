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
	"strconv"
	"strings"

	"github.com/tidwall/btree"
)

// codeLine accumulates every mark that lands on one source line, split
// between marks that start and end entirely within the line and marks that
// are one endpoint of a span crossing several lines. This mirrors the
// original code_reporter's per-line HashMap, trimmed: rather than a full
// connection-margin free-list allocator, a multi-line span gets a single
// reserved gutter column for its whole run, since our diagnostics rarely
// nest more than one or two multi-line spans at once.
type codeLine struct {
	text       string
	singleLine []Label  // fully contained on this line
	multiStart []Label  // span starts here, continues below
	multiEnd   []Label  // span ends here, started above
	through    []Label  // span strictly passes through this line
}

// codeReporter collects, line-indexed, every mark for one CodeWindow before
// rendering it in source order.
type codeReporter struct {
	lines btree.Map[int, *codeLine]
}

func newCodeReporter(source string) *codeReporter {
	cr := &codeReporter{}
	for i, line := range strings.Split(source, "\n") {
		cr.lines.Set(i, &codeLine{text: line})
	}
	return cr
}

func (cr *codeReporter) line(i int) *codeLine {
	if l, ok := cr.lines.Get(i); ok {
		return l
	}
	l := &codeLine{}
	cr.lines.Set(i, l)
	return l
}

// mark records one label's span against the lines it touches, splitting a
// multi-line span into a start mark, an end mark, and pass-through filler
// for every line strictly between them.
func (cr *codeReporter) mark(l Label) {
	start, end := l.Span.Start.Line, l.Span.End.Line
	if start == end {
		cr.line(start).singleLine = append(cr.line(start).singleLine, l)
		return
	}
	cr.line(start).multiStart = append(cr.line(start).multiStart, l)
	for i := start + 1; i < end; i++ {
		cr.line(i).through = append(cr.line(i).through, l)
	}
	cr.line(end).multiEnd = append(cr.line(end).multiEnd, l)
}

// draw renders one source line plus every marker row it owns: an
// underline-and-label row per single-line mark (columns right-to-left, per
// §4.8's RTL convention), a "/" lead-in for spans starting here, and a
// "^"-underline-and-label row for spans ending here.
func (l *codeLine) draw(gutter int, colorize bool) []string {
	var out []string
	prefix := fmt.Sprintf("%*s | ", gutter, "")
	out = append(out, strings.Repeat(" ", gutter)+" | "+escapeUnprintable(l.text))

	for _, m := range l.through {
		s := styleFor(m.Sev, colorize)
		out = append(out, prefix+s.wrap("|"))
	}
	for _, m := range l.multiStart {
		s := styleFor(m.Sev, colorize)
		pad := stringWidth(0, l.text[:minInt(len(l.text), runeIndexToByte(l.text, m.Span.Start.Col))])
		out = append(out, prefix+strings.Repeat(" ", pad)+s.wrap("/"))
	}
	for _, m := range append(append([]Label{}, l.singleLine...), l.multiEnd...) {
		out = append(out, drawUnderline(prefix, l.text, m, colorize))
	}
	return out
}

func runeIndexToByte(s string, idx int) int {
	i := 0
	for b := range s {
		if i == idx {
			return b
		}
		i++
	}
	return len(s)
}

// drawUnderline renders the caret run under m's column range on this line
// plus its label text, colored per severity.
func drawUnderline(prefix, text string, m Label, colorize bool) string {
	startByte := runeIndexToByte(text, m.Span.Start.Col)
	endCol := m.Span.End.Col
	if m.Span.End.Line != m.Span.Start.Line {
		// end-of-multiline mark: underline from line start through end col.
		startByte = 0
	}
	endByte := runeIndexToByte(text, endCol)
	if endByte <= startByte {
		endByte = startByte + 1
		if endByte > len(text) {
			endByte = len(text)
		}
	}

	leadWidth := stringWidth(0, text[:startByte])
	runeLen := len([]rune(text[startByte:endByte]))
	if runeLen < 1 {
		runeLen = 1
	}

	s := styleFor(m.Sev, colorize)
	sign := string(m.Sev.defaultSign())
	underline := strings.Repeat(sign, runeLen)

	var b strings.Builder
	b.WriteString(prefix)
	b.WriteString(strings.Repeat(" ", leadWidth))
	b.WriteString(s.wrap(underline))
	if m.Text != "" {
		b.WriteByte(' ')
		b.WriteString(s.wrap(m.Text))
	}
	return b.String()
}

// Render produces the full printable form of a diagnostic: a severity +
// message header, then one block per window with a `-->` file location
// line and the marked source, then any chained notes.
func Render(d Diagnostic, colorize, warningsAsErrors bool) string {
	sev := d.Severity
	if warningsAsErrors && sev == SeverityWarning {
		sev = SeverityError
	}
	headStyle := styleFor(sev, colorize)

	var b strings.Builder
	fmt.Fprintf(&b, "%s: %s\n", headStyle.wrap(sev.String()), d.Message)

	for _, w := range d.Windows {
		renderWindow(&b, w, colorize)
	}
	for _, n := range d.Notes {
		fmt.Fprintf(&b, "%s: %s\n", styleFor(SeverityNote, colorize).wrap(SeverityNote.String()), n)
	}
	return b.String()
}

func renderWindow(b *strings.Builder, w CodeWindow, colorize bool) {
	cr := newCodeReporter(w.Source)
	for _, l := range w.Labels {
		cr.mark(l)
	}

	maxLine := 0
	cr.lines.Scan(func(i int, _ *codeLine) bool {
		if i > maxLine {
			maxLine = i
		}
		return true
	})
	gutter := len(strconv.Itoa(maxLine + 1))

	firstLine := 0
	if len(w.Labels) > 0 {
		firstLine = w.Labels[0].Span.Start.Line
		firstCol := w.Labels[0].Span.Start.Col
		fmt.Fprintf(b, "%*s--> %s:%d:%d\n", gutter, "", w.FileName, firstLine+1, firstCol+1)
	}
	fmt.Fprintf(b, "%*s |\n", gutter, "")

	prevShown := -1
	first := true
	cr.lines.Scan(func(i int, l *codeLine) bool {
		if len(l.singleLine) == 0 && len(l.multiStart) == 0 && len(l.multiEnd) == 0 && len(l.through) == 0 && !first {
			return true
		}
		if prevShown >= 0 && i > prevShown+1 {
			if i == prevShown+2 {
				fmt.Fprintf(b, "%*d | %s\n", gutter, prevShown+2, escapeUnprintable(skippedText(cr, prevShown+1)))
			} else {
				fmt.Fprintf(b, "%*s ...\n", gutter, "")
			}
		}
		blankPrefix := strings.Repeat(" ", gutter) + " | "
		numberedPrefix := fmt.Sprintf("%*d | ", gutter, i+1)
		for j, row := range l.draw(gutter, colorize) {
			if j == 0 {
				row = numberedPrefix + strings.TrimPrefix(row, blankPrefix)
			}
			b.WriteString(row)
			b.WriteByte('\n')
		}
		prevShown = i
		first = false
		return true
	})
}

func skippedText(cr *codeReporter, i int) string {
	if l, ok := cr.lines.Get(i); ok {
		return l.text
	}
	return ""
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
