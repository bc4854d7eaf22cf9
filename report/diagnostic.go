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

// Package report renders right-to-left, multi-span source diagnostics, per
// §4.8. It owns no knowledge of the lexical/syntactic/name-resolution error
// taxa themselves — lexer.Error, cst.SyntaxError and the resolve/nir
// packages' own error types are each translated into a Diagnostic at their
// call site, then handed here for rendering.
package report

import "github.com/nazm-lang/nazmc/span"

// Label is one piece of explanatory text attached to a single mark within a
// CodeWindow.
type Label struct {
	Span span.Span
	Text string
	Sev  Severity
}

// CodeWindow is one source excerpt a diagnostic points at, with one or more
// labeled spans inside it. A single Diagnostic may carry several windows —
// e.g. the resolver's duplicate-item diagnostic marks every occurrence
// across however many files declared the name, each its own window.
type CodeWindow struct {
	FileName string
	Source   string
	Labels   []Label
}

// Diagnostic is a fully-formed report: one headline message at a severity,
// zero or more source windows, and zero or more chained notes (e.g. the
// "the maximum value for this suffix is N" note chained onto a numeric
// literal overflow).
type Diagnostic struct {
	Severity Severity
	Message  string
	Windows  []CodeWindow
	Notes    []string
}

// NewDiagnostic builds a Diagnostic at the given severity with a single
// message; windows and notes are appended with WithWindow/WithNote.
func NewDiagnostic(sev Severity, message string) Diagnostic {
	return Diagnostic{Severity: sev, Message: message}
}

func (d Diagnostic) WithWindow(w CodeWindow) Diagnostic {
	d.Windows = append(d.Windows, w)
	return d
}

func (d Diagnostic) WithNote(note string) Diagnostic {
	d.Notes = append(d.Notes, note)
	return d
}

// Mark is a convenience constructor for a one-label CodeWindow, the common
// case for lexical/syntactic diagnostics that point at exactly one span.
func Mark(fileName, source string, sp span.Span, text string, sev Severity) CodeWindow {
	return CodeWindow{FileName: fileName, Source: source, Labels: []Label{{Span: sp, Text: text, Sev: sev}}}
}
