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

// Package resolve implements name resolution over a set of packages, each
// a bag of parsed files, per §4.6: duplicate item detection within a
// package, import resolution against the package index, and
// alias-conflict detection once imports are resolved.
package resolve

import (
	"fmt"
	"sort"
	"strings"

	"github.com/tidwall/btree"

	"github.com/nazm-lang/nazmc/ast"
	"github.com/nazm-lang/nazmc/internal/intern"
	"github.com/nazm-lang/nazmc/report"
	"github.com/nazm-lang/nazmc/span"
)

// ParsedFile is one lowered source file plus the bookkeeping the reporter
// needs to render a window into it: its display path and raw source text.
type ParsedFile struct {
	Path   string
	Source string
	AST    ast.File
}

// ItemInFile locates a single top-level item by the file that declares it
// and its index within that file's Items slice.
type ItemInFile struct {
	FileIdx int
	ItemIdx int
}

// PackageItems maps an item's interned name to where it was first declared
// within one package. Built by CheckConflicts, consumed by ResolveImports
// and by nir's path lookup.
type PackageItems struct {
	byName btree.Map[intern.ID, ItemInFile]
}

func (p *PackageItems) Get(id intern.ID) (ItemInFile, bool) { return p.byName.Get(id) }
func (p *PackageItems) set(id intern.ID, v ItemInFile)      { p.byName.Set(id, v) }

// Len reports how many distinct item names this package declares.
func (p *PackageItems) Len() int { return p.byName.Len() }

// pathKey turns a package path (a sequence of interned segment ids) into a
// comparable map key, since a Go slice cannot be used as one directly.
func pathKey(ids []intern.ID) string {
	var b strings.Builder
	for i, id := range ids {
		if i > 0 {
			b.WriteByte('\x00')
		}
		fmt.Fprintf(&b, "%d", id)
	}
	return b.String()
}

// PackageSet maps a package's dotted path to its package index, the
// caller-built table ResolveImports looks paths up against.
type PackageSet map[string]int

// NewPackageSet builds a PackageSet from a list of package paths, indexed
// in the given order.
func NewPackageSet(paths [][]intern.ID) PackageSet {
	out := make(PackageSet, len(paths))
	for i, p := range paths {
		out[pathKey(p)] = i
	}
	return out
}

// Lookup resolves a dotted package path to its package index.
func (ps PackageSet) Lookup(ids []intern.ID) (int, bool) {
	idx, ok := ps[pathKey(ids)]
	return idx, ok
}

const (
	ordinalFallback = "هنا تم العثور على نفس الاسم للمرة %d"
)

var ordinalLabels = []string{
	"هنا تم العثور على أول عنصر بهذا الاسم",
	"هنا تم العثور على نفس الاسم للمرة الثانية",
	"هنا تم العثور على نفس الاسم للمرة الثالثة",
	"هنا تم العثور على نفس الاسم للمرة الرابعة",
	"هنا تم العثور على نفس الاسم للمرة الخامسة",
	"هنا تم العثور على نفس الاسم للمرة السادسة",
	"هنا تم العثور على نفس الاسم للمرة السابعة",
	"هنا تم العثور على نفس الاسم للمرة الثامنة",
	"هنا تم العثور على نفس الاسم للمرة التاسعة",
	"هنا تم العثور على نفس الاسم للمرة العاشرة",
}

func ordinalLabel(occurrence int) string {
	if occurrence >= 1 && occurrence <= len(ordinalLabels) {
		return ordinalLabels[occurrence-1]
	}
	return fmt.Sprintf(ordinalFallback, occurrence)
}

type conflictKey struct {
	pkgIdx int
	name   intern.ID
}

// CheckConflicts scans every package for items sharing a name, per §4.6's
// duplicate-item-detection rule, and returns the per-package item table on
// success. It returns the aggregated diagnostics (one per conflicting
// name) when any conflict exists; the caller is responsible for the
// spec's "compilation aborts" policy once diagnostics is non-empty.
func CheckConflicts(packagesToFiles [][]int, files []ParsedFile, table *intern.Table) ([]PackageItems, []report.Diagnostic) {
	items := make([]PackageItems, len(packagesToFiles))
	conflicts := map[conflictKey]map[int][]span.Span{}
	var order []conflictKey

	for pkgIdx, fileIdxs := range packagesToFiles {
		for _, fileIdx := range fileIdxs {
			f := files[fileIdx]
			for itemIdx, it := range f.AST.Items {
				name := it.Name.Pool
				if first, ok := items[pkgIdx].Get(name); ok {
					key := conflictKey{pkgIdx, name}
					byFile, seen := conflicts[key]
					if !seen {
						byFile = map[int][]span.Span{}
						conflicts[key] = byFile
						order = append(order, key)
						firstFile := files[first.FileIdx]
						byFile[first.FileIdx] = []span.Span{firstFile.AST.Items[first.ItemIdx].Name.Span}
					}
					byFile[fileIdx] = append(byFile[fileIdx], it.Name.Span)
				} else {
					items[pkgIdx].set(name, ItemInFile{FileIdx: fileIdx, ItemIdx: itemIdx})
				}
			}
		}
	}

	var diags []report.Diagnostic
	for _, key := range order {
		byFile := conflicts[key]
		name := table.Value(key.name)
		msg := fmt.Sprintf("يوجد أكثر من عنصر بنفس الاسم `%s` في نفس الحزمة", name)
		d := report.NewDiagnostic(report.SeverityError, msg)

		fileIdxs := make([]int, 0, len(byFile))
		for fi := range byFile {
			fileIdxs = append(fileIdxs, fi)
		}
		sort.Ints(fileIdxs)

		occurrence := 1
		for _, fileIdx := range fileIdxs {
			f := files[fileIdx]
			win := report.CodeWindow{FileName: f.Path, Source: f.Source}
			for _, sp := range byFile[fileIdx] {
				sev := report.SeverityError
				if occurrence > 1 {
					sev = report.SeveritySecondary
				}
				win.Labels = append(win.Labels, report.Label{Span: sp, Text: ordinalLabel(occurrence), Sev: sev})
				occurrence++
			}
			d = d.WithWindow(win)
		}
		diags = append(diags, d)
	}

	return items, diags
}
