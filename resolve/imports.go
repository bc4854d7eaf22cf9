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

package resolve

import (
	"fmt"

	"github.com/nazm-lang/nazmc/ast"
	"github.com/nazm-lang/nazmc/internal/intern"
	"github.com/nazm-lang/nazmc/report"
	"github.com/nazm-lang/nazmc/span"
)

// ResolvedImport is one explicit or star import once its package (and, for
// explicit imports, its item) has been looked up.
type ResolvedImport struct {
	PkgIdx int
	Item   ItemInFile // zero value for a star import: the binding is deferred
	Alias  ast.Id
	Star   bool
}

// FileImports is the import table for a single file: every explicit and
// star import that resolved successfully, keyed by the file's own index
// for later lookup by nir's path lowering.
type FileImports struct {
	Resolved []ResolvedImport
}

// ByAlias finds a resolved (non-star) import by its alias name, the first
// lookup nir's path-with-no-package-prefix rule performs.
func (fi FileImports) ByAlias(id intern.ID, table *intern.Table) (ResolvedImport, bool) {
	for _, r := range fi.Resolved {
		if r.Star {
			continue
		}
		if r.Alias.Pool == id {
			return r, true
		}
	}
	return ResolvedImport{}, false
}

func unresolvedImportErr(file ParsedFile, table *intern.Table, id intern.ID, sp span.Span) report.Diagnostic {
	name := table.Value(id)
	msg := fmt.Sprintf("لم يتم العثور على الاسم `%s` في المسار", name)
	win := report.Mark(file.Path, file.Source, sp, "هذا الاسم غير موجود داخل المسار المحدد", report.SeverityError)
	return report.NewDiagnostic(report.SeverityError, msg).WithWindow(win)
}

// pkgPathErr shrinks pkgPath by popping its trailing segment until a still
// known prefix remains, reporting the first invalid segment — the "shrink
// to the longest known prefix" rule of §4.6.
func pkgPathErr(file ParsedFile, table *intern.Table, packages PackageSet, ids []intern.ID, spans []span.Span) report.Diagnostic {
	firstID, firstSpan := ids[0], spans[0]
	for len(ids) > 0 {
		lastID := ids[len(ids)-1]
		lastSpan := spans[len(spans)-1]
		ids = ids[:len(ids)-1]
		spans = spans[:len(spans)-1]
		if _, ok := packages.Lookup(ids); ok {
			return unresolvedImportErr(file, table, lastID, lastSpan)
		}
	}
	// Degenerate case: even the empty prefix is unknown. Report the
	// original first segment rather than panicking, since an empty
	// package path always resolves to "the root", which always exists.
	return unresolvedImportErr(file, table, firstID, firstSpan)
}

func idsAndSpans(p ast.Path) ([]intern.ID, []span.Span) {
	ids := make([]intern.ID, len(p.Segments))
	spans := make([]span.Span, len(p.Segments))
	for i, seg := range p.Segments {
		ids[i] = seg.Pool
		spans[i] = seg.Span
	}
	return ids, spans
}

// ResolveImports resolves every file's explicit and star imports against
// packages, per §4.6, then detects alias-vs-existing-item-name collisions
// within each file. It returns one FileImports per file (indexed the same
// way as files) and the aggregated diagnostics; the caller aborts once any
// diagnostic is present.
func ResolveImports(
	packagesToFiles [][]int,
	files []ParsedFile,
	packages PackageSet,
	packagesToItems []PackageItems,
	table *intern.Table,
) ([]FileImports, []report.Diagnostic) {
	fileImports := make([]FileImports, len(files))
	var diags []report.Diagnostic

	for _, fileIdxs := range packagesToFiles {
		for _, fileIdx := range fileIdxs {
			file := files[fileIdx]
			var resolved []ResolvedImport

			for _, imp := range file.AST.Imports {
				ids, spans := idsAndSpans(imp.Path)
				resolvedPkgIdx, ok := packages.Lookup(ids)
				if !ok {
					diags = append(diags, pkgPathErr(file, table, packages, ids, spans))
					continue
				}
				item, ok := packagesToItems[resolvedPkgIdx].Get(imp.Item.Pool)
				if !ok {
					diags = append(diags, unresolvedImportErr(file, table, imp.Item.Pool, imp.Item.Span))
					continue
				}
				resolved = append(resolved, ResolvedImport{PkgIdx: resolvedPkgIdx, Item: item, Alias: imp.Item})
			}

			for _, star := range file.AST.StarImports {
				ids, spans := idsAndSpans(star.Path)
				resolvedPkgIdx, ok := packages.Lookup(ids)
				if !ok {
					diags = append(diags, pkgPathErr(file, table, packages, ids, spans))
					continue
				}
				// Bind the whole target package rather than resolving each
				// of its items up front: nir's path lowering looks an item
				// up against this package's table lazily, only when a name
				// is actually referenced through the star import.
				resolved = append(resolved, ResolvedImport{PkgIdx: resolvedPkgIdx, Star: true})
			}

			fileImports[fileIdx] = FileImports{Resolved: resolved}
		}
	}

	diags = append(diags, detectAliasConflicts(packagesToFiles, files, fileImports, packagesToItems, table)...)

	return fileImports, diags
}

// detectAliasConflicts reports every explicit-import alias that collides
// with an item name already declared in the same file's package, per
// §4.6's alias-conflict pass.
func detectAliasConflicts(
	packagesToFiles [][]int,
	files []ParsedFile,
	fileImports []FileImports,
	packagesToItems []PackageItems,
	table *intern.Table,
) []report.Diagnostic {
	var diags []report.Diagnostic

	for pkgIdx, fileIdxs := range packagesToFiles {
		for _, fileIdx := range fileIdxs {
			file := files[fileIdx]
			byName := map[intern.ID][]span.Span{}
			var order []intern.ID

			for _, r := range fileImports[fileIdx].Resolved {
				if r.Star {
					continue
				}
				if itemWithSameName, ok := packagesToItems[pkgIdx].Get(r.Alias.Pool); ok {
					if _, seen := byName[r.Alias.Pool]; !seen {
						firstSpan := file.AST.Items[itemWithSameName.ItemIdx].Name.Span
						byName[r.Alias.Pool] = []span.Span{firstSpan}
						order = append(order, r.Alias.Pool)
					}
					byName[r.Alias.Pool] = append(byName[r.Alias.Pool], r.Alias.Span)
				}
			}

			for _, name := range order {
				spans := byName[name]
				nameStr := table.Value(name)
				msg := fmt.Sprintf("يوجد أكثر من عنصر بنفس الاسم `%s` في نفس الملف", nameStr)
				win := report.CodeWindow{FileName: file.Path, Source: file.Source}
				for i, sp := range spans {
					sev := report.SeverityError
					if i > 0 {
						sev = report.SeveritySecondary
					}
					win.Labels = append(win.Labels, report.Label{Span: sp, Text: ordinalLabel(i + 1), Sev: sev})
				}
				diags = append(diags, report.NewDiagnostic(report.SeverityError, msg).WithWindow(win))
			}
		}
	}

	return diags
}
