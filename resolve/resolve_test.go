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

package resolve_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nazm-lang/nazmc/ast"
	"github.com/nazm-lang/nazmc/internal/intern"
	"github.com/nazm-lang/nazmc/lexer"
	"github.com/nazm-lang/nazmc/parser"
	"github.com/nazm-lang/nazmc/resolve"
)

func parseFile(t *testing.T, table *intern.Table, path, src string) resolve.ParsedFile {
	t.Helper()
	toks, _, errs := lexer.Lex(src, table)
	require.Empty(t, errs)
	return resolve.ParsedFile{Path: path, Source: src, AST: ast.Lower(parser.Parse(toks))}
}

func TestCheckConflictsDetectsDuplicateItemInPackage(t *testing.T) {
	table := intern.NewTable()
	f1 := parseFile(t, table, "a.نظم", "هيكل نقطة؛\n")
	f2 := parseFile(t, table, "b.نظم", "هيكل نقطة؛\n")

	items, diags := resolve.CheckConflicts([][]int{{0, 1}}, []resolve.ParsedFile{f1, f2}, table)
	require.Len(t, diags, 1)
	assert.Contains(t, diags[0].Message, "نقطة")
	assert.Len(t, diags[0].Windows, 2)
	require.Len(t, items, 1)
	assert.Equal(t, 1, items[0].Len()) // first occurrence wins the package's item table
}

func TestCheckConflictsNoConflictAcrossPackages(t *testing.T) {
	table := intern.NewTable()
	f1 := parseFile(t, table, "a.نظم", "هيكل نقطة؛\n")
	f2 := parseFile(t, table, "b.نظم", "هيكل نقطة؛\n")

	_, diags := resolve.CheckConflicts([][]int{{0}, {1}}, []resolve.ParsedFile{f1, f2}, table)
	assert.Empty(t, diags)
}

func TestResolveImportsBindsExplicitImport(t *testing.T) {
	table := intern.NewTable()
	lib := parseFile(t, table, "lib.نظم", "تصدير هيكل نقطة؛\n")
	main := parseFile(t, table, "main.نظم", "استيراد مكتبة::نقطة؛\n")

	packages := resolve.NewPackageSet(pkgPaths(table, "مكتبة", ""))
	items, conflictDiags := resolve.CheckConflicts([][]int{{0}, {1}}, []resolve.ParsedFile{lib, main}, table)
	require.Empty(t, conflictDiags)

	fileImports, diags := resolve.ResolveImports([][]int{{0}, {1}}, []resolve.ParsedFile{lib, main}, packages, items, table)
	require.Empty(t, diags)
	require.Len(t, fileImports[1].Resolved, 1)
	assert.Equal(t, 0, fileImports[1].Resolved[0].PkgIdx)
}

func TestResolveImportsReportsUnresolvedPackagePath(t *testing.T) {
	table := intern.NewTable()
	main := parseFile(t, table, "main.نظم", "استيراد غير::معروف::شيء؛\n")

	packages := resolve.NewPackageSet(pkgPaths(table, ""))
	items, _ := resolve.CheckConflicts([][]int{{0}}, []resolve.ParsedFile{main}, table)

	_, diags := resolve.ResolveImports([][]int{{0}}, []resolve.ParsedFile{main}, packages, items, table)
	require.Len(t, diags, 1)
	assert.Contains(t, diags[0].Message, "لم يتم العثور")
}

// pkgPaths interns each dotted path string (segments separated by "::")
// into a package-path id sequence for NewPackageSet; "" denotes the root
// package (an empty segment list).
func pkgPaths(table *intern.Table, paths ...string) [][]intern.ID {
	out := make([][]intern.ID, len(paths))
	for i, p := range paths {
		if p == "" {
			continue
		}
		for _, seg := range strings.Split(p, "::") {
			out[i] = append(out[i], table.Intern(seg))
		}
	}
	return out
}
