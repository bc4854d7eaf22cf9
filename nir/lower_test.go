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

package nir_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nazm-lang/nazmc/ast"
	"github.com/nazm-lang/nazmc/internal/intern"
	"github.com/nazm-lang/nazmc/lexer"
	"github.com/nazm-lang/nazmc/nir"
	"github.com/nazm-lang/nazmc/parser"
	"github.com/nazm-lang/nazmc/resolve"
)

func buildSingleFile(t *testing.T, src string) (nir.NIR, []string) {
	t.Helper()
	table := intern.NewTable()
	toks, _, lexErrs := lexer.Lex(src, table)
	require.Empty(t, lexErrs)
	file := resolve.ParsedFile{Path: "main.نظم", Source: src, AST: ast.Lower(parser.Parse(toks))}

	packagesToFiles := [][]int{{0}}
	files := []resolve.ParsedFile{file}
	items, conflicts := resolve.CheckConflicts(packagesToFiles, files, table)
	require.Empty(t, conflicts)

	packages := resolve.NewPackageSet([][]intern.ID{{}})
	fileImports, importDiags := resolve.ResolveImports(packagesToFiles, files, packages, items, table)
	require.Empty(t, importDiags)

	builder := nir.NewBuilder(table, packages, packagesToFiles, files, items, fileImports)
	n, diags := builder.Build()

	var msgs []string
	for _, d := range diags {
		msgs = append(msgs, d.Message)
	}
	return n, msgs
}

func TestLowerUnitStructGetsHandleSlot(t *testing.T) {
	n, diags := buildSingleFile(t, "هيكل نقطة؛\n")
	require.Empty(t, diags)
	require.Len(t, n.Packages, 1)
	require.Len(t, n.Packages[0].UnitStructs, 1)
}

func TestLowerTupleStructTypesResolvedAsPaths(t *testing.T) {
	n, diags := buildSingleFile(t, "هيكل نقطة(ص4، ص4)؛\n")
	require.Empty(t, diags)
	require.Len(t, n.Packages[0].TupleStructs, 1)
	assert.Len(t, n.Packages[0].TupleStructs[0].Types, 2)
}

func TestLowerFnBodyReturnExprBecomesBinaryHandle(t *testing.T) {
	n, diags := buildSingleFile(t, "دالة س(س: ص4) { س + س }\n")
	require.Empty(t, diags)
	require.Len(t, n.Packages[0].Fns, 1)
	fn := n.Packages[0].Fns[0]
	require.NotNil(t, fn.Body.ReturnExpr)
	assert.Equal(t, nir.ExprBinary, fn.Body.ReturnExpr.KindAndIndex.Kind())
}

func TestLowerStructFieldReferencesLaterDeclaredItem(t *testing.T) {
	n, diags := buildSingleFile(t, "هيكل حاوية{س: لاحق}\nهيكل لاحق؛\n")
	require.Empty(t, diags)
	require.Len(t, n.Packages[0].FieldsStructs, 1)
	container := n.Packages[0].FieldsStructs[0]
	require.Len(t, container.Fields, 1)
	assert.Equal(t, nir.TypePath, container.Fields[0].Type.KindAndIndex.Kind())
}

func TestItemHandlePacksKindVisIndex(t *testing.T) {
	h := nir.NewItemHandle(nir.ItemFn, nir.VisPublic, 42)
	assert.Equal(t, nir.ItemFn, h.Kind())
	assert.Equal(t, nir.VisPublic, h.Vis())
	assert.Equal(t, 42, h.Index())
}

func TestTypeKindAndIndexRoundTrips(t *testing.T) {
	k := nir.NewTypeKindAndIndex(nir.TypeLambda, 7)
	assert.Equal(t, nir.TypeLambda, k.Kind())
	assert.Equal(t, 7, k.Index())
}
