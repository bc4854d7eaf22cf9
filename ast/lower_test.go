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

package ast_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nazm-lang/nazmc/ast"
	"github.com/nazm-lang/nazmc/cst"
	"github.com/nazm-lang/nazmc/internal/intern"
	"github.com/nazm-lang/nazmc/lexer"
	"github.com/nazm-lang/nazmc/parser"
)

func lowerSrc(t *testing.T, src string) ast.File {
	t.Helper()
	table := intern.NewTable()
	toks, _, lexErrs := lexer.Lex(src, table)
	require.Empty(t, lexErrs)
	return ast.Lower(parser.Parse(toks))
}

func TestLowerImportSplitsItemFromPath(t *testing.T) {
	f := lowerSrc(t, "استيراد أ::ب::ج؛\n")
	require.Len(t, f.Imports, 1)
	assert.Len(t, f.Imports[0].Path.Segments, 2)
}

func TestLowerStarImportKeepsFullPrefix(t *testing.T) {
	f := lowerSrc(t, "استيراد أ::ب::*؛\n")
	require.Len(t, f.StarImports, 1)
	assert.Len(t, f.StarImports[0].Path.Segments, 2)
}

func TestLowerFnBodyReturnExprWithoutSemicolon(t *testing.T) {
	f := lowerSrc(t, "دالة س() { أ + ب }\n")
	require.Len(t, f.Items, 1)
	fn := f.Items[0].Fn
	require.NotNil(t, fn)
	require.NotNil(t, fn.Body.ReturnExpr)
	assert.Equal(t, cst.ExprBinary, fn.Body.ReturnExpr.Kind)
}

func TestLowerFnBodyNoReturnExprWithSemicolon(t *testing.T) {
	f := lowerSrc(t, "دالة س() { أ + ب؛ }\n")
	fn := f.Items[0].Fn
	require.NotNil(t, fn)
	assert.Nil(t, fn.Body.ReturnExpr)
	assert.Len(t, fn.Body.Stmts, 1)
}

func TestLowerIfElseBlockUnwrapsLambdaWrapper(t *testing.T) {
	f := lowerSrc(t, "دالة س() { لو صحيح { 1 } وإلا { 2 } }\n")
	fn := f.Items[0].Fn
	require.NotNil(t, fn.Body.ReturnExpr)
	ifExpr := fn.Body.ReturnExpr
	require.NotNil(t, ifExpr.ElseBlock)
	require.NotNil(t, ifExpr.ElseBlock.ReturnExpr)
}

func TestLowerTupleStructTypes(t *testing.T) {
	f := lowerSrc(t, "هيكل نقطة(ص4، ص4)؛\n")
	require.Len(t, f.Items, 1)
	assert.Len(t, f.Items[0].TupleTypes, 2)
}
