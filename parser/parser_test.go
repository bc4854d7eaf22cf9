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

package parser_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nazm-lang/nazmc/cst"
	"github.com/nazm-lang/nazmc/internal/intern"
	"github.com/nazm-lang/nazmc/lexer"
	"github.com/nazm-lang/nazmc/parser"
)

func parseSrc(t *testing.T, src string) cst.File {
	t.Helper()
	table := intern.NewTable()
	toks, _, lexErrs := lexer.Lex(src, table)
	require.Empty(t, lexErrs)
	return parser.Parse(toks)
}

func TestParseImport(t *testing.T) {
	f := parseSrc(t, "استيراد أ::ب؛\n")
	require.Len(t, f.Imports, 1)
	require.True(t, f.Imports[0].Ok)
	assert.False(t, f.Imports[0].Value.IsBroken())
	assert.Len(t, f.Imports[0].Value.Path.Segments, 2)
	assert.False(t, f.IsBroken())
}

func TestParseStarImport(t *testing.T) {
	f := parseSrc(t, "استيراد أ::ب::*؛\n")
	require.Len(t, f.Imports, 1)
	require.True(t, f.Imports[0].Ok)
	assert.NotNil(t, f.Imports[0].Value.Star)
}

func TestParseUnitStruct(t *testing.T) {
	f := parseSrc(t, "هيكل نقطة؛\n")
	require.Len(t, f.Items, 1)
	require.True(t, f.Items[0].Ok)
	assert.Equal(t, cst.ItemUnitStruct, f.Items[0].Value.Kind)
	assert.False(t, f.Items[0].Value.IsBroken())
}

func TestParseTupleStruct(t *testing.T) {
	f := parseSrc(t, "هيكل نقطة(ص4، ص4)؛\n")
	require.Len(t, f.Items, 1)
	require.True(t, f.Items[0].Ok)
	item := f.Items[0].Value
	assert.Equal(t, cst.ItemTupleStruct, item.Kind)
	require.NotNil(t, item.TupleStruct)
	assert.Len(t, item.TupleStruct.Types.Rest, 1)
	assert.False(t, item.IsBroken())
}

func TestParseFieldsStruct(t *testing.T) {
	f := parseSrc(t, "هيكل نقطة{س: ص4، ص: ص4}\n")
	require.Len(t, f.Items, 1)
	item := f.Items[0].Value
	assert.Equal(t, cst.ItemFieldsStruct, item.Kind)
	require.NotNil(t, item.FieldsStruct)
	assert.False(t, item.FieldsStruct.Fields.Broken())
}

func TestParseFnNoReturnNoParams(t *testing.T) {
	f := parseSrc(t, "دالة رئيسي() {}\n")
	require.Len(t, f.Items, 1)
	item := f.Items[0].Value
	require.Equal(t, cst.ItemFn, item.Kind)
	require.NotNil(t, item.Fn)
	assert.False(t, item.Fn.ArrowOk)
	assert.True(t, item.Fn.Body.Ok)
	assert.False(t, item.IsBroken())
}

func TestParseFnWithParamsAndReturnType(t *testing.T) {
	f := parseSrc(t, "دالة جمع(أ: ص4، ب: ص4) -> ص4 { أرجع أ + ب }\n")
	item := f.Items[0].Value
	require.NotNil(t, item.Fn)
	assert.True(t, item.Fn.ArrowOk)
	require.NotNil(t, item.Fn.RetType)
	assert.True(t, item.Fn.RetType.Ok)
	require.Len(t, item.Fn.Params.Rest, 1)
	assert.False(t, item.IsBroken())

	body := item.Fn.Body.Value
	require.NotNil(t, body.Tail)
	assert.True(t, body.Tail.Ok)
	assert.Equal(t, cst.ExprReturn, body.Tail.Value.Kind)
}

func TestParseLetStmt(t *testing.T) {
	f := parseSrc(t, "دالة س() { احجز متغير س: ص4 = 1؛ }\n")
	body := f.Items[0].Value.Fn.Body.Value
	require.Len(t, body.Stmts, 1)
	stmt := body.Stmts[0].Value
	require.Equal(t, cst.StmtLet, stmt.Kind)
	require.NotNil(t, stmt.Let.Mut)
	assert.True(t, stmt.Let.EqualOk)
}

func TestParseBinaryExprLeftLinear(t *testing.T) {
	f := parseSrc(t, "دالة س() { أ + ب * ج }\n")
	body := f.Items[0].Value.Fn.Body.Value
	require.NotNil(t, body.Tail)
	tail := body.Tail.Value
	require.Equal(t, cst.ExprBinary, tail.Kind)
	// Left-linear: ((أ + ب) * ج), not precedence-aware ((أ + (ب * ج))).
	assert.Equal(t, cst.BinMul, tail.Op)
	require.True(t, tail.Lhs.Ok)
	assert.Equal(t, cst.ExprBinary, tail.Lhs.Value.Kind)
	assert.Equal(t, cst.BinAdd, tail.Lhs.Value.Op)
}

func TestParseCallIndexField(t *testing.T) {
	f := parseSrc(t, "دالة س() { أ.ب(ج)[د] }\n")
	body := f.Items[0].Value.Fn.Body.Value
	tail := body.Tail.Value
	require.Equal(t, cst.ExprIndex, tail.Kind)
	require.True(t, tail.Indexed.Ok)
	assert.Equal(t, cst.ExprCall, tail.Indexed.Value.Kind)
}

func TestParseUnaryBorrowInversion(t *testing.T) {
	f := parseSrc(t, "دالة س() { #أ }\n")
	tail := f.Items[0].Value.Fn.Body.Value.Tail.Value
	require.Equal(t, cst.ExprUnary, tail.Kind)
	assert.Equal(t, cst.UnaryBorrowMut, tail.UnaryOp)
}

func TestParseUnaryBorrowWithMut(t *testing.T) {
	f := parseSrc(t, "دالة س() { #متغير أ }\n")
	tail := f.Items[0].Value.Fn.Body.Value.Tail.Value
	require.Equal(t, cst.ExprUnary, tail.Kind)
	assert.Equal(t, cst.UnaryBorrow, tail.UnaryOp)
}

func TestParseIfElse(t *testing.T) {
	f := parseSrc(t, "دالة س() { لو صحيح { 1 } وإلا { 2 } }\n")
	tail := f.Items[0].Value.Fn.Body.Value.Tail.Value
	require.Equal(t, cst.ExprIf, tail.Kind)
	require.NotNil(t, tail.Else)
	assert.True(t, tail.Else.Ok)
	assert.Equal(t, cst.ExprLambda, tail.Else.Value.Kind)
}

func TestParseWhile(t *testing.T) {
	f := parseSrc(t, "دالة س() { طالما صحيح { قطع } }\n")
	tail := f.Items[0].Value.Fn.Body.Value.Tail.Value
	require.Equal(t, cst.ExprWhile, tail.Kind)
	require.True(t, tail.Body.Ok)
}

func TestParseArrayLit(t *testing.T) {
	f := parseSrc(t, "دالة س() { [1، 2، 3] }\n")
	tail := f.Items[0].Value.Fn.Body.Value.Tail.Value
	require.Equal(t, cst.ExprArrayLit, tail.Kind)
	require.NotNil(t, tail.Array)
	assert.Len(t, tail.Array.Rest, 2)
}

func TestParseRecoversFromJunkItem(t *testing.T) {
	f := parseSrc(t, "؟؟؟ هيكل ص؛\n")
	require.True(t, f.IsBroken())
	var found bool
	for _, it := range f.Items {
		if it.Ok && it.Value.Kind == cst.ItemUnitStruct {
			found = true
		}
	}
	assert.True(t, found, "parser should recover and still find the struct after junk tokens")
}
