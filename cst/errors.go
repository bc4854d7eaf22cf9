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

package cst

import (
	"github.com/nazm-lang/nazmc/span"
	"github.com/nazm-lang/nazmc/token"
)

// SyntaxError names the point where a recoverable parse gave up while
// building some node, per §7's "carries a single found_token_index" taxon.
// The reporter synthesizes the displayed Arabic message from What.
type SyntaxError struct {
	Span span.Span
	What string // a short, non-localized tag naming the missing piece
}

// tokenSpan resolves a found-token index against toks, falling back to
// fallback when the index runs past the token list (e.g. at EOF) or is
// unavailable (-1, for brokenness recorded in-place rather than via a
// failed Result).
func tokenSpan(toks []token.Token, idx int, fallback span.Span) span.Span {
	if idx >= 0 && idx < len(toks) {
		return toks[idx].Span
	}
	return fallback
}

// CollectSyntaxErrors walks f and reports every broken node it finds,
// collapsing each broken node to a single span/tag pair: the precise "was
// it a missing comma or a missing item" distinction from §7 is not
// reconstructed post-hoc here, since Delimited does not retain which
// branch failed beyond its own Broken() flag. This is a deliberate
// simplification.
func CollectSyntaxErrors(f File, toks []token.Token) []SyntaxError {
	var out []SyntaxError
	for _, r := range f.Imports {
		walkImportResult(r, toks, &out)
	}
	for _, r := range f.Items {
		walkItemResult(r, toks, &out)
	}
	return out
}

func push(out *[]SyntaxError, toks []token.Token, idx int, fallback span.Span, what string) {
	*out = append(*out, SyntaxError{Span: tokenSpan(toks, idx, fallback), What: what})
}

func walkImportResult(r Result[Import], toks []token.Token, out *[]SyntaxError) {
	if !r.Ok {
		push(out, toks, r.FoundTokenIndex, span.Span{}, "مسار استيراد")
		return
	}
	imp := r.Value
	if !imp.SemicolonOk {
		push(out, toks, -1, imp.Path.Span(), "؛")
	}
}

func walkItemResult(r Result[Item], toks []token.Token, out *[]SyntaxError) {
	if !r.Ok {
		push(out, toks, r.FoundTokenIndex, span.Span{}, "عنصر")
		return
	}
	it := r.Value
	switch it.Kind {
	case ItemUnitStruct:
		if it.UnitStruct == nil {
			push(out, toks, -1, span.Span{}, "هيكل")
		} else if !it.UnitStruct.SemicolonOk {
			push(out, toks, -1, it.UnitStruct.Name.Span, "؛")
		}
	case ItemTupleStruct:
		walkTupleStruct(it.TupleStruct, toks, out)
	case ItemFieldsStruct:
		walkFieldsStruct(it.FieldsStruct, toks, out)
	case ItemFn:
		walkFn(it.Fn, toks, out)
	}
}

func walkDelimited[T any](d Delimited[T], toks []token.Token, walkItem func(T, []token.Token, *[]SyntaxError), out *[]SyntaxError) {
	if !d.OpenOk || !d.CloseOk {
		push(out, toks, -1, span.Span{}, "قائمة")
	}
	if !d.HasItems {
		return
	}
	walkResult(d.First, toks, walkItem, out)
	for _, c := range d.Rest {
		walkResult(c.Item, toks, walkItem, out)
	}
}

func walkResult[T any](r Result[T], toks []token.Token, walkItem func(T, []token.Token, *[]SyntaxError), out *[]SyntaxError) {
	if !r.Ok {
		push(out, toks, r.FoundTokenIndex, span.Span{}, "عنصر")
		return
	}
	walkItem(r.Value, toks, out)
}

func walkType(t Type, toks []token.Token, out *[]SyntaxError) {
	switch t.Kind {
	case TypePtr, TypeRef, TypePtrMut, TypeRefMut, TypeSlice, TypeParen:
		if t.Inner == nil || !t.Inner.Ok {
			push(out, toks, resultIdx(t.Inner), t.Span, "نوع")
		} else {
			walkType(t.Inner.Value, toks, out)
		}
	case TypeTuple:
		if t.Tuple == nil {
			push(out, toks, -1, t.Span, "نوع")
		} else {
			walkDelimited(*t.Tuple, toks, walkType, out)
		}
	case TypeArray:
		if t.ArrayElem == nil || !t.ArrayElem.Ok {
			push(out, toks, resultIdx(t.ArrayElem), t.Span, "نوع")
		} else {
			walkType(t.ArrayElem.Value, toks, out)
		}
		if t.ArrayLen == nil || !t.ArrayLen.Ok {
			push(out, toks, resultIdx(t.ArrayLen), t.Span, "تعبير الطول")
		} else {
			walkExpr(t.ArrayLen.Value, toks, out)
		}
	case TypeLambda:
		if t.LambdaParams == nil {
			push(out, toks, -1, t.Span, "معاملات")
		} else {
			walkDelimited(*t.LambdaParams, toks, walkType, out)
		}
		if t.LambdaRet != nil && !t.LambdaRet.Ok {
			push(out, toks, t.LambdaRet.FoundTokenIndex, t.Span, "نوع الإرجاع")
		}
	}
}

func resultIdx[T any](r *Result[T]) int {
	if r == nil {
		return -1
	}
	return r.FoundTokenIndex
}

func walkField(f Field, toks []token.Token, out *[]SyntaxError) {
	if !f.Type.Ok {
		push(out, toks, f.Type.FoundTokenIndex, f.Name.Span, "نوع")
		return
	}
	walkType(f.Type.Value, toks, out)
}

func walkParam(p Param, toks []token.Token, out *[]SyntaxError) {
	if !p.Type.Ok {
		push(out, toks, p.Type.FoundTokenIndex, p.Name.Span, "نوع")
		return
	}
	walkType(p.Type.Value, toks, out)
}

func walkTupleStruct(s *TupleStruct, toks []token.Token, out *[]SyntaxError) {
	if s == nil {
		push(out, toks, -1, span.Span{}, "هيكل")
		return
	}
	walkDelimited(s.Types, toks, walkType, out)
	if !s.SemicolonOk {
		push(out, toks, -1, s.Name.Span, "؛")
	}
}

func walkFieldsStruct(s *FieldsStruct, toks []token.Token, out *[]SyntaxError) {
	if s == nil {
		push(out, toks, -1, span.Span{}, "هيكل")
		return
	}
	walkDelimited(s.Fields, toks, walkField, out)
}

func walkFn(f *Fn, toks []token.Token, out *[]SyntaxError) {
	if f == nil {
		push(out, toks, -1, span.Span{}, "دالة")
		return
	}
	walkDelimited(f.Params, toks, walkParam, out)
	if f.RetType != nil && !f.RetType.Ok {
		push(out, toks, f.RetType.FoundTokenIndex, f.Name.Span, "نوع الإرجاع")
	}
	if !f.Body.Ok {
		push(out, toks, f.Body.FoundTokenIndex, f.Name.Span, "جسم الدالة")
		return
	}
	walkBlock(f.Body.Value, toks, out)
}

func walkBlock(b Block, toks []token.Token, out *[]SyntaxError) {
	if !b.OpenOk || !b.CloseOk {
		push(out, toks, -1, span.Span{}, "{ }")
	}
	for _, r := range b.Stmts {
		walkResult(r, toks, walkStmt, out)
	}
	if b.Tail != nil {
		if !b.Tail.Ok {
			push(out, toks, b.Tail.FoundTokenIndex, span.Span{}, "تعبير")
		} else {
			walkExpr(b.Tail.Value, toks, out)
		}
	}
}

func walkStmt(s Stmt, toks []token.Token, out *[]SyntaxError) {
	switch s.Kind {
	case StmtLet:
		if s.Let == nil {
			push(out, toks, -1, span.Span{}, "تصريح")
			return
		}
		if !s.Let.EqualOk {
			push(out, toks, -1, s.Let.Name.Span, "=")
		}
		if s.Let.Type != nil && !s.Let.Type.Ok {
			push(out, toks, s.Let.Type.FoundTokenIndex, s.Let.Name.Span, "نوع")
		}
		if s.Let.Value != nil {
			if !s.Let.Value.Ok {
				push(out, toks, s.Let.Value.FoundTokenIndex, s.Let.Name.Span, "تعبير")
			} else {
				walkExpr(s.Let.Value.Value, toks, out)
			}
		}
		if !s.Let.SemicolonOk {
			push(out, toks, -1, s.Let.Name.Span, "؛")
		}
	case StmtExpr:
		if s.Expr == nil || !s.Expr.Ok {
			push(out, toks, resultIdx(s.Expr), span.Span{}, "تعبير")
			return
		}
		walkExpr(s.Expr.Value, toks, out)
		if !s.SemicolonOk {
			push(out, toks, -1, s.Expr.Value.Span, "؛")
		}
	}
}

func walkStructLitField(f StructLitField, toks []token.Token, out *[]SyntaxError) {
	if !f.Value.Ok {
		push(out, toks, f.Value.FoundTokenIndex, f.Name.Span, "تعبير")
		return
	}
	walkExpr(f.Value.Value, toks, out)
}

func walkLambdaParam(p LambdaParam, toks []token.Token, out *[]SyntaxError) {
	if p.Type != nil && !p.Type.Ok {
		push(out, toks, p.Type.FoundTokenIndex, p.Name.Span, "نوع")
	}
}

func walkExpr(e Expr, toks []token.Token, out *[]SyntaxError) {
	switch e.Kind {
	case ExprUnary:
		if e.UnaryOperand == nil || !e.UnaryOperand.Ok {
			push(out, toks, resultIdx(e.UnaryOperand), e.Span, "تعبير")
		} else {
			walkExpr(e.UnaryOperand.Value, toks, out)
		}
	case ExprBinary:
		if e.Lhs == nil || !e.Lhs.Ok {
			push(out, toks, resultIdx(e.Lhs), e.Span, "تعبير")
		} else {
			walkExpr(e.Lhs.Value, toks, out)
		}
		if e.Rhs == nil || !e.Rhs.Ok {
			push(out, toks, resultIdx(e.Rhs), e.Span, "تعبير")
		} else {
			walkExpr(e.Rhs.Value, toks, out)
		}
	case ExprCall:
		if e.Callee == nil || !e.Callee.Ok {
			push(out, toks, resultIdx(e.Callee), e.Span, "تعبير")
		} else {
			walkExpr(e.Callee.Value, toks, out)
		}
		if e.Args != nil {
			walkDelimited(*e.Args, toks, walkExpr, out)
		}
	case ExprIndex:
		if e.Indexed == nil || !e.Indexed.Ok {
			push(out, toks, resultIdx(e.Indexed), e.Span, "تعبير")
		} else {
			walkExpr(e.Indexed.Value, toks, out)
		}
		if e.Index == nil || !e.Index.Ok {
			push(out, toks, resultIdx(e.Index), e.Span, "فهرس")
		} else {
			walkExpr(e.Index.Value, toks, out)
		}
	case ExprField:
		if e.FieldOwner == nil || !e.FieldOwner.Ok {
			push(out, toks, resultIdx(e.FieldOwner), e.Span, "تعبير")
		} else {
			walkExpr(e.FieldOwner.Value, toks, out)
		}
		if e.FieldName == nil {
			push(out, toks, -1, e.Span, "اسم الحقل")
		}
	case ExprTupleLit:
		if e.Tuple != nil {
			walkDelimited(*e.Tuple, toks, walkExpr, out)
		}
	case ExprArrayLit:
		if e.Array != nil {
			walkDelimited(*e.Array, toks, walkExpr, out)
		}
	case ExprStructLit:
		if e.StructFields != nil {
			walkDelimited(*e.StructFields, toks, walkStructLitField, out)
		}
	case ExprParen:
		if e.Paren == nil || !e.Paren.Ok {
			push(out, toks, resultIdx(e.Paren), e.Span, "تعبير")
		} else {
			walkExpr(e.Paren.Value, toks, out)
		}
	case ExprIf:
		if e.Cond == nil || !e.Cond.Ok {
			push(out, toks, resultIdx(e.Cond), e.Span, "شرط")
		} else {
			walkExpr(e.Cond.Value, toks, out)
		}
		if e.Then == nil || !e.Then.Ok {
			push(out, toks, resultIdx(e.Then), e.Span, "{ }")
		} else {
			walkBlock(e.Then.Value, toks, out)
		}
		if e.Else != nil {
			if !e.Else.Ok {
				push(out, toks, e.Else.FoundTokenIndex, e.Span, "وإلا")
			} else {
				walkExpr(e.Else.Value, toks, out)
			}
		}
	case ExprWhile, ExprDoWhile:
		if e.Cond == nil || !e.Cond.Ok {
			push(out, toks, resultIdx(e.Cond), e.Span, "شرط")
		} else {
			walkExpr(e.Cond.Value, toks, out)
		}
		if e.Body == nil || !e.Body.Ok {
			push(out, toks, resultIdx(e.Body), e.Span, "{ }")
		} else {
			walkBlock(e.Body.Value, toks, out)
		}
	case ExprReturn:
		if e.ReturnValue != nil {
			if !e.ReturnValue.Ok {
				push(out, toks, e.ReturnValue.FoundTokenIndex, e.Span, "تعبير")
			} else {
				walkExpr(e.ReturnValue.Value, toks, out)
			}
		}
	case ExprLambda:
		if e.LambdaParams != nil {
			walkDelimited(*e.LambdaParams, toks, walkLambdaParam, out)
		}
		if e.LambdaBody == nil || !e.LambdaBody.Ok {
			push(out, toks, resultIdx(e.LambdaBody), e.Span, "{ }")
		} else {
			walkBlock(e.LambdaBody.Value, toks, out)
		}
	}
}
