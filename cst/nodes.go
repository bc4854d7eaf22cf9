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
	"github.com/nazm-lang/nazmc/internal/intern"
	"github.com/nazm-lang/nazmc/span"
	"github.com/nazm-lang/nazmc/token"
)

// Id is an identifier node: its span plus its interned text.
type Id struct {
	Span span.Span
	Pool intern.ID
}

// Path is a `::`-separated sequence of identifiers, e.g. أ::ب::ج.
type Path struct {
	Segments []Id
}

func (p Path) Span() span.Span {
	if len(p.Segments) == 0 {
		return span.Span{}
	}
	return span.Merge(span.Span{Start: p.Segments[0].Span.Start, End: p.Segments[0].Span.Start}, p.Segments[len(p.Segments)-1].Span)
}

// VisKind is one of the three visibility modifiers a declaration may carry.
type VisKind byte

const (
	VisDefault VisKind = iota
	VisPublic
	VisPrivate
)

// Vis is an optional visibility modifier with its source token, when present.
type Vis struct {
	Kind  VisKind
	Token *token.Token
}

// File is the top-level CST node for one source file: its imports and its
// top-level items, each individually fallible.
type File struct {
	Imports []Result[Import]
	Items   []Result[Item]
}

func (f File) IsBroken() bool {
	for _, i := range f.Imports {
		if !i.Ok || i.Value.IsBroken() {
			return true
		}
	}
	for _, i := range f.Items {
		if !i.Ok || i.Value.IsBroken() {
			return true
		}
	}
	return false
}

// Import is a raw `استيراد A::B::C;` or `استيراد A::B::*;` statement,
// prior to the §4.5 normalization into imports/star_imports.
type Import struct {
	Keyword   token.Token
	Path      Path
	Star      *token.Token
	Semicolon token.Token
	SemicolonOk bool
}

func (i Import) IsBroken() bool { return !i.SemicolonOk }

// ItemKind discriminates the four top-level declaration shapes.
type ItemKind byte

const (
	ItemUnitStruct ItemKind = iota
	ItemTupleStruct
	ItemFieldsStruct
	ItemFn
)

// Item is a top-level declaration. Exactly one of UnitStruct/TupleStruct/
// FieldsStruct/Fn is populated, selected by Kind.
type Item struct {
	Kind         ItemKind
	Vis          Vis
	UnitStruct   *UnitStruct
	TupleStruct  *TupleStruct
	FieldsStruct *FieldsStruct
	Fn           *Fn
}

func (it Item) IsBroken() bool {
	switch it.Kind {
	case ItemUnitStruct:
		return it.UnitStruct.IsBroken()
	case ItemTupleStruct:
		return it.TupleStruct.IsBroken()
	case ItemFieldsStruct:
		return it.FieldsStruct.IsBroken()
	case ItemFn:
		return it.Fn.IsBroken()
	}
	return false
}

type UnitStruct struct {
	Keyword   token.Token
	Name      Id
	Semicolon token.Token
	SemicolonOk bool
}

func (s *UnitStruct) IsBroken() bool { return s == nil || !s.SemicolonOk }

type TupleStruct struct {
	Keyword token.Token
	Name    Id
	Types   Delimited[Type]
	Semicolon token.Token
	SemicolonOk bool
}

func (s *TupleStruct) IsBroken() bool {
	return s == nil || s.Types.Broken() || !s.SemicolonOk
}

type Field struct {
	Vis  Vis
	Name Id
	Colon bool
	Type Result[Type]
}

type FieldsStruct struct {
	Keyword token.Token
	Name    Id
	Fields  Delimited[Field]
}

func (s *FieldsStruct) IsBroken() bool {
	if s == nil {
		return true
	}
	if s.Fields.Broken() {
		return true
	}
	if s.Fields.HasItems && s.Fields.First.Ok && !s.Fields.First.Value.Type.Ok {
		return true
	}
	for _, r := range s.Fields.Rest {
		if r.Item.Ok && !r.Item.Value.Type.Ok {
			return true
		}
	}
	return false
}

type Param struct {
	Name  Id
	Colon bool
	Type  Result[Type]
}

type Fn struct {
	Keyword token.Token
	Name    Id
	Params  Delimited[Param]
	ArrowOk bool
	Arrow   *token.Token
	RetType *Result[Type]
	Body    Result[Block]
}

func (f *Fn) IsBroken() bool {
	if f == nil {
		return true
	}
	if f.Params.Broken() || !f.Body.Ok {
		return true
	}
	if f.Params.HasItems && f.Params.First.Ok && !f.Params.First.Value.Type.Ok {
		return true
	}
	for _, r := range f.Params.Rest {
		if r.Item.Ok && !r.Item.Value.Type.Ok {
			return true
		}
	}
	if f.RetType != nil && !f.RetType.Ok {
		return true
	}
	if f.Body.Ok && f.Body.Value.IsBroken() {
		return true
	}
	return false
}

// --- Types ---

// TypeKind covers the nine NIR type kinds (§3) plus TypeUnit and TypeParen,
// which NIR lowering folds away.
type TypeKind byte

const (
	TypePath TypeKind = iota
	TypePtr
	TypeRef
	TypePtrMut
	TypeRefMut
	TypeSlice
	TypeTuple
	TypeArray
	TypeLambda
	TypeUnit
	TypeParen
)

type Type struct {
	Span span.Span
	Kind TypeKind

	Path *Path // TypePath

	Inner *Result[Type] // Ptr/Ref/PtrMut/RefMut/Slice/Paren

	Tuple *Delimited[Type] // Tuple

	ArrayElem *Result[Type] // Array
	ArrayLen  *Result[Expr] // Array

	LambdaParams *Delimited[Type] // Lambda
	LambdaRet    *Result[Type]    // Lambda, optional (nil if none)
}

func (t Type) IsBroken() bool {
	switch t.Kind {
	case TypePath:
		return t.Path == nil
	case TypePtr, TypeRef, TypePtrMut, TypeRefMut, TypeSlice, TypeParen:
		return t.Inner == nil || !t.Inner.Ok
	case TypeTuple:
		return t.Tuple == nil || t.Tuple.Broken()
	case TypeArray:
		return t.ArrayElem == nil || !t.ArrayElem.Ok || t.ArrayLen == nil || !t.ArrayLen.Ok
	case TypeLambda:
		if t.LambdaParams == nil || t.LambdaParams.Broken() {
			return true
		}
		return t.LambdaRet != nil && !t.LambdaRet.Ok
	}
	return false
}

// --- Statements ---

type Block struct {
	OpenOk  bool
	Stmts   []Result[Stmt]
	Tail    *Result[Expr] // trailing expression without a semicolon
	CloseOk bool
}

func (b Block) IsBroken() bool {
	if !b.OpenOk || !b.CloseOk {
		return true
	}
	for _, s := range b.Stmts {
		if !s.Ok || s.Value.IsBroken() {
			return true
		}
	}
	if b.Tail != nil && !b.Tail.Ok {
		return true
	}
	return false
}

type StmtKind byte

const (
	StmtLet StmtKind = iota
	StmtExpr
)

type LetStmt struct {
	Keyword token.Token
	Mut     *token.Token
	Name    Id
	Type    *Result[Type]
	EqualOk bool
	Value   *Result[Expr]
	SemicolonOk bool
}

type Stmt struct {
	Kind StmtKind
	Let  *LetStmt
	Expr *Result[Expr]
	SemicolonOk bool
}

func (s Stmt) IsBroken() bool {
	switch s.Kind {
	case StmtLet:
		if s.Let == nil || !s.Let.EqualOk || !s.Let.SemicolonOk {
			return true
		}
		if s.Let.Type != nil && !s.Let.Type.Ok {
			return true
		}
		if s.Let.Value != nil && !s.Let.Value.Ok {
			return true
		}
		return false
	case StmtExpr:
		return s.Expr == nil || !s.Expr.Ok || !s.SemicolonOk
	}
	return false
}

// --- Expressions ---

// ExprKind enumerates every expression shape this grammar recognizes.
// It deliberately leaves headroom below the 32 values a 5-bit NIR handle
// can address (§3); `on`/`when` and the statement-like expression forms
// (if/while/do-while/return/break/continue) are each broken out so that
// NIR lowering can dispatch on them individually (see DESIGN.md).
type ExprKind byte

const (
	ExprLiteral ExprKind = iota
	ExprPathRef
	ExprUnary
	ExprBinary
	ExprCall
	ExprIndex
	ExprField
	ExprTupleLit
	ExprArrayLit
	ExprStructLit
	ExprParen
	ExprOn
	ExprWhen
	ExprIf
	ExprWhile
	ExprDoWhile
	ExprReturn
	ExprBreak
	ExprContinue
	ExprLambda
)

type UnaryOp byte

const (
	UnaryNeg UnaryOp = iota
	UnaryNot
	UnaryBitNot
	UnaryBorrow
	UnaryBorrowMut
	UnaryDeref
)

type BinOp byte

const (
	BinAdd BinOp = iota
	BinSub
	BinMul
	BinDiv
	BinMod
	BinBitAnd
	BinBitOr
	BinBitXor
	BinShl
	BinShr
	BinEq
	BinNe
	BinLt
	BinLe
	BinGt
	BinGe
	BinAnd
	BinOr
	BinRange
	BinRangeInclusiveStart
	BinRangeInclusiveEnd
	BinAssign
	BinAddAssign
	BinSubAssign
	BinMulAssign
	BinDivAssign
	BinModAssign
	BinAndAssign
	BinOrAssign
	BinXorAssign
	BinShlAssign
	BinShrAssign
)

type StructLitField struct {
	Name  Id
	Colon bool
	Value Result[Expr]
}

type Expr struct {
	Span span.Span
	Kind ExprKind

	Literal *token.Token // ExprLiteral

	Path *Path // ExprPathRef

	UnaryOp   UnaryOp
	UnaryOperand *Result[Expr] // ExprUnary

	Op         BinOp
	Lhs, Rhs   *Result[Expr] // ExprBinary

	Callee *Result[Expr]
	Args   *Delimited[Expr] // ExprCall

	Indexed *Result[Expr]
	Index   *Result[Expr] // ExprIndex

	FieldOwner *Result[Expr]
	FieldName  *Id // ExprField

	Tuple *Delimited[Expr] // ExprTupleLit
	Array *Delimited[Expr] // ExprArrayLit

	StructPath   *Path
	StructFields *Delimited[StructLitField] // ExprStructLit

	Paren *Result[Expr] // ExprParen

	Cond   *Result[Expr]
	Then   *Result[Block]
	Else   *Result[Expr] // ExprIf: another ExprIf or a Block wrapped as Expr, or nil

	Body *Result[Block] // ExprWhile / ExprDoWhile (with Cond)

	ReturnValue *Result[Expr] // ExprReturn, may be nil for bare return

	LambdaParams *Delimited[LambdaParam]
	HasArrow     bool
	LambdaBody   *Result[Block] // ExprLambda
}

type LambdaParam struct {
	Name Id
	Type *Result[Type]
}

// IsBroken derives brokenness structurally: an Expr is broken iff any of
// its populated sub-results failed or any populated sub-Expr/Block/Type is
// itself broken.
func (e Expr) IsBroken() bool {
	switch e.Kind {
	case ExprLiteral, ExprPathRef, ExprOn, ExprWhen, ExprBreak, ExprContinue:
		return false
	case ExprUnary:
		return e.UnaryOperand == nil || !e.UnaryOperand.Ok || e.UnaryOperand.Value.IsBroken()
	case ExprBinary:
		return e.Lhs == nil || !e.Lhs.Ok || e.Lhs.Value.IsBroken() ||
			e.Rhs == nil || !e.Rhs.Ok || e.Rhs.Value.IsBroken()
	case ExprCall:
		return e.Callee == nil || !e.Callee.Ok || e.Callee.Value.IsBroken() ||
			e.Args == nil || e.Args.Broken()
	case ExprIndex:
		return e.Indexed == nil || !e.Indexed.Ok || e.Indexed.Value.IsBroken() ||
			e.Index == nil || !e.Index.Ok || e.Index.Value.IsBroken()
	case ExprField:
		return e.FieldOwner == nil || !e.FieldOwner.Ok || e.FieldOwner.Value.IsBroken() || e.FieldName == nil
	case ExprTupleLit:
		return e.Tuple == nil || e.Tuple.Broken()
	case ExprArrayLit:
		return e.Array == nil || e.Array.Broken()
	case ExprStructLit:
		return e.StructPath == nil || e.StructFields == nil || e.StructFields.Broken()
	case ExprParen:
		return e.Paren == nil || !e.Paren.Ok || e.Paren.Value.IsBroken()
	case ExprIf:
		if e.Cond == nil || !e.Cond.Ok || e.Cond.Value.IsBroken() || e.Then == nil || !e.Then.Ok || e.Then.Value.IsBroken() {
			return true
		}
		return e.Else != nil && (!e.Else.Ok || e.Else.Value.IsBroken())
	case ExprWhile, ExprDoWhile:
		return e.Cond == nil || !e.Cond.Ok || e.Cond.Value.IsBroken() || e.Body == nil || !e.Body.Ok || e.Body.Value.IsBroken()
	case ExprReturn:
		return e.ReturnValue != nil && (!e.ReturnValue.Ok || e.ReturnValue.Value.IsBroken())
	case ExprLambda:
		if e.LambdaParams == nil || e.LambdaParams.Broken() {
			return true
		}
		return e.LambdaBody == nil || !e.LambdaBody.Ok || e.LambdaBody.Value.IsBroken()
	}
	return false
}
