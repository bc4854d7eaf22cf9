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

// Package ast lowers a recoverable cst.File into the normalized shape the
// resolver and NIR lowering consume: punctuated (Delimited/Result) wrappers
// are flattened into plain slices, `import` statements are split into
// imports/star_imports, and function bodies are reduced to a statement
// list plus an optional trailing return_expr, per spec.md §4.5.
//
// Lowering is best-effort over a recoverably-parsed tree: a cst node that
// failed to parse (Result.Ok == false) is skipped when it is a list entry
// and left as its zero value (nil for a pointer child) otherwise, rather
// than propagating an error — diagnostics for parse failures are
// already sunk into the lexer/parser's own error slices; ast lowering
// only ever runs to produce the best tree it can for downstream passes.
package ast

import (
	"github.com/nazm-lang/nazmc/cst"
	"github.com/nazm-lang/nazmc/span"
	"github.com/nazm-lang/nazmc/token"
)

type Id = cst.Id

// Path is a plain, flattened `::`-separated identifier sequence.
type Path struct {
	Segments []Id
}

func (p Path) Span() span.Span { return cst.Path{Segments: p.Segments}.Span() }

// Import is a normalized `imports` entry: a package path plus the single
// item it names.
type Import struct {
	Path Path
	Item Id
}

// StarImport is a normalized `استيراد A::B::*؛` entry: just the package path.
type StarImport struct {
	Path Path
}

type VisKind = cst.VisKind

const (
	VisDefault = cst.VisDefault
	VisPublic  = cst.VisPublic
	VisPrivate = cst.VisPrivate
)

type ItemKind byte

const (
	ItemUnitStruct ItemKind = iota
	ItemTupleStruct
	ItemFieldsStruct
	ItemFn
)

type Field struct {
	Vis  VisKind
	Name Id
	Type Type
}

type Param struct {
	Name Id
	Type Type
}

type Fn struct {
	Name    Id
	Params  []Param
	RetType *Type
	Body    Block
}

// Item is a lowered top-level declaration; exactly the field named by Kind
// is meaningful.
type Item struct {
	Kind        ItemKind
	Vis         VisKind
	Name        Id
	TupleTypes  []Type // ItemTupleStruct
	Fields      []Field
	Fn          *Fn
}

// Type mirrors cst.Type's shape with Delimited sequences flattened to
// plain slices and fallible Result wrappers dropped.
type Type struct {
	Span span.Span
	Kind cst.TypeKind

	Path *Path

	Inner *Type // Ptr/Ref/PtrMut/RefMut/Slice/Paren

	Tuple []Type

	ArrayElem *Type
	ArrayLen  *Expr

	LambdaParams []Type
	LambdaRet    *Type
}

// Block is a lowered function/lambda body: its statement list, plus the
// trailing expression exposed as return_expr when the block's last
// expression has no trailing `؛` (§4.5's "Function body" rule).
type Block struct {
	Stmts      []Stmt
	ReturnExpr *Expr
}

type StmtKind byte

const (
	StmtLet StmtKind = iota
	StmtExpr
)

type LetStmt struct {
	Mut   bool
	Name  Id
	Type  *Type
	Value *Expr
}

type Stmt struct {
	Kind StmtKind
	Let  *LetStmt
	Expr *Expr
}

type StructLitField struct {
	Name  Id
	Value Expr
}

type LambdaParam struct {
	Name Id
	Type *Type
}

// Expr mirrors cst.Expr's shape with Delimited sequences flattened and
// Result wrappers dropped; the else-branch of an `if` is split into
// ElseIf/ElseBlock since the lowerer also discards the "bare block is an
// arrow-less lambda" convention used in the CST for the plain-block case.
type Expr struct {
	Span span.Span
	Kind cst.ExprKind

	Literal *token.Token
	Path    *Path

	UnaryOp      cst.UnaryOp
	UnaryOperand *Expr

	Op       cst.BinOp
	Lhs, Rhs *Expr

	Callee *Expr
	Args   []Expr

	Indexed *Expr
	Index   *Expr

	FieldOwner *Expr
	FieldName  *Id

	Tuple []Expr
	Array []Expr

	StructPath   *Path
	StructFields []StructLitField

	Paren *Expr

	Cond      *Expr
	Then      *Block
	ElseIf    *Expr
	ElseBlock *Block

	Body *Block // While / DoWhile

	ReturnValue *Expr

	LambdaParams []LambdaParam
	LambdaBody   *Block
}

// File is the lowered top-level unit: normalized imports plus items.
type File struct {
	Imports     []Import
	StarImports []StarImport
	Items       []Item
}
