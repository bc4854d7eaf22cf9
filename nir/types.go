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

package nir

import (
	"github.com/nazm-lang/nazmc/internal/intern"
	"github.com/nazm-lang/nazmc/span"
)

// Type is a lowered type reference: a packed kind+index handle plus the
// span of the original syntax, for diagnostics.
type Type struct {
	KindAndIndex TypeKindAndIndex
	Span         span.Span
}

// TupleType, ArrayType and LambdaType hold the payload for their
// respective TypeKind, indexed into by a Type's packed handle.
type TupleType struct {
	Types      []Type
	ParensSpan span.Span
}

type ArrayType struct {
	Elem Type
	Size Expr
}

type LambdaType struct {
	Params []Type
	Ret    Type
}

// Expr is a lowered expression: a packed kind+index handle plus span.
type Expr struct {
	KindAndIndex ExprKindAndIndex
	Span         span.Span
}

type UnaryExpr struct {
	Op      byte
	Operand Expr
}

type BinaryExpr struct {
	Op       byte
	Lhs, Rhs Expr
}

type CallExpr struct {
	Callee Expr
	Args   []Expr
}

type IndexExpr struct {
	Indexed Expr
	Index   Expr
}

type FieldExpr struct {
	Owner Expr
	Name  intern.ID
}

type StructLitField struct {
	Name  intern.ID
	Value Expr
}

type StructLitExpr struct {
	Item   ItemInPkg
	Fields []StructLitField
}

type ParenExpr struct {
	Inner Expr
}

type IfExpr struct {
	Cond      Expr
	Then      Block
	ElseIf    *Expr
	ElseBlock *Block
}

type WhileExpr struct {
	Cond Expr
	Body Block
}

type ReturnExpr struct {
	Value *Expr
}

type LambdaParam struct {
	Name intern.ID
	Type Type
}

type LambdaExpr struct {
	Params []LambdaParam
	Body   Block
}

// LetStmt and Stmt mirror ast's statement shape, with the value/type
// expressions lowered.
type LetStmt struct {
	Mut   bool
	Name  intern.ID
	Type  *Type
	Value *Expr
}

type StmtKind byte

const (
	StmtLet StmtKind = iota
	StmtExpr
)

type Stmt struct {
	Kind StmtKind
	Let  *LetStmt
	Expr *Expr
}

// Block is a lowered function/lambda body.
type Block struct {
	Stmts      []Stmt
	ReturnExpr *Expr
}

type Field struct {
	Vis  Visibility
	Name intern.ID
	Type Type
}

type Param struct {
	Name intern.ID
	Type Type
}

type UnitStruct struct {
	Name intern.ID
}

type TupleStruct struct {
	Name  intern.ID
	Types []Type
}

type FieldsStruct struct {
	Name   intern.ID
	Fields []Field
}

type Fn struct {
	Name    intern.ID
	Params  []Param
	RetType *Type
	Body    Block
}

// Types groups every composite type's payload vector, indexed into by a
// Type's packed handle.
type Types struct {
	Paths   []ItemInPkg
	Ptrs    []Type
	Refs    []Type
	PtrsMut []Type
	RefsMut []Type
	Slices  []Type
	Tuples  []TupleType
	Arrays  []ArrayType
	Lambdas []LambdaType
}

// Exprs groups every expression kind's payload vector.
type Exprs struct {
	Literals   []span.Span // the literal token's span; the token itself stays in the source
	Paths      []ItemInPkg
	Unaries    []UnaryExpr
	Binaries   []BinaryExpr
	Calls      []CallExpr
	Indices    []IndexExpr
	Fields     []FieldExpr
	TupleLits  [][]Expr
	ArrayLits  [][]Expr
	StructLits []StructLitExpr
	Parens     []ParenExpr
	Ifs        []IfExpr
	Whiles     []WhileExpr
	DoWhiles   []WhileExpr
	Returns    []ReturnExpr
	Breaks     []span.Span
	Continues  []span.Span
	Lambdas    []LambdaExpr
}

// Items groups every item kind's own vector, one per package: Items[pkgIdx]
// holds that package's declarations.
type Items struct {
	UnitStructs   []UnitStruct
	TupleStructs  []TupleStruct
	FieldsStructs []FieldsStruct
	Fns           []Fn
}

// NIR is the fully lowered program: every package's items plus the shared
// type/expr payload pools every handle indexes into.
type NIR struct {
	Packages []Items
	Types    Types
	Exprs    Exprs
}
