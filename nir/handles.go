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

// Package nir lowers a resolved ast.File into the name-resolved
// intermediate representation: path-typed nodes replaced by packed
// (package-index, item-kind, item-index) handles, per §4.7. Every kind's
// payload lives in its own vector on NIR; the packed handles stand in for
// pointer chasing, indexing into whichever vector their kind names.
package nir

// ItemKind enumerates the four shapes a top-level item can take.
type ItemKind byte

const (
	ItemUnitStruct ItemKind = iota
	ItemTupleStruct
	ItemFieldsStruct
	ItemFn
)

// Visibility mirrors ast.VisKind, repeated here so a packed ItemHandle is
// self-contained without reaching back into the ast package.
type Visibility byte

const (
	VisDefault Visibility = iota
	VisPublic
	VisPrivate
)

// ItemHandle packs an item's kind (2 bits), visibility (2 bits) and index
// within its kind's payload vector (60 bits) into one 64-bit integer, per
// §3's NIR item handle layout.
type ItemHandle uint64

const (
	itemKindBits = 2
	itemVisBits  = 2
	itemIdxBits  = 64 - itemKindBits - itemVisBits
	itemIdxMask  = 1<<itemIdxBits - 1
	itemVisMask  = 1<<itemVisBits - 1
)

func NewItemHandle(kind ItemKind, vis Visibility, index int) ItemHandle {
	return ItemHandle(uint64(kind)<<(itemVisBits+itemIdxBits) | uint64(vis)<<itemIdxBits | uint64(index)&itemIdxMask)
}

func (h ItemHandle) Kind() ItemKind { return ItemKind(uint64(h) >> (itemVisBits + itemIdxBits)) }
func (h ItemHandle) Vis() Visibility {
	return Visibility(uint64(h)>>itemIdxBits) & itemVisMask
}
func (h ItemHandle) Index() int { return int(uint64(h) & itemIdxMask) }

// ItemInPkg names an item by the package that owns it plus its item
// handle — what a resolved path ultimately lowers to.
type ItemInPkg struct {
	PkgIdx int
	Handle ItemHandle
}

// TypeKind enumerates the nine composite type shapes a Type can lower to.
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
)

// TypeKindAndIndex packs a TypeKind (4 bits) with an index (60 bits) into
// its payload vector.
type TypeKindAndIndex uint64

const (
	typeKindBits = 4
	typeIdxBits  = 64 - typeKindBits
	typeIdxMask  = 1<<typeIdxBits - 1
)

func NewTypeKindAndIndex(kind TypeKind, index int) TypeKindAndIndex {
	return TypeKindAndIndex(uint64(kind)<<typeIdxBits | uint64(index)&typeIdxMask)
}

func (k TypeKindAndIndex) Kind() TypeKind { return TypeKind(uint64(k) >> typeIdxBits) }
func (k TypeKindAndIndex) Index() int     { return int(uint64(k) & typeIdxMask) }

// ExprKind enumerates the eighteen expression shapes NIR distinguishes.
// on/when-style pattern constructs are out of this core's scope (ast
// lowering never populates them beyond Span/Kind), so they are
// intentionally absent from this list.
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
	ExprIf
	ExprWhile
	ExprDoWhile
	ExprReturn
	ExprBreak
	ExprContinue
	ExprLambda
)

// ExprKindAndIndex packs an ExprKind (5 bits) with an index (59 bits).
type ExprKindAndIndex uint64

const (
	exprKindBits = 5
	exprIdxBits  = 64 - exprKindBits
	exprIdxMask  = 1<<exprIdxBits - 1
)

func NewExprKindAndIndex(kind ExprKind, index int) ExprKindAndIndex {
	return ExprKindAndIndex(uint64(kind)<<exprIdxBits | uint64(index)&exprIdxMask)
}

func (k ExprKindAndIndex) Kind() ExprKind { return ExprKind(uint64(k) >> exprIdxBits) }
func (k ExprKindAndIndex) Index() int     { return int(uint64(k) & exprIdxMask) }
