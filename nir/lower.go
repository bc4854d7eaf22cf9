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
	"github.com/nazm-lang/nazmc/ast"
	"github.com/nazm-lang/nazmc/cst"
	"github.com/nazm-lang/nazmc/internal/intern"
	"github.com/nazm-lang/nazmc/report"
	"github.com/nazm-lang/nazmc/resolve"
	"github.com/nazm-lang/nazmc/span"
)

// Builder lowers a resolved set of packages into one NIR, per §4.7.
type Builder struct {
	table           *intern.Table
	packages        resolve.PackageSet
	packagesToFiles [][]int
	files           []resolve.ParsedFile
	packagesToItems []resolve.PackageItems
	fileImports     []resolve.FileImports

	nir         NIR
	itemHandles map[resolve.ItemInFile]ItemHandle

	currentPkgIdx  int
	currentFileIdx int

	diags []report.Diagnostic
}

func NewBuilder(
	table *intern.Table,
	packages resolve.PackageSet,
	packagesToFiles [][]int,
	files []resolve.ParsedFile,
	packagesToItems []resolve.PackageItems,
	fileImports []resolve.FileImports,
) *Builder {
	return &Builder{
		table:           table,
		packages:        packages,
		packagesToFiles: packagesToFiles,
		files:           files,
		packagesToItems: packagesToItems,
		fileImports:     fileImports,
		nir:             NIR{Packages: make([]Items, len(packagesToFiles))},
		itemHandles:     map[resolve.ItemInFile]ItemHandle{},
	}
}

func visOf(v ast.VisKind) Visibility {
	switch v {
	case cst.VisPublic:
		return VisPublic
	case cst.VisPrivate:
		return VisPrivate
	}
	return VisDefault
}

// Build lowers every package's items, returning the finished NIR plus
// whatever errors path resolution and visibility checks turned up. It runs
// two passes: the first assigns every item its packed handle by kind and
// declaration order, the second lowers bodies with every item's handle
// already available, so a struct field or function signature can
// reference an item declared later in the same package or file.
func (b *Builder) Build() (NIR, []report.Diagnostic) {
	b.allocateHandles()
	b.lowerBodies()
	return b.nir, b.diags
}

func (b *Builder) allocateHandles() {
	for pkgIdx, fileIdxs := range b.packagesToFiles {
		items := &b.nir.Packages[pkgIdx]
		for _, fileIdx := range fileIdxs {
			file := b.files[fileIdx]
			for itemIdx, it := range file.AST.Items {
				key := resolve.ItemInFile{FileIdx: fileIdx, ItemIdx: itemIdx}
				vis := visOf(it.Vis)
				switch it.Kind {
				case ast.ItemUnitStruct:
					items.UnitStructs = append(items.UnitStructs, UnitStruct{})
					b.itemHandles[key] = NewItemHandle(ItemUnitStruct, vis, len(items.UnitStructs)-1)
				case ast.ItemTupleStruct:
					items.TupleStructs = append(items.TupleStructs, TupleStruct{})
					b.itemHandles[key] = NewItemHandle(ItemTupleStruct, vis, len(items.TupleStructs)-1)
				case ast.ItemFieldsStruct:
					items.FieldsStructs = append(items.FieldsStructs, FieldsStruct{})
					b.itemHandles[key] = NewItemHandle(ItemFieldsStruct, vis, len(items.FieldsStructs)-1)
				case ast.ItemFn:
					items.Fns = append(items.Fns, Fn{})
					b.itemHandles[key] = NewItemHandle(ItemFn, vis, len(items.Fns)-1)
				}
			}
		}
	}
}

func (b *Builder) lowerBodies() {
	for pkgIdx, fileIdxs := range b.packagesToFiles {
		b.currentPkgIdx = pkgIdx
		items := &b.nir.Packages[pkgIdx]
		for _, fileIdx := range fileIdxs {
			b.currentFileIdx = fileIdx
			file := b.files[fileIdx]
			for itemIdx, it := range file.AST.Items {
				handle := b.itemHandles[resolve.ItemInFile{FileIdx: fileIdx, ItemIdx: itemIdx}]
				switch it.Kind {
				case ast.ItemUnitStruct:
					items.UnitStructs[handle.Index()] = UnitStruct{Name: it.Name.Pool}
				case ast.ItemTupleStruct:
					items.TupleStructs[handle.Index()] = TupleStruct{Name: it.Name.Pool, Types: b.lowerTypes(it.TupleTypes)}
				case ast.ItemFieldsStruct:
					items.FieldsStructs[handle.Index()] = FieldsStruct{Name: it.Name.Pool, Fields: b.lowerFields(it.Fields)}
				case ast.ItemFn:
					items.Fns[handle.Index()] = b.lowerFn(it)
				}
			}
		}
	}
}

func (b *Builder) lowerFields(fields []ast.Field) []Field {
	out := make([]Field, len(fields))
	for i, f := range fields {
		out[i] = Field{Vis: visOf(f.Vis), Name: f.Name.Pool, Type: b.lowerType(f.Type)}
	}
	return out
}

func (b *Builder) lowerParams(params []ast.Param) []Param {
	out := make([]Param, len(params))
	for i, p := range params {
		out[i] = Param{Name: p.Name.Pool, Type: b.lowerType(p.Type)}
	}
	return out
}

func (b *Builder) lowerTypes(types []ast.Type) []Type {
	out := make([]Type, len(types))
	for i, t := range types {
		out[i] = b.lowerType(t)
	}
	return out
}

// lowerFn lowers a function item's signature and body.
func (b *Builder) lowerFn(it ast.Item) Fn {
	fn := it.Fn
	out := Fn{Name: it.Name.Pool}
	if fn == nil {
		return out
	}
	out.Params = b.lowerParams(fn.Params)
	if fn.RetType != nil {
		t := b.lowerType(*fn.RetType)
		out.RetType = &t
	}
	out.Body = b.lowerBlock(fn.Body)
	return out
}

// splitPkgPathItem splits a parsed path's trailing segment off as the item
// name, the rest as the package path — the same split ast's import
// lowering performs, repeated here for a type/expr path reference.
func splitPkgPathItem(p ast.Path) (ast.Path, ast.Id) {
	if len(p.Segments) == 0 {
		return ast.Path{}, ast.Id{}
	}
	return ast.Path{Segments: p.Segments[:len(p.Segments)-1]}, p.Segments[len(p.Segments)-1]
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

// lowerPkgPathWithItemNoPkgs resolves a bare identifier (no `::` prefix)
// per §4.7's search order: the current file's resolved imports first, then
// the current package's own items, then every star-imported package's
// items.
func (b *Builder) lowerPkgPathWithItemNoPkgs(item ast.Id) (int, ItemHandle, bool) {
	if resolved, ok := b.fileImports[b.currentFileIdx].ByAlias(item.Pool, b.table); ok {
		return resolved.PkgIdx, b.itemHandles[resolved.Item], true
	}
	if it, ok := b.packagesToItems[b.currentPkgIdx].Get(item.Pool); ok {
		return b.currentPkgIdx, b.itemHandles[it], true
	}
	for _, imp := range b.fileImports[b.currentFileIdx].Resolved {
		if !imp.Star {
			continue
		}
		if it, ok := b.packagesToItems[imp.PkgIdx].Get(item.Pool); ok {
			return imp.PkgIdx, b.itemHandles[it], true
		}
	}
	return b.currentPkgIdx, 0, false
}

// lowerPkgPathWithItem resolves a (possibly empty) package path plus item
// name to its owning package and packed handle, reporting the path/item
// errors and the encapsulation check of §4.7 along the way. A bare name
// found nowhere is left unresolved without a diagnostic (handle 0 in the
// current package).
func (b *Builder) lowerPkgPathWithItem(pkgPath ast.Path, item ast.Id) (int, ItemHandle) {
	if len(pkgPath.Segments) == 0 {
		pkgIdx, handle, ok := b.lowerPkgPathWithItemNoPkgs(item)
		if !ok {
			return b.currentPkgIdx, 0
		}
		return pkgIdx, handle
	}

	ids, spans := idsAndSpans(pkgPath)
	resolvedPkgIdx, ok := b.packages.Lookup(ids)
	if !ok {
		b.reportPkgPathErr(ids, spans)
		return b.currentPkgIdx, 0
	}

	resolvedItem, ok := b.packagesToItems[resolvedPkgIdx].Get(item.Pool)
	if !ok {
		b.reportUnresolvedItem(item.Pool, item.Span)
		return b.currentPkgIdx, 0
	}

	handle := b.itemHandles[resolvedItem]
	if b.currentPkgIdx != resolvedPkgIdx && handle.Vis() == VisDefault {
		b.reportEncapsulationErr(resolvedItem, item.Pool, item.Span)
	}

	return resolvedPkgIdx, handle
}

// lowerType lowers an ast.Type, recursing into composite shapes and
// resolving Path-typed positions through lowerPkgPathWithItem, per §4.7.
func (b *Builder) lowerType(t ast.Type) Type {
	switch t.Kind {
	case cst.TypePath:
		if t.Path == nil {
			return Type{Span: t.Span}
		}
		pkgPath, item := splitPkgPathItem(*t.Path)
		pkgIdx, handle := b.lowerPkgPathWithItem(pkgPath, item)
		if handle.Kind() == ItemFn {
			b.reportStructExpected(item.Span)
		}
		idx := len(b.nir.Types.Paths)
		b.nir.Types.Paths = append(b.nir.Types.Paths, ItemInPkg{PkgIdx: pkgIdx, Handle: handle})
		return Type{KindAndIndex: NewTypeKindAndIndex(TypePath, idx), Span: t.Span}

	case cst.TypeParen:
		if t.Inner == nil {
			return Type{Span: t.Span}
		}
		return b.lowerType(*t.Inner)

	case cst.TypeUnit:
		// Aliases the unit type to path-kind index 0 rather than
		// allocating its own payload vector for a type with no fields.
		return Type{KindAndIndex: NewTypeKindAndIndex(TypePath, 0), Span: t.Span}

	case cst.TypePtr, cst.TypeRef, cst.TypePtrMut, cst.TypeRefMut, cst.TypeSlice:
		return b.lowerIndirectType(t)

	case cst.TypeTuple:
		types := b.lowerTypes(t.Tuple)
		idx := len(b.nir.Types.Tuples)
		b.nir.Types.Tuples = append(b.nir.Types.Tuples, TupleType{Types: types, ParensSpan: t.Span})
		return Type{KindAndIndex: NewTypeKindAndIndex(TypeTuple, idx), Span: t.Span}

	case cst.TypeArray:
		var elem Type
		if t.ArrayElem != nil {
			elem = b.lowerType(*t.ArrayElem)
		}
		var size Expr
		if t.ArrayLen != nil {
			size = b.lowerExpr(*t.ArrayLen)
		}
		idx := len(b.nir.Types.Arrays)
		b.nir.Types.Arrays = append(b.nir.Types.Arrays, ArrayType{Elem: elem, Size: size})
		return Type{KindAndIndex: NewTypeKindAndIndex(TypeArray, idx), Span: t.Span}

	case cst.TypeLambda:
		params := b.lowerTypes(t.LambdaParams)
		var ret Type
		if t.LambdaRet != nil {
			ret = b.lowerType(*t.LambdaRet)
		}
		idx := len(b.nir.Types.Lambdas)
		b.nir.Types.Lambdas = append(b.nir.Types.Lambdas, LambdaType{Params: params, Ret: ret})
		return Type{KindAndIndex: NewTypeKindAndIndex(TypeLambda, idx), Span: t.Span}
	}

	return Type{Span: t.Span}
}

func (b *Builder) lowerIndirectType(t ast.Type) Type {
	var inner Type
	if t.Inner != nil {
		inner = b.lowerType(*t.Inner)
	}
	switch t.Kind {
	case cst.TypePtr:
		idx := len(b.nir.Types.Ptrs)
		b.nir.Types.Ptrs = append(b.nir.Types.Ptrs, inner)
		return Type{KindAndIndex: NewTypeKindAndIndex(TypePtr, idx), Span: t.Span}
	case cst.TypeRef:
		idx := len(b.nir.Types.Refs)
		b.nir.Types.Refs = append(b.nir.Types.Refs, inner)
		return Type{KindAndIndex: NewTypeKindAndIndex(TypeRef, idx), Span: t.Span}
	case cst.TypePtrMut:
		idx := len(b.nir.Types.PtrsMut)
		b.nir.Types.PtrsMut = append(b.nir.Types.PtrsMut, inner)
		return Type{KindAndIndex: NewTypeKindAndIndex(TypePtrMut, idx), Span: t.Span}
	case cst.TypeRefMut:
		idx := len(b.nir.Types.RefsMut)
		b.nir.Types.RefsMut = append(b.nir.Types.RefsMut, inner)
		return Type{KindAndIndex: NewTypeKindAndIndex(TypeRefMut, idx), Span: t.Span}
	case cst.TypeSlice:
		idx := len(b.nir.Types.Slices)
		b.nir.Types.Slices = append(b.nir.Types.Slices, inner)
		return Type{KindAndIndex: NewTypeKindAndIndex(TypeSlice, idx), Span: t.Span}
	}
	return Type{Span: t.Span}
}
