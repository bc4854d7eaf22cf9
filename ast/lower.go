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

package ast

import "github.com/nazm-lang/nazmc/cst"

// Lower reduces a parsed cst.File into its normalized ast.File.
func Lower(f cst.File) File {
	out := File{}

	for _, imp := range f.Imports {
		if !imp.Ok {
			continue
		}
		lowerImport(imp.Value, &out)
	}

	for _, it := range f.Items {
		if !it.Ok {
			continue
		}
		out.Items = append(out.Items, lowerItem(it.Value))
	}

	return out
}

func lowerImport(imp cst.Import, out *File) {
	segs := lowerIds(imp.Path.Segments)
	if imp.Star != nil {
		out.StarImports = append(out.StarImports, StarImport{Path: Path{Segments: segs}})
		return
	}
	if len(segs) == 0 {
		return
	}
	out.Imports = append(out.Imports, Import{
		Path: Path{Segments: segs[:len(segs)-1]},
		Item: segs[len(segs)-1],
	})
}

func lowerIds(ids []cst.Id) []Id {
	out := make([]Id, len(ids))
	copy(out, ids)
	return out
}

func lowerPath(p cst.Path) Path {
	return Path{Segments: lowerIds(p.Segments)}
}

func lowerItem(it cst.Item) Item {
	switch it.Kind {
	case cst.ItemUnitStruct:
		return Item{Kind: ItemUnitStruct, Vis: it.Vis.Kind, Name: it.UnitStruct.Name}
	case cst.ItemTupleStruct:
		return Item{
			Kind:       ItemTupleStruct,
			Vis:        it.Vis.Kind,
			Name:       it.TupleStruct.Name,
			TupleTypes: lowerTypeResults(delimitedItems(it.TupleStruct.Types)),
		}
	case cst.ItemFieldsStruct:
		return Item{
			Kind:   ItemFieldsStruct,
			Vis:    it.Vis.Kind,
			Name:   it.FieldsStruct.Name,
			Fields: lowerFields(it.FieldsStruct.Fields),
		}
	case cst.ItemFn:
		return Item{Kind: ItemFn, Vis: it.Vis.Kind, Name: it.Fn.Name, Fn: lowerFn(it.Fn)}
	}
	return Item{}
}

func lowerFn(fn *cst.Fn) *Fn {
	if fn == nil {
		return nil
	}
	out := &Fn{Name: fn.Name, Params: lowerParams(fn.Params), Body: lowerBlockResult(fn.Body)}
	if fn.RetType != nil && fn.RetType.Ok {
		t := lowerType(fn.RetType.Value)
		out.RetType = &t
	}
	return out
}

// delimitedItems flattens a cst.Delimited[T] into a plain slice of its
// successfully-parsed items, in source order.
func delimitedItems[T any](d cst.Delimited[T]) []cst.Result[T] {
	if !d.HasItems {
		return nil
	}
	out := []cst.Result[T]{d.First}
	for _, r := range d.Rest {
		out = append(out, r.Item)
	}
	return out
}

func lowerTypeResults(rs []cst.Result[cst.Type]) []Type {
	out := make([]Type, 0, len(rs))
	for _, r := range rs {
		if !r.Ok {
			continue
		}
		out = append(out, lowerType(r.Value))
	}
	return out
}

func lowerFields(d cst.Delimited[cst.Field]) []Field {
	var out []Field
	for _, r := range delimitedItems(d) {
		if !r.Ok {
			continue
		}
		f := r.Value
		field := Field{Vis: f.Vis.Kind, Name: f.Name}
		if f.Type.Ok {
			field.Type = lowerType(f.Type.Value)
		}
		out = append(out, field)
	}
	return out
}

func lowerParams(d cst.Delimited[cst.Param]) []Param {
	var out []Param
	for _, r := range delimitedItems(d) {
		if !r.Ok {
			continue
		}
		p := r.Value
		param := Param{Name: p.Name}
		if p.Type.Ok {
			param.Type = lowerType(p.Type.Value)
		}
		out = append(out, param)
	}
	return out
}

func lowerType(t cst.Type) Type {
	out := Type{Span: t.Span, Kind: t.Kind}
	switch t.Kind {
	case cst.TypePath:
		if t.Path != nil {
			p := lowerPath(*t.Path)
			out.Path = &p
		}
	case cst.TypePtr, cst.TypeRef, cst.TypePtrMut, cst.TypeRefMut, cst.TypeSlice, cst.TypeParen:
		out.Inner = lowerTypeResultPtr(t.Inner)
	case cst.TypeTuple:
		if t.Tuple != nil {
			out.Tuple = lowerTypeResults(delimitedItems(*t.Tuple))
		}
	case cst.TypeArray:
		out.ArrayElem = lowerTypeResultPtr(t.ArrayElem)
		out.ArrayLen = lowerExprResultPtr(t.ArrayLen)
	case cst.TypeLambda:
		if t.LambdaParams != nil {
			out.LambdaParams = lowerTypeResults(delimitedItems(*t.LambdaParams))
		}
		out.LambdaRet = lowerTypeResultPtr(t.LambdaRet)
	}
	return out
}

func lowerTypeResultPtr(r *cst.Result[cst.Type]) *Type {
	if r == nil || !r.Ok {
		return nil
	}
	t := lowerType(r.Value)
	return &t
}

func lowerExprResultPtr(r *cst.Result[cst.Expr]) *Expr {
	if r == nil || !r.Ok {
		return nil
	}
	e := lowerExpr(r.Value)
	return &e
}

func lowerBlockResult(r cst.Result[cst.Block]) Block {
	if !r.Ok {
		return Block{}
	}
	return lowerBlock(r.Value)
}

func lowerBlockResultPtr(r *cst.Result[cst.Block]) *Block {
	if r == nil || !r.Ok {
		return nil
	}
	b := lowerBlock(r.Value)
	return &b
}

// lowerBlock implements the "Function body" rule of §4.5: the block's
// trailing expression (if it lacks a `؛`) becomes ReturnExpr rather than a
// statement.
func lowerBlock(b cst.Block) Block {
	out := Block{}
	for _, s := range b.Stmts {
		if !s.Ok {
			continue
		}
		out.Stmts = append(out.Stmts, lowerStmt(s.Value))
	}
	if b.Tail != nil && b.Tail.Ok {
		e := lowerExpr(b.Tail.Value)
		out.ReturnExpr = &e
	}
	return out
}

func lowerStmt(s cst.Stmt) Stmt {
	switch s.Kind {
	case cst.StmtLet:
		let := s.Let
		out := &LetStmt{Mut: let.Mut != nil, Name: let.Name}
		if let.Type != nil && let.Type.Ok {
			t := lowerType(let.Type.Value)
			out.Type = &t
		}
		if let.Value != nil && let.Value.Ok {
			v := lowerExpr(let.Value.Value)
			out.Value = &v
		}
		return Stmt{Kind: StmtLet, Let: out}
	case cst.StmtExpr:
		if s.Expr != nil && s.Expr.Ok {
			e := lowerExpr(s.Expr.Value)
			return Stmt{Kind: StmtExpr, Expr: &e}
		}
	}
	return Stmt{Kind: StmtExpr}
}

func lowerExprFields(d cst.Delimited[cst.StructLitField]) []StructLitField {
	var out []StructLitField
	for _, r := range delimitedItems(d) {
		if !r.Ok {
			continue
		}
		f := r.Value
		sf := StructLitField{Name: f.Name}
		if f.Value.Ok {
			sf.Value = lowerExpr(f.Value.Value)
		}
		out = append(out, sf)
	}
	return out
}

func lowerExprList(d *cst.Delimited[cst.Expr]) []Expr {
	if d == nil {
		return nil
	}
	var out []Expr
	for _, r := range delimitedItems(*d) {
		if !r.Ok {
			continue
		}
		out = append(out, lowerExpr(r.Value))
	}
	return out
}

func lowerLambdaParams(d *cst.Delimited[cst.LambdaParam]) []LambdaParam {
	if d == nil {
		return nil
	}
	var out []LambdaParam
	for _, r := range delimitedItems(*d) {
		if !r.Ok {
			continue
		}
		p := r.Value
		lp := LambdaParam{Name: p.Name}
		if p.Type != nil && p.Type.Ok {
			t := lowerType(p.Type.Value)
			lp.Type = &t
		}
		out = append(out, lp)
	}
	return out
}

// lowerExpr mirrors cst.Expr's structural recursion, flattening punctuated
// sequences and dropping Result wrappers. The `if` else-branch is split
// into ElseIf/ElseBlock here, unwrapping the CST's "bare block is an
// arrow-less lambda" representation back into a plain Block.
func lowerExpr(e cst.Expr) Expr {
	out := Expr{Span: e.Span, Kind: e.Kind}

	switch e.Kind {
	case cst.ExprLiteral:
		out.Literal = e.Literal
	case cst.ExprPathRef:
		if e.Path != nil {
			p := lowerPath(*e.Path)
			out.Path = &p
		}
	case cst.ExprUnary:
		out.UnaryOp = e.UnaryOp
		out.UnaryOperand = lowerExprResultPtr(e.UnaryOperand)
	case cst.ExprBinary:
		out.Op = e.Op
		out.Lhs = lowerExprResultPtr(e.Lhs)
		out.Rhs = lowerExprResultPtr(e.Rhs)
	case cst.ExprCall:
		out.Callee = lowerExprResultPtr(e.Callee)
		out.Args = lowerExprList(e.Args)
	case cst.ExprIndex:
		out.Indexed = lowerExprResultPtr(e.Indexed)
		out.Index = lowerExprResultPtr(e.Index)
	case cst.ExprField:
		out.FieldOwner = lowerExprResultPtr(e.FieldOwner)
		out.FieldName = e.FieldName
	case cst.ExprTupleLit:
		out.Tuple = lowerExprList(e.Tuple)
	case cst.ExprArrayLit:
		out.Array = lowerExprList(e.Array)
	case cst.ExprStructLit:
		if e.StructPath != nil {
			p := lowerPath(*e.StructPath)
			out.StructPath = &p
		}
		if e.StructFields != nil {
			out.StructFields = lowerExprFields(*e.StructFields)
		}
	case cst.ExprParen:
		out.Paren = lowerExprResultPtr(e.Paren)
	case cst.ExprIf:
		out.Cond = lowerExprResultPtr(e.Cond)
		out.Then = lowerBlockResultPtr(e.Then)
		lowerIfElse(e.Else, &out)
	case cst.ExprWhile, cst.ExprDoWhile:
		out.Cond = lowerExprResultPtr(e.Cond)
		out.Body = lowerBlockResultPtr(e.Body)
	case cst.ExprReturn:
		out.ReturnValue = lowerExprResultPtr(e.ReturnValue)
	case cst.ExprLambda:
		if e.LambdaParams != nil {
			out.LambdaParams = lowerLambdaParams(e.LambdaParams)
		}
		out.LambdaBody = lowerBlockResultPtr(e.LambdaBody)
	}

	return out
}

func lowerIfElse(elseRes *cst.Result[cst.Expr], out *Expr) {
	if elseRes == nil || !elseRes.Ok {
		return
	}
	switch elseRes.Value.Kind {
	case cst.ExprIf:
		e := lowerExpr(elseRes.Value)
		out.ElseIf = &e
	case cst.ExprLambda:
		out.ElseBlock = lowerBlockResultPtr(elseRes.Value.LambdaBody)
	}
}
