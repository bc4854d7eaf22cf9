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
)

func (b *Builder) lowerBlock(blk ast.Block) Block {
	out := Block{Stmts: make([]Stmt, len(blk.Stmts))}
	for i, s := range blk.Stmts {
		out.Stmts[i] = b.lowerStmt(s)
	}
	if blk.ReturnExpr != nil {
		e := b.lowerExpr(*blk.ReturnExpr)
		out.ReturnExpr = &e
	}
	return out
}

func (b *Builder) lowerStmt(s ast.Stmt) Stmt {
	switch s.Kind {
	case ast.StmtLet:
		let := s.Let
		out := &LetStmt{Mut: let.Mut, Name: let.Name.Pool}
		if let.Type != nil {
			t := b.lowerType(*let.Type)
			out.Type = &t
		}
		if let.Value != nil {
			v := b.lowerExpr(*let.Value)
			out.Value = &v
		}
		return Stmt{Kind: StmtLet, Let: out}
	case ast.StmtExpr:
		if s.Expr != nil {
			e := b.lowerExpr(*s.Expr)
			return Stmt{Kind: StmtExpr, Expr: &e}
		}
	}
	return Stmt{Kind: StmtExpr}
}

// lowerExpr lowers an ast.Expr into its packed NIR handle, per §4.7: every
// expression kind ast lowering actually produces gets a payload vector and
// a handle here. on/when pattern expressions reach this switch with only
// their Span/Kind set and have no NIR kind; they fall through to the
// zero-value placeholder at the bottom.
func (b *Builder) lowerExpr(e ast.Expr) Expr {
	switch e.Kind {
	case cst.ExprLiteral:
		idx := len(b.nir.Exprs.Literals)
		b.nir.Exprs.Literals = append(b.nir.Exprs.Literals, e.Span)
		return Expr{KindAndIndex: NewExprKindAndIndex(ExprLiteral, idx), Span: e.Span}

	case cst.ExprPathRef:
		var pkgPath ast.Path
		var item ast.Id
		if e.Path != nil {
			pkgPath, item = splitPkgPathItem(*e.Path)
		}
		pkgIdx, handle := b.lowerPkgPathWithItem(pkgPath, item)
		idx := len(b.nir.Exprs.Paths)
		b.nir.Exprs.Paths = append(b.nir.Exprs.Paths, ItemInPkg{PkgIdx: pkgIdx, Handle: handle})
		return Expr{KindAndIndex: NewExprKindAndIndex(ExprPathRef, idx), Span: e.Span}

	case cst.ExprUnary:
		var operand Expr
		if e.UnaryOperand != nil {
			operand = b.lowerExpr(*e.UnaryOperand)
		}
		idx := len(b.nir.Exprs.Unaries)
		b.nir.Exprs.Unaries = append(b.nir.Exprs.Unaries, UnaryExpr{Op: byte(e.UnaryOp), Operand: operand})
		return Expr{KindAndIndex: NewExprKindAndIndex(ExprUnary, idx), Span: e.Span}

	case cst.ExprBinary:
		var lhs, rhs Expr
		if e.Lhs != nil {
			lhs = b.lowerExpr(*e.Lhs)
		}
		if e.Rhs != nil {
			rhs = b.lowerExpr(*e.Rhs)
		}
		idx := len(b.nir.Exprs.Binaries)
		b.nir.Exprs.Binaries = append(b.nir.Exprs.Binaries, BinaryExpr{Op: byte(e.Op), Lhs: lhs, Rhs: rhs})
		return Expr{KindAndIndex: NewExprKindAndIndex(ExprBinary, idx), Span: e.Span}

	case cst.ExprCall:
		var callee Expr
		if e.Callee != nil {
			callee = b.lowerExpr(*e.Callee)
		}
		idx := len(b.nir.Exprs.Calls)
		b.nir.Exprs.Calls = append(b.nir.Exprs.Calls, CallExpr{Callee: callee, Args: b.lowerExprList(e.Args)})
		return Expr{KindAndIndex: NewExprKindAndIndex(ExprCall, idx), Span: e.Span}

	case cst.ExprIndex:
		var indexed, index Expr
		if e.Indexed != nil {
			indexed = b.lowerExpr(*e.Indexed)
		}
		if e.Index != nil {
			index = b.lowerExpr(*e.Index)
		}
		idx := len(b.nir.Exprs.Indices)
		b.nir.Exprs.Indices = append(b.nir.Exprs.Indices, IndexExpr{Indexed: indexed, Index: index})
		return Expr{KindAndIndex: NewExprKindAndIndex(ExprIndex, idx), Span: e.Span}

	case cst.ExprField:
		var owner Expr
		if e.FieldOwner != nil {
			owner = b.lowerExpr(*e.FieldOwner)
		}
		var name ast.Id
		if e.FieldName != nil {
			name = *e.FieldName
		}
		idx := len(b.nir.Exprs.Fields)
		b.nir.Exprs.Fields = append(b.nir.Exprs.Fields, FieldExpr{Owner: owner, Name: name.Pool})
		return Expr{KindAndIndex: NewExprKindAndIndex(ExprField, idx), Span: e.Span}

	case cst.ExprTupleLit:
		idx := len(b.nir.Exprs.TupleLits)
		b.nir.Exprs.TupleLits = append(b.nir.Exprs.TupleLits, b.lowerExprList(e.Tuple))
		return Expr{KindAndIndex: NewExprKindAndIndex(ExprTupleLit, idx), Span: e.Span}

	case cst.ExprArrayLit:
		idx := len(b.nir.Exprs.ArrayLits)
		b.nir.Exprs.ArrayLits = append(b.nir.Exprs.ArrayLits, b.lowerExprList(e.Array))
		return Expr{KindAndIndex: NewExprKindAndIndex(ExprArrayLit, idx), Span: e.Span}

	case cst.ExprStructLit:
		var pkgIdx int
		var handle ItemHandle
		if e.StructPath != nil {
			pkgPath, item := splitPkgPathItem(*e.StructPath)
			pkgIdx, handle = b.lowerPkgPathWithItem(pkgPath, item)
		}
		fields := make([]StructLitField, len(e.StructFields))
		for i, f := range e.StructFields {
			fields[i] = StructLitField{Name: f.Name.Pool, Value: b.lowerExpr(f.Value)}
		}
		idx := len(b.nir.Exprs.StructLits)
		b.nir.Exprs.StructLits = append(b.nir.Exprs.StructLits, StructLitExpr{
			Item:   ItemInPkg{PkgIdx: pkgIdx, Handle: handle},
			Fields: fields,
		})
		return Expr{KindAndIndex: NewExprKindAndIndex(ExprStructLit, idx), Span: e.Span}

	case cst.ExprParen:
		var inner Expr
		if e.Paren != nil {
			inner = b.lowerExpr(*e.Paren)
		}
		idx := len(b.nir.Exprs.Parens)
		b.nir.Exprs.Parens = append(b.nir.Exprs.Parens, ParenExpr{Inner: inner})
		return Expr{KindAndIndex: NewExprKindAndIndex(ExprParen, idx), Span: e.Span}

	case cst.ExprIf:
		out := IfExpr{}
		if e.Cond != nil {
			out.Cond = b.lowerExpr(*e.Cond)
		}
		if e.Then != nil {
			out.Then = b.lowerBlock(*e.Then)
		}
		if e.ElseIf != nil {
			ei := b.lowerExpr(*e.ElseIf)
			out.ElseIf = &ei
		}
		if e.ElseBlock != nil {
			eb := b.lowerBlock(*e.ElseBlock)
			out.ElseBlock = &eb
		}
		idx := len(b.nir.Exprs.Ifs)
		b.nir.Exprs.Ifs = append(b.nir.Exprs.Ifs, out)
		return Expr{KindAndIndex: NewExprKindAndIndex(ExprIf, idx), Span: e.Span}

	case cst.ExprWhile, cst.ExprDoWhile:
		out := WhileExpr{}
		if e.Cond != nil {
			out.Cond = b.lowerExpr(*e.Cond)
		}
		if e.Body != nil {
			out.Body = b.lowerBlock(*e.Body)
		}
		if e.Kind == cst.ExprWhile {
			idx := len(b.nir.Exprs.Whiles)
			b.nir.Exprs.Whiles = append(b.nir.Exprs.Whiles, out)
			return Expr{KindAndIndex: NewExprKindAndIndex(ExprWhile, idx), Span: e.Span}
		}
		idx := len(b.nir.Exprs.DoWhiles)
		b.nir.Exprs.DoWhiles = append(b.nir.Exprs.DoWhiles, out)
		return Expr{KindAndIndex: NewExprKindAndIndex(ExprDoWhile, idx), Span: e.Span}

	case cst.ExprReturn:
		out := ReturnExpr{}
		if e.ReturnValue != nil {
			v := b.lowerExpr(*e.ReturnValue)
			out.Value = &v
		}
		idx := len(b.nir.Exprs.Returns)
		b.nir.Exprs.Returns = append(b.nir.Exprs.Returns, out)
		return Expr{KindAndIndex: NewExprKindAndIndex(ExprReturn, idx), Span: e.Span}

	case cst.ExprBreak:
		idx := len(b.nir.Exprs.Breaks)
		b.nir.Exprs.Breaks = append(b.nir.Exprs.Breaks, e.Span)
		return Expr{KindAndIndex: NewExprKindAndIndex(ExprBreak, idx), Span: e.Span}

	case cst.ExprContinue:
		idx := len(b.nir.Exprs.Continues)
		b.nir.Exprs.Continues = append(b.nir.Exprs.Continues, e.Span)
		return Expr{KindAndIndex: NewExprKindAndIndex(ExprContinue, idx), Span: e.Span}

	case cst.ExprLambda:
		params := make([]LambdaParam, len(e.LambdaParams))
		for i, p := range e.LambdaParams {
			lp := LambdaParam{Name: p.Name.Pool}
			if p.Type != nil {
				lp.Type = b.lowerType(*p.Type)
			}
			params[i] = lp
		}
		var body Block
		if e.LambdaBody != nil {
			body = b.lowerBlock(*e.LambdaBody)
		}
		idx := len(b.nir.Exprs.Lambdas)
		b.nir.Exprs.Lambdas = append(b.nir.Exprs.Lambdas, LambdaExpr{Params: params, Body: body})
		return Expr{KindAndIndex: NewExprKindAndIndex(ExprLambda, idx), Span: e.Span}
	}

	return Expr{Span: e.Span}
}

func (b *Builder) lowerExprList(exprs []ast.Expr) []Expr {
	if exprs == nil {
		return nil
	}
	out := make([]Expr, len(exprs))
	for i, e := range exprs {
		out[i] = b.lowerExpr(e)
	}
	return out
}
