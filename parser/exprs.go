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

package parser

import (
	"github.com/nazm-lang/nazmc/cst"
	"github.com/nazm-lang/nazmc/token"
)

// parseExpr parses a left-linear operator sequence: `PrimaryExpr (BinOp
// PrimaryExpr)*`. Precedence and associativity are intentionally deferred
// to a later pass (§4.4); every operator binds at the same level here and
// the resulting tree nests strictly left-to-right.
//
// noStructLit suppresses struct-literal recognition on bare paths, so that
// the condition of an `if`/`while`/`do…while` doesn't swallow its own
// block as a struct body — the same ambiguity most brace-delimited-block
// languages resolve by disallowing struct literals in condition position.
func parseExpr(c *cst.Cursor, noStructLit bool) cst.Result[cst.Expr] {
	left := parseUnary(c, noStructLit)
	if !left.Ok {
		return left
	}

	for {
		save := c.Pos()
		op, ok := parseBinOp(c)
		if !ok {
			c.SetPos(save)
			return left
		}
		rhs := parseUnary(c, noStructLit)
		merged := cst.Expr{Kind: cst.ExprBinary, Op: op, Lhs: ptr(left), Rhs: ptr(rhs)}
		left = cst.Some(merged)
		if !rhs.Ok {
			return left
		}
	}
}

func ptr[T any](r cst.Result[T]) *cst.Result[T] { return &r }

func parseUnary(c *cst.Cursor, noStructLit bool) cst.Result[cst.Expr] {
	if op, ok := parseUnaryOp(c); ok {
		operand := parseUnary(c, noStructLit)
		return cst.Some(cst.Expr{Kind: cst.ExprUnary, UnaryOp: op, UnaryOperand: &operand})
	}
	return parsePostfix(c, noStructLit)
}

func parsePostfix(c *cst.Cursor, noStructLit bool) cst.Result[cst.Expr] {
	expr := parsePrimary(c, noStructLit)
	if !expr.Ok {
		return expr
	}

	for {
		if next, ok := c.PeekNth(0); ok && next.Kind == token.Symbol {
			switch next.Symbol {
			case token.OpenParen:
				args := cst.ParseDelimited(c, token.OpenParen, token.CloseParen, func(cur *cst.Cursor) cst.Result[cst.Expr] {
					return parseExpr(cur, false)
				})
				expr = cst.Some(cst.Expr{Kind: cst.ExprCall, Callee: ptr(expr), Args: &args})
				continue
			case token.OpenSquare:
				c.Advance()
				idx := parseExpr(c, false)
				expectSymbol(c, token.CloseSquare)
				expr = cst.Some(cst.Expr{Kind: cst.ExprIndex, Indexed: ptr(expr), Index: &idx})
				continue
			case token.Dot:
				if peekSym(c, 1, token.Dot) {
					// `..`/`..<` range operator — not a field access.
					break
				}
				c.Advance()
				name := parseId(c)
				if !name.Ok {
					expr = cst.Some(cst.Expr{Kind: cst.ExprField, FieldOwner: ptr(expr), FieldName: nil})
					return expr
				}
				expr = cst.Some(cst.Expr{Kind: cst.ExprField, FieldOwner: ptr(expr), FieldName: &name.Value})
				continue
			}
		}
		return expr
	}
}

func parsePrimary(c *cst.Cursor, noStructLit bool) cst.Result[cst.Expr] {
	tok, ok := c.PeekNth(0)
	if !ok {
		return cst.Failure[cst.Expr](c.Pos())
	}

	switch {
	case tok.Kind == token.Literal:
		t, _, _ := c.Advance()
		return cst.Some(cst.Expr{Kind: cst.ExprLiteral, Literal: &t, Span: t.Span})
	case tok.Kind == token.Keyword && tok.Keyword == token.On:
		t, _, _ := c.Advance()
		return cst.Some(cst.Expr{Kind: cst.ExprOn, Span: t.Span})
	case tok.Kind == token.Keyword && tok.Keyword == token.When:
		t, _, _ := c.Advance()
		return cst.Some(cst.Expr{Kind: cst.ExprWhen, Span: t.Span})
	case tok.Kind == token.Keyword && tok.Keyword == token.If:
		return parseIfExpr(c)
	case tok.Kind == token.Keyword && tok.Keyword == token.While:
		return parseWhileExpr(c)
	case tok.Kind == token.Keyword && tok.Keyword == token.Do:
		return parseDoWhileExpr(c)
	case tok.Kind == token.Keyword && tok.Keyword == token.Return:
		return parseReturnExpr(c)
	case tok.Kind == token.Keyword && tok.Keyword == token.Break:
		t, _, _ := c.Advance()
		return cst.Some(cst.Expr{Kind: cst.ExprBreak, Span: t.Span})
	case tok.Kind == token.Keyword && tok.Keyword == token.Continue:
		t, _, _ := c.Advance()
		return cst.Some(cst.Expr{Kind: cst.ExprContinue, Span: t.Span})
	case tok.Kind == token.Symbol && tok.Symbol == token.OpenSquare:
		return parseArrayLit(c)
	case tok.Kind == token.Symbol && tok.Symbol == token.OpenCurly:
		return parseBareBlockLambda(c)
	case tok.Kind == token.Symbol && tok.Symbol == token.OpenParen:
		return parseParenOrTupleExpr(c)
	case tok.Kind == token.Id:
		return parsePathOrStructLit(c, noStructLit)
	}

	return cst.Failure[cst.Expr](c.Pos())
}

func parseArrayLit(c *cst.Cursor) cst.Result[cst.Expr] {
	d := cst.ParseDelimited(c, token.OpenSquare, token.CloseSquare, func(cur *cst.Cursor) cst.Result[cst.Expr] {
		return parseExpr(cur, false)
	})
	return cst.Some(cst.Expr{Kind: cst.ExprArrayLit, Array: &d})
}

// parseBareBlockLambda treats a brace-delimited block appearing in
// expression position as a parameter-less lambda without arrow, per the
// function-body convention of §4.5: the block itself is the lowerer's
// concern to unwrap.
func parseBareBlockLambda(c *cst.Cursor) cst.Result[cst.Expr] {
	body := parseBlock(c)
	return cst.Some(cst.Expr{Kind: cst.ExprLambda, LambdaParams: emptyLambdaParams(), LambdaBody: &body})
}

func emptyLambdaParams() *cst.Delimited[cst.LambdaParam] {
	return &cst.Delimited[cst.LambdaParam]{OpenOk: true, CloseOk: true}
}

// parseParenOrTupleExpr disambiguates `()`/`(e)`/`(e, e, ...)`/lambda
// parameter lists the same way parseType disambiguates parenthesized
// types: by checking for a trailing `->` first, then by item count and
// trailing comma.
func parseParenOrTupleExpr(c *cst.Cursor) cst.Result[cst.Expr] {
	save := c.Pos()
	if params, ok := tryParseLambdaParams(c); ok {
		body := parseBlock(c)
		return cst.Some(cst.Expr{Kind: cst.ExprLambda, LambdaParams: &params, HasArrow: true, LambdaBody: &body})
	}
	c.SetPos(save)

	d := cst.ParseDelimited(c, token.OpenParen, token.CloseParen, func(cur *cst.Cursor) cst.Result[cst.Expr] {
		return parseExpr(cur, false)
	})
	if !d.HasItems {
		return cst.Some(cst.Expr{Kind: cst.ExprTupleLit, Tuple: &d})
	}
	if len(d.Rest) == 0 && d.TrailingComma == nil {
		return cst.Some(cst.Expr{Kind: cst.ExprParen, Paren: &d.First})
	}
	return cst.Some(cst.Expr{Kind: cst.ExprTupleLit, Tuple: &d})
}

// tryParseLambdaParams speculatively parses `( id (: Type)? (، ...)* )
// ->` as a lambda's parameter list, backtracking entirely on failure so
// parseParenOrTupleExpr can fall back to tuple/paren parsing.
func tryParseLambdaParams(c *cst.Cursor) (cst.Delimited[cst.LambdaParam], bool) {
	save := c.Pos()
	d := cst.ParseDelimited(c, token.OpenParen, token.CloseParen, parseLambdaParam)
	if d.Broken() {
		c.SetPos(save)
		return cst.Delimited[cst.LambdaParam]{}, false
	}
	if _, ok := parseArrow(c); !ok {
		c.SetPos(save)
		return cst.Delimited[cst.LambdaParam]{}, false
	}
	return d, true
}

func parseLambdaParam(c *cst.Cursor) cst.Result[cst.LambdaParam] {
	name := parseId(c)
	if !name.Ok {
		return cst.Failure[cst.LambdaParam](name.FoundTokenIndex)
	}
	if _, ok := expectSymbol(c, token.Colon); ok {
		t := parseType(c)
		return cst.Some(cst.LambdaParam{Name: name.Value, Type: &t})
	}
	return cst.Some(cst.LambdaParam{Name: name.Value})
}

// parsePathOrStructLit parses a bare path reference, or — unless
// noStructLit forbids it — a struct-literal expression `Path { field:
// value, ... }`.
func parsePathOrStructLit(c *cst.Cursor, noStructLit bool) cst.Result[cst.Expr] {
	path := parsePath(c)
	if !path.Ok {
		return cst.Failure[cst.Expr](path.FoundTokenIndex)
	}

	if !noStructLit {
		if next, ok := c.PeekNth(0); ok && next.Kind == token.Symbol && next.Symbol == token.OpenCurly {
			fields := cst.ParseDelimited(c, token.OpenCurly, token.CloseCurly, parseStructLitField)
			p := path.Value
			return cst.Some(cst.Expr{Kind: cst.ExprStructLit, StructPath: &p, StructFields: &fields, Span: p.Span()})
		}
	}

	p := path.Value
	return cst.Some(cst.Expr{Kind: cst.ExprPathRef, Path: &p, Span: p.Span()})
}

func parseStructLitField(c *cst.Cursor) cst.Result[cst.StructLitField] {
	name := parseId(c)
	if !name.Ok {
		return cst.Failure[cst.StructLitField](name.FoundTokenIndex)
	}
	_, colonOk := expectSymbol(c, token.Colon)
	value := parseExpr(c, false)
	return cst.Some(cst.StructLitField{Name: name.Value, Colon: colonOk, Value: value})
}

func parseIfExpr(c *cst.Cursor) cst.Result[cst.Expr] {
	kw, ok := expectKeyword(c, token.If)
	if !ok {
		return cst.Failure[cst.Expr](c.Pos())
	}
	cond := parseExpr(c, true)
	then := parseBlock(c)

	expr := cst.Expr{Kind: cst.ExprIf, Span: kw.Span, Cond: &cond, Then: &then}

	if _, ok := expectKeyword(c, token.Else); ok {
		if next, ok := c.PeekNth(0); ok && next.Kind == token.Keyword && next.Keyword == token.If {
			elseExpr := parseIfExpr(c)
			expr.Else = &elseExpr
		} else {
			blk := parseBlock(c)
			lam := cst.Some(cst.Expr{Kind: cst.ExprLambda, LambdaParams: emptyLambdaParams(), LambdaBody: &blk})
			expr.Else = &lam
		}
	}

	return cst.Some(expr)
}

func parseWhileExpr(c *cst.Cursor) cst.Result[cst.Expr] {
	kw, ok := expectKeyword(c, token.While)
	if !ok {
		return cst.Failure[cst.Expr](c.Pos())
	}
	cond := parseExpr(c, true)
	body := parseBlock(c)
	return cst.Some(cst.Expr{Kind: cst.ExprWhile, Span: kw.Span, Cond: &cond, Body: &body})
}

func parseDoWhileExpr(c *cst.Cursor) cst.Result[cst.Expr] {
	kw, ok := expectKeyword(c, token.Do)
	if !ok {
		return cst.Failure[cst.Expr](c.Pos())
	}
	body := parseBlock(c)
	_, ok = expectKeyword(c, token.While)
	_ = ok
	cond := parseExpr(c, false)
	return cst.Some(cst.Expr{Kind: cst.ExprDoWhile, Span: kw.Span, Cond: &cond, Body: &body})
}

func parseReturnExpr(c *cst.Cursor) cst.Result[cst.Expr] {
	kw, ok := expectKeyword(c, token.Return)
	if !ok {
		return cst.Failure[cst.Expr](c.Pos())
	}
	expr := cst.Expr{Kind: cst.ExprReturn, Span: kw.Span}

	if next, ok := c.PeekNth(0); ok {
		isTerminator := next.Kind == token.Symbol && (next.Symbol == token.Semicolon || next.Symbol == token.CloseCurly)
		if !isTerminator {
			v := parseExpr(c, false)
			expr.ReturnValue = &v
		}
	}

	return cst.Some(expr)
}
