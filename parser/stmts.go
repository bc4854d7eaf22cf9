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

// parseBlock parses `{ stmt* tail_expr? }`. A statement is either a
// `let`-binding or an expression; the last expression in the block, if it
// lacks a trailing `؛`, is exposed as the block's tail rather than as a
// statement, per §4.5's return_expr convention.
func parseBlock(c *cst.Cursor) cst.Result[cst.Block] {
	open, openOk := expectSymbol(c, token.OpenCurly)
	if !openOk {
		return cst.Failure[cst.Block](c.Pos())
	}
	_ = open

	var stmts []cst.Result[cst.Stmt]
	var tail *cst.Result[cst.Expr]

	for {
		if _, ok := expectSymbol(c, token.CloseCurly); ok {
			return cst.Some(cst.Block{OpenOk: true, Stmts: stmts, Tail: tail, CloseOk: true})
		}
		if c.AtEnd() {
			return cst.Some(cst.Block{OpenOk: true, Stmts: stmts, Tail: tail, CloseOk: false})
		}

		if kw, ok := expectKeyword(c, token.Let); ok {
			stmts = append(stmts, parseLetStmt(c, kw))
			continue
		}

		save := c.Pos()
		expr := parseExpr(c, false)
		if !expr.Ok {
			c.AdvanceToNextSignificant()
			stmts = append(stmts, cst.Failure[cst.Stmt](c.Pos()))
			continue
		}
		if _, ok := expectSymbol(c, token.Semicolon); ok {
			stmts = append(stmts, cst.Some(cst.Stmt{Kind: cst.StmtExpr, Expr: &expr, SemicolonOk: true}))
			continue
		}
		if next, ok := c.PeekNth(0); ok && next.Kind == token.Symbol && next.Symbol == token.CloseCurly {
			tail = &expr
			continue
		}
		_ = save
		stmts = append(stmts, cst.Some(cst.Stmt{Kind: cst.StmtExpr, Expr: &expr, SemicolonOk: false}))
	}
}

func parseLetStmt(c *cst.Cursor, kw token.Token) cst.Result[cst.Stmt] {
	let := &cst.LetStmt{Keyword: kw}

	if t, ok := expectKeyword(c, token.Mut); ok {
		let.Mut = &t
	}

	name := parseId(c)
	if !name.Ok {
		return cst.Failure[cst.Stmt](name.FoundTokenIndex)
	}
	let.Name = name.Value

	if _, ok := expectSymbol(c, token.Colon); ok {
		t := parseType(c)
		let.Type = &t
	}

	if _, ok := expectSymbol(c, token.Equal); ok {
		let.EqualOk = true
		v := parseExpr(c, false)
		let.Value = &v
	}

	_, semiOk := expectSymbol(c, token.Semicolon)
	let.SemicolonOk = semiOk

	return cst.Some(cst.Stmt{Kind: cst.StmtLet, Let: let, SemicolonOk: semiOk})
}
