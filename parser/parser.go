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

// Package parser hand-writes one function per non-terminal over the cst
// package's recoverable combinators, per the derive-macro contract in
// spec §4.4 (which any mechanism, including hand-written functions, may
// realize — this package is the "hand-write one function per non-terminal"
// branch of that contract).
package parser

import (
	"github.com/nazm-lang/nazmc/cst"
	"github.com/nazm-lang/nazmc/token"
)

// Parse parses a whole file's token stream into a CST File.
func Parse(tokens []token.Token) cst.File {
	c := cst.NewCursor(tokens)
	return parseFile(c)
}

func parseFile(c *cst.Cursor) cst.File {
	imports := cst.ParseVec(c, parseImport)
	items, _ := cst.ZeroOrMany(c, parseItem, parseEOF)
	return cst.File{Imports: wrapOk(imports), Items: items}
}

// wrapOk lifts a ParseVec result (which only ever contains successes) into
// the Result-wrapped slice File.Imports expects, so that a file's leading
// run of imports and its item list share the same "partial list of
// Results" shape the AST lowering pass consumes uniformly.
func wrapOk(imports []cst.Import) []cst.Result[cst.Import] {
	out := make([]cst.Result[cst.Import], len(imports))
	for i, imp := range imports {
		out[i] = cst.Some(imp)
	}
	return out
}

func parseEOF(c *cst.Cursor) cst.Result[token.Token] {
	if c.AtEnd() {
		return cst.Some(token.Token{Kind: token.EOF})
	}
	return cst.Failure[token.Token](c.Pos())
}

// expectSymbol consumes tok if it is sym, reporting failure (without
// consuming) otherwise.
func expectSymbol(c *cst.Cursor, sym token.SymbolKind) (token.Token, bool) {
	tok, ok := c.PeekNth(0)
	if !ok || tok.Kind != token.Symbol || tok.Symbol != sym {
		return token.Token{}, false
	}
	t, _, _ := c.Advance()
	return t, true
}

func expectKeyword(c *cst.Cursor, kw token.KeywordKind) (token.Token, bool) {
	tok, ok := c.PeekNth(0)
	if !ok || tok.Kind != token.Keyword || tok.Keyword != kw {
		return token.Token{}, false
	}
	t, _, _ := c.Advance()
	return t, true
}

// peekDoubleColon reports whether the next two significant tokens are both
// `:`, the grammar's encoding of the `::` path separator (not lexed as a
// single symbol per §6).
func peekDoubleColon(c *cst.Cursor) bool {
	a, ok := c.PeekNth(0)
	if !ok || a.Kind != token.Symbol || a.Symbol != token.Colon {
		return false
	}
	b, ok := c.PeekNth(1)
	return ok && b.Kind == token.Symbol && b.Symbol == token.Colon
}

func consumeDoubleColon(c *cst.Cursor) bool {
	if !peekDoubleColon(c) {
		return false
	}
	c.Advance()
	c.Advance()
	return true
}
