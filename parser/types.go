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

// parseType dispatches on the leading token: `*`/`&` (with an optional
// `متغير` widening to the mutable variant), `[` (slice or array), `(`
// (unit, parenthesized, tuple, or lambda type, disambiguated after the
// close paren), or a bare path.
func parseType(c *cst.Cursor) cst.Result[cst.Type] {
	if t, ok := expectSymbol(c, token.Star); ok {
		return parsePtrOrRef(c, t, cst.TypePtr, cst.TypePtrMut)
	}
	if t, ok := expectSymbol(c, token.Amp); ok {
		return parsePtrOrRef(c, t, cst.TypeRef, cst.TypeRefMut)
	}
	if _, ok := expectSymbol(c, token.OpenSquare); ok {
		return parseSliceOrArray(c)
	}
	if next, ok := c.PeekNth(0); ok && next.Kind == token.Symbol && next.Symbol == token.OpenParen {
		return parseParenOrTupleOrLambda(c)
	}

	path := parsePath(c)
	if !path.Ok {
		return cst.Failure[cst.Type](path.FoundTokenIndex)
	}
	return cst.Some(cst.Type{Kind: cst.TypePath, Path: &path.Value, Span: path.Value.Span()})
}

func parsePtrOrRef(c *cst.Cursor, lead token.Token, plain, mut cst.TypeKind) cst.Result[cst.Type] {
	kind := plain
	if _, ok := expectKeyword(c, token.Mut); ok {
		kind = mut
	}
	inner := parseType(c)
	return cst.Some(cst.Type{Kind: kind, Inner: &inner, Span: lead.Span})
}

func parseSliceOrArray(c *cst.Cursor) cst.Result[cst.Type] {
	elem := parseType(c)
	if _, ok := expectSymbol(c, token.Semicolon); ok {
		length := parseExpr(c, false)
		_, closeOk := expectSymbol(c, token.CloseSquare)
		_ = closeOk
		return cst.Some(cst.Type{Kind: cst.TypeArray, ArrayElem: &elem, ArrayLen: &length})
	}
	expectSymbol(c, token.CloseSquare)
	return cst.Some(cst.Type{Kind: cst.TypeSlice, Inner: &elem})
}

func parseParenOrTupleOrLambda(c *cst.Cursor) cst.Result[cst.Type] {
	d := cst.ParseDelimited(c, token.OpenParen, token.CloseParen, parseType)

	if _, ok := parseArrow(c); ok {
		ret := parseType(c)
		return cst.Some(cst.Type{Kind: cst.TypeLambda, LambdaParams: &d, LambdaRet: &ret})
	}

	if !d.HasItems {
		return cst.Some(cst.Type{Kind: cst.TypeUnit})
	}
	if len(d.Rest) == 0 && d.TrailingComma == nil {
		return cst.Some(cst.Type{Kind: cst.TypeParen, Inner: &d.First})
	}
	return cst.Some(cst.Type{Kind: cst.TypeTuple, Tuple: &d})
}
