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

func parseItem(c *cst.Cursor) cst.Result[cst.Item] {
	save := c.Pos()
	vis := parseVis(c)

	if kw, ok := expectKeyword(c, token.Struct); ok {
		return parseStruct(c, kw, vis)
	}
	if kw, ok := expectKeyword(c, token.Fn); ok {
		return parseFn(c, kw, vis)
	}

	c.SetPos(save)
	return cst.Failure[cst.Item](c.Pos())
}

func parseStruct(c *cst.Cursor, kw token.Token, vis cst.Vis) cst.Result[cst.Item] {
	name := parseId(c)
	if !name.Ok {
		return cst.Failure[cst.Item](name.FoundTokenIndex)
	}

	if semi, ok := expectSymbol(c, token.Semicolon); ok {
		return cst.Some(cst.Item{
			Kind: cst.ItemUnitStruct,
			Vis:  vis,
			UnitStruct: &cst.UnitStruct{
				Keyword: kw, Name: name.Value, Semicolon: semi, SemicolonOk: true,
			},
		})
	}

	if next, ok := c.PeekNth(0); ok && next.Kind == token.Symbol && next.Symbol == token.OpenParen {
		types := cst.ParseDelimited(c, token.OpenParen, token.CloseParen, parseType)
		semi, semiOk := expectSymbol(c, token.Semicolon)
		return cst.Some(cst.Item{
			Kind: cst.ItemTupleStruct,
			Vis:  vis,
			TupleStruct: &cst.TupleStruct{
				Keyword: kw, Name: name.Value, Types: types,
				Semicolon: semi, SemicolonOk: semiOk,
			},
		})
	}

	fields := cst.ParseDelimited(c, token.OpenCurly, token.CloseCurly, parseField)
	return cst.Some(cst.Item{
		Kind: cst.ItemFieldsStruct,
		Vis:  vis,
		FieldsStruct: &cst.FieldsStruct{
			Keyword: kw, Name: name.Value, Fields: fields,
		},
	})
}

func parseField(c *cst.Cursor) cst.Result[cst.Field] {
	save := c.Pos()
	vis := parseVis(c)
	name := parseId(c)
	if !name.Ok {
		c.SetPos(save)
		return cst.Failure[cst.Field](name.FoundTokenIndex)
	}
	_, colonOk := expectSymbol(c, token.Colon)
	typ := parseType(c)
	return cst.Some(cst.Field{Vis: vis, Name: name.Value, Colon: colonOk, Type: typ})
}

func parseFn(c *cst.Cursor, kw token.Token, vis cst.Vis) cst.Result[cst.Item] {
	name := parseId(c)
	if !name.Ok {
		return cst.Failure[cst.Item](name.FoundTokenIndex)
	}

	params := cst.ParseDelimited(c, token.OpenParen, token.CloseParen, parseParam)

	fn := &cst.Fn{Keyword: kw, Name: name.Value, Params: params}

	if arrow, ok := parseArrow(c); ok {
		fn.ArrowOk = true
		fn.Arrow = &arrow
		t := parseType(c)
		fn.RetType = &t
	}

	body := parseBlock(c)
	fn.Body = body

	return cst.Some(cst.Item{Kind: cst.ItemFn, Vis: vis, Fn: fn})
}

// parseArrow recognizes the two-token `->` operator.
func parseArrow(c *cst.Cursor) (token.Token, bool) {
	save := c.Pos()
	a, ok := c.PeekNth(0)
	if !ok || a.Kind != token.Symbol || a.Symbol != token.Minus {
		return token.Token{}, false
	}
	b, ok := c.PeekNth(1)
	if !ok || b.Kind != token.Symbol || b.Symbol != token.CloseAngle {
		return token.Token{}, false
	}
	t, _, _ := c.Advance()
	c.Advance()
	_ = save
	return t, true
}

func parseParam(c *cst.Cursor) cst.Result[cst.Param] {
	name := parseId(c)
	if !name.Ok {
		return cst.Failure[cst.Param](name.FoundTokenIndex)
	}
	_, colonOk := expectSymbol(c, token.Colon)
	typ := parseType(c)
	return cst.Some(cst.Param{Name: name.Value, Colon: colonOk, Type: typ})
}
