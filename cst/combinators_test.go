package cst_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nazm-lang/nazmc/cst"
	"github.com/nazm-lang/nazmc/token"
)

func symTok(s token.SymbolKind) token.Token {
	return token.Token{Kind: token.Symbol, Symbol: s}
}

func kwTok(k token.KeywordKind) token.Token {
	return token.Token{Kind: token.Keyword, Keyword: k}
}

func parseComma(c *cst.Cursor) cst.Result[token.Token] {
	tok, ok := c.PeekNth(0)
	if !ok || tok.Kind != token.Symbol || tok.Symbol != token.Comma {
		return cst.Failure[token.Token](c.Pos())
	}
	t, _, _ := c.Advance()
	return cst.Some(t)
}

func TestZeroOrManyHappyPath(t *testing.T) {
	toks := []token.Token{symTok(token.Comma), symTok(token.Comma), symTok(token.CloseParen)}
	c := cst.NewCursor(toks)

	parseClose := func(cur *cst.Cursor) cst.Result[token.Token] {
		tok, ok := cur.PeekNth(0)
		if !ok || tok.Kind != token.Symbol || tok.Symbol != token.CloseParen {
			return cst.Failure[token.Token](cur.Pos())
		}
		tk, _, _ := cur.Advance()
		return cst.Some(tk)
	}

	items, term := cst.ZeroOrMany(c, parseComma, parseClose)
	require.Len(t, items, 2)
	assert.True(t, items[0].Ok)
	assert.True(t, items[1].Ok)
	assert.True(t, term.Ok)
	assert.True(t, c.AtEnd())
}

func TestZeroOrManyRecoversFromJunk(t *testing.T) {
	toks := []token.Token{kwTok(token.Let), symTok(token.Comma), symTok(token.CloseParen)}
	c := cst.NewCursor(toks)

	parseClose := func(cur *cst.Cursor) cst.Result[token.Token] {
		tok, ok := cur.PeekNth(0)
		if !ok || tok.Kind != token.Symbol || tok.Symbol != token.CloseParen {
			return cst.Failure[token.Token](cur.Pos())
		}
		tk, _, _ := cur.Advance()
		return cst.Some(tk)
	}

	items, term := cst.ZeroOrMany(c, parseComma, parseClose)
	require.Len(t, items, 2) // one broken entry (the keyword), then the real comma
	assert.False(t, items[0].Ok)
	assert.True(t, items[1].Ok)
	assert.True(t, term.Ok)
}

func TestParseDelimitedEmpty(t *testing.T) {
	toks := []token.Token{symTok(token.OpenParen), symTok(token.CloseParen)}
	c := cst.NewCursor(toks)

	parseItem := func(cur *cst.Cursor) cst.Result[token.Token] {
		return cst.Failure[token.Token](cur.Pos())
	}

	d := cst.ParseDelimited(c, token.OpenParen, token.CloseParen, parseItem)
	assert.True(t, d.OpenOk)
	assert.True(t, d.CloseOk)
	assert.False(t, d.HasItems)
	assert.False(t, d.Broken())
}

func TestParseDelimitedWithTrailingComma(t *testing.T) {
	toks := []token.Token{
		symTok(token.OpenParen),
		symTok(token.Comma), // stand-in "item" token consumed as the first item below
		symTok(token.Comma),
		symTok(token.CloseParen),
	}
	c := cst.NewCursor(toks)

	// A trivial "item" parser that just consumes a single comma token as if
	// it were an item (stands in for a real expression/type parser in this
	// combinator-only test).
	first := true
	parseItem := func(cur *cst.Cursor) cst.Result[token.Token] {
		if !first {
			return cst.Failure[token.Token](cur.Pos())
		}
		first = false
		tok, _, ok := func() (token.Token, int, bool) {
			_, ok := cur.PeekNth(0)
			if !ok {
				return token.Token{}, cur.Pos(), false
			}
			t, idx, _ := cur.Advance()
			return t, idx, ok
		}()
		_ = tok
		_ = ok
		return cst.Some(tok)
	}

	d := cst.ParseDelimited(c, token.OpenParen, token.CloseParen, parseItem)
	assert.True(t, d.OpenOk)
	assert.True(t, d.CloseOk)
	assert.True(t, d.HasItems)
	assert.NotNil(t, d.TrailingComma)
}
