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

package cst

import "github.com/nazm-lang/nazmc/token"

// Result is the outcome of attempting to parse exactly one non-terminal:
// either a value, or the index of the token where the attempt gave up.
// Unlike a Go error, a failed Result never unwinds the call stack — every
// combinator that embeds a Result absorbs the failure into its own partial
// result, per the recoverable-parsing contract.
type Result[T any] struct {
	Value           T
	Ok              bool
	FoundTokenIndex int
}

func Some[T any](v T) Result[T] { return Result[T]{Value: v, Ok: true} }

func Failure[T any](foundTokenIndex int) Result[T] {
	return Result[T]{FoundTokenIndex: foundTokenIndex}
}

// ParseFunc parses exactly one T starting at the cursor's current position,
// backtracking the cursor itself on failure (callers that need to inspect
// the failure location before backtracking should save Pos() first).
type ParseFunc[T any] func(c *Cursor) Result[T]

// ParseOption tries p; on failure it backtracks and returns nil.
func ParseOption[T any](c *Cursor, p ParseFunc[T]) *T {
	save := c.Pos()
	r := p(c)
	if r.Ok {
		return &r.Value
	}
	c.SetPos(save)
	return nil
}

// ParseVec parses p greedily, backtracking to just before the first
// failure and returning everything parsed up to that point.
func ParseVec[T any](c *Cursor, p ParseFunc[T]) []T {
	var out []T
	for {
		save := c.Pos()
		r := p(c)
		if !r.Ok {
			c.SetPos(save)
			return out
		}
		out = append(out, r.Value)
	}
}

// ZeroOrMany is the workhorse recovery loop: parse Item greedily; on an
// item failure, try Terminator; if neither matches, record a broken entry
// and skip one significant token before retrying. On success the cursor
// rests strictly after the terminator.
func ZeroOrMany[Item any, Term any](c *Cursor, parseItem ParseFunc[Item], parseTerm ParseFunc[Term]) ([]Result[Item], Result[Term]) {
	var items []Result[Item]
	for {
		if c.AtEnd() {
			return items, Failure[Term](c.Pos())
		}

		save := c.Pos()
		itemRes := parseItem(c)
		if itemRes.Ok {
			items = append(items, itemRes)
			continue
		}
		c.SetPos(save)

		termRes := parseTerm(c)
		if termRes.Ok {
			return items, termRes
		}

		items = append(items, itemRes)
		c.AdvanceToNextSignificant()
	}
}

// OneOrMany requires a first Item, then delegates the rest of the sequence
// to ZeroOrMany.
func OneOrMany[Item any, Term any](c *Cursor, parseItem ParseFunc[Item], parseTerm ParseFunc[Term]) ([]Result[Item], Result[Term]) {
	first := parseItem(c)
	if !first.Ok {
		c.AdvanceToNextSignificant()
	}
	rest, term := ZeroOrMany(c, parseItem, parseTerm)
	items := append([]Result[Item]{first}, rest...)
	return items, term
}

// CommaItem is one (comma, item) pair inside a punctuated sequence's tail.
type CommaItem[T any] struct {
	Comma token.Token
	Item  Result[T]
}

// Delimited is the normalized shape of a `(open item, item, item,? close)`
// punctuated sequence: an open delimiter, an optional (first_item, rest,
// trailing_comma) sequence, and a close delimiter. Broken() reports
// whether any part of it failed to parse cleanly.
type Delimited[T any] struct {
	Open      token.Token
	OpenOk    bool
	HasItems  bool
	First     Result[T]
	Rest      []CommaItem[T]
	TrailingComma *token.Token
	Close     token.Token
	CloseOk   bool
}

func (d Delimited[T]) Broken() bool {
	if !d.OpenOk || !d.CloseOk {
		return true
	}
	if d.HasItems && !d.First.Ok {
		return true
	}
	for _, r := range d.Rest {
		if !r.Item.Ok {
			return true
		}
	}
	return false
}

// ParseDelimited parses `open item (، item)* ،? close`, grounded on
// experimental/parser/parse_delimited.go's badPrefix skip-and-report loop
// but specialized to this grammar's single-symbol open/close/separator
// tokens rather than an arbitrary taxon set.
func ParseDelimited[T any](c *Cursor, open, closeSym token.SymbolKind, parseItem ParseFunc[T]) Delimited[T] {
	var d Delimited[T]

	openTok, _, openOk := expectSymbol(c, open)
	d.Open, d.OpenOk = openTok, openOk

	parseClose := func(cur *Cursor) Result[token.Token] {
		tok, _, ok := expectSymbol(cur, closeSym)
		if !ok {
			return Failure[token.Token](cur.Pos())
		}
		return Some(tok)
	}
	parseComma := func(cur *Cursor) Result[token.Token] {
		tok, _, ok := expectSymbol(cur, token.Comma)
		if !ok {
			return Failure[token.Token](cur.Pos())
		}
		return Some(tok)
	}

	if closeRes := tryParse(c, parseClose); closeRes.Ok {
		d.Close, d.CloseOk = closeRes.Value, true
		return d
	}

	d.HasItems = true
	d.First = parseItem(c)

	for {
		if c.AtEnd() {
			d.CloseOk = false
			return d
		}
		commaRes := tryParse(c, parseComma)
		if !commaRes.Ok {
			if closeRes := tryParse(c, parseClose); closeRes.Ok {
				d.Close, d.CloseOk = closeRes.Value, true
				return d
			}
			// Neither a comma nor the close delimiter: skip one token and
			// keep trying, same recovery discipline as ZeroOrMany.
			c.AdvanceToNextSignificant()
			continue
		}
		if closeRes := tryParse(c, parseClose); closeRes.Ok {
			d.TrailingComma = &commaRes.Value
			d.Close, d.CloseOk = closeRes.Value, true
			return d
		}
		itemRes := parseItem(c)
		d.Rest = append(d.Rest, CommaItem[T]{Comma: commaRes.Value, Item: itemRes})
	}
}

func tryParse[T any](c *Cursor, p ParseFunc[T]) Result[T] {
	save := c.Pos()
	r := p(c)
	if !r.Ok {
		c.SetPos(save)
	}
	return r
}

func expectSymbol(c *Cursor, sym token.SymbolKind) (token.Token, int, bool) {
	tok, ok := c.PeekNth(0)
	if !ok || tok.Kind != token.Symbol || tok.Symbol != sym {
		return token.Token{}, c.Pos(), false
	}
	t, idx, _ := c.Advance()
	return t, idx, true
}
