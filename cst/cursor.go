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

// Package cst defines the concrete syntax tree's fallible node shapes and
// the recoverable combinator framework that builds them, grounded on
// experimental/parser/parse_delimited.go's delimited-sequence generator and
// on nazmc's own parser/mod.rs recovery strategy.
package cst

import "github.com/nazm-lang/nazmc/token"

// Cursor walks a read-only token slice, skipping skippable tokens (space,
// EOL, comments) between syntactic tokens while keeping them addressable by
// index for diagnostics.
type Cursor struct {
	Tokens []token.Token
	pos    int // index into Tokens of the next *significant* token to consider
}

// NewCursor returns a Cursor over tokens, positioned at the first
// significant token.
func NewCursor(tokens []token.Token) *Cursor {
	c := &Cursor{Tokens: tokens}
	c.skipInsignificant()
	return c
}

func (c *Cursor) skipInsignificant() {
	for c.pos < len(c.Tokens) && c.Tokens[c.pos].IsSkippable() {
		c.pos++
	}
}

// Pos returns the index, into Tokens, of the next significant token (or
// len(Tokens) at end of input).
func (c *Cursor) Pos() int { return c.pos }

// SetPos resets the cursor to a previously observed Pos(), for backtracking.
func (c *Cursor) SetPos(pos int) { c.pos = pos }

// AtEnd reports whether the cursor has consumed every significant token.
func (c *Cursor) AtEnd() bool { return c.pos >= len(c.Tokens) }

// PeekNth returns the nth significant token from the cursor (0 = the next
// one to be consumed) and whether it exists.
func (c *Cursor) PeekNth(n int) (token.Token, bool) {
	i := c.pos
	for {
		if i >= len(c.Tokens) {
			return token.Token{}, false
		}
		if !c.Tokens[i].IsSkippable() {
			if n == 0 {
				return c.Tokens[i], true
			}
			n--
		}
		i++
	}
}

// Advance consumes and returns the next significant token.
func (c *Cursor) Advance() (token.Token, int, bool) {
	tok, ok := c.PeekNth(0)
	if !ok {
		return token.Token{}, c.pos, false
	}
	idx := c.indexOfNextSignificant()
	c.pos = idx + 1
	c.skipInsignificant()
	return tok, idx, true
}

func (c *Cursor) indexOfNextSignificant() int {
	i := c.pos
	for i < len(c.Tokens) && c.Tokens[i].IsSkippable() {
		i++
	}
	return i
}

// AdvanceToNextSignificant moves the raw index forward by one significant
// token without interpreting it, used by ZeroOrMany's recovery-skip path.
func (c *Cursor) AdvanceToNextSignificant() {
	if c.AtEnd() {
		return
	}
	c.pos = c.indexOfNextSignificant() + 1
	c.skipInsignificant()
}
