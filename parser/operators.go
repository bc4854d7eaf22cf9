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

// peekSym reports whether the nth significant token ahead is the given
// symbol.
func peekSym(c *cst.Cursor, n int, s token.SymbolKind) bool {
	t, ok := c.PeekNth(n)
	return ok && t.Kind == token.Symbol && t.Symbol == s
}

// parseBinOp recognizes a binary/compound-assignment operator by examining
// up to three tokens ahead, consuming exactly the tokens that make it up,
// per §4.4's multi-token-lookahead disambiguation contract. It returns
// false (consuming nothing) if the next tokens do not spell an operator —
// notably a bare `.` (field access), a bare `!`, `#` and `->` are left for
// the postfix and other parsers. A bare `*`, `-` or `&` is always taken as
// a binary operator here. `<..<` is not recognized: it returns false.
func parseBinOp(c *cst.Cursor) (cst.BinOp, bool) {
	a, ok := c.PeekNth(0)
	if !ok || a.Kind != token.Symbol {
		return 0, false
	}

	two := func(op cst.BinOp) (cst.BinOp, bool) { c.Advance(); c.Advance(); return op, true }
	three := func(op cst.BinOp) (cst.BinOp, bool) { c.Advance(); c.Advance(); c.Advance(); return op, true }
	one := func(op cst.BinOp) (cst.BinOp, bool) { c.Advance(); return op, true }

	switch a.Symbol {
	case token.Plus:
		if peekSym(c, 1, token.Equal) {
			return two(cst.BinAddAssign)
		}
		return one(cst.BinAdd)
	case token.Minus:
		if peekSym(c, 1, token.CloseAngle) {
			return 0, false // `->`, not a binary operator
		}
		if peekSym(c, 1, token.Equal) {
			return two(cst.BinSubAssign)
		}
		return one(cst.BinSub)
	case token.Star:
		if peekSym(c, 1, token.Equal) {
			return two(cst.BinMulAssign)
		}
		return one(cst.BinMul)
	case token.Slash:
		if peekSym(c, 1, token.Equal) {
			return two(cst.BinDivAssign)
		}
		return one(cst.BinDiv)
	case token.Percent:
		if peekSym(c, 1, token.Equal) {
			return two(cst.BinModAssign)
		}
		return one(cst.BinMod)
	case token.Amp:
		if peekSym(c, 1, token.Amp) {
			return two(cst.BinAnd)
		}
		if peekSym(c, 1, token.Equal) {
			return two(cst.BinAndAssign)
		}
		return one(cst.BinBitAnd)
	case token.Pipe:
		if peekSym(c, 1, token.Pipe) {
			return two(cst.BinOr)
		}
		if peekSym(c, 1, token.Equal) {
			return two(cst.BinOrAssign)
		}
		return one(cst.BinBitOr)
	case token.Caret:
		if peekSym(c, 1, token.Equal) {
			return two(cst.BinXorAssign)
		}
		return one(cst.BinBitXor)
	case token.Equal:
		if peekSym(c, 1, token.Equal) {
			return two(cst.BinEq)
		}
		return one(cst.BinAssign)
	case token.Bang:
		if peekSym(c, 1, token.Equal) {
			return two(cst.BinNe)
		}
		return 0, false
	case token.OpenAngle:
		if peekSym(c, 1, token.OpenAngle) {
			if peekSym(c, 2, token.Equal) {
				return three(cst.BinShlAssign)
			}
			return two(cst.BinShl)
		}
		if peekSym(c, 1, token.Equal) {
			return two(cst.BinLe)
		}
		if peekSym(c, 1, token.Dot) && peekSym(c, 2, token.Dot) {
			if peekSym(c, 3, token.OpenAngle) {
				return 0, false // `<..<` is not recognized as an operator
			}
			return three(cst.BinRangeInclusiveStart)
		}
		return one(cst.BinLt)
	case token.CloseAngle:
		if peekSym(c, 1, token.CloseAngle) {
			if peekSym(c, 2, token.Equal) {
				return three(cst.BinShrAssign)
			}
			return two(cst.BinShr)
		}
		if peekSym(c, 1, token.Equal) {
			return two(cst.BinGe)
		}
		return one(cst.BinGt)
	case token.Dot:
		if peekSym(c, 1, token.Dot) {
			if peekSym(c, 2, token.OpenAngle) {
				return three(cst.BinRangeInclusiveEnd)
			}
			return two(cst.BinRange)
		}
		return 0, false
	}
	return 0, false
}

// parseUnaryOp recognizes a prefix unary operator, applying the inverted
// `#` contract from the open question in spec.md §9: `#` alone is
// BorrowMut, `#` followed by `متغير` (mut) is Borrow.
func parseUnaryOp(c *cst.Cursor) (cst.UnaryOp, bool) {
	t, ok := c.PeekNth(0)
	if !ok || t.Kind != token.Symbol {
		return 0, false
	}
	switch t.Symbol {
	case token.Minus:
		c.Advance()
		return cst.UnaryNeg, true
	case token.Bang:
		c.Advance()
		return cst.UnaryNot, true
	case token.Tilde:
		c.Advance()
		return cst.UnaryBitNot, true
	case token.Star:
		c.Advance()
		return cst.UnaryDeref, true
	case token.Hash:
		c.Advance()
		if _, ok := expectKeyword(c, token.Mut); ok {
			return cst.UnaryBorrow, true
		}
		return cst.UnaryBorrowMut, true
	}
	return 0, false
}
