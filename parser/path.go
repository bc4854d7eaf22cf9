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

func parseId(c *cst.Cursor) cst.Result[cst.Id] {
	tok, ok := c.PeekNth(0)
	if !ok || tok.Kind != token.Id {
		return cst.Failure[cst.Id](c.Pos())
	}
	t, _, _ := c.Advance()
	return cst.Some(cst.Id{Span: t.Span, Pool: t.Literal.Str})
}

// parsePath parses `id (:: id)*`.
func parsePath(c *cst.Cursor) cst.Result[cst.Path] {
	first := parseId(c)
	if !first.Ok {
		return cst.Failure[cst.Path](first.FoundTokenIndex)
	}
	segs := []cst.Id{first.Value}
	for peekDoubleColon(c) {
		save := c.Pos()
		consumeDoubleColon(c)
		next := parseId(c)
		if !next.Ok {
			c.SetPos(save)
			break
		}
		segs = append(segs, next.Value)
	}
	return cst.Some(cst.Path{Segments: segs})
}

func parseVis(c *cst.Cursor) cst.Vis {
	if t, ok := expectKeyword(c, token.Public); ok {
		return cst.Vis{Kind: cst.VisPublic, Token: &t}
	}
	if t, ok := expectKeyword(c, token.Private); ok {
		return cst.Vis{Kind: cst.VisPrivate, Token: &t}
	}
	return cst.Vis{Kind: cst.VisDefault}
}
