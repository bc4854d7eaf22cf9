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

// parseImport parses `استيراد path ( :: id )* ( :: * )? ؛`.
func parseImport(c *cst.Cursor) cst.Result[cst.Import] {
	save := c.Pos()
	kw, ok := expectKeyword(c, token.Import)
	if !ok {
		return cst.Failure[cst.Import](c.Pos())
	}

	first := parseId(c)
	if !first.Ok {
		c.SetPos(save)
		return cst.Failure[cst.Import](first.FoundTokenIndex)
	}

	segs := []cst.Id{first.Value}
	var star *token.Token

	for peekDoubleColon(c) {
		inner := c.Pos()
		consumeDoubleColon(c)
		if t, ok := expectSymbol(c, token.Star); ok {
			star = &t
			break
		}
		next := parseId(c)
		if !next.Ok {
			c.SetPos(inner)
			break
		}
		segs = append(segs, next.Value)
	}

	semi, semiOk := expectSymbol(c, token.Semicolon)

	return cst.Some(cst.Import{
		Keyword:     kw,
		Path:        cst.Path{Segments: segs},
		Star:        star,
		Semicolon:   semi,
		SemicolonOk: semiOk,
	})
}
