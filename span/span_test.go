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

package span_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nazm-lang/nazmc/span"
)

func TestMerge(t *testing.T) {
	a := span.Span{Start: span.Position{Line: 0, Col: 0}, End: span.Position{Line: 0, Col: 4}}
	b := span.Span{Start: span.Position{Line: 1, Col: 0}, End: span.Position{Line: 1, Col: 8}}

	got := span.Merge(a, b)
	assert.Equal(t, a.Start, got.Start)
	assert.Equal(t, b.End, got.End)
}

func TestAfter(t *testing.T) {
	s := span.Span{Start: span.Position{Line: 2, Col: 1}, End: span.Position{Line: 2, Col: 5}}
	after := span.After(s)
	assert.Equal(t, s.End, after.Start)
	assert.Equal(t, s.End, after.End)
}

func TestLenAfter(t *testing.T) {
	s := span.Span{Start: span.Position{Line: 2, Col: 1}, End: span.Position{Line: 2, Col: 5}}
	got := span.LenAfter(s, 3)
	assert.Equal(t, s.End, got.Start)
	assert.Equal(t, span.Position{Line: 2, Col: 8}, got.End)
}

func TestPositionString(t *testing.T) {
	assert.Equal(t, "1:1", span.Position{}.String())
	assert.Equal(t, "3:12", span.Position{Line: 2, Col: 11}.String())
}

func TestPositionLess(t *testing.T) {
	assert.True(t, (span.Position{Line: 0, Col: 5}).Less(span.Position{Line: 1, Col: 0}))
	assert.True(t, (span.Position{Line: 1, Col: 0}).Less(span.Position{Line: 1, Col: 1}))
	assert.False(t, (span.Position{Line: 1, Col: 1}).Less(span.Position{Line: 1, Col: 1}))
}

func TestIsZero(t *testing.T) {
	assert.True(t, span.Span{}.IsZero())
	assert.False(t, (span.Span{End: span.Position{Col: 1}}).IsZero())
}
