package token_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nazm-lang/nazmc/token"
)

func TestLookupKeyword(t *testing.T) {
	k, ok := token.LookupKeyword("دالة")
	assert.True(t, ok)
	assert.Equal(t, token.Fn, k)

	k, ok = token.LookupKeyword("أرجع")
	assert.True(t, ok)
	assert.Equal(t, token.Return, k)

	_, ok = token.LookupKeyword("ليس_كلمة_مفتاحية")
	assert.False(t, ok)
}

func TestKeywordKindString(t *testing.T) {
	assert.Equal(t, "احجز", token.Let.String())
	assert.Equal(t, "استيراد", token.Import.String())
}

func TestSymbolKindString(t *testing.T) {
	assert.Equal(t, "،", token.Comma.String())
	assert.Equal(t, "؛", token.Semicolon.String())
}

func TestNumKindIsFloat(t *testing.T) {
	assert.True(t, token.F4.IsFloat())
	assert.True(t, token.F8.IsFloat())
	assert.True(t, token.UnspecifiedFloat.IsFloat())
	assert.False(t, token.I4.IsFloat())
	assert.False(t, token.UnspecifiedInt.IsFloat())
}

func TestKindIsSkippable(t *testing.T) {
	assert.True(t, token.Space.IsSkippable())
	assert.True(t, token.EOL.IsSkippable())
	assert.True(t, token.LineComment.IsSkippable())
	assert.True(t, token.DelimitedComment.IsSkippable())
	assert.False(t, token.Id.IsSkippable())
	assert.False(t, token.Literal.IsSkippable())
}
