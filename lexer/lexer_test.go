package lexer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nazm-lang/nazmc/internal/intern"
	"github.com/nazm-lang/nazmc/lexer"
	"github.com/nazm-lang/nazmc/token"
)

func lexAll(t *testing.T, src string) ([]token.Token, []string, []lexer.Error) {
	t.Helper()
	table := intern.NewTable()
	toks, lines, errs := lexer.Lex(src, table)
	return toks, lines, errs
}

func TestLexKeywordsAndIdent(t *testing.T) {
	toks, _, errs := lexAll(t, "دالة رئيسي")
	require.Empty(t, errs)
	require.Len(t, toks, 3)
	assert.Equal(t, token.Keyword, toks[0].Kind)
	assert.Equal(t, token.Fn, toks[0].Keyword)
	assert.Equal(t, token.Space, toks[1].Kind)
	assert.Equal(t, token.Id, toks[2].Kind)
}

func TestLexBoolLiterals(t *testing.T) {
	toks, _, errs := lexAll(t, "صحيح فاسد")
	require.Empty(t, errs)
	require.Len(t, toks, 3)
	assert.True(t, toks[0].Literal.Bool)
	assert.False(t, toks[2].Literal.Bool)
}

func TestLexSymbols(t *testing.T) {
	toks, _, errs := lexAll(t, "،؛؟(){}[]")
	require.Empty(t, errs)
	require.Len(t, toks, 9)
	assert.Equal(t, token.Comma, toks[0].Symbol)
	assert.Equal(t, token.CloseSquare, toks[8].Symbol)
}

func TestLexLineComment(t *testing.T) {
	toks, _, errs := lexAll(t, "// هذا تعليق\nدالة")
	require.Empty(t, errs)
	require.Len(t, toks, 3)
	assert.Equal(t, token.LineComment, toks[0].Kind)
	assert.Equal(t, token.EOL, toks[1].Kind)
	assert.Equal(t, token.Keyword, toks[2].Kind)
}

func TestLexDelimitedComment(t *testing.T) {
	toks, _, errs := lexAll(t, "/* تعليق /* متداخل */ */")
	require.Empty(t, errs)
	require.Len(t, toks, 1)
	assert.Equal(t, token.DelimitedComment, toks[0].Kind)
}

func TestLexUnclosedDelimitedComment(t *testing.T) {
	_, _, errs := lexAll(t, "/* بدون إغلاق")
	require.Len(t, errs, 1)
	assert.Equal(t, lexer.UnclosedDelimitedComment, errs[0].Kind)
}

func TestLexStringLiteral(t *testing.T) {
	table := intern.NewTable()
	toks, _, errs := lexer.Lex(`"مرحبا\سبالعالم"`, table)
	require.Empty(t, errs)
	require.Len(t, toks, 1)
	assert.Equal(t, "مرحبا\nبالعالم", table.Value(toks[0].Literal.Str))
}

func TestLexCharLiteral(t *testing.T) {
	toks, _, errs := lexAll(t, `'س'`)
	require.Empty(t, errs)
	require.Len(t, toks, 1)
	assert.Equal(t, 'س', toks[0].Literal.Char)
}

func TestLexCharEscape(t *testing.T) {
	toks, _, errs := lexAll(t, `'\ف'`)
	require.Empty(t, errs)
	require.Len(t, toks, 1)
	assert.Equal(t, '\t', toks[0].Literal.Char)
}

func TestLexUnicodeEscape(t *testing.T) {
	toks, _, errs := lexAll(t, `'\ي0041'`)
	require.Empty(t, errs)
	require.Len(t, toks, 1)
	assert.Equal(t, rune(0x41), toks[0].Literal.Char)
}

func TestLexManyCharsError(t *testing.T) {
	_, _, errs := lexAll(t, `'سس'`)
	require.Len(t, errs, 1)
	assert.Equal(t, lexer.ManyChars, errs[0].Kind)
}

func TestLexUnsuffixedInt(t *testing.T) {
	toks, _, errs := lexAll(t, "42")
	require.Empty(t, errs)
	require.Len(t, toks, 1)
	assert.Equal(t, token.UnspecifiedInt, toks[0].Literal.Num.Kind)
	assert.Equal(t, uint64(42), toks[0].Literal.Num.Int)
}

func TestLexSuffixedInt(t *testing.T) {
	toks, _, errs := lexAll(t, "10ص1")
	require.Empty(t, errs)
	require.Len(t, toks, 1)
	assert.Equal(t, token.I1, toks[0].Literal.Num.Kind)
	assert.Equal(t, uint64(10), toks[0].Literal.Num.Int)
}

func TestLexBasePrefixedInt(t *testing.T) {
	toks, _, errs := lexAll(t, "16#FF")
	require.Empty(t, errs)
	require.Len(t, toks, 1)
	assert.Equal(t, uint64(0xFF), toks[0].Literal.Num.Int)
}

func TestLexOutOfRangeSuffixedInt(t *testing.T) {
	_, _, errs := lexAll(t, "999م1")
	require.Len(t, errs, 1)
	assert.Equal(t, lexer.NumIsOutOfRange, errs[0].Kind)
}

func TestLexFloat(t *testing.T) {
	toks, _, errs := lexAll(t, "3.14")
	require.Empty(t, errs)
	require.Len(t, toks, 1)
	assert.True(t, toks[0].Literal.Num.Kind.IsFloat())
	assert.InDelta(t, 3.14, toks[0].Literal.Num.Float, 0.0001)
}

func TestLexFloatSuffixed(t *testing.T) {
	toks, _, errs := lexAll(t, "2ع4")
	require.Empty(t, errs)
	require.Len(t, toks, 1)
	assert.Equal(t, token.F4, toks[0].Literal.Num.Kind)
}

func TestLexForbiddenCharInComment(t *testing.T) {
	_, _, errs := lexAll(t, "// ☤\n")
	require.Len(t, errs, 1)
	assert.Equal(t, lexer.KufrOrInvalidChar, errs[0].Kind)
}

func TestLexEmptyInput(t *testing.T) {
	toks, lines, errs := lexAll(t, "")
	assert.Empty(t, toks)
	assert.Empty(t, errs)
	require.Len(t, lines, 1)
	assert.Equal(t, "", lines[0])
}
