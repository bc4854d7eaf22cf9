// Package charclass classifies Unicode scalars the language refuses to
// accept anywhere in source text, per the external-interface contract.
package charclass

import (
	"unicode"

	"golang.org/x/text/unicode/rangetable"
)

var singles = []rune{
	0x03EE, 0x03EF, 0x058D, 0x058E, 0x05EF,
	0x07D9, 0x093B, 0x13D0, 0x165C, 0x16BE, 0x16ED, 0x17D2,
	0x1D7B, 0x2020, 0x2021, 0x256A, 0x256B, 0x256C, 0x2616,
	0x2617, 0x269C, 0x269E, 0x269F, 0x26AF, 0x26B0, 0x26B1,
	0x26F3, 0x26F9, 0x26FB, 0x26FF, 0x27CA, 0x29FE, 0x2CFE,
}

type runeRange struct{ lo, hi rune }

var ranges = []runeRange{
	{0x0900, 0x109F},
	{0x1100, 0x1C7F},
	{0x253C, 0x254B},
	{0x2624, 0x2638},
	{0x263D, 0x2653},
	{0x2654, 0x2667},
	{0x2669, 0x2671},
	{0x2680, 0x268F},
	{0x26A2, 0x26A9},
	{0x26B3, 0x26BC},
	{0x26BF, 0x26EC},
	{0x2719, 0x2725},
	{0x2BF0, 0x2C5F},
	{0x2D80, 0xAB2F},
	{0xAB70, 0xFAFF},
}

// Forbidden is the [unicode.RangeTable] of every scalar the language
// refuses to lex, built once at init time from the fixed enumeration in the
// external-interface contract (individual code points plus ranges).
var Forbidden = buildTable()

func buildTable() *unicode.RangeTable {
	discrete := rangetable.New(singles...)

	contiguous := &unicode.RangeTable{}
	for _, r := range ranges {
		contiguous.R32 = append(contiguous.R32, unicode.Range32{
			Lo: uint32(r.lo), Hi: uint32(r.hi), Stride: 1,
		})
	}

	return rangetable.Merge(discrete, contiguous)
}

// Is reports whether r is a forbidden scalar.
func Is(r rune) bool {
	return unicode.Is(Forbidden, r)
}
