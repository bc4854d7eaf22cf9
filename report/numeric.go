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

package report

import (
	"fmt"
	"math"
	"math/big"

	"github.com/dustin/go-humanize"

	"github.com/nazm-lang/nazmc/token"
)

func maxUint64Big() *big.Int {
	return new(big.Int).SetUint64(math.MaxUint64)
}

// numKindBound returns the largest representable magnitude for a sized
// numeric suffix, as a pre-formatted, thousands-separated string, per §7's
// "numeric literal errors use this to print the maximum permissible value
// for the suffix" chaining rule. ok is false for the two unsuffixed kinds,
// which carry no fixed bound to report.
func numKindBound(k token.NumKind) (string, bool) {
	switch k {
	case token.I1:
		return humanize.Comma(127), true
	case token.I2:
		return humanize.Comma(32767), true
	case token.I4:
		return humanize.Comma(2147483647), true
	case token.I8, token.INative:
		return humanize.Comma(math.MaxInt64), true
	case token.U1:
		return humanize.Comma(255), true
	case token.U2:
		return humanize.Comma(65535), true
	case token.U4:
		return humanize.Comma(4294967295), true
	case token.U8, token.UNative:
		return humanize.BigComma(maxUint64Big()), true
	case token.F4:
		return "٣٫٤ × ١٠^٣٨", true
	case token.F8:
		return "١٫٨ × ١٠^٣٠٨", true
	}
	return "", false
}

// OutOfRangeNote builds the chained note naming the maximum permissible
// value for a numeric literal suffix, or the empty string for an
// unsuffixed literal (no fixed bound applies).
func OutOfRangeNote(k token.NumKind) string {
	bound, ok := numKindBound(k)
	if !ok {
		return ""
	}
	return fmt.Sprintf("أكبر قيمة ممكنة لهذا اللاحقة هي %s", bound)
}
