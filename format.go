// seehuhn.de/go/gridline - step-by-step line rasterisation
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package gridline

import (
	"math"
	"strconv"
	"strings"
)

// FormatNumber formats x for display in step explanations and tables.
// Integers are shown without a decimal point.  Other values are rounded
// to at most three decimal places, and trailing zeros are removed,
// together with the decimal point if nothing remains after it.
//
// Rounding is to the nearest representable decimal, as done by
// [strconv.FormatFloat]; FormatNumber(1.23456) gives "1.235".
// Negative values which round to zero are shown as "0".
func FormatNumber(x float64) string {
	if x == math.Trunc(x) && !math.IsInf(x, 0) {
		if x == 0 {
			return "0" // also for negative zero
		}
		return strconv.FormatFloat(x, 'f', -1, 64)
	}

	s := strconv.FormatFloat(x, 'f', 3, 64)
	if strings.ContainsRune(s, '.') {
		s = strings.TrimRight(s, "0")
		s = strings.TrimSuffix(s, ".")
	}
	if s == "-0" {
		s = "0"
	}
	return s
}
