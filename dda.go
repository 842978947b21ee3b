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
	"fmt"
	"math"

	"seehuhn.de/go/geom/vec"
)

// RasterizeDDA rasterises the line from p1 to p2 using a digital
// differential analyser.
//
// The position is tracked as a pair of real numbers which advance by a
// constant increment per step, chosen so that the longer axis moves by
// exactly one cell.  Each step plots the cell obtained by rounding the
// position to the nearest integers, with halves rounded away from zero
// (see [math.Round]).  The accumulator is set to p2 exactly in the final
// step, so that rounding errors cannot move the last cell.
//
// If p1 == p2, the trace consists of the single cell p1.
func RasterizeDDA(p1, p2 Point) *Trace {
	dx := p2.X - p1.X
	dy := p2.Y - p1.Y
	n := max(abs(dx), abs(dy))

	tr := &Trace{
		Algorithm: DDA,
		From:      p1,
		To:        p2,
		Cells:     make([]Cell, 0, n+1),
		Steps:     make([]Step, 0, n+1),
	}

	pos := vec.Vec2{X: float64(p1.X), Y: float64(p1.Y)}
	end := vec.Vec2{X: float64(p2.X), Y: float64(p2.Y)}

	// the increment is only defined for n > 0
	var inc vec.Vec2
	if n > 0 {
		inc = vec.Vec2{X: float64(dx) / float64(n), Y: float64(dy) / float64(n)}
	}

	for i := 0; i <= n; i++ {
		if i == n {
			pos = end
		}
		c := Cell{X: roundHalfAway(pos.X), Y: roundHalfAway(pos.Y)}

		var explanation string
		if i > 0 {
			explanation = explainDDA(pos, inc, c)
		}
		tr.add(Step{
			Cell:        c,
			Raw:         pos,
			Inc:         inc,
			Explanation: explanation,
		})

		pos = pos.Add(inc)
	}
	return tr
}

// explainDDA describes how the DDA arrived at cell c, where pos is the
// accumulator after adding inc.
func explainDDA(pos, inc vec.Vec2, c Cell) string {
	return fmt.Sprintf("x += %s → x = %s\n"+
		"y += %s → y = %s\n"+
		"→ round(%s, %s)\n"+
		"→ %s",
		FormatNumber(inc.X), FormatNumber(pos.X),
		FormatNumber(inc.Y), FormatNumber(pos.Y),
		FormatNumber(pos.X), FormatNumber(pos.Y),
		c)
}

// roundHalfAway rounds x to the nearest integer, with halves rounded away
// from zero.
func roundHalfAway(x float64) int {
	return int(math.Round(x))
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
