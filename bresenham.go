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
	"strings"
)

// RasterizeBresenham rasterises the line from p1 to p2 using Bresenham's
// algorithm in its octant-independent form.  Only integer arithmetic is
// used.
//
// The error term err starts at dx-dy, where dx and dy are the absolute
// distances between the end points.  In each step, with e2 = 2*err, the x
// coordinate advances if e2 > -dy and the y coordinate advances if e2 < dx.
// Both conditions are checked independently, so that diagonal moves take a
// single step.
//
// When the line passes exactly through the midpoint between two candidate
// cells (e2 == -dy or e2 == dx), the cell with the smaller coordinate is
// chosen.  For lines running in the positive direction this is the usual
// behaviour of the algorithm.  For lines running in the negative direction
// the move is taken on ties.  This makes the output independent of the
// direction in which the line is traversed: swapping p1 and p2 yields the
// same cells in reverse order.
func RasterizeBresenham(p1, p2 Point) *Trace {
	dx := abs(p2.X - p1.X)
	dy := abs(p2.Y - p1.Y)
	sx := 1
	if p2.X < p1.X {
		sx = -1
	}
	sy := 1
	if p2.Y < p1.Y {
		sy = -1
	}

	n := max(dx, dy) + 1
	tr := &Trace{
		Algorithm: Bresenham,
		From:      p1,
		To:        p2,
		Cells:     make([]Cell, 0, n),
		Steps:     make([]Step, 0, n),
	}

	x, y := p1.X, p1.Y
	err := dx - dy
	var explanation string
	for {
		tr.add(Step{
			Cell:        Cell{X: x, Y: y},
			Err:         err,
			Explanation: explanation,
		})
		if x == p2.X && y == p2.Y {
			break
		}

		b := &strings.Builder{}
		e2 := 2 * err
		fmt.Fprintf(b, "e = %d, 2e = %d", err, e2)

		// The two updates are independent; both fire for diagonal moves.
		if e2 > -dy {
			err -= dy
			x += sx
			fmt.Fprintf(b, "\n→ 2e > -dy (%d > %d) → x += %d, e -= %d → e = %d",
				e2, -dy, sx, dy, err)
		} else if e2 == -dy && sx < 0 {
			err -= dy
			x += sx
			fmt.Fprintf(b, "\n→ 2e = -dy (%d = %d), tie towards smaller x → x += %d, e -= %d → e = %d",
				e2, -dy, sx, dy, err)
		}
		if e2 < dx {
			err += dx
			y += sy
			fmt.Fprintf(b, "\n→ 2e < dx (%d < %d) → y += %d, e += %d → e = %d",
				e2, dx, sy, dx, err)
		} else if e2 == dx && sy < 0 {
			err += dx
			y += sy
			fmt.Fprintf(b, "\n→ 2e = dx (%d = %d), tie towards smaller y → y += %d, e += %d → e = %d",
				e2, dx, sy, dx, err)
		}
		explanation = b.String()
	}
	return tr
}
