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

package testcases

// TestCase defines a single line to rasterise.
type TestCase struct {
	Name     string // lowercase a-z and _ only
	From, To [2]int // end points in grid coordinates

	// Want gives the expected cells, keyed by algorithm name ("dda" or
	// "bresenham").  Algorithms without an entry are only checked for
	// the general properties of a trace.
	Want map[string][][2]int
}

// cells is a helper to spell out the same expected cells for both algorithms.
func cells(c ...[2]int) map[string][][2]int {
	return map[string][][2]int{
		"dda":       c,
		"bresenham": c,
	}
}
