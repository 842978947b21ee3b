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

// DDA positions which lie exactly half way between two cells are rounded
// away from zero.  Bresenham breaks the same ties towards the smaller
// coordinate.
var roundingCases = []TestCase{
	{
		Name: "half_up",
		From: [2]int{0, 0},
		To:   [2]int{2, 1},
		Want: map[string][][2]int{
			"dda":       {{0, 0}, {1, 1}, {2, 1}},
			"bresenham": {{0, 0}, {1, 0}, {2, 1}},
		},
	},
	{
		Name: "half_down",
		From: [2]int{0, 0},
		To:   [2]int{2, -1},
		Want: map[string][][2]int{
			"dda":       {{0, 0}, {1, -1}, {2, -1}},
			"bresenham": {{0, 0}, {1, -1}, {2, -1}},
		},
	},
	{
		Name: "half_left",
		From: [2]int{0, 0},
		To:   [2]int{-2, 1},
		Want: map[string][][2]int{
			"dda":       {{0, 0}, {-1, 1}, {-2, 1}},
			"bresenham": {{0, 0}, {-1, 0}, {-2, 1}},
		},
	},
	{
		Name: "quarters",
		From: [2]int{0, 0},
		To:   [2]int{4, 1},
		Want: map[string][][2]int{
			"dda":       {{0, 0}, {1, 0}, {2, 1}, {3, 1}, {4, 1}},
			"bresenham": {{0, 0}, {1, 0}, {2, 0}, {3, 1}, {4, 1}},
		},
	},
	{
		Name: "negative_quarters",
		From: [2]int{0, 0},
		To:   [2]int{4, -3},
		Want: map[string][][2]int{
			"dda":       {{0, 0}, {1, -1}, {2, -2}, {3, -2}, {4, -3}},
			"bresenham": {{0, 0}, {1, -1}, {2, -2}, {3, -2}, {4, -3}},
		},
	},
	{
		Name: "fifths",
		From: [2]int{1, 2},
		To:   [2]int{6, 4},
		Want: map[string][][2]int{
			"dda":       {{1, 2}, {2, 2}, {3, 3}, {4, 3}, {5, 4}, {6, 4}},
			"bresenham": {{1, 2}, {2, 2}, {3, 3}, {4, 3}, {5, 4}, {6, 4}},
		},
	},
}
