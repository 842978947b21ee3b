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

var axisCases = []TestCase{
	{
		Name: "horizontal",
		From: [2]int{-3, 1},
		To:   [2]int{4, 1},
		Want: map[string][][2]int{
			"dda":       {{-3, 1}, {-2, 1}, {-1, 1}, {0, 1}, {1, 1}, {2, 1}, {3, 1}, {4, 1}},
			"bresenham": {{-3, 1}, {-2, 1}, {-1, 1}, {0, 1}, {1, 1}, {2, 1}, {3, 1}, {4, 1}},
		},
	},
	{
		Name: "horizontal_reverse",
		From: [2]int{4, 1},
		To:   [2]int{-3, 1},
		Want: map[string][][2]int{
			"dda":       {{4, 1}, {3, 1}, {2, 1}, {1, 1}, {0, 1}, {-1, 1}, {-2, 1}, {-3, 1}},
			"bresenham": {{4, 1}, {3, 1}, {2, 1}, {1, 1}, {0, 1}, {-1, 1}, {-2, 1}, {-3, 1}},
		},
	},
	{
		Name: "vertical_down",
		From: [2]int{2, 4},
		To:   [2]int{2, -3},
		Want: map[string][][2]int{
			"dda":       {{2, 4}, {2, 3}, {2, 2}, {2, 1}, {2, 0}, {2, -1}, {2, -2}, {2, -3}},
			"bresenham": {{2, 4}, {2, 3}, {2, 2}, {2, 1}, {2, 0}, {2, -1}, {2, -2}, {2, -3}},
		},
	},
	{
		Name: "diagonal_down",
		From: [2]int{3, 3},
		To:   [2]int{-2, -2},
		Want: map[string][][2]int{
			"dda":       {{3, 3}, {2, 2}, {1, 1}, {0, 0}, {-1, -1}, {-2, -2}},
			"bresenham": {{3, 3}, {2, 2}, {1, 1}, {0, 0}, {-1, -1}, {-2, -2}},
		},
	},
	{
		Name: "anti_diagonal",
		From: [2]int{-2, 3},
		To:   [2]int{2, -1},
		Want: map[string][][2]int{
			"dda":       {{-2, 3}, {-1, 2}, {0, 1}, {1, 0}, {2, -1}},
			"bresenham": {{-2, 3}, {-1, 2}, {0, 1}, {1, 0}, {2, -1}},
		},
	},
}
