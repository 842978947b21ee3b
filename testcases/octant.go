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

var octantCases = []TestCase{
	{
		Name: "east_north_east",
		From: [2]int{0, 0},
		To:   [2]int{5, 2},
		Want: map[string][][2]int{
			"dda":       {{0, 0}, {1, 0}, {2, 1}, {3, 1}, {4, 2}, {5, 2}},
			"bresenham": {{0, 0}, {1, 0}, {2, 1}, {3, 1}, {4, 2}, {5, 2}},
		},
	},
	{
		Name: "north_north_east",
		From: [2]int{0, 0},
		To:   [2]int{2, 5},
		Want: map[string][][2]int{
			"dda":       {{0, 0}, {0, 1}, {1, 2}, {1, 3}, {2, 4}, {2, 5}},
			"bresenham": {{0, 0}, {0, 1}, {1, 2}, {1, 3}, {2, 4}, {2, 5}},
		},
	},
	{
		Name: "north_north_west",
		From: [2]int{0, 0},
		To:   [2]int{-2, 5},
		Want: map[string][][2]int{
			"dda":       {{0, 0}, {0, 1}, {-1, 2}, {-1, 3}, {-2, 4}, {-2, 5}},
			"bresenham": {{0, 0}, {0, 1}, {-1, 2}, {-1, 3}, {-2, 4}, {-2, 5}},
		},
	},
	{
		Name: "west_north_west",
		From: [2]int{0, 0},
		To:   [2]int{-5, 2},
		Want: map[string][][2]int{
			"dda":       {{0, 0}, {-1, 0}, {-2, 1}, {-3, 1}, {-4, 2}, {-5, 2}},
			"bresenham": {{0, 0}, {-1, 0}, {-2, 1}, {-3, 1}, {-4, 2}, {-5, 2}},
		},
	},
	{
		Name: "west_south_west",
		From: [2]int{0, 0},
		To:   [2]int{-5, -2},
		Want: map[string][][2]int{
			"dda":       {{0, 0}, {-1, 0}, {-2, -1}, {-3, -1}, {-4, -2}, {-5, -2}},
			"bresenham": {{0, 0}, {-1, 0}, {-2, -1}, {-3, -1}, {-4, -2}, {-5, -2}},
		},
	},
	{
		Name: "south_south_west",
		From: [2]int{0, 0},
		To:   [2]int{-2, -5},
		Want: map[string][][2]int{
			"dda":       {{0, 0}, {0, -1}, {-1, -2}, {-1, -3}, {-2, -4}, {-2, -5}},
			"bresenham": {{0, 0}, {0, -1}, {-1, -2}, {-1, -3}, {-2, -4}, {-2, -5}},
		},
	},
	{
		Name: "south_south_east",
		From: [2]int{0, 0},
		To:   [2]int{2, -5},
		Want: map[string][][2]int{
			"dda":       {{0, 0}, {0, -1}, {1, -2}, {1, -3}, {2, -4}, {2, -5}},
			"bresenham": {{0, 0}, {0, -1}, {1, -2}, {1, -3}, {2, -4}, {2, -5}},
		},
	},
	{
		Name: "east_south_east",
		From: [2]int{0, 0},
		To:   [2]int{5, -2},
		Want: map[string][][2]int{
			"dda":       {{0, 0}, {1, 0}, {2, -1}, {3, -1}, {4, -2}, {5, -2}},
			"bresenham": {{0, 0}, {1, 0}, {2, -1}, {3, -1}, {4, -2}, {5, -2}},
		},
	},
}
