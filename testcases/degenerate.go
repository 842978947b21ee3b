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

var degenerateCases = []TestCase{
	{
		Name: "coincident_negative",
		From: [2]int{-4, -7},
		To:   [2]int{-4, -7},
		Want: map[string][][2]int{
			"dda":       {{-4, -7}},
			"bresenham": {{-4, -7}},
		},
	},
	{
		Name: "unit_diagonal",
		From: [2]int{0, 0},
		To:   [2]int{1, 1},
		Want: map[string][][2]int{
			"dda":       {{0, 0}, {1, 1}},
			"bresenham": {{0, 0}, {1, 1}},
		},
	},
	{
		Name: "unit_left",
		From: [2]int{0, 0},
		To:   [2]int{-1, 0},
		Want: map[string][][2]int{
			"dda":       {{0, 0}, {-1, 0}},
			"bresenham": {{0, 0}, {-1, 0}},
		},
	},
	{
		Name: "knight",
		From: [2]int{0, 0},
		To:   [2]int{1, 2},
		Want: map[string][][2]int{
			"dda":       {{0, 0}, {1, 1}, {1, 2}},
			"bresenham": {{0, 0}, {0, 1}, {1, 2}},
		},
	},
}
