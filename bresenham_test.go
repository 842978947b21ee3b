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
	"slices"
	"testing"
)

func TestBresenhamShallow(t *testing.T) {
	tr := RasterizeBresenham(Point{0, 0}, Point{5, 2})

	want := []Cell{{0, 0}, {1, 0}, {2, 1}, {3, 1}, {4, 2}, {5, 2}}
	if !slices.Equal(tr.Cells, want) {
		t.Fatalf("got %v, want %v", tr.Cells, want)
	}
	wantErr := []int{3, 1, 4, 2, 5, 3}
	for i, s := range tr.Steps {
		if s.Err != wantErr[i] {
			t.Errorf("step %d: error term %d, want %d", i+1, s.Err, wantErr[i])
		}
	}
	for i := 1; i < tr.Len(); i++ {
		if tr.Cells[i].X < tr.Cells[i-1].X {
			t.Errorf("x decreases at step %d", i+1)
		}
	}
}

func TestBresenhamCoincident(t *testing.T) {
	tr := RasterizeBresenham(Point{3, 3}, Point{3, 3})
	if tr.Len() != 1 || len(tr.Steps) != 1 {
		t.Fatalf("got %d cells, %d steps", tr.Len(), len(tr.Steps))
	}
	if tr.Cells[0] != (Cell{3, 3}) {
		t.Errorf("got %s", tr.Cells[0])
	}
	if tr.Steps[0].Err != 0 {
		t.Errorf("error term %d", tr.Steps[0].Err)
	}
}

func TestBresenhamExplanation(t *testing.T) {
	tr := RasterizeBresenham(Point{0, 0}, Point{5, 2})

	cases := []struct {
		step int
		want string
	}{
		{1, ""},
		{2, "e = 3, 2e = 6\n" +
			"→ 2e > -dy (6 > -2) → x += 1, e -= 2 → e = 1"},
		{3, "e = 1, 2e = 2\n" +
			"→ 2e > -dy (2 > -2) → x += 1, e -= 2 → e = -1\n" +
			"→ 2e < dx (2 < 5) → y += 1, e += 5 → e = 4"},
	}
	for _, c := range cases {
		if got := tr.Steps[c.step-1].Explanation; got != c.want {
			t.Errorf("step %d: got %q, want %q", c.step, got, c.want)
		}
	}
}

func TestBresenhamSteep(t *testing.T) {
	tr := RasterizeBresenham(Point{0, 0}, Point{-3, -7})
	want := []Cell{{0, 0}, {0, -1}, {-1, -2}, {-1, -3}, {-2, -4}, {-2, -5}, {-3, -6}, {-3, -7}}
	if !slices.Equal(tr.Cells, want) {
		t.Fatalf("got %v, want %v", tr.Cells, want)
	}
	wantErr := []int{-4, -1, -5, -2, -6, -3, -7, -4}
	for i, s := range tr.Steps {
		if s.Err != wantErr[i] {
			t.Errorf("step %d: error term %d, want %d", i+1, s.Err, wantErr[i])
		}
	}
}

// TestBresenhamTie checks that a line through the midpoint between two
// cells gives the same cells in both directions.
func TestBresenhamTie(t *testing.T) {
	fwd := RasterizeBresenham(Point{0, 0}, Point{2, 1})
	rev := RasterizeBresenham(Point{2, 1}, Point{0, 0})

	want := []Cell{{0, 0}, {1, 0}, {2, 1}}
	if !slices.Equal(fwd.Cells, want) {
		t.Errorf("forward: got %v, want %v", fwd.Cells, want)
	}
	slices.Reverse(want)
	if !slices.Equal(rev.Cells, want) {
		t.Errorf("reverse: got %v, want %v", rev.Cells, want)
	}

	wantExpl := "e = 1, 2e = 2\n" +
		"→ 2e > -dy (2 > -1) → x += -1, e -= 1 → e = 0\n" +
		"→ 2e = dx (2 = 2), tie towards smaller y → y += -1, e += 2 → e = 2"
	if got := rev.Steps[1].Explanation; got != wantExpl {
		t.Errorf("got %q, want %q", got, wantExpl)
	}
}

func TestBresenhamAxes(t *testing.T) {
	cases := []struct {
		from, to Point
	}{
		{Point{-3, 1}, Point{4, 1}},
		{Point{4, 1}, Point{-3, 1}},
		{Point{2, 4}, Point{2, -3}},
		{Point{2, -3}, Point{2, 4}},
	}
	for _, c := range cases {
		tr := RasterizeBresenham(c.from, c.to)
		if tr.Len() != 8 {
			t.Errorf("%s-%s: got %d cells", c.from, c.to, tr.Len())
		}
		for _, cell := range tr.Cells {
			if c.from.X == c.to.X && cell.X != c.from.X ||
				c.from.Y == c.to.Y && cell.Y != c.from.Y {
				t.Errorf("%s-%s: cell %s off the axis", c.from, c.to, cell)
			}
		}
	}
}
