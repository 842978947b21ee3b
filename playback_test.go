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
	"strings"
	"testing"
)

func TestPlayer(t *testing.T) {
	tr := RasterizeBresenham(Point{0, 0}, Point{5, 2})
	p := NewPlayer(tr)

	if p.Revealed() != 0 || p.Done() || len(p.Visible()) != 0 {
		t.Fatal("new player has cells revealed")
	}
	if _, ok := p.Current(); ok {
		t.Error("Current returned a step before any cell was revealed")
	}

	for i := 1; i <= tr.Len(); i++ {
		if !p.Next() {
			t.Fatalf("Next failed at step %d", i)
		}
		if p.Revealed() != i {
			t.Errorf("revealed %d, want %d", p.Revealed(), i)
		}
		s, ok := p.Current()
		if !ok || s.Index != i {
			t.Errorf("current step %d, want %d", s.Index, i)
		}
		if !slices.Equal(p.Visible(), tr.Cells[:i]) {
			t.Errorf("visible cells %v", p.Visible())
		}
	}
	if !p.Done() {
		t.Error("player not done after revealing all cells")
	}
	if p.Next() {
		t.Error("Next succeeded after all cells were revealed")
	}
	if p.Revealed() != tr.Len() {
		t.Errorf("revealed %d, want %d", p.Revealed(), tr.Len())
	}

	p.Reset()
	if p.Revealed() != 0 || p.Done() {
		t.Error("Reset did not hide the cells")
	}
	p.RevealAll()
	if !p.Done() {
		t.Error("RevealAll did not reveal all cells")
	}
}

func TestPlayerSingleCell(t *testing.T) {
	p := NewPlayer(RasterizeDDA(Point{1, 1}, Point{1, 1}))
	if !p.Next() || p.Next() {
		t.Fatal("expected exactly one step")
	}
	want := "Step 1 of 1\nPlotted: (1, 1)"
	if got := p.Describe(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestDescribeDDA(t *testing.T) {
	p := NewPlayer(RasterizeDDA(Point{0, 0}, Point{4, 4}))
	if got := p.Describe(); got != "No steps revealed yet." {
		t.Errorf("got %q", got)
	}

	p.Next()
	want := "Increment Calculation:\n" +
		"dx = x2 - x1 = 4\n" +
		"dy = y2 - y1 = 4\n" +
		"steps = max(|dx|, |dy|) = 4\n" +
		"xInc = dx / steps = 4 / 4 = 1\n" +
		"yInc = dy / steps = 4 / 4 = 1\n" +
		"\n" +
		"Step 1 of 5\n" +
		"Plotted: (0, 0)"
	if got := p.Describe(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}

	p.Next()
	want = "Step 2 of 5\n" +
		"Plotted: (1, 1)\n" +
		"\n" +
		"Explanation:\n" +
		"x += 1 → x = 1\n" +
		"y += 1 → y = 1\n" +
		"→ round(1, 1)\n" +
		"→ (1, 1)"
	if got := p.Describe(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestDescribeBresenham(t *testing.T) {
	p := NewPlayer(RasterizeBresenham(Point{0, 0}, Point{5, 2}))
	p.Next()
	p.Next()
	want := "Step 2 of 6\n" +
		"Plotted: (1, 0)\n" +
		"Error term: 1\n" +
		"\n" +
		"Explanation:\n" +
		"e = 3, 2e = 6\n" +
		"→ 2e > -dy (6 > -2) → x += 1, e -= 2 → e = 1"
	if got := p.Describe(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestWriteTable(t *testing.T) {
	cases := []struct {
		tr   *Trace
		want [][]string
	}{
		{
			tr: RasterizeDDA(Point{0, 0}, Point{4, 1}),
			want: [][]string{
				{"Step", "Raw", "X", "Raw", "Y", "Plotted"},
				{"1", "0", "0", "(0,", "0)"},
				{"2", "1", "0.25", "(1,", "0)"},
				{"3", "2", "0.5", "(2,", "1)"},
				{"4", "3", "0.75", "(3,", "1)"},
				{"5", "4", "1", "(4,", "1)"},
			},
		},
		{
			tr: RasterizeBresenham(Point{0, 0}, Point{2, 1}),
			want: [][]string{
				{"Step", "Error", "Plotted"},
				{"1", "1", "(0,", "0)"},
				{"2", "0", "(1,", "0)"},
				{"3", "1", "(2,", "1)"},
			},
		},
	}
	for _, c := range cases {
		b := &strings.Builder{}
		if err := WriteTable(b, c.tr); err != nil {
			t.Fatal(err)
		}
		lines := strings.Split(strings.TrimSuffix(b.String(), "\n"), "\n")
		if len(lines) != len(c.want) {
			t.Fatalf("%s: got %d lines, want %d:\n%s", c.tr.Algorithm, len(lines), len(c.want), b)
		}
		for i, line := range lines {
			if got := strings.Fields(line); !slices.Equal(got, c.want[i]) {
				t.Errorf("%s line %d: got %q, want %q", c.tr.Algorithm, i, got, c.want[i])
			}
		}
	}
}
