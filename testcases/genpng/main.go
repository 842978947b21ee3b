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

// Command genpng writes a PNG preview for every test case and algorithm,
// and a text file with the step table and the explanation of every step.
package main

import (
	"fmt"
	"image/png"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"seehuhn.de/go/gridline"
	"seehuhn.de/go/gridline/testcases"
)

const outDir = "testdata/preview"

func main() {
	if err := os.MkdirAll(outDir, 0755); err != nil {
		panic(err)
	}

	canvas := gridline.NewCanvas()
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			from := gridline.Point{X: tc.From[0], Y: tc.From[1]}
			to := gridline.Point{X: tc.To[0], Y: tc.To[1]}
			for _, alg := range []gridline.Algorithm{gridline.DDA, gridline.Bresenham} {
				name := category + "_" + tc.Name + "_" + alg.String()
				tr := gridline.Rasterize(alg, from, to)
				if err := writePNG(canvas, tr, filepath.Join(outDir, name+".png")); err != nil {
					panic(fmt.Errorf("%s: %w", name, err))
				}
				if err := writeSteps(tr, filepath.Join(outDir, name+".txt")); err != nil {
					panic(fmt.Errorf("%s: %w", name, err))
				}
			}
		}
	}
}

func writePNG(canvas *gridline.Canvas, tr *gridline.Trace, fname string) error {
	f, err := os.Create(fname)
	if err != nil {
		return err
	}
	img := canvas.Draw(tr, tr.Len())
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// writeSteps plays back the whole trace, writing the description of each
// step followed by the step table.
func writeSteps(tr *gridline.Trace, fname string) error {
	b := &strings.Builder{}
	p := gridline.NewPlayer(tr)
	for p.Next() {
		b.WriteString(p.Describe())
		b.WriteString("\n\n")
	}
	if err := gridline.WriteTable(b, tr); err != nil {
		return err
	}
	return os.WriteFile(fname, []byte(b.String()), 0644)
}
