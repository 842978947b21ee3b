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

// Command genpdf writes a PDF worksheet for every test case and algorithm.
// Each worksheet shows the cell grid, the plotted cells, the end points
// and the ideal line.
package main

import (
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/gridline"
	"seehuhn.de/go/gridline/testcases"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics/color"
)

const outDir = "testdata/worksheets"

// cellSize is the side length of a grid cell in PDF points.
const cellSize = 12

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
				pdfPath := filepath.Join(outDir, name+".pdf")
				if err := generatePDF(canvas, tr, pdfPath); err != nil {
					panic(fmt.Errorf("%s: %w", name, err))
				}
			}
		}
	}
}

func generatePDF(canvas *gridline.Canvas, tr *gridline.Trace, pdfPath string) error {
	bbox := canvas.Bounds(tr)
	w := bbox.URx - bbox.LLx
	h := bbox.URy - bbox.LLy

	paper := &pdf.Rectangle{
		URx: w * cellSize,
		URy: h * cellSize,
	}
	page, err := document.CreateSinglePage(pdfPath, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	// Grid coordinates have the y-axis pointing up, like PDF user space,
	// so no flip is needed.  After this, one unit is one grid cell.
	page.Transform(matrix.Scale(cellSize, cellSize).Translate(-bbox.LLx*cellSize, -bbox.LLy*cellSize))

	page.SetFillColor(color.DeviceGray(0.6))
	for _, c := range tr.Cells {
		page.Rectangle(float64(c.X), float64(c.Y), 1, 1)
	}
	page.Fill()

	page.SetFillColor(color.DeviceGray(0.2))
	for _, p := range []gridline.Point{tr.From, tr.To} {
		page.Rectangle(float64(p.X), float64(p.Y), 1, 1)
	}
	page.Fill()

	page.SetStrokeColor(color.DeviceGray(0.8))
	page.SetLineWidth(0.02)
	for x := bbox.LLx; x <= bbox.URx; x++ {
		page.MoveTo(x, bbox.LLy)
		page.LineTo(x, bbox.URy)
	}
	for y := bbox.LLy; y <= bbox.URy; y++ {
		page.MoveTo(bbox.LLx, y)
		page.LineTo(bbox.URx, y)
	}
	page.Stroke()

	// axes through the origin cell
	page.SetStrokeColor(color.DeviceGray(0.4))
	page.SetLineWidth(0.06)
	page.MoveTo(bbox.LLx, 0)
	page.LineTo(bbox.URx, 0)
	page.MoveTo(0, bbox.LLy)
	page.LineTo(0, bbox.URy)
	page.Stroke()

	if tr.From != tr.To {
		page.SetStrokeColor(color.DeviceGray(0))
		page.SetLineWidth(0.08)
		page.MoveTo(float64(tr.From.X)+0.5, float64(tr.From.Y)+0.5)
		page.LineTo(float64(tr.To.X)+0.5, float64(tr.To.Y)+0.5)
		page.Stroke()
	}

	return page.Close()
}
