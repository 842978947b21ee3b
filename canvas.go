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
	"image"
	"image/color"

	"golang.org/x/image/draw"
	"golang.org/x/image/vector"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// Canvas renders traces as images of a cell grid.
//
// Grid coordinates have the y-axis pointing up.  Cell (x, y) occupies the
// unit square with lower left corner (x, y); the ideal line joins the
// centres of the first and last cell.
type Canvas struct {
	// CellSize is the side length of a grid cell in pixels.  Must be positive.
	CellSize int

	// Margin is the number of cells shown around the end points.
	// The window always includes the origin with the same margin.
	Margin int

	// LineWidth is the width of the ideal line in pixels.
	LineWidth float64

	// ShowLine controls whether the ideal line is drawn over the cells.
	ShowLine bool

	Background    color.Color
	GridColor     color.Color // only drawn if CellSize >= minGridCellSize
	CellColor     color.Color
	EndpointColor color.Color
	LineColor     color.Color
}

// NewCanvas returns a Canvas with default settings.
func NewCanvas() *Canvas {
	return &Canvas{
		CellSize:  defaultCellSize,
		Margin:    defaultMargin,
		LineWidth: 1.5,
		ShowLine:  true,

		Background:    color.White,
		GridColor:     color.RGBA{R: 0xdd, G: 0xdd, B: 0xdd, A: 0xff},
		CellColor:     color.RGBA{R: 0x33, G: 0x66, B: 0xcc, A: 0xff},
		EndpointColor: color.RGBA{R: 0xcc, G: 0x22, B: 0x22, A: 0xff},
		LineColor:     color.RGBA{R: 0x00, G: 0x00, B: 0x00, A: 0xa0},
	}
}

// Bounds returns the part of the grid shown for tr, in grid coordinates.
// All corners have integer coordinates.
func (c *Canvas) Bounds(tr *Trace) rect.Rect {
	m := c.Margin
	return rect.Rect{
		LLx: float64(min(tr.From.X-m, tr.To.X-m, -m)),
		LLy: float64(min(tr.From.Y-m, tr.To.Y-m, -m)),
		URx: float64(max(tr.From.X+m, tr.To.X+m, m) + 1),
		URy: float64(max(tr.From.Y+m, tr.To.Y+m, m) + 1),
	}
}

// Draw renders the grid for tr, with the first revealed cells filled in.
// Values of revealed outside the range 0, ..., tr.Len() are clamped.
func (c *Canvas) Draw(tr *Trace, revealed int) *image.RGBA {
	revealed = max(0, min(revealed, tr.Len()))

	bbox := c.Bounds(tr)
	llx, ury := int(bbox.LLx), int(bbox.URy)
	w := int(bbox.URx) - llx
	h := ury - int(bbox.LLy)

	// one pixel per cell, scaled up below
	cells := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(cells, cells.Bounds(), image.NewUniform(c.Background), image.Point{}, draw.Src)
	toPixel := func(x, y int) (int, int) {
		return x - llx, ury - 1 - y
	}
	for _, cell := range tr.Cells[:revealed] {
		px, py := toPixel(cell.X, cell.Y)
		cells.Set(px, py, c.CellColor)
	}
	for _, p := range []Point{tr.From, tr.To} {
		px, py := toPixel(p.X, p.Y)
		cells.Set(px, py, c.EndpointColor)
	}

	cs := c.CellSize
	img := image.NewRGBA(image.Rect(0, 0, w*cs, h*cs))
	draw.NearestNeighbor.Scale(img, img.Bounds(), cells, cells.Bounds(), draw.Src, nil)

	if cs >= minGridCellSize {
		for i := 0; i <= w; i++ {
			x := min(i*cs, w*cs-1)
			for y := range h * cs {
				img.Set(x, y, c.GridColor)
			}
		}
		for j := 0; j <= h; j++ {
			y := min(j*cs, h*cs-1)
			for x := range w * cs {
				img.Set(x, y, c.GridColor)
			}
		}
	}

	if c.ShowLine && tr.From != tr.To {
		centre := func(p Point) vec.Vec2 {
			px, py := toPixel(p.X, p.Y)
			return vec.Vec2{X: (float64(px) + 0.5) * float64(cs), Y: (float64(py) + 0.5) * float64(cs)}
		}
		c.drawLine(img, centre(tr.From), centre(tr.To))
	}

	return img
}

// drawLine draws the segment from a to b, in pixel coordinates, as a thin
// filled quadrilateral.
func (c *Canvas) drawLine(img *image.RGBA, a, b vec.Vec2) {
	d := b.Sub(a)
	n := vec.Vec2{X: -d.Y, Y: d.X}.Mul(c.LineWidth / (2 * d.Length()))

	size := img.Bounds().Size()
	r := vector.NewRasterizer(size.X, size.Y)
	moveTo := func(p vec.Vec2) { r.MoveTo(float32(p.X), float32(p.Y)) }
	lineTo := func(p vec.Vec2) { r.LineTo(float32(p.X), float32(p.Y)) }
	moveTo(a.Add(n))
	lineTo(b.Add(n))
	lineTo(b.Sub(n))
	lineTo(a.Sub(n))
	r.ClosePath()
	r.Draw(img, img.Bounds(), image.NewUniform(c.LineColor), image.Point{})
}

const (
	defaultCellSize = 20
	defaultMargin   = 5

	// minGridCellSize is the smallest cell size for which grid lines are drawn.
	minGridCellSize = 4
)
