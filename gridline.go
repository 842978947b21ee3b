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

// Package gridline computes which grid cells a line between two integer grid
// points occupies, using either a digital differential analyser (DDA) or
// Bresenham's algorithm.  Each rasteriser returns a [Trace] which, in
// addition to the plotted cells, records the intermediate values of the
// algorithm for every step, so that the line can be revealed one cell at a
// time together with an explanation of the arithmetic involved.
package gridline

//go:generate go run ./testcases/export

import (
	"errors"
	"fmt"
	"strings"

	"seehuhn.de/go/geom/vec"
)

// Point is a location in grid-cell coordinates.
type Point struct {
	X, Y int
}

func (p Point) String() string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}

// Cell identifies one grid cell plotted by a rasteriser.
type Cell struct {
	X, Y int
}

func (c Cell) String() string {
	return fmt.Sprintf("(%d, %d)", c.X, c.Y)
}

// Point returns the grid point at the location of the cell.
func (c Cell) Point() Point {
	return Point(c)
}

// Algorithm selects a line rasterisation method.
type Algorithm int

const (
	DDA Algorithm = iota
	Bresenham
)

// ErrUnknownAlgorithm is returned by [ParseAlgorithm] for unrecognised names.
var ErrUnknownAlgorithm = errors.New("unknown algorithm")

func (a Algorithm) String() string {
	switch a {
	case DDA:
		return "dda"
	case Bresenham:
		return "bresenham"
	default:
		return fmt.Sprintf("Algorithm(%d)", int(a))
	}
}

// ParseAlgorithm converts the name of an algorithm ("dda" or "bresenham")
// into an Algorithm value.  Case is ignored.
func ParseAlgorithm(s string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "dda":
		return DDA, nil
	case "bresenham":
		return Bresenham, nil
	}
	return 0, fmt.Errorf("%q: %w", s, ErrUnknownAlgorithm)
}

// Step records the state of a rasteriser at the time one cell was plotted.
type Step struct {
	// Index is the 1-based position of the step within the trace.
	Index int

	// Cell is the grid cell plotted in this step.
	Cell Cell

	// Raw is the value of the DDA accumulator before rounding.
	// Unused for Bresenham traces.
	Raw vec.Vec2

	// Inc is the per-axis DDA increment.  It is zero if the trace
	// consists of a single cell, and unused for Bresenham traces.
	Inc vec.Vec2

	// Err is the Bresenham error term at the time the cell was plotted.
	// Unused for DDA traces.
	Err int

	// Explanation describes the arithmetic which led from the previous
	// cell to this one.  It is empty for the first step.
	Explanation string
}

// Trace is the result of rasterising a line.
// Cells and Steps have the same length, and Steps[i].Cell == Cells[i].
type Trace struct {
	Algorithm Algorithm
	From, To  Point

	Cells []Cell
	Steps []Step
}

// Len returns the number of plotted cells.
func (t *Trace) Len() int {
	return len(t.Cells)
}

// Delta returns the signed distance between the end points.
func (t *Trace) Delta() (dx, dy int) {
	return t.To.X - t.From.X, t.To.Y - t.From.Y
}

// Rasterize computes the cells covered by the line from p1 to p2,
// using the given algorithm.
func Rasterize(alg Algorithm, p1, p2 Point) *Trace {
	switch alg {
	case DDA:
		return RasterizeDDA(p1, p2)
	case Bresenham:
		return RasterizeBresenham(p1, p2)
	default:
		panic("gridline: invalid " + alg.String())
	}
}

func (t *Trace) add(s Step) {
	s.Index = len(t.Steps) + 1
	t.Cells = append(t.Cells, s.Cell)
	t.Steps = append(t.Steps, s)
}
