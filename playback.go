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
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
)

// Player reveals the cells of a trace one at a time.
//
// A Player is not safe for concurrent use.  Any number of players
// may share the same trace.
type Player struct {
	tr       *Trace
	revealed int
}

// NewPlayer returns a Player for tr with no cells revealed.
func NewPlayer(tr *Trace) *Player {
	return &Player{tr: tr}
}

// Trace returns the trace being played back.
func (p *Player) Trace() *Trace {
	return p.tr
}

// Next reveals one more cell.  It returns false, without changing
// the state, if all cells were already revealed.
func (p *Player) Next() bool {
	if p.revealed >= p.tr.Len() {
		return false
	}
	p.revealed++
	return true
}

// Reset hides all cells.
func (p *Player) Reset() {
	p.revealed = 0
}

// RevealAll reveals all remaining cells.
func (p *Player) RevealAll() {
	p.revealed = p.tr.Len()
}

// Revealed returns the number of cells revealed so far.
func (p *Player) Revealed() int {
	return p.revealed
}

// Done reports whether all cells have been revealed.
func (p *Player) Done() bool {
	return p.revealed >= p.tr.Len()
}

// Visible returns the cells revealed so far.
// The returned slice must not be modified.
func (p *Player) Visible() []Cell {
	return p.tr.Cells[:p.revealed]
}

// Current returns the most recently revealed step.
// The second return value is false if no cells have been revealed.
func (p *Player) Current() (Step, bool) {
	if p.revealed == 0 {
		return Step{}, false
	}
	return p.tr.Steps[p.revealed-1], true
}

// Describe returns a human-readable account of the most recently revealed
// step.  For the first step of a DDA trace this includes the computation
// of the increments.
func (p *Player) Describe() string {
	step, ok := p.Current()
	if !ok {
		return "No steps revealed yet."
	}

	b := &strings.Builder{}
	if p.tr.Algorithm == DDA && step.Index == 1 && p.tr.Len() > 1 {
		dx, dy := p.tr.Delta()
		n := p.tr.Len() - 1
		fmt.Fprintln(b, "Increment Calculation:")
		fmt.Fprintf(b, "dx = x2 - x1 = %d\n", dx)
		fmt.Fprintf(b, "dy = y2 - y1 = %d\n", dy)
		fmt.Fprintf(b, "steps = max(|dx|, |dy|) = %d\n", n)
		fmt.Fprintf(b, "xInc = dx / steps = %d / %d = %s\n", dx, n, FormatNumber(step.Inc.X))
		fmt.Fprintf(b, "yInc = dy / steps = %d / %d = %s\n\n", dy, n, FormatNumber(step.Inc.Y))
	}

	fmt.Fprintf(b, "Step %d of %d\n", step.Index, p.tr.Len())
	fmt.Fprintf(b, "Plotted: %s\n", step.Cell)
	if p.tr.Algorithm == Bresenham {
		fmt.Fprintf(b, "Error term: %d\n", step.Err)
	}
	if step.Explanation != "" {
		fmt.Fprintf(b, "\nExplanation:\n%s\n", step.Explanation)
	}
	return strings.TrimSuffix(b.String(), "\n")
}

// WriteTable writes a table listing all steps of tr to w.
// DDA traces show the accumulator before rounding, Bresenham traces
// show the error term.
func WriteTable(w io.Writer, tr *Trace) error {
	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)
	switch tr.Algorithm {
	case DDA:
		fmt.Fprintln(tw, "Step\tRaw X\tRaw Y\tPlotted")
		for _, s := range tr.Steps {
			fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n",
				s.Index, FormatNumber(s.Raw.X), FormatNumber(s.Raw.Y), s.Cell)
		}
	default:
		fmt.Fprintln(tw, "Step\tError\tPlotted")
		for _, s := range tr.Steps {
			fmt.Fprintf(tw, "%d\t%d\t%s\n", s.Index, s.Err, s.Cell)
		}
	}
	return tw.Flush()
}
