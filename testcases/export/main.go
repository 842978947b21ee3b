// Command export writes the traces of all test cases to JSON, for use by
// external viewers.  Run from the go-gridline module root directory.
package main

import (
	"encoding/json"
	"fmt"
	"maps"
	"os"
	"slices"

	"seehuhn.de/go/gridline"
	"seehuhn.de/go/gridline/testcases"
)

func main() {
	var out struct {
		Traces []jsonTrace `json:"traces"`
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			for _, alg := range []gridline.Algorithm{gridline.DDA, gridline.Bresenham} {
				out.Traces = append(out.Traces, toJSON(category, tc, alg))
			}
		}
	}

	if err := os.MkdirAll("testdata", 0755); err != nil {
		panic(err)
	}
	f, err := os.Create("testdata/traces.json")
	if err != nil {
		panic(err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		panic(fmt.Errorf("testdata/traces.json: %w", err))
	}
}

type jsonTrace struct {
	Name      string     `json:"name"`
	Algorithm string     `json:"algorithm"`
	From      [2]int     `json:"from"`
	To        [2]int     `json:"to"`
	Steps     []jsonStep `json:"steps"`
}

type jsonStep struct {
	Step        int     `json:"step"`
	X           int     `json:"x"`
	Y           int     `json:"y"`
	RawX        float64 `json:"raw_x,omitempty"`
	RawY        float64 `json:"raw_y,omitempty"`
	XInc        float64 `json:"x_inc,omitempty"`
	YInc        float64 `json:"y_inc,omitempty"`
	Err         *int    `json:"err,omitempty"`
	Explanation string  `json:"explanation,omitempty"`
}

func toJSON(category string, tc testcases.TestCase, alg gridline.Algorithm) jsonTrace {
	from := gridline.Point{X: tc.From[0], Y: tc.From[1]}
	to := gridline.Point{X: tc.To[0], Y: tc.To[1]}
	tr := gridline.Rasterize(alg, from, to)

	jt := jsonTrace{
		Name:      category + "_" + tc.Name,
		Algorithm: alg.String(),
		From:      tc.From,
		To:        tc.To,
		Steps:     make([]jsonStep, len(tr.Steps)),
	}
	for i, s := range tr.Steps {
		js := jsonStep{
			Step:        s.Index,
			X:           s.Cell.X,
			Y:           s.Cell.Y,
			Explanation: s.Explanation,
		}
		switch alg {
		case gridline.DDA:
			js.RawX, js.RawY = s.Raw.X, s.Raw.Y
			js.XInc, js.YInc = s.Inc.X, s.Inc.Y
		case gridline.Bresenham:
			e := s.Err
			js.Err = &e
		}
		jt.Steps[i] = js
	}
	return jt
}
