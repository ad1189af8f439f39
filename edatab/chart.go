// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package edatab

import (
	"fmt"
	"image/color"
	"io"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/edastat/edastat/edastat"
)

// WriteChart writes a PNG bar chart of column col of t to w. Designs
// are along the X axis, with one bar per report for each design.
// Summary rows are left out.
//
// Every design must have a numeric value in col in every report.
func WriteChart(w io.Writer, t *edastat.Table, col string) error {
	if !hasColumn(t, col) {
		return fmt.Errorf("chart: unknown column %q", col)
	}
	if len(t.Groups) == 0 {
		return fmt.Errorf("chart: no reports")
	}

	var designs []string
	for _, r := range t.Groups[0].Rows {
		if !r.Summary {
			designs = append(designs, r.Design)
		}
	}

	pl := plot.New()
	pl.Title.Text = col
	pl.Y.Label.Text = col
	pl.Legend.Top = true

	grid := plotter.NewGrid()
	grid.Vertical.Color = nil
	pl.Add(grid)

	// Delta columns only exist in the reports that were compared.
	var groups []*edastat.Group
	for _, g := range t.Groups {
		if !t.Deltas[col] || groupHas(g, col) {
			groups = append(groups, g)
		}
	}

	barWidth := vg.Points(12)
	n := len(groups)
	for i, g := range groups {
		vals, err := chartValues(g, designs, col)
		if err != nil {
			return err
		}
		bars, err := plotter.NewBarChart(vals, barWidth)
		if err != nil {
			return fmt.Errorf("chart: %w", err)
		}
		bars.LineStyle.Width = vg.Length(0)
		bars.Color = plotutil.Color(i)
		bars.Offset = barWidth * vg.Length(2*i-n+1) / 2
		pl.Add(bars)
		pl.Legend.Add(g.Title(), bars)
	}
	pl.NominalX(designs...)
	pl.X.Tick.Label.Rotation = -math.Pi / 8
	pl.X.Tick.Label.YAlign = draw.YTop
	pl.X.Tick.Label.XAlign = draw.XLeft

	width := vg.Length(4+len(designs)*n) * vg.Centimeter
	if width < 12*vg.Centimeter {
		width = 12 * vg.Centimeter
	}
	c := vgimg.PngCanvas{Canvas: vgimg.NewWith(vgimg.UseWH(width, 10*vg.Centimeter),
		vgimg.UseDPI(150), vgimg.UseBackgroundColor(color.White))}
	pl.Draw(draw.New(c))
	_, err := c.WriteTo(w)
	return err
}

func hasColumn(t *edastat.Table, col string) bool {
	for _, c := range t.Columns {
		if c == col {
			return true
		}
	}
	return false
}

func groupHas(g *edastat.Group, col string) bool {
	for _, r := range g.Rows {
		if _, ok := r.Cell(col); ok {
			return true
		}
	}
	return false
}

// chartValues returns the values of col in g for each design, in order.
func chartValues(g *edastat.Group, designs []string, col string) (plotter.Values, error) {
	rows := make(map[string]*edastat.Row)
	for _, r := range g.Rows {
		if !r.Summary {
			rows[r.Design] = r
		}
	}
	vals := make(plotter.Values, len(designs))
	for i, d := range designs {
		r, ok := rows[d]
		if !ok {
			return nil, fmt.Errorf("chart: report %s has no design %s", g.Title(), d)
		}
		c, ok := r.Cell(col)
		if !ok {
			return nil, fmt.Errorf("chart: report %s design %s has no %s", g.Title(), d, col)
		}
		x, ok := c.Value.Float()
		if c.Delta != nil {
			x, ok = c.Delta.Diff, true
		}
		if !ok {
			return nil, fmt.Errorf("chart: report %s design %s: %s value %s is not a number", g.Title(), d, col, c)
		}
		vals[i] = x
	}
	return vals, nil
}
