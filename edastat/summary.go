// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package edastat

import (
	"github.com/aclements/go-moremath/stats"

	"github.com/edastat/edastat/edafmt"
)

// SummaryDesign is the design name of summary rows.
const SummaryDesign = "mean"

// summarize returns a row holding, for each metric column of t, the mean
// of the numeric values in rows. Delta columns and columns with no
// numeric value are left out.
func summarize(t *Table, rows []*Row) *Row {
	sum := &Row{Design: SummaryDesign, Summary: true, Cells: make(map[string]Cell)}
	if t.DesignColumn != "" {
		sum.Cells[t.DesignColumn] = Cell{Value: edafmt.StringValue(SummaryDesign)}
	}
	for _, col := range t.Columns {
		if t.Deltas[col] || col == t.DesignColumn {
			continue
		}
		var xs []float64
		for _, row := range rows {
			if x, ok := row.Cells[col].Value.Float(); ok {
				xs = append(xs, x)
			}
		}
		if len(xs) == 0 {
			continue
		}
		sum.Cells[col] = Cell{Value: edafmt.FloatValue(edafmt.Round(stats.Mean(xs)))}
	}
	return sum
}
