// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package edatab writes comparison tables in the formats edastat
// supports: CSV, XLSX, JSON, HTML, plain text, and PNG charts.
//
// Every writer lists the groups of a table in order, each under its
// report's title, with the table's columns in order. Cells a row lacks
// are blank, except in JSON, where they are "N/A".
package edatab

import (
	"encoding/csv"
	"io"

	"github.com/edastat/edastat/edastat"
)

// Options control the presentation of styled formats.
type Options struct {
	// ColorDelta colors increases green and decreases red in delta
	// columns, and makes unchanged deltas bold.
	ColorDelta bool
}

// WriteCSV writes t to w in CSV form. Each group is introduced by a row
// holding only its title.
func WriteCSV(w io.Writer, t *edastat.Table) error {
	o := csv.NewWriter(w)
	row := make([]string, len(t.Columns))
	reset := func() {
		for i := range row {
			row[i] = ""
		}
	}

	o.Write(t.Columns)
	for _, g := range t.Groups {
		reset()
		if len(row) > 0 {
			row[0] = g.Title()
		}
		o.Write(row)
		for _, r := range g.Rows {
			for i, col := range t.Columns {
				row[i] = cellText(r, col)
			}
			o.Write(row)
		}
	}
	o.Flush()
	return o.Error()
}

// cellText returns the display text of r's cell in col, or "" if r
// lacks it.
func cellText(r *edastat.Row, col string) string {
	c, ok := r.Cell(col)
	if !ok {
		return ""
	}
	return c.String()
}
