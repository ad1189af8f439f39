// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package edatab

import (
	"encoding/json"
	"io"

	"github.com/edastat/edastat/edafmt"
	"github.com/edastat/edastat/edastat"
)

// WriteJSON writes t to w as a JSON object mapping each report title to
// an object mapping each design to its row. Numeric metrics are JSON
// numbers; deltas and other metrics are strings; missing cells are
// "N/A". Keys are sorted.
//
// Groups with the same title, and rows with the same design, collapse to
// the last one.
func WriteJSON(w io.Writer, t *edastat.Table) error {
	out := make(map[string]map[string]map[string]interface{})
	for _, g := range t.Groups {
		designs := make(map[string]map[string]interface{})
		for _, r := range g.Rows {
			row := make(map[string]interface{}, len(t.Columns))
			for _, col := range t.Columns {
				row[col] = jsonValue(r, col)
			}
			designs[r.Design] = row
		}
		out[g.Title()] = designs
	}

	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	return enc.Encode(out)
}

func jsonValue(r *edastat.Row, col string) interface{} {
	c, ok := r.Cell(col)
	if !ok {
		return edafmt.NA
	}
	if c.Delta != nil {
		return c.Delta.String()
	}
	switch c.Value.Kind {
	case edafmt.Float, edafmt.Int:
		return json.Number(c.Value.String())
	}
	return c.Value.String()
}
