// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package edastat

import (
	"github.com/edastat/edastat/edafmt"
	"github.com/edastat/edastat/edaproc"
)

// A Table is the assembled comparison: one Group of rows per report.
type Table struct {
	// Columns lists the column names in display order: the
	// extractor's metric labels, then the delta labels.
	Columns []string

	// Deltas is the set of columns holding deltas.
	Deltas map[string]bool

	// DesignColumn is the column holding the design name, or "" if
	// the extractor does not display it.
	DesignColumn string

	Groups []*Group
}

// A Group holds the rows of one report, one per design.
type Group struct {
	Report *edaproc.Report
	Rows   []*Row
}

// Title returns the display title of g's report.
func (g *Group) Title() string {
	return g.Report.Title
}

// A Row holds one design's cells, by column name.
type Row struct {
	Design string

	// Summary is set for rows that summarize the other rows of a
	// group rather than belonging to a design.
	Summary bool

	Cells map[string]Cell
}

// Cell returns the cell in column col and whether it is present.
func (r *Row) Cell(col string) (Cell, bool) {
	c, ok := r.Cells[col]
	return c, ok
}

// A Cell is a single table entry: either a metric value or a delta.
type Cell struct {
	Value edafmt.Value
	Delta *Delta // nil for metric cells
}

// String formats c for display.
func (c Cell) String() string {
	if c.Delta != nil {
		return c.Delta.String()
	}
	return c.Value.String()
}

// Change returns the direction of a delta cell and 0 for metric cells.
func (c Cell) Change() int {
	if c.Delta == nil {
		return 0
	}
	return c.Delta.Change()
}
