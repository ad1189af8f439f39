// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package texttab lays out fixed-width text tables.
package texttab

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"unicode/utf8"
)

// Table does layout of text-based tables.
//
// Its methods return the Table so callers can chain them to build up a
// row at once.
type Table struct {
	// Margin separates each column from the one before it. If empty,
	// columns are separated by a single space.
	Margin string

	cells []cell
	cols  int

	curRow, curCol int
}

type cell struct {
	row, col, span int
	value          string
	leftMargin     string
	alignment      align

	// title cells span every column and never widen them.
	title bool
}

// A CellOption changes the layout of one cell.
type CellOption func(c *cell)

// LeftMargin overrides the table margin for one cell.
func LeftMargin(x string) CellOption {
	return func(c *cell) {
		c.leftMargin = x
	}
}

var (
	Left  CellOption = func(c *cell) { c.alignment = alignLeft }
	Right CellOption = func(c *cell) { c.alignment = alignRight }
)

type align int

const (
	alignLeft align = iota
	alignRight
)

// lpad pads s on the left to width w. Left-aligned cells are not
// padded; the next cell's offset does that.
func (a align) lpad(s string, w int) string {
	if a == alignRight {
		return fmt.Sprintf("%*s", w, s)
	}
	return s
}

// Row starts a new row in table t.
func (t *Table) Row() *Table {
	if len(t.cells) > 0 {
		t.curRow++
	}
	t.curCol = 0
	return t
}

// Col skips to column col in table t. Columns are numbered from 0.
func (t *Table) Col(col int) *Table {
	if col < t.curCol {
		panic(fmt.Sprintf("cannot move from column %d to earlier column %d", t.curCol, col))
	}
	t.curCol = col
	return t
}

// Cell adds a single-column cell at the current row and column.
func (t *Table) Cell(value string, opts ...CellOption) *Table {
	return t.Span(1, value, opts...)
}

// Span adds a multi-column cell at the current row and column.
func (t *Table) Span(cols int, value string, opts ...CellOption) *Table {
	t.add(cell{row: t.curRow, col: t.curCol, span: cols, value: value}, opts)
	t.curCol += cols
	if t.curCol > t.cols {
		t.cols = t.curCol
	}
	return t
}

// Title adds a row holding value alone. The title is left-aligned
// across the whole table and does not affect the column widths, so a
// long title runs past the last column.
func (t *Table) Title(value string) *Table {
	t.Row()
	t.add(cell{row: t.curRow, value: value, title: true}, nil)
	if t.cols == 0 {
		t.cols = 1
	}
	return t
}

func (t *Table) add(c cell, opts []CellOption) {
	if c.col > 0 && c.value != "" && !c.title {
		// The left-most column and empty cells default to no margin.
		c.leftMargin = t.Margin
		if c.leftMargin == "" {
			c.leftMargin = " "
		}
	}
	for _, o := range opts {
		o(&c)
	}
	t.cells = append(t.cells, c)
}

// Format lays out table t and writes it to w.
func (t *Table) Format(w io.Writer) error {
	for i := range t.cells {
		if c := &t.cells[i]; c.title {
			c.col, c.span = 0, t.cols
		}
	}

	// Collect max length margin for each column.
	lmargin := make([]int, t.cols)
	for _, c := range t.cells {
		lmargin[c.col] = max(utf8.RuneCountInString(c.leftMargin), lmargin[c.col])
	}

	// Compute column widths, including their left margins. Narrower
	// spans are laid out first so wider ones see their final widths.
	ws := make([]int, t.cols)
	sort.SliceStable(t.cells, func(i, j int) bool {
		return t.cells[i].span < t.cells[j].span
	})
	var spanCols []int
	for _, c := range t.cells {
		if c.title {
			continue
		}
		w := utf8.RuneCountInString(c.value) + lmargin[c.col]
		if c.span == 1 {
			ws[c.col] = max(ws[c.col], w)
			continue
		}

		tw := 0
		for col := c.col; col < c.col+c.span; col++ {
			tw += ws[col]
		}
		if tw >= w {
			continue
		}

		// Grow the spanned columns toward an even share of the
		// width, widest first, so columns that are already wide
		// enough give their excess to the narrower ones.
		spanCols = spanCols[:0]
		for col := c.col; col < c.col+c.span; col++ {
			spanCols = append(spanCols, col)
		}
		sort.Slice(spanCols, func(i, j int) bool {
			return ws[spanCols[i]] > ws[spanCols[j]]
		})
		span := len(spanCols)
		for _, col := range spanCols {
			avg := (w + span - 1) / span
			ws[col] = max(ws[col], avg)
			w -= ws[col]
			span--
		}
	}

	// offs[i] is where column i's left margin begins. The final
	// offset is the width of the table.
	offs := make([]int, t.cols+1)
	off := 0
	for i, w := range ws {
		offs[i] = off
		off += w
	}
	offs[len(ws)] = off

	// Put the cells back into top-to-bottom left-to-right order.
	sort.SliceStable(t.cells, func(i, j int) bool {
		if t.cells[i].row != t.cells[j].row {
			return t.cells[i].row < t.cells[j].row
		}
		return t.cells[i].col < t.cells[j].col
	})
	row := 0
	off = 0
	for _, c := range t.cells {
		if strings.TrimSpace(c.value) == "" && strings.TrimSpace(c.leftMargin) == "" {
			// Skip empty cells so rows carry no trailing spaces.
			continue
		}

		for c.row > row {
			if _, err := fmt.Fprintf(w, "\n"); err != nil {
				return err
			}
			row++
			off = 0
		}

		spaces := offs[c.col] - off
		if _, err := fmt.Fprintf(w, "%*s%*s", spaces, "", lmargin[c.col], c.leftMargin); err != nil {
			return err
		}
		off += spaces + lmargin[c.col]

		// Width of the cell, excluding the margin just printed.
		tw := offs[c.col+c.span] - offs[c.col] - lmargin[c.col]
		s := c.alignment.lpad(c.value, tw)
		if _, err := fmt.Fprintf(w, "%s", s); err != nil {
			return err
		}
		off += utf8.RuneCountInString(s)
	}
	if len(t.cells) > 0 {
		if _, err := fmt.Fprintf(w, "\n"); err != nil {
			return err
		}
	}
	return nil
}
