// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package edatab

import (
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/xuri/excelize/v2"

	"github.com/edastat/edastat/edafmt"
	"github.com/edastat/edastat/edastat"
)

// Font colors of increasing and decreasing deltas.
const (
	colorUp   = "00A933"
	colorDown = "C9211E"
)

// Excel border styles.
const (
	borderThin   = 1
	borderMedium = 2
)

func border(style int) []excelize.Border {
	var bs []excelize.Border
	for _, side := range []string{"left", "top", "right", "bottom"} {
		bs = append(bs, excelize.Border{Type: side, Color: "000000", Style: style})
	}
	return bs
}

var centered = &excelize.Alignment{Horizontal: "center", Vertical: "center"}

// xlsxStyles holds the style IDs registered in a workbook.
type xlsxStyles struct {
	header, title, cell int
	up, down, flat      int
}

func newXLSXStyles(f *excelize.File) (*xlsxStyles, error) {
	var s xlsxStyles
	for _, def := range []struct {
		id    *int
		style excelize.Style
	}{
		{&s.header, excelize.Style{Font: &excelize.Font{Bold: true}, Border: border(borderMedium), Alignment: centered}},
		{&s.title, excelize.Style{Font: &excelize.Font{Bold: true}}},
		{&s.cell, excelize.Style{Border: border(borderThin), Alignment: centered}},
		{&s.up, excelize.Style{Font: &excelize.Font{Bold: true, Color: colorUp}, Border: border(borderThin), Alignment: centered}},
		{&s.down, excelize.Style{Font: &excelize.Font{Bold: true, Color: colorDown}, Border: border(borderThin), Alignment: centered}},
		{&s.flat, excelize.Style{Font: &excelize.Font{Bold: true}, Border: border(borderThin), Alignment: centered}},
	} {
		id, err := f.NewStyle(&def.style)
		if err != nil {
			return nil, err
		}
		*def.id = id
	}
	return &s, nil
}

// WriteXLSX writes t to w as a single-sheet XLSX workbook laid out like
// WriteCSV. Numeric metric cells are stored as numbers; deltas are
// stored as their signed text.
func WriteXLSX(w io.Writer, t *edastat.Table, opts Options) error {
	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)

	styles, err := newXLSXStyles(f)
	if err != nil {
		return fmt.Errorf("creating styles: %w", err)
	}

	line := 1
	set := func(col int, v interface{}, style int) error {
		cell, err := excelize.CoordinatesToCellName(col+1, line)
		if err != nil {
			return err
		}
		if v != nil {
			if x, ok := v.(float64); ok {
				err = f.SetCellFloat(sheet, cell, x, -1, 64)
			} else {
				err = f.SetCellValue(sheet, cell, v)
			}
			if err != nil {
				return err
			}
		}
		return f.SetCellStyle(sheet, cell, cell, style)
	}

	for i, h := range t.Columns {
		if err := set(i, h, styles.header); err != nil {
			return err
		}
	}
	line++

	for _, g := range t.Groups {
		if err := set(0, g.Title(), styles.title); err != nil {
			return err
		}
		line++
		for _, r := range g.Rows {
			for i, col := range t.Columns {
				v, style := xlsxCell(r, col, styles, opts)
				if err := set(i, v, style); err != nil {
					return err
				}
			}
			line++
		}
	}

	for i, h := range t.Columns {
		name, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return err
		}
		width := float64(utf8.RuneCountInString(h))*1.4 + 4
		if err := f.SetColWidth(sheet, name, name, width); err != nil {
			return err
		}
	}

	return f.Write(w)
}

// xlsxCell returns the value to store for r's cell in col, or nil for
// an empty cell, and the style to apply.
func xlsxCell(r *edastat.Row, col string, s *xlsxStyles, opts Options) (interface{}, int) {
	c, ok := r.Cell(col)
	if !ok {
		return nil, s.cell
	}
	if c.Delta != nil {
		style := s.cell
		if opts.ColorDelta {
			switch c.Change() {
			case 1:
				style = s.up
			case -1:
				style = s.down
			default:
				style = s.flat
			}
		}
		return c.Delta.String(), style
	}
	switch c.Value.Kind {
	case edafmt.Int:
		i, _ := c.Value.Int()
		return i, s.cell
	case edafmt.Float:
		x, _ := c.Value.Float()
		return x, s.cell
	}
	return c.Value.String(), s.cell
}
