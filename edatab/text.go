// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package edatab

import (
	"bufio"
	"io"

	"github.com/edastat/edastat/edastat"
	"github.com/edastat/edastat/internal/texttab"
)

// WriteText writes t to w as fixed-width text tables, one per group,
// separated by blank lines. The first column is left-aligned and the
// rest are right-aligned. Column widths are shared by all groups.
func WriteText(w io.Writer, t *edastat.Table) error {
	tab := texttab.Table{Margin: "  "}
	for gi, g := range t.Groups {
		if gi > 0 {
			tab.Row()
		}
		tab.Title(g.Title())

		tab.Row()
		for _, col := range t.Columns {
			tab.Cell(col)
		}
		for _, r := range g.Rows {
			tab.Row()
			for i, col := range t.Columns {
				if i == 0 {
					tab.Cell(cellText(r, col))
				} else {
					tab.Cell(cellText(r, col), texttab.Right)
				}
			}
		}
	}

	buf := bufio.NewWriter(w)
	if err := tab.Format(buf); err != nil {
		return err
	}
	return buf.Flush()
}
