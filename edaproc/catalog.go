// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package edaproc parses the report list and the comparison expression
// that together say which reports to collect and which deltas to compute
// between them.
//
// Reports are identified purely by their position in the report list.
// Comparison expressions refer to reports by 1-based position, so
// reordering the report list changes the meaning of every comparison.
//
// # Reports
//
// A report list is a comma-separated list of report files, each with an
// optional display title after a colon:
//
//	3_1_place_gp.log:Global Place,3_3_place_dp.log
//
// A report without a title is displayed by its file's base name without
// extension ("3_3_place_dp" above).
//
// # Comparisons
//
// A comparison expression is a semicolon-separated list of chains. Each
// chain is a comma-separated list of report positions, a colon, and a
// comma-separated list of metric~label pairs:
//
//	1,2,3:area~Area Change,dat~DAT Change;1,4:area~Area Change
//
// Within a chain, each report is compared against the report just
// before it, so the chain above compares 2 against 1 and 3 against 2,
// never 3 against 1. For each pair, the delta of metric is added to the
// later report under the column label.
package edaproc

import (
	"fmt"
	"path/filepath"
	"strings"
)

// A Report is one entry of a report list.
type Report struct {
	Index int    // 0-based position in the list
	File  string // report file name, relative to the design's report directory
	Title string // display title
}

// A Catalog is an ordered list of reports.
type Catalog struct {
	reports []*Report
}

// ParseCatalog parses a report list.
func ParseCatalog(list string) (*Catalog, error) {
	c := new(Catalog)
	off := 0
	for _, entry := range strings.Split(list, ",") {
		file, title, _ := strings.Cut(entry, ":")
		file, title = strings.TrimSpace(file), strings.TrimSpace(title)
		if file == "" {
			return nil, &SyntaxError{Expr: list, Off: off, Msg: "missing report file name"}
		}
		if title == "" {
			title = baseTitle(file)
		}
		c.reports = append(c.reports, &Report{Index: len(c.reports), File: file, Title: title})
		off += len(entry) + 1
	}
	return c, nil
}

// baseTitle returns the base name of file without its extension.
func baseTitle(file string) string {
	base := filepath.Base(file)
	if t := strings.TrimSuffix(base, filepath.Ext(base)); t != "" {
		return t
	}
	return base
}

// Len returns the number of reports in c.
func (c *Catalog) Len() int {
	return len(c.reports)
}

// Reports returns the reports of c in list order.
func (c *Catalog) Reports() []*Report {
	return append([]*Report(nil), c.reports...)
}

// Report returns the report at 0-based index i.
func (c *Catalog) Report(i int) (*Report, error) {
	if i < 0 || i >= len(c.reports) {
		return nil, fmt.Errorf("report index %d out of range [0,%d)", i, len(c.reports))
	}
	return c.reports[i], nil
}
