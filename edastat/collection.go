// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package edastat computes deltas between EDA reports and assembles
// them, together with the extracted metrics, into per-report tables.
package edastat

import (
	"errors"
	"fmt"

	"github.com/edastat/edastat/edafmt"
	"github.com/edastat/edastat/edaproc"
)

// A Collection is a collection of extracted report records, one per
// report and design.
type Collection struct {
	Catalog   *edaproc.Catalog
	Plan      *edaproc.Plan
	Extractor edafmt.Extractor

	// Designs lists the designs in row order.
	Designs []string

	// AddSummary specifies whether to add a row to each group
	// holding the mean of each metric column across designs.
	AddSummary bool

	records map[Key]*edafmt.Record
}

// A Key identifies one record: a report, by catalog index, for one
// design.
type Key struct {
	Report int
	Design string
}

// Add adds the record extracted from report for design. It sets the
// record's design metric and checks that the record carries every
// metric of the collection's extractor.
func (c *Collection) Add(report int, design string, rec *edafmt.Record) error {
	if _, err := c.Catalog.Report(report); err != nil {
		return err
	}
	rec.Set(edafmt.DesignKey, edafmt.StringValue(design))
	if err := rec.Check(c.Extractor.Metrics()); err != nil {
		return err
	}
	if c.records == nil {
		c.records = make(map[Key]*edafmt.Record)
	}
	c.records[Key{report, design}] = rec
	return nil
}

// Record returns the record for report and design, or nil.
func (c *Collection) Record(report int, design string) *edafmt.Record {
	return c.records[Key{report, design}]
}

// Check returns an error if the columns or rows of c would collide:
// no delta label may name a metric column, and with AddSummary no
// design may be named SummaryDesign.
func (c *Collection) Check() error {
	for _, m := range c.Extractor.Metrics() {
		for _, label := range c.Plan.Labels() {
			if label == m.Label {
				return fmt.Errorf("delta label %q is also a metric column", label)
			}
		}
	}
	if c.AddSummary {
		for _, design := range c.Designs {
			if design == SummaryDesign {
				return fmt.Errorf("design %q is reserved for summary rows", design)
			}
		}
	}
	return nil
}

// Table assembles the collected records into a Table. Every report in
// the catalog must have a record for every design.
func (c *Collection) Table() (*Table, error) {
	if err := c.Check(); err != nil {
		return nil, err
	}
	metrics := c.Extractor.Metrics()
	t := &Table{Deltas: make(map[string]bool)}
	for _, m := range metrics {
		t.Columns = append(t.Columns, m.Label)
		if m.Key == edafmt.DesignKey {
			t.DesignColumn = m.Label
		}
	}
	for _, label := range c.Plan.Labels() {
		t.Columns = append(t.Columns, label)
		t.Deltas[label] = true
	}

	for _, report := range c.Catalog.Reports() {
		g := &Group{Report: report}
		for _, design := range c.Designs {
			row, err := c.row(metrics, report.Index, design)
			if err != nil {
				return nil, err
			}
			g.Rows = append(g.Rows, row)
		}
		if c.AddSummary && len(g.Rows) > 0 {
			g.Rows = append(g.Rows, summarize(t, g.Rows))
		}
		t.Groups = append(t.Groups, g)
	}
	return t, nil
}

func (c *Collection) row(metrics []edafmt.Metric, report int, design string) (*Row, error) {
	rec := c.Record(report, design)
	if rec == nil {
		return nil, fmt.Errorf("no record for report %d, design %s", report+1, design)
	}
	row := &Row{Design: design, Cells: make(map[string]Cell)}
	for _, m := range metrics {
		v, _ := rec.Get(m.Key)
		row.Cells[m.Label] = Cell{Value: v}
	}

	// A label used twice for the same report keeps the last delta.
	for _, comp := range c.Plan.Comparisons(report) {
		base := c.Record(comp.Baseline, design)
		if base == nil {
			return nil, fmt.Errorf("no record for report %d, design %s", comp.Baseline+1, design)
		}
		for _, attr := range comp.Attrs {
			d, err := ComputeDelta(attr.Key, rec, base)
			if err != nil {
				var derr *DeltaError
				if errors.As(err, &derr) {
					derr.Design = design
				}
				return nil, err
			}
			row.Cells[attr.Label] = Cell{Delta: &d}
		}
	}
	return row, nil
}
