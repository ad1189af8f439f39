// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package edafmt extracts metrics from EDA tool reports.
//
// An EDA report is free-form text: a timing report from a static timing
// analyzer, an area report from a synthesis tool, and so on. Each report
// format has its own Extractor, which knows which metrics it can find
// and how to find them. Extractors are looked up by name with Lookup.
//
// Extraction is all or nothing: if any metric an Extractor requires is
// missing from the text, Parse returns an *ExtractError and no Record.
package edafmt

import (
	"fmt"
	"sort"
)

// A Metric names one metric an Extractor produces.
type Metric struct {
	Key   string // key in the Record
	Label string // column name for display
}

// An Extractor parses one report format.
type Extractor interface {
	// Name returns the registered name of the extractor.
	Name() string

	// Metrics returns the metrics that make up the extractor's display
	// columns, in column order. Every Record produced by Parse, once
	// the caller has set DesignKey, contains all of these keys.
	Metrics() []Metric

	// Parse extracts a Record from the text of a report. file is used
	// in errors and is otherwise diagnostic.
	Parse(file string, text []byte) (*Record, error)
}

// An ExtractError reports a required metric that could not be extracted
// from a report.
type ExtractError struct {
	File  string // report file name
	Field string // metric or pattern that failed
	Msg   string
}

func (e *ExtractError) Error() string {
	return fmt.Sprintf("%s: %s: %s", e.File, e.Field, e.Msg)
}

var extractors = map[string]Extractor{}

// Register makes an Extractor available by its name. It panics if the
// name is already taken. It is meant to be called from init functions.
func Register(x Extractor) {
	name := x.Name()
	if _, ok := extractors[name]; ok {
		panic("edafmt: extractor " + name + " registered twice")
	}
	extractors[name] = x
}

// Lookup returns the Extractor registered under name.
func Lookup(name string) (Extractor, error) {
	x, ok := extractors[name]
	if !ok {
		return nil, fmt.Errorf("unknown extractor %q (have %v)", name, Names())
	}
	return x, nil
}

// Names returns the names of all registered extractors, sorted.
func Names() []string {
	names := make([]string, 0, len(extractors))
	for name := range extractors {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
