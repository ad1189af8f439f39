// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package edafmt

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

func init() {
	Register(Synth)
	Register(ConstProp)
}

// Synth extracts cell area and cell counts from a synthesis "stat"
// report.
var Synth Extractor = &patternExtractor{
	name: "synth",
	fields: []patternField{
		{Metric{"area", "Chip Area"}, regexp.MustCompile(`Chip\s+area\s+for\s+(?:top\s+)?module\s+.*?:\s*` + num), floatField, true},
		{Metric{"cells", "Cells"}, regexp.MustCompile(`Number\s+of\s+cells\s*:\s*(\d+)`), intField, true},
		{Metric{"wires", "Wires"}, regexp.MustCompile(`Number\s+of\s+wires\s*:\s*(\d+)`), intField, false},
	},
}

// ConstProp extracts design area and edit counts from a constant
// propagation report.
var ConstProp Extractor = &patternExtractor{
	name: "constprop",
	fields: []patternField{
		{Metric{"IR::AREA::DSG", "Area"}, regexp.MustCompile(`Design\s+area\s+` + num + `\s+u\^2`), floatField, true},
		{Metric{"IR::INST::REMOVED", "Removed Instances"}, regexp.MustCompile(`Removed\s+(\d+)\s+instances`), intField, false},
		{Metric{"IR::CONST::PROPAGATED", "Propagated"}, regexp.MustCompile(`(?i)constant\s+propagation`), presenceField, false},
	},
}

// A fieldKind says how a patternField turns its match into a Value.
type fieldKind int

const (
	floatField    fieldKind = iota // first group as a rounded float
	intField                       // first group as an integer
	presenceField                  // "yes" if the pattern matches, else "no"
)

// A patternField is one metric found by a single search of the whole
// report. An optional field that does not match defaults to zero.
type patternField struct {
	Metric
	re       *regexp.Regexp
	kind     fieldKind
	required bool
}

type patternExtractor struct {
	name   string
	fields []patternField
}

func (x *patternExtractor) Name() string { return x.name }

func (x *patternExtractor) Metrics() []Metric {
	ms := []Metric{{DesignKey, "Design"}}
	for _, f := range x.fields {
		ms = append(ms, f.Metric)
	}
	return ms
}

func (x *patternExtractor) Parse(file string, text []byte) (*Record, error) {
	s := string(text)
	r := NewRecord(file)
	for _, f := range x.fields {
		v, err := f.extract(s)
		if err == errNoMatch && f.required {
			return nil, &ExtractError{File: file, Field: f.Key, Msg: "pattern not found"}
		} else if err != nil && err != errNoMatch {
			return nil, &ExtractError{File: file, Field: f.Key, Msg: err.Error()}
		}
		r.Set(f.Key, v)
	}
	return r, nil
}

func (f *patternField) extract(s string) (Value, error) {
	switch f.kind {
	case presenceField:
		if f.re.MatchString(s) {
			return StringValue("yes"), nil
		}
		return StringValue("no"), nil
	case intField:
		m, err := findString(f.re, s)
		if err == errNoMatch {
			return IntValue(0), err
		} else if err != nil {
			return Value{}, err
		}
		n, err := strconv.ParseInt(m, 10, 64)
		if err != nil {
			return Value{}, err
		}
		return IntValue(n), nil
	default:
		x, err := findFloat(f.re, s)
		if err == errNoMatch {
			return FloatValue(0), err
		} else if err != nil {
			return Value{}, err
		}
		return FloatValue(Round(x)), nil
	}
}

var errNoMatch = errors.New("pattern not found")

// findString returns the first submatch of re in s.
func findString(re *regexp.Regexp, s string) (string, error) {
	m := re.FindStringSubmatch(s)
	if m == nil {
		return "", errNoMatch
	}
	if len(m) < 2 {
		panic(fmt.Sprintf("edafmt: pattern %s has no group", re))
	}
	return strings.TrimSpace(m[1]), nil
}

// findFloat returns the first submatch of re in s as a float.
func findFloat(re *regexp.Regexp, s string) (float64, error) {
	m, err := findString(re, s)
	if err != nil {
		return 0, err
	}
	return strconv.ParseFloat(m, 64)
}
