// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package edafmt

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

func init() {
	Register(Timing)
	Register(Resizer)
}

// Timing extracts metrics from static timing reports with canonical
// metric keys such as "dat", "slack", "area" and "violations".
var Timing Extractor = &timingExtractor{
	name: "timing",
	keys: timingKeys{
		minDAT: "min_dat", maxDAT: "max_dat",
		minSlack: "min_slack", maxSlack: "max_slack",
		slack: "slack", dat: "dat",
		area: "area", util: "util",
		totalSlack: "total_slack", avgSlack: "average_slack",
		violations: "violations",
		tns:        "tns", wns: "wns",
	},
	metrics: []Metric{
		{DesignKey, "Design"},
		{"dat", "DAT"},
		{"slack", "CP Slack"},
		{"total_slack", "Total Slack"},
		{"average_slack", "Average Slack"},
		{"area", "Area"},
		{"util", "Utilization"},
		{"violations", "Violations"},
	},
}

// Resizer extracts the same metrics as Timing from the reports of the
// resizer stages, keyed hierarchically ("TIMING::SLACK", "IR::AREA::DSG")
// and with total and worst negative slack in its display columns. Its
// design column is labeled "design".
var Resizer Extractor = &timingExtractor{
	name: "resizer",
	keys: timingKeys{
		minDAT: "TIMING::SLACK::DAT::MIN", maxDAT: "TIMING::SLACK::DAT::MAX",
		minSlack: "TIMING::SLACK::MIN", maxSlack: "TIMING::SLACK::MAX",
		slack: "TIMING::SLACK", dat: "TIMING::SLACK::DAT",
		area: "IR::AREA::DSG", util: "PLACEMENT::DENSITY",
		totalSlack: "TIMING::SLACK::TOTAL", avgSlack: "TIMING::SLACK::AVG",
		violations: "TIMING::VIOLATION::TOTAL",
		tns:        "TIMING::SLACK::TNS", wns: "TIMING::SLACK::WNS",
	},
	metrics: []Metric{
		{DesignKey, "design"},
		{"TIMING::SLACK::DAT", "DAT"},
		{"TIMING::SLACK", "CP Slack"},
		{"TIMING::SLACK::TOTAL", "Total Slack"},
		{"TIMING::SLACK::AVG", "Average Slack"},
		{"TIMING::SLACK::TNS", "TNS"},
		{"TIMING::SLACK::WNS", "WNS"},
		{"IR::AREA::DSG", "Area"},
		{"PLACEMENT::DENSITY", "Utilization"},
		{"TIMING::VIOLATION::TOTAL", "Violations"},
	},
}

// timingKeys names the Record keys a timingExtractor emits.
type timingKeys struct {
	minDAT, maxDAT, minSlack, maxSlack string
	slack, dat                         string
	area, util                         string
	totalSlack, avgSlack               string
	violations                         string
	tns, wns                           string
}

type timingExtractor struct {
	name    string
	keys    timingKeys
	metrics []Metric
}

func (x *timingExtractor) Name() string { return x.name }

func (x *timingExtractor) Metrics() []Metric {
	return append([]Metric(nil), x.metrics...)
}

func (x *timingExtractor) Parse(file string, text []byte) (*Record, error) {
	t, err := parseTiming(file, string(text))
	if err != nil {
		return nil, err
	}
	k := &x.keys
	r := NewRecord(file)
	r.Set(k.minDAT, FloatValue(t.minDAT))
	r.Set(k.maxDAT, FloatValue(t.maxDAT))
	r.Set(k.minSlack, FloatValue(t.minSlack))
	r.Set(k.maxSlack, FloatValue(t.maxSlack))
	r.Set(k.slack, FloatValue(t.maxSlack))
	r.Set(k.dat, FloatValue(t.maxDAT))
	r.Set(k.area, t.area)
	r.Set(k.util, FloatValue(t.util))
	r.Set(k.totalSlack, FloatValue(t.totalSlack))
	r.Set(k.avgSlack, t.avgSlack)
	r.Set(k.violations, IntValue(int64(t.violations)))
	r.Set(k.tns, FloatValue(t.tns))
	r.Set(k.wns, FloatValue(t.wns))
	return r, nil
}

// A timingReport is the format-independent result of parsing a timing
// report. All floats are already rounded.
type timingReport struct {
	minDAT, maxDAT     float64
	minSlack, maxSlack float64
	area               Value // Int if integral, otherwise Float
	util               float64
	totalSlack         float64
	avgSlack           Value // Unknown if the report has none
	violations         int
	tns, wns           float64
}

const num = `(-?\d+(?:\.\d+)?)`

var (
	startpointRE = regexp.MustCompile(`\s*Startpoint\s*`)
	pathTypeRE   = regexp.MustCompile(`Path\s+Type\s*:\s*(\w+)`)
	slackRE      = regexp.MustCompile(num + `\s+slack\s+`)
	datRE        = regexp.MustCompile(num + `\s+data\s+arrival\s+time\s+`)
	areaRE       = regexp.MustCompile(`Design\s+area\s+` + num + `\s+u\^2\s+` + num + `%\s+utilization\.`)
	totalSlackRE = regexp.MustCompile(`Total\s+Slack\s*:\s*` + num)
	avgSlackRE   = regexp.MustCompile(`Average\s+Slack\s*:\s*` + num)
	tnsRE        = regexp.MustCompile(`tns\s+` + num)
	wnsRE        = regexp.MustCompile(`wns\s+` + num)
)

const violatedMarker = "VIOLATED"

func parseTiming(file, text string) (*timingReport, error) {
	fail := func(field, msg string) error {
		return &ExtractError{File: file, Field: field, Msg: msg}
	}

	// Every path begins with "Startpoint: ...". Anything before the
	// first path is a preamble.
	var paths []string
	for _, s := range startpointRE.Split(text, -1) {
		if strings.HasPrefix(s, ":") {
			paths = append(paths, s)
		}
	}
	if len(paths) == 0 {
		return nil, fail("Startpoint", "no timing paths in report")
	}

	var t timingReport
	var haveMin, haveMax bool
	for i, path := range paths {
		pathType, err := findString(pathTypeRE, path)
		if err != nil {
			return nil, fail("Path Type", fmt.Sprintf("path %d: %v", i+1, err))
		}
		slack, err := findFloat(slackRE, path)
		if err != nil {
			return nil, fail("slack", fmt.Sprintf("path %d: %v", i+1, err))
		}
		dat, err := findFloat(datRE, path)
		if err != nil {
			return nil, fail("data arrival time", fmt.Sprintf("path %d: %v", i+1, err))
		}
		switch pathType {
		case "min":
			t.minDAT, t.minSlack, haveMin = dat, slack, true
		case "max":
			t.maxDAT, t.maxSlack, haveMax = dat, slack, true
		default:
			return nil, fail("Path Type", fmt.Sprintf("path %d: unexpected path type %q", i+1, pathType))
		}
	}
	if !haveMin {
		return nil, fail("Path Type", "no min path in report")
	}
	if !haveMax {
		return nil, fail("Path Type", "no max path in report")
	}
	t.minDAT, t.minSlack = Round(t.minDAT), Round(t.minSlack)
	t.maxDAT, t.maxSlack = Round(t.maxDAT), Round(t.maxSlack)

	// The design summary follows the last path.
	last := paths[len(paths)-1]

	m := areaRE.FindStringSubmatch(last)
	if m == nil {
		return nil, fail("Design area", "pattern not found")
	}
	area, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return nil, fail("Design area", err.Error())
	}
	if area == math.Trunc(area) && math.Abs(area) < 1<<53 {
		t.area = IntValue(int64(area))
	} else {
		t.area = FloatValue(Round(area))
	}
	util, err := strconv.ParseFloat(m[2], 64)
	if err != nil {
		return nil, fail("utilization", err.Error())
	}
	t.util = Round(util)

	totalSlack, err := findFloat(totalSlackRE, last)
	if err != nil {
		return nil, fail("Total Slack", err.Error())
	}
	t.totalSlack = Round(totalSlack)

	// Average slack is optional and has no default.
	if avg, err := findFloat(avgSlackRE, last); err == nil {
		t.avgSlack = FloatValue(Round(avg))
	} else if err != errNoMatch {
		return nil, fail("Average Slack", err.Error())
	}

	t.violations = strings.Count(last, violatedMarker)

	// tns and wns are optional and default to zero.
	for _, o := range []struct {
		re    *regexp.Regexp
		field string
		dst   *float64
	}{{tnsRE, "tns", &t.tns}, {wnsRE, "wns", &t.wns}} {
		x, err := findFloat(o.re, last)
		if err == errNoMatch {
			continue
		} else if err != nil {
			return nil, fail(o.field, err.Error())
		}
		*o.dst = Round(x)
	}

	return &t, nil
}
