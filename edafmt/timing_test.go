// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package edafmt

import (
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readTiming(t *testing.T) string {
	t.Helper()
	data, err := os.ReadFile("testdata/timing.rpt")
	require.NoError(t, err)
	return string(data)
}

func parseTimingText(t *testing.T, x Extractor, text string) *Record {
	t.Helper()
	r, err := x.Parse("timing.rpt", []byte(text))
	require.NoError(t, err)
	return r
}

func get(t *testing.T, r *Record, key string) Value {
	t.Helper()
	v, ok := r.Get(key)
	require.True(t, ok, "missing key %s in %s", key, r)
	return v
}

func TestTiming(t *testing.T) {
	r := parseTimingText(t, Timing, readTiming(t))

	check := func(key string, want Value) {
		t.Helper()
		assert.Equal(t, want, get(t, r, key), "key %s", key)
	}
	check("min_dat", FloatValue(0.1))
	check("min_slack", FloatValue(0.1))
	check("max_dat", FloatValue(0.5235))
	check("max_slack", FloatValue(-0.05))
	check("area", IntValue(512))
	check("util", FloatValue(45))
	check("total_slack", FloatValue(12.5))
	check("average_slack", FloatValue(0.0256))
	check("violations", IntValue(1))
	check("tns", FloatValue(-0.05))
	check("wns", FloatValue(-0.05))

	// The critical path metrics alias the max path.
	assert.Equal(t, get(t, r, "max_slack"), get(t, r, "slack"))
	assert.Equal(t, get(t, r, "max_dat"), get(t, r, "dat"))
	assert.Equal(t, "0.5235", get(t, r, "dat").String())

	r.Set(DesignKey, StringValue("gcd"))
	assert.NoError(t, r.Check(Timing.Metrics()))
}

func TestTimingOptional(t *testing.T) {
	text := readTiming(t)
	text = strings.Replace(text, "Average Slack: 0.0256\n", "", 1)
	text = strings.Replace(text, "tns -0.05\n", "", 1)
	text = strings.Replace(text, "wns -0.05\n", "", 1)
	text = strings.Replace(text, "slack (VIOLATED)", "slack (MET)", 1)
	r := parseTimingText(t, Timing, text)

	// A missing average slack is unknown, not zero.
	avg := get(t, r, "average_slack")
	assert.False(t, avg.Known())
	assert.Equal(t, NA, avg.String())
	_, ok := avg.Float()
	assert.False(t, ok)

	// Missing tns and wns default to zero.
	assert.Equal(t, FloatValue(0), get(t, r, "tns"))
	assert.Equal(t, FloatValue(0), get(t, r, "wns"))
	assert.Equal(t, IntValue(0), get(t, r, "violations"))
}

func TestTimingFractionalArea(t *testing.T) {
	text := strings.Replace(readTiming(t), "Design area 512 u^2", "Design area 512.123456 u^2", 1)
	r := parseTimingText(t, Timing, text)
	assert.Equal(t, FloatValue(512.1235), get(t, r, "area"))
}

func TestTimingRequired(t *testing.T) {
	text := readTiming(t)
	for _, test := range []struct {
		name  string
		text  string
		field string
	}{
		{"no paths", "nothing to see here\n", "Startpoint"},
		{"no area", strings.Replace(text, "Design area", "Die area", 1), "Design area"},
		{"no total slack", strings.Replace(text, "Total Slack", "Total", 1), "Total Slack"},
		{"no max path", strings.Replace(text, "Path Type: max", "Path Type: min", 1), "Path Type"},
		{"bad path type", strings.Replace(text, "Path Type: max", "Path Type: typ", 1), "Path Type"},
		{"no slack", strings.Replace(text, "slack (MET)", "margin (MET)", 1), "slack"},
	} {
		t.Run(test.name, func(t *testing.T) {
			r, err := Timing.Parse("bad.rpt", []byte(test.text))
			require.Error(t, err)
			assert.Nil(t, r)
			var xerr *ExtractError
			require.True(t, errors.As(err, &xerr), "want *ExtractError, got %T", err)
			assert.Equal(t, "bad.rpt", xerr.File)
			assert.Equal(t, test.field, xerr.Field)
			assert.Contains(t, err.Error(), "bad.rpt")
		})
	}
}

func TestTimingIdempotent(t *testing.T) {
	text := []byte(readTiming(t))
	r1, err := Timing.Parse("timing.rpt", text)
	require.NoError(t, err)
	r2, err := Timing.Parse("timing.rpt", text)
	require.NoError(t, err)
	assert.True(t, r1.Equal(r2))
	assert.Equal(t, r1.Keys(), r2.Keys())
}

func TestResizer(t *testing.T) {
	r := parseTimingText(t, Resizer, readTiming(t))
	assert.Equal(t, FloatValue(-0.05), get(t, r, "TIMING::SLACK"))
	assert.Equal(t, FloatValue(0.5235), get(t, r, "TIMING::SLACK::DAT"))
	assert.Equal(t, IntValue(512), get(t, r, "IR::AREA::DSG"))
	assert.Equal(t, FloatValue(45), get(t, r, "PLACEMENT::DENSITY"))

	var labels []string
	for _, m := range Resizer.Metrics() {
		labels = append(labels, m.Label)
	}
	assert.Equal(t, []string{"design", "DAT", "CP Slack", "Total Slack", "Average Slack", "TNS", "WNS", "Area", "Utilization", "Violations"}, labels)
}
