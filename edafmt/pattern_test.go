// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package edafmt

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const synthStat = `
=== gcd ===

   Number of wires:                 64
   Number of wire bits:            217
   Number of public wires:           4
   Number of cells:                 83
     AND2_X1                         3
     DFF_X1                         34

   Chip area for module '\gcd': 488.376000
`

func TestSynth(t *testing.T) {
	r, err := Synth.Parse("synth_stat.txt", []byte(synthStat))
	require.NoError(t, err)
	assert.Equal(t, []string{"area", "cells", "wires"}, r.Keys())
	assert.Equal(t, FloatValue(488.376), get(t, r, "area"))
	assert.Equal(t, IntValue(83), get(t, r, "cells"))
	assert.Equal(t, IntValue(64), get(t, r, "wires"))
}

func TestSynthRequired(t *testing.T) {
	_, err := Synth.Parse("empty.txt", []byte("Number of wires: 3\n"))
	var xerr *ExtractError
	require.True(t, errors.As(err, &xerr))
	assert.Equal(t, "area", xerr.Field)
	assert.Equal(t, "empty.txt: area: pattern not found", err.Error())
}

func TestConstProp(t *testing.T) {
	text := "Running constant propagation\nRemoved 12 instances\nDesign area 400.5 u^2 30% utilization.\n"
	r, err := ConstProp.Parse("cp.log", []byte(text))
	require.NoError(t, err)
	assert.Equal(t, FloatValue(400.5), get(t, r, "IR::AREA::DSG"))
	assert.Equal(t, IntValue(12), get(t, r, "IR::INST::REMOVED"))
	assert.Equal(t, StringValue("yes"), get(t, r, "IR::CONST::PROPAGATED"))

	// Optional fields default rather than fail.
	r, err = ConstProp.Parse("cp.log", []byte("Design area 400 u^2\n"))
	require.NoError(t, err)
	assert.Equal(t, IntValue(0), get(t, r, "IR::INST::REMOVED"))
	assert.Equal(t, StringValue("no"), get(t, r, "IR::CONST::PROPAGATED"))
}

func TestLookup(t *testing.T) {
	assert.Equal(t, []string{"constprop", "resizer", "synth", "timing"}, Names())
	x, err := Lookup("timing")
	require.NoError(t, err)
	assert.Equal(t, Timing, x)
	_, err = Lookup("power")
	assert.ErrorContains(t, err, `unknown extractor "power"`)
}

func TestRecordCheck(t *testing.T) {
	r := NewRecord("r.log")
	r.Set("area", IntValue(3))
	err := r.Check([]Metric{{"area", "Area"}, {DesignKey, "Design"}})
	var xerr *ExtractError
	require.True(t, errors.As(err, &xerr))
	assert.Equal(t, DesignKey, xerr.Field)

	r.Set(DesignKey, StringValue("aes"))
	r.Set("area", IntValue(4))
	assert.NoError(t, r.Check([]Metric{{"area", "Area"}, {DesignKey, "Design"}}))
	assert.Equal(t, []string{"area", DesignKey}, r.Keys())
}

func TestValueString(t *testing.T) {
	for _, test := range []struct {
		v    Value
		want string
	}{
		{FloatValue(0), "0.0"},
		{FloatValue(12), "12.0"},
		{FloatValue(-0.0001), "-0.0001"},
		{FloatValue(0.5235), "0.5235"},
		{IntValue(-7), "-7"},
		{StringValue("yes"), "yes"},
		{UnknownValue(), "N/A"},
	} {
		assert.Equal(t, test.want, test.v.String())
	}
}

func TestRound(t *testing.T) {
	assert.Equal(t, 0.1235, Round(0.123456))
	assert.Equal(t, -0.0001, Round(-0.00012))
	assert.Equal(t, 3.0, Round(3))
	assert.Equal(t, 0.0, Round(0.00001))
}
