// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package edastat

import (
	"fmt"
	"strconv"

	"github.com/edastat/edastat/edafmt"
)

// A Delta is the signed difference of one metric between two reports.
type Delta struct {
	Diff float64 // target - baseline, rounded to 4 decimal places
	Int  bool    // both operands were integers
}

// String formats d with an explicit sign: "+0.0", "-0.0001", "+12".
func (d Delta) String() string {
	diff := d.Diff
	sign := "+"
	if diff < 0 {
		sign, diff = "-", -diff
	}
	if d.Int {
		return sign + strconv.FormatInt(int64(diff), 10)
	}
	return sign + edafmt.FormatFloat(diff)
}

// Change returns +1 if d is an increase, -1 if it is a decrease, and 0
// if there was no change.
func (d Delta) Change() int {
	switch {
	case d.Diff > 0:
		return 1
	case d.Diff < 0:
		return -1
	}
	return 0
}

// A DeltaError reports a delta that cannot be computed because a source
// metric is missing or is not a number.
type DeltaError struct {
	Design   string
	Key      string // metric key
	Target   string // target report file
	Baseline string // baseline report file
	Msg      string
}

func (e *DeltaError) Error() string {
	return fmt.Sprintf("design %s: delta of %s between %s and %s: %s", e.Design, e.Key, e.Baseline, e.Target, e.Msg)
}

// ComputeDelta returns the delta of metric key from baseline to target.
func ComputeDelta(key string, target, baseline *edafmt.Record) (Delta, error) {
	fail := func(msg string) error {
		return &DeltaError{Key: key, Target: target.File, Baseline: baseline.File, Msg: msg}
	}
	tv, ok := target.Get(key)
	if !ok {
		return Delta{}, fail("metric missing from " + target.File)
	}
	bv, ok := baseline.Get(key)
	if !ok {
		return Delta{}, fail("metric missing from " + baseline.File)
	}

	if ti, ok := tv.Int(); ok {
		if bi, ok := bv.Int(); ok {
			return Delta{Diff: float64(ti - bi), Int: true}, nil
		}
	}
	tf, ok := tv.Float()
	if !ok {
		return Delta{}, fail(fmt.Sprintf("%s value %s is not a number", target.File, tv))
	}
	bf, ok := bv.Float()
	if !ok {
		return Delta{}, fail(fmt.Sprintf("%s value %s is not a number", baseline.File, bv))
	}
	diff := edafmt.Round(tf - bf)
	if diff == 0 {
		// Fold negative zero so it prints as "+0.0".
		diff = 0
	}
	return Delta{Diff: diff}, nil
}
