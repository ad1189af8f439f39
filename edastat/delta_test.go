// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package edastat

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edastat/edastat/edafmt"
)

func TestDeltaString(t *testing.T) {
	check := func(d Delta, want string) {
		t.Helper()
		if got := d.String(); got != want {
			t.Errorf("want %q, got %q", want, got)
		}
	}
	check(Delta{Diff: -0.0001}, "-0.0001")
	check(Delta{Diff: 0}, "+0.0")
	check(Delta{Diff: 12.5}, "+12.5")
	check(Delta{Diff: 3}, "+3.0")
	check(Delta{Diff: -40, Int: true}, "-40")
	check(Delta{Diff: 0, Int: true}, "+0")
}

func record(file string, kv ...interface{}) *edafmt.Record {
	r := edafmt.NewRecord(file)
	for i := 0; i < len(kv); i += 2 {
		r.Set(kv[i].(string), kv[i+1].(edafmt.Value))
	}
	return r
}

func TestComputeDelta(t *testing.T) {
	base := record("r1.log",
		"area", edafmt.IntValue(500),
		"dat", edafmt.FloatValue(0.5235),
		"average_slack", edafmt.UnknownValue(),
		"flag", edafmt.StringValue("yes"))
	target := record("r2.log",
		"area", edafmt.IntValue(460),
		"dat", edafmt.FloatValue(0.5234),
		"average_slack", edafmt.FloatValue(0.1),
		"flag", edafmt.StringValue("no"))

	d, err := ComputeDelta("area", target, base)
	require.NoError(t, err)
	assert.Equal(t, Delta{Diff: -40, Int: true}, d)
	assert.Equal(t, -1, d.Change())

	d, err = ComputeDelta("dat", target, base)
	require.NoError(t, err)
	assert.Equal(t, "-0.0001", d.String())

	d, err = ComputeDelta("dat", base, base)
	require.NoError(t, err)
	assert.Equal(t, "+0.0", d.String())
	assert.Equal(t, 0, d.Change())

	// Mixed int and float operands produce a float delta.
	mixed := record("r3.log", "area", edafmt.FloatValue(460.25))
	d, err = ComputeDelta("area", mixed, base)
	require.NoError(t, err)
	assert.Equal(t, "-39.75", d.String())

	for _, key := range []string{"average_slack", "flag", "missing"} {
		_, err := ComputeDelta(key, target, base)
		var derr *DeltaError
		require.True(t, errors.As(err, &derr), "key %s: want *DeltaError, got %v", key, err)
		assert.Equal(t, key, derr.Key)
	}
}
