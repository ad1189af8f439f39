// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package edafmt

import (
	"strconv"
	"strings"
)

// A Kind identifies the type of a Value.
type Kind int

const (
	// Unknown marks a metric that the report did not provide.
	// It is distinct from a metric that defaulted to zero.
	Unknown Kind = iota
	Float
	Int
	String
)

func (k Kind) String() string {
	switch k {
	case Float:
		return "float"
	case Int:
		return "int"
	case String:
		return "string"
	}
	return "unknown"
}

// NA is the text rendering of an Unknown value.
const NA = "N/A"

// A Value is a single extracted metric value. The zero Value is Unknown.
type Value struct {
	Kind Kind
	f    float64
	i    int64
	s    string
}

// FloatValue returns a Float value holding x.
func FloatValue(x float64) Value {
	return Value{Kind: Float, f: x}
}

// IntValue returns an Int value holding n.
func IntValue(n int64) Value {
	return Value{Kind: Int, i: n}
}

// StringValue returns a String value holding s.
func StringValue(s string) Value {
	return Value{Kind: String, s: s}
}

// UnknownValue returns the Unknown value.
func UnknownValue() Value {
	return Value{}
}

// Known reports whether v holds a value.
func (v Value) Known() bool {
	return v.Kind != Unknown
}

// Float returns v as a float64. ok is false unless v is a Float or an Int.
func (v Value) Float() (x float64, ok bool) {
	switch v.Kind {
	case Float:
		return v.f, true
	case Int:
		return float64(v.i), true
	}
	return 0, false
}

// Int returns v as an int64. ok is false unless v is an Int.
func (v Value) Int() (n int64, ok bool) {
	if v.Kind != Int {
		return 0, false
	}
	return v.i, true
}

// String formats v for display. Floats use the shortest representation
// that keeps at least one fractional digit, so 12 prints as "12.0".
func (v Value) String() string {
	switch v.Kind {
	case Float:
		return FormatFloat(v.f)
	case Int:
		return strconv.FormatInt(v.i, 10)
	case String:
		return v.s
	}
	return NA
}

// FormatFloat formats x in shortest form with at least one fractional
// digit.
func FormatFloat(x float64) string {
	if x == 0 {
		// Fold negative zero.
		x = 0
	}
	s := strconv.FormatFloat(x, 'f', -1, 64)
	if !strings.ContainsRune(s, '.') {
		s += ".0"
	}
	return s
}

// Round rounds x to 4 decimal places, rounding half to even on the exact
// decimal value of x.
func Round(x float64) float64 {
	r, err := strconv.ParseFloat(strconv.FormatFloat(x, 'f', 4, 64), 64)
	if err != nil {
		// FormatFloat always produces a parseable number.
		panic(err)
	}
	return r
}
