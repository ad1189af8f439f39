// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package edafmt

import "fmt"

// DesignKey is the metric key under which a Record carries the name of
// the design it was extracted for. Extractors do not set it; the caller
// does, since the report text does not name the design.
const DesignKey = "design"

// A Record is the set of metrics extracted from one report for one
// design, in extraction order.
type Record struct {
	// File is the report the record was extracted from. It is purely
	// diagnostic.
	File string

	keys   []string
	values map[string]Value
}

// NewRecord returns an empty record for the named report file.
func NewRecord(file string) *Record {
	return &Record{File: file, values: make(map[string]Value)}
}

// Set sets metric key to v. Setting an existing key keeps its position.
func (r *Record) Set(key string, v Value) {
	if r.values == nil {
		r.values = make(map[string]Value)
	}
	if _, ok := r.values[key]; !ok {
		r.keys = append(r.keys, key)
	}
	r.values[key] = v
}

// Get returns the value of metric key and whether it is present.
// A present key may still hold an Unknown value.
func (r *Record) Get(key string) (Value, bool) {
	v, ok := r.values[key]
	return v, ok
}

// Keys returns the metric keys of r in the order they were set.
func (r *Record) Keys() []string {
	return append([]string(nil), r.keys...)
}

// Len returns the number of metrics in r.
func (r *Record) Len() int {
	return len(r.keys)
}

// Equal reports whether r and o hold the same metrics in the same order.
func (r *Record) Equal(o *Record) bool {
	if len(r.keys) != len(o.keys) {
		return false
	}
	for i, k := range r.keys {
		if o.keys[i] != k || o.values[k] != r.values[k] {
			return false
		}
	}
	return true
}

// Check returns an error if r lacks any of the metrics in ms.
func (r *Record) Check(ms []Metric) error {
	for _, m := range ms {
		if _, ok := r.values[m.Key]; !ok {
			return &ExtractError{File: r.File, Field: m.Key, Msg: "metric missing from record"}
		}
	}
	return nil
}

func (r *Record) String() string {
	s := r.File + ":"
	for _, k := range r.keys {
		s += fmt.Sprintf(" %s=%s", k, r.values[k])
	}
	return s
}
