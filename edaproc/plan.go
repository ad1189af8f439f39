// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package edaproc

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// An Attr is one metric to compare and the column label for its delta.
type Attr struct {
	Key   string
	Label string
}

// A Comparison is the set of deltas to compute for a target report
// against one baseline report.
type Comparison struct {
	Baseline int // 0-based index of the baseline report
	Attrs    []Attr
}

// A Plan says, for each report, which deltas to compute against which
// earlier reports.
type Plan struct {
	// comps maps a 0-based target index to its comparisons, in the
	// order their baselines first appeared.
	comps  map[int][]*Comparison
	labels []string
}

// ParsePlan parses a comparison expression. If n > 0, every report
// position in expr must be between 1 and n. The indexes of a chain must
// increase, so each baseline is an earlier report than its target.
//
// An empty expression yields an empty Plan.
func ParsePlan(expr string, n int) (*Plan, error) {
	p := &Plan{comps: make(map[int][]*Comparison)}
	if strings.TrimSpace(expr) == "" {
		return p, nil
	}
	errorf := func(off int, format string, args ...interface{}) error {
		return &SyntaxError{Expr: expr, Off: off, Msg: fmt.Sprintf(format, args...)}
	}

	seenLabel := make(map[string]bool)
	for _, chain := range split(expr, 0, ';') {
		parts := split(chain.s, chain.off, ':')
		if len(parts) != 2 {
			return nil, errorf(chain.off, "expected indexes:attributes, found %d parts", len(parts))
		}

		var indexes []int
		for _, f := range split(parts[0].s, parts[0].off, ',') {
			i, err := strconv.Atoi(f.s)
			if err != nil {
				return nil, errorf(f.off, "bad report index %q", f.s)
			}
			if i < 1 || (n > 0 && i > n) {
				return nil, errorf(f.off, "report index %d out of range [1,%d]", i, n)
			}
			if len(indexes) > 0 && i-1 <= indexes[len(indexes)-1] {
				return nil, errorf(f.off, "report index %d must be greater than %d", i, indexes[len(indexes)-1]+1)
			}
			indexes = append(indexes, i-1)
		}
		if len(indexes) < 2 {
			return nil, errorf(parts[0].off, "need at least two report indexes to compare")
		}

		var attrs []Attr
		for _, f := range split(parts[1].s, parts[1].off, ',') {
			key, label, ok := strings.Cut(f.s, "~")
			if !ok {
				return nil, errorf(f.off, "expected metric~label, found %q", f.s)
			}
			key, label = strings.TrimSpace(key), strings.TrimSpace(label)
			if key == "" || label == "" {
				return nil, errorf(f.off, "empty metric or label in %q", f.s)
			}
			attrs = append(attrs, Attr{key, label})
			if !seenLabel[label] {
				seenLabel[label] = true
				p.labels = append(p.labels, label)
			}
		}

		// Each report is compared against its predecessor in the chain.
		for j := 1; j < len(indexes); j++ {
			p.add(indexes[j], indexes[j-1], attrs)
		}
	}
	return p, nil
}

func (p *Plan) add(target, baseline int, attrs []Attr) {
	for _, c := range p.comps[target] {
		if c.Baseline == baseline {
			c.Attrs = append(c.Attrs, attrs...)
			return
		}
	}
	c := &Comparison{Baseline: baseline, Attrs: append([]Attr(nil), attrs...)}
	p.comps[target] = append(p.comps[target], c)
}

// Comparisons returns the comparisons whose target is the report at
// 0-based index target.
func (p *Plan) Comparisons(target int) []*Comparison {
	return p.comps[target]
}

// Labels returns the distinct delta labels of p, in the order they first
// appear in the expression.
func (p *Plan) Labels() []string {
	return append([]string(nil), p.labels...)
}

// A span is a substring of an expression and its byte offset in the
// whole expression.
type span struct {
	s   string
	off int
}

// split splits s around each instance of sep and trims white space from
// each field. off is the offset of s in the whole expression.
func split(s string, off int, sep byte) []span {
	var out []span
	for {
		i := strings.IndexByte(s, sep)
		field := s
		if i >= 0 {
			field = s[:i]
		}
		trimmed := strings.TrimLeftFunc(field, unicode.IsSpace)
		lead := len(field) - len(trimmed)
		out = append(out, span{strings.TrimRightFunc(trimmed, unicode.IsSpace), off + lead})
		if i < 0 {
			return out
		}
		s, off = s[i+1:], off+i+1
	}
}
