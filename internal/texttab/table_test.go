// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package texttab

import (
	"strings"
	"testing"
)

func TestAlign(t *testing.T) {
	check := func(s string, a align, w int, want string) {
		t.Helper()
		if got := a.lpad(s, w); got != want {
			t.Errorf("want %q, got %q", want, got)
		}
	}

	check("abc", alignLeft, 10, "abc")
	check("abc", alignRight, 10, "       abc")
	check("☃", alignRight, 4, "   ☃")
}

func TestTable(t *testing.T) {
	var tab Table
	check := func(want string) {
		t.Helper()
		var gotBuf strings.Builder
		if err := tab.Format(&gotBuf); err != nil {
			t.Fatal(err)
		}
		if got := gotBuf.String(); want != got {
			t.Errorf("want:\n%sgot:\n%s", want, got)
		}
		tab = Table{}
	}

	// Basic cell padding, with no spaces at the ends of lines.
	tab.Row().Cell("a").Cell("b").Cell("c")
	tab.Row().Cell("long").Cell("e").Cell("long")
	check("a    b c\nlong e long\n")

	tab.Row().Cell("a", Left).Cell("b", Right)
	tab.Row().Cell("xxx").Cell("xxx")
	check("a     b\nxxx xxx\n")

	// Table margin and per-cell override.
	tab.Margin = "  "
	tab.Row().Cell("a").Cell("b")
	tab.Row().Cell("c").Cell("d", LeftMargin("|"))
	check("a  b\nc |d\n")

	// Empty cells print nothing, even with a margin.
	tab.Margin = "  "
	tab.Row().Cell("Design").Cell("Area").Cell("Change")
	tab.Row().Cell("gcd").Cell("500", Right).Cell("")
	tab.Row().Cell("aes").Cell("", Right).Cell("+1", Right)
	check("Design  Area  Change\ngcd      500\naes               +1\n")

	// Missing cell in the middle.
	tab.Row().Cell("a").Col(2).Cell("c")
	tab.Row().Cell("d").Cell("e").Cell("f")
	check("a   c\nd e f\n")

	// Spans expanding other cells.
	tab.Row().Cell("a").Cell("b")
	tab.Row().Span(2, "abcdefg")
	check("a   b\nabcdefg\n")

	// Other cells expanding spans.
	tab.Row().Cell("abc").Cell("def")
	tab.Row().Span(2, "a", Right)
	check("abc def\n      a\n")
}

func TestTitle(t *testing.T) {
	var tab Table
	tab.Margin = "  "
	tab.Title("A long report title")
	tab.Row().Cell("Design").Cell("Area")
	tab.Row().Cell("gcd").Cell("500", Right)
	tab.Row()
	tab.Title("place")
	tab.Row().Cell("Design").Cell("Area")
	tab.Row().Cell("aes").Cell("9000", Right)

	var buf strings.Builder
	if err := tab.Format(&buf); err != nil {
		t.Fatal(err)
	}
	// The title does not widen the columns.
	want := `A long report title
Design  Area
gcd      500

place
Design  Area
aes     9000
`
	if got := buf.String(); got != want {
		t.Errorf("want:\n%sgot:\n%s", want, got)
	}
}

func TestTitleOnly(t *testing.T) {
	var tab Table
	tab.Title("empty")
	var buf strings.Builder
	if err := tab.Format(&buf); err != nil {
		t.Fatal(err)
	}
	if got, want := buf.String(), "empty\n"; got != want {
		t.Errorf("want %q, got %q", want, got)
	}
}
