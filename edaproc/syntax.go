// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package edaproc

import (
	"fmt"
	"unicode"
)

// A SyntaxError reports a malformed input to ParseCatalog (the report
// list) or ParsePlan (the comparison expression). Both point Off at the
// field that failed, so the same caret rendering serves either input.
type SyntaxError struct {
	Expr string // The report list or comparison expression
	Off  int    // Byte offset of the bad field in Expr
	Msg  string
}

// Error returns the message followed by Expr and a caret under the bad
// field.
func (e *SyntaxError) Error() string {
	return fmt.Sprintf("syntax error: %s\n\t%s\n\t%*s^", e.Msg, e.Expr, e.column(), "")
}

// column returns the number of printable runes before Off.
func (e *SyntaxError) column() int {
	col := 0
	for i, r := range e.Expr {
		if i >= e.Off {
			break
		}
		if unicode.IsGraphic(r) {
			col++
		}
	}
	return col
}
