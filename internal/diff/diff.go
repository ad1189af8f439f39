// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package diff describes differences between expected and actual test
// output.
package diff

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
)

// Diff returns a unified diff from want to got, labeled "want" and
// "got", or "" if they are equal. If the diff command cannot be run, it
// returns both texts in full instead.
func Diff(want, got []byte) string {
	if string(want) == string(got) {
		return ""
	}
	fallback := func(why string) string {
		return fmt.Sprintf("%s\nwant:\n%sgot:\n%s", why, want, got)
	}
	if _, err := exec.LookPath("diff"); err != nil {
		return fallback("diff command unavailable")
	}

	dir, err := os.MkdirTemp("", "edastat-diff")
	if err != nil {
		return fallback(err.Error())
	}
	defer os.RemoveAll(dir)
	for name, data := range map[string][]byte{"want": want, "got": got} {
		if err := os.WriteFile(filepath.Join(dir, name), data, 0o666); err != nil {
			return fallback(err.Error())
		}
	}

	cmd := exec.Command("diff", "-Nu", "want", "got")
	cmd.Dir = dir
	data, err := cmd.CombinedOutput()
	if len(data) == 0 {
		// diff exits non-zero when the files differ, so only a
		// silent failure is an error.
		why := "diff produced no output"
		if err != nil {
			why = err.Error()
		}
		return fallback(why)
	}
	return string(data)
}
