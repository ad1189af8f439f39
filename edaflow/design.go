// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package edaflow

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

// DesignConfigPath expands a design configuration path pattern for a
// design and platform. Positional "{}" placeholders are replaced by the
// design, then the platform; "{design}" and "{platform}" may be used
// instead.
func DesignConfigPath(pattern, design, platform string) string {
	r := strings.NewReplacer("{design}", design, "{platform}", platform)
	s := r.Replace(pattern)
	for _, v := range []string{design, platform} {
		s = strings.Replace(s, "{}", v, 1)
	}
	return s
}

var designNameRE = regexp.MustCompile(`(?im)^\s*export\s+DESIGN_NAME\s*[:?]?=\s*(\w+)`)

// TopModule returns the top module name declared by the
// "export DESIGN_NAME = name" line of a design configuration file.
func TopModule(configFile string) (string, error) {
	data, err := os.ReadFile(configFile)
	if err != nil {
		return "", err
	}
	m := designNameRE.FindSubmatch(data)
	if m == nil {
		return "", fmt.Errorf("%s: no DESIGN_NAME declaration", configFile)
	}
	return string(m[1]), nil
}

// ReportPath returns the path of a report file produced by the flow for
// a top module on a platform.
func ReportPath(reportsDir, platform, top, file string) string {
	return filepath.Join(reportsDir, platform, top, file)
}
