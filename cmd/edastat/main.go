// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Edastat collects metrics from the log files of an EDA flow and
// compares them across stages and designs.
//
// Usage:
//
//	edastat [flags]
//
// For each design, edastat optionally runs the flow up to --stage with
// make, then reads each of the --reports from
//
//	<reports-dir>/<platform>/<top module>/<report file>
//
// where the top module is the DESIGN_NAME exported by the design's
// configuration file. The metrics of every report are gathered into one
// table, with one group of rows per report and one row per design.
//
// The --reports flag lists the report files, each optionally followed by
// a colon and a title:
//
//	3_1_2_place_gp_dp.log:DP Only,3_2_a_2_place_resized.log:Resized
//
// The --compare flag adds delta columns. Each ;-separated chain names
// report indexes (from 1) and metric~label pairs; every report in a
// chain is compared to the one before it:
//
//	1,2,3:area~Area Change,dat~DAT Change;1,4:area~Area Change
//
// Output is written to <out>.xlsx unless other formats are requested
// with --xlsx, --csv, --html, --json, --chart, or --text. The text table
// goes to standard output.
//
// Options may also be given in a YAML, TOML, or JSON file named by
// --config, using the flag names as keys. Flags on the command line
// override the file.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/rs/zerolog"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := runEdastat(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	if err != nil {
		fmt.Fprintf(os.Stderr, "edastat: %s\n", err)
		os.Exit(1)
	}
}

// newLogger returns the console logger for a run.
func newLogger(w io.Writer, quiet bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if quiet {
		level = zerolog.WarnLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: w, NoColor: true, PartsExclude: []string{zerolog.TimestampFieldName}}).
		Level(level).With().Timestamp().Logger()
}
