// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package edaflow drives the external build flow that produces EDA
// reports, and locates the reports it produced.
package edaflow

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"

	"github.com/rs/zerolog"
)

// A Runner runs one stage of a make-based flow for a design.
type Runner struct {
	// Make is the make command. If empty, it defaults to "make".
	Make string

	// Stage is the make target to build.
	Stage string

	// Clean, if set, runs CleanTarget before Stage.
	Clean       bool
	CleanTarget string

	// ConfigVar is the environment variable that tells the flow which
	// design configuration file to use.
	ConfigVar string

	// Dir is the directory to run the flow in. If empty, it runs in
	// the current directory.
	Dir string

	// Output receives the flow's combined stdout and stderr, line by
	// line. If nil, the output is discarded.
	Output io.Writer
}

// An ExitError reports a flow command that exited unsuccessfully.
type ExitError struct {
	Cmd  string
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("command %q exited with status %d", e.Cmd, e.Code)
}

// Command returns the shell command r runs.
func (r *Runner) Command() string {
	mk := r.Make
	if mk == "" {
		mk = "make"
	}
	cmd := fmt.Sprintf("%s %s", mk, r.Stage)
	if r.Clean {
		cmd = fmt.Sprintf("%s %s && %s", mk, r.CleanTarget, cmd)
	}
	return cmd
}

// Run runs the flow for the design configured by configFile and streams
// its output until it exits. A non-zero exit is reported as an
// *ExitError.
func (r *Runner) Run(ctx context.Context, configFile string) error {
	line := r.Command()
	cmd := exec.CommandContext(ctx, "sh", "-c", line)
	cmd.Dir = r.Dir
	cmd.Env = os.Environ()
	if r.ConfigVar != "" {
		cmd.Env = append(cmd.Env, r.ConfigVar+"="+configFile)
	}

	pr, pw := io.Pipe()
	cmd.Stdout = pw
	cmd.Stderr = pw

	zerolog.Ctx(ctx).Debug().Str("cmd", line).Str("config", configFile).Msg("starting flow")
	if err := cmd.Start(); err != nil {
		pw.Close()
		pr.Close()
		return fmt.Errorf("starting %q: %w", line, err)
	}
	waitc := make(chan error, 1)
	go func() {
		err := cmd.Wait()
		pw.Close()
		waitc <- err
	}()

	out := r.Output
	if out == nil {
		out = io.Discard
	}
	s := bufio.NewScanner(pr)
	s.Buffer(nil, 1<<20)
	var werr error
	for s.Scan() {
		if werr == nil {
			_, werr = fmt.Fprintf(out, "%s\n", s.Bytes())
		}
	}
	serr := s.Err()
	// Drain anything left after a scan error so the flow can finish.
	io.Copy(io.Discard, pr)
	err := <-waitc

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return &ExitError{Cmd: line, Code: exitErr.ExitCode()}
	} else if err != nil {
		return fmt.Errorf("running %q: %w", line, err)
	}
	if serr != nil {
		return fmt.Errorf("reading output of %q: %w", line, serr)
	}
	return werr
}
