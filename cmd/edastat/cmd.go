// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/edastat/edastat/edafmt"
	"github.com/edastat/edastat/edastat"
	"github.com/edastat/edastat/edatab"
)

// runEdastat runs the command line args, writing the text table to stdout
// and logs and flow output to stderr.
func runEdastat(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cmd := newRootCmd(stdout, stderr)
	cmd.SetArgs(args)
	return cmd.ExecuteContext(ctx)
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "edastat",
		Short:         "Compare metrics extracted from EDA flow reports",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd.Context(), cmd.Flags(), stdout, stderr)
		},
	}
	cmd.SetOut(stderr)
	cmd.SetErr(stderr)

	def := edastat.DefaultConfig()
	f := cmd.Flags()
	f.String("working-dir", "./", "directory relative paths are resolved against")
	f.String("reports-dir", def.ReportsDir, "root of the report tree")
	f.Bool("no-run-flow", false, "collect existing reports without running the flow")
	f.String("platform", def.Platform, "technology platform (e.g. nangate45, tsmc65lp)")
	f.String("stage", def.Stage, "flow stage to run (e.g. synth, floorplan, place)")
	f.String("designs", strings.Join(def.Designs, ","), "comma-separated `list` of designs")
	f.String("reports", def.Reports, "comma-separated `list` of report files, each optionally followed by :title")
	f.String("compare", def.Compare, "delta `expression`: indexes:metric~label,...;...")
	f.String("extractor", def.Extractor, "report `format`: "+strings.Join(edafmt.Names(), ", "))
	f.Bool("no-color-delta", false, "do not color increases green and decreases red")
	f.String("clean-command", def.CleanCommand, "make `target` that cleans the designs")
	f.Bool("no-clean", false, "do not clean before running the flow")
	f.Bool("excel", false, "write <out>.xlsx")
	f.Bool("xlsx", false, "write <out>.xlsx")
	f.Bool("csv", false, "write <out>.csv")
	f.Bool("html", false, "write <out>.html")
	f.Bool("json", false, "write <out>.json")
	f.Bool("text", false, "print a text table to standard output")
	f.String("chart", "", "write a bar chart of `column` to <out>.png")
	f.Bool("summary", false, "add a mean row to each report")
	f.Bool("quiet", false, "suppress flow output and progress messages")
	f.StringP("out", "o", "./report", "output file `name` without extension")
	f.String("design-path-pattern", def.DesignPathPattern, "design configuration file `pattern`")
	f.String("make-cmd", def.MakeCommand, "make `command`")
	f.String("design-config-var", def.DesignConfigVar, "make `variable` naming the design configuration file")
	f.String("config", "", "read options from `file` (YAML, TOML, or JSON)")
	return cmd
}

// loadOptions merges the flags with the file named by --config, if any.
// Flags set on the command line take precedence.
func loadOptions(flags *pflag.FlagSet) (*viper.Viper, error) {
	v := viper.New()
	if err := v.BindPFlags(flags); err != nil {
		return nil, err
	}
	if path := v.GetString("config"); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}
	return v, nil
}

var designSep = regexp.MustCompile(`\s*[,:;]+\s*`)

// designList returns the designs option, given either as a separated
// string or as a list in a config file.
func designList(v *viper.Viper) []string {
	s, ok := v.Get("designs").(string)
	if !ok {
		return v.GetStringSlice("designs")
	}
	var designs []string
	for _, d := range designSep.Split(strings.TrimSpace(s), -1) {
		if d != "" {
			designs = append(designs, d)
		}
	}
	return designs
}

func newConfig(v *viper.Viper, flowOutput io.Writer) edastat.Config {
	cfg := edastat.DefaultConfig()
	cfg.WorkingDir = v.GetString("working-dir")
	cfg.ReportsDir = v.GetString("reports-dir")
	cfg.Platform = v.GetString("platform")
	cfg.Designs = designList(v)
	cfg.DesignPathPattern = v.GetString("design-path-pattern")
	cfg.Reports = v.GetString("reports")
	cfg.Compare = v.GetString("compare")
	cfg.Extractor = v.GetString("extractor")
	cfg.Summary = v.GetBool("summary")
	cfg.RunFlow = !v.GetBool("no-run-flow")
	cfg.Stage = v.GetString("stage")
	cfg.Clean = !v.GetBool("no-clean")
	cfg.CleanCommand = v.GetString("clean-command")
	cfg.MakeCommand = v.GetString("make-cmd")
	cfg.DesignConfigVar = v.GetString("design-config-var")
	cfg.FlowOutput = flowOutput
	cfg.Quiet = v.GetBool("quiet")
	return cfg
}

// An output is one file format to write.
type output struct {
	ext   string
	write func(w io.Writer, t *edastat.Table) error
}

func outputs(v *viper.Viper) []output {
	opts := edatab.Options{ColorDelta: !v.GetBool("no-color-delta")}
	var outs []output
	if v.GetBool("csv") {
		outs = append(outs, output{"csv", edatab.WriteCSV})
	}
	if v.GetBool("xlsx") || v.GetBool("excel") {
		outs = append(outs, output{"xlsx", func(w io.Writer, t *edastat.Table) error {
			return edatab.WriteXLSX(w, t, opts)
		}})
	}
	if v.GetBool("json") {
		outs = append(outs, output{"json", edatab.WriteJSON})
	}
	if v.GetBool("html") {
		outs = append(outs, output{"html", func(w io.Writer, t *edastat.Table) error {
			return edatab.WriteHTML(w, t, opts)
		}})
	}
	if col := v.GetString("chart"); col != "" {
		outs = append(outs, output{"png", func(w io.Writer, t *edastat.Table) error {
			return edatab.WriteChart(w, t, col)
		}})
	}
	if len(outs) == 0 && !v.GetBool("text") {
		outs = append(outs, output{"xlsx", func(w io.Writer, t *edastat.Table) error {
			return edatab.WriteXLSX(w, t, opts)
		}})
	}
	return outs
}

func run(ctx context.Context, flags *pflag.FlagSet, stdout, stderr io.Writer) error {
	v, err := loadOptions(flags)
	if err != nil {
		return err
	}
	logger := newLogger(stderr, v.GetBool("quiet"))
	ctx = logger.WithContext(ctx)

	cfg := newConfig(v, stderr)
	t, err := edastat.Run(ctx, cfg)
	if err != nil {
		return err
	}

	out := v.GetString("out")
	if !filepath.IsAbs(out) {
		out = filepath.Join(cfg.WorkingDir, out)
	}
	for _, o := range outputs(v) {
		path := out + "." + o.ext
		if err := writeFile(path, t, o.write); err != nil {
			return err
		}
		zerolog.Ctx(ctx).Info().Str("file", path).Msg("wrote report")
	}
	if v.GetBool("text") {
		return edatab.WriteText(stdout, t)
	}
	return nil
}

func writeFile(path string, t *edastat.Table, write func(io.Writer, *edastat.Table) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(f, t); err != nil {
		f.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return f.Close()
}
