// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package edastat

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/edastat/edastat/edafmt"
	"github.com/edastat/edastat/edaflow"
	"github.com/edastat/edastat/edaproc"
)

// Config holds every option of a report run.
type Config struct {
	// WorkingDir is the directory relative paths are resolved
	// against. If empty, the current directory is used.
	WorkingDir string

	// ReportsDir is the root of the report tree. Reports live at
	// ReportsDir/Platform/<top module>/<report file>.
	ReportsDir string

	Platform string

	// Designs lists the designs to collect, in row order.
	Designs []string

	// DesignPathPattern maps a design and platform to the design's
	// configuration file; see edaflow.DesignConfigPath.
	DesignPathPattern string

	// Reports is the report list; see edaproc.ParseCatalog.
	Reports string

	// Compare is the comparison expression; see edaproc.ParsePlan.
	Compare string

	// Extractor names the edafmt extractor for the reports. If
	// empty, it defaults to "timing".
	Extractor string

	// Summary adds a mean row to each report's group.
	Summary bool

	// RunFlow regenerates the reports by running the flow for each
	// design before collecting them.
	RunFlow         bool
	Stage           string
	Clean           bool
	CleanCommand    string
	MakeCommand     string
	DesignConfigVar string

	// FlowOutput receives the flow's output. If nil or if Quiet is
	// set, it is discarded.
	FlowOutput io.Writer
	Quiet      bool
}

// DefaultConfig returns the configuration used when no options are
// given.
func DefaultConfig() Config {
	return Config{
		WorkingDir:        ".",
		ReportsDir:        "./logs",
		Platform:          "nangate45",
		Designs:           []string{"gcd", "aes", "ibex", "swerv"},
		DesignPathPattern: "./designs/{}_{}.mk",
		Reports:           DefaultReports,
		Compare:           DefaultCompare,
		Extractor:         "timing",
		RunFlow:           true,
		Stage:             "place",
		Clean:             true,
		CleanCommand:      "clean_all",
		MakeCommand:       "make",
		DesignConfigVar:   "DESIGN_CONFIG",
	}
}

// DefaultReports is an example report list of placement stages.
const DefaultReports = "3_1_2_place_gp_dp.log:DP Only," +
	"3_2_a_2_place_resized.log: Resize + Buffer -> DP," +
	"3_2_a_4_place_resized_cloned.log: Resize + Buffer -> DP -> Gate Cloning -> DP," +
	"3_2_b_2_place_cloned.log:Gate Cloning -> DP," +
	"3_2_b_4_place_cloned_resized.log: Gate Cloning -> DP -> Resize + Buffer -> DP"

// DefaultCompare is an example comparison expression over
// DefaultReports.
const DefaultCompare = "1,2,3:area~Area Change,dat~DAT Change,violations~Violations Change;" +
	"1,4,5:area~Area Change,dat~DAT Change,violations~Violations Change"

func (cfg *Config) path(p string) string {
	if cfg.WorkingDir == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(cfg.WorkingDir, p)
}

// Run runs the flow if requested, extracts every report of every design,
// and assembles the comparison table. Any failure aborts the whole run.
func Run(ctx context.Context, cfg Config) (*Table, error) {
	log := zerolog.Ctx(ctx)

	catalog, err := edaproc.ParseCatalog(cfg.Reports)
	if err != nil {
		return nil, fmt.Errorf("parsing reports: %w", err)
	}
	plan, err := edaproc.ParsePlan(cfg.Compare, catalog.Len())
	if err != nil {
		return nil, fmt.Errorf("parsing comparisons: %w", err)
	}
	name := cfg.Extractor
	if name == "" {
		name = "timing"
	}
	x, err := edafmt.Lookup(name)
	if err != nil {
		return nil, err
	}
	if len(cfg.Designs) == 0 {
		return nil, fmt.Errorf("no designs")
	}
	c := &Collection{
		Catalog:    catalog,
		Plan:       plan,
		Extractor:  x,
		Designs:    cfg.Designs,
		AddSummary: cfg.Summary,
	}
	if err := c.Check(); err != nil {
		return nil, err
	}

	if cfg.RunFlow {
		output := cfg.FlowOutput
		if cfg.Quiet {
			output = nil
		}
		runner := &edaflow.Runner{
			Make:        cfg.MakeCommand,
			Stage:       cfg.Stage,
			Clean:       cfg.Clean,
			CleanTarget: cfg.CleanCommand,
			ConfigVar:   cfg.DesignConfigVar,
			Dir:         cfg.WorkingDir,
			Output:      output,
		}
		for _, design := range cfg.Designs {
			log.Info().Str("design", design).Str("platform", cfg.Platform).Str("stage", cfg.Stage).Msg("running flow")
			configFile := edaflow.DesignConfigPath(cfg.DesignPathPattern, design, cfg.Platform)
			if err := runner.Run(ctx, configFile); err != nil {
				return nil, fmt.Errorf("design %s: %w", design, err)
			}
		}
	}

	for _, design := range cfg.Designs {
		configFile := cfg.path(edaflow.DesignConfigPath(cfg.DesignPathPattern, design, cfg.Platform))
		top, err := edaflow.TopModule(configFile)
		if err != nil {
			return nil, fmt.Errorf("design %s: %w", design, err)
		}
		for _, report := range catalog.Reports() {
			path := cfg.path(edaflow.ReportPath(cfg.ReportsDir, cfg.Platform, top, report.File))
			log.Debug().Str("design", design).Str("report", path).Msg("extracting report")
			data, err := os.ReadFile(path)
			if err != nil {
				return nil, fmt.Errorf("design %s: %w", design, err)
			}
			rec, err := x.Parse(path, data)
			if err != nil {
				return nil, fmt.Errorf("design %s: %w", design, err)
			}
			if err := c.Add(report.Index, design, rec); err != nil {
				return nil, fmt.Errorf("design %s: %w", design, err)
			}
		}
	}
	return c.Table()
}
