package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"souftest/internal/config"
	"souftest/internal/discover"
	"souftest/internal/harness"
	"souftest/internal/report"
	"souftest/internal/svn"
)

var runFlags struct {
	configPath string
	dir        string
	marker     string
	input      string
	converter  string
	compiler   string
	libPath    string
	format     string
	remote     bool
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the local example corpus through convert and compile",
	Long: `Run every case directory under --dir whose name contains the marker
substring. Each case is converted in place and the converted file is fed to
the compiler; a case passes when both tools exit zero.

The process exits non-zero when any case failed. A summary line is always
printed, even when every case fails.`,
	Args: cobra.NoArgs,
	RunE: runRun,
}

func init() {
	f := runCmd.Flags()
	f.StringVar(&runFlags.configPath, "config", "", "Path to harness config file (YAML/JSON)")
	f.StringVar(&runFlags.dir, "dir", ".", "Corpus directory holding the case directories")
	f.StringVar(&runFlags.marker, "marker", "", "Case directory name substring (default from config)")
	f.StringVar(&runFlags.input, "input", "", "Input filename inside each case dir (default from config)")
	f.StringVar(&runFlags.converter, "converter", "", "Conversion tool path (default from config)")
	f.StringVar(&runFlags.compiler, "compiler", "", "Compiler path (default from config)")
	f.StringVar(&runFlags.libPath, "lib", "", "Compiler library search path (default from config)")
	f.StringVar(&runFlags.format, "format", "line", "Summary format: line, table, or markdown")
	f.BoolVar(&runFlags.remote, "remote", false, "Also run the remote corpus after local cases")
}

// loadRunConfig resolves the effective config: file (if given), then
// defaults, then explicit flag overrides on top.
func loadRunConfig() (*config.Config, error) {
	cfg := config.Default()
	if runFlags.configPath != "" {
		loaded, err := config.LoadFromPath(runFlags.configPath)
		if err != nil {
			return nil, err
		}
		cfg = *loaded
	}
	if runFlags.marker != "" {
		cfg.Marker = runFlags.marker
	}
	if runFlags.input != "" {
		cfg.Input = runFlags.input
	}
	if runFlags.converter != "" {
		cfg.Converter = runFlags.converter
	}
	if runFlags.compiler != "" {
		cfg.Compiler = runFlags.compiler
	}
	if runFlags.libPath != "" {
		cfg.LibPath = runFlags.libPath
	}
	return &cfg, nil
}

func runRun(cmd *cobra.Command, args []string) error {
	cfg, err := loadRunConfig()
	if err != nil {
		return err
	}

	runner := &harness.Runner{
		Converter: cfg.Converter,
		Compiler:  cfg.Compiler,
		LibPath:   cfg.LibPath,
		Dialect:   cfg.Dialect,
	}

	tally, results, err := discover.Local(runner, runFlags.dir, cfg.Marker, cfg.Input)
	if err != nil {
		return err
	}

	if runFlags.remote {
		remote := &discover.Remote{
			Client: svn.CLI{Bin: cfg.SvnBin},
			Run:    runner,
			URL:    cfg.RemoteURL,
			Ext:    cfg.RemoteExt,
			Limit:  cfg.RemoteLimit,
		}
		out, err := remote.Discover(tally)
		if err != nil {
			return err
		}
		tally = tally.Merge(out.Tally)
		results = append(results, out.Results...)
	}

	printResults(cmd.OutOrStdout(), runFlags.format, tally, results)
	if !tally.AllPassed() {
		return errCasesFailed
	}
	return nil
}

// printResults writes the optional per-case table followed by the summary
// line. The summary line is always last and always present.
func printResults(w io.Writer, format string, tally harness.Tally, results []harness.CaseResult) {
	switch format {
	case "table":
		if len(results) > 0 {
			fmt.Fprintln(w, report.Table(report.ASCII, results))
		}
	case "markdown":
		if len(results) > 0 {
			fmt.Fprintln(w, report.Table(report.Markdown, results))
		}
	}
	fmt.Fprintln(w, report.Summary(tally))
}
