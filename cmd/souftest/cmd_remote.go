package main

import (
	"github.com/spf13/cobra"

	"souftest/internal/config"
	"souftest/internal/discover"
	"souftest/internal/harness"
	"souftest/internal/svn"
)

var remoteFlags struct {
	configPath string
	url        string
	ext        string
	limit      int
	keep       bool
	converter  string
	compiler   string
	libPath    string
	format     string
	svnBin     string
}

var remoteCmd = &cobra.Command{
	Use:   "remote",
	Short: "Export and run cases from the remote corpus",
	Long: `List the remote corpus with an svn-compatible client, export each case
directory that is not already present locally, and run it through convert
and compile. The input filename is derived from the directory name
(<name>.<ext>). Exported directories are removed again when their case
passes, and kept for postmortem when it fails.

An unreachable corpus is not an error: remote testing is skipped and the
run terminates normally. At most --limit cases are attempted.`,
	Args: cobra.NoArgs,
	RunE: runRemote,
}

func init() {
	f := remoteCmd.Flags()
	f.StringVar(&remoteFlags.configPath, "config", "", "Path to harness config file (YAML/JSON)")
	f.StringVar(&remoteFlags.url, "url", "", "Remote corpus URL (default from config)")
	f.StringVar(&remoteFlags.ext, "ext", "", "Input extension derived from the case name (default from config)")
	f.IntVar(&remoteFlags.limit, "limit", 0, "Attempted-case ceiling, 0 = config default")
	f.BoolVar(&remoteFlags.keep, "keep", false, "Keep exported case directories even when they pass")
	f.StringVar(&remoteFlags.converter, "converter", "", "Conversion tool path (default from config)")
	f.StringVar(&remoteFlags.compiler, "compiler", "", "Compiler path (default from config)")
	f.StringVar(&remoteFlags.libPath, "lib", "", "Compiler library search path (default from config)")
	f.StringVar(&remoteFlags.format, "format", "line", "Summary format: line, table, or markdown")
	f.StringVar(&remoteFlags.svnBin, "svn-bin", "", "Version-control client binary (default from config)")
}

func runRemote(cmd *cobra.Command, args []string) error {
	cfg := config.Default()
	if remoteFlags.configPath != "" {
		loaded, err := config.LoadFromPath(remoteFlags.configPath)
		if err != nil {
			return err
		}
		cfg = *loaded
	}
	if remoteFlags.url != "" {
		cfg.RemoteURL = remoteFlags.url
	}
	if remoteFlags.ext != "" {
		cfg.RemoteExt = remoteFlags.ext
	}
	if remoteFlags.limit > 0 {
		cfg.RemoteLimit = remoteFlags.limit
	}
	if remoteFlags.converter != "" {
		cfg.Converter = remoteFlags.converter
	}
	if remoteFlags.compiler != "" {
		cfg.Compiler = remoteFlags.compiler
	}
	if remoteFlags.libPath != "" {
		cfg.LibPath = remoteFlags.libPath
	}
	if remoteFlags.svnBin != "" {
		cfg.SvnBin = remoteFlags.svnBin
	}

	runner := &harness.Runner{
		Converter: cfg.Converter,
		Compiler:  cfg.Compiler,
		LibPath:   cfg.LibPath,
		Dialect:   cfg.Dialect,
	}
	remote := &discover.Remote{
		Client: svn.CLI{Bin: cfg.SvnBin},
		Run:    runner,
		URL:    cfg.RemoteURL,
		Ext:    cfg.RemoteExt,
		Limit:  cfg.RemoteLimit,
		Keep:   remoteFlags.keep,
	}

	out, err := remote.Discover(harness.Tally{})
	if err != nil {
		return err
	}

	printResults(cmd.OutOrStdout(), remoteFlags.format, out.Tally, out.Results)
	if !out.Tally.AllPassed() {
		return errCasesFailed
	}
	return nil
}
