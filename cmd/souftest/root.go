// souftest drives a conversion-and-compile pipeline over a corpus of
// Souffle Datalog examples: each case is converted with an external
// converter, fed to the ddlog compiler, and counted as passed or failed.
//
// Usage:
//
//	souftest run    [--dir=<corpus>] [--remote] [--format=table]
//	souftest remote [--url=<corpus-url>] [--limit=10] [--keep]
package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"souftest/internal/logging"
)

// version is set at build time via -ldflags.
var version = "dev"

// errCasesFailed marks a run that completed and printed its summary but had
// at least one failing case. main turns it into a non-zero exit without
// re-printing anything.
var errCasesFailed = errors.New("one or more cases failed")

var rootFlags struct {
	debug     bool
	logFormat string
}

var rootCmd = &cobra.Command{
	Use:   "souftest",
	Short: "Test harness for the Souffle-to-DDlog conversion pipeline",
	Long: "Souftest discovers Souffle example programs, converts each with the\n" +
		"souffle converter, compiles the result with ddlog, and reports how many\n" +
		"cases passed. Tools are opaque: only exit codes decide the verdict.",
	SilenceErrors: true,
	SilenceUsage:  true,
	CompletionOptions: cobra.CompletionOptions{
		HiddenDefaultCmd: true,
	},
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelInfo
		if rootFlags.debug {
			level = slog.LevelDebug
		}
		logging.Init(level, rootFlags.logFormat)
	},
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.BoolVar(&rootFlags.debug, "debug", false, "Enable debug logging")
	pf.StringVar(&rootFlags.logFormat, "log-format", "text", "Log format: text or json")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(remoteCmd)
	rootCmd.Version = version
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, errCasesFailed) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}
