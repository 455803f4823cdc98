// Package discover finds test cases and feeds them through a CaseRunner.
// Local discovery walks the corpus directory the harness was started from;
// remote discovery exports cases from a version-controlled corpus.
package discover

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"souftest/internal/harness"
	"souftest/internal/logging"
)

// Local runs every case directory under root whose name contains marker,
// using the fixed input filename. Plain files and non-matching directories
// are skipped. Iteration order is whatever the filesystem reports; nothing
// may depend on it.
func Local(run harness.CaseRunner, root, marker, input string) (harness.Tally, []harness.CaseResult, error) {
	log := logging.New("discover")

	entries, err := os.ReadDir(root)
	if err != nil {
		return harness.Tally{}, nil, fmt.Errorf("list corpus dir: %w", err)
	}

	var tally harness.Tally
	var results []harness.CaseResult
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		if !strings.Contains(e.Name(), marker) {
			continue
		}
		c := harness.Case{Dir: filepath.Join(root, e.Name()), Input: input}
		v, err := run.Run(c)
		if err != nil {
			log.Warn("case setup failed", "dir", c.Dir, "err", err)
		}
		tally.Add(v)
		results = append(results, harness.CaseResult{Case: c, Verdict: v})
	}
	return tally, results, nil
}
