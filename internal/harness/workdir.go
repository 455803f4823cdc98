package harness

import (
	"fmt"
	"os"

	"souftest/internal/logging"
)

// enterDir changes the working directory to dir and returns a restore func
// that switches back to the previous one. The working directory is the only
// process-wide state the harness mutates; callers must defer restore so the
// switch is scoped to a single case even when it fails midway.
func enterDir(dir string) (restore func(), err error) {
	prev, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("getwd: %w", err)
	}
	if err := os.Chdir(dir); err != nil {
		return nil, fmt.Errorf("enter case dir: %w", err)
	}
	return func() {
		if err := os.Chdir(prev); err != nil {
			// Nothing sensible to do mid-run; later cases will fail loudly.
			logging.New("harness").Error("restore working directory", "dir", prev, "err", err)
		}
	}, nil
}
