// Package execx runs external tools and reports their exit status.
//
// The harness treats every tool as opaque: it captures stdout, surfaces
// stderr on failure, and never inspects output beyond the exit code.
// Invocations block until the child exits; there is no timeout, so a hung
// tool stalls the whole run. That matches the corpus-driver contract and
// is deliberately not re-architected here.
package execx

import (
	"bytes"
	"errors"
	"io"
	"os"
	"os/exec"
	"strings"

	"souftest/internal/logging"
)

// Result carries the exit code of a finished invocation plus the raw error
// from os/exec, if any. Code is 0 on success.
type Result struct {
	Code int
	Err  error
}

// Ok reports whether the invocation exited zero.
func (r Result) Ok() bool { return r.Code == 0 }

// Run executes name with args, blocking until it exits. It returns the
// captured stdout and the exit Result. On a non-zero exit any captured
// stderr is written verbatim to os.Stderr.
func Run(name string, args ...string) (string, Result) {
	return RunTo(os.Stderr, name, args...)
}

// RunTo is Run with an explicit diagnostic writer for the child's stderr.
// Stderr is only forwarded when the child exits non-zero; a noisy tool that
// succeeds stays quiet.
func RunTo(diag io.Writer, name string, args ...string) (string, Result) {
	log := logging.New("execx")
	log.Debug("running command", "cmd", name+" "+strings.Join(args, " "))

	cmd := exec.Command(name, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	code := 0
	if err != nil {
		var ee *exec.ExitError
		if errors.As(err, &ee) {
			code = ee.ExitCode()
		} else {
			// Launch failure (tool missing, not executable, ...).
			code = 1
		}
	}

	if code != 0 && stderr.Len() > 0 && diag != nil {
		_, _ = diag.Write(stderr.Bytes())
	}

	return stdout.String(), Result{Code: code, Err: err}
}
