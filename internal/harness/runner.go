package harness

import (
	"souftest/internal/execx"
	"souftest/internal/logging"
)

// Runner executes cases against a fixed pair of external tools. Tool paths
// are resolved relative to the directory the harness was started from, so
// the scoped chdir into the case directory is what makes `../../tools/...`
// style paths work.
type Runner struct {
	Converter string // conversion tool path
	Compiler  string // compiler under test
	LibPath   string // compiler -L argument
	Dialect   string // target dialect; converter arg and converted-file stem
}

// Run executes one case: enter the case directory, convert, then compile.
// The compiler only runs after a clean conversion. The previous working
// directory is restored on every exit path. The returned error is reserved
// for infrastructure problems (unreachable case directory); tool failures
// are verdicts, not errors.
func (r *Runner) Run(c Case) (Verdict, error) {
	log := logging.New("harness")
	log.Info("testing case", "dir", c.Dir, "input", c.Input)

	restore, err := enterDir(c.Dir)
	if err != nil {
		return SetupFailed, err
	}
	defer restore()

	if _, res := execx.Run(r.Converter, c.Input, r.Dialect); !res.Ok() {
		log.Debug("conversion failed", "dir", c.Dir, "code", res.Code)
		return ConvertFailed, nil
	}

	converted := r.Dialect + ".dl"
	if _, res := execx.Run(r.Compiler, "-i", converted, "-L", r.LibPath); !res.Ok() {
		log.Debug("compilation failed", "dir", c.Dir, "code", res.Code)
		return CompileFailed, nil
	}

	return Passed, nil
}
