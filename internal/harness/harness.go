// Package harness runs a single conversion-and-compile case and keeps the
// run totals. A case is one example directory: the converter rewrites its
// input into the target dialect, then the compiler under test must accept
// the converted file. Only exit codes decide the verdict.
package harness

import "fmt"

// Case is one example program: a directory plus the input filename inside it.
type Case struct {
	Dir   string
	Input string
}

// Verdict is the outcome of one case.
type Verdict int

const (
	Passed        Verdict = iota // both tools exited zero
	SetupFailed                  // case directory could not be entered
	ConvertFailed                // conversion tool exited non-zero
	CompileFailed                // compiler exited non-zero after a clean conversion
)

func (v Verdict) String() string {
	switch v {
	case Passed:
		return "passed"
	case SetupFailed:
		return "setup failed"
	case ConvertFailed:
		return "conversion failed"
	case CompileFailed:
		return "compilation failed"
	default:
		return fmt.Sprintf("verdict(%d)", int(v))
	}
}

// CaseResult pairs a case with its verdict, for end-of-run reporting.
type CaseResult struct {
	Case    Case
	Verdict Verdict
}

// Tally is the explicit run accumulator. It replaces process-wide counters:
// discovery components build a Tally and the entry point combines them.
type Tally struct {
	Attempted int
	Passed    int
}

// Add records one finished case. Every case counts as attempted exactly
// once; only a Passed verdict counts as passed.
func (t *Tally) Add(v Verdict) {
	t.Attempted++
	if v == Passed {
		t.Passed++
	}
}

// Merge returns the combination of two tallies.
func (t Tally) Merge(o Tally) Tally {
	return Tally{Attempted: t.Attempted + o.Attempted, Passed: t.Passed + o.Passed}
}

// AllPassed reports whether no attempted case failed.
func (t Tally) AllPassed() bool { return t.Passed == t.Attempted }

// CaseRunner runs one case to a verdict. Discovery components depend on
// this interface so tests can substitute a stub.
type CaseRunner interface {
	Run(c Case) (Verdict, error)
}
