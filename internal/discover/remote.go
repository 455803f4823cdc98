package discover

import (
	"os"

	"souftest/internal/harness"
	"souftest/internal/logging"
	"souftest/internal/svn"
)

// Remote discovers cases in a remote corpus. Each listed directory is
// exported into the current directory unless a copy already exists, run as
// a case with input `<name>.<ext>`, and removed again when it passes.
// Failed exports are kept on disk for postmortem.
type Remote struct {
	Client svn.Client
	Run    harness.CaseRunner
	URL    string
	Ext    string // input extension derived from the directory name
	Limit  int    // run-wide attempted ceiling; <=0 means unlimited
	Keep   bool   // keep exported directories even when the case passes
}

// Outcome is the result of one remote discovery pass. Unavailable marks a
// failed corpus listing: the remote side could not be reached, which the
// harness treats as "skip remote testing", not as an error.
type Outcome struct {
	Unavailable bool
	Tally       harness.Tally
	Results     []harness.CaseResult
}

// Discover lists the remote corpus and runs exported cases until the
// run-wide attempted count (start plus remote cases) reaches the ceiling.
// The ceiling bounds run time against an externally-controlled corpus.
func (r *Remote) Discover(start harness.Tally) (Outcome, error) {
	log := logging.New("discover")

	names, err := r.Client.List(r.URL)
	if err != nil {
		log.Warn("remote corpus unavailable; skipping remote tests", "url", r.URL, "err", err)
		return Outcome{Unavailable: true}, nil
	}

	out := Outcome{}
	attempted := start.Attempted
	for _, name := range names {
		if r.Limit > 0 && attempted >= r.Limit {
			log.Info("attempted ceiling reached; stopping remote discovery", "limit", r.Limit)
			break
		}

		exported := false
		if _, err := os.Stat(name); err != nil {
			if err := r.Client.Export(r.URL + "/" + name); err != nil {
				log.Warn("export failed; skipping case", "name", name, "err", err)
				continue
			}
			exported = true
		}

		c := harness.Case{Dir: name, Input: name + "." + r.Ext}
		v, err := r.Run.Run(c)
		if err != nil {
			log.Warn("case setup failed", "dir", c.Dir, "err", err)
		}
		out.Tally.Add(v)
		attempted++
		out.Results = append(out.Results, harness.CaseResult{Case: c, Verdict: v})

		if v == harness.Passed && exported && !r.Keep {
			if err := os.RemoveAll(name); err != nil {
				log.Warn("cleanup of exported case failed", "name", name, "err", err)
			}
		}
	}
	return out, nil
}
