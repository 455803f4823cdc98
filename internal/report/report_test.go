package report_test

import (
	"strings"
	"testing"

	"souftest/internal/harness"
	"souftest/internal/report"
)

func TestSummary_Wording(t *testing.T) {
	cases := []struct {
		tally harness.Tally
		want  string
	}{
		{harness.Tally{}, "Ran 0 out of which 0 passed"},
		{harness.Tally{Attempted: 1, Passed: 1}, "Ran 1 out of which 1 passed"},
		{harness.Tally{Attempted: 10, Passed: 7}, "Ran 10 out of which 7 passed"},
	}
	for _, c := range cases {
		if got := report.Summary(c.tally); got != c.want {
			t.Errorf("Summary(%+v) = %q, want %q", c.tally, got, c.want)
		}
	}
}

func TestTable_ASCII(t *testing.T) {
	results := []harness.CaseResult{
		{Case: harness.Case{Dir: "souffle_add", Input: "test.dl"}, Verdict: harness.Passed},
		{Case: harness.Case{Dir: "souffle_neg", Input: "test.dl"}, Verdict: harness.ConvertFailed},
	}
	out := report.Table(report.ASCII, results)

	if !strings.Contains(out, "souffle_add") {
		t.Errorf("expected case dir in table:\n%s", out)
	}
	if !strings.Contains(out, "conversion failed") {
		t.Errorf("expected verdict words in table:\n%s", out)
	}
	if !strings.Contains(out, "1/2 passed") {
		t.Errorf("expected totals footer in table:\n%s", out)
	}
	if !strings.Contains(out, "───") {
		t.Errorf("expected box-drawing characters in ASCII output:\n%s", out)
	}
}

func TestTable_Markdown(t *testing.T) {
	results := []harness.CaseResult{
		{Case: harness.Case{Dir: "souffle_add", Input: "test.dl"}, Verdict: harness.Passed},
	}
	out := report.Table(report.Markdown, results)

	if !strings.Contains(out, "| Case") {
		t.Errorf("expected markdown header:\n%s", out)
	}
	if !strings.Contains(out, "---") {
		t.Errorf("expected markdown separator:\n%s", out)
	}
}
