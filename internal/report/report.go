// Package report renders the end-of-run summary. The one-line totals format
// is stable and scripted against; the per-case table is a human-facing
// extra that renders as a terminal table or Markdown.
package report

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"souftest/internal/harness"
)

// Mode controls the table output format.
type Mode int

const (
	ASCII    Mode = iota // fixed-width terminal table
	Markdown             // GitHub-flavoured Markdown table
)

// Summary is the canonical one-line run summary. Keep the wording stable:
// downstream scripts grep for it.
func Summary(t harness.Tally) string {
	return fmt.Sprintf("Ran %d out of which %d passed", t.Attempted, t.Passed)
}

// Mark returns the verdict indicator used in the per-case table.
func Mark(v harness.Verdict) string {
	if v == harness.Passed {
		return "✓"
	}
	return "✗"
}

// Table renders one row per case plus a totals footer.
func Table(m Mode, results []harness.CaseResult) string {
	w := table.NewWriter()
	if m == ASCII {
		w.SetStyle(table.StyleLight)
	}

	w.AppendHeader(table.Row{"Case", "Input", "", "Result"})
	passed := 0
	for _, r := range results {
		if r.Verdict == harness.Passed {
			passed++
		}
		w.AppendRow(table.Row{r.Case.Dir, r.Case.Input, Mark(r.Verdict), r.Verdict.String()})
	}
	w.AppendFooter(table.Row{"total", "", "", fmt.Sprintf("%d/%d passed", passed, len(results))})
	w.SetColumnConfigs([]table.ColumnConfig{
		{Number: 3, Align: text.AlignCenter},
	})

	if m == Markdown {
		return w.RenderMarkdown()
	}
	return w.Render()
}
