package output

import (
	"fmt"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/domainscout/domainscout/internal/core"
)

// TableFormatter renders results as an ASCII table.
type TableFormatter struct{}

// FormatReport renders one name's assessments as a table.
func (f *TableFormatter) FormatReport(report *core.NameReport) (string, error) {
	if report == nil {
		return "", nil
	}

	t := table.NewWriter()
	t.SetStyle(table.StyleRounded)
	t.SetTitle(report.Name)
	t.AppendHeader(table.Row{"Domain", "Verdict", "Score", "Confidence", "Notes"})

	for _, a := range report.Assessments {
		if a == nil {
			continue
		}
		t.AppendRow(table.Row{
			a.Domain,
			verdictLabel(a),
			scoreLabel(a),
			string(a.Confidence),
			assessmentNotes(a),
		})
	}

	summary := fmt.Sprintf("%d/%d available (%.0f%%)", report.Available, report.Checked, report.AvailabilityRate)
	if report.Failures > 0 {
		summary += fmt.Sprintf(", %d failed", report.Failures)
	}
	t.AppendFooter(table.Row{"", "", "", "", summary})

	rendered := t.Render()
	if report.BestCom != "" {
		rendered += fmt.Sprintf("\nBest .com: %s", report.BestCom)
	}
	if len(report.Alternatives) > 0 {
		rendered += fmt.Sprintf("\nAlternatives: %s", strings.Join(report.Alternatives, ", "))
	}
	return rendered, nil
}

// FormatSummary renders the cross-name opportunity ranking.
func (f *TableFormatter) FormatSummary(summary *core.RunSummary) (string, error) {
	if summary == nil {
		return "", nil
	}

	t := table.NewWriter()
	t.SetStyle(table.StyleRounded)
	t.SetTitle("Opportunities")
	t.AppendHeader(table.Row{"Rank", "Name", "Best .com", "Total Available"})

	for i, opp := range summary.Opportunities {
		t.AppendRow(table.Row{i + 1, opp.Name, opp.BestCom, opp.TotalAvailable})
	}

	t.AppendFooter(table.Row{"", "", "names with .com", fmt.Sprintf("%d/%d", summary.ComAvailable, summary.NamesChecked)})

	return t.Render(), nil
}
