package output

import (
	"fmt"
	"strings"

	"github.com/domainscout/domainscout/internal/core"
)

// MarkdownFormatter renders results as a markdown table.
type MarkdownFormatter struct{}

// FormatReport renders one name's assessments as Markdown.
func (f *MarkdownFormatter) FormatReport(report *core.NameReport) (string, error) {
	if report == nil {
		return "", nil
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("## %s availability\n\n", escapeMarkdownCell(report.Name)))
	sb.WriteString("| Domain | Verdict | Score | Confidence | Notes |\n")
	sb.WriteString("|--------|---------|-------|------------|-------|\n")

	for _, a := range report.Assessments {
		if a == nil {
			continue
		}
		sb.WriteString(fmt.Sprintf("| %s | %s | %s | %s | %s |\n",
			escapeMarkdownCell(a.Domain),
			escapeMarkdownCell(verdictLabel(a)),
			escapeMarkdownCell(scoreLabel(a)),
			escapeMarkdownCell(string(a.Confidence)),
			escapeMarkdownCell(assessmentNotes(a)),
		))
	}

	sb.WriteString(fmt.Sprintf("\n**Available**: %d/%d (%.0f%%)\n", report.Available, report.Checked, report.AvailabilityRate))
	if report.BestCom != "" {
		sb.WriteString(fmt.Sprintf("\n**Best .com**: %s\n", escapeMarkdownCell(report.BestCom)))
	}
	if len(report.Alternatives) > 0 {
		sb.WriteString(fmt.Sprintf("\n**Alternatives**: %s\n", escapeMarkdownCell(strings.Join(report.Alternatives, ", "))))
	}

	return sb.String(), nil
}

// FormatSummary renders the opportunity ranking as Markdown.
func (f *MarkdownFormatter) FormatSummary(summary *core.RunSummary) (string, error) {
	if summary == nil {
		return "", nil
	}

	var sb strings.Builder
	sb.WriteString("## Opportunities\n\n")
	sb.WriteString("| Rank | Name | Best .com | Total Available |\n")
	sb.WriteString("|------|------|-----------|----------------|\n")

	for i, opp := range summary.Opportunities {
		sb.WriteString(fmt.Sprintf("| %d | %s | %s | %d |\n",
			i+1,
			escapeMarkdownCell(opp.Name),
			escapeMarkdownCell(opp.BestCom),
			opp.TotalAvailable,
		))
	}

	sb.WriteString(fmt.Sprintf("\n**Names with an available .com**: %d/%d\n", summary.ComAvailable, summary.NamesChecked))
	return sb.String(), nil
}

func escapeMarkdownCell(value string) string {
	return strings.ReplaceAll(value, "|", "\\|")
}
