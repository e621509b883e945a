package output

import (
	"fmt"
	"strings"

	"github.com/domainscout/domainscout/internal/core"
)

// TextFormatter renders the plain-text report written alongside run
// result files.
type TextFormatter struct{}

// FormatReport renders one name's section of the report.
func (f *TextFormatter) FormatReport(report *core.NameReport) (string, error) {
	if report == nil {
		return "", nil
	}

	var sb strings.Builder
	sb.WriteString(strings.ToUpper(report.Name) + "\n")
	sb.WriteString(strings.Repeat("-", len(report.Name)) + "\n")
	sb.WriteString(fmt.Sprintf("Checked: %d  Available: %d (%.0f%%)  Registered: %d",
		report.Checked, report.Available, report.AvailabilityRate, report.Registered))
	if report.Failures > 0 {
		sb.WriteString(fmt.Sprintf("  Failed: %d", report.Failures))
	}
	sb.WriteString("\n")

	if report.BestCom != "" {
		sb.WriteString(fmt.Sprintf("Best .com: %s\n", report.BestCom))
	} else {
		sb.WriteString("Best .com: none available\n")
	}
	if len(report.Alternatives) > 0 {
		sb.WriteString(fmt.Sprintf("Alternatives: %s\n", strings.Join(report.Alternatives, ", ")))
	}

	for _, a := range report.Assessments {
		if a == nil || !a.IsAvailable() {
			continue
		}
		sb.WriteString(fmt.Sprintf("  %-30s %s (%s confidence)\n", a.Domain, scoreLabel(a), a.Confidence))
	}

	return sb.String(), nil
}

// FormatSummary renders the whole run report, opportunity ranking
// first, then the per-name sections.
func (f *TextFormatter) FormatSummary(summary *core.RunSummary) (string, error) {
	if summary == nil {
		return "", nil
	}

	var sb strings.Builder
	sb.WriteString("DOMAIN AVAILABILITY REPORT\n")
	sb.WriteString("==========================\n")
	sb.WriteString(fmt.Sprintf("Generated: %s\n", summary.CompletedAt.Format("2006-01-02 15:04:05 MST")))
	sb.WriteString(fmt.Sprintf("Names checked: %d\n", summary.NamesChecked))
	sb.WriteString(fmt.Sprintf("Names with an available .com: %d\n\n", summary.ComAvailable))

	if len(summary.Opportunities) > 0 {
		sb.WriteString("TOP OPPORTUNITIES\n")
		sb.WriteString("-----------------\n")
		for i, opp := range summary.Opportunities {
			sb.WriteString(fmt.Sprintf("%2d. %-15s %s (%d domains available)\n",
				i+1, opp.Name, opp.BestCom, opp.TotalAvailable))
		}
		sb.WriteString("\n")
	}

	for _, report := range summary.Names {
		section, err := f.FormatReport(report)
		if err != nil {
			return "", err
		}
		sb.WriteString(section)
		sb.WriteString("\n")
	}

	return sb.String(), nil
}
