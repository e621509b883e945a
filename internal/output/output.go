// Package output renders assessment results for terminals, files, and
// the HTTP API.
package output

import (
	"fmt"
	"strings"

	"github.com/domainscout/domainscout/internal/core"
)

// Format represents an output format.
type Format string

const (
	FormatTable    Format = "table"
	FormatJSON     Format = "json"
	FormatMarkdown Format = "markdown"
	FormatText     Format = "text"
)

// Formatter renders name reports and run summaries.
type Formatter interface {
	FormatReport(report *core.NameReport) (string, error)
	FormatSummary(summary *core.RunSummary) (string, error)
}

// ParseFormat validates and normalizes a format string.
func ParseFormat(value string) (Format, error) {
	normalized := strings.ToLower(strings.TrimSpace(value))
	switch normalized {
	case "", string(FormatTable):
		return FormatTable, nil
	case string(FormatJSON):
		return FormatJSON, nil
	case string(FormatMarkdown):
		return FormatMarkdown, nil
	case string(FormatText):
		return FormatText, nil
	default:
		return "", fmt.Errorf("unsupported output format: %s", value)
	}
}

// NewFormatter returns a formatter for the requested format.
func NewFormatter(format Format) Formatter {
	switch format {
	case FormatJSON:
		return &JSONFormatter{Indent: true}
	case FormatMarkdown:
		return &MarkdownFormatter{}
	case FormatText:
		return &TextFormatter{}
	default:
		return &TableFormatter{}
	}
}

// verdictLabel is the terminal-facing verdict for one assessment.
func verdictLabel(a *core.Assessment) string {
	switch {
	case a == nil:
		return ""
	case a.Failed:
		return "FAILED"
	case a.LikelyAvailable == nil:
		return "UNKNOWN"
	case *a.LikelyAvailable:
		return "AVAILABLE"
	default:
		return "TAKEN"
	}
}

// scoreLabel renders the score, or a dash when no signal was definite.
func scoreLabel(a *core.Assessment) string {
	if a == nil || a.Score == nil {
		return "-"
	}
	return fmt.Sprintf("%d%%", *a.Score)
}

// assessmentNotes summarizes the per-signal reasons for one domain.
func assessmentNotes(a *core.Assessment) string {
	if a == nil {
		return ""
	}
	if a.Failed {
		return a.FailureReason
	}

	notes := make([]string, 0, len(a.Signals))
	for _, signal := range a.Signals {
		if signal.Reason == "" {
			continue
		}
		note := fmt.Sprintf("%s: %s", signal.Kind, signal.Reason)
		if signal.FromCache {
			note += " (cached)"
		}
		notes = append(notes, note)
	}
	return strings.Join(notes, "; ")
}
