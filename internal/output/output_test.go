package output

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/domainscout/domainscout/internal/core"
)

func sampleReport() *core.NameReport {
	score := 100
	likely := true
	noScore := (*int)(nil)

	assessments := []*core.Assessment{
		{
			Domain:          "acme.com",
			Score:           &score,
			LikelyAvailable: &likely,
			Confidence:      core.ConfidenceHigh,
			Signals: []core.SignalResult{
				{Kind: core.SignalKindDNS, Signal: core.SignalDoesNotExist, Reason: "nxdomain"},
				{Kind: core.SignalKindWhois, Signal: core.SignalDoesNotExist, Reason: "no whois record"},
				{Kind: core.SignalKindHTTP, Signal: core.SignalDoesNotExist, Reason: "no http response", FromCache: true},
			},
		},
		{
			Domain:     "acme.io",
			Score:      noScore,
			Confidence: core.ConfidenceUnknown,
		},
	}
	return core.BuildNameReport("acme", assessments, time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC))
}

func TestParseFormat(t *testing.T) {
	format, err := ParseFormat("")
	require.NoError(t, err)
	require.Equal(t, FormatTable, format)

	format, err = ParseFormat(" JSON ")
	require.NoError(t, err)
	require.Equal(t, FormatJSON, format)

	_, err = ParseFormat("xml")
	require.Error(t, err)
}

func TestTableFormatterReport(t *testing.T) {
	rendered, err := (&TableFormatter{}).FormatReport(sampleReport())
	require.NoError(t, err)
	require.Contains(t, rendered, "acme.com")
	require.Contains(t, rendered, "AVAILABLE")
	require.Contains(t, rendered, "100%")
	require.Contains(t, rendered, "UNKNOWN")
	require.Contains(t, rendered, "Best .com: acme.com")
	require.Contains(t, rendered, "(cached)")
}

func TestJSONFormatterPreservesNullVerdict(t *testing.T) {
	rendered, err := (&JSONFormatter{Indent: true}).FormatReport(sampleReport())
	require.NoError(t, err)

	var decoded core.NameReport
	require.NoError(t, json.Unmarshal([]byte(rendered), &decoded))
	require.Len(t, decoded.Assessments, 2)
	require.Nil(t, decoded.Assessments[1].Score)
	require.Nil(t, decoded.Assessments[1].LikelyAvailable)
	require.Equal(t, core.SignalDoesNotExist, decoded.Assessments[0].Signals[0].Signal)
}

func TestMarkdownFormatterReport(t *testing.T) {
	rendered, err := (&MarkdownFormatter{}).FormatReport(sampleReport())
	require.NoError(t, err)
	require.Contains(t, rendered, "## acme availability")
	require.Contains(t, rendered, "| acme.com |")
	require.Contains(t, rendered, "**Best .com**: acme.com")
}

func TestTextFormatterSummary(t *testing.T) {
	report := sampleReport()
	summary := core.BuildRunSummary(report.CompletedAt, []*core.NameReport{report}, report.CompletedAt)

	rendered, err := (&TextFormatter{}).FormatSummary(summary)
	require.NoError(t, err)
	require.Contains(t, rendered, "DOMAIN AVAILABILITY REPORT")
	require.Contains(t, rendered, "TOP OPPORTUNITIES")
	require.Contains(t, rendered, "acme.com")
}

func TestTableFormatterSummary(t *testing.T) {
	report := sampleReport()
	summary := core.BuildRunSummary(report.CompletedAt, []*core.NameReport{report}, report.CompletedAt)

	rendered, err := (&TableFormatter{}).FormatSummary(summary)
	require.NoError(t, err)
	require.Contains(t, rendered, "acme")
	require.Contains(t, rendered, "1/1")
}

func TestWriteRunFiles(t *testing.T) {
	report := sampleReport()
	summary := core.BuildRunSummary(report.CompletedAt, []*core.NameReport{report}, report.CompletedAt)

	dir := t.TempDir()
	files, err := WriteRunFiles(dir, summary)
	require.NoError(t, err)
	require.FileExists(t, files.ResultsPath)
	require.FileExists(t, files.ReportPath)
	require.Contains(t, files.ResultsPath, "domainscout_results_20260830_120000.json")
	require.Contains(t, files.ReportPath, "domainscout_report_20260830_120000.txt")
}
