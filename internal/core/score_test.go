package core

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

var testTime = time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)

func signalsOf(dns, whois, http Signal) []SignalResult {
	return []SignalResult{
		{Kind: SignalKindDNS, Signal: dns},
		{Kind: SignalKindWhois, Signal: whois},
		{Kind: SignalKindHTTP, Signal: http},
	}
}

func TestAggregateAllAgreeAvailable(t *testing.T) {
	a := Aggregate("free123xyz.com", 0, signalsOf(SignalDoesNotExist, SignalDoesNotExist, SignalDoesNotExist), testTime)

	require.NotNil(t, a.Score)
	require.Equal(t, 100, *a.Score)
	require.True(t, a.IsAvailable())
	require.Equal(t, ConfidenceHigh, a.Confidence)
}

func TestAggregateTwoOfThreeMixedNotAvailable(t *testing.T) {
	a := Aggregate("example.com", 0, signalsOf(SignalDoesNotExist, SignalExists, SignalDoesNotExist), testTime)

	// 2 of 3 is 66.67%, short of the 67 bar: one dissenting signal
	// means the domain is not called available.
	require.NotNil(t, a.Score)
	require.Equal(t, 66, *a.Score)
	require.False(t, a.IsAvailable())
	require.NotNil(t, a.LikelyAvailable)
	require.False(t, *a.LikelyAvailable)
	require.Equal(t, ConfidenceLow, a.Confidence)
}

func TestAggregateAllAgreeTaken(t *testing.T) {
	a := Aggregate("taken.com", 0, signalsOf(SignalExists, SignalExists, SignalExists), testTime)

	require.NotNil(t, a.Score)
	require.Equal(t, 0, *a.Score)
	require.False(t, a.IsAvailable())
	require.NotNil(t, a.LikelyAvailable)
	require.False(t, *a.LikelyAvailable)
	require.Equal(t, ConfidenceLow, a.Confidence)
}

func TestAggregateUnknownSignalsExcluded(t *testing.T) {
	a := Aggregate("example.com", 0, signalsOf(SignalDoesNotExist, SignalUnknown, SignalUnknown), testTime)

	require.NotNil(t, a.Score)
	require.Equal(t, 100, *a.Score)
	require.True(t, a.IsAvailable())
	require.Equal(t, ConfidenceHigh, a.Confidence)
}

func TestAggregateAllUnknown(t *testing.T) {
	a := Aggregate("example.com", 0, signalsOf(SignalUnknown, SignalUnknown, SignalUnknown), testTime)

	require.Nil(t, a.Score)
	require.Nil(t, a.LikelyAvailable)
	require.False(t, a.IsAvailable())
	require.Equal(t, ConfidenceUnknown, a.Confidence)
}

func TestAggregateOneOfTwo(t *testing.T) {
	a := Aggregate("example.com", 0, signalsOf(SignalDoesNotExist, SignalExists, SignalUnknown), testTime)

	require.NotNil(t, a.Score)
	require.Equal(t, 50, *a.Score)
	require.False(t, a.IsAvailable())
	require.Equal(t, ConfidenceLow, a.Confidence)
}

func TestFailedAssessment(t *testing.T) {
	a := FailedAssessment("example.com", 3, "check panicked: boom", testTime)

	require.True(t, a.Failed)
	require.Equal(t, "check panicked: boom", a.FailureReason)
	require.Nil(t, a.Score)
	require.Nil(t, a.LikelyAvailable)
	require.Equal(t, 3, a.Ordinal)
}

func available(domain string, ordinal, score int, confidence Confidence) *Assessment {
	likely := true
	s := score
	return &Assessment{
		Domain:          domain,
		Ordinal:         ordinal,
		Score:           &s,
		LikelyAvailable: &likely,
		Confidence:      confidence,
		CompletedAt:     testTime,
	}
}

func taken(domain string, ordinal int) *Assessment {
	likely := false
	score := 0
	return &Assessment{
		Domain:          domain,
		Ordinal:         ordinal,
		Score:           &score,
		LikelyAvailable: &likely,
		Confidence:      ConfidenceLow,
		CompletedAt:     testTime,
	}
}

func TestBuildNameReportBestCom(t *testing.T) {
	assessments := []*Assessment{
		available("acme.com", 0, 67, ConfidenceMedium),
		available("acme.io", 1, 100, ConfidenceHigh),
		available("acmehq.com", 2, 100, ConfidenceHigh),
		taken("acme.net", 3),
	}

	report := BuildNameReport("acme", assessments, testTime)

	// High confidence beats a higher position with Medium.
	require.Equal(t, "acmehq.com", report.BestCom)
	require.Equal(t, []string{"acme.io"}, report.Alternatives)
	require.Equal(t, 4, report.Checked)
	require.Equal(t, 3, report.Available)
	require.Equal(t, 1, report.Registered)
	require.InDelta(t, 75.0, report.AvailabilityRate, 0.01)
}

func TestBuildNameReportTieKeepsGenerationOrder(t *testing.T) {
	assessments := []*Assessment{
		available("acme.com", 0, 100, ConfidenceHigh),
		available("acmehq.com", 1, 100, ConfidenceHigh),
	}

	report := BuildNameReport("acme", assessments, testTime)
	require.Equal(t, "acme.com", report.BestCom)
}

func TestBuildNameReportAlternativesCapped(t *testing.T) {
	assessments := []*Assessment{
		available("acme.io", 0, 100, ConfidenceHigh),
		available("acme.app", 1, 100, ConfidenceHigh),
		available("acme.tech", 2, 100, ConfidenceHigh),
		available("acme.ai", 3, 100, ConfidenceHigh),
	}

	report := BuildNameReport("acme", assessments, testTime)
	require.Empty(t, report.BestCom)
	require.Equal(t, []string{"acme.io", "acme.app", "acme.tech"}, report.Alternatives)
}

func TestBuildNameReportCountsFailures(t *testing.T) {
	assessments := []*Assessment{
		available("acme.com", 0, 100, ConfidenceHigh),
		FailedAssessment("acme.io", 1, "check panicked: boom", testTime),
	}

	report := BuildNameReport("acme", assessments, testTime)
	require.Equal(t, 1, report.Checked)
	require.Equal(t, 1, report.Failures)
	require.InDelta(t, 100.0, report.AvailabilityRate, 0.01)
}

func TestBuildRunSummaryRanksOpportunities(t *testing.T) {
	reports := []*NameReport{
		{Name: "alpha", BestCom: "alpha.com", Available: 2},
		{Name: "beta", BestCom: "", Available: 9},
		{Name: "gamma", BestCom: "gamma.com", Available: 5},
	}

	summary := BuildRunSummary(testTime, reports, testTime.Add(time.Minute))

	require.Equal(t, 3, summary.NamesChecked)
	require.Equal(t, 2, summary.ComAvailable)
	require.Len(t, summary.Opportunities, 2)
	require.Equal(t, "gamma", summary.Opportunities[0].Name)
	require.Equal(t, "alpha", summary.Opportunities[1].Name)
}

func TestBuildRunSummaryTieStable(t *testing.T) {
	reports := []*NameReport{
		{Name: "alpha", BestCom: "alpha.com", Available: 4},
		{Name: "beta", BestCom: "beta.com", Available: 4},
	}

	summary := BuildRunSummary(testTime, reports, testTime)
	require.Equal(t, "alpha", summary.Opportunities[0].Name)
	require.Equal(t, "beta", summary.Opportunities[1].Name)
}
