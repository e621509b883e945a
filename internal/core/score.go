package core

import (
	"sort"
	"strings"
	"time"
)

// availableThreshold is the score at which a domain is considered
// likely available. Two of three mixed signals land at 66 and fall
// short; availability needs every definite signal to agree.
const availableThreshold = 67

// Aggregate combines the signal results for one domain into an
// assessment. Only signals that produced a definite verdict count
// toward the score; an all-Unknown set yields no score and no verdict.
func Aggregate(domain string, ordinal int, signals []SignalResult, completedAt time.Time) *Assessment {
	assessment := &Assessment{
		Domain:      domain,
		Ordinal:     ordinal,
		Signals:     signals,
		Confidence:  ConfidenceUnknown,
		CompletedAt: completedAt,
	}

	total := 0
	availableVotes := 0
	for _, result := range signals {
		if result.Signal == SignalUnknown {
			continue
		}
		total++
		if result.Signal == SignalDoesNotExist {
			availableVotes++
		}
	}

	if total == 0 {
		return assessment
	}

	// Truncating keeps the threshold comparison exact: 2/3 is 66.67%,
	// which must not pass the 67 bar.
	score := availableVotes * 100 / total
	assessment.Score = &score

	likely := score >= availableThreshold
	assessment.LikelyAvailable = &likely

	switch {
	case likely && score == 100:
		assessment.Confidence = ConfidenceHigh
	case likely:
		assessment.Confidence = ConfidenceMedium
	default:
		assessment.Confidence = ConfidenceLow
	}

	return assessment
}

// FailedAssessment marks one domain as failed without aborting its
// batch: all signals Unknown, no score, the failure carried as data.
func FailedAssessment(domain string, ordinal int, reason string, completedAt time.Time) *Assessment {
	return &Assessment{
		Domain:        domain,
		Ordinal:       ordinal,
		Confidence:    ConfidenceUnknown,
		Failed:        true,
		FailureReason: reason,
		CompletedAt:   completedAt,
	}
}

// BuildNameReport derives the per-name summary from a completed set of
// assessments. Assessments must be in generation order; the ranking of
// best choices is stable so ties keep that order.
func BuildNameReport(name string, assessments []*Assessment, completedAt time.Time) *NameReport {
	report := &NameReport{
		Name:        name,
		Assessments: assessments,
		CompletedAt: completedAt,
	}

	var comOptions, altOptions []*Assessment
	for _, assessment := range assessments {
		if assessment == nil {
			continue
		}
		if assessment.Failed {
			report.Failures++
			continue
		}
		report.Checked++
		if !assessment.IsAvailable() {
			if assessment.LikelyAvailable != nil {
				report.Registered++
			}
			continue
		}
		report.Available++
		if strings.HasSuffix(assessment.Domain, ".com") {
			comOptions = append(comOptions, assessment)
		} else {
			altOptions = append(altOptions, assessment)
		}
	}

	if report.Checked > 0 {
		report.AvailabilityRate = float64(report.Available) / float64(report.Checked) * 100
	}

	rankByPreference(comOptions)
	rankByPreference(altOptions)

	if len(comOptions) > 0 {
		report.BestCom = comOptions[0].Domain
	}
	for i, candidate := range altOptions {
		if i == 3 {
			break
		}
		report.Alternatives = append(report.Alternatives, candidate.Domain)
	}

	return report
}

// rankByPreference sorts candidates by High confidence first, then
// score, descending. The sort is stable: equal keys keep generation
// order.
func rankByPreference(candidates []*Assessment) {
	sort.SliceStable(candidates, func(i, j int) bool {
		hi := candidates[i].Confidence == ConfidenceHigh
		hj := candidates[j].Confidence == ConfidenceHigh
		if hi != hj {
			return hi
		}
		return candidates[i].ScoreValue() > candidates[j].ScoreValue()
	})
}

// BuildRunSummary ranks opportunities across every checked name. Names
// with an available .com lead, ordered by total available domains.
func BuildRunSummary(startedAt time.Time, reports []*NameReport, completedAt time.Time) *RunSummary {
	summary := &RunSummary{
		StartedAt:    startedAt,
		CompletedAt:  completedAt,
		Names:        reports,
		NamesChecked: len(reports),
	}

	for _, report := range reports {
		if report == nil || report.BestCom == "" {
			continue
		}
		summary.ComAvailable++
		summary.Opportunities = append(summary.Opportunities, Opportunity{
			Name:           report.Name,
			BestCom:        report.BestCom,
			TotalAvailable: report.Available,
		})
	}

	sort.SliceStable(summary.Opportunities, func(i, j int) bool {
		return summary.Opportunities[i].TotalAvailable > summary.Opportunities[j].TotalAvailable
	})

	return summary
}
