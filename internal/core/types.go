package core

import (
	"fmt"
	"time"
)

// SignalKind identifies one of the independent availability probes.
type SignalKind string

const (
	SignalKindDNS   SignalKind = "dns"
	SignalKindWhois SignalKind = "whois"
	SignalKindHTTP  SignalKind = "http"
)

// Signal is the tri-state verdict a probe produces for a domain.
// The zero value is Unknown so a missing or failed probe never reads
// as evidence in either direction.
type Signal int

const (
	SignalUnknown Signal = iota
	SignalExists
	SignalDoesNotExist
)

// String returns the wire form of the signal.
func (s Signal) String() string {
	switch s {
	case SignalExists:
		return "exists"
	case SignalDoesNotExist:
		return "absent"
	default:
		return "unknown"
	}
}

// MarshalText encodes the signal as its wire form for JSON and storage.
func (s Signal) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText decodes a signal from its wire form.
func (s *Signal) UnmarshalText(text []byte) error {
	parsed, err := ParseSignal(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// ParseSignal converts a wire-form string back into a Signal.
func ParseSignal(value string) (Signal, error) {
	switch value {
	case "exists":
		return SignalExists, nil
	case "absent":
		return SignalDoesNotExist, nil
	case "unknown", "":
		return SignalUnknown, nil
	default:
		return SignalUnknown, fmt.Errorf("unknown signal value: %q", value)
	}
}

// Confidence labels how much signal agreement backs a verdict.
type Confidence string

const (
	ConfidenceHigh    Confidence = "High"
	ConfidenceMedium  Confidence = "Medium"
	ConfidenceLow     Confidence = "Low"
	ConfidenceUnknown Confidence = "Unknown"
)

// SignalResult is the immutable outcome of one probe against one domain.
type SignalResult struct {
	Kind      SignalKind `json:"kind"`
	Signal    Signal     `json:"signal"`
	Reason    string     `json:"reason,omitempty"`
	CheckID   string     `json:"check_id,omitempty"`
	CheckedAt time.Time  `json:"checked_at"`
	FromCache bool       `json:"from_cache,omitempty"`
}

// Assessment aggregates the signal results for one domain variation.
// Score is nil when every signal came back Unknown; LikelyAvailable is
// nil in the same case, never a guessed boolean.
type Assessment struct {
	Domain          string         `json:"domain"`
	Ordinal         int            `json:"ordinal"`
	Signals         []SignalResult `json:"signals"`
	Score           *int           `json:"score,omitempty"`
	LikelyAvailable *bool          `json:"likely_available"`
	Confidence      Confidence     `json:"confidence"`
	Failed          bool           `json:"failed,omitempty"`
	FailureReason   string         `json:"failure_reason,omitempty"`
	CompletedAt     time.Time      `json:"completed_at"`
}

// IsAvailable reports whether the assessment concluded likely-available.
func (a *Assessment) IsAvailable() bool {
	return a != nil && a.LikelyAvailable != nil && *a.LikelyAvailable
}

// ScoreValue returns the score, or -1 when no score was produced.
func (a *Assessment) ScoreValue() int {
	if a == nil || a.Score == nil {
		return -1
	}
	return *a.Score
}

// Signal returns the result for one probe kind, if present.
func (a *Assessment) Signal(kind SignalKind) (SignalResult, bool) {
	if a == nil {
		return SignalResult{}, false
	}
	for _, result := range a.Signals {
		if result.Kind == kind {
			return result, true
		}
	}
	return SignalResult{}, false
}

// NameReport owns every assessment generated for one candidate name,
// plus the derived best choices.
type NameReport struct {
	Name             string        `json:"name"`
	Assessments      []*Assessment `json:"assessments"`
	Checked          int           `json:"checked"`
	Available        int           `json:"available"`
	Registered       int           `json:"registered"`
	Failures         int           `json:"failures,omitempty"`
	AvailabilityRate float64       `json:"availability_rate"`
	BestCom          string        `json:"best_com,omitempty"`
	Alternatives     []string      `json:"alternatives,omitempty"`
	CompletedAt      time.Time     `json:"completed_at"`
}

// Opportunity ranks a candidate name by availability breadth.
type Opportunity struct {
	Name           string `json:"name"`
	BestCom        string `json:"best_com"`
	TotalAvailable int    `json:"total_available"`
}

// RunSummary collects the reports for a full run.
type RunSummary struct {
	StartedAt     time.Time     `json:"started_at"`
	CompletedAt   time.Time     `json:"completed_at"`
	Names         []*NameReport `json:"names"`
	NamesChecked  int           `json:"names_checked"`
	ComAvailable  int           `json:"com_available"`
	Opportunities []Opportunity `json:"opportunities,omitempty"`
}

// RateLimitState tracks request counts for one external endpoint.
type RateLimitState struct {
	RequestCount int
	WindowStart  time.Time
	BackoffUntil *time.Time
	LastDeniedAt *time.Time
}
