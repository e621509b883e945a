package output

import (
	"encoding/json"

	"github.com/domainscout/domainscout/internal/core"
)

// JSONFormatter renders results as JSON.
type JSONFormatter struct {
	Indent bool
}

// FormatReport renders one name's report as JSON.
func (f *JSONFormatter) FormatReport(report *core.NameReport) (string, error) {
	return f.marshal(report)
}

// FormatSummary renders the full run summary as JSON.
func (f *JSONFormatter) FormatSummary(summary *core.RunSummary) (string, error) {
	return f.marshal(summary)
}

func (f *JSONFormatter) marshal(value any) (string, error) {
	if f != nil && f.Indent {
		data, err := json.MarshalIndent(value, "", "  ")
		if err != nil {
			return "", err
		}
		return string(data), nil
	}

	data, err := json.Marshal(value)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
