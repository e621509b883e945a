package output

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/domainscout/domainscout/internal/core"
)

const fileTimestampLayout = "20060102_150405"

// RunFiles names the artifacts written for one run.
type RunFiles struct {
	ResultsPath string
	ReportPath  string
}

// WriteRunFiles writes the raw JSON results and the plain-text report
// for a completed run, timestamped so reruns never clobber earlier
// output.
func WriteRunFiles(dir string, summary *core.RunSummary) (*RunFiles, error) {
	if summary == nil {
		return nil, fmt.Errorf("run summary is required")
	}
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create output directory: %w", err)
	}

	stamp := summary.CompletedAt
	if stamp.IsZero() {
		stamp = time.Now().UTC()
	}
	suffix := stamp.Format(fileTimestampLayout)

	files := &RunFiles{
		ResultsPath: filepath.Join(dir, fmt.Sprintf("domainscout_results_%s.json", suffix)),
		ReportPath:  filepath.Join(dir, fmt.Sprintf("domainscout_report_%s.txt", suffix)),
	}

	payload, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode run results: %w", err)
	}
	if err := os.WriteFile(files.ResultsPath, payload, 0o644); err != nil {
		return nil, fmt.Errorf("write run results: %w", err)
	}

	report, err := (&TextFormatter{}).FormatSummary(summary)
	if err != nil {
		return nil, fmt.Errorf("render run report: %w", err)
	}
	if err := os.WriteFile(files.ReportPath, []byte(report), 0o644); err != nil {
		return nil, fmt.Errorf("write run report: %w", err)
	}

	return files, nil
}
