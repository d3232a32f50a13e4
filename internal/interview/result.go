package interview

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// Grade is the model's assessment of a single answer.
type Grade struct {
	Score   int    `json:"score"`
	Comment string `json:"comment"`
}

// Result is the persisted outcome of a grading run.
type Result struct {
	Questions       map[string]Grade `json:"questions"`
	OverallScore    float64          `json:"overall_score"`
	OverallAnalysis string           `json:"overall_analysis"`
	Timestamp       string           `json:"timestamp"`
}

// ToFile writes the result to the given path as human-readable indented JSON.
func (r *Result) ToFile(path string) error {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal result: %w", err)
	}

	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("writing result to %q: %w", path, err)
	}

	return nil
}

// FormatTimestamp renders the instant as UTC ISO-8601 with a trailing Z and
// second precision.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}
