package interview

import (
	"encoding/json"
	"fmt"
	"os"
)

// Exemplars holds the three calibration answers used as grading anchors.
type Exemplars struct {
	Great   string `json:"great"`
	Alright string `json:"alright"`
	Bad     string `json:"bad"`
}

// RubricItem is a single interview question with its calibration answers.
type RubricItem struct {
	ID       string    `json:"id"`
	Text     string    `json:"text"`
	Examples Exemplars `json:"examples"`
}

// LoadRubric reads and parses the rubric JSON file, preserving question order.
func LoadRubric(path string) ([]RubricItem, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading rubric file: %w", err)
	}

	var rubric []RubricItem
	if err := json.Unmarshal(data, &rubric); err != nil {
		return nil, fmt.Errorf("rubric file %q is not valid JSON: %w", path, err)
	}

	return rubric, nil
}

// LoadTranscript reads the interview transcript as plain text.
func LoadTranscript(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading transcript file: %w", err)
	}

	return string(data), nil
}
