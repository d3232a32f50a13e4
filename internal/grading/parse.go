package grading

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mitchellh/mapstructure"

	"github.com/spigell/interview-grader/internal/interview"
)

// extractJSON strips markdown code fences the model occasionally wraps
// around structured replies.
func extractJSON(raw string) string {
	raw = strings.TrimSpace(raw)
	if strings.HasPrefix(raw, "```") {
		raw = strings.TrimPrefix(raw, "```json")
		raw = strings.TrimPrefix(raw, "```")
		raw = strings.TrimSpace(raw)
		if idx := strings.LastIndex(raw, "```"); idx != -1 {
			raw = raw[:idx]
		}
	}
	raw = strings.Trim(raw, "`")
	return strings.TrimSpace(raw)
}

func decodeObject(raw string) (map[string]any, error) {
	cleaned := extractJSON(raw)

	var data map[string]any
	if err := json.Unmarshal([]byte(cleaned), &data); err != nil {
		return nil, fmt.Errorf("parse model response: %w", err)
	}

	return data, nil
}

// decodeGrade parses the grading reply into a Grade. Decoding is weakly typed
// so a score returned as a JSON number or a numeric string still lands in the
// integer field. The score is passed through as-is, without range validation.
func decodeGrade(raw string) (interview.Grade, error) {
	data, err := decodeObject(raw)
	if err != nil {
		return interview.Grade{}, err
	}

	var grade interview.Grade
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &grade,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return interview.Grade{}, fmt.Errorf("build grade decoder: %w", err)
	}

	if err := decoder.Decode(data); err != nil {
		return interview.Grade{}, fmt.Errorf("decode grade: %w", err)
	}

	return grade, nil
}

func coerceString(v any) string {
	switch val := v.(type) {
	case string:
		return val
	case fmt.Stringer:
		return val.String()
	default:
		if v == nil {
			return ""
		}
		bytes, err := json.Marshal(v)
		if err != nil {
			return fmt.Sprintf("%v", v)
		}
		return string(bytes)
	}
}
