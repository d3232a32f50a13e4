package grading

import (
	"testing"
)

func TestExtractJSON(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		input  string
		expect string
	}{
		{
			name:   "plain object",
			input:  `{"score": 1}`,
			expect: `{"score": 1}`,
		},
		{
			name:   "json fence",
			input:  "```json\n{\"score\": 1}\n```",
			expect: `{"score": 1}`,
		},
		{
			name:   "bare fence",
			input:  "```\n{\"score\": 1}\n```",
			expect: `{"score": 1}`,
		},
		{
			name:   "surrounding whitespace",
			input:  "  \n{\"score\": 1}\n  ",
			expect: `{"score": 1}`,
		},
		{
			name:   "stray backticks",
			input:  "`{\"score\": 1}`",
			expect: `{"score": 1}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := extractJSON(tt.input); got != tt.expect {
				t.Fatalf("extractJSON(%q) = %q, want %q", tt.input, got, tt.expect)
			}
		})
	}
}

func TestDecodeGrade(t *testing.T) {
	t.Parallel()

	grade, err := decodeGrade(`{"score": 85, "comment": "Strong answer"}`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if grade.Score != 85 || grade.Comment != "Strong answer" {
		t.Fatalf("unexpected grade: %+v", grade)
	}
}

func TestDecodeGradeWeakTyping(t *testing.T) {
	t.Parallel()

	// Some models reply with a quoted number; weak decoding still lands it
	// in the integer field.
	grade, err := decodeGrade(`{"score": "85", "comment": "quoted"}`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if grade.Score != 85 {
		t.Fatalf("expected 85, got %d", grade.Score)
	}
}

func TestDecodeGradeMissingFields(t *testing.T) {
	t.Parallel()

	grade, err := decodeGrade(`{}`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if grade.Score != 0 || grade.Comment != "" {
		t.Fatalf("expected zero grade, got %+v", grade)
	}
}

func TestDecodeGradeErrors(t *testing.T) {
	t.Parallel()

	if _, err := decodeGrade("not json at all"); err == nil {
		t.Fatal("expected error for non-JSON input")
	}

	if _, err := decodeGrade(`["array"]`); err == nil {
		t.Fatal("expected error for non-object input")
	}
}

func TestCoerceString(t *testing.T) {
	t.Parallel()

	if got := coerceString("text"); got != "text" {
		t.Fatalf("unexpected string: %q", got)
	}

	if got := coerceString(nil); got != "" {
		t.Fatalf("expected empty string for nil, got %q", got)
	}

	if got := coerceString(float64(42)); got != "42" {
		t.Fatalf("expected marshalled number, got %q", got)
	}
}
