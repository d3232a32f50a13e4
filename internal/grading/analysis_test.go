package grading

import (
	"context"
	"errors"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/spigell/interview-grader/internal/interview"
)

func TestSynthesizerSynthesize(t *testing.T) {
	t.Parallel()

	stub := &stubGenerator{responses: []stubResponse{
		{text: "The candidate performed well overall."},
	}}
	synthesizer := NewSynthesizer(stub, "analysis-model", zap.NewNop())

	grades := map[string]interview.Grade{
		"q1": {Score: 85, Comment: "Strong answer"},
	}

	analysis := synthesizer.Synthesize(context.Background(), grades)
	if analysis != "The candidate performed well overall." {
		t.Fatalf("unexpected analysis: %q", analysis)
	}

	if len(stub.calls) != 1 {
		t.Fatalf("expected a single transport call, got %d", len(stub.calls))
	}

	call := stub.calls[0]
	if call.Model != "analysis-model" {
		t.Fatalf("unexpected model: %q", call.Model)
	}

	if call.JSONOutput {
		t.Fatal("analysis must request free-form prose, not structured output")
	}

	if !strings.Contains(call.Message, `"score": 85`) {
		t.Fatalf("expected grades in prompt, got: %s", call.Message)
	}

	if !strings.Contains(call.Message, "Strong answer") {
		t.Fatalf("expected comments in prompt, got: %s", call.Message)
	}
}

func TestSynthesizerTransportFailure(t *testing.T) {
	t.Parallel()

	stub := &stubGenerator{responses: []stubResponse{
		{err: errors.New("boom")},
	}}
	synthesizer := NewSynthesizer(stub, "analysis-model", zap.NewNop())

	analysis := synthesizer.Synthesize(context.Background(), map[string]interview.Grade{
		"q1": {Score: 85, Comment: "Strong answer"},
	})

	if analysis != analysisErrorText {
		t.Fatalf("expected fallback analysis text, got %q", analysis)
	}
}
