package grading

import (
	"context"
	"errors"

	"github.com/spigell/interview-grader/internal/ai"
)

type stubResponse struct {
	text string
	err  error
}

// stubGenerator replays a scripted queue of responses and records every
// request it receives.
type stubGenerator struct {
	responses []stubResponse
	calls     []ai.Request
}

func (s *stubGenerator) GenerateContent(_ context.Context, req ai.Request) (string, error) {
	s.calls = append(s.calls, req)

	if len(s.responses) == 0 {
		return "", errors.New("unexpected call")
	}

	next := s.responses[0]
	s.responses = s.responses[1:]

	return next.text, next.err
}
