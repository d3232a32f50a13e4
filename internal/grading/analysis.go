package grading

import (
	"context"
	"encoding/json"

	"go.uber.org/zap"

	"github.com/spigell/interview-grader/internal/ai"
	"github.com/spigell/interview-grader/internal/interview"
)

const analysisErrorText = "An API error occurred while generating the overall analysis."

// Synthesizer narrates the candidate's overall performance from all grades.
type Synthesizer struct {
	generator ai.Generator
	model     string
	logger    *zap.Logger
}

func NewSynthesizer(generator ai.Generator, model string, logger *zap.Logger) *Synthesizer {
	return &Synthesizer{
		generator: generator,
		model:     model,
		logger:    logger,
	}
}

// Synthesize issues one free-form call over all scores and comments. A failure
// is non-fatal and yields a fixed diagnostic sentence in place of the analysis.
func (s *Synthesizer) Synthesize(ctx context.Context, grades map[string]interview.Grade) string {
	s.logger.Info("generating overall analysis", zap.Int("questions", len(grades)))

	payload, err := json.MarshalIndent(grades, "", "  ")
	if err != nil {
		s.logger.Error("marshal grades for analysis", zap.Error(err))
		return analysisErrorText
	}

	raw, err := s.generator.GenerateContent(ctx, ai.Request{
		Model:   s.model,
		System:  analysisSystemPrompt,
		Message: buildAnalysisPrompt(string(payload)),
	})
	if err != nil {
		s.logger.Error("analysis call failed", zap.Error(err))
		return analysisErrorText
	}

	return raw
}
