package grading

import (
	"context"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"

	"github.com/spigell/interview-grader/internal/ai"
	"github.com/spigell/interview-grader/internal/interview"
)

const (
	// modelNoAnswer is the sentinel the model is instructed to emit when the
	// transcript contains no usable answer for a question.
	modelNoAnswer = "No answer found or insufficient."
	// answerMissing marks questions whose key is absent from the extraction
	// reply entirely. Kept distinct from modelNoAnswer so the two failure
	// modes stay distinguishable downstream.
	answerMissing = "Answer was not found by the model."
)

// Extractor maps a rubric and free-form transcript text onto per-question
// answers with a single model call.
type Extractor struct {
	generator ai.Generator
	model     string
	logger    *zap.Logger
}

func NewExtractor(generator ai.Generator, model string, logger *zap.Logger) *Extractor {
	return &Extractor{
		generator: generator,
		model:     model,
		logger:    logger,
	}
}

type extractionQuestion struct {
	ID   string `json:"id"`
	Text string `json:"question_text"`
}

// Extract issues one extraction call and returns one QAPair per rubric item,
// preserving rubric order. A transport failure or an unparseable reply fails
// the whole operation.
func (e *Extractor) Extract(ctx context.Context, rubric []interview.RubricItem, transcript string) ([]QAPair, error) {
	questions := make([]extractionQuestion, 0, len(rubric))
	for _, item := range rubric {
		questions = append(questions, extractionQuestion{ID: item.ID, Text: item.Text})
	}

	questionsJSON, err := json.MarshalIndent(questions, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal question list: %w", err)
	}

	e.logger.Info("extracting answers", zap.Int("questions", len(rubric)))

	raw, err := e.generator.GenerateContent(ctx, ai.Request{
		Model:      e.model,
		System:     extractSystemPrompt(),
		Message:    buildExtractPrompt(string(questionsJSON), transcript),
		JSONOutput: true,
	})
	if err != nil {
		return nil, fmt.Errorf("answer extraction: %w", err)
	}

	answers, err := decodeObject(raw)
	if err != nil {
		return nil, fmt.Errorf("answer extraction reply: %w", err)
	}

	pairs := make([]QAPair, 0, len(rubric))
	for _, item := range rubric {
		answer := answerMissing
		if value, ok := answers[item.ID+"_answer"]; ok {
			answer = coerceString(value)
		}

		pairs = append(pairs, QAPair{
			ID:       item.ID,
			Question: item.Text,
			Answer:   answer,
			Examples: item.Examples,
		})
	}

	e.logger.Info("answers extracted", zap.Int("pairs", len(pairs)))

	return pairs, nil
}
