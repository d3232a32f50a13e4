package grading

import (
	"context"

	"go.uber.org/zap"

	"github.com/spigell/interview-grader/internal/ai"
	"github.com/spigell/interview-grader/internal/interview"
)

const (
	gradeAPIErrorComment    = "An API error occurred during grading."
	gradeFormatErrorComment = "A format error occurred during grading."
)

// Grader scores one extracted answer against its rubric exemplars.
type Grader struct {
	generator ai.Generator
	model     string
	logger    *zap.Logger
}

func NewGrader(generator ai.Generator, model string, logger *zap.Logger) *Grader {
	return &Grader{
		generator: generator,
		model:     model,
		logger:    logger,
	}
}

// Grade issues one grading call for the pair. Failures never propagate: a
// transport or format error yields a zero-score grade carrying a diagnostic
// comment, so the run can continue with the remaining questions. The model's
// score is returned verbatim, without range validation.
func (g *Grader) Grade(ctx context.Context, pair QAPair) interview.Grade {
	g.logger.Info("grading question", zap.String("question_id", pair.ID))

	raw, err := g.generator.GenerateContent(ctx, ai.Request{
		Model:      g.model,
		System:     gradeSystemPrompt,
		Message:    buildGradePrompt(pair),
		JSONOutput: true,
	})
	if err != nil {
		g.logger.Error("grading call failed",
			zap.String("question_id", pair.ID),
			zap.Error(err),
		)
		return interview.Grade{Score: 0, Comment: gradeAPIErrorComment}
	}

	grade, err := decodeGrade(raw)
	if err != nil {
		g.logger.Error("grading reply is not valid JSON",
			zap.String("question_id", pair.ID),
			zap.Error(err),
		)
		return interview.Grade{Score: 0, Comment: gradeFormatErrorComment}
	}

	return grade
}
