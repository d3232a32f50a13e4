// Package grading implements the three-stage interview grading pipeline:
// answer extraction, per-question grading and overall analysis.
package grading

import (
	"context"
	"errors"
	"math"
	"time"

	"go.uber.org/zap"

	"github.com/spigell/interview-grader/internal/ai"
	"github.com/spigell/interview-grader/internal/interview"
	"github.com/spigell/interview-grader/internal/utils"
)

// DefaultPacing is the fixed delay after each grading call. It is a constant
// inter-call throttle to stay under provider rate limits, not adaptive backoff.
const DefaultPacing = time.Second

// ErrNoAnswers is returned when extraction yields no question-answer pairs.
var ErrNoAnswers = errors.New("no answers extracted from the transcript")

// QAPair joins a rubric question with the answer extracted from the transcript.
type QAPair struct {
	ID       string
	Question string
	Answer   string
	Examples interview.Exemplars
}

// Config carries the per-stage model identifiers and the pacing delay.
type Config struct {
	ExtractionModel string
	GradingModel    string
	AnalysisModel   string
	Pacing          time.Duration
}

// Pipeline sequences extraction, per-question grading and overall analysis
// into a single grading run.
type Pipeline struct {
	extractor   *Extractor
	grader      *Grader
	synthesizer *Synthesizer
	pacing      time.Duration
	logger      *zap.Logger
	now         func() time.Time
}

func New(generator ai.Generator, cfg *Config, logger *zap.Logger) *Pipeline {
	if cfg == nil {
		cfg = &Config{}
	}

	if logger == nil {
		logger = zap.NewNop()
	}

	pacing := cfg.Pacing
	if pacing <= 0 {
		pacing = DefaultPacing
	}

	return &Pipeline{
		extractor:   NewExtractor(generator, cfg.ExtractionModel, logger),
		grader:      NewGrader(generator, cfg.GradingModel, logger),
		synthesizer: NewSynthesizer(generator, cfg.AnalysisModel, logger),
		pacing:      pacing,
		logger:      logger,
		now:         time.Now,
	}
}

// Run executes one grading pass over the rubric and transcript. Only the
// extraction stage can fail the run; grading and analysis failures degrade
// into fallback values embedded in the result.
func (p *Pipeline) Run(ctx context.Context, rubric []interview.RubricItem, transcript string) (*interview.Result, error) {
	pairs, err := p.extractor.Extract(ctx, rubric, transcript)
	if err != nil {
		return nil, err
	}

	if len(pairs) == 0 {
		return nil, ErrNoAnswers
	}

	grades := make(map[string]interview.Grade, len(pairs))
	total := 0
	for _, pair := range pairs {
		grade := p.grader.Grade(ctx, pair)
		grades[pair.ID] = grade
		total += grade.Score

		if err := utils.WaitFor(ctx, p.pacing); err != nil {
			return nil, err
		}
	}

	analysis := p.synthesizer.Synthesize(ctx, grades)

	overall := math.Round(float64(total)/float64(len(pairs))*100) / 100

	p.logger.Info("grading run finished",
		zap.Int("questions", len(pairs)),
		zap.Float64("overall_score", overall),
	)

	return &interview.Result{
		Questions:       grades,
		OverallScore:    overall,
		OverallAnalysis: analysis,
		Timestamp:       interview.FormatTimestamp(p.now()),
	}, nil
}
