package gemini

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/spigell/interview-grader/internal/ai"
	logfields "github.com/spigell/interview-grader/internal/logger"
	"github.com/spigell/interview-grader/internal/utils"

	"go.uber.org/zap"
	"google.golang.org/genai"
)

const (
	defaultModel = "gemini-2.5-flash"

	defaultMaxLogLength = 200

	jsonMIMEType = "application/json"
)

// modelCaller is the slice of the genai client surface the generator needs.
// It exists so tests can substitute a fake without a network client.
type modelCaller interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// Generator wraps the Google GenAI client to provide simple prompt-based interactions.
type Generator struct {
	models    modelCaller
	model     string
	logger    *zap.Logger
	maxLogLen int
}

// NewGenerator creates a new Generator configured for the Gemini API backend.
func NewGenerator(ctx context.Context, apiKey, model string, maxLogLength int, logger *zap.Logger) (*Generator, error) {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return nil, errors.New("gemini api key is required")
	}

	cfg := &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	}

	client, err := genai.NewClient(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}

	if model = strings.TrimSpace(model); model == "" {
		model = defaultModel
	}

	logger = logfields.WithCommonFields(logger, "gemini", model)

	if maxLogLength <= 0 {
		maxLogLength = defaultMaxLogLength
	}

	return &Generator{
		models:    client.Models,
		model:     model,
		logger:    logger,
		maxLogLen: maxLogLength,
	}, nil
}

// GenerateContent sends the request to Gemini and returns the concatenated
// textual response of the first candidates.
func (g *Generator) GenerateContent(ctx context.Context, req ai.Request) (string, error) {
	if g == nil || g.models == nil {
		return "", errors.New("gemini generator is not initialized")
	}

	message := strings.TrimSpace(req.Message)
	if message == "" {
		return "", errors.New("message must not be empty")
	}

	model := strings.TrimSpace(req.Model)
	if model == "" {
		model = g.model
	}

	cfg := &genai.GenerateContentConfig{}
	if system := strings.TrimSpace(req.System); system != "" {
		cfg.SystemInstruction = genai.NewContentFromText(system, genai.RoleUser)
	}
	if req.JSONOutput {
		cfg.ResponseMIMEType = jsonMIMEType
	}

	g.logger.Debug("gemini generate content request",
		zap.String("model", model),
		zap.Bool("json_output", req.JSONOutput),
		zap.Int("message_length", utf8.RuneCountInString(message)),
		zap.String("message_preview", utils.TruncateForLog(message, g.maxLogLen)),
	)

	resp, err := g.models.GenerateContent(ctx, model, genai.Text(message), cfg)
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}

	var builder strings.Builder
	for _, candidate := range resp.Candidates {
		if candidate == nil || candidate.Content == nil {
			continue
		}
		for _, part := range candidate.Content.Parts {
			if part == nil {
				continue
			}
			text := strings.TrimSpace(part.Text)
			if text == "" {
				continue
			}
			if builder.Len() > 0 {
				builder.WriteString("\n")
			}
			builder.WriteString(text)
		}
	}

	output := strings.TrimSpace(builder.String())
	if output == "" {
		return "", errors.New("gemini api returned empty response")
	}

	g.logger.Debug("gemini generate content response",
		zap.String("model", model),
		zap.Int("response_length", utf8.RuneCountInString(output)),
		zap.String("response_preview", utils.TruncateForLog(output, g.maxLogLen)),
	)

	return output, nil
}

func (g *Generator) Model() string {
	if g == nil {
		return ""
	}
	return g.model
}
