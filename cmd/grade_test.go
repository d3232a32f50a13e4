package cmd

import (
	"testing"
	"time"
)

func TestConfigWithDefaults(t *testing.T) {
	t.Parallel()

	var config *Config
	config = config.withDefaults()

	if config.AI == nil || config.AI.Gemini == nil || config.Grading == nil {
		t.Fatalf("expected all sections to be populated, got %+v", config)
	}

	if config.AI.Provider != "gemini" {
		t.Fatalf("unexpected provider: %q", config.AI.Provider)
	}

	if config.AI.Gemini.ExtractionModel != defaultExtractionModel {
		t.Fatalf("unexpected extraction model: %q", config.AI.Gemini.ExtractionModel)
	}

	if config.Grading.Pacing != time.Second {
		t.Fatalf("unexpected pacing: %v", config.Grading.Pacing)
	}
}

func TestConfigWithDefaultsKeepsExplicitValues(t *testing.T) {
	t.Parallel()

	config := &Config{
		AI: &AIConfig{
			Provider: "gemini",
			Gemini: &GeminiConfig{
				GradingModel: "gemini-2.5-pro",
			},
		},
		Grading: &GradingConfig{Pacing: 2 * time.Second},
	}

	config = config.withDefaults()

	if config.AI.Gemini.GradingModel != "gemini-2.5-pro" {
		t.Fatalf("expected explicit grading model to win, got %q", config.AI.Gemini.GradingModel)
	}

	if config.Grading.Pacing != 2*time.Second {
		t.Fatalf("expected explicit pacing to win, got %v", config.Grading.Pacing)
	}

	if config.AI.Gemini.AnalysisModel != defaultAnalysisModel {
		t.Fatalf("expected default analysis model, got %q", config.AI.Gemini.AnalysisModel)
	}
}
