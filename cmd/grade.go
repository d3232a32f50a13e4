package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/spigell/interview-grader/internal/ai/gemini"
	"github.com/spigell/interview-grader/internal/grading"
	"github.com/spigell/interview-grader/internal/interview"
	"github.com/spigell/interview-grader/internal/logger"
	"github.com/spigell/interview-grader/internal/secrets"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const (
	defaultExtractionModel = "gemini-2.5-pro"
	defaultGradingModel    = "gemini-2.5-flash"
	defaultAnalysisModel   = "gemini-2.5-flash"
)

var errExit = errors.New("exit requested")

var gradeCmd = &cobra.Command{
	Use:   "grade",
	Short: "Grade an interview transcript against a rubric",
	Run: func(cmd *cobra.Command, _ []string) {
		grade(cmd)
	},
}

func init() {
	rootCmd.AddCommand(gradeCmd)

	gradeCmd.Flags().StringP("rubric", "r", "", "path to the rubric JSON file")
	gradeCmd.Flags().StringP("transcript", "t", "", "path to the interview transcript text file")
	gradeCmd.Flags().StringP("output", "o", "", "path to write the output analysis JSON file")
	gradeCmd.Flags().BoolP("auto-approve", "y", false, "do not ask for confirmation before overwriting the output file")

	for _, name := range []string{"rubric", "transcript", "output"} {
		if err := gradeCmd.MarkFlagRequired(name); err != nil {
			log.Fatalf("marking %s flag as required: %v", name, err)
		}
	}
}

// grade is the main command for the cli.
func grade(cmd *cobra.Command) {
	ctx := context.Background()

	logger, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	logger.Info("starting the interview-grader", zap.String("version", version))

	config = config.withDefaults()

	// do not bother error since there is a valid parseable config
	pretty, _ := json.MarshalIndent(config, "", "  ")
	logger.Debug(fmt.Sprintf("starting with config: \n %s", pretty))

	generator, err := newGenerator(ctx, config.AI, logger)
	if err != nil {
		logger.Fatal(
			"building gemini generator",
			zap.Error(err),
			zap.String("hint", "set the GEMINI_API_KEY environment variable or the 'ai.gemini.api-key-file' key in the configuration file"),
		)
	}

	rubricPath := cmd.Flag("rubric").Value.String()
	transcriptPath := cmd.Flag("transcript").Value.String()
	outputPath := cmd.Flag("output").Value.String()

	rubric, err := interview.LoadRubric(rubricPath)
	if err != nil {
		logger.Fatal("loading rubric", zap.Error(err))
	}

	logger.Info("rubric loaded", zap.Int("questions", len(rubric)))

	transcript, err := interview.LoadTranscript(transcriptPath)
	if err != nil {
		logger.Fatal("loading transcript", zap.Error(err))
	}

	if err := confirmOverwrite(cmd, outputPath); err != nil {
		if errors.Is(err, errExit) {
			logger.Info("exiting", zap.String("reason", "output file kept"))
			return
		}
		logger.Fatal("checking output file", zap.Error(err))
	}

	pipeline := grading.New(generator, &grading.Config{
		ExtractionModel: config.AI.Gemini.ExtractionModel,
		GradingModel:    config.AI.Gemini.GradingModel,
		AnalysisModel:   config.AI.Gemini.AnalysisModel,
		Pacing:          config.Grading.Pacing,
	}, logger)

	result, err := pipeline.Run(ctx, rubric, transcript)
	if err != nil {
		logger.Fatal("grading run failed", zap.Error(err))
	}

	if err := result.ToFile(outputPath); err != nil {
		// The computed result is lost, but the run itself succeeded.
		logger.Error("writing output file", zap.Error(err))
		return
	}

	logger.Info("analysis written",
		zap.String("filename", outputPath),
		zap.Float64("overall_score", result.OverallScore),
	)
}

// confirmOverwrite asks for confirmation before clobbering an existing output
// file, unless auto-approve is set.
func confirmOverwrite(cmd *cobra.Command, path string) error {
	if cmd.Flag("auto-approve").Value.String() == "true" {
		return nil
	}

	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}

	prompt := promptui.Prompt{
		Label:     fmt.Sprintf("Output file %s already exists. Overwrite", path),
		IsConfirm: true,
	}

	if _, err := prompt.Run(); err != nil {
		if errors.Is(err, promptui.ErrAbort) {
			return errExit
		}
		return err
	}

	return nil
}

func newGenerator(ctx context.Context, cfg *AIConfig, logger *zap.Logger) (*gemini.Generator, error) {
	provider := strings.TrimSpace(strings.ToLower(cfg.Provider))
	if provider != "" && provider != "gemini" {
		return nil, fmt.Errorf("unsupported ai provider: %s", cfg.Provider)
	}

	apiKey, err := secrets.Load(secrets.Source{
		Name: "gemini api key",
		File: cfg.Gemini.APIKeyFile,
		Env:  envAPIKey,
	})
	if err != nil {
		return nil, err
	}

	return gemini.NewGenerator(ctx, apiKey, cfg.Gemini.GradingModel, cfg.Gemini.MaxLogLength, logger)
}

func (c *Config) withDefaults() *Config {
	if c == nil {
		c = &Config{}
	}

	if c.AI == nil {
		c.AI = &AIConfig{}
	}

	if c.AI.Provider == "" {
		c.AI.Provider = "gemini"
	}

	if c.AI.Gemini == nil {
		c.AI.Gemini = &GeminiConfig{}
	}

	if c.AI.Gemini.ExtractionModel == "" {
		c.AI.Gemini.ExtractionModel = defaultExtractionModel
	}

	if c.AI.Gemini.GradingModel == "" {
		c.AI.Gemini.GradingModel = defaultGradingModel
	}

	if c.AI.Gemini.AnalysisModel == "" {
		c.AI.Gemini.AnalysisModel = defaultAnalysisModel
	}

	if c.Grading == nil {
		c.Grading = &GradingConfig{}
	}

	if c.Grading.Pacing <= 0 {
		c.Grading.Pacing = grading.DefaultPacing
	}

	return c
}
