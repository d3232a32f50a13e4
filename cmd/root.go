package cmd

import (
	"errors"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	app = "interview-grader"

	envAPIKey = "GEMINI_API_KEY"
)

type Config struct {
	AI      *AIConfig      `mapstructure:"ai"`
	Grading *GradingConfig `mapstructure:"grading"`
}

type AIConfig struct {
	Provider string        `mapstructure:"provider"`
	Gemini   *GeminiConfig `mapstructure:"gemini"`
}

type GeminiConfig struct {
	APIKeyFile      string `mapstructure:"api-key-file"`
	ExtractionModel string `mapstructure:"extraction-model"`
	GradingModel    string `mapstructure:"grading-model"`
	AnalysisModel   string `mapstructure:"analysis-model"`
	MaxLogLength    int    `mapstructure:"max-log-length"`
}

type GradingConfig struct {
	Pacing time.Duration `mapstructure:"pacing"`
}

var (
	// Used for flags.
	cfgFile string

	rootCmd = &cobra.Command{
		Use:   app,
		Short: "interview-grader grades an interview transcript against a rubric using an LLM",
	}
)

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "a config file (default is interview-grader.yaml in current directory)")
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "verbose/debug output")
	rootCmd.PersistentFlags().BoolP("json", "j", false, "json format for logging")

	viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	viper.BindPFlag("json", rootCmd.PersistentFlags().Lookup("json"))
}

func initConfig() {
	// The api key may live in a local .env file.
	_ = godotenv.Load()

	// Config needed only for the grade command. If there is no config, we can skip initialization
	if gradeCmd.CalledAs() == "" {
		return
	}

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigName(app + ".yaml")
	}

	if err := viper.ReadInConfig(); err != nil {
		// The config file is optional, all settings have defaults. An
		// explicitly requested or unparseable file is still fatal.
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return
		}
		log.Fatal(err)
	}
}

func getConfig() (*Config, error) {
	var config *Config
	err := viper.Unmarshal(&config)
	if err != nil {
		return config, err
	}

	return config, nil
}
