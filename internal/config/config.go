package config

import (
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config holds the full application configuration.
type Config struct {
	Log       LogConfig       `yaml:"log" mapstructure:"log"`
	OCR       OCRConfig       `yaml:"ocr" mapstructure:"ocr"`
	Sales     SalesConfig     `yaml:"sales" mapstructure:"sales"`
	Codegen   CodegenConfig   `yaml:"codegen" mapstructure:"codegen"`
	Anthropic AnthropicConfig `yaml:"anthropic" mapstructure:"anthropic"`
}

// OCRConfig configures PDF page and table extraction.
type OCRConfig struct {
	Provider      string `yaml:"provider" mapstructure:"provider"`
	PdfToTextPath string `yaml:"pdftotext_path" mapstructure:"pdftotext_path"`
	MistralKey    string `yaml:"mistral_api_key" mapstructure:"mistral_api_key"`
	MistralModel  string `yaml:"mistral_model" mapstructure:"mistral_model"`
}

// SalesConfig holds the city clustering heuristics used by the sales aggregator.
type SalesConfig struct {
	// ReferenceAlternates lists known spellings of one reference city. The
	// first entry is the canonical label.
	ReferenceAlternates []string `yaml:"reference_alternates" mapstructure:"reference_alternates"`
	AlternateThreshold  float64  `yaml:"alternate_threshold" mapstructure:"alternate_threshold"`
	FuzzyThreshold      float64  `yaml:"fuzzy_threshold" mapstructure:"fuzzy_threshold"`
	UnknownCity         string   `yaml:"unknown_city" mapstructure:"unknown_city"`
}

// CodegenConfig holds the values baked into generated sentiment programs.
type CodegenConfig struct {
	APIURL       string `yaml:"api_url" mapstructure:"api_url"`
	Model        string `yaml:"model" mapstructure:"model"`
	SystemPrompt string `yaml:"system_prompt" mapstructure:"system_prompt"`
}

// AnthropicConfig holds Anthropic API settings for live classification.
type AnthropicConfig struct {
	Key       string `yaml:"key" mapstructure:"key"`
	Model     string `yaml:"model" mapstructure:"model"`
	MaxTokens int64  `yaml:"max_tokens" mapstructure:"max_tokens"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

// Load reads configuration from file and environment.
func Load() (*Config, error) {
	v := viper.New()

	// Config file
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	// Environment
	v.SetEnvPrefix("ANSWER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
	v.SetDefault("ocr.provider", "local")
	v.SetDefault("ocr.pdftotext_path", "pdftotext")
	v.SetDefault("ocr.mistral_model", "pixtral-large-latest")
	v.SetDefault("sales.reference_alternates", []string{
		"Jakarta", "Jakkarta", "Jakarata", "Djakarta", "Jayakarta", "Batavia",
	})
	v.SetDefault("sales.alternate_threshold", 90)
	v.SetDefault("sales.fuzzy_threshold", 80)
	v.SetDefault("sales.unknown_city", "Unknown")
	v.SetDefault("codegen.api_url", "https://api.openai.com/v1/chat/completions")
	v.SetDefault("codegen.model", "gpt-4o-mini")
	v.SetDefault("codegen.system_prompt", "Analyze the sentiment of the given text and classify it as GOOD, BAD, or NEUTRAL.")
	v.SetDefault("anthropic.model", "claude-haiku-4-5-20251001")
	v.SetDefault("anthropic.max_tokens", 16)

	// Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, eris.Wrap(err, "config: read file")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, eris.Wrap(err, "config: unmarshal")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks value ranges that viper cannot express.
func (c *Config) Validate() error {
	if len(c.Sales.ReferenceAlternates) == 0 {
		return eris.New("config: sales.reference_alternates must not be empty")
	}
	if c.Sales.AlternateThreshold < 0 || c.Sales.AlternateThreshold > 100 {
		return eris.Errorf("config: sales.alternate_threshold %v out of range 0-100", c.Sales.AlternateThreshold)
	}
	if c.Sales.FuzzyThreshold < 0 || c.Sales.FuzzyThreshold > 100 {
		return eris.Errorf("config: sales.fuzzy_threshold %v out of range 0-100", c.Sales.FuzzyThreshold)
	}
	return nil
}

// InitLogger initializes the global zap logger.
func InitLogger(cfg LogConfig) error {
	var zapCfg zap.Config
	if cfg.Format == "console" {
		zapCfg = zap.NewDevelopmentConfig()
	} else {
		zapCfg = zap.NewProductionConfig()
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return eris.Wrap(err, "config: parse log level")
	}
	zapCfg.Level.SetLevel(level)

	logger, err := zapCfg.Build()
	if err != nil {
		return eris.Wrap(err, "config: build logger")
	}
	zap.ReplaceGlobals(logger)

	return nil
}
