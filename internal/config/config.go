package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// Config holds process configuration loaded once at startup.
type Config struct {
	Port string `validate:"required,numeric"`

	Provider        string `validate:"required,oneof=anthropic openai gemini mock"`
	Model           string
	AnthropicAPIKey string `validate:"required_if=Provider anthropic"`
	OpenAIAPIKey    string `validate:"required_if=Provider openai"`
	OpenAIBaseURL   string `validate:"omitempty,url"`
	GeminiAPIKey    string `validate:"required_if=Provider gemini"`

	MaxTokens   int           `validate:"min=1,max=8192"`
	Timeout     time.Duration `validate:"gt=0"`
	MaxAttempts int           `validate:"min=1,max=5"`

	StrictExtraction bool

	LogLevel  string `validate:"oneof=trace debug info warn warning error fatal panic"`
	LogFormat string `validate:"oneof=json text"`

	CORSAllowedOrigins []string `validate:"min=1,dive,required"`
}

// envNames maps struct fields to the variables they are read from, for error messages.
var envNames = map[string]string{
	"Port":               "PORT",
	"Provider":           "LLM_PROVIDER",
	"AnthropicAPIKey":    "ANTHROPIC_API_KEY",
	"OpenAIAPIKey":       "OPENAI_API_KEY",
	"OpenAIBaseURL":      "OPENAI_BASE_URL",
	"GeminiAPIKey":       "GEMINI_API_KEY",
	"MaxTokens":          "LLM_MAX_TOKENS",
	"Timeout":            "LLM_TIMEOUT",
	"MaxAttempts":        "LLM_MAX_ATTEMPTS",
	"LogLevel":           "LOG_LEVEL",
	"LogFormat":          "LOG_FORMAT",
	"CORSAllowedOrigins": "CORS_ALLOWED_ORIGINS",
}

var validate = validator.New()

func Default() *Config {
	return &Config{
		Port:               "8080",
		Provider:           "anthropic",
		MaxTokens:          1500,
		Timeout:            60 * time.Second,
		MaxAttempts:        1,
		StrictExtraction:   true,
		LogLevel:           "info",
		LogFormat:          "json",
		CORSAllowedOrigins: []string{"*"},
	}
}

// Load reads configuration from environment variables on top of Default
// and validates it.
func Load() (*Config, error) {
	cfg, err := LoadEnv()
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// LoadEnv reads environment variables on top of Default without validating,
// so callers can apply further overrides before calling Validate.
func LoadEnv() (*Config, error) {
	cfg := Default()

	cfg.Port = getEnv("PORT", cfg.Port)
	cfg.Provider = strings.ToLower(getEnv("LLM_PROVIDER", cfg.Provider))
	cfg.Model = getEnv("LLM_MODEL", "")
	cfg.AnthropicAPIKey = os.Getenv("ANTHROPIC_API_KEY")
	cfg.OpenAIAPIKey = os.Getenv("OPENAI_API_KEY")
	cfg.OpenAIBaseURL = os.Getenv("OPENAI_BASE_URL")
	cfg.GeminiAPIKey = os.Getenv("GEMINI_API_KEY")
	cfg.LogLevel = strings.ToLower(getEnv("LOG_LEVEL", cfg.LogLevel))
	cfg.LogFormat = strings.ToLower(getEnv("LOG_FORMAT", cfg.LogFormat))

	var err error
	if cfg.MaxTokens, err = getEnvInt("LLM_MAX_TOKENS", cfg.MaxTokens); err != nil {
		return nil, err
	}
	if cfg.MaxAttempts, err = getEnvInt("LLM_MAX_ATTEMPTS", cfg.MaxAttempts); err != nil {
		return nil, err
	}
	if cfg.Timeout, err = getEnvDuration("LLM_TIMEOUT", cfg.Timeout); err != nil {
		return nil, err
	}
	if cfg.StrictExtraction, err = getEnvBool("QUESTION_STRICT_EXTRACTION", cfg.StrictExtraction); err != nil {
		return nil, err
	}

	if origins := os.Getenv("CORS_ALLOWED_ORIGINS"); origins != "" {
		cfg.CORSAllowedOrigins = splitList(origins)
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		name, ok := envNames[fe.StructField()]
		if !ok {
			name = fe.StructField()
		}
		switch fe.Tag() {
		case "required", "required_if":
			msgs = append(msgs, fmt.Sprintf("%s is required", name))
		default:
			msgs = append(msgs, fmt.Sprintf("%s is invalid (%s=%s)", name, fe.Tag(), fe.Param()))
		}
	}
	return errors.New(strings.Join(msgs, "; "))
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer: %w", key, err)
	}
	return n, nil
}

func getEnvBool(key string, fallback bool) (bool, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("%s must be a boolean: %w", key, err)
	}
	return b, nil
}

func getEnvDuration(key string, fallback time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("%s must be a duration: %w", key, err)
	}
	return d, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
