package container

import (
	"context"
	"fmt"

	"github.com/go-chi/chi/v5"

	"github.com/saulo-duarte/codequiz-lambda/internal/config"
	"github.com/saulo-duarte/codequiz-lambda/internal/llm"
	"github.com/saulo-duarte/codequiz-lambda/internal/question"
	"github.com/saulo-duarte/codequiz-lambda/internal/router"
	"github.com/saulo-duarte/codequiz-lambda/internal/system"
)

type Container struct {
	Config            *config.Config
	Provider          llm.Provider
	QuestionContainer *question.QuestionContainer
	SystemHandler     *system.Handler
}

// New builds every dependency from cfg. The provider is created once here
// and shared by all requests.
func New(ctx context.Context, cfg *config.Config) (*Container, error) {
	provider, err := llm.NewProvider(ctx, LLMConfig(cfg), config.WithContext)
	if err != nil {
		return nil, fmt.Errorf("failed to create LLM provider: %w", err)
	}

	return NewWithProvider(cfg, provider), nil
}

// NewWithProvider wires the container around an existing provider.
func NewWithProvider(cfg *config.Config, provider llm.Provider) *Container {
	return &Container{
		Config:   cfg,
		Provider: provider,
		QuestionContainer: question.NewQuestionContainer(provider, question.Config{
			MaxTokens:        cfg.MaxTokens,
			Timeout:          cfg.Timeout,
			StrictExtraction: cfg.StrictExtraction,
		}),
		SystemHandler: system.NewHandler(),
	}
}

func (c *Container) Router() *chi.Mux {
	return router.New(router.RouterConfig{
		SystemHandler:   c.SystemHandler,
		QuestionHandler: c.QuestionContainer.Handler,
		AllowedOrigins:  c.Config.CORSAllowedOrigins,
	})
}

func LLMConfig(cfg *config.Config) llm.Config {
	retry := llm.DefaultRetryConfig()
	retry.MaxAttempts = cfg.MaxAttempts

	return llm.Config{
		Provider:  cfg.Provider,
		Model:     cfg.Model,
		Anthropic: llm.AnthropicConfig{APIKey: cfg.AnthropicAPIKey},
		OpenAI:    llm.OpenAIConfig{APIKey: cfg.OpenAIAPIKey, BaseURL: cfg.OpenAIBaseURL},
		Gemini:    llm.GeminiConfig{APIKey: cfg.GeminiAPIKey},
		Retry:     retry,
		MockReply: question.SampleCompletion,
	}
}
