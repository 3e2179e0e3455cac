package llm

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
)

// Config selects and configures a provider.
type Config struct {
	// Provider is one of "anthropic", "openai", "gemini", "mock".
	Provider string

	// Model overrides the provider's default model.
	Model string

	Anthropic AnthropicConfig
	OpenAI    OpenAIConfig
	Gemini    GeminiConfig
	Retry     RetryConfig

	// MockReply is returned on every call when Provider is "mock".
	MockReply string
}

// NewProvider builds the configured provider wrapped as
// caller → retry → logging → base.
func NewProvider(ctx context.Context, cfg Config, logger func(ctx context.Context) *logrus.Entry) (Provider, error) {
	var base Provider
	var err error

	switch cfg.Provider {
	case "anthropic":
		ac := cfg.Anthropic
		ac.Model = cfg.Model
		base, err = NewAnthropicProvider(ac)
	case "openai":
		oc := cfg.OpenAI
		oc.Model = cfg.Model
		base, err = NewOpenAIProvider(oc)
	case "gemini":
		gc := cfg.Gemini
		gc.Model = cfg.Model
		base, err = NewGeminiProvider(ctx, gc)
	case "mock":
		mock := NewMockProvider()
		if cfg.MockReply != "" {
			mock.SetFallback(cfg.MockReply)
		}
		base = mock
	default:
		return nil, fmt.Errorf("unknown LLM provider: %q", cfg.Provider)
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", cfg.Provider, err)
	}

	return WithRetry(WithLogging(base, logger), cfg.Retry), nil
}
