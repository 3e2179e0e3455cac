// Package llm wraps the external text-generation APIs behind a single
// Provider interface so callers can swap vendors or substitute a mock.
package llm

import "context"

// Provider sends a single prompt to a model and returns its raw text reply.
type Provider interface {
	Complete(ctx context.Context, req Request) (*Response, error)

	// ModelID returns the model identifier this provider is configured to use.
	ModelID() string
}

// Request is a single-turn completion request.
type Request struct {
	Prompt string

	// MaxTokens caps the size of the reply.
	MaxTokens int
}

// Response holds the model's raw text output.
type Response struct {
	Text string

	// Model is the model that actually served the request.
	Model string

	// StopReason is normalized to "end" or "max_tokens".
	StopReason string

	Usage Usage
}

type Usage struct {
	InputTokens  int
	OutputTokens int
}

// resolveModel maps a friendly model name to a provider model ID. Empty
// names resolve to fallback; unknown names are used as-is.
func resolveModel(name, fallback string, models map[string]string) string {
	if name == "" {
		return fallback
	}
	if id, ok := models[name]; ok {
		return id
	}
	return name
}
