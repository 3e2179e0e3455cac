package llm

import (
	"context"
	"errors"
	"fmt"

	"google.golang.org/genai"
)

const DefaultGeminiModel = "gemini-2.0-flash"

var geminiModels = map[string]string{
	"gemini-flash": "gemini-2.0-flash",
	"gemini-pro":   "gemini-2.5-pro",
}

type GeminiConfig struct {
	APIKey string
	Model  string
}

// GeminiProvider implements Provider using the Google Gen AI SDK.
type GeminiProvider struct {
	client *genai.Client
	model  string
}

func NewGeminiProvider(ctx context.Context, cfg GeminiConfig) (*GeminiProvider, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("gemini API key is required")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create Gemini client: %w", err)
	}

	return &GeminiProvider{
		client: client,
		model:  resolveModel(cfg.Model, DefaultGeminiModel, geminiModels),
	}, nil
}

func (p *GeminiProvider) Complete(ctx context.Context, req Request) (*Response, error) {
	result, err := p.client.Models.GenerateContent(
		ctx,
		p.model,
		genai.Text(req.Prompt),
		&genai.GenerateContentConfig{MaxOutputTokens: int32(req.MaxTokens)},
	)
	if err != nil {
		return nil, mapGeminiError(err)
	}

	text := result.Text()
	if text == "" {
		return nil, ErrEmptyResponse
	}

	resp := &Response{
		Text:       text,
		Model:      p.model,
		StopReason: "end",
	}
	if len(result.Candidates) > 0 && result.Candidates[0].FinishReason == "MAX_TOKENS" {
		resp.StopReason = "max_tokens"
	}
	if result.UsageMetadata != nil {
		resp.Usage = Usage{
			InputTokens:  int(result.UsageMetadata.PromptTokenCount),
			OutputTokens: int(result.UsageMetadata.CandidatesTokenCount),
		}
	}
	return resp, nil
}

func (p *GeminiProvider) ModelID() string {
	return p.model
}

func mapGeminiError(err error) error {
	var apiErr *genai.APIError
	if errors.As(err, &apiErr) {
		return classifyStatus(apiErr.Code, err)
	}
	return &ErrProviderUnavailable{Err: err}
}
