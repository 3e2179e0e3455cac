package question

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/saulo-duarte/codequiz-lambda/internal/config"
	"github.com/saulo-duarte/codequiz-lambda/internal/llm"
)

const (
	msgExtractionFailed = "Failed to extract JSON content from the response"
	msgInvalidJSON      = "Invalid JSON response"
	msgUnexpectedPrefix = "An unexpected error occurred: "
)

type Config struct {
	MaxTokens int

	// Timeout bounds the model call. Zero means no timeout beyond the caller's context.
	Timeout time.Duration

	// StrictExtraction takes the first backtick span as-is. When false the
	// first span that holds a JSON object is used instead.
	StrictExtraction bool
}

func DefaultConfig() Config {
	return Config{
		MaxTokens:        1500,
		Timeout:          60 * time.Second,
		StrictExtraction: true,
	}
}

type Service interface {
	// GenerateCodingQuestion never panics and never returns nil; every
	// failure is reported as an *ErrorResponse.
	GenerateCodingQuestion(ctx context.Context) Result
}

type service struct {
	provider llm.Provider
	cfg      Config
}

func NewService(provider llm.Provider, cfg Config) Service {
	return &service{provider: provider, cfg: cfg}
}

func (s *service) GenerateCodingQuestion(ctx context.Context) (result Result) {
	log := config.WithContext(ctx).WithField("generation_id", uuid.NewString())

	defer func() {
		if r := recover(); r != nil {
			log.Errorf("panic while generating question: %v", r)
			result = newErrorResponse(KindUnexpected, fmt.Sprintf("%s%v", msgUnexpectedPrefix, r))
		}
	}()

	log = log.WithField("model", s.provider.ModelID())

	result = s.generate(ctx, log)
	if errResp, ok := result.(*ErrorResponse); ok {
		log.WithField("kind", errResp.Kind.String()).Warnf("question generation failed: %s", errResp.Message)
	} else {
		log.Info("question generated")
	}
	return result
}

func (s *service) generate(ctx context.Context, log *logrus.Entry) Result {
	if s.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.cfg.Timeout)
		defer cancel()
	}

	resp, err := s.provider.Complete(ctx, llm.Request{
		Prompt:    BuildPrompt(),
		MaxTokens: s.cfg.MaxTokens,
	})
	if err != nil {
		return unexpected(err)
	}
	if resp.StopReason == "max_tokens" {
		log.Warn("completion hit the token ceiling and may be truncated")
	}

	segment := s.extract(resp.Text)
	if segment == "" {
		return newErrorResponse(KindExtraction, msgExtractionFailed)
	}

	var parsed any
	if err := json.Unmarshal([]byte(segment), &parsed); err != nil {
		log.WithError(err).Debugf("segment is not valid JSON:\n%s", segment)
		return newErrorResponse(KindParse, msgInvalidJSON)
	}

	// A non-object top level has none of the required fields.
	candidate, ok := parsed.(map[string]any)
	if !ok {
		candidate = map[string]any{}
	}
	if err := ValidateShape(candidate); err != nil {
		return validationFailure(err)
	}
	if err := CheckConformance([]byte(segment)); err != nil {
		return validationFailure(err)
	}

	var q CodingQuestion
	if err := json.Unmarshal([]byte(segment), &q); err != nil {
		return unexpected(err)
	}
	return &q
}

func (s *service) extract(text string) string {
	if s.cfg.StrictExtraction {
		return ExtractDelimitedSegment(text)
	}
	return ExtractJSONSegment(text)
}

func validationFailure(err error) *ErrorResponse {
	var verr *ValidationError
	if errors.As(err, &verr) {
		return newErrorResponse(KindValidation, verr.Message)
	}
	return unexpected(err)
}

func unexpected(err error) *ErrorResponse {
	return newErrorResponse(KindUnexpected, msgUnexpectedPrefix+err.Error())
}
