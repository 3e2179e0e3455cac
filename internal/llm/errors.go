package llm

import (
	"errors"
	"fmt"
	"time"
)

// ErrEmptyResponse is returned when the provider replied without any text.
var ErrEmptyResponse = errors.New("model returned no text content")

// ErrRateLimit indicates the provider returned a rate limit error (429).
type ErrRateLimit struct {
	RetryAfter time.Duration
	Err        error
}

func (e *ErrRateLimit) Error() string {
	return fmt.Sprintf("rate limited (retry after %s): %v", e.RetryAfter, e.Err)
}

func (e *ErrRateLimit) Unwrap() error { return e.Err }

// ErrProviderUnavailable indicates the provider is down or unreachable.
type ErrProviderUnavailable struct {
	Err error
}

func (e *ErrProviderUnavailable) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("LLM provider unavailable: %v", e.Err)
	}
	return "LLM provider unavailable"
}

func (e *ErrProviderUnavailable) Unwrap() error { return e.Err }

// ErrRequestRejected indicates the provider refused the request itself
// (bad key, bad model name, malformed parameters). Not retryable.
type ErrRequestRejected struct {
	StatusCode int
	Err        error
}

func (e *ErrRequestRejected) Error() string {
	return fmt.Sprintf("request rejected by provider (status %d): %v", e.StatusCode, e.Err)
}

func (e *ErrRequestRejected) Unwrap() error { return e.Err }

// classifyStatus maps an HTTP status from a provider SDK error to one of
// the typed errors above.
func classifyStatus(status int, err error) error {
	switch {
	case status == 429:
		return &ErrRateLimit{Err: err}
	case status >= 500 || status == 0:
		return &ErrProviderUnavailable{Err: err}
	case status >= 400:
		return &ErrRequestRejected{StatusCode: status, Err: err}
	}
	return &ErrProviderUnavailable{Err: err}
}
