package llm

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
)

// LoggingProvider is a decorator that logs every completion call.
type LoggingProvider struct {
	inner  Provider
	logger func(ctx context.Context) *logrus.Entry
}

// WithLogging wraps a Provider so each call is logged through the entry
// returned by logger, which lets callers attach request-scoped fields.
func WithLogging(p Provider, logger func(ctx context.Context) *logrus.Entry) Provider {
	return &LoggingProvider{inner: p, logger: logger}
}

func (l *LoggingProvider) Complete(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()

	resp, err := l.inner.Complete(ctx, req)

	entry := l.logger(ctx).WithFields(logrus.Fields{
		"model":      l.inner.ModelID(),
		"max_tokens": req.MaxTokens,
		"latency_ms": time.Since(start).Milliseconds(),
	})

	if err != nil {
		entry.WithError(err).Warn("llm completion failed")
		return nil, err
	}

	entry.WithFields(logrus.Fields{
		"served_by":     resp.Model,
		"stop_reason":   resp.StopReason,
		"input_tokens":  resp.Usage.InputTokens,
		"output_tokens": resp.Usage.OutputTokens,
	}).Info("llm completion finished")
	entry.Debugf("raw completion:\n%s", resp.Text)

	return resp, nil
}

func (l *LoggingProvider) ModelID() string {
	return l.inner.ModelID()
}
