package config

import (
	"context"
	"os"
	"strings"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/sirupsen/logrus"
)

var Logger = logrus.New()

// InitLogger configures the shared logger. Unknown levels fall back to info.
func InitLogger(level, format string) {
	Logger.SetOutput(os.Stdout)

	lvl, err := logrus.ParseLevel(strings.ToLower(level))
	if err != nil {
		lvl = logrus.InfoLevel
	}
	Logger.SetLevel(lvl)

	if strings.EqualFold(format, "text") {
		Logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
		return
	}
	Logger.SetFormatter(&logrus.JSONFormatter{})
}

func WithContext(ctx context.Context) *logrus.Entry {
	entry := logrus.NewEntry(Logger)
	if ctx == nil {
		return entry
	}
	if reqID := middleware.GetReqID(ctx); reqID != "" {
		entry = entry.WithField("request_id", reqID)
	}
	return entry
}
