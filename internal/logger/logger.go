package logger

import (
	"context"

	"github.com/sirupsen/logrus"
)

// CorrelationIDKey is the context key under which the request
// correlation ID is stored by the middleware.
const CorrelationIDKey = "correlation_id"

// Logger wraps logrus for structured logging with context support
type Logger struct {
	*logrus.Entry
}

// New creates a new logger
func New() *Logger {
	return &Logger{
		Entry: logrus.NewEntry(logrus.StandardLogger()),
	}
}

// WithContext creates a logger carrying the request correlation ID
func WithContext(ctx context.Context) *Logger {
	logger := New()

	if id, ok := ctx.Value(CorrelationIDKey).(string); ok && id != "" {
		logger.Entry = logger.Entry.WithField("correlation_id", id)
	}

	return logger
}

// WithField adds a field to the logger
func (l *Logger) WithField(key string, value interface{}) *Logger {
	return &Logger{
		Entry: l.Entry.WithField(key, value),
	}
}

// WithFields adds multiple fields to the logger
func (l *Logger) WithFields(fields map[string]interface{}) *Logger {
	return &Logger{
		Entry: l.Entry.WithFields(fields),
	}
}
