package http

import (
	"context"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/oshokin/saes-client/internal/logger"
)

// RestyLogger routes resty's internal diagnostics into the application logger.
type RestyLogger struct{}

// NewRestyLogger creates and returns a new instance of RestyLogger.
func NewRestyLogger() resty.Logger {
	return &RestyLogger{}
}

// Errorf logs a resty error.
func (l *RestyLogger) Errorf(format string, v ...any) {
	logger.Errorf(context.Background(), trimFormat(format), v...)
}

// Warnf logs a resty warning.
func (l *RestyLogger) Warnf(format string, v ...any) {
	logger.Warnf(context.Background(), trimFormat(format), v...)
}

// Debugf logs a resty debug message.
func (l *RestyLogger) Debugf(format string, v ...any) {
	logger.Debugf(context.Background(), trimFormat(format), v...)
}

// trimFormat drops the trailing newline resty appends to its messages.
func trimFormat(format string) string {
	return strings.TrimRight(format, "\n")
}
