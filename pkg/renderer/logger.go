package renderer

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/df07/go-stochastic-raytracer/pkg/core"
)

// DefaultLogger implements core.Logger by writing to stdout
type DefaultLogger struct{}

func (dl *DefaultLogger) Printf(format string, args ...interface{}) {
	fmt.Printf(format, args...)
}

// NewDefaultLogger creates a new default logger
func NewDefaultLogger() core.Logger {
	return &DefaultLogger{}
}

// SlogLogger implements core.Logger on top of a structured logger.
// Each Printf call becomes one Info record.
type SlogLogger struct {
	logger *slog.Logger
}

// NewSlogLogger wraps a slog.Logger, falling back to slog.Default when nil
func NewSlogLogger(logger *slog.Logger) core.Logger {
	if logger == nil {
		logger = slog.Default()
	}
	return &SlogLogger{logger: logger}
}

func (sl *SlogLogger) Printf(format string, args ...interface{}) {
	msg := strings.TrimRight(fmt.Sprintf(format, args...), "\n")
	sl.logger.Log(context.Background(), slog.LevelInfo, msg)
}

// discardLogger drops all output
type discardLogger struct{}

func (discardLogger) Printf(string, ...interface{}) {}
