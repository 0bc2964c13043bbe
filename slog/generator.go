package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/Muzammil-Ahm3d/jobready"
)

// Ensure LoggingGenerator implements jobready.Generator.
var _ jobready.Generator = (*LoggingGenerator)(nil)

// LoggingGenerator wraps a Generator with logging. Prompts and responses
// are logged by size only.
type LoggingGenerator struct {
	next   jobready.Generator
	logger *slog.Logger
}

// NewLoggingGenerator creates a new LoggingGenerator.
func NewLoggingGenerator(next jobready.Generator, logger *slog.Logger) *LoggingGenerator {
	return &LoggingGenerator{next: next, logger: logger}
}

// Generate delegates to the wrapped generator and logs the call.
func (g *LoggingGenerator) Generate(ctx context.Context, prompt string) (text string, err error) {
	defer func(begin time.Time) {
		g.logger.Info("generate",
			"prompt_bytes", len(prompt),
			"response_bytes", len(text),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return g.next.Generate(ctx, prompt)
}
