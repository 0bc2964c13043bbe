package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/Muzammil-Ahm3d/jobready"
)

// Ensure service types implement interfaces.
var (
	_ jobready.Resolver    = (*LoggingResolver)(nil)
	_ jobready.Reformatter = (*LoggingReformatter)(nil)
)

// LoggingResolver wraps a Resolver with logging.
type LoggingResolver struct {
	next   jobready.Resolver
	logger *slog.Logger
}

// NewLoggingResolver creates a new LoggingResolver.
func NewLoggingResolver(next jobready.Resolver, logger *slog.Logger) *LoggingResolver {
	return &LoggingResolver{next: next, logger: logger}
}

// Resolve delegates to the wrapped resolver and logs the outcome.
func (r *LoggingResolver) Resolve(ctx context.Context, req *jobready.ChatRequest) (ans *jobready.Answer, err error) {
	defer func(begin time.Time) {
		var source jobready.Source
		var question string
		if ans != nil {
			source, question = ans.Source, ans.Question
		}
		r.logger.Info("resolve",
			"turns", len(req.Messages),
			"source", source,
			"question", question,
			"duration", time.Since(begin),
			"code", jobready.ErrorCode(err),
			"err", err,
		)
	}(time.Now())
	return r.next.Resolve(ctx, req)
}

// LoggingReformatter wraps a Reformatter with logging.
type LoggingReformatter struct {
	next   jobready.Reformatter
	logger *slog.Logger
}

// NewLoggingReformatter creates a new LoggingReformatter.
func NewLoggingReformatter(next jobready.Reformatter, logger *slog.Logger) *LoggingReformatter {
	return &LoggingReformatter{next: next, logger: logger}
}

// Reformat delegates to the wrapped reformatter and logs the result.
func (r *LoggingReformatter) Reformat(ctx context.Context) (result *jobready.ReformatResult, err error) {
	defer func(begin time.Time) {
		var updated int
		if result != nil {
			updated = result.Updated
		}
		r.logger.Info("reformat",
			"updated", updated,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return r.next.Reformat(ctx)
}
