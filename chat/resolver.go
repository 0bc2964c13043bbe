// Package chat answers chatbot queries. It searches stored question titles
// first and falls back to a generative model, saving every generated answer
// into the dataset under the AI Knowledge Base category.
package chat

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/Muzammil-Ahm3d/jobready"
)

// Defaults applied when the corresponding Resolver field is zero.
const (
	DefaultHistoryWindow = 6
	DefaultTimeout       = 30 * time.Second
)

// Ensure Resolver implements jobready.Resolver at compile time.
var _ jobready.Resolver = (*Resolver)(nil)

// Resolver implements jobready.Resolver.
type Resolver struct {
	Store jobready.DatasetStore

	// Generator answers local misses. Nil means AI is not configured.
	Generator jobready.Generator

	// TokenCounter and MaxHistoryTokens, when both set, drop the oldest
	// history turns until the history fits the budget.
	TokenCounter     jobready.TokenCounter
	MaxHistoryTokens int

	// MinMatchLength skips local search for queries shorter than this many
	// characters. Zero searches every query.
	MinMatchLength int

	HistoryWindow int
	Timeout       time.Duration
	Logger        *slog.Logger
}

// Resolve answers req from a stored question whose title contains the
// query, or from the generator on a miss.
func (r *Resolver) Resolve(ctx context.Context, req *jobready.ChatRequest) (*jobready.Answer, error) {
	query, history, err := r.conversation(req)
	if err != nil {
		return nil, err
	}

	ds, err := r.Store.Read(ctx)
	if err != nil {
		return nil, err
	}

	if q := r.match(ds, query); q != nil {
		r.logger().Debug("local hit", "query", query, "title", q.Title)
		return &jobready.Answer{
			Answer:      q.Answer,
			Source:      jobready.SourceLocal,
			Question:    q.Title,
			CodeSnippet: q.CodeSnippet,
		}, nil
	}

	if r.Generator == nil {
		return nil, jobready.Errorf(jobready.EUNAVAILABLE, "AI capabilities not configured (missing API key)")
	}

	history = r.trimHistory(ctx, history)
	text, err := r.generate(ctx, BuildPrompt(query, history))
	if err != nil {
		return nil, err
	}

	gen := ParseResponse(text, query)
	q := &jobready.Question{
		CategoryID:       jobready.AICategoryID,
		Title:            gen.Title,
		Answer:           gen.Answer,
		UseCases:         gen.UseCases,
		RealTimeUseCases: gen.RealTimeUseCases,
		CodeSnippet:      gen.CodeSnippet,
	}

	// Ids are assigned from the dataset as read under the update lock, not
	// from ds, which may be stale after the model call.
	if _, err := jobready.UpdateDataset(ctx, r.Store, func(ds *jobready.Dataset) error {
		ds.AddQuestion(q)
		return nil
	}); err != nil {
		r.logger().Warn("failed to save generated answer", "query", query, "err", err)
	} else {
		r.logger().Info("saved generated answer", "id", q.ID, "slug", q.Slug)
	}

	return &jobready.Answer{
		Answer:      q.Answer,
		Source:      jobready.SourceAI,
		Question:    q.Title,
		CodeSnippet: q.CodeSnippet,
	}, nil
}

// conversation extracts the query and the preceding history window.
func (r *Resolver) conversation(req *jobready.ChatRequest) (string, []jobready.Message, error) {
	if req == nil {
		return "", nil, jobready.Errorf(jobready.EINVALID, "query required")
	}
	if len(req.Messages) == 0 {
		query := strings.TrimSpace(req.Query)
		if query == "" {
			return "", nil, jobready.Errorf(jobready.EINVALID, "query required")
		}
		return query, nil, nil
	}

	last := -1
	for i, m := range req.Messages {
		switch m.Role {
		case jobready.RoleUser:
			last = i
		case jobready.RoleAssistant, jobready.RoleModel:
		default:
			return "", nil, jobready.Errorf(jobready.EINVALID, "invalid message role %q", m.Role)
		}
	}
	if last < 0 {
		return "", nil, jobready.Errorf(jobready.EINVALID, "messages contain no user turn")
	}
	query := strings.TrimSpace(req.Messages[last].Content)
	if query == "" {
		return "", nil, jobready.Errorf(jobready.EINVALID, "query required")
	}

	window := r.HistoryWindow
	if window <= 0 {
		window = DefaultHistoryWindow
	}
	history := req.Messages[:last]
	if len(history) > window {
		history = history[len(history)-window:]
	}
	return query, history, nil
}

// match returns the first question, in stored order, whose title contains
// the query case-insensitively.
func (r *Resolver) match(ds *jobready.Dataset, query string) *jobready.Question {
	if r.MinMatchLength > 0 && utf8.RuneCountInString(query) < r.MinMatchLength {
		return nil
	}
	needle := strings.ToLower(query)
	for i := range ds.Questions {
		if strings.Contains(strings.ToLower(ds.Questions[i].Title), needle) {
			return &ds.Questions[i]
		}
	}
	return nil
}

// trimHistory drops the oldest turns until the rest fits MaxHistoryTokens.
// History is kept whole if tokens cannot be counted.
func (r *Resolver) trimHistory(ctx context.Context, history []jobready.Message) []jobready.Message {
	if r.TokenCounter == nil || r.MaxHistoryTokens <= 0 || len(history) == 0 {
		return history
	}

	counts := make([]int, len(history))
	total := 0
	for i, m := range history {
		n, err := r.TokenCounter.CountTokens(ctx, m.Content)
		if err != nil {
			r.logger().Debug("token count failed", "err", err)
			return history
		}
		counts[i] = n
		total += n
	}
	for len(history) > 0 && total > r.MaxHistoryTokens {
		total -= counts[0]
		counts = counts[1:]
		history = history[1:]
	}
	return history
}

// generate calls the generator under the configured timeout. Every failure
// is reported as EUNAVAILABLE.
func (r *Resolver) generate(ctx context.Context, prompt string) (string, error) {
	timeout := r.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	text, err := r.Generator.Generate(ctx, prompt)
	if errors.Is(err, context.DeadlineExceeded) {
		return "", jobready.Errorf(jobready.EUNAVAILABLE, "AI service timed out after %s", timeout)
	} else if err != nil {
		r.logger().Error("generation failed", "err", err)
		return "", jobready.Errorf(jobready.EUNAVAILABLE, "AI service unavailable")
	}
	if strings.TrimSpace(text) == "" {
		return "", jobready.Errorf(jobready.EUNAVAILABLE, "AI service returned an empty response")
	}
	return text, nil
}

func (r *Resolver) logger() *slog.Logger {
	if r.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return r.Logger
}
