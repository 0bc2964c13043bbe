// Package slog provides logging decorators for jobready services.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/Muzammil-Ahm3d/jobready"
)

// Ensure LoggingDatasetStore implements jobready.DatasetStore.
var _ jobready.DatasetStore = (*LoggingDatasetStore)(nil)

// LoggingDatasetStore wraps a DatasetStore with logging. Wrap it in a
// SerialStore, not the other way round, so the lock stays visible to
// jobready.UpdateDataset.
type LoggingDatasetStore struct {
	next    jobready.DatasetStore
	logger  *slog.Logger
	backend string
}

// NewLoggingDatasetStore creates a new LoggingDatasetStore. The backend
// name is attached to every record.
func NewLoggingDatasetStore(next jobready.DatasetStore, backend string, logger *slog.Logger) *LoggingDatasetStore {
	return &LoggingDatasetStore{next: next, logger: logger, backend: backend}
}

// Read delegates to the wrapped store and logs the operation.
func (s *LoggingDatasetStore) Read(ctx context.Context) (ds *jobready.Dataset, err error) {
	defer func(begin time.Time) {
		attrs := []any{"backend", s.backend, "duration", time.Since(begin)}
		if ds != nil {
			attrs = append(attrs, "questions", len(ds.Questions), "version", ds.Version)
		}
		if err != nil {
			s.logger.Error("dataset read", append(attrs, "err", err)...)
			return
		}
		s.logger.Debug("dataset read", attrs...)
	}(time.Now())
	return s.next.Read(ctx)
}

// Write delegates to the wrapped store and logs the operation.
func (s *LoggingDatasetStore) Write(ctx context.Context, ds *jobready.Dataset) (err error) {
	defer func(begin time.Time) {
		s.logger.Info("dataset write",
			"backend", s.backend,
			"categories", len(ds.Categories),
			"questions", len(ds.Questions),
			"version", ds.Version,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Write(ctx, ds)
}
