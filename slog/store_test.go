package slog_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/Muzammil-Ahm3d/jobready"
	"github.com/Muzammil-Ahm3d/jobready/mock"
	jrslog "github.com/Muzammil-Ahm3d/jobready/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingDatasetStore_Read(t *testing.T) {
	t.Parallel()

	t.Run("logs read at debug level", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
		inner := &mock.DatasetStore{
			ReadFn: func(context.Context) (*jobready.Dataset, error) {
				ds := jobready.NewDataset()
				ds.Questions = append(ds.Questions, jobready.Question{ID: 1})
				ds.Version = "abc"
				return ds, nil
			},
		}

		store := jrslog.NewLoggingDatasetStore(inner, "fs", logger)
		_, err := store.Read(context.Background())

		require.NoError(t, err)
		output := buf.String()
		assert.Contains(t, output, "level=DEBUG")
		assert.Contains(t, output, "dataset read")
		assert.Contains(t, output, "backend=fs")
		assert.Contains(t, output, "questions=1")
		assert.Contains(t, output, "version=abc")
	})

	t.Run("logs error on failure", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.DatasetStore{
			ReadFn: func(context.Context) (*jobready.Dataset, error) {
				return nil, errors.New("bucket unreachable")
			},
		}

		store := jrslog.NewLoggingDatasetStore(inner, "gcs", logger)
		_, err := store.Read(context.Background())

		require.Error(t, err)
		output := buf.String()
		assert.Contains(t, output, "level=ERROR")
		assert.Contains(t, output, "err=\"bucket unreachable\"")
	})
}

func TestLoggingDatasetStore_Write(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	inner := &mock.DatasetStore{
		WriteFn: func(_ context.Context, ds *jobready.Dataset) error {
			ds.Version = "2"
			return nil
		},
	}

	store := jrslog.NewLoggingDatasetStore(inner, "sqlite", logger)
	err := store.Write(context.Background(), &jobready.Dataset{
		Categories: []jobready.Category{{ID: 1}},
		Version:    "1",
	})

	require.NoError(t, err)
	output := buf.String()
	assert.Contains(t, output, "dataset write")
	assert.Contains(t, output, "categories=1")
	assert.Contains(t, output, "questions=0")
	assert.Contains(t, output, "version=2")
	assert.Contains(t, output, "err=<nil>")
}

func TestLoggingDatasetStore_KeepsSerialStoreLocking(t *testing.T) {
	t.Parallel()

	inner := &mock.DatasetStore{
		ReadFn:  func(context.Context) (*jobready.Dataset, error) { return jobready.NewDataset(), nil },
		WriteFn: func(context.Context, *jobready.Dataset) error { return nil },
	}
	logger := slog.New(slog.DiscardHandler)

	var store jobready.DatasetStore = jobready.NewSerialStore(jrslog.NewLoggingDatasetStore(inner, "fs", logger))

	_, ok := store.(interface{ Lock() })
	assert.True(t, ok)
}
