package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/Muzammil-Ahm3d/jobready"
)

// DefaultDatasetName is the row key used when none is configured.
const DefaultDatasetName = "default"

// Compile-time interface verification.
var _ jobready.DatasetStore = (*DatasetStore)(nil)

// DatasetStore implements jobready.DatasetStore by keeping the whole
// document in one row. The row version increments on every write and is
// the dataset Version; a missing row reads as an empty dataset at version 0.
type DatasetStore struct {
	db   *DB
	name string
}

// NewDatasetStore creates a new DatasetStore for the named dataset row.
func NewDatasetStore(db *DB, name string) *DatasetStore {
	if name == "" {
		name = DefaultDatasetName
	}
	return &DatasetStore{db: db, name: name}
}

// Read loads the dataset.
func (s *DatasetStore) Read(ctx context.Context) (*jobready.Dataset, error) {
	var document string
	var version int64

	err := s.db.QueryRowContext(ctx, `
		SELECT document, version
		FROM datasets
		WHERE name = ?
	`, s.name).Scan(&document, &version)

	if errors.Is(err, sql.ErrNoRows) {
		ds := jobready.NewDataset()
		ds.Version = "0"
		return ds, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read dataset %q: %w", s.name, err)
	}

	ds, err := jobready.DecodeDataset([]byte(document))
	if err != nil {
		return nil, err
	}
	ds.Version = strconv.FormatInt(version, 10)
	return ds, nil
}

// Write stores the dataset. Returns ECONFLICT if ds.Version is set and the
// row has been written since.
func (s *DatasetStore) Write(ctx context.Context, ds *jobready.Dataset) error {
	data, err := jobready.EncodeDataset(ds)
	if err != nil {
		return fmt.Errorf("encode dataset: %w", err)
	}
	now := time.Now().UTC().Format(time.RFC3339)

	var row *sql.Row
	switch ds.Version {
	case "":
		row = s.db.QueryRowContext(ctx, `
			INSERT INTO datasets (name, document, version, updated_at)
			VALUES (?, ?, 1, ?)
			ON CONFLICT(name) DO UPDATE
			SET document = excluded.document, version = datasets.version + 1, updated_at = excluded.updated_at
			RETURNING version
		`, s.name, string(data), now)
	case "0":
		row = s.db.QueryRowContext(ctx, `
			INSERT INTO datasets (name, document, version, updated_at)
			VALUES (?, ?, 1, ?)
			ON CONFLICT(name) DO NOTHING
			RETURNING version
		`, s.name, string(data), now)
	default:
		expected, err := strconv.ParseInt(ds.Version, 10, 64)
		if err != nil {
			return jobready.Errorf(jobready.EINVALID, "invalid dataset version %q", ds.Version)
		}
		row = s.db.QueryRowContext(ctx, `
			UPDATE datasets
			SET document = ?, version = version + 1, updated_at = ?
			WHERE name = ? AND version = ?
			RETURNING version
		`, string(data), now, s.name, expected)
	}

	var version int64
	err = row.Scan(&version)
	if errors.Is(err, sql.ErrNoRows) {
		return jobready.Errorf(jobready.ECONFLICT, "dataset changed since it was read")
	}
	if err != nil {
		return fmt.Errorf("write dataset %q: %w", s.name, err)
	}

	ds.Version = strconv.FormatInt(version, 10)
	return nil
}
