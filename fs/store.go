// Package fs provides a local file backend for the jobready dataset.
package fs

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/Muzammil-Ahm3d/jobready"
	"github.com/cespare/xxhash/v2"
)

// DefaultPath is where the dataset lives when no path is configured.
const DefaultPath = "data/db.json"

// Ensure DatasetStore implements jobready.DatasetStore at compile time.
var _ jobready.DatasetStore = (*DatasetStore)(nil)

// DatasetStore implements jobready.DatasetStore with a single JSON file.
// A missing file is created holding an empty dataset. Writes go to a
// temporary file in the same directory which is then renamed over the
// original, so readers never observe a partial document.
type DatasetStore struct {
	mu   sync.Mutex // guards version check and replace
	path string
}

// NewDatasetStore creates a new DatasetStore backed by the file at path.
func NewDatasetStore(path string) *DatasetStore {
	return &DatasetStore{path: path}
}

// Path returns the dataset file path.
func (s *DatasetStore) Path() string {
	return s.path
}

// Read loads the dataset, creating an empty one if the file does not exist.
func (s *DatasetStore) Read(ctx context.Context) (*jobready.Dataset, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		data, err = s.initialize()
	}
	if err != nil {
		return nil, fmt.Errorf("read dataset %q: %w", s.path, err)
	}

	ds, err := jobready.DecodeDataset(data)
	if err != nil {
		return nil, err
	}
	ds.Version = hashContent(data)
	return ds, nil
}

// initialize writes an empty dataset to the path unless another writer
// got there first, and returns the file contents.
func (s *DatasetStore) initialize() ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if data, err := os.ReadFile(s.path); err == nil {
		return data, nil
	}

	data, err := jobready.EncodeDataset(jobready.NewDataset())
	if err != nil {
		return nil, err
	}
	if err := s.replace(data); err != nil {
		return nil, err
	}
	return data, nil
}

// Write replaces the dataset file. Returns ECONFLICT if ds.Version is set
// and the file changed since it was read.
func (s *DatasetStore) Write(ctx context.Context, ds *jobready.Dataset) error {
	data, err := jobready.EncodeDataset(ds)
	if err != nil {
		return fmt.Errorf("encode dataset: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if ds.Version != "" {
		current, err := os.ReadFile(s.path)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("read dataset %q: %w", s.path, err)
		}
		if hashContent(current) != ds.Version {
			return jobready.Errorf(jobready.ECONFLICT, "dataset changed since it was read")
		}
	}

	if err := s.replace(data); err != nil {
		return fmt.Errorf("write dataset %q: %w", s.path, err)
	}
	ds.Version = hashContent(data)
	return nil
}

// replace atomically swaps the file contents for data.
func (s *DatasetStore) replace(data []byte) error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmp.Name(), 0644); err != nil {
		return err
	}

	return os.Rename(tmp.Name(), s.path)
}

// hashContent computes the xxHash of content as a hex string.
func hashContent(content []byte) string {
	return fmt.Sprintf("%016x", xxhash.Sum64(content))
}
