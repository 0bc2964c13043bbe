// Package gcs provides a Google Cloud Storage backend for the jobready
// dataset. The dataset is one JSON object; its generation number is the
// dataset Version.
package gcs

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"cloud.google.com/go/storage"
	"github.com/Muzammil-Ahm3d/jobready"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"
)

// Defaults applied by NewDatasetStore.
const (
	DefaultObject  = "db.json"
	DefaultTimeout = 30 * time.Second
)

// Compile-time interface verification.
var _ jobready.DatasetStore = (*DatasetStore)(nil)

// Config configures a DatasetStore.
type Config struct {
	Bucket string

	// Object is a name prefix. The first object listed under it holds the
	// dataset; when none exists the dataset is created under this name.
	Object string

	// Seed provides the initial content when no object exists yet.
	// Nil seeds an empty dataset.
	Seed jobready.DatasetStore

	Timeout time.Duration
}

// DatasetStore implements jobready.DatasetStore on a GCS object.
type DatasetStore struct {
	client  *storage.Client
	bucket  string
	prefix  string
	seed    jobready.DatasetStore
	timeout time.Duration
}

// NewClient creates a storage client. When STORAGE_EMULATOR_HOST is set the
// client talks to the emulator without credentials.
func NewClient(ctx context.Context, opts ...option.ClientOption) (*storage.Client, error) {
	if os.Getenv("STORAGE_EMULATOR_HOST") != "" {
		opts = append(opts, option.WithoutAuthentication())
	} else {
		opts = append(opts, option.WithScopes(storage.ScopeReadWrite))
	}
	client, err := storage.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("create storage client: %w", err)
	}
	return client, nil
}

// NewDatasetStore creates a new DatasetStore.
func NewDatasetStore(client *storage.Client, cfg Config) (*DatasetStore, error) {
	if strings.TrimSpace(cfg.Bucket) == "" {
		return nil, jobready.Errorf(jobready.EINVALID, "gcs bucket required")
	}
	if cfg.Object == "" {
		cfg.Object = DefaultObject
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	return &DatasetStore{
		client:  client,
		bucket:  cfg.Bucket,
		prefix:  cfg.Object,
		seed:    cfg.Seed,
		timeout: cfg.Timeout,
	}, nil
}

// Read downloads the dataset object. If no object exists it is created
// from the seed first. Failures to reach the bucket are EUNAVAILABLE and
// are never replaced by local data.
func (s *DatasetStore) Read(ctx context.Context) (*jobready.Dataset, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	name, err := s.find(ctx)
	if err != nil {
		return nil, err
	}
	if name == "" {
		return s.initialize(ctx)
	}

	ds, err := s.download(ctx, name)
	if errors.Is(err, storage.ErrObjectNotExist) {
		return s.initialize(ctx)
	}
	return ds, err
}

// Write uploads the dataset. A set ds.Version must equal the object's
// current generation, otherwise ECONFLICT is returned.
func (s *DatasetStore) Write(ctx context.Context, ds *jobready.Dataset) error {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	name, err := s.find(ctx)
	if err != nil {
		return err
	}
	if name == "" {
		name = s.prefix
	}

	var cond *storage.Conditions
	if ds.Version != "" {
		gen, err := strconv.ParseInt(ds.Version, 10, 64)
		if err != nil {
			return jobready.Errorf(jobready.EINVALID, "invalid dataset version %q", ds.Version)
		}
		cond = &storage.Conditions{GenerationMatch: gen}
	}
	return s.upload(ctx, name, ds, cond)
}

// find returns the name of the first object under the prefix, or "".
func (s *DatasetStore) find(ctx context.Context) (string, error) {
	it := s.client.Bucket(s.bucket).Objects(ctx, &storage.Query{Prefix: s.prefix})
	attrs, err := it.Next()
	if err == iterator.Done {
		return "", nil
	}
	if err != nil {
		return "", unavailable("list dataset objects", err)
	}
	return attrs.Name, nil
}

func (s *DatasetStore) download(ctx context.Context, name string) (*jobready.Dataset, error) {
	r, err := s.client.Bucket(s.bucket).Object(name).NewReader(ctx)
	if errors.Is(err, storage.ErrObjectNotExist) {
		return nil, err
	}
	if err != nil {
		return nil, unavailable("open dataset object", err)
	}
	defer r.Close()

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, unavailable("read dataset object", err)
	}

	ds, err := jobready.DecodeDataset(data)
	if err != nil {
		return nil, err
	}
	ds.Version = strconv.FormatInt(r.Attrs.Generation, 10)
	return ds, nil
}

func (s *DatasetStore) upload(ctx context.Context, name string, ds *jobready.Dataset, cond *storage.Conditions) error {
	data, err := jobready.EncodeDataset(ds)
	if err != nil {
		return fmt.Errorf("encode dataset: %w", err)
	}

	obj := s.client.Bucket(s.bucket).Object(name)
	if cond != nil {
		obj = obj.If(*cond)
	}
	w := obj.NewWriter(ctx)
	w.ContentType = "application/json"
	w.CacheControl = "no-store"

	if _, err := w.Write(data); err != nil {
		_ = w.Close()
		return classify("write dataset object", err)
	}
	if err := w.Close(); err != nil {
		return classify("write dataset object", err)
	}

	ds.Version = strconv.FormatInt(w.Attrs().Generation, 10)
	return nil
}

// initialize creates the object from the seed. If another writer creates
// it first, the winner's object is read instead.
func (s *DatasetStore) initialize(ctx context.Context) (*jobready.Dataset, error) {
	ds := jobready.NewDataset()
	if s.seed != nil {
		seed, err := s.seed.Read(ctx)
		if err != nil {
			return nil, fmt.Errorf("read seed dataset: %w", err)
		}
		ds = seed.Clone()
	}

	err := s.upload(ctx, s.prefix, ds, &storage.Conditions{DoesNotExist: true})
	if jobready.ErrorCode(err) == jobready.ECONFLICT {
		return s.download(ctx, s.prefix)
	}
	if err != nil {
		return nil, err
	}
	return ds, nil
}

// classify maps a failed precondition to ECONFLICT and anything else to
// EUNAVAILABLE.
func classify(op string, err error) error {
	if IsPreconditionFailed(err) {
		return jobready.Errorf(jobready.ECONFLICT, "dataset changed since it was read")
	}
	return unavailable(op, err)
}

func unavailable(op string, err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return jobready.Errorf(jobready.EUNAVAILABLE, "%s: timed out", op)
	}
	return jobready.Errorf(jobready.EUNAVAILABLE, "%s: %v", op, err)
}

// IsPreconditionFailed reports whether err is a GCS 412 response.
func IsPreconditionFailed(err error) bool {
	var gerr *googleapi.Error
	return errors.As(err, &gerr) && gerr.Code == http.StatusPreconditionFailed
}
