package mock

import (
	"context"

	"github.com/Muzammil-Ahm3d/jobready"
)

var _ jobready.DatasetStore = (*DatasetStore)(nil)

// DatasetStore is a mock implementation of jobready.DatasetStore.
type DatasetStore struct {
	ReadFn  func(ctx context.Context) (*jobready.Dataset, error)
	WriteFn func(ctx context.Context, ds *jobready.Dataset) error
}

func (s *DatasetStore) Read(ctx context.Context) (*jobready.Dataset, error) {
	return s.ReadFn(ctx)
}

func (s *DatasetStore) Write(ctx context.Context, ds *jobready.Dataset) error {
	return s.WriteFn(ctx, ds)
}
