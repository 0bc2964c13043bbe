package mock_test

import (
	"context"
	"testing"

	"github.com/Muzammil-Ahm3d/jobready"
	"github.com/Muzammil-Ahm3d/jobready/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDatasetStore_DelegatesToFunctions(t *testing.T) {
	t.Parallel()

	var written *jobready.Dataset
	store := &mock.DatasetStore{
		ReadFn: func(context.Context) (*jobready.Dataset, error) {
			return jobready.NewDataset(), nil
		},
		WriteFn: func(_ context.Context, ds *jobready.Dataset) error {
			written = ds
			return nil
		},
	}

	ds, err := jobready.UpdateDataset(context.Background(), store, func(ds *jobready.Dataset) error {
		ds.AddCategory(&jobready.Category{Name: "Go"})
		return nil
	})

	require.NoError(t, err)
	assert.Same(t, ds, written)
	require.Len(t, written.Categories, 1)
	assert.Equal(t, "go", written.Categories[0].Slug)
}
