package sqlite_test

import (
	"context"
	"testing"

	"github.com/Muzammil-Ahm3d/jobready"
	"github.com/Muzammil-Ahm3d/jobready/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDatasetStore_Read(t *testing.T) {
	t.Parallel()

	t.Run("returns empty dataset at version zero when missing", func(t *testing.T) {
		t.Parallel()

		store := sqlite.NewDatasetStore(setupTestDB(t), "")

		ds, err := store.Read(context.Background())

		require.NoError(t, err)
		assert.Empty(t, ds.Categories)
		assert.Empty(t, ds.Questions)
		assert.Equal(t, "0", ds.Version)
	})

	t.Run("returns error for corrupt document", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		_, err := db.ExecContext(context.Background(),
			"INSERT INTO datasets (name, document, version, updated_at) VALUES ('default', 'nope', 1, '2026-01-01T00:00:00Z')")
		require.NoError(t, err)
		store := sqlite.NewDatasetStore(db, "")

		_, err = store.Read(context.Background())

		require.Error(t, err)
		assert.Equal(t, jobready.EINTERNAL, jobready.ErrorCode(err))
	})
}

func TestDatasetStore_RoundTrip(t *testing.T) {
	t.Parallel()

	store := sqlite.NewDatasetStore(setupTestDB(t), "interview")
	want := &jobready.Dataset{
		Categories: []jobready.Category{{ID: 1, Name: "Java", Slug: "java", Order: 1}},
		Questions: []jobready.Question{{
			ID: 1, CategoryID: 1, Title: "What is Java?", Slug: "what-is-java",
			Answer: "A language.", DisplayOrder: 1, RealTimeUseCases: "• Banking",
		}},
	}

	require.NoError(t, store.Write(context.Background(), want))
	got, err := store.Read(context.Background())

	require.NoError(t, err)
	assert.Equal(t, want, got)
	assert.Equal(t, "1", got.Version)
}

func TestDatasetStore_Write(t *testing.T) {
	t.Parallel()

	t.Run("increments version on each write", func(t *testing.T) {
		t.Parallel()

		store := sqlite.NewDatasetStore(setupTestDB(t), "")
		ds, err := store.Read(context.Background())
		require.NoError(t, err)

		require.NoError(t, store.Write(context.Background(), ds))
		assert.Equal(t, "1", ds.Version)
		require.NoError(t, store.Write(context.Background(), ds))
		assert.Equal(t, "2", ds.Version)
	})

	t.Run("rejects stale version", func(t *testing.T) {
		t.Parallel()

		store := sqlite.NewDatasetStore(setupTestDB(t), "")
		first, err := store.Read(context.Background())
		require.NoError(t, err)
		second, err := store.Read(context.Background())
		require.NoError(t, err)

		first.AddCategory(&jobready.Category{Name: "Go"})
		require.NoError(t, store.Write(context.Background(), first))

		second.AddCategory(&jobready.Category{Name: "Rust"})
		err = store.Write(context.Background(), second)

		require.Error(t, err)
		assert.Equal(t, jobready.ECONFLICT, jobready.ErrorCode(err))

		current, err := store.Read(context.Background())
		require.NoError(t, err)
		require.Len(t, current.Categories, 1)
		assert.Equal(t, "Go", current.Categories[0].Name)
	})

	t.Run("unversioned write overwrites", func(t *testing.T) {
		t.Parallel()

		store := sqlite.NewDatasetStore(setupTestDB(t), "")
		require.NoError(t, store.Write(context.Background(), &jobready.Dataset{
			Categories: []jobready.Category{{ID: 1, Name: "Java", Slug: "java", Order: 1}},
		}))

		require.NoError(t, store.Write(context.Background(), jobready.NewDataset()))

		ds, err := store.Read(context.Background())
		require.NoError(t, err)
		assert.Empty(t, ds.Categories)
		assert.Equal(t, "2", ds.Version)
	})

	t.Run("keeps named datasets apart", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		a := sqlite.NewDatasetStore(db, "a")
		b := sqlite.NewDatasetStore(db, "b")

		require.NoError(t, a.Write(context.Background(), &jobready.Dataset{
			Categories: []jobready.Category{{ID: 1, Name: "Java", Slug: "java", Order: 1}},
		}))

		ds, err := b.Read(context.Background())
		require.NoError(t, err)
		assert.Empty(t, ds.Categories)
	})
}
