package catalog_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/Muzammil-Ahm3d/jobready"
	"github.com/Muzammil-Ahm3d/jobready/fs"
	"github.com/stretchr/testify/require"
)

// newStore returns a file-backed store seeded with two categories and
// three questions.
func newStore(t *testing.T) jobready.DatasetStore {
	t.Helper()
	store := fs.NewDatasetStore(filepath.Join(t.TempDir(), "db.json"))
	require.NoError(t, store.Write(context.Background(), &jobready.Dataset{
		Categories: []jobready.Category{
			{ID: 1, Name: "React", Slug: "react", Order: 2},
			{ID: 2, Name: "Java", Slug: "java", Order: 1},
		},
		Questions: []jobready.Question{
			{ID: 1, CategoryID: 2, Title: "What is Java?", Slug: "what-is-java", Answer: "A language.", DisplayOrder: 1},
			{ID: 2, CategoryID: 2, Title: "What is the JVM?", Slug: "what-is-the-jvm", Answer: "A VM.", DisplayOrder: 2},
			{ID: 3, CategoryID: 1, Title: "What is JSX?", Slug: "what-is-jsx", Answer: "Syntax.", DisplayOrder: 1},
		},
	}))
	return jobready.NewSerialStore(store)
}

func ptr[T any](v T) *T { return &v }
