package importer_test

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Muzammil-Ahm3d/jobready"
	"github.com/Muzammil-Ahm3d/jobready/fs"
	"github.com/Muzammil-Ahm3d/jobready/htmltomarkdown"
	"github.com/Muzammil-Ahm3d/jobready/importer"
	"github.com/Muzammil-Ahm3d/jobready/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const source = `{
  "HTML": [
    {"id": 1, "question": "**What is the DOM?**", "answer": "<p>The <strong>Document Object Model</strong>.</p>", "useCases": ["Scripting", "Testing"], "realTimeUseCases": ["Form validation"]},
    {"id": 2, "question": "What is semantic HTML?", "answer": "Meaningful tags.", "useCases": [], "realTimeUseCases": []}
  ],
  "Cobol": [
    {"id": 3, "question": "What is a paragraph?", "answer": "A named block."}
  ],
  "react": [
    {"id": 4, "question": "What is JSX?", "answer": "Syntax sugar for List<Element>."}
  ]
}`

func newStore(t *testing.T) jobready.DatasetStore {
	t.Helper()
	store := fs.NewDatasetStore(filepath.Join(t.TempDir(), "db.json"))
	require.NoError(t, store.Write(context.Background(), &jobready.Dataset{
		Categories: []jobready.Category{
			{ID: 1, Name: "html", Slug: "html", Order: 1},
			{ID: 2, Name: "React JS", Slug: "react", Order: 2},
		},
		Questions: []jobready.Question{
			{ID: 7, CategoryID: 1, Title: "What is HTML?", Slug: "what-is-html", Answer: "Markup.", DisplayOrder: 1},
		},
	}))
	return store
}

func TestImporter_Import(t *testing.T) {
	t.Parallel()

	t.Run("imports matching categories and reports missing", func(t *testing.T) {
		t.Parallel()

		store := newStore(t)
		imp := &importer.Importer{
			Store:     store,
			Converter: htmltomarkdown.NewConverter(),
			IsHTML:    htmltomarkdown.IsHTML,
		}

		result, err := imp.Import(context.Background(), strings.NewReader(source))

		require.NoError(t, err)
		assert.Equal(t, 3, result.Imported)
		assert.Equal(t, []string{"Cobol"}, result.MissingCategories)

		ds, err := store.Read(context.Background())
		require.NoError(t, err)
		require.Len(t, ds.Questions, 4)

		dom := ds.Questions[1]
		assert.Equal(t, 8, dom.ID)
		assert.Equal(t, 1, dom.CategoryID)
		assert.Equal(t, "What is the DOM?", dom.Title)
		assert.Equal(t, "what-is-the-dom", dom.Slug)
		assert.Equal(t, 2, dom.DisplayOrder)
		assert.Equal(t, "The **Document Object Model**.", dom.Answer)
		assert.Equal(t, "• Scripting\n• Testing", dom.UseCases)
		assert.Equal(t, "• Form validation", dom.RealTimeUseCases)

		semantic := ds.Questions[2]
		assert.Equal(t, 9, semantic.ID)
		assert.Equal(t, 3, semantic.DisplayOrder)
		assert.Empty(t, semantic.UseCases)

		jsx := ds.Questions[3]
		assert.Equal(t, 2, jsx.CategoryID)
		assert.Equal(t, 1, jsx.DisplayOrder)
		assert.Equal(t, "Syntax sugar for List<Element>.", jsx.Answer)
	})

	t.Run("keeps answers without converter", func(t *testing.T) {
		t.Parallel()

		store := newStore(t)
		imp := &importer.Importer{Store: store}

		_, err := imp.Import(context.Background(), strings.NewReader(source))

		require.NoError(t, err)
		ds, err := store.Read(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "<p>The <strong>Document Object Model</strong>.</p>", ds.Questions[1].Answer)
	})

	t.Run("conversion failure writes nothing", func(t *testing.T) {
		t.Parallel()

		store := newStore(t)
		imp := &importer.Importer{
			Store: store,
			Converter: &mock.Converter{
				ConvertFn: func(string) (string, error) { return "", errors.New("boom") },
			},
			IsHTML: htmltomarkdown.IsHTML,
		}

		_, err := imp.Import(context.Background(), strings.NewReader(source))

		require.Error(t, err)
		ds, err := store.Read(context.Background())
		require.NoError(t, err)
		assert.Len(t, ds.Questions, 1)
	})

	t.Run("rejects malformed document", func(t *testing.T) {
		t.Parallel()

		imp := &importer.Importer{Store: &mock.DatasetStore{}}

		_, err := imp.Import(context.Background(), strings.NewReader(`["not", "an", "object"]`))

		require.Error(t, err)
		assert.Equal(t, jobready.EINVALID, jobready.ErrorCode(err))
	})
}

func TestDecode_PreservesKeyOrder(t *testing.T) {
	t.Parallel()

	got, err := importer.Decode(strings.NewReader(`{"Zeta": [], "Alpha": [{"id": 1, "question": "Q"}], "Mid": []}`))

	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "Zeta", got[0].Name)
	assert.Equal(t, "Alpha", got[1].Name)
	assert.Equal(t, "Q", got[1].Questions[0].Question)
	assert.Equal(t, "Mid", got[2].Name)
}
