package jobready

import (
	"context"
	"encoding/json"
	"slices"
	"strconv"
	"sync"
)

// AICategoryID is the sentinel category for questions learned from the
// generative model. It sits outside the range of curated categories.
const AICategoryID = 999

// AICategoryName is the display name of the sentinel category.
const AICategoryName = "AI Knowledge Base"

// Dataset is the full categories and questions document. It is loaded and
// stored as a single unit.
type Dataset struct {
	Categories []Category `json:"categories"`
	Questions  []Question `json:"questions"`

	// Version identifies the stored revision this value was read from.
	// Backends set it on Read and compare it on Write. Never serialized.
	Version string `json:"-"`
}

// NewDataset returns an empty dataset.
func NewDataset() *Dataset {
	return &Dataset{Categories: []Category{}, Questions: []Question{}}
}

// MarshalJSON encodes missing collections as empty arrays rather than null.
func (ds Dataset) MarshalJSON() ([]byte, error) {
	type document Dataset
	doc := document(ds)
	if doc.Categories == nil {
		doc.Categories = []Category{}
	}
	if doc.Questions == nil {
		doc.Questions = []Question{}
	}
	return json.Marshal(doc)
}

// EncodeDataset returns the persisted form of ds: pretty-printed JSON with
// two-space indentation.
func EncodeDataset(ds *Dataset) ([]byte, error) {
	return json.MarshalIndent(ds, "", "  ")
}

// DecodeDataset parses a persisted dataset document.
// Returns EINTERNAL if the document is not a valid dataset.
func DecodeDataset(data []byte) (*Dataset, error) {
	var ds Dataset
	if err := json.Unmarshal(data, &ds); err != nil {
		return nil, Errorf(EINTERNAL, "corrupt dataset document: %v", err)
	}
	if ds.Categories == nil {
		ds.Categories = []Category{}
	}
	if ds.Questions == nil {
		ds.Questions = []Question{}
	}
	return &ds, nil
}

// Clone returns a copy that shares no slices with ds.
func (ds *Dataset) Clone() *Dataset {
	return &Dataset{
		Categories: slices.Clone(ds.Categories),
		Questions:  slices.Clone(ds.Questions),
		Version:    ds.Version,
	}
}

// NextQuestionID returns max(question ids) + 1, or 1 when there are none.
func (ds *Dataset) NextQuestionID() int {
	ids := make([]int, len(ds.Questions))
	for i := range ds.Questions {
		ids[i] = ds.Questions[i].ID
	}
	return NextID(ids)
}

// NextCategoryID returns max(category ids) + 1, or 1 when there are none.
func (ds *Dataset) NextCategoryID() int {
	ids := make([]int, len(ds.Categories))
	for i := range ds.Categories {
		ids[i] = ds.Categories[i].ID
	}
	return NextID(ids)
}

// CategoryByID returns the category with the given id or nil.
func (ds *Dataset) CategoryByID(id int) *Category {
	for i := range ds.Categories {
		if ds.Categories[i].ID == id {
			return &ds.Categories[i]
		}
	}
	return nil
}

// CategoryBySlug returns the first category with the given slug or nil.
func (ds *Dataset) CategoryBySlug(slug string) *Category {
	for i := range ds.Categories {
		if ds.Categories[i].Slug == slug {
			return &ds.Categories[i]
		}
	}
	return nil
}

// QuestionByID returns the question with the given id or nil.
func (ds *Dataset) QuestionByID(id int) *Question {
	for i := range ds.Questions {
		if ds.Questions[i].ID == id {
			return &ds.Questions[i]
		}
	}
	return nil
}

// CountQuestions returns the number of questions in a category.
func (ds *Dataset) CountQuestions(categoryID int) int {
	var n int
	for i := range ds.Questions {
		if ds.Questions[i].CategoryID == categoryID {
			n++
		}
	}
	return n
}

// AddCategory assigns the next id to c, fills in a slug and order when
// missing, and appends it.
func (ds *Dataset) AddCategory(c *Category) {
	c.ID = ds.NextCategoryID()
	if c.Slug == "" {
		c.Slug = Slugify(c.Name)
	}
	if c.Slug == "" {
		c.Slug = "category-" + strconv.Itoa(c.ID)
	}
	if c.Order == 0 {
		c.Order = len(ds.Categories) + 1
	}
	ds.Categories = append(ds.Categories, *c)
}

// AddQuestion assigns the next id to q, fills in a slug and display order
// when missing, and appends it. Slugs are not checked for uniqueness.
func (ds *Dataset) AddQuestion(q *Question) {
	q.ID = ds.NextQuestionID()
	if q.Slug == "" {
		q.Slug = Slugify(q.Title)
	}
	if q.Slug == "" {
		q.Slug = "question-" + strconv.Itoa(q.ID)
	}
	if q.DisplayOrder == 0 {
		q.DisplayOrder = ds.CountQuestions(q.CategoryID) + 1
	}
	ds.Questions = append(ds.Questions, *q)
}

// DeleteCategory removes a category and every question that references it.
// Returns false if no category has the id.
func (ds *Dataset) DeleteCategory(id int) bool {
	n := len(ds.Categories)
	ds.Categories = slices.DeleteFunc(ds.Categories, func(c Category) bool { return c.ID == id })
	if len(ds.Categories) == n {
		return false
	}
	ds.Questions = slices.DeleteFunc(ds.Questions, func(q Question) bool { return q.CategoryID == id })
	return true
}

// DeleteQuestion removes a question. Returns false if no question has the id.
func (ds *Dataset) DeleteQuestion(id int) bool {
	n := len(ds.Questions)
	ds.Questions = slices.DeleteFunc(ds.Questions, func(q Question) bool { return q.ID == id })
	return len(ds.Questions) != n
}

// DatasetStore reads and writes the whole dataset.
type DatasetStore interface {
	// Read loads the current dataset and sets its Version.
	// Returns EUNAVAILABLE if the backend cannot be reached.
	Read(ctx context.Context) (*Dataset, error)

	// Write replaces the stored dataset. If ds.Version is set and no longer
	// matches storage, nothing is written and ECONFLICT is returned.
	// On success ds.Version is updated.
	Write(ctx context.Context, ds *Dataset) error
}

// UpdateDataset reads the dataset, applies fn and writes the result back.
// If store implements sync.Locker the whole cycle runs under its lock.
// The dataset is not written when fn returns an error.
func UpdateDataset(ctx context.Context, store DatasetStore, fn func(*Dataset) error) (*Dataset, error) {
	if l, ok := store.(sync.Locker); ok {
		l.Lock()
		defer l.Unlock()
	}

	ds, err := store.Read(ctx)
	if err != nil {
		return nil, err
	}
	if err := fn(ds); err != nil {
		return nil, err
	}
	if err := store.Write(ctx, ds); err != nil {
		return nil, err
	}
	return ds, nil
}

// Ensure SerialStore implements DatasetStore and sync.Locker at compile time.
var (
	_ DatasetStore = (*SerialStore)(nil)
	_ sync.Locker  = (*SerialStore)(nil)
)

// SerialStore wraps a DatasetStore with a process-wide lock so that
// UpdateDataset cycles never interleave. Read and Write alone do not lock;
// calling UpdateDataset from inside an update function deadlocks.
type SerialStore struct {
	mu    sync.Mutex
	store DatasetStore
}

// NewSerialStore returns a SerialStore wrapping store.
func NewSerialStore(store DatasetStore) *SerialStore {
	return &SerialStore{store: store}
}

// Lock acquires the write lock.
func (s *SerialStore) Lock() { s.mu.Lock() }

// Unlock releases the write lock.
func (s *SerialStore) Unlock() { s.mu.Unlock() }

// Read delegates to the wrapped store.
func (s *SerialStore) Read(ctx context.Context) (*Dataset, error) {
	return s.store.Read(ctx)
}

// Write delegates to the wrapped store.
func (s *SerialStore) Write(ctx context.Context, ds *Dataset) error {
	return s.store.Write(ctx, ds)
}
