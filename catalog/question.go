package catalog

import (
	"context"
	"strconv"
	"strings"

	"github.com/Muzammil-Ahm3d/jobready"
)

// QuestionService implements jobready.QuestionService.
type QuestionService struct {
	store jobready.DatasetStore
}

// NewQuestionService creates a new QuestionService.
func NewQuestionService(store jobready.DatasetStore) *QuestionService {
	return &QuestionService{store: store}
}

// CreateQuestion creates a new question in an existing category.
func (s *QuestionService) CreateQuestion(ctx context.Context, question *jobready.Question) error {
	if err := question.Validate(); err != nil {
		return err
	}
	if question.Slug != "" {
		question.Slug = jobready.Slugify(question.Slug)
	}

	_, err := jobready.UpdateDataset(ctx, s.store, func(ds *jobready.Dataset) error {
		if ds.CategoryByID(question.CategoryID) == nil {
			return jobready.Errorf(jobready.ENOTFOUND, "category %d not found", question.CategoryID)
		}
		ds.AddQuestion(question)
		return nil
	})
	return err
}

// FindQuestionByID retrieves a question by id.
func (s *QuestionService) FindQuestionByID(ctx context.Context, id int) (*jobready.Question, error) {
	ds, err := s.store.Read(ctx)
	if err != nil {
		return nil, err
	}
	q := ds.QuestionByID(id)
	if q == nil {
		return nil, jobready.Errorf(jobready.ENOTFOUND, "question not found")
	}
	return q, nil
}

// FindQuestions retrieves questions matching the filter in stored order.
// An unknown CategorySlug matches nothing.
func (s *QuestionService) FindQuestions(ctx context.Context, filter jobready.QuestionFilter) ([]*jobready.Question, error) {
	ds, err := s.store.Read(ctx)
	if err != nil {
		return nil, err
	}

	categoryID := filter.CategoryID
	if filter.CategorySlug != nil {
		c := ds.CategoryBySlug(*filter.CategorySlug)
		if c == nil {
			return []*jobready.Question{}, nil
		}
		if categoryID != nil && *categoryID != c.ID {
			return []*jobready.Question{}, nil
		}
		categoryID = &c.ID
	}

	var search string
	if filter.Search != nil {
		search = strings.ToLower(strings.TrimSpace(*filter.Search))
	}

	out := []*jobready.Question{}
	skipped := 0
	for i := range ds.Questions {
		q := &ds.Questions[i]
		if filter.ID != nil && q.ID != *filter.ID {
			continue
		}
		if categoryID != nil && q.CategoryID != *categoryID {
			continue
		}
		if filter.Slug != nil && q.Slug != *filter.Slug {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(q.Title), search) {
			continue
		}
		if skipped < filter.Offset {
			skipped++
			continue
		}
		out = append(out, q)
		if filter.Limit > 0 && len(out) == filter.Limit {
			break
		}
	}
	return out, nil
}

// UpdateQuestion updates an existing question.
func (s *QuestionService) UpdateQuestion(ctx context.Context, id int, upd jobready.QuestionUpdate) (*jobready.Question, error) {
	var updated jobready.Question
	_, err := jobready.UpdateDataset(ctx, s.store, func(ds *jobready.Dataset) error {
		q := ds.QuestionByID(id)
		if q == nil {
			return jobready.Errorf(jobready.ENOTFOUND, "question not found")
		}

		if upd.CategoryID != nil {
			if ds.CategoryByID(*upd.CategoryID) == nil {
				return jobready.Errorf(jobready.ENOTFOUND, "category %d not found", *upd.CategoryID)
			}
			q.CategoryID = *upd.CategoryID
		}
		if upd.Title != nil {
			q.Title = *upd.Title
		}
		if upd.Slug != nil {
			q.Slug = jobready.Slugify(*upd.Slug)
			if q.Slug == "" {
				q.Slug = "question-" + strconv.Itoa(q.ID)
			}
		}
		if upd.Answer != nil {
			q.Answer = *upd.Answer
		}
		if upd.DisplayOrder != nil {
			q.DisplayOrder = *upd.DisplayOrder
		}
		if upd.UseCases != nil {
			q.UseCases = *upd.UseCases
		}
		if upd.RealTimeUseCases != nil {
			q.RealTimeUseCases = *upd.RealTimeUseCases
		}
		if upd.ImageURL != nil {
			q.ImageURL = *upd.ImageURL
		}
		if upd.CodeSnippet != nil {
			q.CodeSnippet = *upd.CodeSnippet
		}
		if err := q.Validate(); err != nil {
			return err
		}

		updated = *q
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteQuestion removes a question.
func (s *QuestionService) DeleteQuestion(ctx context.Context, id int) error {
	_, err := jobready.UpdateDataset(ctx, s.store, func(ds *jobready.Dataset) error {
		if !ds.DeleteQuestion(id) {
			return jobready.Errorf(jobready.ENOTFOUND, "question not found")
		}
		return nil
	})
	return err
}
