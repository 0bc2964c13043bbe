// Package catalog implements category and question management over a
// dataset store. Every change is one read-modify-write cycle.
package catalog

import (
	"context"
	"slices"
	"strconv"

	"github.com/Muzammil-Ahm3d/jobready"
)

// Ensure service types implement interfaces at compile time.
var (
	_ jobready.CategoryService = (*CategoryService)(nil)
	_ jobready.QuestionService = (*QuestionService)(nil)
)

// CategoryService implements jobready.CategoryService.
type CategoryService struct {
	store jobready.DatasetStore
}

// NewCategoryService creates a new CategoryService.
func NewCategoryService(store jobready.DatasetStore) *CategoryService {
	return &CategoryService{store: store}
}

// CreateCategory creates a new category.
func (s *CategoryService) CreateCategory(ctx context.Context, category *jobready.Category) error {
	if err := category.Validate(); err != nil {
		return err
	}
	if category.Slug != "" {
		category.Slug = jobready.Slugify(category.Slug)
	}

	_, err := jobready.UpdateDataset(ctx, s.store, func(ds *jobready.Dataset) error {
		ds.AddCategory(category)
		return nil
	})
	return err
}

// FindCategoryByID retrieves a category by id.
func (s *CategoryService) FindCategoryByID(ctx context.Context, id int) (*jobready.Category, error) {
	ds, err := s.store.Read(ctx)
	if err != nil {
		return nil, err
	}
	c := ds.CategoryByID(id)
	if c == nil {
		return nil, jobready.Errorf(jobready.ENOTFOUND, "category not found")
	}
	return c, nil
}

// FindCategoryBySlug retrieves a category by slug.
func (s *CategoryService) FindCategoryBySlug(ctx context.Context, slug string) (*jobready.Category, error) {
	ds, err := s.store.Read(ctx)
	if err != nil {
		return nil, err
	}
	c := ds.CategoryBySlug(slug)
	if c == nil {
		return nil, jobready.Errorf(jobready.ENOTFOUND, "category not found")
	}
	return c, nil
}

// FindCategories retrieves all categories sorted by order, with the number
// of questions in each.
func (s *CategoryService) FindCategories(ctx context.Context) ([]*jobready.CategorySummary, error) {
	ds, err := s.store.Read(ctx)
	if err != nil {
		return nil, err
	}

	counts := make(map[int]int)
	for _, q := range ds.Questions {
		counts[q.CategoryID]++
	}

	out := make([]*jobready.CategorySummary, 0, len(ds.Categories))
	for _, c := range ds.Categories {
		out = append(out, &jobready.CategorySummary{Category: c, Count: counts[c.ID]})
	}
	slices.SortStableFunc(out, func(a, b *jobready.CategorySummary) int {
		return a.Order - b.Order
	})
	return out, nil
}

// UpdateCategory updates an existing category.
func (s *CategoryService) UpdateCategory(ctx context.Context, id int, upd jobready.CategoryUpdate) (*jobready.Category, error) {
	var updated jobready.Category
	_, err := jobready.UpdateDataset(ctx, s.store, func(ds *jobready.Dataset) error {
		c := ds.CategoryByID(id)
		if c == nil {
			return jobready.Errorf(jobready.ENOTFOUND, "category not found")
		}

		if upd.Name != nil {
			c.Name = *upd.Name
		}
		if upd.Slug != nil {
			c.Slug = jobready.Slugify(*upd.Slug)
			if c.Slug == "" {
				c.Slug = "category-" + strconv.Itoa(c.ID)
			}
		}
		if upd.Description != nil {
			c.Description = *upd.Description
		}
		if upd.Order != nil {
			c.Order = *upd.Order
		}
		if err := c.Validate(); err != nil {
			return err
		}

		updated = *c
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteCategory removes a category and all of its questions.
func (s *CategoryService) DeleteCategory(ctx context.Context, id int) error {
	_, err := jobready.UpdateDataset(ctx, s.store, func(ds *jobready.Dataset) error {
		if !ds.DeleteCategory(id) {
			return jobready.Errorf(jobready.ENOTFOUND, "category not found")
		}
		return nil
	})
	return err
}
