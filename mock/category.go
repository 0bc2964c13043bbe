package mock

import (
	"context"

	"github.com/Muzammil-Ahm3d/jobready"
)

var _ jobready.CategoryService = (*CategoryService)(nil)

// CategoryService is a mock implementation of jobready.CategoryService.
type CategoryService struct {
	CreateCategoryFn     func(ctx context.Context, category *jobready.Category) error
	FindCategoryByIDFn   func(ctx context.Context, id int) (*jobready.Category, error)
	FindCategoryBySlugFn func(ctx context.Context, slug string) (*jobready.Category, error)
	FindCategoriesFn     func(ctx context.Context) ([]*jobready.CategorySummary, error)
	UpdateCategoryFn     func(ctx context.Context, id int, upd jobready.CategoryUpdate) (*jobready.Category, error)
	DeleteCategoryFn     func(ctx context.Context, id int) error
}

func (s *CategoryService) CreateCategory(ctx context.Context, category *jobready.Category) error {
	return s.CreateCategoryFn(ctx, category)
}

func (s *CategoryService) FindCategoryByID(ctx context.Context, id int) (*jobready.Category, error) {
	return s.FindCategoryByIDFn(ctx, id)
}

func (s *CategoryService) FindCategoryBySlug(ctx context.Context, slug string) (*jobready.Category, error) {
	return s.FindCategoryBySlugFn(ctx, slug)
}

func (s *CategoryService) FindCategories(ctx context.Context) ([]*jobready.CategorySummary, error) {
	return s.FindCategoriesFn(ctx)
}

func (s *CategoryService) UpdateCategory(ctx context.Context, id int, upd jobready.CategoryUpdate) (*jobready.Category, error) {
	return s.UpdateCategoryFn(ctx, id, upd)
}

func (s *CategoryService) DeleteCategory(ctx context.Context, id int) error {
	return s.DeleteCategoryFn(ctx, id)
}
