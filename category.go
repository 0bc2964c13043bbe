package jobready

import "context"

// Category groups interview questions by technology.
type Category struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Order       int    `json:"order"`
	Description string `json:"description,omitempty"`
}

// Validate returns an error if the category contains invalid fields.
func (c *Category) Validate() error {
	if c.Name == "" {
		return Errorf(EINVALID, "category name required")
	}
	return nil
}

// CategorySummary is a category along with the number of questions in it.
type CategorySummary struct {
	Category
	Count int `json:"count"`
}

// CategoryService represents a service for managing categories.
type CategoryService interface {
	// CreateCategory creates a new category, assigning its id, slug and order.
	CreateCategory(ctx context.Context, category *Category) error

	// FindCategoryByID retrieves a category by id.
	// Returns ENOTFOUND if category does not exist.
	FindCategoryByID(ctx context.Context, id int) (*Category, error)

	// FindCategoryBySlug retrieves a category by slug.
	// Returns ENOTFOUND if category does not exist.
	FindCategoryBySlug(ctx context.Context, slug string) (*Category, error)

	// FindCategories retrieves all categories sorted by order, with counts.
	FindCategories(ctx context.Context) ([]*CategorySummary, error)

	// UpdateCategory updates an existing category.
	// Returns ENOTFOUND if category does not exist.
	UpdateCategory(ctx context.Context, id int, upd CategoryUpdate) (*Category, error)

	// DeleteCategory permanently removes a category and all its questions.
	// Returns ENOTFOUND if category does not exist.
	DeleteCategory(ctx context.Context, id int) error
}

// CategoryUpdate represents fields that can be updated on a category.
type CategoryUpdate struct {
	Name        *string `json:"name"`
	Slug        *string `json:"slug"`
	Description *string `json:"description"`
	Order       *int    `json:"order"`
}
