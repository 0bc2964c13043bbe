package jobready

import (
	"context"
	"strings"
)

// Question is an interview question with its markdown answer.
type Question struct {
	ID               int    `json:"id"`
	CategoryID       int    `json:"categoryId"`
	Title            string `json:"title"`
	Slug             string `json:"slug"`
	Answer           string `json:"answer"`
	DisplayOrder     int    `json:"displayOrder"`
	UseCases         string `json:"useCases,omitempty"`
	RealTimeUseCases string `json:"realTimeUseCases,omitempty"`
	ImageURL         string `json:"imageUrl,omitempty"`
	CodeSnippet      string `json:"codeSnippet,omitempty"`
}

// Validate returns an error if the question contains invalid fields.
func (q *Question) Validate() error {
	if q.Title == "" {
		return Errorf(EINVALID, "question title required")
	}
	if q.Answer == "" {
		return Errorf(EINVALID, "question answer required")
	}
	if q.CategoryID == 0 {
		return Errorf(EINVALID, "question category required")
	}
	return nil
}

// QuestionService represents a service for managing questions.
type QuestionService interface {
	// CreateQuestion creates a new question in an existing category.
	// Returns ENOTFOUND if the category does not exist.
	CreateQuestion(ctx context.Context, question *Question) error

	// FindQuestionByID retrieves a question by id.
	// Returns ENOTFOUND if question does not exist.
	FindQuestionByID(ctx context.Context, id int) (*Question, error)

	// FindQuestions retrieves questions matching the filter in stored order.
	FindQuestions(ctx context.Context, filter QuestionFilter) ([]*Question, error)

	// UpdateQuestion updates an existing question.
	// Returns ENOTFOUND if question does not exist.
	UpdateQuestion(ctx context.Context, id int, upd QuestionUpdate) (*Question, error)

	// DeleteQuestion permanently removes a question.
	// Returns ENOTFOUND if question does not exist.
	DeleteQuestion(ctx context.Context, id int) error
}

// QuestionFilter represents a filter for FindQuestions.
type QuestionFilter struct {
	ID           *int    `json:"id"`
	CategoryID   *int    `json:"categoryId"`
	CategorySlug *string `json:"categorySlug"`
	Slug         *string `json:"slug"`

	// Search matches titles containing the text, case-insensitively.
	Search *string `json:"search"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// QuestionUpdate represents fields that can be updated on a question.
type QuestionUpdate struct {
	CategoryID       *int    `json:"categoryId"`
	Title            *string `json:"title"`
	Slug             *string `json:"slug"`
	Answer           *string `json:"answer"`
	DisplayOrder     *int    `json:"displayOrder"`
	UseCases         *string `json:"useCases"`
	RealTimeUseCases *string `json:"realTimeUseCases"`
	ImageURL         *string `json:"imageUrl"`
	CodeSnippet      *string `json:"codeSnippet"`
}

// BulletList joins non-blank items into "• item" lines.
func BulletList(items []string) string {
	lines := make([]string, 0, len(items))
	for _, item := range items {
		if item = strings.TrimSpace(item); item != "" {
			lines = append(lines, "• "+item)
		}
	}
	return strings.Join(lines, "\n")
}
