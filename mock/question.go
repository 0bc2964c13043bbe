package mock

import (
	"context"

	"github.com/Muzammil-Ahm3d/jobready"
)

var _ jobready.QuestionService = (*QuestionService)(nil)

// QuestionService is a mock implementation of jobready.QuestionService.
type QuestionService struct {
	CreateQuestionFn   func(ctx context.Context, question *jobready.Question) error
	FindQuestionByIDFn func(ctx context.Context, id int) (*jobready.Question, error)
	FindQuestionsFn    func(ctx context.Context, filter jobready.QuestionFilter) ([]*jobready.Question, error)
	UpdateQuestionFn   func(ctx context.Context, id int, upd jobready.QuestionUpdate) (*jobready.Question, error)
	DeleteQuestionFn   func(ctx context.Context, id int) error
}

func (s *QuestionService) CreateQuestion(ctx context.Context, question *jobready.Question) error {
	return s.CreateQuestionFn(ctx, question)
}

func (s *QuestionService) FindQuestionByID(ctx context.Context, id int) (*jobready.Question, error) {
	return s.FindQuestionByIDFn(ctx, id)
}

func (s *QuestionService) FindQuestions(ctx context.Context, filter jobready.QuestionFilter) ([]*jobready.Question, error) {
	return s.FindQuestionsFn(ctx, filter)
}

func (s *QuestionService) UpdateQuestion(ctx context.Context, id int, upd jobready.QuestionUpdate) (*jobready.Question, error) {
	return s.UpdateQuestionFn(ctx, id, upd)
}

func (s *QuestionService) DeleteQuestion(ctx context.Context, id int) error {
	return s.DeleteQuestionFn(ctx, id)
}
