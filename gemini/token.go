package gemini

import (
	"context"

	"github.com/Muzammil-Ahm3d/jobready"
	"google.golang.org/genai"
	"google.golang.org/genai/tokenizer"
)

var _ jobready.TokenCounter = (*TokenCounter)(nil)

// TokenCounter counts tokens offline with the Gemini local tokenizer. It is
// used to keep chat history inside a prompt budget.
type TokenCounter struct {
	tok *tokenizer.LocalTokenizer
}

// NewTokenCounter creates a new TokenCounter for the given model. An empty
// model selects DefaultModel.
func NewTokenCounter(model string) (*TokenCounter, error) {
	if model == "" {
		model = DefaultModel
	}
	tok, err := tokenizer.NewLocalTokenizer(model)
	if err != nil {
		return nil, jobready.Errorf(jobready.EINVALID, "no local tokenizer for model %q: %v", model, err)
	}
	return &TokenCounter{tok: tok}, nil
}

// CountTokens returns the number of tokens text uses as a single user turn.
func (tc *TokenCounter) CountTokens(_ context.Context, text string) (int, error) {
	if text == "" {
		return 0, nil
	}

	result, err := tc.tok.CountTokens([]*genai.Content{genai.NewContentFromText(text, genai.RoleUser)}, nil)
	if err != nil {
		return 0, err
	}
	return int(result.TotalTokens), nil
}
