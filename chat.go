package jobready

import "context"

// Message roles accepted in a conversation.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
	RoleModel     = "model"
)

// Message is one turn of a chat conversation.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatRequest is a chatbot query. Either Query or Messages is set; when
// Messages is set the last user turn is the query and earlier turns are
// history for the generative model.
type ChatRequest struct {
	Query    string    `json:"query,omitempty"`
	Messages []Message `json:"messages,omitempty"`
}

// Source tells where an answer came from.
type Source string

// Source constants for Answer.
const (
	SourceLocal Source = "local"
	SourceAI    Source = "ai"
)

// Answer is the chatbot's reply.
type Answer struct {
	Answer      string `json:"answer"`
	Source      Source `json:"source"`
	Question    string `json:"question"`
	CodeSnippet string `json:"codeSnippet,omitempty"`
}

// Resolver answers chatbot queries.
type Resolver interface {
	// Resolve answers a query from stored questions when a title matches,
	// otherwise from the generative model, storing the generated answer.
	// Returns EINVALID for an empty query and EUNAVAILABLE when the model
	// is not configured or cannot be reached.
	Resolve(ctx context.Context, req *ChatRequest) (*Answer, error)
}
