package jobready

import "context"

// Generator produces free text from a prompt using a generative model.
type Generator interface {
	// Generate returns the model's response to prompt. The response is
	// expected, but not guaranteed, to follow the format the prompt asks for.
	Generate(ctx context.Context, prompt string) (string, error)
}
