package gemini

import (
	"context"

	"github.com/Muzammil-Ahm3d/jobready"
	"google.golang.org/genai"
)

// DefaultModel is the model used when none is configured.
const DefaultModel = "gemini-2.5-flash"

// SystemInstruction frames every generation as an interview answer.
const SystemInstruction = "You are an expert software engineer helping candidates prepare for technical interviews. Give accurate, concise answers with practical examples. Respond with JSON only."

// Ensure Generator implements jobready.Generator at compile time.
var _ jobready.Generator = (*Generator)(nil)

// Generator implements jobready.Generator using Google Gemini.
type Generator struct {
	client *genai.Client
	model  string
}

// NewGenerator creates a new Generator. An empty model selects DefaultModel.
func NewGenerator(client *genai.Client, model string) *Generator {
	if model == "" {
		model = DefaultModel
	}
	return &Generator{client: client, model: model}
}

// Model returns the model name used for generation.
func (g *Generator) Model() string { return g.model }

// Generate sends prompt to the model and returns the text of the response.
func (g *Generator) Generate(ctx context.Context, prompt string) (string, error) {
	if prompt == "" {
		return "", jobready.Errorf(jobready.EINVALID, "prompt required")
	}

	result, err := g.client.Models.GenerateContent(ctx, g.model,
		[]*genai.Content{{
			Role:  genai.RoleUser,
			Parts: []*genai.Part{{Text: prompt}},
		}},
		BuildConfig(),
	)
	if err != nil {
		return "", err
	}
	if result == nil {
		return "", jobready.Errorf(jobready.EINTERNAL, "gemini returned nil result")
	}

	return result.Text(), nil
}

// BuildConfig returns the GenerateContentConfig for Gemini API calls.
func BuildConfig() *genai.GenerateContentConfig {
	temp := float32(0.4)
	return &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{Text: SystemInstruction}},
		},
		Temperature:      &temp,
		ResponseMIMEType: "application/json",
	}
}
