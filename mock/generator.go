package mock

import (
	"context"

	"github.com/Muzammil-Ahm3d/jobready"
)

var _ jobready.Generator = (*Generator)(nil)

// Generator is a mock implementation of jobready.Generator.
type Generator struct {
	GenerateFn func(ctx context.Context, prompt string) (string, error)
}

func (g *Generator) Generate(ctx context.Context, prompt string) (string, error) {
	return g.GenerateFn(ctx, prompt)
}
