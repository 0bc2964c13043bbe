package mock

import (
	"context"

	"github.com/Muzammil-Ahm3d/jobready"
)

var _ jobready.Resolver = (*Resolver)(nil)

// Resolver is a mock implementation of jobready.Resolver.
type Resolver struct {
	ResolveFn func(ctx context.Context, req *jobready.ChatRequest) (*jobready.Answer, error)
}

func (r *Resolver) Resolve(ctx context.Context, req *jobready.ChatRequest) (*jobready.Answer, error) {
	return r.ResolveFn(ctx, req)
}
