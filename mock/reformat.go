package mock

import (
	"context"
	"io"

	"github.com/Muzammil-Ahm3d/jobready"
)

var (
	_ jobready.Reformatter = (*Reformatter)(nil)
	_ jobready.Importer    = (*Importer)(nil)
)

// Reformatter is a mock implementation of jobready.Reformatter.
type Reformatter struct {
	ReformatFn func(ctx context.Context) (*jobready.ReformatResult, error)
}

func (r *Reformatter) Reformat(ctx context.Context) (*jobready.ReformatResult, error) {
	return r.ReformatFn(ctx)
}

// Importer is a mock implementation of jobready.Importer.
type Importer struct {
	ImportFn func(ctx context.Context, r io.Reader) (*jobready.ImportResult, error)
}

func (i *Importer) Import(ctx context.Context, r io.Reader) (*jobready.ImportResult, error) {
	return i.ImportFn(ctx, r)
}
