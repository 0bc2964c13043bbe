package jobready

import (
	"context"
	"io"
)

// ImportResult reports a bulk question import.
type ImportResult struct {
	Imported          int      `json:"imported"`
	MissingCategories []string `json:"missingCategories"`
}

// Importer loads questions from an external source document.
type Importer interface {
	// Import appends the questions in r to matching existing categories.
	// Source categories without a match are skipped and reported.
	Import(ctx context.Context, r io.Reader) (*ImportResult, error)
}
