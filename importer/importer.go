// Package importer loads interview questions from a source document keyed
// by category name into the dataset.
package importer

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/Muzammil-Ahm3d/jobready"
)

// Ensure Importer implements jobready.Importer at compile time.
var _ jobready.Importer = (*Importer)(nil)

// SourceQuestion is one entry of the source document.
type SourceQuestion struct {
	ID               int      `json:"id"`
	Question         string   `json:"question"`
	Answer           string   `json:"answer"`
	UseCases         []string `json:"useCases"`
	RealTimeUseCases []string `json:"realTimeUseCases"`
}

// SourceCategory is a category key of the source document with its
// questions, in document order.
type SourceCategory struct {
	Name      string
	Questions []SourceQuestion
}

// Importer implements jobready.Importer.
type Importer struct {
	Store jobready.DatasetStore

	// Converter turns HTML answers into markdown. Nil keeps answers as is.
	Converter jobready.Converter

	// IsHTML decides whether an answer needs converting.
	IsHTML func(string) bool
}

// Import appends every source question whose category key matches an
// existing category by name or slug. The dataset is written once.
func (imp *Importer) Import(ctx context.Context, r io.Reader) (*jobready.ImportResult, error) {
	source, err := Decode(r)
	if err != nil {
		return nil, err
	}

	result := &jobready.ImportResult{MissingCategories: []string{}}
	_, err = jobready.UpdateDataset(ctx, imp.Store, func(ds *jobready.Dataset) error {
		for _, sc := range source {
			c := findCategory(ds, sc.Name)
			if c == nil {
				result.MissingCategories = append(result.MissingCategories, sc.Name)
				continue
			}
			for _, sq := range sc.Questions {
				q, err := imp.question(c.ID, sq)
				if err != nil {
					return err
				}
				ds.AddQuestion(q)
				result.Imported++
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (imp *Importer) question(categoryID int, sq SourceQuestion) (*jobready.Question, error) {
	title := strings.TrimSpace(strings.ReplaceAll(sq.Question, "**", ""))
	if title == "" {
		return nil, jobready.Errorf(jobready.EINVALID, "source question %d has no title", sq.ID)
	}

	answer := sq.Answer
	if imp.Converter != nil && imp.IsHTML != nil && imp.IsHTML(answer) {
		md, err := imp.Converter.Convert(answer)
		if err != nil {
			return nil, fmt.Errorf("convert answer of %q: %w", title, err)
		}
		answer = md
	}

	return &jobready.Question{
		CategoryID:       categoryID,
		Title:            title,
		Answer:           answer,
		UseCases:         jobready.BulletList(sq.UseCases),
		RealTimeUseCases: jobready.BulletList(sq.RealTimeUseCases),
	}, nil
}

func findCategory(ds *jobready.Dataset, key string) *jobready.Category {
	lower := strings.ToLower(key)
	for i := range ds.Categories {
		c := &ds.Categories[i]
		if strings.ToLower(c.Name) == lower || c.Slug == lower {
			return c
		}
	}
	return nil
}

// Decode parses a source document, keeping category keys in document order.
// Returns EINVALID if the document is not an object of question arrays.
func Decode(r io.Reader) ([]SourceCategory, error) {
	dec := json.NewDecoder(r)

	tok, err := dec.Token()
	if err != nil {
		return nil, jobready.Errorf(jobready.EINVALID, "invalid source document: %v", err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, jobready.Errorf(jobready.EINVALID, "invalid source document: expected object")
	}

	var out []SourceCategory
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, jobready.Errorf(jobready.EINVALID, "invalid source document: %v", err)
		}
		name, _ := tok.(string)

		var questions []SourceQuestion
		if err := dec.Decode(&questions); err != nil {
			return nil, jobready.Errorf(jobready.EINVALID, "invalid questions for %q: %v", name, err)
		}
		out = append(out, SourceCategory{Name: name, Questions: questions})
	}

	if _, err := dec.Token(); err != nil {
		return nil, jobready.Errorf(jobready.EINVALID, "invalid source document: %v", err)
	}
	return out, nil
}
