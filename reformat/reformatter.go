package reformat

import (
	"context"
	"errors"

	"github.com/Muzammil-Ahm3d/jobready"
)

// Ensure Reformatter implements jobready.Reformatter at compile time.
var _ jobready.Reformatter = (*Reformatter)(nil)

// Reformatter implements jobready.Reformatter over a dataset store.
type Reformatter struct {
	Store jobready.DatasetStore

	// Rules defaults to DefaultRules when nil.
	Rules []Rule
}

// Reformat applies the rules to every stored answer. The dataset is written
// once, and only if at least one answer changed.
func (r *Reformatter) Reformat(ctx context.Context) (*jobready.ReformatResult, error) {
	rules := r.Rules
	if rules == nil {
		rules = DefaultRules()
	}

	result := &jobready.ReformatResult{QuestionIDs: []int{}}
	_, err := jobready.UpdateDataset(ctx, r.Store, func(ds *jobready.Dataset) error {
		for i := range ds.Questions {
			q := &ds.Questions[i]
			if answer := Apply(q.Answer, rules); answer != q.Answer {
				q.Answer = answer
				result.QuestionIDs = append(result.QuestionIDs, q.ID)
			}
		}
		if len(result.QuestionIDs) == 0 {
			return errUnchanged
		}
		return nil
	})
	if err != nil && !errors.Is(err, errUnchanged) {
		return nil, err
	}

	result.Updated = len(result.QuestionIDs)
	return result, nil
}

// errUnchanged aborts the update cycle so nothing is written.
var errUnchanged = errors.New("no answers changed")
