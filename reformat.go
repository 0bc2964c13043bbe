package jobready

import "context"

// ReformatResult reports a batch reformatting run.
type ReformatResult struct {
	Updated     int   `json:"updated"`
	QuestionIDs []int `json:"questionIds"`
}

// Reformatter rewrites stored answers into markdown structure.
type Reformatter interface {
	// Reformat rewrites every answer and stores the dataset once if any
	// answer changed.
	Reformat(ctx context.Context) (*ReformatResult, error)
}
