package main

import (
	"fmt"

	"github.com/Muzammil-Ahm3d/jobready"
)

// Run executes the questions list command.
func (c *QuestionsListCmd) Run(deps *Dependencies) error {
	filter := jobready.QuestionFilter{Limit: c.Limit}
	if c.Category != "" {
		filter.CategorySlug = &c.Category
	}
	if c.Search != "" {
		filter.Search = &c.Search
	}

	questions, err := deps.Questions.FindQuestions(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", jobready.ErrorMessage(err))
		return err
	}

	if len(questions) == 0 {
		fmt.Fprintln(deps.Stdout, "No questions found.")
		return nil
	}

	for _, q := range questions {
		fmt.Fprintf(deps.Stdout, "%d  [%d]  %s\n", q.ID, q.CategoryID, q.Title)
	}
	return nil
}

// Run executes the questions add command.
func (c *QuestionsAddCmd) Run(deps *Dependencies) error {
	q := &jobready.Question{
		CategoryID:  c.CategoryID,
		Title:       c.Title,
		Answer:      c.Answer,
		CodeSnippet: c.CodeSnippet,
	}
	if err := deps.Questions.CreateQuestion(deps.Ctx, q); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", jobready.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Added question %d (%s)\n", q.ID, q.Slug)
	return nil
}

// Run executes the questions delete command.
func (c *QuestionsDeleteCmd) Run(deps *Dependencies) error {
	if !c.Force {
		fmt.Fprintf(deps.Stderr, "error: use --force to confirm deletion\n")
		return jobready.Errorf(jobready.EINVALID, "use --force to confirm deletion")
	}

	if err := deps.Questions.DeleteQuestion(deps.Ctx, c.ID); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", jobready.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Deleted question %d\n", c.ID)
	return nil
}
