package main

import (
	"fmt"

	"github.com/Muzammil-Ahm3d/jobready"
)

// Run executes the ask command.
func (c *AskCmd) Run(deps *Dependencies) error {
	ans, err := deps.Resolver.Resolve(deps.Ctx, &jobready.ChatRequest{Query: c.Query})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", jobready.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "%s [%s]\n\n%s\n", ans.Question, ans.Source, ans.Answer)
	if ans.CodeSnippet != "" {
		fmt.Fprintf(deps.Stdout, "\n%s\n", ans.CodeSnippet)
	}
	return nil
}
