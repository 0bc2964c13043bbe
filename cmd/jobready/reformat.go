package main

import (
	"fmt"

	"github.com/Muzammil-Ahm3d/jobready"
)

// Run executes the reformat command.
func (c *ReformatCmd) Run(deps *Dependencies) error {
	result, err := deps.Reformatter.Reformat(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", jobready.ErrorMessage(err))
		return err
	}

	if result.Updated == 0 {
		fmt.Fprintln(deps.Stdout, "All answers already formatted.")
		return nil
	}
	fmt.Fprintf(deps.Stdout, "Reformatted %d answers\n", result.Updated)
	return nil
}
