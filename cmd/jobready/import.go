package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/Muzammil-Ahm3d/jobready"
)

// Run executes the import command.
func (c *ImportCmd) Run(deps *Dependencies) error {
	f, err := os.Open(c.File)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %v\n", err)
		return err
	}
	defer f.Close()

	result, err := deps.Importer.Import(deps.Ctx, f)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", jobready.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Imported %d questions\n", result.Imported)
	if len(result.MissingCategories) > 0 {
		fmt.Fprintf(deps.Stderr, "warning: no category for %s. Use 'jobready categories add' to create them.\n",
			strings.Join(result.MissingCategories, ", "))
	}
	return nil
}
