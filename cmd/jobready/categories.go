package main

import (
	"fmt"

	"github.com/Muzammil-Ahm3d/jobready"
)

// Run executes the categories list command.
func (c *CategoriesListCmd) Run(deps *Dependencies) error {
	categories, err := deps.Categories.FindCategories(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", jobready.ErrorMessage(err))
		return err
	}

	if len(categories) == 0 {
		fmt.Fprintln(deps.Stdout, "No categories found. Use 'jobready categories add' to create one.")
		return nil
	}

	for _, c := range categories {
		fmt.Fprintf(deps.Stdout, "%d  %s  %s  (%d questions)\n", c.ID, c.Name, c.Slug, c.Count)
	}
	return nil
}

// Run executes the categories add command.
func (c *CategoriesAddCmd) Run(deps *Dependencies) error {
	category := &jobready.Category{
		Name:        c.Name,
		Slug:        c.Slug,
		Description: c.Description,
		Order:       c.Order,
	}
	if err := deps.Categories.CreateCategory(deps.Ctx, category); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", jobready.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Added category %q (id %d, slug %s)\n", category.Name, category.ID, category.Slug)
	return nil
}

// Run executes the categories delete command.
func (c *CategoriesDeleteCmd) Run(deps *Dependencies) error {
	if !c.Force {
		fmt.Fprintf(deps.Stderr, "error: use --force to confirm deletion\n")
		return jobready.Errorf(jobready.EINVALID, "use --force to confirm deletion")
	}

	if err := deps.Categories.DeleteCategory(deps.Ctx, c.ID); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", jobready.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Deleted category %d and its questions\n", c.ID)
	return nil
}
