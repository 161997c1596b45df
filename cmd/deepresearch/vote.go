package main

import "fmt"

// Run executes the view command.
func (c *ViewCmd) Run(deps *Dependencies) error {
	n, err := deps.Researches.IncrementViewCount(deps.Ctx, c.ID)
	if err != nil {
		return fail(deps, err)
	}
	fmt.Fprintf(deps.Stdout, "%s now has %d views\n", c.ID, n)
	return nil
}

// Run executes the upvote command.
func (c *UpvoteCmd) Run(deps *Dependencies) error {
	n, err := deps.Researches.IncrementUpvotes(deps.Ctx, c.ID)
	if err != nil {
		return fail(deps, err)
	}
	fmt.Fprintf(deps.Stdout, "%s now has %d upvotes\n", c.ID, n)
	return nil
}
