package main

import (
	"fmt"
	"strings"

	"github.com/fwojciec/deepresearch"
	"github.com/fwojciec/deepresearch/ingest"
)

// Run executes the submit command.
func (c *SubmitCmd) Run(deps *Dependencies) error {
	r, err := deps.Submitter.Submit(deps.Ctx, ingest.SubmitRequest{
		URL:          c.URL,
		AuthorName:   c.AuthorName,
		AuthorHandle: c.AuthorHandle,
	})
	if err != nil {
		if deepresearch.ErrorCode(err) == deepresearch.ECONFLICT {
			fmt.Fprintln(deps.Stderr, "Hint: use 'deepresearch search' or 'deepresearch list' to find the existing record")
		}
		return fail(deps, err)
	}

	fmt.Fprintf(deps.Stdout, "Archived %q (%s)\n", r.Title, r.ID)
	fmt.Fprintf(deps.Stdout, "  provider: %s\n", r.Provider)
	if r.Category != "" {
		fmt.Fprintf(deps.Stdout, "  category: %s\n", r.Category)
	}
	fmt.Fprintf(deps.Stdout, "  status:   %s\n", r.IsProcessed)
	if len(r.Tags) > 0 {
		fmt.Fprintf(deps.Stdout, "  tags:     %s\n", strings.Join(r.Tags, ", "))
	}
	return nil
}
