package main

import (
	"fmt"

	"github.com/fwojciec/deepresearch"
)

// Run executes the featured command.
func (c *FeaturedCmd) Run(deps *Dependencies) error {
	featured, err := deepresearch.FindFeatured(deps.Ctx, deps.Researches, c.Limit, deps.now())
	if err != nil {
		return fail(deps, err)
	}

	fmt.Fprintln(deps.Stdout, "Recent:")
	if len(featured.Recent) == 0 {
		fmt.Fprintln(deps.Stdout, "  (none in the last 30 days)")
	}
	for _, r := range featured.Recent {
		fmt.Fprint(deps.Stdout, "  ")
		writeResearchLine(deps.Stdout, r)
	}

	fmt.Fprintln(deps.Stdout, "Popular:")
	if len(featured.Popular) == 0 {
		fmt.Fprintln(deps.Stdout, "  (none)")
	}
	for _, r := range featured.Popular {
		fmt.Fprint(deps.Stdout, "  ")
		writeResearchLine(deps.Stdout, r)
	}
	return nil
}
