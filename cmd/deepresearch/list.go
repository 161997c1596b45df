package main

import (
	"fmt"

	"github.com/fwojciec/deepresearch"
)

// Run executes the list command.
func (c *ListCmd) Run(deps *Dependencies) error {
	provider, err := parseProvider(c.Provider)
	if err != nil {
		return fail(deps, err)
	}

	sort := deepresearch.SortByRecent
	if c.Sort == string(deepresearch.SortByPopularity) {
		sort = deepresearch.SortByPopularity
	}

	researches, err := deps.Researches.FindResearches(deps.Ctx, deepresearch.ResearchFilter{
		Provider: provider,
		SortBy:   sort,
		Limit:    c.Limit,
		Offset:   c.Offset,
	})
	if err != nil {
		return fail(deps, err)
	}

	if len(researches) == 0 {
		fmt.Fprintln(deps.Stdout, "No research found. Use 'deepresearch submit' to archive some.")
		return nil
	}

	for _, r := range researches {
		writeResearchLine(deps.Stdout, r)
	}
	return nil
}
