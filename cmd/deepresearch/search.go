package main

import (
	"fmt"

	"github.com/fwojciec/deepresearch"
	"github.com/fwojciec/deepresearch/yaml"
)

// Run executes the search command.
func (c *SearchCmd) Run(deps *Dependencies) error {
	provider, err := parseProvider(c.Provider)
	if err != nil {
		return fail(deps, err)
	}

	scorer := deepresearch.NewScorer()
	if c.Weights != "" {
		w, err := yaml.LoadWeights(c.Weights)
		if err != nil {
			return fail(deps, err)
		}
		scorer.Weights = w
	}

	candidates, err := deps.Researches.FindResearches(deps.Ctx, deepresearch.ResearchFilter{})
	if err != nil {
		return fail(deps, err)
	}

	opts := deepresearch.SearchOptions{Limit: c.Limit}
	if provider != nil {
		opts.Provider = *provider
	}
	resp, err := scorer.Search(c.Query, candidates, opts)
	if err != nil {
		return fail(deps, err)
	}

	if len(resp.Results) == 0 {
		fmt.Fprintf(deps.Stdout, "No research matches %q.\n", resp.Query)
		return nil
	}

	fmt.Fprintf(deps.Stdout, "%d results for %q\n", resp.Total, resp.Query)
	for _, res := range resp.Results {
		fmt.Fprintf(deps.Stdout, "%4d  ", res.Score)
		writeResearchLine(deps.Stdout, res.Research)
	}
	return nil
}
