package main

import (
	"fmt"
	"path/filepath"

	"github.com/fwojciec/deepresearch"
	"github.com/fwojciec/deepresearch/fs"
)

// Run executes the export command.
func (c *ExportCmd) Run(deps *Dependencies) error {
	provider, err := parseProvider(c.Provider)
	if err != nil {
		return fail(deps, err)
	}

	researches, err := deps.Researches.FindResearches(deps.Ctx, deepresearch.ResearchFilter{Provider: provider})
	if err != nil {
		return fail(deps, err)
	}

	dir := filepath.Clean(c.Dir)
	exporter := fs.NewExporter(filepath.Dir(dir), filepath.Base(dir))
	for _, r := range researches {
		if err := exporter.Save(r); err != nil {
			_ = exporter.Abort()
			return fail(deps, err)
		}
	}
	if err := exporter.Commit(); err != nil {
		_ = exporter.Abort()
		return fail(deps, err)
	}

	fmt.Fprintf(deps.Stdout, "Exported %d records to %s\n", len(researches), dir)
	return nil
}
