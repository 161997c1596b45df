package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/fwojciec/deepresearch"
	"github.com/fwojciec/deepresearch/ingest"
)

// Run executes the import command.
func (c *ImportCmd) Run(deps *Dependencies) error {
	urls, err := readURLs(c.File)
	if err != nil {
		return fail(deps, err)
	}

	if c.Concurrency > 0 {
		deps.Importer.Concurrency = c.Concurrency
	}
	deps.Importer.AuthorName = c.AuthorName
	deps.Importer.AuthorHandle = c.AuthorHandle

	progress := func(event ingest.ProgressEvent) {
		switch event.Type {
		case ingest.ProgressStarted:
			fmt.Fprintf(deps.Stdout, "Importing %d URLs\n", event.Total)
		case ingest.ProgressCompleted:
			fmt.Fprintf(deps.Stdout, "  [%d/%d] ok   %s\n", event.Completed, event.Total, event.URL)
		case ingest.ProgressSkipped:
			fmt.Fprintf(deps.Stdout, "  [%d/%d] dup  %s\n", event.Completed, event.Total, event.URL)
		case ingest.ProgressFailed:
			fmt.Fprintf(deps.Stderr, "  [%d/%d] fail %s: %v\n", event.Completed, event.Total, event.URL, event.Error)
		}
	}

	result, err := deps.Importer.Import(deps.Ctx, urls, progress)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error importing: %v\n", err)
		return err
	}

	fmt.Fprintf(deps.Stdout, "Imported %d, skipped %d, failed %d\n", result.Imported, result.Skipped, result.Failed)
	return nil
}

// readURLs returns the non-comment lines of the file at path.
func readURLs(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, deepresearch.Errorf(deepresearch.EINVALID, "failed to open %s: %v", path, err)
	}
	defer f.Close()

	var urls []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		urls = append(urls, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, deepresearch.Errorf(deepresearch.EINVALID, "failed to read %s: %v", path, err)
	}
	return urls, nil
}
