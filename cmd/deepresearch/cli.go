package main

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/fwojciec/deepresearch"
	"github.com/fwojciec/deepresearch/ingest"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx        context.Context
	Stdout     io.Writer
	Stderr     io.Writer
	Researches deepresearch.ResearchService
	Submitter  ingest.Submitter
	Importer   *ingest.Importer

	// Now returns the current time. Defaults to time.Now.
	Now func() time.Time
}

func (d *Dependencies) now() time.Time {
	if d.Now == nil {
		return time.Now()
	}
	return d.Now()
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Debug bool `help:"Log every pipeline step to stderr"`

	Submit   SubmitCmd   `cmd:"" help:"Archive a shared AI conversation URL"`
	Import   ImportCmd   `cmd:"" help:"Archive every URL listed in a file"`
	Search   SearchCmd   `cmd:"" help:"Search archived research"`
	List     ListCmd     `cmd:"" help:"List archived research"`
	Featured FeaturedCmd `cmd:"" help:"Show recent and popular research"`
	Show     ShowCmd     `cmd:"" help:"Show a research record"`
	View     ViewCmd     `cmd:"" help:"Record a view of a research record"`
	Upvote   UpvoteCmd   `cmd:"" help:"Upvote a research record"`
	Export   ExportCmd   `cmd:"" help:"Write every record as a markdown file"`
}

// SubmitCmd is the "submit" subcommand.
type SubmitCmd struct {
	URL          string `arg:"" help:"Shared conversation URL"`
	AuthorName   string `help:"Display name of the submitter"`
	AuthorHandle string `help:"Handle of the submitter"`
}

// ImportCmd is the "import" subcommand.
type ImportCmd struct {
	File         string `arg:"" type:"existingfile" help:"File with one URL per line ('#' starts a comment)"`
	Concurrency  int    `short:"c" default:"4" help:"Concurrent submission limit"`
	AuthorName   string `help:"Display name attached to every record"`
	AuthorHandle string `help:"Handle attached to every record"`
}

// SearchCmd is the "search" subcommand.
type SearchCmd struct {
	Query    string `arg:"" help:"Search terms"`
	Provider string `help:"Only search records from this provider"`
	Limit    int    `short:"n" default:"20" help:"Maximum results"`
	Weights  string `type:"existingfile" help:"YAML file overriding scoring weights"`
}

// ListCmd is the "list" subcommand.
type ListCmd struct {
	Provider string `help:"Only list records from this provider"`
	Sort     string `enum:"recent,popular" default:"recent" help:"Sort order (recent, popular)"`
	Limit    int    `short:"n" default:"20" help:"Maximum records"`
	Offset   int    `help:"Records to skip"`
}

// FeaturedCmd is the "featured" subcommand.
type FeaturedCmd struct {
	Limit int `short:"n" default:"6" help:"Records per list (1-10)"`
}

// ShowCmd is the "show" subcommand.
type ShowCmd struct {
	ID      string `arg:"" help:"Research ID"`
	JSON    bool   `help:"Print the full record as JSON"`
	Content bool   `help:"Include the extracted content"`
}

// ViewCmd is the "view" subcommand.
type ViewCmd struct {
	ID string `arg:"" help:"Research ID"`
}

// UpvoteCmd is the "upvote" subcommand.
type UpvoteCmd struct {
	ID string `arg:"" help:"Research ID"`
}

// ExportCmd is the "export" subcommand.
type ExportCmd struct {
	Dir      string `arg:"" help:"Output directory (replaced on success)"`
	Provider string `help:"Only export records from this provider"`
}

// parseProvider validates an optional provider flag.
func parseProvider(s string) (*deepresearch.Provider, error) {
	if s == "" {
		return nil, nil
	}
	p := deepresearch.Provider(strings.ToLower(strings.TrimSpace(s)))
	if !p.IsValid() {
		return nil, deepresearch.Errorf(deepresearch.EINVALID, "unknown provider %q", s)
	}
	return &p, nil
}

// writeResearchLine prints a one-line summary of r.
func writeResearchLine(w io.Writer, r *deepresearch.Research) {
	fmt.Fprintf(w, "%s  %-10s  %s  (%d views, %d upvotes)\n", r.ID, r.Provider, r.Title, r.ViewCount, r.Upvotes)
}

// fail prints the user-facing message for err and returns it.
func fail(deps *Dependencies, err error) error {
	fmt.Fprintf(deps.Stderr, "error: %s\n", deepresearch.ErrorMessage(err))
	return err
}
