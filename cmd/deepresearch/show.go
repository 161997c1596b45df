package main

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// Run executes the show command.
func (c *ShowCmd) Run(deps *Dependencies) error {
	r, err := deps.Researches.FindResearchByID(deps.Ctx, c.ID)
	if err != nil {
		return fail(deps, err)
	}

	if c.JSON {
		enc := json.NewEncoder(deps.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	}

	w := deps.Stdout
	fmt.Fprintln(w, r.Title)
	fmt.Fprintf(w, "  id:        %s\n", r.ID)
	fmt.Fprintf(w, "  url:       %s\n", r.URL)
	fmt.Fprintf(w, "  provider:  %s\n", r.Provider)
	if r.Category != "" {
		fmt.Fprintf(w, "  category:  %s\n", r.Category)
	}
	if len(r.Tags) > 0 {
		fmt.Fprintf(w, "  tags:      %s\n", strings.Join(r.Tags, ", "))
	}
	if r.AuthorName != "" || r.AuthorHandle != "" {
		fmt.Fprintf(w, "  author:    %s\n", strings.TrimSpace(r.AuthorName+" "+r.AuthorHandle))
	}
	fmt.Fprintf(w, "  status:    %s\n", r.IsProcessed)
	fmt.Fprintf(w, "  views:     %d\n", r.ViewCount)
	fmt.Fprintf(w, "  upvotes:   %d\n", r.Upvotes)
	fmt.Fprintf(w, "  created:   %s\n", r.CreatedAt.Format(time.RFC3339))
	if r.Description != "" {
		fmt.Fprintf(w, "\n%s\n", r.Description)
	}
	if r.Summary != "" && r.Summary != r.Description {
		fmt.Fprintf(w, "\n%s\n", r.Summary)
	}
	if c.Content {
		fmt.Fprintf(w, "\n%s\n", r.Content)
	}
	return nil
}
