package deepresearch

import (
	"context"
	"time"
)

// Field length bounds for a Research record.
const (
	MaxTitleLength       = 100
	MaxDescriptionLength = 300
	MaxSummaryLength     = 500
	MaxContentLength     = 15000
)

// ProcessingStatus reports whether AI enhancement completed for a record.
type ProcessingStatus string

// ProcessingStatus values.
const (
	StatusPending   ProcessingStatus = "pending"
	StatusProcessed ProcessingStatus = "processed"
	StatusFailed    ProcessingStatus = "failed"
)

// IsValid returns true if s is a known status.
func (s ProcessingStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusProcessed, StatusFailed:
		return true
	}
	return false
}

// Research is the canonical record for a submitted research item.
// Content fields are immutable after creation; only the counters and
// UpdatedAt change afterwards.
type Research struct {
	ID           string           `json:"id"`
	URL          string           `json:"url"`
	Title        string           `json:"title"`
	Description  string           `json:"description"`
	Content      string           `json:"content"`
	Summary      string           `json:"summary,omitempty"`
	Provider     Provider         `json:"provider"`
	Category     Category         `json:"category,omitempty"`
	Tags         []string         `json:"tags"`
	Metadata     map[string]any   `json:"metadata,omitempty"`
	AuthorName   string           `json:"authorName,omitempty"`
	AuthorHandle string           `json:"authorHandle,omitempty"`
	ViewCount    int              `json:"viewCount"`
	Upvotes      int              `json:"upvotes"`
	IsProcessed  ProcessingStatus `json:"isProcessed"`
	CreatedAt    time.Time        `json:"createdAt"`
	UpdatedAt    time.Time        `json:"updatedAt"`
}

// Validate returns an error if the research contains invalid fields.
func (r *Research) Validate() error {
	if r.URL == "" {
		return Errorf(EINVALID, "research URL required")
	}
	if r.Title == "" {
		return Errorf(EINVALID, "research title required")
	}
	if !r.Provider.IsValid() {
		return Errorf(EINVALID, "unknown provider %q", r.Provider)
	}
	if r.IsProcessed != "" && !r.IsProcessed.IsValid() {
		return Errorf(EINVALID, "unknown processing status %q", r.IsProcessed)
	}
	if r.Category != "" && !r.Category.IsValid() {
		return Errorf(EINVALID, "unknown category %q", r.Category)
	}
	if RuneLen(r.Content) > MaxContentLength {
		return Errorf(EINVALID, "research content exceeds %d characters", MaxContentLength)
	}
	return nil
}

// ResearchService represents a service for managing research records.
type ResearchService interface {
	// CreateResearch stores a new record, assigning its ID and timestamps.
	// Returns ECONFLICT if a record with the same URL already exists.
	CreateResearch(ctx context.Context, research *Research) error

	// FindResearchByID retrieves a record by ID.
	// Returns ENOTFOUND if the record does not exist.
	FindResearchByID(ctx context.Context, id string) (*Research, error)

	// FindResearches retrieves records matching the filter.
	FindResearches(ctx context.Context, filter ResearchFilter) ([]*Research, error)

	// IncrementUpvotes atomically adds one upvote and returns the new count.
	// Returns ENOTFOUND if the record does not exist.
	IncrementUpvotes(ctx context.Context, id string) (int, error)

	// IncrementViewCount atomically adds one view and returns the new count.
	// Returns ENOTFOUND if the record does not exist.
	IncrementViewCount(ctx context.Context, id string) (int, error)
}

// SortOrder represents the sort order for research queries.
type SortOrder string

// SortOrder constants for ResearchFilter.
const (
	SortByRecent     SortOrder = "recent"
	SortByPopularity SortOrder = "popular"
)

// ResearchFilter represents a filter for FindResearches.
type ResearchFilter struct {
	ID           *string    `json:"id"`
	URL          *string    `json:"url"`
	Provider     *Provider  `json:"provider"`
	CreatedAfter *time.Time `json:"createdAfter"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`

	SortBy SortOrder `json:"sortBy"`
}

// ResearchExists reports whether a record with the given URL is stored.
func ResearchExists(ctx context.Context, svc ResearchService, url string) (bool, error) {
	found, err := svc.FindResearches(ctx, ResearchFilter{URL: &url, Limit: 1})
	if err != nil {
		return false, err
	}
	return len(found) > 0, nil
}
