package deepresearch

import (
	"context"
	"time"
)

// Featured list bounds.
const (
	DefaultFeaturedLimit = 6
	MaxFeaturedLimit     = 10
	RecentWindow         = 30 * 24 * time.Hour
)

// Featured holds the recent and popular highlight lists.
type Featured struct {
	Recent  []*Research `json:"recent"`
	Popular []*Research `json:"popular"`
}

// FindFeatured returns records created within RecentWindow of now, newest
// first, alongside the most upvoted records overall. A limit of zero uses
// DefaultFeaturedLimit; others are clamped to [1, MaxFeaturedLimit].
func FindFeatured(ctx context.Context, svc ResearchService, limit int, now time.Time) (*Featured, error) {
	switch {
	case limit == 0:
		limit = DefaultFeaturedLimit
	case limit < 1:
		limit = 1
	case limit > MaxFeaturedLimit:
		limit = MaxFeaturedLimit
	}

	since := now.Add(-RecentWindow)
	recent, err := svc.FindResearches(ctx, ResearchFilter{
		CreatedAfter: &since,
		SortBy:       SortByRecent,
		Limit:        limit,
	})
	if err != nil {
		return nil, err
	}

	popular, err := svc.FindResearches(ctx, ResearchFilter{
		SortBy: SortByPopularity,
		Limit:  limit,
	})
	if err != nil {
		return nil, err
	}

	return &Featured{Recent: recent, Popular: popular}, nil
}
