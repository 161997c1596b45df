package deepresearch_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/fwojciec/deepresearch"
	"github.com/fwojciec/deepresearch/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindFeatured(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	recording := func() (*mock.ResearchService, *[]deepresearch.ResearchFilter) {
		var mu sync.Mutex
		var filters []deepresearch.ResearchFilter
		svc := &mock.ResearchService{
			FindResearchesFn: func(_ context.Context, f deepresearch.ResearchFilter) ([]*deepresearch.Research, error) {
				mu.Lock()
				defer mu.Unlock()
				filters = append(filters, f)
				return []*deepresearch.Research{{ID: string(f.SortBy)}}, nil
			},
		}
		return svc, &filters
	}

	t.Run("queries recent window and popularity", func(t *testing.T) {
		t.Parallel()

		svc, filters := recording()

		got, err := deepresearch.FindFeatured(context.Background(), svc, 0, now)

		require.NoError(t, err)
		require.Len(t, *filters, 2)

		recent := (*filters)[0]
		assert.Equal(t, deepresearch.SortByRecent, recent.SortBy)
		assert.Equal(t, deepresearch.DefaultFeaturedLimit, recent.Limit)
		require.NotNil(t, recent.CreatedAfter)
		assert.Equal(t, now.Add(-30*24*time.Hour), *recent.CreatedAfter)

		popular := (*filters)[1]
		assert.Equal(t, deepresearch.SortByPopularity, popular.SortBy)
		assert.Nil(t, popular.CreatedAfter)

		assert.Equal(t, "recent", got.Recent[0].ID)
		assert.Equal(t, "popular", got.Popular[0].ID)
	})

	t.Run("clamps limit", func(t *testing.T) {
		t.Parallel()

		for _, tc := range []struct {
			in, want int
		}{
			{in: 50, want: 10},
			{in: -3, want: 1},
			{in: 4, want: 4},
		} {
			svc, filters := recording()

			_, err := deepresearch.FindFeatured(context.Background(), svc, tc.in, now)

			require.NoError(t, err)
			for _, f := range *filters {
				assert.Equal(t, tc.want, f.Limit, "limit %d", tc.in)
			}
		}
	})

	t.Run("returns store errors", func(t *testing.T) {
		t.Parallel()

		svc := &mock.ResearchService{
			FindResearchesFn: func(_ context.Context, _ deepresearch.ResearchFilter) ([]*deepresearch.Research, error) {
				return nil, errors.New("disk gone")
			},
		}

		_, err := deepresearch.FindFeatured(context.Background(), svc, 6, now)

		assert.EqualError(t, err, "disk gone")
	})
}
