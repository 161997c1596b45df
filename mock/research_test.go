package mock_test

import (
	"context"
	"testing"

	"github.com/fwojciec/deepresearch"
	"github.com/fwojciec/deepresearch/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResearchService_ImplementsInterface(t *testing.T) {
	t.Parallel()

	var _ deepresearch.ResearchService = &mock.ResearchService{}
}

func TestResearchService_CreateResearch(t *testing.T) {
	t.Parallel()

	t.Run("delegates to CreateResearchFn", func(t *testing.T) {
		t.Parallel()

		var calledWith *deepresearch.Research
		s := &mock.ResearchService{
			CreateResearchFn: func(_ context.Context, r *deepresearch.Research) error {
				calledWith = r
				return nil
			},
		}

		r := &deepresearch.Research{URL: "https://claude.ai/share/1", Title: "Claude Conversation"}
		err := s.CreateResearch(context.Background(), r)

		require.NoError(t, err)
		assert.Same(t, r, calledWith)
	})

	t.Run("returns error from CreateResearchFn", func(t *testing.T) {
		t.Parallel()

		s := &mock.ResearchService{
			CreateResearchFn: func(_ context.Context, _ *deepresearch.Research) error {
				return deepresearch.Errorf(deepresearch.ECONFLICT, "exists")
			},
		}

		err := s.CreateResearch(context.Background(), &deepresearch.Research{})

		assert.Equal(t, deepresearch.ECONFLICT, deepresearch.ErrorCode(err))
	})
}

func TestResearchService_IncrementUpvotes(t *testing.T) {
	t.Parallel()

	s := &mock.ResearchService{
		IncrementUpvotesFn: func(_ context.Context, id string) (int, error) {
			assert.Equal(t, "abc", id)
			return 4, nil
		},
	}

	n, err := s.IncrementUpvotes(context.Background(), "abc")

	require.NoError(t, err)
	assert.Equal(t, 4, n)
}
