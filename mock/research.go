package mock

import (
	"context"

	"github.com/fwojciec/deepresearch"
)

var _ deepresearch.ResearchService = (*ResearchService)(nil)

// ResearchService is a mock implementation of deepresearch.ResearchService.
type ResearchService struct {
	CreateResearchFn     func(ctx context.Context, research *deepresearch.Research) error
	FindResearchByIDFn   func(ctx context.Context, id string) (*deepresearch.Research, error)
	FindResearchesFn     func(ctx context.Context, filter deepresearch.ResearchFilter) ([]*deepresearch.Research, error)
	IncrementUpvotesFn   func(ctx context.Context, id string) (int, error)
	IncrementViewCountFn func(ctx context.Context, id string) (int, error)
}

func (s *ResearchService) CreateResearch(ctx context.Context, research *deepresearch.Research) error {
	return s.CreateResearchFn(ctx, research)
}

func (s *ResearchService) FindResearchByID(ctx context.Context, id string) (*deepresearch.Research, error) {
	return s.FindResearchByIDFn(ctx, id)
}

func (s *ResearchService) FindResearches(ctx context.Context, filter deepresearch.ResearchFilter) ([]*deepresearch.Research, error) {
	return s.FindResearchesFn(ctx, filter)
}

func (s *ResearchService) IncrementUpvotes(ctx context.Context, id string) (int, error) {
	return s.IncrementUpvotesFn(ctx, id)
}

func (s *ResearchService) IncrementViewCount(ctx context.Context, id string) (int, error) {
	return s.IncrementViewCountFn(ctx, id)
}
