package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/deepresearch"
)

// Ensure LoggingResearchService implements deepresearch.ResearchService.
var _ deepresearch.ResearchService = (*LoggingResearchService)(nil)

// LoggingResearchService wraps a ResearchService with debug logging.
type LoggingResearchService struct {
	next   deepresearch.ResearchService
	logger *slog.Logger
}

// NewLoggingResearchService creates a new LoggingResearchService.
func NewLoggingResearchService(next deepresearch.ResearchService, logger *slog.Logger) *LoggingResearchService {
	return &LoggingResearchService{next: next, logger: logger}
}

// CreateResearch delegates to the wrapped service and logs the operation.
func (s *LoggingResearchService) CreateResearch(ctx context.Context, r *deepresearch.Research) (err error) {
	defer func(begin time.Time) {
		s.logger.Info("create research",
			"url", r.URL,
			"id", r.ID,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.CreateResearch(ctx, r)
}

// FindResearchByID delegates to the wrapped service and logs the operation.
func (s *LoggingResearchService) FindResearchByID(ctx context.Context, id string) (r *deepresearch.Research, err error) {
	defer func(begin time.Time) {
		s.logger.Info("find research",
			"id", id,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.FindResearchByID(ctx, id)
}

// FindResearches delegates to the wrapped service and logs the operation.
func (s *LoggingResearchService) FindResearches(ctx context.Context, filter deepresearch.ResearchFilter) (rs []*deepresearch.Research, err error) {
	defer func(begin time.Time) {
		s.logger.Info("find researches",
			"sort", filter.SortBy,
			"limit", filter.Limit,
			"count", len(rs),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.FindResearches(ctx, filter)
}

// IncrementUpvotes delegates to the wrapped service and logs the operation.
func (s *LoggingResearchService) IncrementUpvotes(ctx context.Context, id string) (n int, err error) {
	defer func(begin time.Time) {
		s.logger.Info("upvote", "id", id, "count", n, "duration", time.Since(begin), "err", err)
	}(time.Now())
	return s.next.IncrementUpvotes(ctx, id)
}

// IncrementViewCount delegates to the wrapped service and logs the operation.
func (s *LoggingResearchService) IncrementViewCount(ctx context.Context, id string) (n int, err error) {
	defer func(begin time.Time) {
		s.logger.Info("view", "id", id, "count", n, "duration", time.Since(begin), "err", err)
	}(time.Now())
	return s.next.IncrementViewCount(ctx, id)
}
