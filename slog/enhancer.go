package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/deepresearch"
)

// Ensure LoggingEnhancer implements deepresearch.Enhancer.
var _ deepresearch.Enhancer = (*LoggingEnhancer)(nil)

// LoggingEnhancer wraps an Enhancer with debug logging.
type LoggingEnhancer struct {
	next   deepresearch.Enhancer
	logger *slog.Logger
}

// NewLoggingEnhancer creates a new LoggingEnhancer.
func NewLoggingEnhancer(next deepresearch.Enhancer, logger *slog.Logger) *LoggingEnhancer {
	return &LoggingEnhancer{next: next, logger: logger}
}

// Enhance delegates to the wrapped enhancer and logs the operation.
func (e *LoggingEnhancer) Enhance(ctx context.Context, text, sourceURL string) (enh *deepresearch.Enhancement, err error) {
	defer func(begin time.Time) {
		var category deepresearch.Category
		var keywords int
		if enh != nil {
			category = enh.Category
			keywords = len(enh.Keywords)
		}
		e.logger.Info("enhance",
			"url", sourceURL,
			"chars", deepresearch.RuneLen(text),
			"category", category,
			"keywords", keywords,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return e.next.Enhance(ctx, text, sourceURL)
}
