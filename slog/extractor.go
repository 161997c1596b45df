package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/deepresearch"
)

// Ensure LoggingExtractor implements deepresearch.Extractor.
var _ deepresearch.Extractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps an Extractor with debug logging.
type LoggingExtractor struct {
	next   deepresearch.Extractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next deepresearch.Extractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// Extract delegates to the wrapped extractor and logs which strategy won.
func (e *LoggingExtractor) Extract(html string, provider deepresearch.Provider) (result *deepresearch.ExtractResult, err error) {
	defer e.log("extract", provider, time.Now(), &result, &err)
	return e.next.Extract(html, provider)
}

// ExtractGeneric delegates to the wrapped extractor and logs the operation.
func (e *LoggingExtractor) ExtractGeneric(html string, provider deepresearch.Provider) (result *deepresearch.ExtractResult, err error) {
	defer e.log("extract generic", provider, time.Now(), &result, &err)
	return e.next.ExtractGeneric(html, provider)
}

func (e *LoggingExtractor) log(msg string, provider deepresearch.Provider, begin time.Time, result **deepresearch.ExtractResult, err *error) {
	attrs := []any{"provider", provider}
	if r := *result; r != nil {
		attrs = append(attrs, "chars", deepresearch.RuneLen(r.Content))
		for _, k := range []string{"extractor", "selector"} {
			if v, ok := r.Metadata[k]; ok {
				attrs = append(attrs, k, v)
			}
		}
	}
	attrs = append(attrs, "duration", time.Since(begin), "err", *err)
	e.logger.Info(msg, attrs...)
}
