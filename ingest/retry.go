package ingest

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/deepresearch"
)

var _ deepresearch.Fetcher = (*RetryFetcher)(nil)

// DefaultRetryDelays returns the backoff delays for fetch retries: 1s, 2s, 4s.
func DefaultRetryDelays() []time.Duration {
	return []time.Duration{1 * time.Second, 2 * time.Second, 4 * time.Second}
}

// RetryFetcher retries a failing Fetcher once per entry in Delays, waiting
// that long before each new attempt. A nil Delays uses DefaultRetryDelays;
// an empty non-nil slice disables retries.
type RetryFetcher struct {
	Fetcher deepresearch.Fetcher
	Delays  []time.Duration
	Logger  *slog.Logger
}

// Fetch returns the first successful response or the last error.
func (f *RetryFetcher) Fetch(ctx context.Context, url string) (string, error) {
	delays := f.Delays
	if delays == nil {
		delays = DefaultRetryDelays()
	}

	var lastErr error
	for attempt := 0; attempt <= len(delays); attempt++ {
		html, err := f.Fetcher.Fetch(ctx, url)
		if err == nil {
			return html, nil
		}
		lastErr = err

		if attempt == len(delays) {
			break
		}
		if ctx.Err() != nil {
			return "", ctx.Err()
		}

		if f.Logger != nil {
			f.Logger.Debug("retrying fetch", "url", url, "attempt", attempt+2, "err", err)
		}

		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(delays[attempt]):
		}
	}

	return "", lastErr
}
