package deepresearch

import "context"

// Fetcher retrieves a single page.
type Fetcher interface {
	// Fetch performs one GET request and returns the decoded HTML body.
	// Network errors, timeouts and non-2xx statuses return EFETCH errors.
	// The context controls cancellation.
	Fetch(ctx context.Context, url string) (html string, err error)
}

// DomainLimiter throttles requests per host.
type DomainLimiter interface {
	// Wait blocks until a request to domain is allowed or ctx is done.
	Wait(ctx context.Context, domain string) error
}
