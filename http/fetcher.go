// Package http provides an HTTP-based implementation of deepresearch.Fetcher
// for shared conversation pages that don't require JavaScript rendering.
package http

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/fwojciec/deepresearch"
	"golang.org/x/net/html/charset"
)

// DefaultFetchTimeout is the default timeout for HTTP requests.
const DefaultFetchTimeout = 30 * time.Second

// DefaultUserAgent identifies the archive to the sites it fetches.
const DefaultUserAgent = "Mozilla/5.0 (compatible; DeepResearchBot/1.0)"

// MaxBodySize bounds how much of a response body is read.
const MaxBodySize = 10 << 20

// Ensure Fetcher implements deepresearch.Fetcher at compile time.
var _ deepresearch.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves HTML content from URLs using HTTP GET requests and
// decodes the body to UTF-8 according to the declared charset.
type Fetcher struct {
	client    *http.Client
	timeout   time.Duration
	userAgent string
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for HTTP requests.
// Defaults to DefaultFetchTimeout (30s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) {
		f.userAgent = ua
	}
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout:   DefaultFetchTimeout,
		userAgent: DefaultUserAgent,
	}
	for _, opt := range opts {
		opt(f)
	}

	f.client = &http.Client{
		Timeout: f.timeout,
	}

	return f
}

// Fetch retrieves the HTML content from the given URL.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", deepresearch.Errorf(deepresearch.EFETCH, "invalid request for %s: %v", url, err)
	}
	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml")

	resp, err := f.client.Do(req)
	if err != nil {
		return "", deepresearch.Errorf(deepresearch.EFETCH, "failed to fetch %s: %v", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", deepresearch.Errorf(deepresearch.EFETCH, "HTTP %d for %s", resp.StatusCode, url)
	}

	r, err := charset.NewReader(io.LimitReader(resp.Body, MaxBodySize), resp.Header.Get("Content-Type"))
	if err != nil {
		return "", deepresearch.Errorf(deepresearch.EFETCH, "unsupported charset for %s: %v", url, err)
	}

	body, err := io.ReadAll(r)
	if err != nil {
		return "", deepresearch.Errorf(deepresearch.EFETCH, "failed to read %s: %v", url, err)
	}

	return string(body), nil
}
