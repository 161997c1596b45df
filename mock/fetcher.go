package mock

import (
	"context"

	"github.com/fwojciec/deepresearch"
)

var _ deepresearch.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of deepresearch.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, url string) (string, error)
}

func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	return f.FetchFn(ctx, url)
}
