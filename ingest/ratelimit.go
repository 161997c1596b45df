package ingest

import (
	"context"
	"strings"
	"sync"

	"github.com/fwojciec/deepresearch"
	"golang.org/x/time/rate"
)

var _ deepresearch.DomainLimiter = (*DomainLimiter)(nil)

// DomainLimiter spaces out requests to each host with a token bucket per
// host. Hosts are compared case-insensitively with any "www." prefix
// removed, so www.perplexity.ai and perplexity.ai share one bucket.
type DomainLimiter struct {
	mu      sync.Mutex
	buckets map[string]*rate.Limiter
	limit   rate.Limit
}

// NewDomainLimiter allows rps requests per second to each host, with no
// bursting.
func NewDomainLimiter(rps float64) *DomainLimiter {
	return &DomainLimiter{
		buckets: make(map[string]*rate.Limiter),
		limit:   rate.Limit(rps),
	}
}

// Wait blocks until host may be contacted again.
func (d *DomainLimiter) Wait(ctx context.Context, host string) error {
	return d.bucket(host).Wait(ctx)
}

func (d *DomainLimiter) bucket(host string) *rate.Limiter {
	key := strings.TrimPrefix(strings.ToLower(host), "www.")

	d.mu.Lock()
	defer d.mu.Unlock()
	b, ok := d.buckets[key]
	if !ok {
		b = rate.NewLimiter(d.limit, 1)
		d.buckets[key] = b
	}
	return b
}
