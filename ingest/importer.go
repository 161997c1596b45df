package ingest

import (
	"context"
	"net/url"
	"strings"
	"sync/atomic"

	"github.com/fwojciec/deepresearch"
	"golang.org/x/sync/errgroup"
)

// DefaultImportConcurrency is the number of submissions processed at once.
const DefaultImportConcurrency = 4

// Submitter ingests a single URL. *Service implements it.
type Submitter interface {
	Submit(ctx context.Context, req SubmitRequest) (*deepresearch.Research, error)
}

var _ Submitter = (*Service)(nil)

// Importer submits a batch of URLs concurrently.
type Importer struct {
	Submitter   Submitter
	RateLimiter deepresearch.DomainLimiter
	Concurrency int

	// AuthorName and AuthorHandle are attached to every submission.
	AuthorName   string
	AuthorHandle string
}

// ImportResult holds the outcome of an import.
type ImportResult struct {
	Imported int
	Skipped  int
	Failed   int
}

// ProgressEvent reports progress during an import.
type ProgressEvent struct {
	Type      ProgressType
	Completed int
	Total     int
	URL       string
	Research  *deepresearch.Research
	Error     error
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressStarted ProgressType = iota
	ProgressCompleted
	ProgressSkipped
	ProgressFailed
	ProgressFinished
)

// ProgressFunc is a callback for reporting import progress.
// It is never called concurrently.
type ProgressFunc func(event ProgressEvent)

type importOutcome struct {
	url      string
	research *deepresearch.Research
	err      error
}

// Import submits every distinct non-blank URL. Already stored URLs are
// counted as skipped; other failures are counted and reported through
// progress without stopping the batch. The returned error is only set
// when ctx is canceled.
func (im *Importer) Import(ctx context.Context, urls []string, progress ProgressFunc) (*ImportResult, error) {
	pending := dedupe(urls)
	total := len(pending)

	if progress == nil {
		progress = func(ProgressEvent) {}
	}
	progress(ProgressEvent{Type: ProgressStarted, Total: total})

	concurrency := im.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultImportConcurrency
	}

	outcomes := make(chan importOutcome, total)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	go func() {
		for _, u := range pending {
			g.Go(func() error {
				outcomes <- im.submit(gctx, u)
				return nil
			})
		}
		_ = g.Wait()
		close(outcomes)
	}()

	var completed atomic.Int64
	result := &ImportResult{}
	for o := range outcomes {
		ev := ProgressEvent{
			Completed: int(completed.Add(1)),
			Total:     total,
			URL:       o.url,
			Research:  o.research,
			Error:     o.err,
		}
		switch {
		case o.err == nil:
			result.Imported++
			ev.Type = ProgressCompleted
		case deepresearch.ErrorCode(o.err) == deepresearch.ECONFLICT:
			result.Skipped++
			ev.Type = ProgressSkipped
		default:
			result.Failed++
			ev.Type = ProgressFailed
		}
		progress(ev)
	}

	progress(ProgressEvent{Type: ProgressFinished, Completed: total, Total: total})

	if err := ctx.Err(); err != nil {
		return result, err
	}
	return result, nil
}

func (im *Importer) submit(ctx context.Context, raw string) importOutcome {
	if im.RateLimiter != nil {
		if u, err := url.Parse(raw); err == nil && u.Host != "" {
			if err := im.RateLimiter.Wait(ctx, u.Hostname()); err != nil {
				return importOutcome{url: raw, err: err}
			}
		}
	}

	r, err := im.Submitter.Submit(ctx, SubmitRequest{
		URL:          raw,
		AuthorName:   im.AuthorName,
		AuthorHandle: im.AuthorHandle,
	})
	return importOutcome{url: raw, research: r, err: err}
}

// dedupe trims each URL and drops blanks and exact repeats, keeping the
// first occurrence.
func dedupe(urls []string) []string {
	seen := make(map[string]struct{}, len(urls))
	out := make([]string, 0, len(urls))
	for _, u := range urls {
		u = strings.TrimSpace(u)
		if u == "" {
			continue
		}
		if _, ok := seen[u]; ok {
			continue
		}
		seen[u] = struct{}{}
		out = append(out, u)
	}
	return out
}
