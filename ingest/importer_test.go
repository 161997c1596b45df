package ingest_test

import (
	"context"
	"errors"
	"sort"
	"sync"
	"testing"

	"github.com/fwojciec/deepresearch"
	"github.com/fwojciec/deepresearch/ingest"
	"github.com/fwojciec/deepresearch/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// submitterFunc adapts a function to ingest.Submitter.
type submitterFunc func(ctx context.Context, req ingest.SubmitRequest) (*deepresearch.Research, error)

func (f submitterFunc) Submit(ctx context.Context, req ingest.SubmitRequest) (*deepresearch.Research, error) {
	return f(ctx, req)
}

func TestImporter_Import(t *testing.T) {
	t.Parallel()

	t.Run("counts imported, skipped and failed", func(t *testing.T) {
		t.Parallel()

		im := &ingest.Importer{
			Submitter: submitterFunc(func(_ context.Context, req ingest.SubmitRequest) (*deepresearch.Research, error) {
				switch req.URL {
				case "https://claude.ai/share/dup":
					return nil, deepresearch.Errorf(deepresearch.ECONFLICT, "exists")
				case "https://claude.ai/share/bad":
					return nil, deepresearch.Errorf(deepresearch.EFETCH, "HTTP 500")
				}
				return &deepresearch.Research{ID: "id-" + req.URL, URL: req.URL}, nil
			}),
			Concurrency: 2,
		}

		var events []ingest.ProgressEvent
		result, err := im.Import(context.Background(), []string{
			"https://claude.ai/share/ok",
			"https://claude.ai/share/dup",
			"https://claude.ai/share/bad",
		}, func(ev ingest.ProgressEvent) {
			events = append(events, ev)
		})

		require.NoError(t, err)
		assert.Equal(t, &ingest.ImportResult{Imported: 1, Skipped: 1, Failed: 1}, result)

		require.Len(t, events, 5)
		assert.Equal(t, ingest.ProgressStarted, events[0].Type)
		assert.Equal(t, 3, events[0].Total)
		assert.Equal(t, ingest.ProgressFinished, events[4].Type)

		byURL := map[string]ingest.ProgressEvent{}
		for i, ev := range events[1:4] {
			assert.Equal(t, i+1, ev.Completed)
			byURL[ev.URL] = ev
		}
		assert.Equal(t, ingest.ProgressCompleted, byURL["https://claude.ai/share/ok"].Type)
		assert.NotNil(t, byURL["https://claude.ai/share/ok"].Research)
		assert.Equal(t, ingest.ProgressSkipped, byURL["https://claude.ai/share/dup"].Type)
		assert.Equal(t, ingest.ProgressFailed, byURL["https://claude.ai/share/bad"].Type)
		assert.Equal(t, deepresearch.EFETCH, deepresearch.ErrorCode(byURL["https://claude.ai/share/bad"].Error))
	})

	t.Run("drops blanks and repeats", func(t *testing.T) {
		t.Parallel()

		var mu sync.Mutex
		var submitted []string
		im := &ingest.Importer{
			Submitter: submitterFunc(func(_ context.Context, req ingest.SubmitRequest) (*deepresearch.Research, error) {
				mu.Lock()
				defer mu.Unlock()
				submitted = append(submitted, req.URL)
				return &deepresearch.Research{}, nil
			}),
		}

		result, err := im.Import(context.Background(), []string{
			" https://grok.com/share/1 ",
			"",
			"https://grok.com/share/1",
			"   ",
			"https://grok.com/share/2",
		}, nil)

		require.NoError(t, err)
		assert.Equal(t, 2, result.Imported)
		sort.Strings(submitted)
		assert.Equal(t, []string{"https://grok.com/share/1", "https://grok.com/share/2"}, submitted)
	})

	t.Run("attaches author to every submission", func(t *testing.T) {
		t.Parallel()

		im := &ingest.Importer{
			Submitter: submitterFunc(func(_ context.Context, req ingest.SubmitRequest) (*deepresearch.Research, error) {
				assert.Equal(t, "Ada", req.AuthorName)
				assert.Equal(t, "@ada", req.AuthorHandle)
				return &deepresearch.Research{}, nil
			}),
			AuthorName:   "Ada",
			AuthorHandle: "@ada",
		}

		_, err := im.Import(context.Background(), []string{"https://claude.ai/share/1"}, nil)

		require.NoError(t, err)
	})

	t.Run("waits on the rate limiter per host", func(t *testing.T) {
		t.Parallel()

		var mu sync.Mutex
		var hosts []string
		im := &ingest.Importer{
			Submitter: submitterFunc(func(context.Context, ingest.SubmitRequest) (*deepresearch.Research, error) {
				return &deepresearch.Research{}, nil
			}),
			RateLimiter: &mock.DomainLimiter{WaitFn: func(_ context.Context, host string) error {
				mu.Lock()
				defer mu.Unlock()
				hosts = append(hosts, host)
				return nil
			}},
		}

		_, err := im.Import(context.Background(), []string{
			"https://claude.ai/share/1",
			"https://www.perplexity.ai:443/search/2",
		}, nil)

		require.NoError(t, err)
		sort.Strings(hosts)
		assert.Equal(t, []string{"claude.ai", "www.perplexity.ai"}, hosts)
	})

	t.Run("counts limiter errors as failures", func(t *testing.T) {
		t.Parallel()

		im := &ingest.Importer{
			Submitter: submitterFunc(func(context.Context, ingest.SubmitRequest) (*deepresearch.Research, error) {
				t.Fatal("submit must not be called")
				return nil, nil
			}),
			RateLimiter: &mock.DomainLimiter{WaitFn: func(context.Context, string) error {
				return errors.New("limiter closed")
			}},
		}

		result, err := im.Import(context.Background(), []string{"https://claude.ai/share/1"}, nil)

		require.NoError(t, err)
		assert.Equal(t, 1, result.Failed)
	})

	t.Run("respects concurrency limit", func(t *testing.T) {
		t.Parallel()

		var mu sync.Mutex
		active, peak := 0, 0
		release := make(chan struct{})
		im := &ingest.Importer{
			Submitter: submitterFunc(func(context.Context, ingest.SubmitRequest) (*deepresearch.Research, error) {
				mu.Lock()
				active++
				peak = max(peak, active)
				mu.Unlock()
				<-release
				mu.Lock()
				active--
				mu.Unlock()
				return &deepresearch.Research{}, nil
			}),
			Concurrency: 2,
		}

		urls := []string{"https://a.com/1", "https://a.com/2", "https://a.com/3", "https://a.com/4", "https://a.com/5"}
		done := make(chan struct{})
		go func() {
			defer close(done)
			_, _ = im.Import(context.Background(), urls, nil)
		}()
		for range urls {
			release <- struct{}{}
		}
		<-done

		assert.LessOrEqual(t, peak, 2)
	})

	t.Run("returns context error when canceled", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		im := &ingest.Importer{
			Submitter: submitterFunc(func(ctx context.Context, _ ingest.SubmitRequest) (*deepresearch.Research, error) {
				return nil, ctx.Err()
			}),
		}

		result, err := im.Import(ctx, []string{"https://claude.ai/share/1"}, nil)

		assert.ErrorIs(t, err, context.Canceled)
		assert.Equal(t, 1, result.Failed)
	})

	t.Run("empty input finishes immediately", func(t *testing.T) {
		t.Parallel()

		im := &ingest.Importer{Submitter: submitterFunc(nil)}
		var types []ingest.ProgressType

		result, err := im.Import(context.Background(), nil, func(ev ingest.ProgressEvent) {
			types = append(types, ev.Type)
		})

		require.NoError(t, err)
		assert.Equal(t, &ingest.ImportResult{}, result)
		assert.Equal(t, []ingest.ProgressType{ingest.ProgressStarted, ingest.ProgressFinished}, types)
	})
}
